package style

// Compose wraps text in the bold and color codes requested.
// Bold comes first, then the color, and a single Reset closes the run.
// With neither, text is returned untouched.
func Compose(text string, bold bool, color Color) string {
	switch {
	case bold && color != None:
		return string(Bold) + string(color) + text + string(Reset)
	case bold:
		return string(Bold) + text + string(Reset)
	case color != None:
		return string(color) + text + string(Reset)
	default:
		return text
	}
}
