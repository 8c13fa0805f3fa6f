package cli

import (
	"embed"
	"io/fs"
	"os"

	"github.com/arthur-debert/pipelog/pkg/help"
	"github.com/spf13/cobra"
)

//go:embed topics
var topicsFS embed.FS

// installTopics wires the embedded help topics into root.
func installTopics(root *cobra.Command) error {
	sub, err := fs.Sub(topicsFS, "topics")
	if err != nil {
		return err
	}
	m, err := help.Load(sub, help.Options{Renderer: help.NewMarkdown(os.Stdout)})
	if err != nil {
		return err
	}
	m.Install(root)
	return nil
}
