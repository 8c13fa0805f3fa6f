package help

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"inline.md":        {Data: []byte("# Inline\n\nredraws")},
		"option-pause.txt": {Data: []byte("--pause DURATION")},
		"nested/audit.txt": {Data: []byte("audit trail")},
		"ignore.json":      {Data: []byte("{}")},
	}
}

func TestLoad(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		m, err := Load(testFS(), Options{})
		require.NoError(t, err)

		tests := []struct {
			name    string
			exists  bool
			content string
		}{
			{"inline", true, "# Inline\n\nredraws"},
			{"audit", true, "audit trail"},
			{"pause", true, "--pause DURATION"},
			{"--pause", true, "--pause DURATION"},
			{"ignore", false, ""},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				topic, ok := m.Get(tt.name)
				assert.Equal(t, tt.exists, ok)
				if ok {
					assert.Equal(t, tt.content, topic.Content)
				}
			})
		}
	})

	t.Run("custom extensions", func(t *testing.T) {
		m, err := Load(testFS(), Options{Extensions: []string{".json"}})
		require.NoError(t, err)
		assert.Equal(t, []string{"ignore"}, m.Names())
	})
}

func TestPrintIndex(t *testing.T) {
	m, err := Load(testFS(), Options{})
	require.NoError(t, err)

	var buf bytes.Buffer
	m.PrintIndex(&buf, "pipelog")
	out := buf.String()

	assert.Contains(t, out, "General topics:\n  audit\n  inline\n")
	assert.Contains(t, out, "Option topics:\n  --pause\n")
	assert.Contains(t, out, "Use 'pipelog help <topic>'")

	empty, err := Load(fstest.MapFS{}, Options{})
	require.NoError(t, err)
	buf.Reset()
	empty.PrintIndex(&buf, "pipelog")
	assert.Equal(t, "No help topics available.\n", buf.String())
}

type upperRenderer struct{}

func (upperRenderer) Render(content, format string) string { return format + ":" + content }

func TestInstall(t *testing.T) {
	newRoot := func() *cobra.Command {
		root := &cobra.Command{Use: "pipelog", Short: "root short"}
		root.AddCommand(&cobra.Command{Use: "demo", Short: "demo short", Run: func(*cobra.Command, []string) {}})
		m, err := Load(testFS(), Options{Renderer: upperRenderer{}})
		require.NoError(t, err)
		m.Install(root)
		return root
	}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"topic", []string{"help", "inline"}, ".md:# Inline"},
		{"option topic", []string{"help", "--pause"}, ".txt:--pause DURATION"},
		{"index", []string{"help", "topics"}, "Available help topics:"},
		{"command", []string{"help", "demo"}, "demo short"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := newRoot()
			var buf bytes.Buffer
			root.SetOut(&buf)
			root.SetArgs(tt.args)
			require.NoError(t, root.Execute())
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestMarkdownPassesThroughOtherFormats(t *testing.T) {
	r := &Markdown{Style: "notty"}
	assert.Equal(t, "plain text", r.Render("plain text", ".txt"))
	assert.Contains(t, r.Render("# Title", ".md"), "Title")
}

func TestNewMarkdownFallsBackToPlain(t *testing.T) {
	assert.Equal(t, Plain{}, NewMarkdown(&bytes.Buffer{}))
}
