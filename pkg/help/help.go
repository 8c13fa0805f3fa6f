// Package help adds file-backed help topics to a cobra command tree.
//
// Topics are read from an fs.FS, so a binary can embed them. `help NAME`
// prints the topic called NAME, `help topics` lists them, and anything
// else falls through to cobra's normal command help.
package help

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/arthur-debert/pipelog/pkg/logging"
	"github.com/spf13/cobra"
)

// Topic is one help page.
type Topic struct {
	Name    string
	Path    string
	Content string
}

// Format is the topic's file extension, e.g. ".md".
func (t *Topic) Format() string { return path.Ext(t.Path) }

// Options configures a Manager.
type Options struct {
	// Extensions considered topics. Default: .txt and .md
	Extensions []string

	// Renderer formats topic content. Default: Plain
	Renderer Renderer
}

// Manager holds the topics found in a filesystem.
type Manager struct {
	topics     map[string]*Topic
	extensions []string
	renderer   Renderer
}

// Load scans fsys for topic files.
func Load(fsys fs.FS, opts Options) (*Manager, error) {
	m := &Manager{
		topics:     make(map[string]*Topic),
		extensions: opts.Extensions,
		renderer:   opts.Renderer,
	}
	if len(m.extensions) == 0 {
		m.extensions = []string{".txt", ".md"}
	}
	if m.renderer == nil {
		m.renderer = Plain{}
	}

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !m.supported(path.Ext(p)) {
			return nil
		}
		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(path.Base(p), path.Ext(p))
		m.topics[name] = &Topic{Name: name, Path: p, Content: string(content)}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan topics: %w", err)
	}

	logger := logging.GetLogger("help")
	logger.Debug().Int("count", len(m.topics)).Msg("Help topics loaded")
	return m, nil
}

func (m *Manager) supported(ext string) bool {
	for _, e := range m.extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Get finds a topic by name. Flag spellings ("--pause") also match
// topics named "option-pause".
func (m *Manager) Get(name string) (*Topic, bool) {
	name = strings.TrimLeft(name, "-")
	if t, ok := m.topics[name]; ok {
		return t, true
	}
	t, ok := m.topics["option-"+name]
	return t, ok
}

// Names returns all topic names, sorted.
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.topics))
	for name := range m.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Print renders a topic to w.
func (m *Manager) Print(w io.Writer, t *Topic) error {
	_, err := io.WriteString(w, m.renderer.Render(t.Content, t.Format()))
	return err
}

// PrintIndex lists the topics, options last.
func (m *Manager) PrintIndex(w io.Writer, program string) {
	names := m.Names()
	if len(names) == 0 {
		fmt.Fprintln(w, "No help topics available.")
		return
	}

	var general, options []string
	for _, name := range names {
		if opt, ok := strings.CutPrefix(name, "option-"); ok {
			options = append(options, opt)
		} else {
			general = append(general, name)
		}
	}

	fmt.Fprintln(w, "Available help topics:")
	if len(general) > 0 {
		fmt.Fprintln(w, "\nGeneral topics:")
		for _, name := range general {
			fmt.Fprintf(w, "  %s\n", name)
		}
	}
	if len(options) > 0 {
		fmt.Fprintln(w, "\nOption topics:")
		for _, name := range options {
			fmt.Fprintf(w, "  --%s\n", name)
		}
	}
	fmt.Fprintf(w, "\nUse '%s help <topic>' to read about a specific topic.\n", program)
}

// Install replaces root's help command with one that also knows topics.
func (m *Manager) Install(root *cobra.Command) {
	original := root.HelpFunc()
	program := root.Name()

	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: `Help provides help for any command or topic in the application.
Simply type ` + program + ` help [path to command or topic] for full details.

To see all available help topics:
  ` + program + ` help topics`,
		// Flag spellings name option topics.
		DisableFlagParsing: true,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := []string{"topics"}
			for _, c := range root.Commands() {
				if !c.Hidden {
					completions = append(completions, c.Name())
				}
			}
			completions = append(completions, m.Names()...)
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch {
			case len(args) == 0:
				original(root, args)
			case args[0] == "topics":
				m.PrintIndex(out, program)
			default:
				if t, ok := m.Get(args[0]); ok {
					return m.Print(out, t)
				}
				target, _, err := root.Find(args)
				if err != nil || target == nil {
					original(root, args)
					return nil
				}
				original(target, args)
			}
			return nil
		},
	}

	for _, c := range root.Commands() {
		if c.Name() == "help" {
			root.RemoveCommand(c)
			break
		}
	}
	root.SetHelpCommand(helpCmd)
}
