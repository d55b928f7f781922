package tui

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// NewRenderer returns a function that renders markdown using glamour.
func NewRenderer() func(string) (string, error) {
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	)

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// Interactive reports whether f is a color-capable terminal. Non-interactive
// output (pipes, CI) should get plain JSON instead of styled markdown.
func Interactive(f *os.File) bool {
	if !term.IsTerminal(int(f.Fd())) {
		return false
	}
	return termenv.ColorProfile() != termenv.Ascii
}

// TreeMarkdown renders a state tree as a markdown document, one section per
// slice in sorted order.
func TreeMarkdown(tree map[string]any, version uint64) string {
	names := make([]string, 0, len(tree))
	for name := range tree {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	fmt.Fprintf(&b, "# State (v%d)\n\n", version)
	for _, name := range names {
		fmt.Fprintf(&b, "## %s\n\n```json\n%s\n```\n\n", name, TreeJSON(tree[name]))
	}
	return b.String()
}

// TreeJSON renders any value as indented JSON, falling back to %v output for
// values JSON cannot express.
func TreeJSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}
