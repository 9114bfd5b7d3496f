package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// HookMarkdown builds the describe page for a hook
func HookMarkdown(h HookView) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", h.Name)
	if h.Doc != "" {
		fmt.Fprintf(&b, "%s\n\n", h.Doc)
	}
	fmt.Fprintf(&b, "- **Kind:** %s\n", h.Kind)
	fmt.Fprintf(&b, "- **Signature:** `%s`\n", h.Signature)
	fmt.Fprintf(&b, "- **Active:** %d of %d\n\n", h.Active(), len(h.Implementations))

	if len(h.Implementations) == 0 {
		b.WriteString("_No implementations registered._\n")
		return b.String()
	}

	b.WriteString("| Seq | Origin | Weight | Default | Runs |\n")
	b.WriteString("|-----|--------|--------|---------|------|\n")
	for _, impl := range h.Implementations {
		runs := "shadowed"
		if impl.Active() {
			runs = fmt.Sprintf("#%d", impl.Position+1)
		}
		def := "no"
		if impl.Default {
			def = "yes"
		}
		fmt.Fprintf(&b, "| %d | `%s` | %d | %s | %s |\n", impl.Seq, impl.Origin, impl.Weight, def, runs)
	}
	return b.String()
}

// RenderMarkdown converts markdown to terminal output. It falls back to the
// raw markdown if glamour cannot render it.
func RenderMarkdown(content string, width int, color bool) string {
	var options []glamour.TermRendererOption
	if color {
		options = append(options, glamour.WithAutoStyle())
	} else {
		options = append(options, glamour.WithStandardStyle("notty"))
	}
	if width > 0 {
		options = append(options, glamour.WithWordWrap(width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
