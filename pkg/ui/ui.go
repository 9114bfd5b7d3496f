// Package ui renders hookctl results as terminal tables or as YAML, JSON
// or TOML documents.
package ui

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

// Renderer is the common interface for all output renderers
type Renderer interface {
	// RenderListing renders the hooks known to the process
	RenderListing(l Listing) error

	// RenderHooks renders a detailed view of each hook
	RenderHooks(hooks []HookView) error

	// RenderInvocation renders the values produced by invoking a hook
	RenderInvocation(inv Invocation) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error
}

// Options configures NewRenderer
type Options struct {
	Format Format
	Color  ColorMode
	// Width wraps markdown output; 0 uses the default width
	Width int
}

// NewRenderer creates a renderer for the requested format
func NewRenderer(opts Options, output io.Writer) (Renderer, error) {
	switch opts.Format {
	case FormatTable, "":
		color := UseColor(opts.Color, output)
		if color {
			pterm.EnableColor()
		} else {
			pterm.DisableColor()
		}
		return &tableRenderer{
			output: output,
			styles: NewStyles(output, color),
			color:  color,
			width:  opts.Width,
		}, nil
	case FormatYAML, FormatJSON, FormatTOML:
		return &structuredRenderer{output: output, format: opts.Format}, nil
	default:
		return nil, fmt.Errorf("unknown format: %v", opts.Format)
	}
}
