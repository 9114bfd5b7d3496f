package ui

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/arthur-debert/hooks/pkg/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrorView is the structured form of a failed command
type ErrorView struct {
	Error   string                 `json:"error" yaml:"error" toml:"error"`
	Code    string                 `json:"code" yaml:"code" toml:"code"`
	Details map[string]interface{} `json:"details,omitempty" yaml:"details,omitempty" toml:"details,omitempty"`
}

type messageView struct {
	Message string `json:"message" yaml:"message" toml:"message"`
}

type structuredRenderer struct {
	output io.Writer
	format Format
}

func (r *structuredRenderer) RenderListing(l Listing) error {
	return r.encode(l)
}

func (r *structuredRenderer) RenderHooks(hooks []HookView) error {
	return r.encode(Listing{Hooks: hooks})
}

func (r *structuredRenderer) RenderInvocation(inv Invocation) error {
	return r.encode(inv)
}

func (r *structuredRenderer) RenderMessage(msg string) error {
	return r.encode(messageView{Message: msg})
}

func (r *structuredRenderer) RenderError(err error) error {
	return r.encode(ErrorView{
		Error:   err.Error(),
		Code:    string(errors.GetErrorCode(err)),
		Details: errors.GetErrorDetails(err),
	})
}

func (r *structuredRenderer) encode(v interface{}) error {
	switch r.format {
	case FormatYAML:
		encoder := yaml.NewEncoder(r.output)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return err
		}
		return encoder.Close()
	case FormatJSON:
		encoder := json.NewEncoder(r.output)
		encoder.SetIndent("", "  ")
		return encoder.Encode(v)
	case FormatTOML:
		return toml.NewEncoder(r.output).Encode(v)
	default:
		return fmt.Errorf("unknown format: %v", r.format)
	}
}
