// Package greeting is a small extension-point host. It owns the hooks a
// greeting goes through and knows nothing about the packages that
// implement them; those register themselves from init().
package greeting

import (
	"strings"

	"github.com/arthur-debert/hooks/pkg/errors"
	"github.com/arthur-debert/hooks/pkg/hook"
	"github.com/arthur-debert/hooks/pkg/logging"
	"github.com/arthur-debert/hooks/pkg/shape"
)

// DecorateHook is the named hook applied to every salutation. Its shape is
// (string) -> string.
const DecorateHook = "greeting.decorate"

// Transcript collects everything produced while greeting someone
type Transcript struct {
	Name        string
	Salutations []string
	Decorations []string
	Notes       []string
}

// Note appends a free-form line
func (t *Transcript) Note(line string) {
	t.Notes = append(t.Notes, line)
}

// Lines returns the transcript in display order
func (t *Transcript) Lines() []string {
	lines := make([]string, 0, len(t.Salutations)+len(t.Decorations)+len(t.Notes))
	lines = append(lines, t.Salutations...)
	lines = append(lines, t.Decorations...)
	return append(lines, t.Notes...)
}

var (
	// Validate checks and normalises a name. Validators run fail-fast; the
	// last one in dispatch order decides the spelling that is greeted.
	Validate = hook.DeclareTry[string, string]("greeting.validate").
			WithDoc("Checks and normalises a name; the first failure aborts.").
			Default(requireName)

	// Salutation produces one salutation per implementation
	Salutation = hook.Declare[string, string]("greeting.salutation").
			WithDoc("Builds a salutation for a validated name.").
			Default(hello)

	// Announce lets implementations add notes to a finished transcript
	Announce = hook.Declare[*Transcript, shape.Void]("greeting.announce").
			WithDoc("Adds notes to a finished transcript.")
)

func hello(name string) string {
	return "Hello, " + name + "!"
}

func requireName(name string) (string, error) {
	if name == "" {
		return "", errors.New(errors.ErrInvalidInput, "name cannot be empty")
	}
	return name, nil
}

// Greet runs a name through validation, salutations, decorations and
// announcements.
func Greet(name string) (*Transcript, error) {
	logger := logging.GetLogger("greeting")
	name = strings.TrimSpace(name)

	validated, err := Validate.Invoke(name)
	if err != nil {
		logger.Debug().Err(err).Str("name", name).Msg("Name rejected")
		return nil, err
	}
	if n := len(validated); n > 0 {
		name = validated[n-1]
	}

	t := &Transcript{Name: name}
	calls := Salutation.With(name)
	logger.Debug().Str("name", name).Int("salutations", calls.Len()).Msg("Greeting")
	t.Salutations = hook.Invoke(calls.All())

	for _, line := range t.Salutations {
		decorated, err := hook.InvokeAll[string](DecorateHook, line)
		if errors.IsErrorCode(err, errors.ErrHookNotFound) {
			// no decorators linked into this binary
			break
		}
		if err != nil {
			return nil, err
		}
		t.Decorations = append(t.Decorations, decorated...)
	}

	Announce.Exec(t)
	return t, nil
}
