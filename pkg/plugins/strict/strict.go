// Package strict rejects names that do not look like names.
package strict

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/arthur-debert/hooks/pkg/errors"
	"github.com/arthur-debert/hooks/pkg/greeting"
	"github.com/arthur-debert/hooks/pkg/hook"
	"github.com/arthur-debert/hooks/pkg/shape"
)

// CheckHook exposes Check on the named table for hookctl invoke --try
const CheckHook = "greeting.check"

// MaxLength is the longest accepted name, in runes
const MaxLength = 64

func init() {
	greeting.Validate.Register(Check, hook.Weight(-10))
	greeting.Announce.Register(Audit, hook.Weight(100))
	hook.RegisterTry(CheckHook, Check)
}

// Check rejects empty, overlong and digit-bearing names
func Check(name string) (string, error) {
	if name == "" {
		return "", errors.New(errors.ErrInvalidInput, "name cannot be empty")
	}
	if n := utf8.RuneCountInString(name); n > MaxLength {
		return "", errors.Newf(errors.ErrInvalidInput, "name is %d characters long, the limit is %d", n, MaxLength).
			WithDetail("name", name)
	}
	for _, r := range name {
		if unicode.IsDigit(r) {
			return "", errors.Newf(errors.ErrInvalidInput, "name %q contains a digit", name).
				WithDetail("name", name)
		}
	}
	return name, nil
}

// Audit records that the transcript passed the checks
func Audit(t *greeting.Transcript) shape.Void {
	t.Note(fmt.Sprintf("checked %d salutation(s) for %s", len(t.Salutations), t.Name))
	return shape.Void{}
}
