// Package shout decorates every salutation with an upper-case copy.
package shout

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/hooks/pkg/greeting"
	"github.com/arthur-debert/hooks/pkg/hook"
	"github.com/arthur-debert/hooks/pkg/shape"
)

func init() {
	hook.Register(greeting.DecorateHook, Shout, hook.Weight(50))
	greeting.Announce.Register(Count)
}

// Shout upper-cases a salutation
func Shout(s string) string {
	return strings.ToUpper(s)
}

// Count notes how many lines were shouted
func Count(t *greeting.Transcript) shape.Void {
	t.Note(fmt.Sprintf("shouted %d line(s)", len(t.Salutations)))
	return shape.Void{}
}
