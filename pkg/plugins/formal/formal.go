// Package formal greets with title-cased names and a formal salutation.
package formal

import (
	"fmt"

	"github.com/arthur-debert/hooks/pkg/greeting"
	"github.com/arthur-debert/hooks/pkg/hook"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func init() {
	greeting.Validate.Register(Capitalize, hook.Weight(100))
	greeting.Salutation.Register(GoodDay, hook.Weight(10))

	if err := hook.RegisterFunc(greeting.DecorateHook, Sign, hook.Weight(100)); err != nil {
		panic(fmt.Sprintf("failed to register formal decorator: %v", err))
	}
}

// Capitalize title-cases every word of a name
func Capitalize(name string) (string, error) {
	return cases.Title(language.English).String(name), nil
}

// GoodDay is the formal salutation
func GoodDay(name string) string {
	return "Good day, " + name + "."
}

// Sign closes a salutation
func Sign(s string) string {
	return s + " Kind regards."
}
