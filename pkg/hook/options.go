package hook

import (
	"reflect"
	"runtime"

	"github.com/google/uuid"
)

// Option configures a single registration
type Option func(*settings)

type settings struct {
	weight    int
	isDefault bool
}

// Weight sets the ordering priority; lower weights run first. The default is 0.
func Weight(weight int) Option {
	return func(s *settings) {
		s.weight = weight
	}
}

// AsDefault marks an implementation as a fallback that only runs when no
// regular implementation is registered for the same point.
func AsDefault() Option {
	return func(s *settings) {
		s.isDefault = true
	}
}

func newImpl[F any](fn F, origin any, opts []Option) Impl[F] {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	return Impl[F]{
		Fn:      fn,
		ID:      uuid.New(),
		Weight:  s.weight,
		Default: s.isDefault,
		Origin:  funcName(origin),
	}
}

// funcName resolves the symbol name of a function value for diagnostics
func funcName(fn any) string {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return ""
	}
	if f := runtime.FuncForPC(v.Pointer()); f != nil {
		return f.Name()
	}
	return ""
}
