package hook

import "sync"

var (
	defaultTable *Table
	defaultOnce  sync.Once
)

// Global returns the process-wide table used by the package-level
// functions. It is created on first use.
func Global() *Table {
	defaultOnce.Do(func() {
		defaultTable = NewTable()
	})
	return defaultTable
}

// Register adds a func(A) O implementation of name to the global table
func Register[A, O any](name string, fn func(A) O, opts ...Option) {
	RegisterIn(Global(), name, fn, opts...)
}

// RegisterTry adds a func(A) (O, error) implementation to the global table
func RegisterTry[A, O any](name string, fn func(A) (O, error), opts ...Option) {
	RegisterTryIn(Global(), name, fn, opts...)
}

// RegisterEffect adds a func(A) implementation to the global table
func RegisterEffect[A any](name string, fn func(A), opts ...Option) {
	RegisterEffectIn(Global(), name, fn, opts...)
}

// RegisterTryEffect adds a func(A) error implementation to the global table
func RegisterTryEffect[A any](name string, fn func(A) error, opts ...Option) {
	RegisterTryEffectIn(Global(), name, fn, opts...)
}

// RegisterFunc adds an implementation of any func type to the global table
func RegisterFunc(name string, fn any, opts ...Option) error {
	return Global().RegisterFunc(name, fn, opts...)
}

// InvokeAll collects results from the global implementations of name
func InvokeAll[O, A any](name string, args A) ([]O, error) {
	return InvokeAllIn[O](Global(), name, args)
}

// TryInvokeAll collects results from fallible global implementations of
// name, stopping at the first error.
func TryInvokeAll[O, A any](name string, args A) ([]O, error) {
	return TryInvokeAllIn[O](Global(), name, args)
}

// ExecAll runs the global implementations of name for their effects
func ExecAll[O, A any](name string, args A) error {
	return ExecAllIn[O](Global(), name, args)
}

// TryExecAll runs fallible global implementations of name, stopping at the
// first error.
func TryExecAll[O, A any](name string, args A) error {
	return TryExecAllIn[O](Global(), name, args)
}
