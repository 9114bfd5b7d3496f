package hook

import (
	"iter"

	"github.com/arthur-debert/hooks/pkg/errors"
	"github.com/arthur-debert/hooks/pkg/logging"
	"github.com/arthur-debert/hooks/pkg/registry"
	"github.com/arthur-debert/hooks/pkg/shape"
)

// Key identifies one slot of the named table
type Key struct {
	Name      string
	Signature shape.Signature
}

// Table is a string-keyed hook table whose call shapes are supplied by the
// caller. Entries are matched on name and exact shape.
type Table struct {
	entries *registry.Table[Key, Impl[*erased]]
}

// NewTable creates an empty table
func NewTable() *Table {
	return &Table{
		entries: registry.New[Key, Impl[*erased]](),
	}
}

func (t *Table) insert(name string, e *erased, origin any, opts []Option) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "hook name cannot be empty")
	}
	if funcName(origin) == "" {
		return errors.Newf(errors.ErrInvalidSignature, "hook %s: implementation is nil", name).
			WithDetail("name", name)
	}

	impl := newImpl(e, origin, opts)
	t.entries.AppendWith(Key{Name: name, Signature: e.sig}, func(pos int) Impl[*erased] {
		impl.Seq = pos
		return impl
	})

	logger := logging.GetLogger("hook.table")
	logger.Trace().
		Str("hook", name).
		Str("signature", e.sig.String()).
		Int("weight", impl.Weight).
		Bool("default", impl.Default).
		Str("origin", impl.Origin).
		Msg("Registered implementation")
	return nil
}

func (t *Table) mustInsert(name string, e *erased, origin any, opts []Option) {
	if err := t.insert(name, e, origin, opts); err != nil {
		panic(err.Error())
	}
}

// RegisterFunc adds an implementation of any non-variadic func type.
// Its shape is taken from the function's parameters and results, so
// func(string, int) (bool, error) is found by
// TryInvokeAll[bool](name, shape.T2("a", 1)).
func (t *Table) RegisterFunc(name string, fn any, opts ...Option) error {
	e, err := eraseReflect(fn)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInvalidSignature, "cannot register hook %s", name).
			WithDetail("name", name)
	}
	return t.insert(name, e, fn, opts)
}

// resolve returns the participating implementations for name and sig.
// Lookup failures happen before any implementation runs.
func (t *Table) resolve(name string, sig shape.Signature) ([]*erased, error) {
	impls, ok := t.entries.Get(Key{Name: name, Signature: sig})
	if !ok {
		return nil, t.notFound(name, sig)
	}

	ordered := Order(impls)
	out := make([]*erased, 0, len(ordered))
	for _, impl := range ordered {
		if impl.Fn.matches(sig) {
			out = append(out, impl.Fn)
		}
	}

	logger := logging.GetLogger("hook.table")
	logger.Trace().
		Str("hook", name).
		Str("signature", sig.String()).
		Int("implementations", len(out)).
		Msg("Resolved hook")
	return out, nil
}

// notFound reports an unknown name and a shape mismatch with the same
// error code; the details tell them apart.
func (t *Table) notFound(name string, sig shape.Signature) error {
	var registered []string
	for _, key := range t.entries.Keys() {
		if key.Name == name {
			registered = append(registered, key.Signature.String())
		}
	}

	err := errors.Newf(errors.ErrHookNotFound, "no matching hooks found for %s", name).
		WithDetail("name", name).
		WithDetail("requested", sig.String())
	if len(registered) == 0 {
		err.WithDetail("reason", errors.ReasonUnknownName)
	} else {
		err.WithDetail("reason", errors.ReasonShapeMismatch).
			WithDetail("registered", registered)
	}

	logger := logging.GetLogger("hook.table")
	logger.Debug().
		Str("hook", name).
		Str("requested", sig.String()).
		Strs("registered", registered).
		Msg("No matching hooks")
	return err
}

func calls[A, O any](impls []*erased, args A) iter.Seq[O] {
	return func(yield func(O) bool) {
		for _, e := range impls {
			if !yield(callAs[A, O](e, args)) {
				return
			}
		}
	}
}

func tryCalls[A, O any](impls []*erased, args A) iter.Seq2[O, error] {
	return func(yield func(O, error) bool) {
		for _, e := range impls {
			if !yield(tryCallAs[A, O](e, args)) {
				return
			}
		}
	}
}

// Keys returns every registered name and shape in creation order
func (t *Table) Keys() []Key {
	return t.entries.Keys()
}

// Len returns the number of registered name and shape combinations
func (t *Table) Len() int {
	return t.entries.Len()
}

// Entry describes the implementations registered under one key
type Entry struct {
	Name            string
	Signature       shape.Signature
	Implementations []Info
}

// Describe reports every shape registered under name
func (t *Table) Describe(name string) []Entry {
	var out []Entry
	for _, key := range t.entries.Keys() {
		if key.Name != name {
			continue
		}
		impls, _ := t.entries.Get(key)
		out = append(out, Entry{
			Name:            key.Name,
			Signature:       key.Signature,
			Implementations: Inspect(impls),
		})
	}
	return out
}

// Entries describes the whole table in creation order
func (t *Table) Entries() []Entry {
	var out []Entry
	for _, key := range t.entries.Keys() {
		impls, _ := t.entries.Get(key)
		out = append(out, Entry{
			Name:            key.Name,
			Signature:       key.Signature,
			Implementations: Inspect(impls),
		})
	}
	return out
}

// RegisterIn adds a func(A) O implementation to t. It panics on an empty
// name or nil fn, which are programming errors at init time.
func RegisterIn[A, O any](t *Table, name string, fn func(A) O, opts ...Option) {
	t.mustInsert(name, eraseFunc(fn), fn, opts)
}

// RegisterTryIn adds a func(A) (O, error) implementation to t
func RegisterTryIn[A, O any](t *Table, name string, fn func(A) (O, error), opts ...Option) {
	t.mustInsert(name, eraseTryFunc(fn), fn, opts)
}

// RegisterEffectIn adds a func(A) implementation to t; its shape has no results
func RegisterEffectIn[A any](t *Table, name string, fn func(A), opts ...Option) {
	var wrapped func(A) shape.Void
	if fn != nil {
		wrapped = func(args A) shape.Void {
			fn(args)
			return shape.Void{}
		}
	}
	t.mustInsert(name, eraseFunc(wrapped), fn, opts)
}

// RegisterTryEffectIn adds a func(A) error implementation to t
func RegisterTryEffectIn[A any](t *Table, name string, fn func(A) error, opts ...Option) {
	var wrapped func(A) (shape.Void, error)
	if fn != nil {
		wrapped = func(args A) (shape.Void, error) {
			return shape.Void{}, fn(args)
		}
	}
	t.mustInsert(name, eraseTryFunc(wrapped), fn, opts)
}

// InvokeAllIn calls every implementation of name with shape (A) -> O and
// collects the results in dispatch order.
func InvokeAllIn[O, A any](t *Table, name string, args A) ([]O, error) {
	impls, err := t.resolve(name, shape.Of[A, O]())
	if err != nil {
		return nil, err
	}
	return Invoke(calls[A, O](impls, args)), nil
}

// TryInvokeAllIn calls implementations of name with shape (A) -> (O, error),
// stopping at the first failure.
func TryInvokeAllIn[O, A any](t *Table, name string, args A) ([]O, error) {
	impls, err := t.resolve(name, shape.OfTry[A, O]())
	if err != nil {
		return nil, err
	}
	return TryInvoke(tryCalls[A, O](impls, args))
}

// ExecAllIn calls every implementation of name with shape (A) -> O for its
// effects. Use shape.Void as O for implementations without results.
func ExecAllIn[O, A any](t *Table, name string, args A) error {
	impls, err := t.resolve(name, shape.Of[A, O]())
	if err != nil {
		return err
	}
	Exec(calls[A, O](impls, args))
	return nil
}

// TryExecAllIn calls implementations of name with shape (A) -> (O, error)
// for their effects, stopping at the first failure.
func TryExecAllIn[O, A any](t *Table, name string, args A) error {
	impls, err := t.resolve(name, shape.OfTry[A, O]())
	if err != nil {
		return err
	}
	return TryExec(tryCalls[A, O](impls, args))
}
