package hook

import (
	"fmt"

	"github.com/arthur-debert/hooks/pkg/logging"
	"github.com/arthur-debert/hooks/pkg/registry"
	"github.com/arthur-debert/hooks/pkg/shape"
)

// Described is implemented by every declared extension point
type Described interface {
	Name() string
	Doc() string
	Signature() shape.Signature
	Implementations() []Info
}

// catalog records every declared point for introspection
var catalog = registry.New[string, Described]()

// Points returns every declared point in declaration order
func Points() []Described {
	var points []Described
	for _, name := range catalog.Keys() {
		declared, _ := catalog.Get(name)
		points = append(points, declared...)
	}
	return points
}

// LookupPoint returns the declared points registered under name
func LookupPoint(name string) []Described {
	declared, _ := catalog.Get(name)
	return declared
}

type point[F any] struct {
	name  string
	doc   string
	sig   shape.Signature
	impls *registry.Entry[Impl[F]]
}

func declare[F any](name string, sig shape.Signature) *point[F] {
	if name == "" {
		panic("hook: extension point name cannot be empty")
	}
	p := &point[F]{
		name:  name,
		sig:   sig,
		impls: registry.NewEntry[Impl[F]](),
	}
	catalog.Append(name, p)
	return p
}

func (p *point[F]) register(fn F, origin any, opts []Option) {
	if funcName(origin) == "" {
		panic(fmt.Sprintf("hook: nil implementation registered for %s", p.name))
	}

	impl := newImpl(fn, origin, opts)
	p.impls.AppendWith(func(pos int) Impl[F] {
		impl.Seq = pos
		return impl
	})

	logger := logging.GetLogger("hook.point")
	logger.Trace().
		Str("point", p.name).
		Str("signature", p.sig.String()).
		Int("weight", impl.Weight).
		Bool("default", impl.Default).
		Str("origin", impl.Origin).
		Msg("Registered implementation")
}

func (p *point[F]) ordered() []Impl[F] {
	return Order(p.impls.Snapshot())
}

// Name returns the point's name
func (p *point[F]) Name() string {
	return p.name
}

// Doc returns the point's description
func (p *point[F]) Doc() string {
	return p.doc
}

// Signature returns the point's fixed call shape
func (p *point[F]) Signature() shape.Signature {
	return p.sig
}

// Implementations describes every registered implementation
func (p *point[F]) Implementations() []Info {
	return Inspect(p.impls.Snapshot())
}

// Len returns the number of implementations the next call will run
func (p *point[F]) Len() int {
	return len(p.ordered())
}

// Point is a declared extension point with implementations of type func(A) O
type Point[A, O any] struct {
	*point[func(A) O]
}

// Declare creates an extension point. Declare it once, as a package-level
// variable, and register implementations against that variable.
func Declare[A, O any](name string) *Point[A, O] {
	return &Point[A, O]{declare[func(A) O](name, shape.Of[A, O]())}
}

// Default installs the point's inline fallback, which runs only when no
// other implementation is registered.
func (p *Point[A, O]) Default(fn func(A) O) *Point[A, O] {
	p.register(fn, fn, []Option{AsDefault()})
	return p
}

// WithDoc sets the description shown by introspection tools
func (p *Point[A, O]) WithDoc(doc string) *Point[A, O] {
	p.doc = doc
	return p
}

// Register adds an implementation
func (p *Point[A, O]) Register(fn func(A) O, opts ...Option) {
	p.register(fn, fn, opts)
}

// With prepares the ordered calls for args without running any of them
func (p *Point[A, O]) With(args A) *Calls[O] {
	return newCalls(p.ordered(), func(fn func(A) O) O {
		return fn(args)
	})
}

// Invoke runs every participating implementation and collects the results
func (p *Point[A, O]) Invoke(args A) []O {
	return Invoke(p.With(args).All())
}

// Exec runs every participating implementation for its side effects
func (p *Point[A, O]) Exec(args A) {
	Exec(p.With(args).All())
}

// TryPoint is a declared extension point whose implementations can fail
type TryPoint[A, O any] struct {
	*point[func(A) (O, error)]
}

// DeclareTry creates an extension point for func(A) (O, error) implementations
func DeclareTry[A, O any](name string) *TryPoint[A, O] {
	return &TryPoint[A, O]{declare[func(A) (O, error)](name, shape.OfTry[A, O]())}
}

// Default installs the point's inline fallback
func (p *TryPoint[A, O]) Default(fn func(A) (O, error)) *TryPoint[A, O] {
	p.register(fn, fn, []Option{AsDefault()})
	return p
}

// WithDoc sets the description shown by introspection tools
func (p *TryPoint[A, O]) WithDoc(doc string) *TryPoint[A, O] {
	p.doc = doc
	return p
}

// Register adds an implementation
func (p *TryPoint[A, O]) Register(fn func(A) (O, error), opts ...Option) {
	p.register(fn, fn, opts)
}

// With prepares the ordered calls for args without running any of them
func (p *TryPoint[A, O]) With(args A) *Calls[Result[O]] {
	return newCalls(p.ordered(), func(fn func(A) (O, error)) Result[O] {
		v, err := fn(args)
		return Result[O]{Value: v, Err: err}
	})
}

// Invoke runs implementations in order, stopping at the first failure
func (p *TryPoint[A, O]) Invoke(args A) ([]O, error) {
	return TryInvoke(Results(p.With(args).All()))
}

// InvokeAll runs every implementation and collects each outcome
func (p *TryPoint[A, O]) InvokeAll(args A) []Result[O] {
	return Invoke(p.With(args).All())
}

// Exec runs implementations for their side effects, stopping at the first failure
func (p *TryPoint[A, O]) Exec(args A) error {
	return TryExec(Results(p.With(args).All()))
}
