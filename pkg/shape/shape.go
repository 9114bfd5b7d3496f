package shape

import (
	"reflect"
	"strings"

	"github.com/arthur-debert/hooks/pkg/errors"
)

// Void stands for an empty argument list or an empty result list
type Void struct{}

var (
	voidType   = reflect.TypeFor[Void]()
	errorType  = reflect.TypeFor[error]()
	tupleType  = reflect.TypeFor[Tuple]()
	fillerType = reflect.TypeFor[filler]()
)

// Signature is the erased call shape of a hook implementation
type Signature struct {
	// Args is a func type carrying only the parameters
	Args reflect.Type
	// Returns is a func type carrying only the results
	Returns reflect.Type
}

// New builds a Signature from parameter and result types
func New(params, results []reflect.Type) Signature {
	return Signature{
		Args:    reflect.FuncOf(params, nil, false),
		Returns: reflect.FuncOf(nil, results, false),
	}
}

// Of returns the signature of func(A) O
func Of[A, O any]() Signature {
	return New(ArgTypes[A](), ResultTypes[O]())
}

// OfTry returns the signature of func(A) (O, error)
func OfTry[A, O any]() Signature {
	return New(ArgTypes[A](), append(ResultTypes[O](), errorType))
}

// MaxArity is the widest argument list a call site can express, via Tuple4
const MaxArity = 4

// OfFunc derives the signature of an arbitrary function value. Only shapes a
// call site can request are accepted: at most MaxArity parameters and results
// of (), O, error or (O, error).
func OfFunc(fn any) (Signature, error) {
	if fn == nil {
		return Signature{}, errors.New(errors.ErrInvalidSignature, "hook implementation is nil")
	}

	t := reflect.TypeOf(fn)
	if t.Kind() != reflect.Func {
		return Signature{}, errors.Newf(errors.ErrInvalidSignature, "hook implementation must be a func, got %s", t).
			WithDetail("type", t.String())
	}
	if t.IsVariadic() {
		return Signature{}, errors.Newf(errors.ErrInvalidSignature, "variadic hook implementations are not supported: %s", t).
			WithDetail("type", t.String())
	}
	if reflect.ValueOf(fn).IsNil() {
		return Signature{}, errors.New(errors.ErrInvalidSignature, "hook implementation is nil")
	}

	if t.NumIn() > MaxArity {
		return Signature{}, errors.Newf(errors.ErrInvalidSignature, "hook implementations take at most %d parameters: %s", MaxArity, t).
			WithDetail("type", t.String())
	}
	if t.NumOut() > 2 || (t.NumOut() == 2 && t.Out(1) != errorType) {
		return Signature{}, errors.Newf(errors.ErrInvalidSignature, "hook implementations return (), O, error or (O, error): %s", t).
			WithDetail("type", t.String())
	}

	params := make([]reflect.Type, t.NumIn())
	for i := range params {
		params[i] = t.In(i)
	}
	results := make([]reflect.Type, t.NumOut())
	for i := range results {
		results[i] = t.Out(i)
	}
	return New(params, results), nil
}

// IsZero reports whether the signature was never set
func (s Signature) IsZero() bool {
	return s.Args == nil && s.Returns == nil
}

// Params returns the parameter types in order
func (s Signature) Params() []reflect.Type {
	if s.Args == nil {
		return nil
	}
	params := make([]reflect.Type, s.Args.NumIn())
	for i := range params {
		params[i] = s.Args.In(i)
	}
	return params
}

// Results returns the result types in order
func (s Signature) Results() []reflect.Type {
	if s.Returns == nil {
		return nil
	}
	results := make([]reflect.Type, s.Returns.NumOut())
	for i := range results {
		results[i] = s.Returns.Out(i)
	}
	return results
}

// Fallible reports whether the last result is error
func (s Signature) Fallible() bool {
	results := s.Results()
	return len(results) > 0 && results[len(results)-1] == errorType
}

// String renders the signature as "(string, int) -> string"
func (s Signature) String() string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(joinTypes(s.Params()))
	b.WriteString(") -> ")

	results := s.Results()
	switch len(results) {
	case 0:
		b.WriteString("()")
	case 1:
		b.WriteString(results[0].String())
	default:
		b.WriteString("(")
		b.WriteString(joinTypes(results))
		b.WriteString(")")
	}
	return b.String()
}

func joinTypes(types []reflect.Type) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return strings.Join(names, ", ")
}

// ArgTypes expands an argument tuple type into its parameter types
func ArgTypes[A any]() []reflect.Type {
	t := reflect.TypeFor[A]()
	switch {
	case t == voidType:
		return nil
	case isTuple(t):
		var zero A
		return any(zero).(Tuple).Types()
	}
	return []reflect.Type{t}
}

// ResultTypes expands a result type into its result list
func ResultTypes[O any]() []reflect.Type {
	t := reflect.TypeFor[O]()
	if t == voidType {
		return nil
	}
	return []reflect.Type{t}
}

// Values expands an argument tuple into call arguments
func Values[A any](args A) []reflect.Value {
	t := reflect.TypeFor[A]()
	switch {
	case t == voidType:
		return nil
	case isTuple(t):
		return any(args).(Tuple).Values()
	}
	return []reflect.Value{valueOf(args)}
}

// Unpack rebuilds an argument tuple from call arguments
func Unpack[A any](vals []reflect.Value) A {
	var args A
	t := reflect.TypeFor[A]()
	switch {
	case t == voidType:
	case isTuple(t):
		any(&args).(filler).fill(vals)
	case len(vals) > 0:
		set(&args, vals[0])
	}
	return args
}

// Result converts the first call result into O. Void yields its zero value.
func Result[O any](vals []reflect.Value) O {
	var out O
	if reflect.TypeFor[O]() != voidType && len(vals) > 0 {
		set(&out, vals[0])
	}
	return out
}

// Pack turns a typed result into call results
func Pack[O any](out O) []reflect.Value {
	if reflect.TypeFor[O]() == voidType {
		return nil
	}
	return []reflect.Value{valueOf(out)}
}

// Err extracts an error from a call result
func Err(v reflect.Value) error {
	if !v.IsValid() || v.IsNil() {
		return nil
	}
	return v.Interface().(error)
}

// ErrValue wraps an error as a call result of static type error
func ErrValue(err error) reflect.Value {
	return valueOf(err)
}

func isTuple(t reflect.Type) bool {
	return t.Kind() == reflect.Struct && t.Implements(tupleType) && reflect.PointerTo(t).Implements(fillerType)
}

// valueOf keeps the static type, so a nil interface still yields a usable value
func valueOf[T any](v T) reflect.Value {
	return reflect.ValueOf(&v).Elem()
}

func set[T any](dst *T, v reflect.Value) {
	if v.IsValid() {
		reflect.ValueOf(dst).Elem().Set(v)
	}
}
