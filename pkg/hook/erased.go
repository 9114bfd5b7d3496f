package hook

import (
	"reflect"

	"github.com/arthur-debert/hooks/pkg/shape"
)

// erased is an implementation stored without its static type. typed keeps
// the original func(A) O or func(A) (O, error) for a direct call; call
// works for any caller whose shape matches sig.
type erased struct {
	sig   shape.Signature
	typed any
	call  func(in []reflect.Value) []reflect.Value
}

func eraseFunc[A, O any](fn func(A) O) *erased {
	return &erased{
		sig:   shape.Of[A, O](),
		typed: fn,
		call: func(in []reflect.Value) []reflect.Value {
			return shape.Pack(fn(shape.Unpack[A](in)))
		},
	}
}

func eraseTryFunc[A, O any](fn func(A) (O, error)) *erased {
	return &erased{
		sig:   shape.OfTry[A, O](),
		typed: fn,
		call: func(in []reflect.Value) []reflect.Value {
			v, err := fn(shape.Unpack[A](in))
			return append(shape.Pack(v), shape.ErrValue(err))
		},
	}
}

func eraseReflect(fn any) (*erased, error) {
	sig, err := shape.OfFunc(fn)
	if err != nil {
		return nil, err
	}
	v := reflect.ValueOf(fn)
	return &erased{sig: sig, call: v.Call}, nil
}

// matches is the runtime descriptor check done before every erased call
func (e *erased) matches(sig shape.Signature) bool {
	return e.sig == sig
}

func callAs[A, O any](e *erased, args A) O {
	if fn, ok := e.typed.(func(A) O); ok {
		return fn(args)
	}
	return shape.Result[O](e.call(shape.Values(args)))
}

func tryCallAs[A, O any](e *erased, args A) (O, error) {
	if fn, ok := e.typed.(func(A) (O, error)); ok {
		return fn(args)
	}
	out := e.call(shape.Values(args))
	last := len(out) - 1
	return shape.Result[O](out[:last]), shape.Err(out[last])
}
