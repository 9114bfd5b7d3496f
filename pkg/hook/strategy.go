package hook

import "iter"

// Result pairs an implementation's value with its failure
type Result[T any] struct {
	Value T
	Err   error
}

// Get unpacks the result
func (r Result[T]) Get() (T, error) {
	return r.Value, r.Err
}

// Invoke runs every call in order and collects every value
func Invoke[T any](seq iter.Seq[T]) []T {
	out := make([]T, 0)
	for v := range seq {
		out = append(out, v)
	}
	return out
}

// TryInvoke runs calls in order and stops at the first failure, which is
// returned unchanged. Values collected before the failure are discarded.
func TryInvoke[T any](seq iter.Seq2[T, error]) ([]T, error) {
	out := make([]T, 0)
	for v, err := range seq {
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Exec runs every call in order for its side effects
func Exec[T any](seq iter.Seq[T]) {
	for range seq {
	}
}

// TryExec runs calls in order and returns the first failure unchanged.
// Effects of the calls that already ran, including the failing one, stay.
func TryExec[T any](seq iter.Seq2[T, error]) error {
	for _, err := range seq {
		if err != nil {
			return err
		}
	}
	return nil
}

// Results adapts a sequence of Result values for TryInvoke and TryExec
func Results[T any](seq iter.Seq[Result[T]]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for r := range seq {
			if !yield(r.Value, r.Err) {
				return
			}
		}
	}
}
