// Package shape describes the structural type identity of a hook's argument
// tuple and result list.
//
// A Signature is built from reflect.FuncOf, so two signatures are equal only
// when every parameter and result type is identical. Type names are never
// compared: two distinct types that print the same never collide.
//
// Argument tuples are written as a single Go type parameter A:
//
//	Void                    no arguments
//	Tuple2[T0, T1] .. Tuple4  two to four arguments
//	anything else           exactly one argument of that type
//
// Result lists follow the same rule for Void, and OfTry appends error.
package shape
