// Package hook dispatches calls to every implementation registered for an
// extension point.
//
// Two addressing schemes share the same ordering and invocation rules:
//
//   - Declared points (Declare, DeclareTry) have one fixed, statically typed
//     signature. Implementations call Point.Register, usually from init().
//   - The named table (Register, InvokeAll and friends) is keyed by a string
//     plus the argument and result shape. Implementations are stored
//     type-erased and only match a call that asks for the identical shape.
//
// For one call, implementations flagged AsDefault take part only when no
// other implementation is registered. The participants run in ascending
// Weight order; equal weights keep registration order.
//
// Registration from package init() functions completes before main starts,
// so any package linked into the binary can contribute implementations
// without the owner of the extension point importing it. Registering later
// at runtime is also safe: every call works on a snapshot of the table.
package hook
