// Package registry provides the process-wide registration storage used by
// hook dispatch: a generic, thread-safe table of append-only entries.
//
// Values are appended under a key and never removed or reordered. An Entry is
// created together with its first value, so a key that resolves always has at
// least one value. Readers receive immutable snapshots, which makes it safe to
// keep registering from init() functions or plugin loaders while other
// goroutines dispatch.
package registry
