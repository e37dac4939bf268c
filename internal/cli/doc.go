// Package cli defines the Cobra command tree for the conf CLI. Each file in
// this package registers one top-level command (init, list, get, set, etc.)
// with the root command. Commands only parse flags and check arity; the work
// is done by internal/ops against a store built from the bootstrap path.
package cli
