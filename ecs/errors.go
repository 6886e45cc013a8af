package ecs

import "fmt"

// assertf panics with an "ecs: "-prefixed message when cond is false.
//
// Every call site guards a contract violation spec-level callers are not
// meant to recover from (emplacing a duplicate component, dereferencing
// an invalid reference, destroying an already-destroyed entity, ...).
// Probing state without risking a panic goes through Contains, TryGet,
// or Valid instead.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("ecs: "+format, args...))
	}
}
