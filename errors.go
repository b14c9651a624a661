package gll

import "fmt"

// Engine faults are signalled out-of-band from the semantic parse errors a
// grammar author reports through ParseState Errors: a gllError represents
// a violated engine invariant (a state constructed outside its contract)
// or a configured resource limit exceeded (ambiguity breadth), and it
// terminates the run that triggered it. Mirrors peg.pegError.
type gllError struct {
	value string
}

func newFault(format string, v ...interface{}) error {
	return &gllError{fmt.Sprintf(format, v...)}
}

func (err *gllError) Error() string {
	return "gll: " + err.value
}
