// Package verifier provides the primitives a path-exploring verification engine
// offers to value generation code.
//
// An engine explores the paths of a property by treating memory regions as
// unconstrained. Generation code talks to it through exactly four operations:
// mark a region symbolic, assume a condition, reject the current path and report
// a verification failure. The last three never "return" in the engine sense;
// here they return an error that callers must propagate so the current path
// unwinds normally.
package verifier

// Verifier is the contract between value generation and an exploration engine.
//
// Assume and Reject end the current path as a vacuous success. ReportError ends
// it as a verification failure. Once a path has ended, every later call returns
// the same terminal error.
type Verifier interface {
	// MakeSymbolic fills buf with a bit pattern the engine is free to choose.
	MakeSymbolic(buf []byte, name string) error

	// Assume prunes the current path when cond is false.
	Assume(cond bool) error

	// Reject unconditionally prunes the current path.
	Reject() error

	// ReportError ends the current path as a failure carrying msg.
	ReportError(msg string) error

	// IsReplay reports whether the engine is re-running concrete inputs.
	IsReplay() bool
}

// Verify reports "verification failed" when cond is false.
func Verify(v Verifier, cond bool) error {
	if cond {
		return nil
	}
	return v.ReportError("verification failed")
}
