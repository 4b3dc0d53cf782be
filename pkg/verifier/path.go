package verifier

import (
	"bytes"
	"errors"
)

// Status is the state of a single explored path.
type Status int

const (
	StatusRunning Status = iota
	StatusPassed
	StatusPruned
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusPassed:
		return "passed"
	case StatusPruned:
		return "pruned"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Object is one region made symbolic on a path, in draw order.
type Object struct {
	Name  string
	Bytes []byte
}

// Source supplies the bit patterns of symbolic regions for one path.
type Source interface {
	// Fill writes the pattern for the next region. A non-nil error ends the path.
	Fill(buf []byte, name string) error

	// Replay reports whether the patterns are concrete recorded inputs.
	Replay() bool
}

// Path implements Verifier for a single execution, recording every region it
// hands out and the way the execution ended.
type Path struct {
	src     Source
	status  Status
	err     error
	objects []Object
}

// NewPath creates a running path fed by src.
func NewPath(src Source) *Path {
	return &Path{src: src}
}

// MakeSymbolic fills buf from the path's source.
func (p *Path) MakeSymbolic(buf []byte, name string) error {
	if p.err != nil {
		return p.err
	}
	if err := p.src.Fill(buf, name); err != nil {
		return p.terminate(err)
	}
	p.objects = append(p.objects, Object{Name: name, Bytes: bytes.Clone(buf)})
	return nil
}

// Assume prunes the path when cond is false.
func (p *Path) Assume(cond bool) error {
	if p.err != nil {
		return p.err
	}
	if cond {
		return nil
	}
	return p.Prune(PruneAssumption, "")
}

// Reject prunes the path.
func (p *Path) Reject() error {
	if p.err != nil {
		return p.err
	}
	return p.Prune(PruneRejected, "")
}

// ReportError fails the path.
func (p *Path) ReportError(msg string) error {
	if p.err != nil {
		return p.err
	}
	p.status = StatusFailed
	p.err = &Failure{Message: msg}
	return p.err
}

// Hint passes iv to the source when it can use it.
func (p *Path) Hint(iv Interval) {
	if h, ok := p.src.(Hinter); ok && p.err == nil {
		h.Hint(iv)
	}
}

// IsReplay reports whether the source replays recorded inputs.
func (p *Path) IsReplay() bool {
	return p.src.Replay()
}

// Prune ends the path as a vacuous success with the given reason.
func (p *Path) Prune(reason PruneReason, detail string) error {
	if p.err != nil {
		return p.err
	}
	p.status = StatusPruned
	p.err = &PrunedError{Reason: reason, Detail: detail}
	return p.err
}

// Finish classifies the end of the execution. err is whatever the property
// returned; a path that already ended keeps its first terminal error.
func (p *Path) Finish(err error) Status {
	if p.err != nil {
		return p.status
	}
	if err == nil {
		p.status = StatusPassed
		return p.status
	}
	p.terminate(err)
	return p.status
}

func (p *Path) terminate(err error) error {
	var failure *Failure
	var pruned *PrunedError
	switch {
	case errors.As(err, &failure):
		p.status = StatusFailed
		p.err = failure
	case errors.As(err, &pruned):
		p.status = StatusPruned
		p.err = pruned
	default:
		p.status = StatusPruned
		p.err = &PrunedError{Reason: PruneExhausted, Detail: err.Error()}
	}
	return p.err
}

// Status returns the current state of the path.
func (p *Path) Status() Status { return p.status }

// Err returns the terminal error, or nil while running or after passing.
func (p *Path) Err() error { return p.err }

// Objects returns the regions drawn so far.
func (p *Path) Objects() []Object { return p.objects }
