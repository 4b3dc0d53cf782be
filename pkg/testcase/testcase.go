// Package testcase holds the concrete inputs of one explored path, so the path
// can be stored, exported and replayed.
package testcase

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/nomagicln/propverify/pkg/verifier"
)

// Outcome is how a recorded path ended.
type Outcome string

const (
	OutcomePassed Outcome = "passed" // Every assertion held.
	OutcomePruned Outcome = "pruned" // An assumption or rejection abandoned the path.
	OutcomeFailed Outcome = "failed" // A verification failure was reported.
)

// OutcomeOf maps a path status to an outcome.
func OutcomeOf(s verifier.Status) Outcome {
	switch s {
	case verifier.StatusPassed:
		return OutcomePassed
	case verifier.StatusFailed:
		return OutcomeFailed
	default:
		return OutcomePruned
	}
}

// HexBytes is a byte slice serialized as a hex string.
type HexBytes []byte

// MarshalYAML implements yaml.Marshaler.
func (b HexBytes) MarshalYAML() (interface{}, error) {
	return hex.EncodeToString(b), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (b *HexBytes) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("invalid hex bytes %q: %w", s, err)
	}
	*b = decoded
	return nil
}

// Object is one symbolic region and the bytes chosen for it.
type Object struct {
	Name  string   `yaml:"name"`
	Bytes HexBytes `yaml:"bytes"`
}

// Case is the recorded input of a single path.
type Case struct {
	// ID uniquely identifies the case.
	ID string `yaml:"id"`

	// Property is the name of the property that produced the case.
	Property string `yaml:"property"`

	// Outcome is how the path ended.
	Outcome Outcome `yaml:"outcome"`

	// Message is the failure message for failed paths.
	Message string `yaml:"message,omitempty"`

	// Objects are the symbolic regions in draw order.
	Objects []Object `yaml:"objects"`

	// CreatedAt is when the case was recorded.
	CreatedAt time.Time `yaml:"created_at"`
}

// New records the regions of a path.
func New(property string, outcome Outcome, message string, objects []verifier.Object) *Case {
	c := &Case{
		ID:        uuid.NewString(),
		Property:  property,
		Outcome:   outcome,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
	for _, o := range objects {
		c.Objects = append(c.Objects, Object{Name: o.Name, Bytes: HexBytes(append([]byte(nil), o.Bytes...))})
	}
	return c
}

// Export serializes the case as YAML.
func Export(c *Case) ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal case: %w", err)
	}
	return data, nil
}

// Import parses a case exported with Export.
func Import(data []byte) (*Case, error) {
	var c Case
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse case: %w", err)
	}
	if err := Validate(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the fields every stored case must carry.
func Validate(c *Case) error {
	if c.ID == "" {
		return fmt.Errorf("case is missing an id")
	}
	if c.Property == "" {
		return fmt.Errorf("case %s is missing a property name", c.ID)
	}
	switch c.Outcome {
	case OutcomePassed, OutcomePruned, OutcomeFailed:
	default:
		return fmt.Errorf("case %s has unknown outcome %q", c.ID, c.Outcome)
	}
	return nil
}

// Size returns the total number of symbolic bytes in the case.
func (c *Case) Size() int {
	n := 0
	for _, o := range c.Objects {
		n += len(o.Bytes)
	}
	return n
}
