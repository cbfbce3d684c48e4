package validation

import "strings"

// AggregateMessage is the fixed top-level message carried by every
// AggregateError. Clients match on it to recognize validation failures.
const AggregateMessage = "ValidationError"

// Detail is one structured violation record in the wire contract.
// Field-level details get their Path filled in by the engine; subtree-level
// details carry the path supplied by the raiser.
type Detail struct {
	Code string         `json:"code"`
	Path Path           `json:"path,omitempty"`
	Meta map[string]any `json:"meta,omitempty"`
}

// Error is implemented by failures raised from validators. The engine
// catches any error satisfying this interface and converts it into detail
// records; every other error propagates unwrapped as a fatal failure.
type Error interface {
	error
	Details() []Detail
}

// Violation is a single validation failure with a stable code and optional
// structured meta payload. Subtree validators set Path themselves; field
// validators leave it empty.
type Violation struct {
	Code string
	Path Path
	Meta map[string]any
}

func (v *Violation) Error() string { return v.Code }

func (v *Violation) Details() []Detail {
	return []Detail{{Code: v.Code, Path: v.Path, Meta: v.Meta}}
}

// Violations reports several independent failures from a single validator
// call, in order.
type Violations []*Violation

func (vs Violations) Error() string {
	codes := make([]string, len(vs))
	for i, v := range vs {
		codes[i] = v.Code
	}
	return strings.Join(codes, "; ")
}

func (vs Violations) Details() []Detail {
	var out []Detail
	for _, v := range vs {
		out = append(out, v.Details()...)
	}
	return out
}

// AggregateError is the single outward-facing error bundling every collected
// violation for one validation pass. It only exists when at least one detail
// was collected.
type AggregateError struct {
	Details []Detail
}

func (e *AggregateError) Error() string { return AggregateMessage }

// Extensions returns the error-extensions payload of the wire contract:
// {"validationErrors": [{code, path, meta?}, ...]}.
func (e *AggregateError) Extensions() map[string]any {
	return map[string]any{"validationErrors": e.Details}
}

// Canned violation kinds. Codes default to the kind's own name so clients
// can keep a registry of known codes.

func EmptyString() *Violation { return newViolation("EmptyString", nil) }

func InvalidEmailFormat() *Violation { return newViolation("InvalidEmailFormat", nil) }

func NegativeValue() *Violation { return newViolation("NegativeValue", nil) }

// NotInRange reports a value outside [min, max]. Either bound may be nil.
func NotInRange(min, max any) *Violation {
	return newViolation("NotInRange", map[string]any{"min": min, "max": max})
}

// LengthNotInRange reports a length outside [min, max].
func LengthNotInRange(min, max any) *Violation {
	return newViolation("LengthNotInRange", map[string]any{"min": min, "max": max})
}

func newViolation(code string, meta map[string]any) *Violation {
	RegisterCode(code)
	return &Violation{Code: code, Meta: meta}
}
