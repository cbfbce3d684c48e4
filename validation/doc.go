// Package validation implements declarative validation of GraphQL mutation
// inputs: a breadth-first traversal of an input value against its declared
// schema type, orchestration of user-supplied validators, and aggregation of
// every violation found into one structured error.
//
// # Model
//
// The traversal flattens an arbitrarily nested input object graph into two
// ordered worklists:
//
//   - Field tasks: scalar (and scalar-list) values to validate in
//     isolation. A scalar list is a single unit; its elements are never
//     split into separate tasks.
//   - Subtree tasks: nested input objects (including list elements) to
//     validate as a whole for cross-field invariants.
//
// Tasks are produced in breadth-first discovery order over the schema's
// field declaration order, which fixes the order violations appear in the
// aggregate report. Null objects, null lists and null list elements are
// valid states and simply produce no tasks.
//
// # Two phases
//
// The engine first runs every field validator. A validator either accepts
// the value, returns a replacement (applied to the input tree in place), or
// reports violations. Only when zero field-level violations were collected
// does the engine run whole-object validators: discovered subtrees first,
// the root object last, so the root sees fully validated and transformed
// leaves. This gate keeps cross-field checks from firing over values
// already known malformed.
//
// # Errors
//
// Every violation carries a stable code, an optional structured meta
// payload and a path locating it in the submitted input. The engine
// converts violations into detail records and raises them together as one
// *AggregateError; errors that do not implement Error are treated as
// programming failures and propagate unchanged.
//
// Validators are resolved through a Registry binding input object type
// names to InputValidator implementations; cross-field checks are declared
// by additionally implementing ObjectValidator.
package validation
