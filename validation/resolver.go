package validation

import (
	"context"
	"fmt"
)

// FieldFunc validates a single field value in isolation and returns the
// value to keep. Returning a value unequal to the input replaces the field
// in the input tree. Failures are reported by returning an error that
// implements Error; any other error is treated as fatal.
//
// For list-of-scalar fields the whole list is passed as one value.
type FieldFunc func(ctx context.Context, value any) (any, error)

// InputValidator declares per-field validation for one input object type.
// The returned map is keyed by the declared input field name; fields without
// an entry are accepted unchanged.
//
// FieldValidators is a pure read of static declarations: it must return the
// same map contents on every call and must not run any validation itself.
type InputValidator interface {
	FieldValidators() map[string]FieldFunc
}

// ObjectValidator is optionally implemented by an InputValidator to check
// cross-field invariants over a whole input object. The engine only runs it
// when every field-level check of the pass succeeded.
//
// The validator may mutate obj in place to transform values. Failure details
// must carry their own Path: the engine cannot infer which fields of the
// object caused a whole-object failure.
type ObjectValidator interface {
	ValidateObject(ctx context.Context, obj map[string]any) error
}

// Registry maps input object type names to their validators.
type Registry struct {
	byType map[string]InputValidator
}

func NewRegistry() *Registry {
	return &Registry{byType: make(map[string]InputValidator)}
}

// Register binds v to the input object type with the given name. Binding a
// type twice is a programming error.
func (r *Registry) Register(typeName string, v InputValidator) error {
	if _, ok := r.byType[typeName]; ok {
		return fmt.Errorf("validator already registered for input type %q", typeName)
	}
	r.byType[typeName] = v
	return nil
}

// MustRegister is Register, panicking on duplicate bindings. Intended for
// package-level wiring at startup.
func (r *Registry) MustRegister(typeName string, v InputValidator) {
	if err := r.Register(typeName, v); err != nil {
		panic(err)
	}
}

// FieldValidator returns the field validator declared for the given input
// type and field, or nil when the field is accepted unchanged.
func (r *Registry) FieldValidator(typeName, fieldName string) FieldFunc {
	v, ok := r.byType[typeName]
	if !ok {
		return nil
	}
	return v.FieldValidators()[fieldName]
}

// WholeValidator returns the whole-object validator declared for the given
// input type, or nil when none exists.
func (r *Registry) WholeValidator(typeName string) ObjectValidator {
	v, ok := r.byType[typeName]
	if !ok {
		return nil
	}
	if ov, ok := v.(ObjectValidator); ok {
		return ov
	}
	return nil
}
