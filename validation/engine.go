package validation

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"time"

	eventbus "github.com/graphguard/graphguard/internal/eventbus"
	events "github.com/graphguard/graphguard/internal/events"
	passid "github.com/graphguard/graphguard/internal/passid"
	schema "github.com/graphguard/graphguard/schema"
)

// Engine orchestrates one validation pass over a mutation input tree.
// It is read-only after construction and safe for concurrent use; the input
// tree handed to Validate is exclusively owned by that call.
type Engine struct {
	schema   *schema.Schema
	registry *Registry
}

func NewEngine(s *schema.Schema, r *Registry) *Engine {
	return &Engine{schema: s, registry: r}
}

// Validate walks input against its declared argument type and runs every
// registered field validator. Only when no field-level violation was found
// does it run whole-object validators, nested subtrees first and the root
// last so the root observes already-transformed leaf values.
//
// Field validators returning a changed value have the change applied to the
// input tree in place. All violations of the pass are returned as a single
// *AggregateError; nil means the input is valid. Errors that do not
// implement Error are programming failures and propagate unwrapped.
//
// A nil input and argument types that do not resolve to an input object
// validate trivially.
func (e *Engine) Validate(ctx context.Context, input map[string]any, argType *schema.TypeRef) error {
	if argType == nil {
		return fmt.Errorf("validate: nil argument type")
	}
	root, err := e.namedType(argType.UnwrapNonNull())
	if err != nil {
		return err
	}
	if root.Kind != schema.TypeKindInputObject || input == nil {
		return nil
	}

	ctx, _ = passid.NewContext(ctx)
	start := time.Now()
	eventbus.Publish(ctx, events.ValidationStart{InputType: root.Name})

	var (
		details  []Detail
		fields   []*entry
		subtrees []subtreeTask
	)
	defer func() {
		eventbus.Publish(ctx, events.ValidationFinish{
			InputType:    root.Name,
			FieldTasks:   len(fields),
			SubtreeTasks: len(subtrees),
			Violations:   len(details),
			Duration:     time.Since(start),
		})
	}()

	fields, subtrees, err = e.unpack(input, root)
	if err != nil {
		return err
	}

	for _, task := range fields {
		fn := e.registry.FieldValidator(task.owner.Name, task.name)
		if fn == nil {
			continue
		}
		newValue, err := fn(ctx, task.value)
		if err != nil {
			var verr Error
			if !errors.As(err, &verr) {
				return err
			}
			p := task.path(true)
			for _, d := range verr.Details() {
				d.Path = p
				details = append(details, d)
			}
			continue
		}
		if !reflect.DeepEqual(newValue, task.value) {
			e.applyChange(input, task, newValue)
			task.value = newValue
		}
	}

	// Field-level violations gate the subtree phase: cross-field checks over
	// fields already known malformed would only produce misleading errors.
	if len(details) == 0 {
		all := append(subtrees, subtreeTask{value: input, owner: root})
		for _, st := range all {
			ov := e.registry.WholeValidator(st.owner.Name)
			if ov == nil {
				continue
			}
			if err := ov.ValidateObject(ctx, st.value); err != nil {
				var verr Error
				if !errors.As(err, &verr) {
					return err
				}
				details = append(details, verr.Details()...)
			}
		}
	}

	if len(details) > 0 {
		return &AggregateError{Details: details}
	}
	return nil
}

// applyChange overwrites the task's field inside the input tree with
// newValue, relocating the owning container by re-walking the task's
// internal path segment by segment.
func (e *Engine) applyChange(input map[string]any, task *entry, newValue any) {
	p := task.path(false)
	container := any(input)
	for _, seg := range p[:len(p)-1] {
		switch s := seg.(type) {
		case string:
			m, ok := container.(map[string]any)
			if !ok {
				return
			}
			container = m[s]
		case int:
			list, ok := container.([]any)
			if !ok || s < 0 || s >= len(list) {
				return
			}
			container = list[s]
		}
	}
	if m, ok := container.(map[string]any); ok {
		m[task.name] = newValue
	}
}
