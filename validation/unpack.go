package validation

import (
	"fmt"

	"github.com/graphguard/graphguard/schema"
)

// subtreeTask marks a nested input object to be validated as a whole once
// all field-level validation of the pass has succeeded.
type subtreeTask struct {
	value map[string]any
	owner *schema.Type
}

// unpack runs a breadth-first walk over the input tree, flattening it into
// an ordered list of field tasks (scalars and scalar lists to validate in
// isolation) and an ordered list of subtree tasks (nested objects and list
// elements to validate as a whole).
//
// Fields are visited in schema declaration order, filtered to the keys
// present in the submitted map, which makes task order deterministic for a
// given input. Null nested objects, null lists and null list elements are
// valid and skipped without producing tasks.
func (e *Engine) unpack(input map[string]any, root *schema.Type) ([]*entry, []subtreeTask, error) {
	var fields []*entry
	var subtrees []subtreeTask

	queue := enqueueFields(nil, input, root, nil, nil)
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		fieldDef := current.owner.InputField(current.name)
		if fieldDef == nil {
			return nil, nil, fmt.Errorf("input field %q is not declared on type %q", current.name, current.owner.Name)
		}
		fieldType := fieldDef.Type.UnwrapNonNull()

		if fieldType.IsList() {
			elemType, err := e.namedType(fieldType.Unwrap().UnwrapNonNull())
			if err != nil {
				return nil, nil, err
			}
			if elemType.Kind != schema.TypeKindInputObject {
				// Scalar elements: the whole list is one unit of validation.
				fields = append(fields, current)
				continue
			}
			items, ok := current.value.([]any)
			if current.value != nil && !ok {
				return nil, nil, fmt.Errorf("input field %q on type %q: expected a list, got %T",
					current.name, current.owner.Name, current.value)
			}
			for idx, item := range items {
				if item == nil {
					continue
				}
				obj, ok := item.(map[string]any)
				if !ok {
					return nil, nil, fmt.Errorf("input field %q on type %q: list element %d is not an input object, got %T",
						current.name, current.owner.Name, idx, item)
				}
				subtrees = append(subtrees, subtreeTask{value: obj, owner: elemType})
				i := idx
				queue = enqueueFields(queue, obj, elemType, current, &i)
			}
			continue
		}

		namedType, err := e.namedType(fieldType)
		if err != nil {
			return nil, nil, err
		}
		if namedType.Kind == schema.TypeKindInputObject {
			if current.value == nil {
				continue
			}
			obj, ok := current.value.(map[string]any)
			if !ok {
				return nil, nil, fmt.Errorf("input field %q on type %q: expected an input object, got %T",
					current.name, current.owner.Name, current.value)
			}
			subtrees = append(subtrees, subtreeTask{value: obj, owner: namedType})
			queue = enqueueFields(queue, obj, namedType, current, nil)
			continue
		}

		fields = append(fields, current)
	}
	return fields, subtrees, nil
}

// enqueueFields appends one entry per declared field of owner present in
// obj, in declaration order.
func enqueueFields(queue []*entry, obj map[string]any, owner *schema.Type, parent *entry, index *int) []*entry {
	for _, fieldDef := range owner.InputFields {
		value, ok := obj[fieldDef.Name]
		if !ok {
			continue
		}
		queue = append(queue, &entry{
			name:   fieldDef.Name,
			value:  value,
			owner:  owner,
			parent: parent,
			index:  index,
		})
	}
	return queue
}

// namedType resolves a fully unwrapped type reference to its declaration.
func (e *Engine) namedType(ref *schema.TypeRef) (*schema.Type, error) {
	name := ref.GetNamedType()
	t := e.schema.Types[name]
	if t == nil {
		return nil, fmt.Errorf("unknown type %q", name)
	}
	return t, nil
}
