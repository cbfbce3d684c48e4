// Package mutation is the host-integration surface of the validation
// engine: a pre-execution interceptor that validates a mutation's declared
// input arguments before its business logic runs.
package mutation

import (
	"context"

	schema "github.com/graphguard/graphguard/schema"
	validation "github.com/graphguard/graphguard/validation"
)

// ResolveFunc executes a mutation's business logic. Arguments are the
// already-coerced argument values, keyed by declared argument name.
type ResolveFunc func(ctx context.Context, args map[string]any) (any, error)

// Definition describes one mutation: its external metadata, its declared
// arguments and the resolver implementing it.
//
// General contract
//   - Arguments mirror the schema declaration; the host's coercion layer is
//     expected to have shaped the values accordingly before Resolve runs.
//   - Resolve must not be invoked when validation failed; the validation
//     error is returned to the host in its place.
//   - Name and Description are carried unchanged through any wrapping so
//     the host can keep serving the original metadata.
type Definition struct {
	Name        string
	Description string
	Arguments   []*schema.InputValue
	Resolve     ResolveFunc
}

// FromSchemaField builds a Definition for a declared mutation field,
// binding fn as its resolver.
func FromSchemaField(f *schema.Field, fn ResolveFunc) Definition {
	return Definition{
		Name:        f.Name,
		Description: f.Description,
		Arguments:   f.Arguments,
		Resolve:     fn,
	}
}

// Validated returns a copy of def whose resolver validates every declared
// input-object argument with engine before delegating to the original
// resolver. Arguments whose types are not input objects, and absent or null
// arguments, pass through untouched. Transforms applied by validators are
// visible to the wrapped resolver.
func Validated(def Definition, engine *validation.Engine) Definition {
	inner := def.Resolve
	out := def
	out.Resolve = func(ctx context.Context, args map[string]any) (any, error) {
		for _, arg := range def.Arguments {
			tree, _ := args[arg.Name].(map[string]any)
			if err := engine.Validate(ctx, tree, arg.Type); err != nil {
				return nil, err
			}
		}
		return inner(ctx, args)
	}
	return out
}
