package validation

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	schema "github.com/graphguard/graphguard/schema"
)

const accountSDL = `
type Query {
  ping: String
}

type Mutation {
  updateAccount(input: AccountInput): Boolean
}

input PersonInput {
  theName: String
  theAge: Int
  email: String
  nicknames: [String]
}

input AccountInput {
  email: String
  people: [PersonInput]
  numbers: [Int]
  thePerson: PersonInput
}
`

func mustSchema(t *testing.T) *schema.Schema {
	t.Helper()
	s, err := schema.FromSDL(accountSDL)
	require.NoError(t, err)
	return s
}

// fieldValidator declares field-level checks only.
type fieldValidator struct {
	fields map[string]FieldFunc
}

func (v fieldValidator) FieldValidators() map[string]FieldFunc { return v.fields }

// objectValidator additionally declares a whole-object check.
type objectValidator struct {
	fieldValidator
	validate func(ctx context.Context, obj map[string]any) error
}

func (v objectValidator) ValidateObject(ctx context.Context, obj map[string]any) error {
	if v.validate == nil {
		return nil
	}
	return v.validate(ctx, obj)
}

func validateEmail(_ context.Context, value any) (any, error) {
	if value == nil {
		return value, nil
	}
	email := strings.TrimSpace(value.(string))
	if !strings.Contains(email, "@") {
		return nil, InvalidEmailFormat()
	}
	return email, nil
}

func validateTheName(_ context.Context, value any) (any, error) {
	if value == nil {
		return value, nil
	}
	name := value.(string)
	if name == "" {
		return nil, EmptyString()
	}
	if len(name) > 300 {
		return nil, LengthNotInRange(1, 300)
	}
	return name, nil
}

func validateTheAge(_ context.Context, value any) (any, error) {
	if value == nil {
		return value, nil
	}
	if value.(int) < 0 {
		return nil, NegativeValue()
	}
	return value, nil
}

func validateNumbers(_ context.Context, value any) (any, error) {
	if value == nil {
		return value, nil
	}
	numbers := value.([]any)
	if len(numbers) < 1 || len(numbers) > 3 {
		return nil, LengthNotInRange(1, 3)
	}
	return value, nil
}

func personFields() map[string]FieldFunc {
	return map[string]FieldFunc{
		"theName": validateTheName,
		"theAge":  validateTheAge,
		"email":   validateEmail,
	}
}

func accountFields() map[string]FieldFunc {
	return map[string]FieldFunc{
		"email":   validateEmail,
		"numbers": validateNumbers,
	}
}

func defaultRegistry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry()
	r.MustRegister("AccountInput", fieldValidator{fields: accountFields()})
	r.MustRegister("PersonInput", fieldValidator{fields: personFields()})
	return r
}

func newTestEngine(t *testing.T, r *Registry) *Engine {
	t.Helper()
	return NewEngine(mustSchema(t), r)
}

func scalarRef(name string) *schema.TypeRef { return schema.NamedType(name) }

func nonNullAccountRef() *schema.TypeRef {
	return schema.NonNullType(schema.NamedType("AccountInput"))
}

func accountType(t *testing.T, e *Engine) *schema.TypeRef {
	t.Helper()
	arg := e.schema.MutationField("updateAccount").Argument("input")
	require.NotNil(t, arg)
	return arg.Type
}
