package validation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("PersonInput", fieldValidator{fields: personFields()}))
	require.Error(t, r.Register("PersonInput", fieldValidator{fields: personFields()}))
	require.Panics(t, func() {
		r.MustRegister("PersonInput", fieldValidator{fields: personFields()})
	})
}

func TestRegistryFieldValidatorLookup(t *testing.T) {
	r := defaultRegistry(t)

	require.NotNil(t, r.FieldValidator("PersonInput", "theName"))
	require.Nil(t, r.FieldValidator("PersonInput", "nicknames"), "undeclared field resolves to identity")
	require.Nil(t, r.FieldValidator("UnknownInput", "theName"))
}

func TestRegistryWholeValidatorLookup(t *testing.T) {
	r := NewRegistry()
	r.MustRegister("PersonInput", fieldValidator{fields: personFields()})
	r.MustRegister("AccountInput", objectValidator{
		fieldValidator: fieldValidator{fields: accountFields()},
		validate: func(ctx context.Context, obj map[string]any) error { return nil },
	})

	require.Nil(t, r.WholeValidator("PersonInput"), "field-only validators declare no whole-object check")
	require.NotNil(t, r.WholeValidator("AccountInput"))
	require.Nil(t, r.WholeValidator("UnknownInput"))
}

func TestLookupsDoNotInvokeValidators(t *testing.T) {
	invoked := false
	r := NewRegistry()
	r.MustRegister("PersonInput", fieldValidator{fields: map[string]FieldFunc{
		"theName": func(ctx context.Context, value any) (any, error) {
			invoked = true
			return value, nil
		},
	}})

	require.NotNil(t, r.FieldValidator("PersonInput", "theName"))
	r.WholeValidator("PersonInput")
	require.False(t, invoked)
}
