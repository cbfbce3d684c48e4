package schema

import (
	"fmt"
	"strconv"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// FromSDL parses a GraphQL SDL document and builds the corresponding Schema.
// Root operation types are taken from the schema block when present and fall
// back to the conventional Query/Mutation/Subscription names otherwise.
func FromSDL(source string) (*Schema, error) {
	doc, err := parser.ParseSchema(&ast.Source{Name: "schema.graphql", Input: source})
	if err != nil {
		return nil, err
	}

	s := NewSchema("")
	s.MutationType = ""
	for _, def := range doc.Definitions {
		t, err := buildDefinition(def)
		if err != nil {
			return nil, err
		}
		s.AddType(t)
	}

	for _, sd := range doc.Schema {
		s.Description = sd.Description
		for _, op := range sd.OperationTypes {
			switch op.Operation {
			case ast.Query:
				s.SetQueryType(op.Type)
			case ast.Mutation:
				s.SetMutationType(op.Type)
			case ast.Subscription:
				s.SetSubscriptionType(op.Type)
			}
		}
	}
	if s.MutationType == "" {
		if _, ok := s.Types["Mutation"]; ok {
			s.SetMutationType("Mutation")
		}
	}
	if s.SubscriptionType == "" {
		if _, ok := s.Types["Subscription"]; ok {
			s.SetSubscriptionType("Subscription")
		}
	}
	return s, nil
}

func buildDefinition(def *ast.Definition) (*Type, error) {
	switch def.Kind {
	case ast.Scalar:
		return NewType(def.Name, TypeKindScalar, def.Description), nil
	case ast.Enum:
		t := NewType(def.Name, TypeKindEnum, def.Description)
		for _, v := range def.EnumValues {
			t.AddEnumValue(v.Name)
		}
		return t, nil
	case ast.Union:
		t := NewType(def.Name, TypeKindUnion, def.Description)
		for _, name := range def.Types {
			t.AddPossibleType(name)
		}
		return t, nil
	case ast.Object, ast.Interface:
		kind := TypeKindObject
		if def.Kind == ast.Interface {
			kind = TypeKindInterface
		}
		t := NewType(def.Name, kind, def.Description)
		for _, fd := range def.Fields {
			f := NewField(fd.Name, fd.Description, typeRefFromAST(fd.Type))
			for _, arg := range fd.Arguments {
				in := NewInputValue(arg.Name, arg.Description, typeRefFromAST(arg.Type))
				in.SetDefault(astValueToGo(arg.DefaultValue))
				f.AddArgument(in)
			}
			t.AddField(f)
		}
		return t, nil
	case ast.InputObject:
		t := NewType(def.Name, TypeKindInputObject, def.Description)
		for _, fd := range def.Fields {
			in := NewInputValue(fd.Name, fd.Description, typeRefFromAST(fd.Type))
			in.SetDefault(astValueToGo(fd.DefaultValue))
			t.AddInputField(in)
		}
		return t, nil
	default:
		return nil, fmt.Errorf("unsupported definition kind %q for type %q", def.Kind, def.Name)
	}
}

func typeRefFromAST(t *ast.Type) *TypeRef {
	if t == nil {
		return nil
	}
	if t.NonNull {
		return NonNullType(typeRefFromAST(&ast.Type{NamedType: t.NamedType, Elem: t.Elem}))
	}
	if t.NamedType != "" {
		return NamedType(t.NamedType)
	}
	if t.Elem != nil {
		return ListType(typeRefFromAST(t.Elem))
	}
	return nil
}

// astValueToGo converts an AST default value to a Go value
func astValueToGo(value *ast.Value) any {
	if value == nil {
		return nil
	}
	switch value.Kind {
	case ast.IntValue:
		iv, _ := strconv.Atoi(value.Raw)
		return iv
	case ast.FloatValue:
		fv, _ := strconv.ParseFloat(value.Raw, 64)
		return fv
	case ast.StringValue, ast.BlockValue:
		return value.Raw
	case ast.BooleanValue:
		return value.Raw == "true"
	case ast.NullValue:
		return nil
	case ast.EnumValue:
		return value.Raw
	case ast.ListValue:
		out := make([]any, len(value.Children))
		for i, c := range value.Children {
			out[i] = astValueToGo(c.Value)
		}
		return out
	case ast.ObjectValue:
		m := make(map[string]any)
		for _, f := range value.Children {
			m[f.Name] = astValueToGo(f.Value)
		}
		return m
	default:
		return nil
	}
}
