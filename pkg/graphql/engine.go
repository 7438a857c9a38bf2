package graphql

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/graphql-go/graphql"

	"github.com/raywall/cattable/pkg/keypath"
)

// GraphQLEngine executa consultas GraphQL em processo sobre o conjunto de
// linhas. O schema é gerado da mesma tabela de campos usada pelo deriver.
type GraphQLEngine struct {
	Schema graphql.Schema
	rows   []map[string]any
	paths  []string
}

// NewGraphQLEngine monta o schema a partir do formato do registro. As linhas
// devem estar no formato JSON do registro (ver cats.Cat.AsMap).
func NewGraphQLEngine(schema keypath.Schema, rows []map[string]any) (*GraphQLEngine, error) {
	engine := &GraphQLEngine{
		rows:  rows,
		paths: keypath.Derive(schema),
	}

	gqlSchema, err := engine.buildSchema(schema)
	if err != nil {
		return nil, fmt.Errorf("erro ao montar schema GraphQL: %w", err)
	}

	engine.Schema = gqlSchema
	return engine, nil
}

func (ge *GraphQLEngine) Execute(ctx context.Context, query string, variables map[string]interface{}) *graphql.Result {
	params := graphql.Params{
		Schema:         ge.Schema,
		RequestString:  query,
		VariableValues: variables,
		Context:        ctx,
	}
	return graphql.Do(params)
}

func (ge *GraphQLEngine) buildSchema(schema keypath.Schema) (graphql.Schema, error) {
	row := buildObject("Row", schema)
	row.AddFieldConfig("key", &graphql.Field{Type: graphql.NewNonNull(graphql.ID)})

	rootQueryFields := graphql.Fields{
		"rows": &graphql.Field{
			Type:        graphql.NewList(row),
			Description: "Linhas da tabela, opcionalmente filtradas por nome",
			Args: graphql.FieldConfigArgument{
				"name": &graphql.ArgumentConfig{Type: graphql.String},
			},
			Resolve: ge.resolveRows,
		},
		"row": &graphql.Field{
			Type: row,
			Args: graphql.FieldConfigArgument{
				"key": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: ge.resolveRow,
		},
		"paths": &graphql.Field{
			Type:        graphql.NewList(graphql.String),
			Description: "Caminhos de coluna derivados do registro",
			Resolve: func(graphql.ResolveParams) (interface{}, error) {
				return ge.paths, nil
			},
		},
	}

	return graphql.NewSchema(graphql.SchemaConfig{
		Query: graphql.NewObject(graphql.ObjectConfig{
			Name:   "Query",
			Fields: rootQueryFields,
		}),
	})
}

func (ge *GraphQLEngine) resolveRows(p graphql.ResolveParams) (interface{}, error) {
	name, filtered := p.Args["name"].(string)
	if !filtered {
		return ge.rows, nil
	}

	out := make([]map[string]any, 0, len(ge.rows))
	for _, r := range ge.rows {
		if fmt.Sprint(r["name"]) == name {
			out = append(out, r)
		}
	}
	return out, nil
}

func (ge *GraphQLEngine) resolveRow(p graphql.ResolveParams) (interface{}, error) {
	key, _ := p.Args["key"].(string)
	for _, r := range ge.rows {
		if fmt.Sprint(r["key"]) == key {
			return r, nil
		}
	}
	return nil, nil
}

// buildObject cria o tipo objeto de um nível do registro. Nomes de tipos
// aninhados seguem o caminho: Row -> RowAttributes -> ...
func buildObject(name string, schema keypath.Schema) *graphql.Object {
	fields := graphql.Fields{}
	for _, f := range schema {
		fields[f.Name] = &graphql.Field{Type: fieldType(name, f)}
	}
	return graphql.NewObject(graphql.ObjectConfig{
		Name:   name,
		Fields: fields,
	})
}

func fieldType(parent string, f keypath.Field) graphql.Output {
	switch f.Kind {
	case keypath.Nested:
		if len(f.Children) == 0 {
			return graphql.String
		}
		return buildObject(parent+exportName(f.Name), f.Children)
	case keypath.List:
		if len(f.Children) > 0 {
			return graphql.NewList(buildObject(parent+exportName(f.Name)+"Item", f.Children))
		}
		return graphql.NewList(scalarType(f.Scalar))
	default:
		return scalarType(f.Scalar)
	}
}

func scalarType(k reflect.Kind) *graphql.Scalar {
	switch k {
	case reflect.Bool:
		return graphql.Boolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return graphql.Int
	case reflect.Float32, reflect.Float64:
		return graphql.Float
	default:
		return graphql.String
	}
}

func exportName(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
