package keypath

import (
	"encoding"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// Kind classifica um campo do registro.
type Kind int

const (
	// Primitive é um valor terminal (string, número, bool...).
	Primitive Kind = iota
	// Nested é um objeto cujos sub-campos também são endereçáveis.
	Nested
	// List é uma coleção opaca: seus elementos não geram caminhos.
	List
)

func (k Kind) String() string {
	switch k {
	case Primitive:
		return "primitive"
	case Nested:
		return "nested"
	case List:
		return "list"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Field descreve um campo do registro.
//
// Para campos Nested, Children contém os sub-campos. Para campos List cujo
// elemento é uma struct, Children descreve o elemento (usado apenas por quem
// precisa do formato, como o schema GraphQL; Derive ignora).
// Scalar guarda o reflect.Kind do valor primitivo, ou do elemento da lista.
type Field struct {
	Name     string
	Kind     Kind
	Scalar   reflect.Kind
	Children Schema
}

// Schema é a tabela ordenada de campos de um registro.
type Schema []Field

// Lookup retorna o campo de nível superior com o nome informado.
func (s Schema) Lookup(name string) (Field, bool) {
	for _, f := range s {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

var (
	jsonMarshalerType = reflect.TypeOf((*json.Marshaler)(nil)).Elem()
	textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
)

// Of gera o Schema do tipo T. Entra em pânico se T não for struct,
// pois é usado com tipos conhecidos em tempo de compilação.
func Of[T any]() Schema {
	s, err := FromType(reflect.TypeOf((*T)(nil)).Elem())
	if err != nil {
		panic(err)
	}
	return s
}

// FromType monta o Schema de uma struct por reflection.
func FromType(t reflect.Type) (Schema, error) {
	if t == nil {
		return nil, fmt.Errorf("keypath: tipo nulo")
	}
	t = derefType(t)
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("keypath: esperado struct, recebido %s", t.Kind())
	}
	return structSchema(t, map[reflect.Type]bool{})
}

func structSchema(t reflect.Type, visiting map[reflect.Type]bool) (Schema, error) {
	if visiting[t] {
		return nil, fmt.Errorf("keypath: tipo recursivo %s não suportado", t)
	}
	visiting[t] = true
	defer delete(visiting, t)

	schema := make(Schema, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Tag.Get("keypath") == "-" {
			continue
		}
		name, ok := fieldName(sf)
		if !ok {
			continue
		}

		field, err := describe(name, sf.Type, visiting)
		if err != nil {
			return nil, fmt.Errorf("campo '%s': %w", name, err)
		}
		schema = append(schema, field)
	}
	return schema, nil
}

func describe(name string, t reflect.Type, visiting map[reflect.Type]bool) (Field, error) {
	t = derefType(t)

	switch {
	case isOpaqueStruct(t):
		return Field{Name: name, Kind: Primitive, Scalar: reflect.String}, nil

	case t.Kind() == reflect.Struct:
		children, err := structSchema(t, visiting)
		if err != nil {
			return Field{}, err
		}
		return Field{Name: name, Kind: Nested, Scalar: reflect.Struct, Children: children}, nil

	case t.Kind() == reflect.Slice || t.Kind() == reflect.Array || t.Kind() == reflect.Map:
		field := Field{Name: name, Kind: List}
		elem := derefType(t.Elem())
		field.Scalar = elem.Kind()
		if elem.Kind() == reflect.Struct && !isOpaqueStruct(elem) {
			children, err := structSchema(elem, visiting)
			if err != nil {
				return Field{}, err
			}
			field.Children = children
		}
		return field, nil

	default:
		return Field{Name: name, Kind: Primitive, Scalar: t.Kind()}, nil
	}
}

// isOpaqueStruct identifica structs que se serializam como valor único (ex: time.Time).
func isOpaqueStruct(t reflect.Type) bool {
	if t.Kind() != reflect.Struct {
		return false
	}
	pt := reflect.PointerTo(t)
	return t.Implements(jsonMarshalerType) || pt.Implements(jsonMarshalerType) ||
		t.Implements(textMarshalerType) || pt.Implements(textMarshalerType)
}

// fieldName resolve o segmento de caminho de um campo a partir da tag json.
func fieldName(sf reflect.StructField) (string, bool) {
	if sf.PkgPath != "" {
		return "", false
	}
	tag := sf.Tag.Get("json")
	if tag == "-" {
		return "", false
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		name = sf.Name
	}
	return name, true
}

func derefType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
