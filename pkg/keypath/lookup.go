package keypath

import (
	"reflect"
	"strings"
)

// Lookup navega por um caminho pontuado dentro de uma struct (pelos nomes da
// tag json) ou de um map[string]any. Retorna false se algum segmento não existir.
// Listas não são indexadas, seguindo a mesma regra de Derive.
func Lookup(v any, path string) (any, bool) {
	if path == "" {
		return nil, false
	}

	current := reflect.ValueOf(v)
	for _, segment := range strings.Split(path, Separator) {
		current = deref(current)
		if !current.IsValid() {
			return nil, false
		}

		switch current.Kind() {
		case reflect.Struct:
			idx, ok := fieldIndex(current.Type(), segment)
			if !ok {
				return nil, false
			}
			current = current.Field(idx)

		case reflect.Map:
			if current.Type().Key().Kind() != reflect.String {
				return nil, false
			}
			key := reflect.ValueOf(segment).Convert(current.Type().Key())
			value := current.MapIndex(key)
			if !value.IsValid() {
				return nil, false
			}
			current = value

		default:
			return nil, false
		}
	}

	current = deref(current)
	if !current.IsValid() || !current.CanInterface() {
		return nil, false
	}
	return current.Interface(), true
}

func fieldIndex(t reflect.Type, segment string) (int, bool) {
	for i := 0; i < t.NumField(); i++ {
		if name, ok := fieldName(t.Field(i)); ok && name == segment {
			return i, true
		}
	}
	return 0, false
}

func deref(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}
