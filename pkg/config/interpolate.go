package config

import (
	"os"
	"reflect"
	"regexp"
	"strings"
)

// Captura ${env.NOME}. Outras interpolações (${row.name}) ficam intactas para o CEL.
var envPattern = regexp.MustCompile(`\$\{env\.([A-Za-z_][A-Za-z0-9_]*)\}`)

// Interpolate substitui ${env.NOME} em todas as strings da configuração:
// campos, slices de string e valores de maps. Variáveis ausentes viram "".
func Interpolate(cfg *PageConfig, lookup LookupFunc) {
	if cfg == nil {
		return
	}
	if lookup == nil {
		lookup = os.LookupEnv
	}
	interpolateValue(reflect.ValueOf(cfg).Elem(), lookup)
}

func interpolateValue(v reflect.Value, lookup LookupFunc) {
	switch v.Kind() {
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if v.Field(i).CanSet() {
				interpolateValue(v.Field(i), lookup)
			}
		}

	case reflect.String:
		if v.CanSet() {
			v.SetString(expandEnv(v.String(), lookup))
		}

	case reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			interpolateValue(v.Index(i), lookup)
		}

	case reflect.Map:
		if v.IsNil() || v.Type().Elem().Kind() != reflect.String {
			return
		}
		iter := v.MapRange()
		updates := make(map[string]string)
		for iter.Next() {
			updates[iter.Key().String()] = expandEnv(iter.Value().String(), lookup)
		}
		for k, val := range updates {
			v.SetMapIndex(reflect.ValueOf(k).Convert(v.Type().Key()), reflect.ValueOf(val).Convert(v.Type().Elem()))
		}

	case reflect.Pointer:
		if !v.IsNil() {
			interpolateValue(v.Elem(), lookup)
		}
	}
}

func expandEnv(input string, lookup LookupFunc) string {
	if !strings.Contains(input, "${env.") {
		return input
	}
	return envPattern.ReplaceAllStringFunc(input, func(match string) string {
		name := envPattern.FindStringSubmatch(match)[1]
		val, _ := lookup(name)
		return val
	})
}
