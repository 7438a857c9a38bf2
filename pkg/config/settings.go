package config

import (
	"os"
	"reflect"
	"strconv"
	"strings"
)

// Settings são as configurações do processo lidas do ambiente.
type Settings struct {
	ConfigFile   string   `env:"CATTABLE_CONFIG_FILE"`
	LogLevel     string   `env:"CATTABLE_LOG_LEVEL"`  // sobrescreve logging.level do YAML
	LogFormat    string   `env:"CATTABLE_LOG_FORMAT"` // sobrescreve logging.format do YAML
	OutputFormat string   `env:"OUTPUT_FORMAT" envDefault:"text"`
	Hidden       []string `env:"CATTABLE_HIDDEN"`
}

// LookupFunc obtém uma variável de ambiente (os.LookupEnv por padrão).
type LookupFunc func(key string) (string, bool)

// LoadSettings lê as Settings do ambiente do processo.
func LoadSettings() (Settings, error) {
	var s Settings
	err := LoadEnv(&s, os.LookupEnv)
	return s, err
}

// LoadEnv preenche uma struct a partir das tags "env" e "envDefault".
// Structs aninhadas (e ponteiros para struct) são processadas recursivamente;
// campos []string recebem valores separados por vírgula.
func LoadEnv(target any, lookup LookupFunc) error {
	val := reflect.ValueOf(target)
	if val.Kind() != reflect.Pointer || val.IsNil() || val.Elem().Kind() != reflect.Struct {
		return &InvalidSettingsError{Type: reflect.TypeOf(target)}
	}
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return loadStruct(val.Elem(), lookup)
}

func loadStruct(val reflect.Value, lookup LookupFunc) error {
	typ := val.Type()

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		fieldType := typ.Field(i)

		if !field.CanSet() {
			continue
		}

		switch {
		case field.Kind() == reflect.Struct:
			if err := loadStruct(field, lookup); err != nil {
				return err
			}
			continue
		case field.Kind() == reflect.Pointer && field.Type().Elem().Kind() == reflect.Struct:
			if field.IsNil() {
				field.Set(reflect.New(field.Type().Elem()))
			}
			if err := loadStruct(field.Elem(), lookup); err != nil {
				return err
			}
			continue
		}

		envTag := fieldType.Tag.Get("env")
		if envTag == "" {
			continue
		}

		raw, ok := lookup(envTag)
		if !ok || raw == "" {
			raw = fieldType.Tag.Get("envDefault")
		}
		if raw == "" {
			continue
		}

		if err := setFieldValue(field, raw); err != nil {
			return &FieldError{
				FieldName: fieldType.Name,
				EnvVar:    envTag,
				Value:     raw,
				Err:       err,
			}
		}
	}

	return nil
}

func setFieldValue(field reflect.Value, value string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(value, 10, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetInt(n)

	case reflect.Bool:
		b, err := strconv.ParseBool(strings.ToLower(value))
		if err != nil {
			return err
		}
		field.SetBool(b)

	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(value, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetFloat(f)

	case reflect.Slice:
		if field.Type().Elem().Kind() != reflect.String {
			return &UnsupportedTypeError{Type: field.Type()}
		}
		field.Set(reflect.ValueOf(SplitList(value)))

	default:
		return &UnsupportedTypeError{Type: field.Type()}
	}

	return nil
}

// SplitList separa uma lista por vírgulas, descartando itens vazios.
func SplitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
