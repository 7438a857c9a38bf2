package config

import (
	"fmt"
	"reflect"
)

// InvalidSettingsError é retornado quando LoadEnv recebe algo que não é
// ponteiro para struct.
type InvalidSettingsError struct {
	Type reflect.Type
}

func (e *InvalidSettingsError) Error() string {
	if e.Type == nil {
		return "config: destino deve ser ponteiro para struct, recebido nil"
	}
	return fmt.Sprintf("config: destino deve ser ponteiro para struct, recebido %s", e.Type)
}

// FieldError indica falha ao converter o valor de uma variável de ambiente.
type FieldError struct {
	FieldName string
	EnvVar    string
	Value     string
	Err       error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("config: erro ao definir campo %s a partir de %s=%s: %v",
		e.FieldName, e.EnvVar, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// UnsupportedTypeError indica um tipo de campo sem conversão a partir de texto.
type UnsupportedTypeError struct {
	Type reflect.Type
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("config: tipo não suportado %s", e.Type)
}
