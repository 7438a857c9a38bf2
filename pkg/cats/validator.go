package cats

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator confere as linhas antes de entregá-las à página.
type Validator struct {
	validate *validator.Validate
}

// NewValidator registra a regra "catname" sobre o validador padrão.
func NewValidator() *Validator {
	v := validator.New()
	_ = v.RegisterValidation("catname", func(fl validator.FieldLevel) bool {
		return CatName(fl.Field().String()).Valid()
	})
	return &Validator{validate: v}
}

// Validate valida cada gato e agrega as violações encontradas.
func (cv *Validator) Validate(rows []Cat) error {
	var errMsgs []string
	seenKeys := make(map[string]bool, len(rows))

	for i, row := range rows {
		if row.Key != "" && seenKeys[row.Key] {
			errMsgs = append(errMsgs, fmt.Sprintf("linha[%d]: key duplicada '%s'", i, row.Key))
		}
		seenKeys[row.Key] = true

		if err := cv.validate.Struct(row); err != nil {
			if validationErrors, ok := err.(validator.ValidationErrors); ok {
				for _, e := range validationErrors {
					errMsgs = append(errMsgs, fmt.Sprintf("linha[%d]: campo '%s' falhou na regra '%s'", i, e.Namespace(), e.Tag()))
				}
				continue
			}
			return fmt.Errorf("erro de validação da linha %d: %w", i, err)
		}
	}

	if len(errMsgs) > 0 {
		return fmt.Errorf("dados inválidos:\n- %s", strings.Join(errMsgs, "\n- "))
	}
	return nil
}
