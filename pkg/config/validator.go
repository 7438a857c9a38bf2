package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

type ConfigValidator struct {
	validate *validator.Validate
}

// NewValidator cria uma nova instância do validador
func NewValidator() *ConfigValidator {
	return &ConfigValidator{
		validate: validator.New(),
	}
}

// Validate realiza validações estruturais (tags) e semânticas (lógica)
func (cv *ConfigValidator) Validate(cfg *PageConfig) error {
	if cfg == nil {
		return fmt.Errorf("configuração nula")
	}

	// 1. Validação Estrutural (Tags do struct: required, oneof, etc)
	if err := cv.validate.Struct(cfg); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			var errMsgs []string
			for _, e := range validationErrors {
				errMsgs = append(errMsgs, fmt.Sprintf("Campo '%s' falhou na regra '%s'", e.Namespace(), e.Tag()))
			}
			return fmt.Errorf("erros de validação estrutural:\n- %s", strings.Join(errMsgs, "\n- "))
		}
		return fmt.Errorf("erro de validação estrutural: %w", err)
	}

	// 2. Validação Semântica
	if err := cv.validateSemantics(cfg); err != nil {
		return fmt.Errorf("erro de validação semântica: %w", err)
	}

	return nil
}

func (cv *ConfigValidator) validateSemantics(cfg *PageConfig) error {
	seen := make(map[string]bool)
	for _, name := range cfg.Page.Synthetic {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("nome sintético vazio em 'page.synthetic'")
		}
		if seen[name] {
			return fmt.Errorf("nome sintético duplicado: '%s'", name)
		}
		seen[name] = true
	}

	for path := range cfg.Labels {
		if strings.TrimSpace(path) == "" {
			return fmt.Errorf("'labels' contém caminho vazio")
		}
	}

	for _, h := range cfg.Page.Hidden {
		if h == "" {
			return fmt.Errorf("'page.hidden' contém caminho vazio")
		}
	}

	return nil
}
