package engine

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/raywall/cattable/pkg/config"
	"gopkg.in/yaml.v3"
)

// Load é o atalho usado pela CLI: carrega e valida a configuração da página.
func Load(source string) (*config.PageConfig, error) {
	return NewLoader().Load(context.Background(), source)
}

// LoadOrDefault carrega a configuração informada ou, se source for vazio,
// devolve a página padrão dos gatos.
func LoadOrDefault(source string) (*config.PageConfig, error) {
	if strings.TrimSpace(source) == "" {
		return config.Default(), nil
	}
	return Load(source)
}

// Loader lê o YAML da página, resolve ${env.*} e valida o resultado.
type Loader struct {
	validator *config.ConfigValidator
	lookup    config.LookupFunc
}

// NewLoader cria um Loader que resolve variáveis pelo ambiente do processo.
func NewLoader() *Loader {
	return &Loader{
		validator: config.NewValidator(),
		lookup:    os.LookupEnv,
	}
}

// WithLookup troca a fonte das variáveis usadas em ${env.*}.
func (l *Loader) WithLookup(lookup config.LookupFunc) *Loader {
	l.lookup = lookup
	return l
}

// Load lê a configuração de um arquivo local ("page.yaml" ou "file://page.yaml").
func (l *Loader) Load(ctx context.Context, source string) (*config.PageConfig, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := strings.TrimPrefix(source, "file://")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("falha leitura config (%s): %w", source, err)
	}

	return l.Parse(data)
}

// Parse decodifica, interpola e valida um documento YAML.
func (l *Loader) Parse(data []byte) (*config.PageConfig, error) {
	var cfg config.PageConfig

	// 1. Unmarshal (YAML -> Struct)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("YAML malformado: %w", err)
	}

	// 2. Variáveis de ambiente
	config.Interpolate(&cfg, l.lookup)

	// 3. Validation
	if l.validator != nil {
		if err := l.validator.Validate(&cfg); err != nil {
			return nil, fmt.Errorf("validação da configuração falhou: %w", err)
		}
	}

	return &cfg, nil
}
