package config

// PageConfig representa a estrutura raiz do arquivo YAML da página.
type PageConfig struct {
	Version string            `yaml:"version" validate:"required"`
	Page    PageDetails       `yaml:"page" validate:"required"`
	Labels  map[string]string `yaml:"labels"` // nil = mapeamento padrão
	Logging LoggingConf       `yaml:"logging"`
	Metrics MetricsConf       `yaml:"metrics"`
}

// PageDetails descreve a tabela: colunas, nomes sintéticos e estado inicial.
type PageDetails struct {
	Title     string       `yaml:"title" validate:"required"`
	Strict    bool         `yaml:"strict"`    // nomes desconhecidos viram erro de configuração
	Synthetic []string     `yaml:"synthetic"` // nomes fora do registro, ex: "actions"
	Hidden    []string     `yaml:"hidden"`    // seleção inicial do menu
	Columns   []ColumnConf `yaml:"columns" validate:"required,min=1,dive"`
}

// ColumnConf é uma coluna declarada no YAML. Render é uma expressão CEL ou um
// texto com interpolações ${...}.
type ColumnConf struct {
	Title  string `yaml:"title" validate:"required"`
	Name   string `yaml:"name"`
	Render string `yaml:"render"`
}

type LoggingConf struct {
	Enabled bool   `yaml:"enabled"`
	Level   string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Format  string `yaml:"format" validate:"omitempty,oneof=json console"`
}

type MetricsConf struct {
	Datadog DatadogConf `yaml:"datadog"`
}

type DatadogConf struct {
	Enabled   bool   `yaml:"enabled"`
	Addr      string `yaml:"addr" validate:"required_if=Enabled true"`
	Namespace string `yaml:"namespace"`
}

// Default é a página de gatos usada quando nenhum arquivo é informado.
func Default() *PageConfig {
	return &PageConfig{
		Version: "1.0",
		Page: PageDetails{
			Title:     "Hello",
			Synthetic: []string{"actions"},
			Columns: []ColumnConf{
				{Title: "Name", Name: "name"},
				{Title: "Age", Name: "age"},
				{Title: "Action", Name: "actions", Render: "Invite ${row.name} | Delete"},
			},
		},
		Logging: LoggingConf{Enabled: true, Level: "info", Format: "console"},
	}
}
