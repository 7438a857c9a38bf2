package engine

import (
	"errors"
	"fmt"
	"sort"

	"github.com/raywall/cattable/pkg/cats"
	"github.com/raywall/cattable/pkg/columns"
	"github.com/raywall/cattable/pkg/config"
	"github.com/raywall/cattable/pkg/keypath"
	"github.com/raywall/cattable/pkg/labels"
	"github.com/raywall/cattable/pkg/rules"
)

// ValidationReport contém o resultado detalhado da análise.
type ValidationReport struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// Analyze realiza uma inspeção profunda na configuração da página contra o
// formato do registro de gatos.
func Analyze(cfg *config.PageConfig) (*ValidationReport, error) {
	report := &ValidationReport{
		Valid:    true,
		Errors:   []string{},
		Warnings: []string{},
	}

	// 1. Estrutura (tags validate + regras semânticas)
	if err := config.NewValidator().Validate(cfg); err != nil {
		report.Errors = append(report.Errors, err.Error())
	}
	if cfg == nil {
		report.Valid = false
		return report, nil
	}

	rm, err := rules.NewRuleManager()
	if err != nil {
		return nil, fmt.Errorf("falha interna ao iniciar analisador de regras: %w", err)
	}

	paths := keypath.Derive(keypath.Of[cats.Cat]())
	pathSet := keypath.NewSet(paths)

	// 2. Nomes de coluna
	specs := make([]columns.ColumnSpec[cats.Cat], len(cfg.Page.Columns))
	for i, c := range cfg.Page.Columns {
		specs[i] = columns.ColumnSpec[cats.Cat]{Title: c.Title, Name: c.Name}
	}

	var unknownErr *columns.UnknownColumnError
	if err := columns.Validate(specs, pathSet, cfg.Page.Synthetic...); errors.As(err, &unknownErr) {
		for _, name := range unknownErr.Names {
			msg := fmt.Sprintf("Page.Columns: nome '%s' não é caminho do registro nem nome sintético", name)
			if cfg.Page.Strict {
				report.Errors = append(report.Errors, msg)
			} else {
				report.Warnings = append(report.Warnings, msg+" (a coluna ficará vazia)")
			}
		}
	}

	for _, name := range columns.Duplicates(specs) {
		report.Warnings = append(report.Warnings, fmt.Sprintf("Page.Columns: nome '%s' usado por mais de uma coluna", name))
	}

	// 3. Expressões de render
	for i, c := range cfg.Page.Columns {
		if c.Render == "" {
			continue
		}
		if _, err := rm.CompileRender(c.Render); err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Page.Columns[%d] (%s): Erro CEL: %v", i, c.Title, err))
		}
	}

	// 4. Rótulos do menu
	lm := labels.Map(cfg.Labels)
	if cfg.Labels == nil {
		lm = labels.Default()
	} else {
		for _, p := range labels.Missing(lm, paths) {
			report.Warnings = append(report.Warnings, fmt.Sprintf("Labels: caminho '%s' sem rótulo", p))
		}
	}

	keys := make([]string, 0, len(lm))
	for k := range lm {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if !pathSet.Contains(k) {
			report.Warnings = append(report.Warnings, fmt.Sprintf("Labels: chave '%s' não é caminho do registro", k))
		}
	}

	// 5. Seleção inicial
	options := labels.Options(lm, paths)
	offered := labels.Selection(options, cfg.Page.Hidden)
	if len(offered) != len(cfg.Page.Hidden) {
		kept := keypath.NewSet(offered)
		for _, h := range cfg.Page.Hidden {
			if !kept.Contains(h) {
				report.Warnings = append(report.Warnings, fmt.Sprintf("Page.Hidden: '%s' não é oferecido no menu", h))
			}
		}
	}

	if len(report.Errors) > 0 {
		report.Valid = false
	}

	return report, nil
}
