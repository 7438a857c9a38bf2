package engine

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/raywall/cattable/pkg/cats"
	"github.com/raywall/cattable/pkg/columns"
	"github.com/raywall/cattable/pkg/config"
	"github.com/raywall/cattable/pkg/keypath"
	"github.com/raywall/cattable/pkg/labels"
	"github.com/raywall/cattable/pkg/metrics"
	"github.com/raywall/cattable/pkg/render"
	"github.com/raywall/cattable/pkg/rules"
)

// Page é o estado da página: dono do conjunto de caminhos ocultos e da lista
// de colunas derivada dele. Não é segura para uso concorrente; cada evento de
// seleção é tratado até o fim antes do próximo.
type Page struct {
	title   string
	specs   []columns.ColumnSpec[cats.Cat]
	rows    []cats.Cat
	labels  labels.Map
	options []labels.Option

	hidden columns.HiddenSet
	cols   []columns.ResolvedColumn[cats.Cat]

	logger   zerolog.Logger
	recorder *metrics.Recorder
}

// PageOption ajusta a Page na criação.
type PageOption func(*Page)

// WithLogger define o logger da página.
func WithLogger(l zerolog.Logger) PageOption {
	return func(p *Page) { p.logger = l }
}

// WithRecorder define onde as métricas de reconstrução e render são gravadas.
func WithRecorder(r *metrics.Recorder) PageOption {
	return func(p *Page) { p.recorder = r }
}

// WithHidden define a seleção inicial do menu.
func WithHidden(paths ...string) PageOption {
	return func(p *Page) { p.hidden = columns.NewHiddenSet(paths...) }
}

// NewPage monta a página e calcula as colunas iniciais. Mapa de rótulos nulo
// usa o mapeamento padrão.
func NewPage(title string, specs []columns.ColumnSpec[cats.Cat], rows []cats.Cat, lm labels.Map, opts ...PageOption) *Page {
	p := newPage(title, rows, lm, opts)
	p.specs = specs
	p.rebuild()
	return p
}

// NewPageFromConfig monta a página a partir do YAML: compila os renders CEL e,
// em modo strict, rejeita nomes de coluna desconhecidos.
func NewPageFromConfig(cfg *config.PageConfig, rows []cats.Cat, opts ...PageOption) (*Page, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuração da página é nula")
	}

	lm := labels.Map(cfg.Labels)
	all := append([]PageOption{WithHidden(cfg.Page.Hidden...)}, opts...)
	p := newPage(cfg.Page.Title, rows, lm, all)

	specs, err := compileSpecs(cfg.Page.Columns, p.logger)
	if err != nil {
		return nil, err
	}

	if cfg.Page.Strict {
		paths := keypath.NewSet(keypath.Derive(keypath.Of[cats.Cat]()))
		if err := columns.Validate(specs, paths, cfg.Page.Synthetic...); err != nil {
			return nil, err
		}
	}

	p.specs = specs
	p.rebuild()
	return p, nil
}

func newPage(title string, rows []cats.Cat, lm labels.Map, opts []PageOption) *Page {
	if lm == nil {
		lm = labels.Default()
	}
	p := &Page{
		title:  title,
		rows:   rows,
		labels: lm,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.options = labels.Options(lm, keypath.Derive(keypath.Of[cats.Cat]()))
	return p
}

// compileSpecs transforma as colunas do YAML em ColumnSpec. Erros de avaliação
// do render não derrubam a página: a célula fica vazia e o erro vai para o log.
func compileSpecs(confs []config.ColumnConf, logger zerolog.Logger) ([]columns.ColumnSpec[cats.Cat], error) {
	rm, err := rules.NewRuleManager()
	if err != nil {
		return nil, err
	}

	specs := make([]columns.ColumnSpec[cats.Cat], len(confs))
	for i, c := range confs {
		specs[i] = columns.ColumnSpec[cats.Cat]{Title: c.Title, Name: c.Name}
		if c.Render == "" {
			continue
		}

		prg, err := rm.CompileRender(c.Render)
		if err != nil {
			return nil, fmt.Errorf("coluna '%s': %w", c.Title, err)
		}
		specs[i].Render = renderFunc(prg, logger)
	}
	return specs, nil
}

func renderFunc(prg *rules.RenderProgram, logger zerolog.Logger) columns.RenderFunc[cats.Cat] {
	return func(value any, row cats.Cat) string {
		m, err := row.AsMap()
		if err != nil {
			logger.Error().Err(err).Str("row", row.Key).Msg("falha ao converter linha")
			return ""
		}
		out, err := prg.Eval(normalize(value), m)
		if err != nil {
			logger.Error().Err(err).Str("row", row.Key).Str("render", prg.Source()).Msg("falha ao avaliar render")
			return ""
		}
		return out
	}
}

// normalize leva o valor da célula para o mesmo formato do row (JSON), assim
// value e row se comportam igual dentro do CEL.
func normalize(value any) any {
	switch v := value.(type) {
	case nil, string, float64, bool:
		return v
	case cats.CatName:
		return string(v)
	case cats.Attributes:
		return map[string]any{"kind": v.Kind, "meowVolume": v.MeowVolume, "speed": v.Speed}
	case []cats.Ability:
		out := make([]any, len(v))
		for i, a := range v {
			out[i] = map[string]any{"name": a.Name, "damage": float64(a.Damage)}
		}
		return out
	case int:
		return float64(v)
	default:
		return v
	}
}

// OnSelectionChange trata o evento do menu: o payload é o conjunto completo de
// caminhos ocultos e substitui o anterior sem merge.
func (p *Page) OnSelectionChange(selected []string) []columns.ResolvedColumn[cats.Cat] {
	p.hidden = columns.NewHiddenSet(selected...)
	p.rebuild()

	p.logger.Debug().
		Strs("hidden", p.hidden.Values()).
		Int("visible", len(p.cols)).
		Msg("seleção de colunas ocultas alterada")

	return p.Columns()
}

func (p *Page) rebuild() {
	p.cols = columns.Build(p.specs, p.hidden)
	p.recorder.Rebuild(len(p.cols), p.hidden.Len())
}

// Title retorna o título da página.
func (p *Page) Title() string { return p.title }

// Columns retorna uma cópia da lista de colunas visível.
func (p *Page) Columns() []columns.ResolvedColumn[cats.Cat] {
	return append([]columns.ResolvedColumn[cats.Cat](nil), p.cols...)
}

// Hidden retorna o conjunto de caminhos ocultos atual.
func (p *Page) Hidden() columns.HiddenSet { return p.hidden }

// Options retorna as opções do menu de colunas ocultas.
func (p *Page) Options() []labels.Option {
	return append([]labels.Option(nil), p.options...)
}

// Rows retorna o conjunto de dados exibido.
func (p *Page) Rows() []cats.Cat { return p.rows }

// View monta o que o renderizador precisa para o estado atual.
func (p *Page) View() render.View[cats.Cat] {
	return render.View[cats.Cat]{
		Title:   p.title,
		Options: p.Options(),
		Hidden:  p.hidden,
		Columns: p.Columns(),
		Rows:    p.rows,
		RowKey:  func(c cats.Cat) string { return c.Key },
	}
}

// Render desenha o estado atual no formato pedido e registra a duração.
func (p *Page) Render(w io.Writer, format string) error {
	start := time.Now()
	if err := render.Render(w, format, p.View()); err != nil {
		return err
	}
	p.recorder.Render(format, float64(time.Since(start).Microseconds())/1000)
	return nil
}
