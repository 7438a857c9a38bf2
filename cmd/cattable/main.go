package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/raywall/cattable/pkg/cats"
	"github.com/raywall/cattable/pkg/config"
	"github.com/raywall/cattable/pkg/engine"
	"github.com/raywall/cattable/pkg/graphql"
	"github.com/raywall/cattable/pkg/keypath"
	"github.com/raywall/cattable/pkg/labels"
	"github.com/raywall/cattable/pkg/logger"
	"github.com/raywall/cattable/pkg/metrics"
	"github.com/raywall/cattable/pkg/observability"
	"github.com/raywall/cattable/pkg/render"
)

const usage = "Comandos esperados: render | interactive | validate | paths | query"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, os.LookupEnv))
}

// app concentra as dependências de IO para que os comandos sejam testáveis.
type app struct {
	settings config.Settings
	lookup   config.LookupFunc
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
}

// run executa a CLI e devolve o código de saída.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer, lookup config.LookupFunc) int {
	if len(args) < 1 {
		fmt.Fprintln(stderr, usage)
		return 1
	}

	a := &app{lookup: lookup, stdin: stdin, stdout: stdout, stderr: stderr}
	if err := config.LoadEnv(&a.settings, lookup); err != nil {
		fmt.Fprintf(stderr, "❌ Erro lendo variáveis de ambiente: %v\n", err)
		return 1
	}

	var err error
	switch args[0] {
	case "render":
		err = a.runRender(args[1:])
	case "interactive":
		err = a.runInteractive(args[1:])
	case "validate":
		var ok bool
		ok, err = a.runValidate(args[1:])
		if err == nil && !ok {
			return 1 // Falha no CI
		}
	case "paths":
		err = a.runPaths(args[1:])
	case "query":
		err = a.runQuery(args[1:])
	default:
		fmt.Fprintf(stderr, "Comando desconhecido: %s\n%s\n", args[0], usage)
		return 1
	}

	if err != nil {
		fmt.Fprintf(stderr, "❌ %v\n", err)
		return 1
	}
	return 0
}

func (a *app) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	return fs
}

func (a *app) loadConfig(path string) (*config.PageConfig, error) {
	if strings.TrimSpace(path) == "" {
		return config.Default(), nil
	}
	return engine.NewLoader().WithLookup(a.lookup).Load(context.Background(), path)
}

// session reúne a página montada e o que precisa ser fechado no fim.
type session struct {
	page   *engine.Page
	log    zerolog.Logger
	closer func()
}

func (a *app) openSession(path string) (*session, error) {
	cfg, err := a.loadConfig(path)
	if err != nil {
		return nil, err
	}

	if a.settings.LogLevel != "" {
		cfg.Logging.Level = a.settings.LogLevel
	}
	if a.settings.LogFormat != "" {
		cfg.Logging.Format = a.settings.LogFormat
	}
	log := logger.ConfigureWriter(cfg.Logging, a.stderr).
		With().
		Str("session_id", uuid.NewString()).
		Logger()

	provider, err := observability.SetupMetrics(cfg.Metrics, "app:cattable")
	if err != nil {
		return nil, err
	}
	closer := func() {
		if err := observability.Close(provider); err != nil {
			log.Warn().Err(err).Msg("falha ao fechar cliente de métricas")
		}
	}

	rows := cats.Sample()
	if err := cats.NewValidator().Validate(rows); err != nil {
		closer()
		return nil, fmt.Errorf("conjunto de dados inválido: %w", err)
	}

	page, err := engine.NewPageFromConfig(cfg, rows,
		engine.WithLogger(log),
		engine.WithRecorder(metrics.NewRecorder(provider, log)),
	)
	if err != nil {
		closer()
		return nil, err
	}

	log.Debug().Str("title", page.Title()).Int("columns", len(page.Columns())).Msg("página carregada")
	return &session{page: page, log: log, closer: closer}, nil
}

// renderFormat ignora OUTPUT_FORMAT=json, que só vale para relatórios.
func (a *app) renderFormat() string {
	if a.settings.OutputFormat == render.FormatHTML {
		return render.FormatHTML
	}
	return render.FormatText
}

func (a *app) runRender(args []string) error {
	fs := a.flagSet("render")
	cfgPath := fs.String("config", a.settings.ConfigFile, "Caminho do YAML da página")
	hide := fs.String("hide", strings.Join(a.settings.Hidden, ","), "Caminhos ocultos separados por vírgula")
	format := fs.String("format", a.renderFormat(), "Formato de saída: html ou text")
	out := fs.String("out", "", "Arquivo de saída (padrão: stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	s, err := a.openSession(*cfgPath)
	if err != nil {
		return err
	}
	defer s.closer()

	if *hide != "" {
		s.page.OnSelectionChange(labels.Selection(s.page.Options(), config.SplitList(*hide)))
	}

	w := a.stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			return fmt.Errorf("falha ao criar arquivo de saída: %w", err)
		}
		defer f.Close()
		w = f
	}

	return s.page.Render(w, *format)
}

// runInteractive faz o papel do laço de eventos da página: cada linha é uma
// seleção completa do menu e a tabela é redesenhada em seguida.
func (a *app) runInteractive(args []string) error {
	fs := a.flagSet("interactive")
	cfgPath := fs.String("config", a.settings.ConfigFile, "Caminho do YAML da página")
	format := fs.String("format", a.renderFormat(), "Formato de saída: html ou text")
	if err := fs.Parse(args); err != nil {
		return err
	}

	s, err := a.openSession(*cfgPath)
	if err != nil {
		return err
	}
	defer s.closer()

	if err := s.page.Render(a.stdout, *format); err != nil {
		return err
	}

	fmt.Fprintln(a.stderr, "Informe os caminhos ocultos separados por vírgula (linha vazia mostra tudo, 'exit' encerra).")
	for _, o := range s.page.Options() {
		fmt.Fprintf(a.stderr, "  %s = %s\n", o.Value, o.Label)
	}

	scanner := bufio.NewScanner(a.stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "exit" || line == "quit" {
			break
		}

		requested := config.SplitList(line)
		selected := labels.Selection(s.page.Options(), requested)
		if len(selected) != len(requested) {
			s.log.Warn().Strs("requested", requested).Strs("accepted", selected).Msg("caminhos fora do menu ignorados")
		}

		s.page.OnSelectionChange(selected)
		if err := s.page.Render(a.stdout, *format); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func (a *app) runValidate(args []string) (bool, error) {
	fs := a.flagSet("validate")
	cfgPath := fs.String("config", a.settings.ConfigFile, "Caminho do arquivo YAML")
	if err := fs.Parse(args); err != nil {
		return false, err
	}

	jsonOut := a.settings.OutputFormat == "json"
	if !jsonOut {
		fmt.Fprintf(a.stdout, "🔍 Analisando configuração: %s ...\n", displayPath(*cfgPath))
	}

	// 1. Load (Validação Estrutural)
	cfg, err := a.loadConfig(*cfgPath)
	if err != nil {
		return false, fmt.Errorf("erro de carregamento/estrutura:\n%w", err)
	}

	// 2. Analyze (Validação Lógica/Semântica)
	report, err := engine.Analyze(cfg)
	if err != nil {
		return false, fmt.Errorf("erro interno do analisador: %w", err)
	}

	if jsonOut {
		raw, err := json.Marshal(report)
		if err != nil {
			return false, err
		}
		fmt.Fprintln(a.stdout, string(raw))
		return report.Valid, nil
	}

	for _, w := range report.Warnings {
		fmt.Fprintf(a.stdout, " ⚠️  %s\n", w)
	}
	if !report.Valid {
		fmt.Fprintln(a.stdout, "❌ A configuração contém erros:")
		for _, e := range report.Errors {
			fmt.Fprintf(a.stdout, " - %s\n", e)
		}
		return false, nil
	}

	fmt.Fprintln(a.stdout, "✅ Configuração válida!")
	return true, nil
}

func displayPath(path string) string {
	if path == "" {
		return "(página padrão)"
	}
	return path
}

type pathInfo struct {
	Path  string `json:"path"`
	Label string `json:"label"`
}

func (a *app) runPaths(args []string) error {
	fs := a.flagSet("paths")
	cfgPath := fs.String("config", a.settings.ConfigFile, "Caminho do YAML (usado para os rótulos)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := a.loadConfig(*cfgPath)
	if err != nil {
		return err
	}
	lm := labels.Map(cfg.Labels)
	if lm == nil {
		lm = labels.Default()
	}

	var infos []pathInfo
	for _, p := range keypath.Derive(keypath.Of[cats.Cat]()) {
		infos = append(infos, pathInfo{Path: p, Label: lm[p]})
	}

	if a.settings.OutputFormat == "json" {
		return json.NewEncoder(a.stdout).Encode(infos)
	}

	for _, info := range infos {
		label := info.Label
		if label == "" {
			label = "-"
		}
		fmt.Fprintf(a.stdout, "%-24s %s\n", info.Path, label)
	}
	return nil
}

func (a *app) runQuery(args []string) error {
	fs := a.flagSet("query")
	query := fs.String("q", "", "Consulta GraphQL, ex: '{ rows { name age } }'")
	vars := fs.String("vars", "", "Variáveis da consulta em JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *query == "" {
		return fmt.Errorf("flag -q é obrigatória")
	}

	var variables map[string]interface{}
	if *vars != "" {
		if err := json.Unmarshal([]byte(*vars), &variables); err != nil {
			return fmt.Errorf("variáveis inválidas: %w", err)
		}
	}

	var rows []map[string]any
	for _, c := range cats.Sample() {
		m, err := c.AsMap()
		if err != nil {
			return err
		}
		rows = append(rows, m)
	}

	gql, err := graphql.NewGraphQLEngine(keypath.Of[cats.Cat](), rows)
	if err != nil {
		return err
	}

	res := gql.Execute(context.Background(), *query, variables)
	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return err
	}
	if res.HasErrors() {
		return fmt.Errorf("consulta retornou %d erro(s)", len(res.Errors))
	}
	return nil
}
