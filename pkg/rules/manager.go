package rules

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
)

// Captura trechos ${...} dentro de um texto de render.
var interpolationRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// RuleManager gerencia a compilação e avaliação das expressões CEL de render.
type RuleManager struct {
	env *cel.Env
}

// NewRuleManager inicializa o ambiente CEL com as variáveis de uma célula.
func NewRuleManager() (*RuleManager, error) {
	env, err := cel.NewEnv(
		cel.Variable("value", cel.DynType), // Valor da coluna (nulo em colunas sintéticas)
		cel.Variable("row", cel.DynType),   // Linha completa, no formato JSON
	)
	if err != nil {
		return nil, fmt.Errorf("erro fatal CEL init: %w", err)
	}

	return &RuleManager{env: env}, nil
}

// CompileProgram expõe a compilação do CEL.
func (rm *RuleManager) CompileProgram(expr string) (cel.Program, error) {
	ast, issues := rm.env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("erro de compilação CEL '%s': %w", expr, issues.Err())
	}
	prg, err := rm.env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar programa CEL: %w", err)
	}
	return prg, nil
}

// RenderProgram é uma expressão de render já compilada.
type RenderProgram struct {
	source string
	parts  []renderPart
}

type renderPart struct {
	literal string
	program cel.Program
}

// CompileRender compila uma expressão de render. Se o texto contém ${...}, é
// tratado como template: o texto fora das chaves é literal e cada trecho é uma
// expressão CEL. Caso contrário, o texto inteiro é uma expressão CEL.
func (rm *RuleManager) CompileRender(expr string) (*RenderProgram, error) {
	rp := &RenderProgram{source: expr}

	matches := interpolationRegex.FindAllStringSubmatchIndex(expr, -1)
	if len(matches) == 0 {
		prg, err := rm.CompileProgram(strings.TrimSpace(expr))
		if err != nil {
			return nil, err
		}
		rp.parts = []renderPart{{program: prg}}
		return rp, nil
	}

	last := 0
	for _, m := range matches {
		if m[0] > last {
			rp.parts = append(rp.parts, renderPart{literal: expr[last:m[0]]})
		}
		prg, err := rm.CompileProgram(strings.TrimSpace(expr[m[2]:m[3]]))
		if err != nil {
			return nil, err
		}
		rp.parts = append(rp.parts, renderPart{program: prg})
		last = m[1]
	}
	if last < len(expr) {
		rp.parts = append(rp.parts, renderPart{literal: expr[last:]})
	}

	return rp, nil
}

// Source retorna o texto original da expressão.
func (rp *RenderProgram) Source() string {
	return rp.source
}

// Eval avalia a expressão para uma célula.
func (rp *RenderProgram) Eval(value any, row map[string]any) (string, error) {
	activation := map[string]any{
		"value": value,
		"row":   row,
	}

	var sb strings.Builder
	for _, part := range rp.parts {
		if part.program == nil {
			sb.WriteString(part.literal)
			continue
		}
		out, _, err := part.program.Eval(activation)
		if err != nil {
			return "", fmt.Errorf("erro execução CEL '%s': %w", rp.source, err)
		}
		if _, isNull := out.(types.Null); isNull {
			continue
		}
		sb.WriteString(formatResult(out.Value()))
	}
	return sb.String(), nil
}

func formatResult(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}
