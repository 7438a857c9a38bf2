package columns

import (
	"fmt"
	"strings"

	"github.com/raywall/cattable/pkg/keypath"
)

// UnknownColumnError é retornado por Validate quando alguma coluna usa um nome
// que não é caminho do registro nem nome sintético declarado.
type UnknownColumnError struct {
	Names []string
}

func (e *UnknownColumnError) Error() string {
	return fmt.Sprintf("columns: nomes de coluna desconhecidos: %s", strings.Join(e.Names, ", "))
}

// Validate confere os nomes das colunas contra os caminhos derivados do registro.
// Build não chama Validate; é a checagem opcional feita na carga da configuração.
func Validate[T any](specs []ColumnSpec[T], paths keypath.Set, synthetic ...string) error {
	allowed := keypath.NewSet(synthetic)

	var unknown []string
	for _, s := range specs {
		if s.Name == "" || paths.Contains(s.Name) || allowed.Contains(s.Name) {
			continue
		}
		unknown = append(unknown, s.Name)
	}

	if len(unknown) > 0 {
		return &UnknownColumnError{Names: unknown}
	}
	return nil
}

// Duplicates lista os nomes usados por mais de uma coluna, na ordem em que
// a repetição aparece. Build não remove duplicatas.
func Duplicates[T any](specs []ColumnSpec[T]) []string {
	seen := make(map[string]int, len(specs))
	var dups []string
	for _, s := range specs {
		if s.Name == "" {
			continue
		}
		seen[s.Name]++
		if seen[s.Name] == 2 {
			dups = append(dups, s.Name)
		}
	}
	return dups
}
