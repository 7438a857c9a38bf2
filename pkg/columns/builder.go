package columns

import "fmt"

// Build filtra e resolve as colunas.
//
// Colunas sem nome são sempre mantidas e recebem o identificador
// "column-<índice>", onde o índice é a posição na lista original (antes do
// filtro), para que o identificador não mude quando outras colunas são ocultadas.
// Colunas nomeadas são descartadas quando o nome está em hidden.
// A função é pura: specs não é alterado e o retorno é sempre uma lista nova.
func Build[T any](specs []ColumnSpec[T], hidden HiddenSet) []ResolvedColumn[T] {
	resolved := make([]ResolvedColumn[T], 0, len(specs))

	var named map[string]struct{}
	for i, spec := range specs {
		if spec.Name != "" {
			if hidden.Contains(spec.Name) {
				continue
			}
			resolved = append(resolved, ResolvedColumn[T]{
				ColumnSpec: spec,
				Key:        spec.Name,
				DataIndex:  spec.Name,
			})
			continue
		}

		if named == nil {
			named = namesOf(specs)
		}
		resolved = append(resolved, ResolvedColumn[T]{
			ColumnSpec: spec,
			Key:        positionalKey(i, named),
		})
	}

	return resolved
}

// positionalKey gera "column-<i>", com sufixo caso alguma coluna nomeada já use o mesmo texto.
func positionalKey(index int, named map[string]struct{}) string {
	key := fmt.Sprintf("column-%d", index)
	for n := 1; ; n++ {
		if _, taken := named[key]; !taken {
			return key
		}
		key = fmt.Sprintf("column-%d-%d", index, n)
	}
}

func namesOf[T any](specs []ColumnSpec[T]) map[string]struct{} {
	names := make(map[string]struct{}, len(specs))
	for _, s := range specs {
		if s.Name != "" {
			names[s.Name] = struct{}{}
		}
	}
	return names
}
