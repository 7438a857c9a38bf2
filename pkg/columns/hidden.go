package columns

import "sort"

// HiddenSet é o conjunto imutável de caminhos ocultos pelo usuário.
// Cada evento de seleção gera um novo HiddenSet; nunca há alteração in-place.
// O valor zero é um conjunto vazio.
type HiddenSet struct {
	paths map[string]struct{}
}

// NewHiddenSet cria um conjunto copiando os caminhos informados.
func NewHiddenSet(paths ...string) HiddenSet {
	if len(paths) == 0 {
		return HiddenSet{}
	}
	m := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		m[p] = struct{}{}
	}
	return HiddenSet{paths: m}
}

// Contains informa se o caminho está oculto.
func (h HiddenSet) Contains(path string) bool {
	_, ok := h.paths[path]
	return ok
}

// Len retorna a quantidade de caminhos ocultos.
func (h HiddenSet) Len() int {
	return len(h.paths)
}

// Values retorna uma cópia ordenada dos caminhos.
func (h HiddenSet) Values() []string {
	out := make([]string, 0, len(h.paths))
	for p := range h.paths {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
