package keypath

import "sort"

// Separator separa os segmentos de um caminho aninhado.
const Separator = "."

// Derive retorna todos os caminhos válidos do Schema, na ordem de declaração
// dos campos, com o caminho pai antes dos filhos.
func Derive(s Schema) []string {
	var paths []string
	walk(s, "", &paths)
	return paths
}

func walk(s Schema, prefix string, out *[]string) {
	for _, f := range s {
		p := prefix + f.Name
		*out = append(*out, p)
		if f.Kind == Nested {
			walk(f.Children, p+Separator, out)
		}
	}
}

// Set é um conjunto de caminhos para consultas de pertinência.
type Set map[string]struct{}

// NewSet cria um Set a partir de uma lista de caminhos.
func NewSet(paths []string) Set {
	set := make(Set, len(paths))
	for _, p := range paths {
		set[p] = struct{}{}
	}
	return set
}

// Contains informa se o caminho pertence ao conjunto.
func (s Set) Contains(path string) bool {
	_, ok := s[path]
	return ok
}

// Sorted retorna os caminhos em ordem alfabética.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
