// Package labels mapeia caminhos do registro para rótulos legíveis e monta as
// opções do seletor de colunas ocultas.
package labels

// Map associa um caminho a um rótulo. Rótulo vazio tira o caminho do menu,
// mas o caminho continua válido como nome de coluna.
type Map map[string]string

// Option é uma entrada do seletor múltiplo.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Default é o mapeamento da página de gatos: apenas "name" e "age" podem ser
// ocultados pelo menu.
func Default() Map {
	return Map{
		"attributes.kind":       "",
		"attributes.meowVolume": "",
		"attributes.speed":      "",
		"abilities":             "",
		"age":                   "Age",
		"attributes":            "",
		"name":                  "Name",
	}
}

// Options gera as opções do menu para os caminhos informados, na mesma ordem,
// ignorando os de rótulo vazio ou sem entrada no mapa.
func Options(m Map, paths []string) []Option {
	opts := make([]Option, 0, len(paths))
	for _, p := range paths {
		if label := m[p]; label != "" {
			opts = append(opts, Option{Label: label, Value: p})
		}
	}
	return opts
}

// Missing lista os caminhos que não têm nenhuma entrada no mapa.
func Missing(m Map, paths []string) []string {
	var missing []string
	for _, p := range paths {
		if _, ok := m[p]; !ok {
			missing = append(missing, p)
		}
	}
	return missing
}

// Unlabeled lista os caminhos com entrada de rótulo vazio (fora do menu).
func Unlabeled(m Map, paths []string) []string {
	var out []string
	for _, p := range paths {
		if label, ok := m[p]; ok && label == "" {
			out = append(out, p)
		}
	}
	return out
}

// Selection aplica a restrição do seletor: só valores oferecidos no menu são
// aceitos, na ordem recebida e sem repetição.
func Selection(options []Option, selected []string) []string {
	offered := make(map[string]bool, len(options))
	for _, o := range options {
		offered[o.Value] = true
	}

	out := make([]string, 0, len(selected))
	seen := make(map[string]bool, len(selected))
	for _, s := range selected {
		if !offered[s] || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
