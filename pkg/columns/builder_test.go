package columns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type linha struct {
	Name string
	Age  float64
}

func specsPadrao() []ColumnSpec[linha] {
	return []ColumnSpec[linha]{
		{Title: "Name", Name: "name"},
		{Title: "Age", Name: "age"},
		{Title: "Action", Name: "actions", Render: func(_ any, row linha) string {
			return "Invite " + row.Name
		}},
	}
}

func keys[T any](cols []ResolvedColumn[T]) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.Key
	}
	return out
}

func TestBuild_Cenarios(t *testing.T) {
	tests := []struct {
		name   string
		hidden HiddenSet
		want   []string
	}{
		{"Nada oculto", NewHiddenSet(), []string{"name", "age", "actions"}},
		{"Idade oculta", NewHiddenSet("age"), []string{"name", "actions"}},
		{"Coluna sintética oculta", NewHiddenSet("actions"), []string{"name", "age"}},
		{"Caminho desconhecido não tem efeito", NewHiddenSet("attributes.kind", "xyz"), []string{"name", "age", "actions"}},
		{"Tudo oculto", NewHiddenSet("name", "age", "actions"), []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Build(specsPadrao(), tt.hidden)
			assert.Equal(t, tt.want, keys(got))
			for _, c := range got {
				assert.False(t, tt.hidden.Contains(c.Key), "coluna oculta retornada: %s", c.Key)
			}
		})
	}
}

func TestBuild_CopiaCamposOriginais(t *testing.T) {
	got := Build(specsPadrao(), HiddenSet{})
	require.Len(t, got, 3)

	for i, spec := range specsPadrao() {
		assert.Equal(t, spec.Title, got[i].Title)
		assert.Equal(t, spec.Name, got[i].DataIndex)
		assert.Equal(t, spec.Name, got[i].Key)
	}

	require.NotNil(t, got[2].Render)
	assert.Equal(t, "Invite Niko", got[2].Render(nil, linha{Name: "Niko"}))
}

func TestBuild_ColunaSemNome(t *testing.T) {
	specs := []ColumnSpec[linha]{
		{Title: "A", Name: "x"},
		{Title: "B"},
		{Title: "C", Name: "y"},
	}

	t.Run("Usa o índice original", func(t *testing.T) {
		got := Build(specs, NewHiddenSet())
		assert.Equal(t, []string{"x", "column-1", "y"}, keys(got))
		assert.Empty(t, got[1].DataIndex)
	})

	t.Run("Índice estável quando colunas anteriores somem", func(t *testing.T) {
		got := Build(specs, NewHiddenSet("x"))
		assert.Equal(t, []string{"column-1", "y"}, keys(got))
	})

	t.Run("Nunca é ocultada", func(t *testing.T) {
		got := Build(specs, NewHiddenSet("", "column-1", "x", "y"))
		assert.Equal(t, []string{"column-1"}, keys(got))
	})

	t.Run("Não colide com coluna nomeada", func(t *testing.T) {
		got := Build([]ColumnSpec[linha]{
			{Title: "Nomeada", Name: "column-1"},
			{Title: "Sem nome"},
		}, NewHiddenSet())
		assert.Equal(t, []string{"column-1", "column-1-1"}, keys(got))
	})
}

func TestBuild_Pura(t *testing.T) {
	specs := specsPadrao()
	hidden := NewHiddenSet("age")

	first := Build(specs, hidden)
	second := Build(specs, hidden)

	assert.Equal(t, keys(first), keys(second))
	for i := range first {
		assert.Equal(t, first[i].Title, second[i].Title)
		assert.Equal(t, first[i].DataIndex, second[i].DataIndex)
	}

	// a entrada não foi alterada
	assert.Len(t, specs, 3)
	assert.Equal(t, "age", specs[1].Name)

	// retornos independentes
	first[0].Key = "alterado"
	assert.Equal(t, "name", second[0].Key)
}

func TestBuild_ListaVazia(t *testing.T) {
	got := Build[linha](nil, NewHiddenSet("age"))
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestBuild_Duplicados(t *testing.T) {
	specs := []ColumnSpec[linha]{
		{Title: "Age", Name: "age"},
		{Title: "Age de novo", Name: "age"},
	}

	assert.Equal(t, []string{"age", "age"}, keys(Build(specs, NewHiddenSet())))
	assert.Empty(t, Build(specs, NewHiddenSet("age")))
}
