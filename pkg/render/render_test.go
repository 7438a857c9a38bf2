package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raywall/cattable/pkg/cats"
	"github.com/raywall/cattable/pkg/columns"
	"github.com/raywall/cattable/pkg/labels"
)

func catSpecs() []columns.ColumnSpec[cats.Cat] {
	return []columns.ColumnSpec[cats.Cat]{
		{Title: "Name", Name: "name"},
		{Title: "Age", Name: "age"},
		{Title: "Kind", Name: "attributes.kind"},
		{Title: "Action", Render: func(_ any, row cats.Cat) string {
			return "Invite " + string(row.Name) + " | Delete"
		}},
	}
}

func catView(hidden ...string) View[cats.Cat] {
	set := columns.NewHiddenSet(hidden...)
	return View[cats.Cat]{
		Title: "Hello",
		Options: []labels.Option{
			{Label: "Name", Value: "name"},
			{Label: "Age", Value: "age"},
		},
		Hidden:  set,
		Columns: columns.Build(catSpecs(), set),
		Rows:    cats.Sample(),
		RowKey:  func(c cats.Cat) string { return c.Key },
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"nil", nil, ""},
		{"string", "Niko", "Niko"},
		{"float inteiro", float64(5), "5"},
		{"float fracionado", 2.5, "2.5"},
		{"int", 42, "42"},
		{"bool", true, "true"},
		{"tipo string", cats.Tildy, "Tildy"},
		{"stringer", cats.Ability{Name: "Run", Damage: 0}, "Run (0)"},
		{"lista", []cats.Ability{{Name: "Run"}, {Name: "Bite", Damage: 40}}, "Run (0), Bite (40)"},
		{"lista vazia", []string{}, ""},
		{"map", map[string]any{"a": 1}, `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatValue(tt.value))
		})
	}
}

func TestCellText(t *testing.T) {
	row := cats.Sample()[2]
	cols := columns.Build(catSpecs(), columns.HiddenSet{})

	assert.Equal(t, "Tildy", CellText(cols[0], row))
	assert.Equal(t, "2.5", CellText(cols[1], row))
	assert.Equal(t, "Calico with mostly white fur", CellText(cols[2], row))
	assert.Equal(t, "Invite Tildy | Delete", CellText(cols[3], row))
}

func TestCellText_RenderRecebeValor(t *testing.T) {
	var got any
	specs := []columns.ColumnSpec[cats.Cat]{
		{Title: "Age", Name: "age", Render: func(v any, _ cats.Cat) string {
			got = v
			return "x"
		}},
	}
	cols := columns.Build(specs, columns.HiddenSet{})

	assert.Equal(t, "x", CellText(cols[0], cats.Sample()[0]))
	assert.Equal(t, float64(5), got)
}

func TestHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, catView()))
	out := buf.String()

	assert.Contains(t, out, "<title>Hello</title>")
	assert.Contains(t, out, `<option value="name">Name</option>`)
	assert.Contains(t, out, `<option value="age">Age</option>`)
	assert.Contains(t, out, `<th data-key="age">Age</th>`)
	assert.Contains(t, out, `<th data-key="column-3">Action</th>`)
	assert.Contains(t, out, `<tr data-row-key="3">`)
	assert.Contains(t, out, `<td data-key="age">2.5</td>`)
	assert.Contains(t, out, "Invite Niko | Delete")
	assert.Equal(t, 3, strings.Count(out, "<tr data-row-key="))
}

func TestHTML_ColunaOculta(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, catView("age")))
	out := buf.String()

	assert.Contains(t, out, `<option value="age" selected>Age</option>`)
	assert.NotContains(t, out, `<th data-key="age">`)
	assert.NotContains(t, out, "2.5")
	assert.Contains(t, out, `<th data-key="name">Name</th>`)
}

func TestHTML_Escapa(t *testing.T) {
	view := View[cats.Cat]{
		Title: "<script>",
		Columns: columns.Build([]columns.ColumnSpec[cats.Cat]{
			{Title: "X", Render: func(any, cats.Cat) string { return "<b>oi</b>" }},
		}, columns.HiddenSet{}),
		Rows: cats.Sample()[:1],
	}

	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, view))
	out := buf.String()

	assert.NotContains(t, out, "<script>")
	assert.NotContains(t, out, "<b>oi</b>")
	assert.Contains(t, out, "&lt;b&gt;oi&lt;/b&gt;")
	assert.Contains(t, out, `<tr data-row-key="1">`)
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, catView()))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "Hello\n"))
	assert.Contains(t, out, "Mr. Kitters")
	assert.Contains(t, out, "2.5")
	assert.Contains(t, out, "Invite Tildy | Delete")
}

func TestText_ColunaOculta(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, catView("age")))
	out := buf.String()

	assert.NotContains(t, out, "2.5")
	assert.Contains(t, out, "Tildy")
}

func TestText_SemColunas(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, View[cats.Cat]{Title: "Vazio", Rows: cats.Sample()}))
	assert.Equal(t, "Vazio\n", buf.String())
}

func TestRender_Formatos(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "HTML", catView()))
	assert.Contains(t, buf.String(), "<table>")

	buf.Reset()
	require.NoError(t, Render(&buf, "", catView()))
	assert.NotContains(t, buf.String(), "<table>")

	err := Render(&buf, "pdf", catView())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
