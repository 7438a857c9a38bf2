package render

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"strconv"
)

//go:embed templates/page.html
var pageTemplate string

var pageTmpl = template.Must(template.New("page.html").Parse(pageTemplate))

type optionView struct {
	Label    string
	Value    string
	Selected bool
}

type headerView struct {
	Key   string
	Title string
}

type rowView struct {
	Key   string
	Cells []cellView
}

type cellView struct {
	Key  string
	Text string
}

type pageView struct {
	Title   string
	Options []optionView
	Headers []headerView
	Rows    []rowView
}

// HTML desenha a página completa. Todo texto é escapado pelo html/template.
func HTML[T any](w io.Writer, view View[T]) error {
	data := pageView{Title: view.Title}

	for _, o := range view.Options {
		data.Options = append(data.Options, optionView{
			Label:    o.Label,
			Value:    o.Value,
			Selected: view.Hidden.Contains(o.Value),
		})
	}

	for _, col := range view.Columns {
		data.Headers = append(data.Headers, headerView{Key: col.Key, Title: col.Title})
	}

	for i, row := range view.Rows {
		rv := rowView{Key: strconv.Itoa(i + 1)}
		if view.RowKey != nil {
			rv.Key = view.RowKey(row)
		}
		for _, col := range view.Columns {
			rv.Cells = append(rv.Cells, cellView{Key: col.Key, Text: CellText(col, row)})
		}
		data.Rows = append(data.Rows, rv)
	}

	if err := pageTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("falha ao executar template da página: %w", err)
	}
	return nil
}
