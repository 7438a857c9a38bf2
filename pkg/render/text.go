package render

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// Text desenha apenas a tabela, para uso em terminal.
func Text[T any](w io.Writer, view View[T]) error {
	if view.Title != "" {
		if _, err := fmt.Fprintf(w, "%s\n", view.Title); err != nil {
			return err
		}
	}

	if len(view.Columns) == 0 {
		return nil
	}

	table := tablewriter.NewWriter(w)

	headers := make([]string, len(view.Columns))
	for i, col := range view.Columns {
		headers[i] = col.Title
	}
	table.Header(headers)

	for _, row := range view.Rows {
		cells := make([]string, len(view.Columns))
		for i, col := range view.Columns {
			cells[i] = CellText(col, row)
		}
		if err := table.Append(cells); err != nil {
			return fmt.Errorf("falha ao montar linha da tabela: %w", err)
		}
	}

	return table.Render()
}
