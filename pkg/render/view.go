// Package render desenha a página (seletor de colunas ocultas + tabela) em HTML
// ou em texto para terminal.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/raywall/cattable/pkg/columns"
	"github.com/raywall/cattable/pkg/keypath"
	"github.com/raywall/cattable/pkg/labels"
)

// ErrUnknownFormat indica um formato de saída não suportado.
var ErrUnknownFormat = errors.New("render: formato desconhecido")

const (
	FormatHTML = "html"
	FormatText = "text"
)

// View é tudo o que o renderizador precisa para desenhar a página.
type View[T any] struct {
	Title   string
	Options []labels.Option
	Hidden  columns.HiddenSet
	Columns []columns.ResolvedColumn[T]
	Rows    []T
	RowKey  func(row T) string
}

// Render desenha a view no formato pedido.
func Render[T any](w io.Writer, format string, view View[T]) error {
	switch strings.ToLower(format) {
	case FormatHTML:
		return HTML(w, view)
	case FormatText, "":
		return Text(w, view)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

// CellText calcula o texto de uma célula: usa o render da coluna quando existe,
// senão o valor encontrado em DataIndex.
func CellText[T any](col columns.ResolvedColumn[T], row T) string {
	var value any
	if col.DataIndex != "" {
		value, _ = keypath.Lookup(row, col.DataIndex)
	}
	if col.Render != nil {
		return col.Render(value, row)
	}
	return FormatValue(value)
}

// FormatValue converte um valor de célula em texto. Listas viram itens
// separados por vírgula; structs sem String() viram JSON.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case fmt.Stringer:
		return x.String()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		items := make([]string, rv.Len())
		for i := range items {
			items[i] = FormatValue(rv.Index(i).Interface())
		}
		return strings.Join(items, ", ")
	case reflect.Struct, reflect.Map:
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(raw)
	case reflect.String:
		return rv.String()
	default:
		return fmt.Sprint(v)
	}
}
