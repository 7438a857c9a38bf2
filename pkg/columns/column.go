// Package columns transforma a lista estática de especificações de coluna, somada
// ao conjunto de caminhos ocultos, na lista final de colunas entregue à tabela.
package columns

// RenderFunc formata uma célula recebendo o valor da coluna e a linha completa.
type RenderFunc[T any] func(value any, row T) string

// ColumnSpec descreve uma coluna antes da filtragem.
//
// Name é um caminho aninhado do registro (ex: "attributes.kind") ou um nome
// sintético fora do formato dos dados (ex: "actions"). Name vazio significa uma
// coluna que nunca pode ser ocultada.
type ColumnSpec[T any] struct {
	Title  string
	Name   string
	Render RenderFunc[T]
}

// ResolvedColumn é a coluna pronta para renderização: a especificação original
// com um identificador único (Key) e o caminho de acesso aos dados (DataIndex).
type ResolvedColumn[T any] struct {
	ColumnSpec[T]
	Key       string
	DataIndex string
}
