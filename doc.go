// Copyright 2025 Raywall Malheiros de Souza
// Licensed under the Mozilla Public License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	https://www.mozilla.org/en-US/MPL/2.0/
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cattable exibe uma tabela de gatos cujas colunas podem ser ocultadas
// pelo usuário através de um menu de seleção múltipla.
//
// Visão Geral:
// O formato do registro (cats.Cat) é a única fonte de verdade. Dele saem os
// caminhos pontuados válidos ("name", "attributes.kind", ...), o menu de
// colunas ocultas e o schema GraphQL. A cada mudança no menu, o conjunto
// completo de caminhos ocultos substitui o anterior e a lista de colunas
// visíveis é recalculada.
//
// Sub-Pacotes Principais:
//
// 1. keypath:
//   - Deriva os caminhos de um registro por reflection (tags json).
//   - Resolve valores a partir de um caminho pontuado.
//
// 2. columns:
//   - ColumnSpec / ResolvedColumn e o Build que filtra colunas ocultas.
//   - Validação opcional de nomes contra os caminhos derivados.
//
// 3. engine:
//   - Loader do YAML da página, analisador de configuração e o estado Page.
//
// 4. render:
//   - Página HTML (html/template) e tabela de terminal (tablewriter).
//
// Exemplo de Início Rápido:
//
//	page, err := engine.NewPageFromConfig(config.Default(), cats.Sample())
//	if err != nil {
//		log.Fatal(err)
//	}
//	page.OnSelectionChange([]string{"age"})
//	if err := page.Render(os.Stdout, render.FormatText); err != nil {
//		log.Fatal(err)
//	}
//
// A CLI em cmd/cattable expõe os comandos render, interactive, validate,
// paths e query.
package cattable
