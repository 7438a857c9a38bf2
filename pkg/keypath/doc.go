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
//
// Package keypath enumera os caminhos pontuados ("dotted paths") válidos de um
// registro e resolve valores a partir desses caminhos.
//
// Visão Geral:
// O formato do registro é descrito por uma tabela de campos (Schema), onde cada
// campo é primitivo, aninhado (objeto com sub-campos) ou lista. A tabela pode ser
// montada à mão ou gerada por reflection a partir de uma struct Go, usando o nome
// da tag `json` de cada campo.
//
// Regras de Derivação:
//   - Todo campo contribui com o próprio nome ("age", "attributes").
//   - Campos aninhados contribuem também com todos os caminhos abaixo deles
//     ("attributes.kind", "attributes.speed").
//   - Listas (slices, arrays e maps) são terminais: a estrutura dos elementos
//     nunca vira caminho ("abilities.damage" não existe).
//
// Exemplo:
//
//	type Registro struct {
//		Age        float64 `json:"age"`
//		Attributes struct {
//			Kind  string `json:"kind"`
//			Speed string `json:"speed"`
//		} `json:"attributes"`
//	}
//
//	schema, _ := keypath.FromType(reflect.TypeOf(Registro{}))
//	keypath.Derive(schema) // [age attributes attributes.kind attributes.speed]
package keypath
