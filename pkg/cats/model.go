// Package cats define o registro exibido na tabela e o conjunto estático de dados.
package cats

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// CatName é o conjunto fechado de nomes aceitos.
type CatName string

const (
	MrKitters CatName = "Mr. Kitters"
	Niko      CatName = "Niko"
	Tildy     CatName = "Tildy"
	Cubbie    CatName = "Cubbie"
	Tonks     CatName = "Tonks"
	BearBear  CatName = "Bear-Bear"
)

// Names retorna todos os nomes válidos.
func Names() []CatName {
	return []CatName{MrKitters, Niko, Tildy, Cubbie, Tonks, BearBear}
}

// Valid informa se o nome pertence à enumeração.
func (n CatName) Valid() bool {
	for _, v := range Names() {
		if v == n {
			return true
		}
	}
	return false
}

// Ability é uma ação do gato. Dano zero representa ação sem dano.
type Ability struct {
	Name   string `json:"name" yaml:"name" validate:"required"`
	Damage int    `json:"damage" yaml:"damage" validate:"gte=0"`
}

func (a Ability) String() string {
	return fmt.Sprintf("%s (%d)", a.Name, a.Damage)
}

// Attributes agrupa os atributos descritivos.
type Attributes struct {
	Kind       string `json:"kind" yaml:"kind" validate:"required"`
	MeowVolume string `json:"meowVolume" yaml:"meowVolume" validate:"required"`
	Speed      string `json:"speed" yaml:"speed" validate:"required"`
}

func (a Attributes) String() string {
	return fmt.Sprintf("%s / %s / %s", a.Kind, a.MeowVolume, a.Speed)
}

// Cat é a linha da tabela. Key identifica a linha e não é um caminho de coluna.
type Cat struct {
	Key        string     `json:"key" yaml:"key" keypath:"-" validate:"required"`
	Name       CatName    `json:"name" yaml:"name" validate:"catname"`
	Age        float64    `json:"age" yaml:"age" validate:"gte=0"`
	Attributes Attributes `json:"attributes" yaml:"attributes"`
	Abilities  []Ability  `json:"abilities" yaml:"abilities" validate:"dive"`
}

// AgeText formata a idade sem casas decimais desnecessárias (5, 2.5).
func (c Cat) AgeText() string {
	return strconv.FormatFloat(c.Age, 'f', -1, 64)
}

// AsMap converte o gato para map, no mesmo formato do JSON.
func (c Cat) AsMap() (map[string]any, error) {
	raw, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}
