package cats

// Sample retorna o conjunto estático exibido na página. Cada chamada devolve
// uma cópia nova, então quem chama pode alterar o resultado livremente.
func Sample() []Cat {
	return []Cat{
		{
			Key:  "1",
			Name: MrKitters,
			Age:  5,
			Attributes: Attributes{
				Kind:       "Classic tabby with white fur on the front",
				MeowVolume: "Normal",
				Speed:      "Fast",
			},
			Abilities: []Ability{
				{Name: "Run", Damage: 0},
				{Name: "Meow", Damage: 75},
				{Name: "Bite", Damage: 40},
			},
		},
		{
			Key:  "2",
			Name: Niko,
			Age:  3,
			Attributes: Attributes{
				Kind:       "Ginger with little bit of tuxedo",
				MeowVolume: "Loud",
				Speed:      "Fast",
			},
			Abilities: []Ability{
				{Name: "Run", Damage: 0},
				{Name: "Meow", Damage: 125},
				{Name: "Bite", Damage: 20},
			},
		},
		{
			Key:  "3",
			Name: Tildy,
			Age:  2.5,
			Attributes: Attributes{
				Kind:       "Calico with mostly white fur",
				MeowVolume: "Low",
				Speed:      "Very fast",
			},
			Abilities: []Ability{
				{Name: "Run", Damage: 50},
				{Name: "Meow", Damage: 45},
				{Name: "Bite", Damage: 45},
			},
		},
	}
}
