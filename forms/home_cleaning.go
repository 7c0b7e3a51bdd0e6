package forms

// homeCleaningConfig is the form for recurring household cleaning.
func homeCleaningConfig(prices PriceTable) *FormConfig {
	return &FormConfig{
		ID:        ServiceHomeCleaning,
		Title:     "Úklid domácnosti",
		BasePrice: prices.HomeCleaning,
		Conditions: []string{
			"Cena platí pro běžně udržovanou domácnost.",
			"První úklid může být účtován jako jednorázový dle skutečného stavu.",
		},
		CommonServices: []ServiceCategory{
			{
				Title: "Vždy v ceně",
				Items: []string{
					"vysávání a vytírání podlah",
					"utírání prachu z volných ploch",
					"úklid koupelny a WC",
					"úklid kuchyňské linky",
					"vynesení odpadků",
				},
			},
		},
		Sections: []Section{
			{
				Title: "Četnost úklidu",
				Fields: []Field{
					{
						ID:    "cleaningFrequency",
						Type:  FieldRadio,
						Label: "Jak často máme uklízet?",
						Options: []Option{
							{Value: "weekly", Label: "1x týdně", Coefficient: 1.0},
							{Value: "twice-weekly", Label: "2x týdně", Coefficient: 1.8},
							{Value: "biweekly", Label: "1x za 14 dní", Coefficient: 0.6},
							{Value: "monthly", Label: "1x měsíčně", Coefficient: 0.35},
						},
					},
				},
			},
			{
				Title: "Domácnost",
				Fields: []Field{
					{
						ID:    "apartmentSize",
						Type:  FieldSelect,
						Label: "Dispozice",
						Options: []Option{
							{Value: "1kk", Label: "1+kk / 1+1", Coefficient: 0.7},
							{Value: "2kk", Label: "2+kk / 2+1", Coefficient: 0.85},
							{Value: "3kk", Label: "3+kk / 3+1", Coefficient: 1.0},
							{Value: "4kk", Label: "4+kk / 4+1", Coefficient: 1.2},
							{Value: "5kk", Label: "5+kk a větší", Coefficient: 1.45},
							{Value: "house", Label: "Rodinný dům", Coefficient: 1.6},
						},
					},
					{
						ID:    "bathrooms",
						Type:  FieldRadio,
						Label: "Počet koupelen",
						Options: []Option{
							{Value: "1", Label: "1 koupelna", Coefficient: 1.0},
							{Value: "2", Label: "2 koupelny", Coefficient: 1.12},
							{Value: "3+", Label: "3 a více", Coefficient: 1.25},
						},
					},
					{
						ID:    "hasPets",
						Type:  FieldRadio,
						Label: "Máte domácí mazlíčky?",
						Options: []Option{
							{Value: "no", Label: "Ne", Coefficient: 1.0},
							{Value: "yes", Label: "Ano", Coefficient: 1.1, Tooltip: "Více chlupů, více vysávání."},
						},
					},
					{
						ID:   "ironing",
						Type: FieldConditional,
						Condition: &Condition{
							Field: "cleaningFrequency",
							Op:    OpNeq,
							Value: "monthly",
						},
						Children: []Field{
							{
								ID:    "ironingHours",
								Type:  FieldSelect,
								Label: "Žehlení navíc",
								Options: []Option{
									{Value: "none", Label: "Bez žehlení"},
									{Value: "1h", Label: "1 hodina týdně", FixedAddon: 300},
									{Value: "2h", Label: "2 hodiny týdně", FixedAddon: 560},
								},
							},
						},
					},
				},
			},
			{
				Title: "Doplňkové služby",
				Fields: []Field{
					{
						ID:    "extraServices",
						Type:  FieldCheckbox,
						Label: "Co dalšího si přejete?",
						Options: []Option{
							{Value: "fridge", Label: "Mytí lednice", FixedAddon: 150},
							{Value: "oven", Label: "Mytí trouby", FixedAddon: 200},
							{Value: "windows", Label: "Mytí oken", FixedAddon: 400},
							{Value: "own-supplies", Label: "Úklid vlastními prostředky", Coefficient: 0.97},
						},
					},
					{
						ID:          "notes",
						Type:        FieldTextarea,
						Label:       "Poznámka pro nás",
						Placeholder: "Cokoliv, co bychom měli vědět…",
						Optional:    true,
					},
				},
			},
		},
	}
}
