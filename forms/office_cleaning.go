package forms

// officeCleaningConfig is the form for recurring office cleaning.
func officeCleaningConfig(prices PriceTable) *FormConfig {
	return &FormConfig{
		ID:        ServiceOfficeCleaning,
		Title:     "Úklid kanceláří",
		BasePrice: prices.OfficeCleaning,
		Conditions: []string{
			"Cena platí pro úklid mimo pracovní dobu (po 18:00 nebo před 7:00).",
			"Spotřební materiál (mýdlo, papírové utěrky) doplňujeme za nákupní cenu.",
		},
		CommonServices: []ServiceCategory{
			{
				Title: "Vždy v ceně",
				Items: []string{
					"vysávání a vytírání podlah",
					"utírání prachu z pracovních stolů",
					"úklid kuchyňky a sanitárních zařízení",
					"vynesení odpadkových košů",
					"doplnění hygienických potřeb",
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
							{Value: "daily", Label: "Každý pracovní den", Coefficient: 2.6},
							{Value: "three-times-weekly", Label: "3x týdně", Coefficient: 1.7},
							{Value: "twice-weekly", Label: "2x týdně", Coefficient: 1.3},
							{Value: "weekly", Label: "1x týdně", Coefficient: 1.0},
						},
					},
				},
			},
			{
				Title: "Prostory",
				Fields: []Field{
					{
						ID:    "officeArea",
						Type:  FieldSelect,
						Label: "Výměra kanceláří",
						Options: []Option{
							{Value: "to-100", Label: "do 100 m²", Coefficient: 0.75},
							{Value: "100-250", Label: "100–250 m²", Coefficient: 1.0},
							{Value: "250-500", Label: "250–500 m²", Coefficient: 1.55},
							{Value: "500+", Label: "nad 500 m²", Coefficient: 2.3},
						},
					},
					{
						ID:    "kitchenettes",
						Type:  FieldRadio,
						Label: "Počet kuchyněk",
						Options: []Option{
							{Value: "0", Label: "Žádná", Coefficient: 0.95},
							{Value: "1", Label: "1 kuchyňka", Coefficient: 1.0},
							{Value: "2+", Label: "2 a více", Coefficient: 1.1},
						},
					},
					{
						ID:   "dishwashing",
						Type: FieldConditional,
						Condition: &Condition{
							Field: "kitchenettes",
							Op:    OpNeq,
							Value: "0",
						},
						Children: []Field{
							{
								ID:    "dishwashingService",
								Type:  FieldRadio,
								Label: "Mytí nádobí",
								Options: []Option{
									{Value: "no", Label: "Ne"},
									{Value: "yes", Label: "Ano", FixedAddon: 350},
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
							{Value: "carpet-cleaning", Label: "Čištění koberců 2x ročně", FixedAddon: 450},
							{Value: "window-cleaning", Label: "Mytí oken 2x ročně", FixedAddon: 380},
							{Value: "plant-care", Label: "Péče o květiny", FixedAddon: 120},
						},
					},
					{
						ID:          "notes",
						Type:        FieldTextarea,
						Label:       "Poznámka pro nás",
						Optional:    true,
						Placeholder: "Cokoliv, co bychom měli vědět…",
					},
				},
			},
		},
	}
}
