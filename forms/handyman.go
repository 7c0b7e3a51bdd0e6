package forms

// handymanServicesConfig is the form for hourly-billed handyman work.
func handymanServicesConfig(prices PriceTable) *FormConfig {
	return &FormConfig{
		ID:        ServiceHandymanServices,
		Title:     "Hodinový manžel",
		BasePrice: prices.HandymanRate,
		Hourly:    true,
		Conditions: []string{
			"Minimální rozsah objednávky jsou 2 hodiny.",
			"Materiál není v ceně, nakoupíme jej za nákupní cenu s doručením.",
		},
		CommonServices: []ServiceCategory{
			{
				Title: "Co zvládneme",
				Items: []string{
					"montáž nábytku a věšení poliček",
					"drobné opravy elektro a vody",
					"výměna baterií, sifonů a těsnění",
					"vrtání a kotvení do všech materiálů",
				},
			},
		},
		Sections: []Section{
			{
				Title: "Rozsah práce",
				Fields: []Field{
					{
						ID:    "spaceSize",
						Type:  FieldSelect,
						Label: "Rozsah zakázky",
						Options: []Option{
							{Value: "small", Label: "Drobnost (do 2 hodin)", Coefficient: 1.0},
							{Value: "medium", Label: "Půlden práce", Coefficient: 1.9},
							{Value: "large", Label: "Celý den a více", Coefficient: 3.4},
						},
					},
					{
						ID:    "workType",
						Type:  FieldRadio,
						Label: "Typ práce",
						Options: []Option{
							{Value: "assembly", Label: "Montáž nábytku", Coefficient: 1.0},
							{Value: "electrical", Label: "Elektroinstalace", Coefficient: 1.25},
							{Value: "plumbing", Label: "Voda a odpady", Coefficient: 1.2},
							{Value: "other", Label: "Ostatní", Coefficient: 1.0},
						},
					},
					{
						ID:   "toolRental",
						Type: FieldConditional,
						Condition: &Condition{
							Field: "workType",
							Op:    OpEq,
							Value: "assembly",
						},
						Children: []Field{
							{
								ID:    "ownTools",
								Type:  FieldRadio,
								Label: "Máte vlastní nářadí?",
								Options: []Option{
									{Value: "yes", Label: "Ano", Coefficient: 0.95},
									{Value: "no", Label: "Ne", Coefficient: 1.0},
								},
							},
						},
					},
					{
						ID:    "urgency",
						Type:  FieldRadio,
						Label: "Kdy to potřebujete?",
						Options: []Option{
							{Value: "flexible", Label: "Termín nespěchá", Coefficient: 1.0},
							{Value: "express", Label: "Do 48 hodin", Coefficient: 1.3},
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
							{Value: "material-purchase", Label: "Nákup materiálu", FixedAddon: 50},
							{Value: "debris-removal", Label: "Odvoz suti a obalů", FixedAddon: 80},
						},
						Note: "Příplatky k hodinové sazbě.",
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
