package forms

// oneTimeCleaningConfig is the form for hourly-billed one-off cleans. The
// spaceSize coefficients encode minimum hours of work, so the pricing engine
// keeps them out of the hourly rate.
func oneTimeCleaningConfig(prices PriceTable) *FormConfig {
	return &FormConfig{
		ID:        ServiceOneTimeCleaning,
		Title:     "Jednorázový úklid",
		BasePrice: prices.OneTimeCleaningRate,
		Hourly:    true,
		Conditions: []string{
			"Minimální rozsah objednávky jsou 3 hodiny.",
			"Doprava po Praze je v ceně, mimo Prahu účtujeme 8 Kč/km.",
		},
		CommonServices: []ServiceCategory{
			{
				Title: "Co zvládneme",
				Items: []string{
					"úklid po malování a rekonstrukci",
					"úklid před nastěhováním a po vystěhování",
					"generální úklid domácnosti",
					"mytí oken a rámů",
				},
			},
		},
		Sections: []Section{
			{
				Title: "Rozsah úklidu",
				Fields: []Field{
					{
						ID:    "spaceSize",
						Type:  FieldSelect,
						Label: "Velikost prostoru",
						Options: []Option{
							{Value: "1kk", Label: "1+kk / 1+1", Coefficient: 1.0, Note: "cca 3 hodiny práce"},
							{Value: "2kk", Label: "2+kk / 2+1", Coefficient: 1.4, Note: "cca 4 hodiny práce"},
							{Value: "3kk", Label: "3+kk / 3+1", Coefficient: 1.8, Note: "cca 5–6 hodin práce"},
							{Value: "house", Label: "Rodinný dům", Coefficient: 2.5, Note: "cca 8 hodin práce"},
						},
					},
					{
						ID:    "cleaningType",
						Type:  FieldRadio,
						Label: "Typ úklidu",
						Options: []Option{
							{Value: "standard", Label: "Běžný generální úklid", Coefficient: 1.0},
							{Value: "after-renovation", Label: "Po rekonstrukci", Coefficient: 1.35},
							{Value: "moving", Label: "Před/po stěhování", Coefficient: 1.15},
						},
					},
					{
						ID:    "urgency",
						Type:  FieldRadio,
						Label: "Kdy to potřebujete?",
						Options: []Option{
							{Value: "flexible", Label: "Termín nespěchá", Coefficient: 1.0},
							{Value: "this-week", Label: "Tento týden", Coefficient: 1.1},
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
							{Value: "windows", Label: "Mytí oken", FixedAddon: 40},
							{Value: "carpet", Label: "Extrakční čištění koberců", FixedAddon: 60},
							{Value: "upholstery", Label: "Čištění čalounění", FixedAddon: 50},
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
