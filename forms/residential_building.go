package forms

// residentialBuildingConfig is the form for common-area cleaning of
// residential buildings (bytové domy). The window/basement/general-cleaning
// fields feed the separately priced periodic deep clean, not the monthly
// price; the pricing engine routes them by id.
func residentialBuildingConfig(prices PriceTable) *FormConfig {
	return &FormConfig{
		ID:                       ServiceResidentialBuilding,
		Title:                    "Úklid bytových domů",
		BasePrice:                prices.ResidentialBuilding,
		GeneralCleaningBasePrice: prices.GeneralCleaning,
		WinterMaintenanceFee:     prices.WinterMaintenance,
		Conditions: []string{
			"Cena platí pro domy s běžným znečištěním společných prostor.",
			"Úklid po rekonstrukci nebo malování účtujeme individuálně.",
			"Čisticí prostředky a pytle na odpad jsou v ceně.",
		},
		CommonServices: []ServiceCategory{
			{
				Title: "Pravidelný úklid",
				Items: []string{
					"zametení a vytření schodiště a chodeb",
					"setření zábradlí a parapetů",
					"úklid prostoru u poštovních schránek",
					"setření vstupních dveří",
				},
			},
			{
				Title: "Generální úklid",
				Items: []string{
					"mytí oken společných prostor",
					"mytí osvětlení a vypínačů",
					"úklid sklepních prostor dle domluvy",
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
							{Value: "twice-weekly", Label: "2x týdně", Coefficient: 1.67},
							{Value: "three-times-weekly", Label: "3x týdně", Coefficient: 2.2},
							{Value: "biweekly", Label: "1x za 14 dní", Coefficient: 0.65},
						},
					},
				},
			},
			{
				Title: "Budova",
				Fields: []Field{
					{
						ID:    "aboveGroundFloors",
						Type:  FieldSelect,
						Label: "Počet nadzemních podlaží",
						Options: []Option{
							{Value: "1", Label: "1 podlaží", Coefficient: 0.55},
							{Value: "2", Label: "2 podlaží", Coefficient: 0.7},
							{Value: "3", Label: "3 podlaží", Coefficient: 0.82},
							{Value: "4", Label: "4 podlaží", Coefficient: 1.0},
							{Value: "5", Label: "5 podlaží", Coefficient: 1.18},
							{Value: "6", Label: "6 podlaží", Coefficient: 1.35},
							{Value: "7", Label: "7 a více podlaží", Coefficient: 1.55},
						},
					},
					{
						ID:    "hasElevator",
						Type:  FieldRadio,
						Label: "Je v domě výtah?",
						Options: []Option{
							{Value: "yes", Label: "Ano", Coefficient: 1.0},
							{Value: "no", Label: "Ne", Coefficient: 0.95},
						},
					},
					{
						ID:    "entrances",
						Type:  FieldSelect,
						Label: "Počet vchodů",
						Options: []Option{
							{Value: "1", Label: "1 vchod", Coefficient: 1.0},
							{Value: "2", Label: "2 vchody", Coefficient: 1.85},
							{Value: "3", Label: "3 vchody", Coefficient: 2.6},
						},
					},
				},
			},
			{
				Title: "Generální úklid",
				Fields: []Field{
					{
						ID:    "generalCleaningType",
						Type:  FieldRadio,
						Label: "Typ generálního úklidu",
						Options: []Option{
							{Value: "standard", Label: "Standardní", Coefficient: 1.0},
							{Value: "with-windows", Label: "Včetně mytí oken", Coefficient: 1.3},
						},
					},
					{
						ID:    "generalCleaningFrequency",
						Type:  FieldRadio,
						Label: "Jak často generální úklid provádět?",
						Options: []Option{
							{Value: "twice-yearly", Label: "2x ročně"},
							{Value: "yearly", Label: "1x ročně"},
						},
					},
					{
						ID:    "floorsWithWindows",
						Type:  FieldSelect,
						Label: "Počet podlaží s okny",
						Options: []Option{
							{Value: "1", Label: "1 podlaží", Coefficient: 0.8},
							{Value: "2", Label: "2 podlaží", Coefficient: 1.0},
							{Value: "3", Label: "3 podlaží", Coefficient: 1.2},
							{Value: "4", Label: "4 a více podlaží", Coefficient: 1.45},
						},
					},
					{
						ID:    "windowsPerFloor",
						Type:  FieldSelect,
						Label: "Počet oken na podlaží",
						Options: []Option{
							{Value: "1-2", Label: "1–2 okna", Coefficient: 0.9},
							{Value: "3-4", Label: "3–4 okna", Coefficient: 1.0},
							{Value: "5+", Label: "5 a více oken", Coefficient: 1.25},
						},
					},
					{
						ID:    "windowType",
						Type:  FieldRadio,
						Label: "Typ oken",
						Options: []Option{
							{Value: "single", Label: "Jednoduchá", Coefficient: 1.0},
							{Value: "double", Label: "Špaletová", Coefficient: 1.35},
						},
					},
					{
						ID:    "basementCleaning",
						Type:  FieldConditional,
						Label: "Úklid sklepních prostor",
						Condition: &Condition{
							Field: "generalCleaningType",
							Op:    OpNeq,
							Value: "",
						},
						Children: []Field{
							{
								ID:    "basementCleaningDetails",
								Type:  FieldRadio,
								Label: "Rozsah úklidu sklepa",
								Options: []Option{
									{Value: "corridors", Label: "Pouze chodby", Coefficient: 1.1},
									{Value: "full", Label: "Včetně kójí", Coefficient: 1.25},
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
							{Value: "winter-maintenance", Label: "Zimní údržba chodníku"},
							{Value: "garbage-room", Label: "Úklid kontejnerového stání", FixedAddon: 250},
							{Value: "graffiti-check", Label: "Kontrola nástěnek a výlepů", FixedAddon: 100},
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
