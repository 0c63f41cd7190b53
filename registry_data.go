package kontonummer

// banks lists every known clearing range in evaluation order. Ranges of
// different rules may overlap (Nordea 3782); every matching rule is evaluated.
var banks = []Bank{
	{
		Name:      "Avanza Bank",
		Clearing:  []ClearingRange{Span("9550", "9569")},
		Algorithm: Mod11,
		Lengths:   type1Comment2,
	},
	{
		Name:      "Svea Bank",
		Clearing:  []ClearingRange{Span("9660", "9669")},
		Algorithm: Mod11,
		Lengths:   type1Comment2,
	},
	{
		Name:      "BlueStep Finans",
		Clearing:  []ClearingRange{Span("9680", "9689")},
		Algorithm: Mod11,
		Lengths:   type1Comment1,
	},
	{
		Name:      "BNP Paribas",
		Clearing:  []ClearingRange{Span("9470", "9479")},
		Algorithm: Mod11,
		Lengths:   type1Comment2,
	},
	{
		Name:      "Citibank",
		Clearing:  []ClearingRange{Span("9040", "9049")},
		Algorithm: Mod11,
		Lengths:   type1Comment2,
	},
	{
		Name:      "Danske Bank",
		Clearing:  []ClearingRange{Span("1200", "1399"), Span("2400", "2499")},
		Algorithm: Mod11,
		Lengths:   type1Comment1,
	},
	{
		Name:      "Danske Bank",
		Clearing:  []ClearingRange{Span("9180", "9189")},
		Algorithm: Mod10,
		Lengths:   type2Comment1,
	},
	{
		Name:      "DNB Bank",
		Clearing:  []ClearingRange{Span("9190", "9199"), Span("9260", "9269")},
		Algorithm: Mod11,
		Lengths:   type1Comment2,
	},
	{
		Name:      "Ekobanken",
		Clearing:  []ClearingRange{Span("9700", "9709")},
		Algorithm: Mod11,
		Lengths:   type1Comment2,
	},
	{
		Name:      "Erik Penser",
		Clearing:  []ClearingRange{Span("9590", "9599")},
		Algorithm: Mod11,
		Lengths:   type1Comment2,
	},
	{
		Name:      "Forex Bank",
		Clearing:  []ClearingRange{Span("9400", "9449")},
		Algorithm: Mod11,
		Lengths:   type1Comment1,
	},
	{
		Name:      "Handelsbanken",
		Clearing:  []ClearingRange{Span("6000", "6999")},
		Algorithm: Mod11,
		Lengths:   type2Comment2,
	},
	{
		Name:      "ICA Banken",
		Clearing:  []ClearingRange{Span("9270", "9279")},
		Algorithm: Mod11,
		Lengths:   type1Comment1,
	},
	{
		Name:      "IKANO Banken",
		Clearing:  []ClearingRange{Span("9170", "9179")},
		Algorithm: Mod11,
		Lengths:   type1Comment1,
	},
	{
		Name:      "JAK Medlemsbank",
		Clearing:  []ClearingRange{Span("9670", "9679")},
		Algorithm: Mod11,
		Lengths:   type1Comment2,
	},
	{
		Name:      "Klarna Bank",
		Clearing:  []ClearingRange{Span("9780", "9789")},
		Algorithm: Mod11,
		Lengths:   type1Comment2,
	},
	{
		Name:      "Landshypotek",
		Clearing:  []ClearingRange{Span("9390", "9399")},
		Algorithm: Mod11,
		Lengths:   type1Comment2,
	},
	{
		Name:      "Lån & Spar Bank Sverige",
		Clearing:  []ClearingRange{Span("9630", "9639")},
		Algorithm: Mod11,
		Lengths:   type1Comment1,
	},
	{
		Name:      "Länsförsäkringar Bank",
		Clearing:  []ClearingRange{Span("3400", "3409"), Span("9060", "9069")},
		Algorithm: Mod11,
		Lengths:   type1Comment1,
	},
	{
		Name:      "Länsförsäkringar Bank",
		Clearing:  []ClearingRange{Span("9020", "9029")},
		Algorithm: Mod11,
		Lengths:   type1Comment2,
	},
	{
		Name:      "Marginalen Bank",
		Clearing:  []ClearingRange{Span("9230", "9239")},
		Algorithm: Mod11,
		Lengths:   type1Comment1,
	},
	{
		Name:      "MedMera Bank",
		Clearing:  []ClearingRange{Span("9650", "9659")},
		Algorithm: Mod11,
		Lengths:   type1Comment2,
	},
	{
		Name:      "Nordax Bank",
		Clearing:  []ClearingRange{Span("9640", "9649")},
		Algorithm: Mod11,
		Lengths:   type1Comment2,
	},
	{
		Name: "Nordea",
		Clearing: []ClearingRange{
			Span("1100", "1199"),
			Span("1400", "1999"),
			Span("2000", "2099"),
			Span("3000", "3299"),
			Span("3301", "3309"),
			Span("3310", "3399"),
			Span("3410", "3499"),
			Span("3500", "3999"),
		},
		Algorithm: Mod11,
		Lengths:   type1Comment1,
	},
	{
		Name:      "Nordea",
		Clearing:  []ClearingRange{Span("4000", "4999")},
		Algorithm: Mod11,
		Lengths:   type1Comment2,
	},
	{
		// Personkonto
		Name:      "Nordea",
		Clearing:  []ClearingRange{Single("3300"), Single("3782")},
		Algorithm: Mod10,
		Lengths:   type2Comment1,
	},
	{
		Name:      "Nordnet Bank",
		Clearing:  []ClearingRange{Span("9100", "9109")},
		Algorithm: Mod11,
		Lengths:   type1Comment2,
	},
	{
		Name:      "Resurs Bank",
		Clearing:  []ClearingRange{Span("9280", "9289")},
		Algorithm: Mod11,
		Lengths:   type1Comment1,
	},
	{
		Name:      "Riksgälden",
		Clearing:  []ClearingRange{Span("9890", "9899")},
		Algorithm: Mod10,
		Lengths:   type2Comment1,
	},
	{
		Name:      "Riksgälden",
		Clearing:  []ClearingRange{Span("9880", "9889")},
		Algorithm: Mod11,
		Lengths:   type1Comment2,
	},
	{
		Name:      "Santander Consumer Bank",
		Clearing:  []ClearingRange{Span("9460", "9469")},
		Algorithm: Mod11,
		Lengths:   type1Comment1,
	},
	{
		Name:      "SBAB",
		Clearing:  []ClearingRange{Span("9250", "9259")},
		Algorithm: Mod11,
		Lengths:   type1Comment1,
	},
	{
		Name:      "SEB",
		Clearing:  []ClearingRange{Span("5000", "5999"), Span("9120", "9124"), Span("9130", "9149")},
		Algorithm: Mod11,
		Lengths:   type1Comment1,
	},
	{
		Name:      "Skandiabanken",
		Clearing:  []ClearingRange{Span("9150", "9169")},
		Algorithm: Mod11,
		Lengths:   type1Comment2,
	},
	{
		Name:      "Sparbanken Syd",
		Clearing:  []ClearingRange{Span("9570", "9579")},
		Algorithm: Mod10,
		Lengths:   type2Comment1,
	},
	{
		Name:      "Swedbank",
		Clearing:  []ClearingRange{Span("7000", "7999")},
		Algorithm: Mod11,
		Lengths:   type1Comment1,
	},
	{
		Name:      "Swedbank",
		Clearing:  []ClearingRange{Span("9300", "9349")},
		Algorithm: Mod10,
		Lengths:   type2Comment1,
		ZeroFill:  true,
	},
	{
		// Some legitimate accounts in the 8xxxx range fail the checksum.
		Name:              "Swedbank",
		Clearing:          []ClearingRange{Span("80000", "89999")},
		Algorithm:         Mod10,
		Lengths:           type2Comment3,
		ZeroFill:          true,
		WarnOnBadChecksum: true,
	},
	{
		Name:      "Ålandsbanken",
		Clearing:  []ClearingRange{Span("2300", "2399")},
		Algorithm: Mod11,
		Lengths:   type1Comment2,
	},
}
