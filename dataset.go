package testcards

// fallbackCards is a hand-curated catalogue of known-good test cards, used
// only when both automated extraction tiers come back empty. Entries are
// maintained against the published documentation and are not re-validated at
// load time.
var fallbackCards = []struct {
	category string
	card     Card
}{
	{"US Debit", Card{Number: "5413330033003303", Brand: "Mastercard Debit / PULSE / NYCE", Expiry: "03/30", CVC: "737", Country: "US"}},
	{"US Debit", Card{Number: "6011609900000003", Brand: "Discover Debit / Accel / STAR / Maestro USA", Expiry: "03/30", CVC: "737", Country: "US"}},
	{"US Debit", Card{Number: "6445645000000002", Brand: "Discover Debit / PULSE / NYCE", Expiry: "03/30", CVC: "737", Country: "US"}},

	{"Visa", Card{Number: "4111111145551142", Brand: "Visa Classic", Expiry: "03/2030", CVC: "737", Country: "NL", Note: "Security code optional"}},
	{"Visa", Card{Number: "4111112014267661", Brand: "Visa Debit", Expiry: "12/2030", CVC: "737", Country: "FR", Note: "Eight-digit BIN"}},
	{"Visa", Card{Number: "4988438843884305", Brand: "Visa Classic", Expiry: "03/2030", CVC: "737", Country: "ES"}},
	{"Visa", Card{Number: "4166676667666746", Brand: "Visa Classic", Expiry: "03/2030", CVC: "737", Country: "NL"}},
	{"Visa", Card{Number: "4646464646464644", Brand: "Visa Classic", Expiry: "03/2030", CVC: "737", Country: "PL"}},
	{"Visa", Card{Number: "4000620000000007", Brand: "Visa Commercial Credit", Expiry: "03/2030", CVC: "737", Country: "US"}},
	{"Visa", Card{Number: "4000060000000006", Brand: "Visa Commercial Debit", Expiry: "03/2030", CVC: "737", Country: "US"}},
	{"Visa", Card{Number: "4293189100000008", Brand: "Visa Commercial Premium Credit", Expiry: "03/2030", CVC: "737", Country: "AU"}},
	{"Visa", Card{Number: "4988080000000000", Brand: "Visa Commercial Premium Debit", Expiry: "03/2030", CVC: "737", Country: "IN"}},
	{"Visa", Card{Number: "4111111111111111", Brand: "Visa Consumer", Expiry: "03/2030", CVC: "737", Country: "NL"}},
	{"Visa", Card{Number: "4444333322221111", Brand: "Visa Corporate", Expiry: "03/2030", CVC: "737", Country: "GB"}},
	{"Visa", Card{Number: "4001590000000001", Brand: "Visa Corporate Credit", Expiry: "03/2030", CVC: "737", Country: "IL"}},
	{"Visa", Card{Number: "4000180000000002", Brand: "Visa Corporate Debit", Expiry: "03/2030", CVC: "737", Country: "IN"}},
	{"Visa", Card{Number: "4000020000000000", Brand: "Visa Credit", Expiry: "03/2030", CVC: "737", Country: "US"}},
	{"Visa", Card{Number: "4000160000000004", Brand: "Visa Debit", Expiry: "03/2030", CVC: "737", Country: "IN"}},
	{"Visa", Card{Number: "4002690000000008", Brand: "Visa Debit", Expiry: "03/2030", CVC: "737", Country: "AU"}},
	{"Visa", Card{Number: "4400000000000008", Brand: "Visa Debit", Expiry: "03/2030", CVC: "737", Country: "US"}},
	{"Visa", Card{Number: "4484600000000004", Brand: "Visa Fleet Credit", Expiry: "03/2030", CVC: "737", Country: "US"}},
	{"Visa", Card{Number: "4607000000000009", Brand: "Visa Fleet Debit", Expiry: "03/2030", CVC: "737", Country: "MX"}},
	{"Visa", Card{Number: "4977949494949497", Brand: "Visa Gold", Expiry: "03/2030", CVC: "737", Country: "FR"}},
	{"Visa", Card{Number: "4000640000000005", Brand: "Visa Premium Credit", Expiry: "03/2030", CVC: "737", Country: "AZ"}},
	{"Visa", Card{Number: "4003550000000003", Brand: "Visa Premium Credit", Expiry: "03/2030", CVC: "737", Country: "TW"}},
	{"Visa", Card{Number: "4000760000000001", Brand: "Visa Premium Debit", Expiry: "03/2030", CVC: "737", Country: "MU"}},
	{"Visa", Card{Number: "4017340000000003", Brand: "Visa Premium Debit", Expiry: "03/2030", CVC: "737", Country: "RU"}},
	{"Visa", Card{Number: "4005519000000006", Brand: "Visa Purchasing Credit", Expiry: "03/2030", CVC: "737", Country: "US"}},
	{"Visa", Card{Number: "4131840000000003", Brand: "Visa Purchasing Debit", Expiry: "03/2030", CVC: "737", Country: "GT"}},
	{"Visa", Card{Number: "4035501000000008", Brand: "Visa", Expiry: "03/2030", CVC: "737", Country: "FR"}},
	{"Visa", Card{Number: "4151500000000008", Brand: "Visa Credit", Expiry: "03/2030", CVC: "737", Country: "US"}},
	{"Visa", Card{Number: "4199350000000002", Brand: "Visa Proprietary", Expiry: "03/2030", CVC: "737", Country: "FR"}},

	{"Visa Electron", Card{Number: "4001020000000009", Brand: "Visa Electron", Expiry: "03/2030", CVC: "737", Country: "BR"}},

	{"V Pay", Card{Number: "4013250000000006", Brand: "V Pay", Expiry: "03/2030", CVC: "737", Country: "PL"}},
}

// FallbackCatalog returns a fresh catalog populated with the curated static
// dataset. It never returns an empty catalog.
func FallbackCatalog() *Catalog {
	catalog := NewCatalog()
	for _, entry := range fallbackCards {
		catalog.Add(entry.category, entry.card)
	}
	return catalog
}
