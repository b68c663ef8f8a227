package testcards

import (
	"regexp"
	"strings"
)

// Shape patterns used to classify ambiguous cells. Matches are deliberately
// unanchored: a cell like "03/2030 (expired)" still counts as an expiry.
var (
	countryRe = regexp.MustCompile(`^[A-Z]{2}$`)
	expiryRe  = regexp.MustCompile(`\d{2}/\d{4}`)
	cvcRe     = regexp.MustCompile(`\d{3,4}`)
)

// IsCountryCode reports whether the text has the shape of a two-letter
// uppercase ISO country code.
func IsCountryCode(text string) bool {
	return countryRe.MatchString(strings.TrimSpace(text))
}

// ClassifyRow maps an ordered list of table cell texts to a Card using
// positional priors and content-shape heuristics. The layout is that of the
// Adyen documentation tables: the number always comes first, and the
// following cells are disambiguated by shape (country code, expiry date,
// CVC). Cells beyond the fifth accumulate into the note field.
//
// This is a best-effort classifier for one known page layout, not a general
// table-schema inference engine; ambiguous cells favor earlier-declared
// field assignments.
//
// Returns EINVALID if the row carries no number that passes Luhn validation.
func ClassifyRow(cells []string) (*Card, error) {
	var card Card

	for i, cell := range cells {
		text := strings.TrimSpace(cell)

		switch i {
		case 0:
			card.Number = CleanNumber(text)

		case 1:
			if IsCountryCode(text) {
				card.Country = strings.ToUpper(strings.TrimSpace(text))
			} else {
				card.Brand = text
			}

		case 2:
			if expiryRe.MatchString(text) {
				card.Expiry = text
			} else if card.Brand == "" {
				card.Brand = text
			}

		case 3:
			if IsCountryCode(text) {
				card.Country = strings.ToUpper(strings.TrimSpace(text))
			} else if isCVC(text) {
				card.CVC = text
			} else if card.Expiry == "" && expiryRe.MatchString(text) {
				card.Expiry = text
			}

		case 4:
			if IsCountryCode(text) {
				card.Country = strings.ToUpper(strings.TrimSpace(text))
			} else if card.CVC == "" && (cvcRe.MatchString(text) || strings.EqualFold(text, "none")) {
				card.CVC = text
			}

		default:
			if text != "" {
				if card.Note != "" {
					card.Note += " | "
				}
				card.Note += text
			}
		}
	}

	if card.Number == "" || !ValidNumber(card.Number) {
		return nil, Errorf(EINVALID, "row has no valid card number")
	}

	if card.Expiry == "" {
		card.Expiry = DefaultExpiry
	}
	if card.CVC == "" {
		card.CVC = DefaultCVC
	}

	return &card, nil
}

// isCVC matches a 3-4 digit security code or the sentinel texts the
// documentation uses for cards without one.
func isCVC(text string) bool {
	if cvcRe.MatchString(text) {
		return true
	}
	lower := strings.ToLower(text)
	return lower == "none" || strings.Contains(lower, "not applicable")
}
