package testcards

import "strings"

// Default values applied when a table row does not carry the field.
const (
	DefaultExpiry = "03/2030"
	DefaultCVC    = "737"
)

// Card represents a single test payment card.
type Card struct {
	Number  string `json:"number" csv:"number" xml:"number"`
	Brand   string `json:"brand" csv:"brand" xml:"brand"`
	Expiry  string `json:"expiry" csv:"expiry" xml:"expiry"`
	CVC     string `json:"cvc" csv:"cvc" xml:"cvc"`
	Country string `json:"country" csv:"country" xml:"country"`
	Note    string `json:"note,omitempty" csv:"note" xml:"note,omitempty"`
}

// Brand identifies a card scheme inferred from the number prefix.
type Brand string

// Brand constants returned by InferBrand.
const (
	BrandVisa       Brand = "Visa"
	BrandMastercard Brand = "Mastercard"
	BrandAmex       Brand = "American Express"
	BrandDiners     Brand = "Diners"
	BrandDiscover   Brand = "Discover"
	BrandJCB        Brand = "JCB"
	BrandUnionPay   Brand = "China UnionPay"
	BrandUnknown    Brand = "Unknown"
)

// CleanNumber strips every non-digit character from a raw card number.
func CleanNumber(number string) string {
	var b strings.Builder
	b.Grow(len(number))
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatNumber returns the cleaned number grouped in blocks of four digits
// for display.
func FormatNumber(number string) string {
	clean := CleanNumber(number)
	var b strings.Builder
	for i, r := range clean {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ValidNumber reports whether the given text is a plausible card number.
// Non-digit characters are stripped first; the remaining digits must be
// 13 to 19 long and pass the Luhn checksum.
func ValidNumber(number string) bool {
	clean := CleanNumber(number)
	if len(clean) < 13 || len(clean) > 19 {
		return false
	}

	// Luhn: double every second digit from the right, fold >9 back into a
	// single digit, the total must be divisible by 10.
	sum := 0
	double := false
	for i := len(clean) - 1; i >= 0; i-- {
		digit := int(clean[i] - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}
	return sum%10 == 0
}

// InferBrand classifies a card number by its prefix. The first matching rule
// wins; numbers matching no rule map to BrandUnknown.
func InferBrand(number string) Brand {
	n := CleanNumber(number)

	switch {
	case hasPrefixIn(n, "4"):
		return BrandVisa
	case hasPrefixIn(n, "51", "52", "53", "54", "55", "22", "23", "24", "25", "26", "27"):
		return BrandMastercard
	case hasPrefixIn(n, "34", "37"):
		return BrandAmex
	case hasPrefixIn(n, "30", "36", "38", "39"):
		return BrandDiners
	case hasPrefixIn(n, "6011", "65"):
		return BrandDiscover
	case hasPrefixIn(n, "35"):
		return BrandJCB
	case hasPrefixIn(n, "62"):
		return BrandUnionPay
	default:
		return BrandUnknown
	}
}

func hasPrefixIn(s string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
