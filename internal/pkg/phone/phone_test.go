package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidAU(t *testing.T) {
	valid := []string{
		"0412345678",
		"0412 345 678",
		"04-1234-5678",
		"+61412345678",
		"61412345678",
		"0298765432",
	}
	for _, num := range valid {
		assert.True(t, ValidAU(num), "expected valid: %s", num)
	}

	invalid := []string{
		"",
		"1234",
		"0112345678",  // 1 is not a valid area/mobile prefix
		"041234567",   // too short
		"04123456789", // too long
		"not-a-phone",
		"+1 555 000 1234", // wrong country
	}
	for _, num := range invalid {
		assert.False(t, ValidAU(num), "expected invalid: %s", num)
	}
}

func TestFormatE164(t *testing.T) {
	got, err := FormatE164("0412 345 678", "+61")
	assert.NoError(t, err)
	assert.Equal(t, "+61412345678", got)

	got, err = FormatE164("+61412345678", "+61")
	assert.NoError(t, err)
	assert.Equal(t, "+61412345678", got)

	got, err = FormatE164("61412345678", "+61")
	assert.NoError(t, err)
	assert.Equal(t, "+61412345678", got)
}

func TestFormatE164_Rejects(t *testing.T) {
	_, err := FormatE164("", "+61")
	assert.ErrorIs(t, err, ErrInvalidNumber)

	_, err = FormatE164("0412", "+61")
	assert.ErrorIs(t, err, ErrBadLength)

	// 16 digits exceeds the upper bound
	_, err = FormatE164("+1234567890123456", "+61")
	assert.ErrorIs(t, err, ErrBadLength)

	_, err = FormatE164("04x2345678", "+61")
	assert.ErrorIs(t, err, ErrInvalidNumber)
}
