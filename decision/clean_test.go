package decision

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateVariant(t *testing.T) {
	cfg := DefaultCleanConfig()

	tests := []struct {
		name string
		in   string
		want RejectReason
	}{
		{"valid single word", "PROVIDO", ""},
		{"valid multi word", "NEGADO PROVIMENTO", ""},
		{"too short", "OK", RejectTooShort},
		{"empty", "", RejectTooShort},
		{"date", "12/03/2019", RejectDate},
		{"only symbols", "---", RejectSymbols},
		{"only punctuation", "...!?", RejectSymbols},
		{"mostly lowercase", "julgo improcedente", RejectNotCaps},
		{"mixed below threshold", "Provido O Recurso Interposto", RejectNotCaps},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateVariant(tt.in, cfg))
		})
	}
}

func TestValidateVariantTooLong(t *testing.T) {
	cfg := DefaultCleanConfig()
	long := ""
	for i := 0; i <= cfg.MaxLen; i++ {
		long += "A"
	}
	assert.Equal(t, RejectTooLong, ValidateVariant(long, cfg))
}

func TestUppercaseRatio(t *testing.T) {
	assert.Equal(t, 1.0, UppercaseRatio("PROVIDO"))
	assert.Equal(t, 0.0, UppercaseRatio("provido"))
	assert.Equal(t, 0.5, UppercaseRatio("ABab"))
	assert.Equal(t, 0.0, UppercaseRatio("123 ---"))
	// Digits and punctuation don't count as letters
	assert.Equal(t, 1.0, UppercaseRatio("ART. 412"))
}

func TestCleanVariants(t *testing.T) {
	rows := []VariantRow{
		{Variant: "PROVIDO", Count: 10},
		{Variant: "NEGADO PROVIMENTO", Count: 30},
		{Variant: "01/01/2020", Count: 5},
		{Variant: "xx", Count: 2},
		{Variant: "julgo procedente", Count: 4},
		{Variant: "IMPROCEDENTE", Count: 50},
	}

	res := CleanVariants(rows, DefaultCleanConfig())

	// Survivors re-ranked by count descending
	assert.Len(t, res.Kept, 3)
	assert.Equal(t, "IMPROCEDENTE", res.Kept[0].Variant)
	assert.Equal(t, "NEGADO PROVIMENTO", res.Kept[1].Variant)
	assert.Equal(t, "PROVIDO", res.Kept[2].Variant)

	// Single-token survivors are seeds, the rest variants
	assert.Len(t, res.Seeds, 2)
	assert.Len(t, res.Variants, 1)
	assert.Equal(t, "NEGADO PROVIMENTO", res.Variants[0].Variant)

	// Removal counts weighted by frequency
	assert.Equal(t, 5, res.Removed[RejectDate])
	assert.Equal(t, 2, res.Removed[RejectTooShort])
	assert.Equal(t, 4, res.Removed[RejectNotCaps])
}

func TestCleanVariantsEmpty(t *testing.T) {
	res := CleanVariants(nil, DefaultCleanConfig())
	assert.Empty(t, res.Kept)
	assert.Empty(t, res.Seeds)
	assert.Empty(t, res.Variants)
}
