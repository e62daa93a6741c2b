package letter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatNames(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		wantHeader     string
		wantSalutation string
	}{
		{
			name:           "single owner",
			input:          "JOHN SMITH",
			wantHeader:     "John Smith",
			wantSalutation: "John",
		},
		{
			name:           "couple joined by AND",
			input:          "JOHN SMITH AND JANE DOE",
			wantHeader:     "John Smith & Jane Doe",
			wantSalutation: "John and Jane",
		},
		{
			name:           "couple joined by ampersand",
			input:          "JOHN SMITH & JANE DOE",
			wantHeader:     "John Smith & Jane Doe",
			wantSalutation: "John and Jane",
		},
		{
			name:           "three owners get the serial comma",
			input:          "ANNE ONE AND BEN TWO AND CARA THREE",
			wantHeader:     "Anne One & Ben Two & Cara Three",
			wantSalutation: "Anne, Ben, and Cara",
		},
		{
			name:           "hyphenated surname",
			input:          "MARY SMITH-JONES",
			wantHeader:     "Mary Smith-Jones",
			wantSalutation: "Mary",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header, salutation, err := FormatNames(tt.input, "")
			require.NoError(t, err)
			assert.Equal(t, tt.wantHeader, header)
			assert.Equal(t, tt.wantSalutation, salutation)
		})
	}
}

func TestFormatNamesOverrideSalutation(t *testing.T) {
	header, salutation, err := FormatNames("JOHN SMITH AND JANE DOE", "Mr and Mrs Smith")
	require.NoError(t, err)
	assert.Equal(t, "John Smith & Jane Doe", header)
	assert.Equal(t, "Mr and Mrs Smith", salutation)
}

func TestFormatNamesEmpty(t *testing.T) {
	_, _, err := FormatNames("  ", "")
	requireKind(t, err, KindFormatting)
}

func TestFormatAddress(t *testing.T) {
	addr := AddressRecord{
		Lines:    []string{"52 Ambleside Road", "Lightwater", "Surrey"},
		Postcode: "GU18 5UH",
	}
	block, err := FormatAddress(addr)
	require.NoError(t, err)
	assert.Equal(t, "52 Ambleside Road\nLightwater\nSurrey\nGU18 5UH", block)
}

func TestFormatAddressSplitsInternalCommas(t *testing.T) {
	addr := AddressRecord{
		Lines:    []string{"Oak Farm, Mill Lane", "Lightwater"},
		Postcode: "gu18 5uh",
	}
	block, err := FormatAddress(addr)
	require.NoError(t, err)
	assert.Equal(t, "Oak Farm\nMill Lane\nLightwater\nGU18 5UH", block)
}

func TestFormatAddressRejectsBadPostcode(t *testing.T) {
	_, err := FormatAddress(AddressRecord{Lines: []string{"x"}, Postcode: "NOPE"})
	requireKind(t, err, KindFormatting)
}

func TestGenerateFilename(t *testing.T) {
	addr := AddressRecord{
		Lines:    []string{"52 Ambleside Road", "Lightwater", "Surrey"},
		Postcode: "GU18 5UH",
	}
	assert.Equal(t, "52 Ambleside Road, Lightwater, Surrey, GU18 5UH.pdf", GenerateFilename(addr))
}

func TestGenerateFilenameSanitizes(t *testing.T) {
	addr := AddressRecord{
		Lines:    []string{"Flat 1/2  \n\"The Mews\"", "<Town>"},
		Postcode: "AB1 2CD",
	}
	assert.Equal(t, "Flat 12 The Mews, Town, AB1 2CD.pdf", GenerateFilename(addr))
}

func TestGenerateFilenameDeterministic(t *testing.T) {
	addr := AddressRecord{Lines: []string{"1 High St"}, Postcode: "AB1 2CD"}
	first := GenerateFilename(addr)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, GenerateFilename(addr))
	}
}

func TestGenerateFilenameDivergesOnPostcode(t *testing.T) {
	// Same street in two towns must not collide on the output filename.
	a := AddressRecord{Lines: []string{"1 High St"}, Postcode: "AB1 2CD"}
	b := AddressRecord{Lines: []string{"1 High St"}, Postcode: "AB1 2CE"}
	assert.NotEqual(t, GenerateFilename(a), GenerateFilename(b))
}

func TestLegacyAddressRecord(t *testing.T) {
	legacy := LegacyAddress{House: "52 Ambleside Road", City: "Lightwater", County: "Surrey", Postcode: "GU18 5UH"}
	record := legacy.Record()
	assert.Equal(t, []string{"52 Ambleside Road", "Lightwater", "Surrey"}, record.Lines)
	assert.Equal(t, "GU18 5UH", record.Postcode)

	sparse := LegacyAddress{House: "1 High St", Postcode: "AB1 2CD"}
	assert.Equal(t, []string{"1 High St"}, sparse.Record().Lines)
}

func TestValidatePostcode(t *testing.T) {
	valid := []string{"GU18 5UH", "gu18 5uh", "M1 1AA", "EC1A 1BB", "B338TH"}
	for _, pc := range valid {
		assert.True(t, ValidatePostcode(pc), pc)
	}

	invalid := []string{"", "GU18", "12345", "GU18 5UHX", "hello GU18 5UH"}
	for _, pc := range invalid {
		assert.False(t, ValidatePostcode(pc), pc)
	}
}

func TestTitleCaseName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"JOHN", "John"},
		{"SMITH-JONES", "Smith-Jones"},
		{"VAN DER BERG", "Van Der Berg"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := TitleCaseName(tt.in); got != tt.want {
			t.Errorf("TitleCaseName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
