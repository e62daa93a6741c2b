package letter

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darlands/wayleave-scanner/internal/classify"
)

const annualContent = `ELECTRICITY ACT 1989
Re: Electrical Equipment on your property

I/We, JOHN SMITH AND JANE DOE
of 52 Ambleside Road, Lightwater, Surrey GU18 5UH being the freehold owner(s)
hereby consent to the placement of electrical equipment.`

const fifteenYearContent = `This Agreement is made the day between
(1) JOHN SMITH AND JANE DOE of 52 Ambleside Road, Lightwater, Surrey GU18 5UH
(together the "Grantor") and (2) Southern Electric Power Distribution plc

AGREED TERMS
"the Term" means a term commencing on the date hereof`

func TestExtractAnnual(t *testing.T) {
	e := NewExtractor(zerolog.Nop())

	info, err := e.Extract(annualContent, classify.WayleaveAnnual)
	require.NoError(t, err)

	assert.Equal(t, "JOHN SMITH AND JANE DOE", info.FullNames)
	assert.Equal(t, "John and Jane", info.SalutationName)
	assert.Equal(t, []string{"52 Ambleside Road", "Lightwater", "Surrey"}, info.Address.Lines)
	assert.Equal(t, "GU18 5UH", info.Address.Postcode)
	assert.Empty(t, info.Address.ExtraPostcodes)
}

func TestExtractFifteenYear(t *testing.T) {
	e := NewExtractor(zerolog.Nop())

	info, err := e.Extract(fifteenYearContent, classify.WayleaveFifteenYear)
	require.NoError(t, err)

	assert.Equal(t, "JOHN SMITH AND JANE DOE", info.FullNames)
	assert.Equal(t, "John and Jane", info.SalutationName)
	assert.Equal(t, []string{"52 Ambleside Road", "Lightwater", "Surrey"}, info.Address.Lines)
	assert.Equal(t, "GU18 5UH", info.Address.Postcode)
}

func TestExtractRejectsEmptyContent(t *testing.T) {
	e := NewExtractor(zerolog.Nop())

	_, err := e.Extract("   \n ", classify.WayleaveAnnual)
	requireKind(t, err, KindValidation)
}

func TestExtractRejectsShortContent(t *testing.T) {
	e := NewExtractor(zerolog.Nop())

	_, err := e.Extract("too short", classify.WayleaveAnnual)
	requireKind(t, err, KindValidation)
}

func TestExtractRejectsWrongDialectMarkers(t *testing.T) {
	e := NewExtractor(zerolog.Nop())

	// Annual text validated as 15-year fails the marker check.
	_, err := e.Extract(strings.ReplaceAll(annualContent, "ELECTRICITY ACT 1989", "x"), classify.WayleaveAnnual)
	assert.NoError(t, err) // "Re: Electrical Equipment" still present

	_, err = e.Extract(annualContent, classify.WayleaveFifteenYear)
	requireKind(t, err, KindValidation)
}

func TestExtractAnnualMissingNamesAnchor(t *testing.T) {
	e := NewExtractor(zerolog.Nop())

	content := strings.ReplaceAll(annualContent, "I/We,", "We,")
	_, err := e.Extract(content, classify.WayleaveAnnual)
	requireKind(t, err, KindContent)

	var letterErr *Error
	require.ErrorAs(t, err, &letterErr)
	assert.Equal(t, "I/We,", letterErr.Pattern)
}

func TestExtractAnnualMissingPostcode(t *testing.T) {
	e := NewExtractor(zerolog.Nop())

	content := strings.ReplaceAll(annualContent, "GU18 5UH", "nowhere")
	_, err := e.Extract(content, classify.WayleaveAnnual)
	requireKind(t, err, KindContent)
}

func TestExtractFifteenYearMissingIntroAnchor(t *testing.T) {
	e := NewExtractor(zerolog.Nop())

	content := strings.ReplaceAll(fifteenYearContent, "(1)", "(x)")
	_, err := e.Extract(content, classify.WayleaveFifteenYear)
	requireKind(t, err, KindContent)
}

func TestExtractFifteenYearLooseFallback(t *testing.T) {
	e := NewExtractor(zerolog.Nop())

	// A comma before the postcode defeats the strict pattern; the
	// fallback recovers the tail segments from the trailing text.
	content := strings.ReplaceAll(fifteenYearContent,
		"Surrey GU18 5UH", "Surrey, GU18 5UH")
	info, err := e.Extract(content, classify.WayleaveFifteenYear)
	require.NoError(t, err)

	assert.Equal(t, "JOHN SMITH AND JANE DOE", info.FullNames)
	assert.Equal(t, []string{"52 Ambleside Road", "Lightwater", "Surrey"}, info.Address.Lines)
	assert.Equal(t, "GU18 5UH", info.Address.Postcode)
}

func TestExtractKeepsExtraPostcodes(t *testing.T) {
	e := NewExtractor(zerolog.Nop())

	content := strings.ReplaceAll(annualContent,
		"Surrey GU18 5UH being",
		"Surrey GU18 5UH also known as plot XY9 8ZZ being")
	info, err := e.Extract(content, classify.WayleaveAnnual)
	require.NoError(t, err)

	assert.Equal(t, "GU18 5UH", info.Address.Postcode)
	assert.Equal(t, []string{"XY9 8ZZ"}, info.Address.ExtraPostcodes)
}

func TestExtractUnknownDialect(t *testing.T) {
	e := NewExtractor(zerolog.Nop())

	_, err := e.Extract(annualContent, classify.WayleaveUnknown)
	requireKind(t, err, KindGeneration)
}

func TestCleanAddressLine(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  52 Ambleside\n Road ", "52 Ambleside Road"},
		{"Lightwater and Bagshot", "Lightwater Bagshot"},
		{"the land (edged red) at Oak Farm", "the land"},
		{"(registered)", "(registered)"},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := cleanAddressLine(tt.in); got != tt.want {
			t.Errorf("cleanAddressLine(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSalutationFromNames(t *testing.T) {
	tests := []struct {
		names string
		want  string
	}{
		{"JOHN SMITH", "John"},
		{"JOHN SMITH AND JANE DOE", "John and Jane"},
		{"JOHN SMITH & JANE DOE", "John and Jane"},
		{"A ONE AND B TWO AND C THREE", "A, B, and C"},
	}
	for _, tt := range tests {
		if got := salutationFromNames(tt.names); got != tt.want {
			t.Errorf("salutationFromNames(%q) = %q, want %q", tt.names, got, tt.want)
		}
	}
}

func requireKind(t *testing.T, err error, want ErrorKind) {
	t.Helper()
	require.Error(t, err)
	kind, ok := KindOf(err)
	require.True(t, ok, "expected a letter error, got %v", err)
	assert.Equal(t, want, kind)
}
