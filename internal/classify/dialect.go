package classify

import (
	"strings"

	"github.com/darlands/wayleave-scanner/internal/patterns"
)

// ClassifyWayleave identifies the dialect of a wayleave agreement from
// its text. The side with strictly more indicator phrases wins; a
// distinctive payment or term-definition phrase overrides the count
// comparison. Equal or no matches yield WayleaveUnknown.
func (c *Classifier) ClassifyWayleave(text string) WayleaveType {
	annualMatches := patterns.CountPresent(text, patterns.AnnualPhrases)
	fifteenYearMatches := patterns.CountPresent(text, patterns.FifteenYearPhrases)

	hasPerAnnumPayment := strings.Contains(text, patterns.AnnualOverridePhrase)
	hasTermDefinition := strings.Contains(text, patterns.FifteenYearOverridePhrase)

	var result WayleaveType
	switch {
	case annualMatches > fifteenYearMatches || hasPerAnnumPayment:
		result = WayleaveAnnual
	case fifteenYearMatches > annualMatches || hasTermDefinition:
		result = WayleaveFifteenYear
	default:
		result = WayleaveUnknown
	}

	c.logger.Debug().
		Int("annual_matches", annualMatches).
		Int("fifteen_year_matches", fifteenYearMatches).
		Stringer("result", result).
		Msg("classified wayleave dialect")
	return result
}
