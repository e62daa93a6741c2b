package letter

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/darlands/wayleave-scanner/internal/classify"
	"github.com/darlands/wayleave-scanner/internal/patterns"
)

// minValidContentLength is the shortest trimmed text that can plausibly
// be a wayleave agreement.
const minValidContentLength = 50

// maxAddressLines caps the free-form address lines kept per record.
const maxAddressLines = 6

// Extractor pulls homeowner names and addresses out of wayleave
// agreement text.
type Extractor struct {
	logger zerolog.Logger
}

// NewExtractor creates an extractor.
func NewExtractor(logger zerolog.Logger) *Extractor {
	return &Extractor{logger: logger}
}

// Extract parses the document text according to its dialect.
func (e *Extractor) Extract(content string, dialect classify.WayleaveType) (*ExtractedInfo, error) {
	if err := validateContent(content, dialect); err != nil {
		return nil, err
	}

	switch dialect {
	case classify.WayleaveAnnual:
		return e.extractAnnual(content)
	case classify.WayleaveFifteenYear:
		return e.extractFifteenYear(content)
	default:
		return nil, GenerationError("unsupported wayleave dialect: %s", dialect)
	}
}

// validateContent rejects text that cannot be a wayleave agreement of
// the given dialect before any pattern matching is attempted.
func validateContent(content string, dialect classify.WayleaveType) error {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return ValidationError("document content is empty")
	}
	if len(trimmed) < minValidContentLength {
		return ValidationError("document content is too short to be valid")
	}

	switch dialect {
	case classify.WayleaveAnnual:
		if !patterns.ContainsAny(content, patterns.AnnualValidationMarkers) {
			return ValidationError("content does not appear to be a valid annual wayleave document")
		}
	case classify.WayleaveFifteenYear:
		if !patterns.ContainsAny(content, patterns.FifteenYearValidationMarkers) {
			return ValidationError("content does not appear to be a valid 15-year wayleave document")
		}
	}
	return nil
}

func (e *Extractor) extractAnnual(content string) (*ExtractedInfo, error) {
	nameMatch := patterns.AnnualNames.FindStringSubmatch(content)
	if nameMatch == nil {
		return nil, ContentError("I/We,", "could not find names in document")
	}
	names := strings.TrimSpace(nameMatch[1])

	addressMatch := patterns.AnnualAddress.FindStringSubmatch(content)
	if addressMatch == nil {
		return nil, ContentError("of ... being", "could not find address starting with 'of'")
	}
	span := strings.TrimSpace(addressMatch[1])

	address, err := e.splitAtPostcode(span, nil)
	if err != nil {
		return nil, err
	}

	return &ExtractedInfo{
		FullNames:      names,
		SalutationName: salutationFromNames(names),
		Address:        *address,
	}, nil
}

func (e *Extractor) extractFifteenYear(content string) (*ExtractedInfo, error) {
	// The strict pattern covers the well-formed intro with the postcode
	// directly after the last segment; anything else goes through the
	// looser fragment-plus-tail recovery.
	if m := patterns.FifteenYearStrict.FindStringSubmatchIndex(content); m != nil {
		names := patterns.WhitespaceRun.ReplaceAllString(strings.TrimSpace(content[m[2]:m[3]]), " ")
		span := content[m[4]:m[11]]

		address, err := e.splitAtPostcode(span, nil)
		if err != nil {
			return nil, err
		}
		return &ExtractedInfo{
			FullNames:      names,
			SalutationName: salutationFromNames(names),
			Address:        *address,
		}, nil
	}

	match := patterns.FifteenYearIntro.FindStringSubmatchIndex(content)
	if match == nil {
		return nil, ContentError("(1)", "could not find names and address in 15-year document")
	}

	names := strings.TrimSpace(content[match[2]:match[3]])
	initial := cleanAddressLine(content[match[4]:match[5]])
	tail := strings.TrimSpace(content[match[1]:])

	address, err := e.splitAtPostcode(tail, []string{initial})
	if err != nil {
		return nil, err
	}

	return &ExtractedInfo{
		FullNames:      names,
		SalutationName: salutationFromNames(names),
		Address:        *address,
	}, nil
}

// splitAtPostcode locates the postcode inside span and turns everything
// before it into cleaned address lines, prepended with any lines the
// caller already extracted. The first postcode found is authoritative;
// later ones are logged and kept as extras.
func (e *Extractor) splitAtPostcode(span string, leading []string) (*AddressRecord, error) {
	locs := patterns.Postcode.FindAllStringIndex(span, -1)
	if len(locs) == 0 {
		return nil, ContentError("postcode", "could not find valid postcode in address")
	}

	postcode := NormalizePostcode(span[locs[0][0]:locs[0][1]])
	var extras []string
	for _, loc := range locs[1:] {
		extras = append(extras, NormalizePostcode(span[loc[0]:loc[1]]))
	}
	if len(extras) > 0 {
		e.logger.Warn().
			Str("postcode", postcode).
			Strs("extra_postcodes", extras).
			Msg("multiple postcodes in address span, using the first")
	}

	prefix := strings.TrimSpace(span[:locs[0][0]])
	prefix = strings.TrimSuffix(prefix, ",")

	lines := make([]string, 0, maxAddressLines)
	for _, line := range leading {
		if line != "" && len(lines) < maxAddressLines {
			lines = append(lines, line)
		}
	}
	for _, part := range strings.Split(prefix, ",") {
		cleaned := cleanAddressLine(part)
		if cleaned != "" && len(lines) < maxAddressLines {
			lines = append(lines, cleaned)
		}
	}

	return &AddressRecord{
		Lines:          lines,
		Postcode:       postcode,
		ExtraPostcodes: extras,
	}, nil
}

// cleanAddressLine collapses whitespace, drops "and" connectors, and
// cuts the line at the first token containing an opening parenthesis.
func cleanAddressLine(line string) string {
	line = patterns.WhitespaceRun.ReplaceAllString(line, " ")
	line = strings.ReplaceAll(line, " and ", " ")
	line = strings.ReplaceAll(line, " AND ", " ")
	line = strings.TrimSpace(line)
	if line == "" {
		return ""
	}

	if strings.Contains(line, "(") {
		parts := strings.Fields(line)
		var kept []string
		for _, part := range parts {
			if strings.Contains(part, "(") {
				break
			}
			kept = append(kept, part)
		}
		if len(kept) == 0 {
			return parts[0]
		}
		return strings.Join(kept, " ")
	}
	return line
}

// salutationFromNames derives the title-cased first-name greeting from
// a raw names string.
func salutationFromNames(fullNames string) string {
	var firsts []string
	for _, name := range patterns.NameSeparator.Split(fullNames, -1) {
		fields := strings.Fields(name)
		if len(fields) == 0 {
			continue
		}
		firsts = append(firsts, TitleCaseName(fields[0]))
	}
	return joinSalutation(firsts)
}

// joinSalutation renders first names as "A", "A and B", or
// "A, B, and C" for three or more.
func joinSalutation(firsts []string) string {
	switch len(firsts) {
	case 0:
		return ""
	case 1:
		return firsts[0]
	case 2:
		return firsts[0] + " and " + firsts[1]
	default:
		return strings.Join(firsts[:len(firsts)-1], ", ") + ", and " + firsts[len(firsts)-1]
	}
}
