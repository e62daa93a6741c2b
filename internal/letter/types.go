// Package letter turns wayleave agreement text into homeowner letters:
// it extracts names and addresses from the two document dialects,
// formats them, and composes the final letter body together with its
// suggested output filename.
package letter

// AddressRecord is an extracted postal address: up to six free-form
// lines plus the postcode. ExtraPostcodes keeps any further postcode
// shapes found in the same span; the first one is authoritative.
type AddressRecord struct {
	Lines          []string `json:"lines"`
	Postcode       string   `json:"postcode"`
	ExtraPostcodes []string `json:"extra_postcodes,omitempty"`
}

// LegacyAddress is the structured house/city/county form accepted from
// callers that assemble addresses by hand rather than by extraction.
type LegacyAddress struct {
	House    string `json:"house"`
	City     string `json:"city"`
	County   string `json:"county"`
	Postcode string `json:"postcode"`
}

// Record converts the structured form into an AddressRecord, dropping
// empty components.
func (l LegacyAddress) Record() AddressRecord {
	var lines []string
	for _, part := range []string{l.House, l.City, l.County} {
		if part != "" {
			lines = append(lines, part)
		}
	}
	return AddressRecord{Lines: lines, Postcode: l.Postcode}
}

// ExtractedInfo is the result of extracting a wayleave document.
type ExtractedInfo struct {
	// FullNames is the raw homeowner names string as it appears in the
	// document, e.g. "JOHN SMITH AND JANE DOE".
	FullNames string `json:"full_names"`
	// SalutationName is the title-cased first names joined for the
	// greeting, e.g. "John and Jane".
	SalutationName string `json:"salutation_name"`
	// Address is the extracted postal address.
	Address AddressRecord `json:"address"`
}

// Artifact is a composed letter plus the filename it should be saved
// under.
type Artifact struct {
	Content           string `json:"content"`
	SuggestedFilename string `json:"suggested_filename"`
}
