// Package patterns holds the shared regular expressions and keyword
// tables used by PDF classification and wayleave document extraction.
// Every other package matches text through these definitions so the
// postcode shape, dialect phrases and vocabulary tables stay consistent.
package patterns

import (
	"regexp"
	"strings"
)

// ProcessedMarker is the sentinel file written into a folder once the
// scanner has handled it. Its mere existence is the entire contract.
const ProcessedMarker = ".processed"

// Postcode matches a UK postcode shape anywhere in text:
// 1-2 letters, 1 digit, optional letter/digit, optional space, 1 digit, 2 letters.
var Postcode = regexp.MustCompile(`(?i)[A-Z]{1,2}\d[A-Z\d]?\s*\d[A-Z]{2}`)

// PostcodeExact matches a full string that is exactly one postcode.
var PostcodeExact = regexp.MustCompile(`(?i)^[A-Z]{1,2}\d[A-Z\d]?\s*\d[A-Z]{2}$`)

// AnnualNames captures the homeowner names following the "I/We," anchor
// of an annual wayleave agreement, up to the end of the line.
var AnnualNames = regexp.MustCompile(`I/We,\s+([^\n]+)`)

// AnnualAddress captures the address span between the literal "of" and
// the literal "being" (or end of text) in an annual agreement.
var AnnualAddress = regexp.MustCompile(`(?s)\bof\s+(.*?)(?:\bbeing\b|$)`)

// FifteenYearStrict matches the well-formed 15-year intro in one shot:
// "(1) <names> of <house>, <city>[, <county>] <postcode>".
var FifteenYearStrict = regexp.MustCompile(
	`(?s)\(1\)\s*(.*?)\s+of\s+([^,]+),\s*([^,]+?)(?:,\s*([^,]+?))?\s+((?i:[A-Z]{1,2}\d[A-Z\d]?\s*\d[A-Z]{2}))`)

// FifteenYearIntro is the looser fallback: it captures
// "(1) <names> of <address-start>" with the address fragment running up
// to the first comma or closing parenthesis; the rest of the address is
// recovered from the trailing text.
var FifteenYearIntro = regexp.MustCompile(`(?s)\(1\)\s*(.*?)\s+of\s*([^,)]+)`)

// NameSeparator splits a formal names string on " AND " / " & ".
var NameSeparator = regexp.MustCompile(`(?i)\s+(?:and|&)\s+`)

// WhitespaceRun collapses any run of whitespace (including newlines).
var WhitespaceRun = regexp.MustCompile(`\s+`)

// IllegalFilenameChars are stripped by the filename sanitizer.
var IllegalFilenameChars = regexp.MustCompile(`[<>:"/\\|?*]`)

// Filename tokens biasing classification. Matching is case-insensitive
// substring matching over the base filename.
var (
	MapFilenameTokens      = []string{"lv.", "layout", "map", "plan"}
	DocumentFilenameTokens = []string{"consent", "agreement", "contract", "wayleave"}
)

// Keyword vocabularies for content-based classification. Each keyword
// present in the text counts one point for its side.
var (
	MapKeywords = []string{
		"map", "scale", "legend", "coordinates", "location",
		"projection", "latitude", "longitude", "grid", "terrain", "contour",
	}
	DocumentKeywords = []string{
		"consent", "agreement", "signature", "hereby", "parties",
		"wayleave", "electricity", "undersigned", "covenant",
	}
)

// Letter boilerplate markers. A PDF whose text carries a signature
// marker together with a company marker is a previously generated
// letter, not scanner input.
var (
	LetterSignatureMarkers = []string{"Yours sincerely"}
	LetterCompanyMarkers   = []string{"DARLANDS", "darlands.co.uk", "Paul Wakeford"}
)

// Dialect indicator phrases. Occurrence counts decide between the
// annual and 15-year wayleave document dialects.
var (
	AnnualPhrases = []string{
		"SCHEDULE OF PAYMENTS",
		"£ per annum",
		"Back Pay",
		"The Company shall pay to me/us during the existence of the works",
	}
	FifteenYearPhrases = []string{
		"means a term commencing on the date hereof",
		"the Term",
		"the Wayleave Payment",
		"15 years",
		"following the expiry of 15 years",
	}
)

// Distinctive phrases that override the count comparison.
const (
	AnnualOverridePhrase      = "£ per annum"
	FifteenYearOverridePhrase = `"the Term" means`
)

// Validation markers checked before extraction is attempted.
var (
	AnnualValidationMarkers      = []string{"ELECTRICITY ACT 1989", "Re: Electrical Equipment"}
	FifteenYearValidationMarkers = []string{"This Agreement", "AGREED TERMS"}
)

// generatedOutputNames are artifacts this tool writes back into scanned
// folders. The scanner must never treat its own output as input.
var generatedOutputNames = []string{
	"print.pdf",
	"print 2.pdf",
	"wayleave and cheque enclosed - good printer.pdf",
	"wayleave and cheque enclosed - good printer.docx",
}

// IsGeneratedOutput reports whether a base filename is one of the
// artifacts produced by letter generation or print merging.
func IsGeneratedOutput(name string) bool {
	lower := strings.ToLower(name)
	for _, generated := range generatedOutputNames {
		if lower == generated {
			return true
		}
	}
	return false
}

// ContainsAny reports whether text contains at least one of the markers.
func ContainsAny(text string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}

// CountPresent returns how many of the given phrases occur in text.
func CountPresent(text string, phrases []string) int {
	count := 0
	for _, p := range phrases {
		if strings.Contains(text, p) {
			count++
		}
	}
	return count
}
