package letter

import (
	"strings"

	"github.com/darlands/wayleave-scanner/internal/patterns"
)

// TitleCaseName lowercases a name and capitalizes the first letter of
// each space- or hyphen-separated part, so "SMITH-JONES" becomes
// "Smith-Jones".
func TitleCaseName(name string) string {
	var b strings.Builder
	capitalize := true
	for _, r := range strings.ToLower(name) {
		if capitalize && r != ' ' && r != '-' {
			b.WriteRune(toUpperRune(r))
			capitalize = false
			continue
		}
		if r == ' ' || r == '-' {
			capitalize = true
		}
		b.WriteRune(r)
	}
	return b.String()
}

func toUpperRune(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}

// FormatNames renders a raw names string into the letter header form
// ("John Smith & Jane Doe") and the salutation. A non-empty
// overrideSalutation is used verbatim instead of the derived greeting.
func FormatNames(fullNames, overrideSalutation string) (header, salutation string, err error) {
	if strings.TrimSpace(fullNames) == "" {
		return "", "", FormattingError("names string is empty")
	}

	var names []string
	for _, name := range patterns.NameSeparator.Split(fullNames, -1) {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		names = append(names, TitleCaseName(name))
	}
	if len(names) == 0 {
		return "", "", FormattingError("no valid names found")
	}

	header = strings.Join(names, " & ")

	if overrideSalutation != "" {
		return header, overrideSalutation, nil
	}

	var firsts []string
	for _, name := range names {
		fields := strings.Fields(name)
		if len(fields) > 0 {
			firsts = append(firsts, fields[0])
		}
	}
	return header, joinSalutation(firsts), nil
}

// FormatAddress renders an address record as the letter address block:
// one line per component, postcode last. Lines holding internal commas
// are split into their components.
func FormatAddress(addr AddressRecord) (string, error) {
	if !ValidatePostcode(addr.Postcode) {
		return "", FormattingError("invalid postcode: %q", addr.Postcode)
	}

	var parts []string
	for _, line := range addr.Lines {
		for _, piece := range strings.Split(line, ",") {
			piece = strings.TrimSpace(piece)
			if piece != "" {
				parts = append(parts, piece)
			}
		}
	}
	parts = append(parts, NormalizePostcode(addr.Postcode))
	return strings.Join(parts, "\n"), nil
}

// GenerateFilename derives the output PDF filename from the address:
// sanitized components joined with ", " plus the .pdf suffix.
func GenerateFilename(addr AddressRecord) string {
	var parts []string
	for _, line := range addr.Lines {
		if s := sanitizeComponent(line); s != "" {
			parts = append(parts, s)
		}
	}
	if s := sanitizeComponent(addr.Postcode); s != "" {
		parts = append(parts, s)
	}
	return strings.Join(parts, ", ") + ".pdf"
}

// sanitizeComponent collapses whitespace runs and strips characters
// that are illegal in filenames.
func sanitizeComponent(component string) string {
	component = patterns.WhitespaceRun.ReplaceAllString(strings.TrimSpace(component), " ")
	return patterns.IllegalFilenameChars.ReplaceAllString(component, "")
}

// ValidatePostcode reports whether s is exactly one UK postcode shape.
func ValidatePostcode(s string) bool {
	return patterns.PostcodeExact.MatchString(strings.TrimSpace(s))
}

// NormalizePostcode upper-cases and trims a postcode.
func NormalizePostcode(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
