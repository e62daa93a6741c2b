// Package classify decides what kind of PDF a file is (legal document,
// site map, previously generated letter, or unknown) and which wayleave
// dialect a document's text belongs to. Classification is a pure
// scoring function over an explicit signal struct; the same signals
// always produce the same result.
package classify

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/darlands/wayleave-scanner/internal/patterns"
)

// Type is the classification of a single PDF.
type Type int

const (
	TypeUnknown Type = iota
	TypeDocument
	TypeMap
	TypeLetter
)

// String returns the lower-case name of the classification.
func (t Type) String() string {
	switch t {
	case TypeDocument:
		return "document"
	case TypeMap:
		return "map"
	case TypeLetter:
		return "letter"
	default:
		return "unknown"
	}
}

// WayleaveType is the dialect of a wayleave agreement document.
type WayleaveType int

const (
	WayleaveUnknown WayleaveType = iota
	WayleaveAnnual
	WayleaveFifteenYear
)

// String returns the dialect name used throughout letters and logs.
func (w WayleaveType) String() string {
	switch w {
	case WayleaveAnnual:
		return "annual"
	case WayleaveFifteenYear:
		return "15-year"
	default:
		return "unknown"
	}
}

// Classifier scores classification signals. It carries no mutable
// state beyond its logger, so a single instance is safe for concurrent
// use across folders.
type Classifier struct {
	logger zerolog.Logger
}

// New creates a classifier that logs scoring decisions to the given logger.
func New(logger zerolog.Logger) *Classifier {
	return &Classifier{logger: logger}
}

// Classify combines the layered signals into a single decision.
// Letter boilerplate is checked first: a previously generated letter is
// neither document nor map for folder-pairing purposes.
func (c *Classifier) Classify(sig Signals) Type {
	if isGeneratedLetter(sig.Text) {
		return TypeLetter
	}

	var mapScore, docScore int

	filename := strings.ToLower(sig.Filename)
	for _, token := range patterns.MapFilenameTokens {
		if strings.Contains(filename, token) {
			mapScore += filenameTokenWeight
		}
	}
	for _, token := range patterns.DocumentFilenameTokens {
		if strings.Contains(filename, token) {
			docScore += filenameTokenWeight
		}
	}

	switch {
	case sig.PageCount == 1:
		mapScore += pageCountWeight
	case sig.PageCount > 1:
		docScore += pageCountWeight
	}

	text := strings.ToLower(sig.Text)
	mapScore += keywordWeight * patterns.CountPresent(text, patterns.MapKeywords)
	docScore += keywordWeight * patterns.CountPresent(text, patterns.DocumentKeywords)

	maxImageConfidence := 0.0
	for _, conf := range sig.ImageConfidences {
		if conf > maxImageConfidence {
			maxImageConfidence = conf
		}
	}
	if maxImageConfidence >= imageConfidenceFloor {
		mapScore += imageMapBonus
	}

	for _, ocr := range sig.OCRText {
		lower := strings.ToLower(ocr)
		mapScore += keywordWeight * patterns.CountPresent(lower, patterns.MapKeywords)
		docScore += keywordWeight * patterns.CountPresent(lower, patterns.DocumentKeywords)
	}

	words := len(strings.Fields(sig.Text))
	if words > longDocumentWords {
		docScore += longDocumentBonus
	}
	if words < shortTextWords && maxImageConfidence >= imageConfidenceFloor {
		mapScore += shortTextMapBonus
	}

	result := decide(docScore, mapScore)
	c.logger.Debug().
		Str("filename", sig.Filename).
		Int("pages", sig.PageCount).
		Int("document_score", docScore).
		Int("map_score", mapScore).
		Stringer("result", result).
		Msg("classified pdf")
	return result
}

// decide picks the strictly higher side, subject to the minimum score
// threshold that prevents classifying on noise.
func decide(docScore, mapScore int) Type {
	switch {
	case docScore > mapScore && docScore >= minDecisiveScore:
		return TypeDocument
	case mapScore > docScore && mapScore >= minDecisiveScore:
		return TypeMap
	default:
		return TypeUnknown
	}
}

// isGeneratedLetter reports whether text carries the boilerplate of a
// letter this tool produced earlier: a signature marker plus a company
// marker. A bare "Yours sincerely" in a legal exhibit is not enough.
func isGeneratedLetter(text string) bool {
	return patterns.ContainsAny(text, patterns.LetterSignatureMarkers) &&
		patterns.ContainsAny(text, patterns.LetterCompanyMarkers)
}
