package classify

// Signals is the full, enumerated input to a classification decision.
// Every field is advisory; absent collaborators leave the optional
// fields at their zero values and the classifier degrades to the
// signals it has.
type Signals struct {
	// Filename is the base name of the PDF, used for token matching.
	Filename string
	// PageCount is the number of pages, or 0 when unknown.
	PageCount int
	// Text is the extracted text content; empty when the provider failed.
	Text string
	// OCRText holds per-image OCR output when an OCR collaborator is
	// available.
	OCRText []string
	// ImageConfidences holds one map-likeness confidence in [0,1] per
	// embedded image when an image-metrics collaborator is available.
	ImageConfidences []float64
}

// Scoring weights. Each signal contributes a fixed amount to the map or
// document side; the decision requires a strictly higher side that also
// clears minDecisiveScore.
const (
	filenameTokenWeight  = 2
	pageCountWeight      = 2
	keywordWeight        = 1
	imageMapBonus        = 3
	longDocumentBonus    = 2
	shortTextMapBonus    = 2
	minDecisiveScore     = 3
	imageConfidenceFloor = 0.5
	longDocumentWords    = 300
	shortTextWords       = 100
)
