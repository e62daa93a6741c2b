package classify

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func newTestClassifier() *Classifier {
	return New(zerolog.Nop())
}

func TestClassifyMultiPageAgreement(t *testing.T) {
	c := newTestClassifier()
	sig := Signals{
		Filename:  "Wayleave Consent Agreement.pdf",
		PageCount: 4,
		Text:      "This agreement grants consent for electricity equipment, signed hereby by the parties.",
	}

	if got := c.Classify(sig); got != TypeDocument {
		t.Errorf("Classify = %v, want document", got)
	}
}

func TestClassifySinglePageLayoutMap(t *testing.T) {
	c := newTestClassifier()
	sig := Signals{
		Filename:  "lv.1 - 52 Ambleside Road.pdf",
		PageCount: 1,
		Text:      "scale 1:500 grid reference",
	}

	if got := c.Classify(sig); got != TypeMap {
		t.Errorf("Classify = %v, want map", got)
	}
}

func TestClassifyNoiseIsUnknown(t *testing.T) {
	c := newTestClassifier()

	// A bare single-page PDF scores below the decision threshold.
	sig := Signals{Filename: "scan001.pdf", PageCount: 1}
	if got := c.Classify(sig); got != TypeUnknown {
		t.Errorf("Classify = %v, want unknown", got)
	}

	if got := c.Classify(Signals{Filename: "x.pdf"}); got != TypeUnknown {
		t.Errorf("Classify with no signals = %v, want unknown", got)
	}
}

func TestClassifyGeneratedLetter(t *testing.T) {
	c := newTestClassifier()
	sig := Signals{
		Filename:  "52 Ambleside Road, Lightwater, Surrey, GU18 5UH.pdf",
		PageCount: 1,
		Text:      "Dear John and Jane\n...\nYours sincerely,\nPaul Wakeford\nPartner\nDARLANDS",
	}

	if got := c.Classify(sig); got != TypeLetter {
		t.Errorf("Classify = %v, want letter", got)
	}
}

func TestClassifyLegalTextWithSincerelyIsNotLetter(t *testing.T) {
	c := newTestClassifier()
	sig := Signals{
		Filename:  "agreement.pdf",
		PageCount: 3,
		Text:      "The parties hereby consent to this wayleave agreement. Yours sincerely was not written by the company.",
	}

	if got := c.Classify(sig); got != TypeDocument {
		t.Errorf("Classify = %v, want document", got)
	}
}

func TestClassifyImageConfidenceBiasesMap(t *testing.T) {
	c := newTestClassifier()
	sig := Signals{
		Filename:         "site.pdf",
		PageCount:        1,
		Text:             "short caption",
		ImageConfidences: []float64{0.2, 0.7},
	}

	if got := c.Classify(sig); got != TypeMap {
		t.Errorf("Classify = %v, want map", got)
	}
}

func TestClassifyOCRTextContributes(t *testing.T) {
	c := newTestClassifier()
	sig := Signals{
		Filename:  "scan.pdf",
		PageCount: 1,
		OCRText:   []string{"scale 1:1250", "legend and grid markings"},
	}

	if got := c.Classify(sig); got != TypeMap {
		t.Errorf("Classify = %v, want map", got)
	}
}

func TestClassifyLongTextBiasesDocument(t *testing.T) {
	c := newTestClassifier()
	sig := Signals{
		Filename:  "scan.pdf",
		PageCount: 2,
		Text:      strings.Repeat("whereas the grantor retains possession of the land ", 70),
	}

	if got := c.Classify(sig); got != TypeDocument {
		t.Errorf("Classify = %v, want document", got)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	c := newTestClassifier()
	sig := Signals{
		Filename:         "lv.2 site plan.pdf",
		PageCount:        1,
		Text:             "scale legend",
		ImageConfidences: []float64{0.6},
	}

	first := c.Classify(sig)
	for i := 0; i < 10; i++ {
		if got := c.Classify(sig); got != first {
			t.Fatalf("Classify not deterministic: %v then %v", first, got)
		}
	}
}
