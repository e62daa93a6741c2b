// Package scan walks a root folder of wayleave paperwork, classifies
// the PDFs in each subfolder, and pairs the agreement document with its
// map. Folders already handled are remembered through a marker file;
// repeat scans still classify their PDFs and just report the folder as
// processed.
package scan

import (
	"github.com/darlands/wayleave-scanner/internal/classify"
)

// PDFPair groups the PDFs found in one folder by role. Assignment is
// greedy: the first map-classified file and the first
// document-classified file win their slots, everything else lands in
// AdditionalPDFs.
type PDFPair struct {
	DocumentPDF    string                `json:"document_pdf,omitempty"`
	MapPDF         string                `json:"map_pdf,omitempty"`
	AdditionalPDFs []string              `json:"additional_pdfs,omitempty"`
	WayleaveType   classify.WayleaveType `json:"wayleave_type"`
}

// Complete reports whether both the document and map slots are filled.
func (p PDFPair) Complete() bool {
	return p.DocumentPDF != "" && p.MapPDF != ""
}

// Entry is one folder's scan outcome.
type Entry struct {
	// RelativePath locates the folder under the scan root.
	RelativePath string  `json:"relative_path"`
	PDFs         PDFPair `json:"pdfs"`
	// Processed is true when the folder carries the processed marker
	// from a previous run. Advisory only; PDFs holds the current
	// classification either way.
	Processed bool `json:"processed"`
}

// TextProvider supplies page counts and extracted text.
type TextProvider interface {
	PageCount(path string) (int, error)
	ExtractText(path string) (string, error)
}

// MetricsProvider supplies per-image map-likeness confidences.
type MetricsProvider interface {
	ImageConfidences(path string) ([]float64, error)
}

// OCRProvider supplies recognized text for embedded images. Optional;
// a nil provider simply removes the OCR signal.
type OCRProvider interface {
	OCRText(path string) ([]string, error)
}
