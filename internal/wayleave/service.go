// Package wayleave is the orchestration facade over scanning,
// classification, extraction and letter composition. Server surfaces
// and CLIs talk to the Service; the underlying packages stay free of
// transport concerns.
package wayleave

import (
	"context"
	"errors"
	"sort"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/darlands/wayleave-scanner/internal/classify"
	"github.com/darlands/wayleave-scanner/internal/letter"
	"github.com/darlands/wayleave-scanner/internal/pdf"
	"github.com/darlands/wayleave-scanner/internal/scan"
)

// ErrScanInFlight is returned when a scan is requested while another
// one is still running.
var ErrScanInFlight = errors.New("a directory scan is already in progress")

// Service wires the pipeline components together and enforces the
// one-scan-at-a-time rule.
type Service struct {
	reader     *pdf.Reader
	validator  *pdf.Validator
	metrics    *pdf.MetricsAnalyzer
	classifier *classify.Classifier
	scanner    *scan.Scanner
	extractor  *letter.Extractor
	composer   *letter.Composer
	logger     zerolog.Logger

	scanning atomic.Bool
}

// NewService creates a fully wired service.
func NewService(maxFileSize int64, logger zerolog.Logger) *Service {
	reader := pdf.NewReader(maxFileSize)
	metrics := pdf.NewMetricsAnalyzer(logger)
	classifier := classify.New(logger)

	providers := scan.Providers{
		Text:    reader,
		Metrics: metrics,
	}

	return &Service{
		reader:     reader,
		validator:  pdf.NewValidator(maxFileSize),
		metrics:    metrics,
		classifier: classifier,
		scanner:    scan.NewScanner(providers, classifier, logger),
		extractor:  letter.NewExtractor(logger),
		composer:   letter.NewComposer(logger),
		logger:     logger,
	}
}

// ClassificationResult is the outcome of classifying a single PDF.
type ClassificationResult struct {
	Path         string                `json:"path"`
	Type         classify.Type         `json:"-"`
	TypeName     string                `json:"type"`
	WayleaveType classify.WayleaveType `json:"-"`
	Dialect      string                `json:"dialect"`
	PageCount    int                   `json:"page_count"`
}

// ScanDirectory walks the root folder tree once. Only one scan may run
// at a time; concurrent calls fail with ErrScanInFlight. Entries come
// back sorted by relative path.
func (s *Service) ScanDirectory(ctx context.Context, root string) ([]scan.Entry, error) {
	if !s.scanning.CompareAndSwap(false, true) {
		return nil, ErrScanInFlight
	}
	defer s.scanning.Store(false)

	s.logger.Info().Str("root", root).Msg("starting directory scan")

	entries, err := s.scanner.Scan(ctx, root)
	if err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].RelativePath < entries[j].RelativePath
	})

	s.logger.Info().Int("folders", len(entries)).Msg("directory scan complete")
	return entries, nil
}

// ClassifyPDF classifies one PDF file and, when it is a document, its
// wayleave dialect.
func (s *Service) ClassifyPDF(path string) (*ClassificationResult, error) {
	sig := scan.Providers{Text: s.reader, Metrics: s.metrics}.Signals(path, s.logger)
	kind := s.classifier.Classify(sig)

	dialect := classify.WayleaveUnknown
	if kind == classify.TypeDocument {
		dialect = s.classifier.ClassifyWayleave(sig.Text)
	}

	return &ClassificationResult{
		Path:         path,
		Type:         kind,
		TypeName:     kind.String(),
		WayleaveType: dialect,
		Dialect:      dialect.String(),
		PageCount:    sig.PageCount,
	}, nil
}

// ExtractDocument reads a document PDF, resolves its dialect when the
// caller passes Unknown, and extracts names and address.
func (s *Service) ExtractDocument(path string, dialect classify.WayleaveType) (*letter.ExtractedInfo, classify.WayleaveType, error) {
	text, err := s.reader.ExtractText(path)
	if err != nil {
		return nil, classify.WayleaveUnknown, err
	}

	if dialect == classify.WayleaveUnknown {
		dialect = s.classifier.ClassifyWayleave(text)
	}

	info, err := s.extractor.Extract(text, dialect)
	if err != nil {
		var letterErr *letter.Error
		if errors.As(err, &letterErr) {
			return nil, dialect, letterErr.WithDocument(path)
		}
		return nil, dialect, err
	}
	return info, dialect, nil
}

// GenerateLetter extracts the document and composes the agreement
// letter for it.
func (s *Service) GenerateLetter(path string, dialect classify.WayleaveType, ov letter.Overrides) (*letter.Artifact, error) {
	info, resolved, err := s.ExtractDocument(path, dialect)
	if err != nil {
		return nil, err
	}

	pageCount, err := s.reader.PageCount(path)
	if err != nil {
		return nil, err
	}

	artifact, err := s.composer.Compose(info, resolved, pageCount, ov)
	if err != nil {
		var letterErr *letter.Error
		if errors.As(err, &letterErr) {
			return nil, letterErr.WithDocument(path)
		}
		return nil, err
	}
	return artifact, nil
}

// GenerateCompletionLetter extracts the document and composes the
// closing letter that accompanies the countersigned agreement.
func (s *Service) GenerateCompletionLetter(path string, dialect classify.WayleaveType, ov letter.Overrides) (*letter.Artifact, error) {
	info, _, err := s.ExtractDocument(path, dialect)
	if err != nil {
		return nil, err
	}

	artifact, err := s.composer.ComposeCompletion(info, ov)
	if err != nil {
		var letterErr *letter.Error
		if errors.As(err, &letterErr) {
			return nil, letterErr.WithDocument(path)
		}
		return nil, err
	}
	return artifact, nil
}

// ValidatePDF runs the structural validation checks on one file.
func (s *Service) ValidatePDF(path string) (*pdf.ValidationResult, error) {
	return s.validator.ValidateFile(path)
}

// MarkProcessed marks a folder as handled so future scans skip it.
func (s *Service) MarkProcessed(dir string) error {
	return scan.MarkProcessed(dir)
}
