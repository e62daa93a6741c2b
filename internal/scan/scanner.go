package scan

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/darlands/wayleave-scanner/internal/classify"
	"github.com/darlands/wayleave-scanner/internal/patterns"
)

// Providers bundles the optional signal collaborators. Any of them may
// be nil; a nil provider just leaves its signal empty.
type Providers struct {
	Text    TextProvider
	Metrics MetricsProvider
	OCR     OCRProvider
}

// Signals gathers every available classification signal for one PDF.
// Provider failures are treated as absent signals, never as scan
// failures.
func (p Providers) Signals(path string, logger zerolog.Logger) classify.Signals {
	sig := classify.Signals{
		Filename: filepath.Base(path),
	}

	if p.Text != nil {
		if count, err := p.Text.PageCount(path); err == nil {
			sig.PageCount = count
		} else {
			logger.Debug().Str("path", path).Err(err).Msg("page count unavailable")
		}
		if text, err := p.Text.ExtractText(path); err == nil {
			sig.Text = text
		} else {
			logger.Debug().Str("path", path).Err(err).Msg("text extraction failed")
		}
	}

	if p.Metrics != nil {
		if confidences, err := p.Metrics.ImageConfidences(path); err == nil {
			sig.ImageConfidences = confidences
		} else {
			logger.Debug().Str("path", path).Err(err).Msg("image metrics unavailable")
		}
	}

	if p.OCR != nil {
		if ocr, err := p.OCR.OCRText(path); err == nil {
			sig.OCRText = ocr
		} else {
			logger.Debug().Str("path", path).Err(err).Msg("ocr unavailable")
		}
	}

	return sig
}

// Scanner walks a directory tree and produces one Entry per folder that
// holds wayleave paperwork.
type Scanner struct {
	providers  Providers
	classifier *classify.Classifier
	logger     zerolog.Logger
}

// NewScanner creates a scanner around the given collaborators.
func NewScanner(providers Providers, classifier *classify.Classifier, logger zerolog.Logger) *Scanner {
	return &Scanner{
		providers:  providers,
		classifier: classifier,
		logger:     logger,
	}
}

// Scan walks root depth-first and returns an entry for every folder
// that yields at least one PDF or already carries the processed
// marker. Per-folder errors are logged and skipped; only an unusable
// root or context cancellation fails the scan.
func (s *Scanner) Scan(ctx context.Context, root string) ([]Entry, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("cannot access scan root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scan root is not a directory: %s", root)
	}

	var entries []Entry
	if err := s.scanDir(ctx, root, root, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// MarkProcessed drops the zero-byte marker into dir. Calling it on an
// already marked folder is a no-op.
func MarkProcessed(dir string) error {
	marker := filepath.Join(dir, patterns.ProcessedMarker)
	if _, err := os.Stat(marker); err == nil {
		return nil
	}
	f, err := os.OpenFile(marker, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("cannot write processed marker: %w", err)
	}
	return f.Close()
}

// IsProcessed reports whether dir carries the processed marker.
func IsProcessed(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, patterns.ProcessedMarker))
	return err == nil
}

func (s *Scanner) scanDir(ctx context.Context, root, dir string, out *[]Entry) error {
	// Cancellation is honored at folder boundaries only.
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	children, err := os.ReadDir(dir)
	if err != nil {
		s.logger.Warn().Str("dir", dir).Err(err).Msg("skipping unreadable folder")
		return nil
	}

	// The marker is advisory: it never blocks re-classification, it
	// only reports the folder as handled and keeps folders whose PDFs
	// have since vanished in the results.
	processed := IsProcessed(dir)
	if processed {
		s.logger.Debug().Str("dir", dir).Msg("rescanning processed folder")
	}

	pair, found := s.collectPDFs(dir, children)

	if found || processed {
		rel, relErr := filepath.Rel(root, dir)
		if relErr != nil {
			rel = dir
		}
		*out = append(*out, Entry{
			RelativePath: rel,
			PDFs:         pair,
			Processed:    processed,
		})

		if found {
			if err := MarkProcessed(dir); err != nil {
				s.logger.Warn().Str("dir", dir).Err(err).Msg("could not mark folder processed")
			}
		}
	}

	for _, child := range children {
		if !child.IsDir() {
			continue
		}
		if err := s.scanDir(ctx, root, filepath.Join(dir, child.Name()), out); err != nil {
			return err
		}
	}
	return nil
}

// collectPDFs classifies the PDFs directly inside dir and assigns them
// to pair slots greedily in sorted filename order.
func (s *Scanner) collectPDFs(dir string, children []os.DirEntry) (PDFPair, bool) {
	var names []string
	for _, child := range children {
		if child.IsDir() {
			continue
		}
		name := child.Name()
		if !strings.EqualFold(filepath.Ext(name), ".pdf") {
			continue
		}
		if patterns.IsGeneratedOutput(name) {
			s.logger.Debug().Str("file", name).Msg("ignoring generated output")
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	var pair PDFPair
	for _, name := range names {
		path := filepath.Join(dir, name)
		sig := s.providers.Signals(path, s.logger)
		kind := s.classifier.Classify(sig)

		switch {
		case kind == classify.TypeMap && pair.MapPDF == "":
			pair.MapPDF = path
		case kind == classify.TypeDocument && pair.DocumentPDF == "":
			pair.DocumentPDF = path
			pair.WayleaveType = s.classifier.ClassifyWayleave(sig.Text)
		default:
			pair.AdditionalPDFs = append(pair.AdditionalPDFs, path)
		}

		s.logger.Debug().
			Str("file", name).
			Stringer("type", kind).
			Msg("assigned pdf")
	}

	return pair, len(names) > 0
}
