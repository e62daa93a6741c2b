package pdf

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Reader handles PDF text extraction and page counting.
type Reader struct {
	maxFileSize int64
	maxTextSize int
}

// NewReader creates a new PDF reader with the specified constraints.
func NewReader(maxFileSize int64) *Reader {
	return &Reader{
		maxFileSize: maxFileSize,
		maxTextSize: 10 * 1024 * 1024, // 10MB text limit
	}
}

// PageCount returns the number of pages in the PDF at path.
func (r *Reader) PageCount(path string) (int, error) {
	f, pdfReader, err := r.open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	return pdfReader.NumPage(), nil
}

// ExtractText extracts the plain text content of every page, joined
// with newlines. Pages that fail to decode are skipped.
func (r *Reader) ExtractText(path string) (string, error) {
	f, pdfReader, err := r.open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	return r.extractTextContent(pdfReader)
}

// Stat returns basic file information for a PDF after validating it.
func (r *Reader) Stat(path string) (*FileInfo, error) {
	fileInfo, err := r.statAndValidate(path)
	if err != nil {
		return nil, err
	}

	return &FileInfo{
		Path:         path,
		Name:         fileInfo.Name(),
		Size:         fileInfo.Size(),
		ModifiedTime: fileInfo.ModTime().Format("2006-01-02 15:04:05"),
	}, nil
}

// HasImages reports whether the PDF contains any image XObjects, along
// with the total image count across pages.
func (r *Reader) HasImages(path string) (bool, int, error) {
	f, pdfReader, err := r.open(path)
	if err != nil {
		return false, 0, err
	}
	defer f.Close()

	count := 0
	for pageNum := 1; pageNum <= pdfReader.NumPage(); pageNum++ {
		count += r.countImagesOnPage(pdfReader, pageNum)
	}
	return count > 0, count, nil
}

func (r *Reader) open(path string) (*os.File, *pdf.Reader, error) {
	if _, err := r.statAndValidate(path); err != nil {
		return nil, nil, err
	}

	f, pdfReader, err := pdf.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	return f, pdfReader, nil
}

func (r *Reader) statAndValidate(path string) (os.FileInfo, error) {
	if path == "" {
		return nil, fmt.Errorf("path cannot be empty")
	}

	fileInfo, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("file does not exist: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot access file: %w", err)
	}

	if fileInfo.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}

	if !strings.HasSuffix(strings.ToLower(path), ".pdf") {
		return nil, fmt.Errorf("file is not a PDF: %s", path)
	}

	if fileInfo.Size() > r.maxFileSize {
		return nil, fmt.Errorf("file too large: %d bytes (max: %d bytes)",
			fileInfo.Size(), r.maxFileSize)
	}

	return fileInfo, nil
}

func (r *Reader) extractTextContent(pdfReader *pdf.Reader) (string, error) {
	var builder strings.Builder
	totalLength := 0

	for pageNum := 1; pageNum <= pdfReader.NumPage(); pageNum++ {
		page := pdfReader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil {
			// Continue with other pages even if one fails
			continue
		}

		if totalLength+len(content) > r.maxTextSize {
			remaining := r.maxTextSize - totalLength
			if remaining > 0 {
				builder.WriteString(content[:remaining])
			}
			break
		}

		builder.WriteString(content)
		totalLength += len(content)

		if pageNum < pdfReader.NumPage() {
			builder.WriteString("\n")
		}
	}

	return builder.String(), nil
}

// countImagesOnPage counts image XObjects on a specific page.
func (r *Reader) countImagesOnPage(pdfReader *pdf.Reader, pageNum int) (count int) {
	defer func() {
		// Malformed resource dictionaries can panic inside the parser.
		if recover() != nil {
			count = 0
		}
	}()

	page := pdfReader.Page(pageNum)
	if page.V.IsNull() {
		return 0
	}

	resources := page.V.Key("Resources")
	if resources.IsNull() {
		return 0
	}

	xObjects := resources.Key("XObject")
	if xObjects.IsNull() || xObjects.Kind() != pdf.Dict {
		return 0
	}

	for _, key := range xObjects.Keys() {
		obj := xObjects.Key(key)
		if obj.IsNull() {
			continue
		}
		if obj.Key("Subtype").Name() == "Image" {
			count++
		}
	}
	return count
}
