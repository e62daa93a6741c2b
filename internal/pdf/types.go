// Package pdf implements the PDF provider boundary: text extraction,
// page counting, validation, and optional image metrics. Callers treat
// a provider failure the same as "no text"; nothing in this package
// panics past its boundary.
package pdf

// FileInfo describes a PDF file found on disk.
type FileInfo struct {
	Path         string `json:"path"`
	Name         string `json:"name"`
	Size         int64  `json:"size"`
	ModifiedTime string `json:"modified_time"`
}

// ImageMetrics are the four normalized [0,1] map-likeness measurements
// computed for one embedded image.
type ImageMetrics struct {
	EdgeDensity     float64 `json:"edge_density"`
	ColorDiversity  float64 `json:"color_diversity"`
	LineContent     float64 `json:"line_content"`
	IntensitySpread float64 `json:"intensity_spread"`
}

// Confidence averages the four metrics into a single score.
func (m ImageMetrics) Confidence() float64 {
	return (m.EdgeDensity + m.ColorDiversity + m.LineContent + m.IntensitySpread) / 4
}
