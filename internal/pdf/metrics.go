package pdf

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/rs/zerolog"
)

// edgeThreshold is the minimum grayscale gradient treated as an edge.
const edgeThreshold = 30.0

// MetricsAnalyzer computes map-likeness metrics for the images embedded
// in a PDF. Images that cannot be extracted or decoded are skipped.
type MetricsAnalyzer struct {
	logger zerolog.Logger
}

// NewMetricsAnalyzer creates a metrics analyzer.
func NewMetricsAnalyzer(logger zerolog.Logger) *MetricsAnalyzer {
	return &MetricsAnalyzer{logger: logger}
}

// ImageConfidences returns one confidence score per decodable embedded
// image. An empty slice with a nil error means no usable images.
func (a *MetricsAnalyzer) ImageConfidences(path string) ([]float64, error) {
	metrics, err := a.AnalyzeImages(path)
	if err != nil {
		return nil, err
	}

	confidences := make([]float64, 0, len(metrics))
	for _, m := range metrics {
		confidences = append(confidences, m.Confidence())
	}
	return confidences, nil
}

// AnalyzeImages extracts the embedded images and computes metrics for
// each one that decodes.
func (a *MetricsAnalyzer) AnalyzeImages(path string) ([]ImageMetrics, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	pageImages, err := api.ExtractImagesRaw(f, nil, model.NewDefaultConfiguration())
	if err != nil {
		return nil, err
	}

	var results []ImageMetrics
	for _, images := range pageImages {
		for objNr, img := range images {
			decoded, _, err := image.Decode(img)
			if err != nil {
				a.logger.Debug().
					Str("path", path).
					Int("object", objNr).
					Err(err).
					Msg("skipping undecodable embedded image")
				continue
			}
			results = append(results, computeMetrics(decoded))
		}
	}
	return results, nil
}

// computeMetrics derives the four map-likeness measurements from a
// decoded image. Small images are sampled in full; larger ones are
// stepped to keep the cost bounded.
func computeMetrics(img image.Image) ImageMetrics {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width < 2 || height < 2 {
		return ImageMetrics{}
	}

	step := 1
	if width*height > 1<<20 {
		step = 2
	}

	gray := make([][]float64, 0, height/step+1)
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		row := make([]float64, 0, width/step+1)
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			r, g, b, _ := img.At(x, y).RGBA()
			row = append(row, 0.299*float64(r>>8)+0.587*float64(g>>8)+0.114*float64(b>>8))
		}
		gray = append(gray, row)
	}

	return ImageMetrics{
		EdgeDensity:     edgeDensity(gray),
		ColorDiversity:  colorDiversity(img, step),
		LineContent:     lineContent(gray),
		IntensitySpread: intensitySpread(gray),
	}
}

// edgeDensity is the fraction of sampled pixels whose horizontal or
// vertical gradient exceeds the edge threshold.
func edgeDensity(gray [][]float64) float64 {
	rows := len(gray)
	if rows < 2 {
		return 0
	}
	cols := len(gray[0])
	if cols < 2 {
		return 0
	}

	edges, total := 0, 0
	for y := 0; y < rows-1; y++ {
		for x := 0; x < cols-1; x++ {
			dx := math.Abs(gray[y][x+1] - gray[y][x])
			dy := math.Abs(gray[y+1][x] - gray[y][x])
			if dx > edgeThreshold || dy > edgeThreshold {
				edges++
			}
			total++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(edges) / float64(total)
}

// colorDiversity counts distinct quantized colors relative to the 4096
// possible 4-bit-per-channel buckets.
func colorDiversity(img image.Image, step int) float64 {
	bounds := img.Bounds()
	seen := make(map[uint16]struct{})

	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			r, g, b, _ := img.At(x, y).RGBA()
			key := uint16(r>>12)<<8 | uint16(g>>12)<<4 | uint16(b>>12)
			seen[key] = struct{}{}
		}
	}

	return math.Min(float64(len(seen))/4096.0, 1.0)
}

// lineContent measures long straight edge runs, which maps and plans
// have far more of than photographs or text scans.
func lineContent(gray [][]float64) float64 {
	rows := len(gray)
	if rows < 2 {
		return 0
	}
	cols := len(gray[0])
	if cols < 2 {
		return 0
	}

	minRun := cols / 10
	if minRun < 8 {
		minRun = 8
	}

	longRuns, scanned := 0, 0
	for y := 0; y < rows-1; y++ {
		run := 0
		for x := 0; x < cols; x++ {
			if math.Abs(gray[y+1][x]-gray[y][x]) > edgeThreshold {
				run++
			} else {
				if run >= minRun {
					longRuns++
				}
				run = 0
			}
		}
		if run >= minRun {
			longRuns++
		}
		scanned++
	}

	if scanned == 0 {
		return 0
	}
	return math.Min(float64(longRuns)/float64(scanned), 1.0)
}

// intensitySpread is the grayscale standard deviation normalized so a
// full black-to-white spread approaches 1.
func intensitySpread(gray [][]float64) float64 {
	count := 0
	sum := 0.0
	for _, row := range gray {
		for _, v := range row {
			sum += v
			count++
		}
	}
	if count == 0 {
		return 0
	}
	mean := sum / float64(count)

	variance := 0.0
	for _, row := range gray {
		for _, v := range row {
			d := v - mean
			variance += d * d
		}
	}
	variance /= float64(count)

	return math.Min(math.Sqrt(variance)/128.0, 1.0)
}
