package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rovshanmuradov/inbeef/internal/simulation"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// ExportFormat represents the export file format
type ExportFormat string

const (
	FormatPDF  ExportFormat = "pdf"
	FormatJSON ExportFormat = "json"
	FormatYAML ExportFormat = "yaml"
	FormatCSV  ExportFormat = "csv"
)

// ParseFormat maps a user-supplied name to an ExportFormat.
func ParseFormat(name string) (ExportFormat, error) {
	switch f := ExportFormat(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatPDF, FormatJSON, FormatYAML, FormatCSV:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported format: %s", name)
	}
}

// ContentType is the MIME type served for f.
func (f ExportFormat) ContentType() string {
	switch f {
	case FormatPDF:
		return "application/pdf"
	case FormatJSON:
		return "application/json"
	case FormatYAML:
		return "application/yaml"
	case FormatCSV:
		return "text/csv"
	default:
		return "application/octet-stream"
	}
}

// FileName is the download name for a report covering days.
func FileName(days int, f ExportFormat) string {
	return fmt.Sprintf("sim_inbra_pasto_%dd.%s", days, f)
}

// ExportOptions configures the export behavior
type ExportOptions struct {
	Format    ExportFormat
	OutputDir string
}

// Document is the JSON and YAML export layout.
type Document struct {
	ID          string            `json:"id" yaml:"id"`
	GeneratedAt time.Time         `json:"generated_at" yaml:"generated_at"`
	Values      simulation.Record `json:"values" yaml:"values"`
}

// Exporter writes simulation records to files or streams.
type Exporter struct {
	logger   *zap.Logger
	renderer *Renderer
	now      func() time.Time
}

// NewExporter creates a new exporter. PDF output goes through renderer.
func NewExporter(logger *zap.Logger, renderer *Renderer) *Exporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{
		logger:   logger.Named("export"),
		renderer: renderer,
		now:      time.Now,
	}
}

// Export writes rec to OutputDir and returns the file path.
func (e *Exporter) Export(rec simulation.Record, options ExportOptions) (string, error) {
	if options.OutputDir == "" {
		options.OutputDir = "."
	}

	// Ensure output directory exists
	if err := os.MkdirAll(options.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	outputPath := filepath.Join(options.OutputDir, FileName(rec.Days(), options.Format))
	file, err := os.Create(outputPath)
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}

	if err := e.Write(file, rec, options.Format); err != nil {
		file.Close()
		os.Remove(outputPath)
		return "", err
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("failed to close export file: %w", err)
	}

	e.logger.Info("Simulation exported",
		zap.String("file", outputPath),
		zap.String("format", string(options.Format)))

	return outputPath, nil
}

// Write encodes rec to w in the given format.
func (e *Exporter) Write(w io.Writer, rec simulation.Record, f ExportFormat) error {
	switch f {
	case FormatPDF:
		return e.writePDF(w, rec)
	case FormatJSON:
		return e.writeJSON(w, rec)
	case FormatYAML:
		return e.writeYAML(w, rec)
	case FormatCSV:
		return writeCSV(w, rec)
	default:
		return fmt.Errorf("unsupported format: %s", f)
	}
}

func (e *Exporter) document(rec simulation.Record) Document {
	return Document{
		ID:          uuid.NewString(),
		GeneratedAt: e.now().UTC(),
		Values:      rec,
	}
}

func (e *Exporter) writePDF(w io.Writer, rec simulation.Record) error {
	if e.renderer == nil {
		return fmt.Errorf("pdf export requires a renderer")
	}
	data, err := e.renderer.Render(rec)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

func (e *Exporter) writeJSON(w io.Writer, rec simulation.Record) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(e.document(rec)); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

func (e *Exporter) writeYAML(w io.Writer, rec simulation.Record) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(e.document(rec)); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return nil
}

// writeCSV writes one field,value row per record key in report order.
func writeCSV(w io.Writer, rec simulation.Record) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"field", "value"}); err != nil {
		return fmt.Errorf("failed to write CSV headers: %w", err)
	}
	for _, key := range simulation.RecordKeys {
		value := strconv.FormatFloat(rec.Get(key), 'f', -1, 64)
		if err := writer.Write([]string{key, value}); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}
