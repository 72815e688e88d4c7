// Package report turns a simulation record into the downloadable PDF report
// and into JSON, YAML and CSV exports.
package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/rovshanmuradov/inbeef/internal/branding"
	"github.com/rovshanmuradov/inbeef/internal/simulation"
	"go.uber.org/zap"
)

const (
	logoName  = "logo"
	lineH     = 6.0
	frameGap  = 6.0
	valueW    = 40.0
	resValueW = 32.0
)

// RendererConfig configures a Renderer.
type RendererConfig struct {
	Logger   *zap.Logger
	Assets   branding.Assets
	Compress bool
	// Now dates the report; defaults to time.Now.
	Now func() time.Time
}

// Renderer lays out simulation records as A4 PDF documents.
type Renderer struct {
	logger   *zap.Logger
	assets   branding.Assets
	compress bool
	now      func() time.Time
}

// NewRenderer creates a new PDF renderer
func NewRenderer(cfg RendererConfig) *Renderer {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Renderer{
		logger:   logger.Named("report"),
		assets:   cfg.Assets,
		compress: cfg.Compress,
		now:      now,
	}
}

// Render builds the report for rec and returns the PDF bytes.
func (r *Renderer) Render(rec simulation.Record) ([]byte, error) {
	now := r.now()

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(r.compress)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(now)
	pdf.SetModificationDate(now)
	pdf.SetTitle(ReportTitle, true)
	pdf.SetCreator("inbeef", false)

	l := newLayout(pdf)
	logo := r.registerLogo(pdf)
	pdf.SetHeaderFunc(func() {
		renderHeader(l, rec.Days(), now, logo)
	})

	pdf.AddPage()
	renderParameters(l, rec)
	renderResults(l, rec)
	renderInterpretation(l, rec)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}

	r.logger.Debug("Report rendered",
		zap.Int("days", rec.Days()),
		zap.Int("bytes", buf.Len()),
		zap.Bool("logo", logo != nil))

	return buf.Bytes(), nil
}

// registerLogo adds the branding logo to pdf. A logo that cannot be decoded
// is dropped so the report still renders.
func (r *Renderer) registerLogo(pdf *fpdf.Fpdf) *fpdf.ImageOptions {
	imageType := r.assets.LogoImageType()
	if imageType == "" {
		return nil
	}

	opts := fpdf.ImageOptions{ImageType: imageType}
	pdf.RegisterImageOptionsReader(logoName, opts, bytes.NewReader(r.assets.Logo))
	if !pdf.Ok() {
		r.logger.Warn("Logo skipped", zap.Error(pdf.Error()))
		pdf.ClearError()
		return nil
	}
	return &opts
}

// layout carries the drawing position between sections. Every draw call
// positions itself from y instead of relying on the document cursor.
type layout struct {
	pdf   *fpdf.Fpdf
	tr    func(string) string
	left  float64
	top   float64
	width float64
	y     float64
}

func newLayout(pdf *fpdf.Fpdf) *layout {
	left, top, right, _ := pdf.GetMargins()
	pageW, _ := pdf.GetPageSize()
	return &layout{
		pdf:   pdf,
		tr:    pdf.UnicodeTranslatorFromDescriptor(""),
		left:  left,
		top:   top,
		width: pageW - left - right,
		y:     top,
	}
}

func (l *layout) font(family, style string, size float64) {
	l.pdf.SetFont(family, style, size)
}

// line writes one full-width cell and moves down by h.
func (l *layout) line(h float64, text, align string) {
	l.pdf.SetXY(l.left, l.y)
	l.pdf.CellFormat(l.width, h, l.tr(text), "", 0, align, false, 0, "")
	l.y += h
}

// paragraph writes wrapped text and moves below it.
func (l *layout) paragraph(h float64, text string) {
	l.pdf.SetXY(l.left, l.y)
	l.pdf.MultiCell(l.width, h, l.tr(text), "", "L", false)
	l.y = l.pdf.GetY()
}

func (l *layout) skip(h float64) {
	l.y += h
}

// frame draws a light box of height h at the current position.
func (l *layout) frame(h float64) {
	l.pdf.SetDrawColor(200, 200, 200)
	l.pdf.Rect(l.left, l.y, l.width, h, "D")
}

// column writes label/value rows inside a column starting at x. It does not
// move the layout position.
func (l *layout) column(x, w, valW float64, size float64, lines []Line) {
	for i, ln := range lines {
		rowY := l.y + float64(i)*lineH
		l.pdf.SetXY(x, rowY)
		l.font("Courier", "B", size)
		l.pdf.CellFormat(w-valW, lineH, l.tr(ln.Label+":"), "", 0, "L", false, 0, "")
		l.font("Courier", "", size)
		l.pdf.SetXY(x+w-valW, rowY)
		l.pdf.CellFormat(valW, lineH, l.tr(ln.Value), "", 0, "R", false, 0, "")
	}
}

func renderHeader(l *layout, days int, now time.Time, logo *fpdf.ImageOptions) {
	l.y = l.top
	if logo != nil {
		l.pdf.ImageOptions(logoName, l.left, 8, 25, 0, false, *logo, 0, "")
	}

	l.font("Helvetica", "B", 16)
	l.line(10, ReportTitle, "C")
	l.font("Helvetica", "B", 14)
	l.line(8, ReportSubtitle, "C")
	l.font("Helvetica", "", 10)
	l.line(6, fmt.Sprintf("Projeção para %d dias | Data da análise: %s", days, now.Format("02/01/2006")), "C")
	l.skip(4)
}

func renderParameters(l *layout, rec simulation.Record) {
	lines := parameterLines(rec)

	l.font("Helvetica", "B", 12)
	l.line(8, "Parâmetros de Entrada", "L")

	height := float64(len(lines))*lineH + 4
	l.frame(height)
	l.skip(2)
	l.column(l.left, l.width, valueW, 10, lines)
	l.skip(height - 2 + frameGap)
}

func renderResults(l *layout, rec simulation.Record) {
	left, right := resultColumns(rec)
	rows := max(len(left), len(right))

	l.font("Helvetica", "B", 12)
	l.line(8, "Resultados", "L")

	height := float64(rows)*lineH + 4
	l.frame(height)
	l.skip(2)
	colW := l.width / 2
	l.column(l.left, colW, resValueW, 9, left)
	l.column(l.left+colW, colW, resValueW, 9, right)
	l.skip(height - 2 + frameGap)
}

func renderInterpretation(l *layout, rec simulation.Record) {
	l.skip(4)
	l.font("Helvetica", "B", 12)
	l.line(8, "Interpretação:", "L")
	l.font("Helvetica", "", 10)
	l.paragraph(lineH, Interpretation(rec))
	l.skip(4)
	l.font("Helvetica", "I", 8)
	l.paragraph(5, Disclaimer)
}
