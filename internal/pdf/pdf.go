// Package pdf captures a rendered invoice document into a single-page A4 PDF
// file, the Go-side equivalent of the document-capture export boundary.
package pdf

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/rs/zerolog"

	"easeinvo/internal/logger"
	"easeinvo/internal/render"
)

const (
	marginMM   = 14.0
	bodyWidth  = render.PageWidthMM - 2*marginMM
	lineHeight = 5.5
)

// Exporter writes rendered documents as PDF files.
type Exporter struct {
	log zerolog.Logger
}

// NewExporter creates a PDF exporter.
func NewExporter() *Exporter {
	return &Exporter{log: logger.WithComponent("pdf")}
}

// ExportFile captures the document into dir and returns the written path.
// The file name is always the document's suggested name,
// "invoice-{invoiceNumber}.pdf".
func (e *Exporter) ExportFile(doc *render.Document, dir string) (string, error) {
	path := filepath.Join(dir, doc.FileName)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create PDF file: %w", err)
	}
	defer f.Close()

	if err := e.Export(doc, f); err != nil {
		return "", err
	}

	e.log.Info().
		Str("file", path).
		Str("template", string(doc.Variant)).
		Msg("Invoice exported to PDF")
	return path, nil
}

// Export captures the document onto a single A4 portrait page and writes the
// PDF to w.
func (e *Exporter) Export(doc *render.Document, w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginMM, marginMM, marginMM)
	pdf.SetAutoPageBreak(false, marginMM) // best-effort single-page fit
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("") // currency symbols beyond ASCII

	ar, ag, ab := parseHexColor(doc.Accent)

	e.drawHeader(pdf, tr, doc, ar, ag, ab)
	e.drawParties(pdf, tr, doc)
	e.drawItemTable(pdf, tr, doc, ar, ag, ab)
	e.drawSummary(pdf, tr, doc, ar, ag, ab)
	e.drawNotes(pdf, tr, doc)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

func (e *Exporter) drawHeader(pdf *gofpdf.Fpdf, tr func(string) string, doc *render.Document, ar, ag, ab int) {
	if doc.Header.AccentBar {
		pdf.SetFillColor(ar, ag, ab)
		pdf.Rect(0, 0, render.PageWidthMM, 10, "F")
		pdf.SetY(16)
	}

	pdf.SetFont("Helvetica", "B", 26)
	if doc.Header.AccentTitle {
		pdf.SetTextColor(ar, ag, ab)
	} else {
		pdf.SetTextColor(15, 23, 42)
	}
	pdf.CellFormat(bodyWidth/2, 10, tr(doc.Header.Title), "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(15, 23, 42)
	pdf.CellFormat(bodyWidth/2, 10, tr("#"+doc.Header.Number), "", 1, "R", false, 0, "")

	if doc.Header.LogoSrc == "" && doc.Header.LogoFallback != "" {
		// Deterministic placeholder: accent square with the sender initial.
		y := pdf.GetY() + 2
		pdf.SetFillColor(ar, ag, ab)
		pdf.Rect(marginMM, y, 10, 10, "F")
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetXY(marginMM, y)
		pdf.CellFormat(10, 10, tr(doc.Header.LogoFallback), "", 1, "C", false, 0, "")
		pdf.SetY(y + 12)
	} else if doc.Header.LogoSrc != "" && fileExists(doc.Header.LogoSrc) {
		y := pdf.GetY() + 2
		pdf.ImageOptions(doc.Header.LogoSrc, marginMM, y, 0, 12, false, gofpdf.ImageOptions{}, 0, "")
		pdf.SetY(y + 14)
	}

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(100, 116, 139)
	pdf.CellFormat(bodyWidth/2, lineHeight, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(bodyWidth/2, lineHeight, tr("Issued: "+doc.Header.IssueDate), "", 1, "R", false, 0, "")
	pdf.CellFormat(bodyWidth/2, lineHeight, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(bodyWidth/2, lineHeight, tr("Due: "+doc.Header.DueDate), "", 1, "R", false, 0, "")

	if doc.Header.AccentRule {
		pdf.SetDrawColor(ar, ag, ab)
		pdf.SetLineWidth(0.8)
		y := pdf.GetY() + 3
		pdf.Line(marginMM, y, render.PageWidthMM-marginMM, y)
		pdf.SetY(y + 3)
	}
	pdf.Ln(4)
}

func (e *Exporter) drawParty(pdf *gofpdf.Fpdf, tr func(string) string, x, width float64, p render.Party) float64 {
	y := pdf.GetY()
	pdf.SetXY(x, y)
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(148, 163, 184)
	pdf.CellFormat(width, lineHeight, tr(strings.ToUpper(p.Label)), "", 2, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(15, 23, 42)
	pdf.CellFormat(width, lineHeight, tr(p.Name), "", 2, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(100, 116, 139)
	for _, line := range strings.Split(p.Address, "\n") {
		pdf.CellFormat(width, lineHeight-1, tr(line), "", 2, "L", false, 0, "")
	}
	if p.Email != "" {
		pdf.CellFormat(width, lineHeight-1, tr(p.Email), "", 2, "L", false, 0, "")
	}
	if p.Phone != "" {
		pdf.CellFormat(width, lineHeight-1, tr(p.Phone), "", 2, "L", false, 0, "")
	}
	return pdf.GetY()
}

func (e *Exporter) drawParties(pdf *gofpdf.Fpdf, tr func(string) string, doc *render.Document) {
	top := pdf.GetY()
	leftEnd := e.drawParty(pdf, tr, marginMM, bodyWidth/2, doc.Sender)
	pdf.SetY(top)
	rightEnd := e.drawParty(pdf, tr, marginMM+bodyWidth/2, bodyWidth/2, doc.Client)
	if leftEnd > rightEnd {
		pdf.SetY(leftEnd)
	} else {
		pdf.SetY(rightEnd)
	}
	pdf.Ln(8)
}

func (e *Exporter) drawItemTable(pdf *gofpdf.Fpdf, tr func(string) string, doc *render.Document, ar, ag, ab int) {
	nameW := bodyWidth * 0.46
	qtyW := bodyWidth * 0.12
	rateW := bodyWidth * 0.20
	amountW := bodyWidth * 0.22

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(148, 163, 184)
	pdf.CellFormat(nameW, 7, "DESCRIPTION", "", 0, "L", false, 0, "")
	pdf.CellFormat(qtyW, 7, "QTY", "", 0, "C", false, 0, "")
	pdf.CellFormat(rateW, 7, "RATE", "", 0, "R", false, 0, "")
	pdf.CellFormat(amountW, 7, "AMOUNT", "", 1, "R", false, 0, "")

	pdf.SetDrawColor(ar, ag, ab)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginMM, pdf.GetY(), render.PageWidthMM-marginMM, pdf.GetY())

	pdf.SetTextColor(15, 23, 42)
	for _, row := range doc.Items {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(nameW, 9, tr(row.Name), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(qtyW, 9, tr(row.Quantity), "", 0, "C", false, 0, "")
		pdf.CellFormat(rateW, 9, tr(row.Rate), "", 0, "R", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(amountW, 9, tr(row.Amount), "", 1, "R", false, 0, "")

		pdf.SetDrawColor(241, 245, 249)
		pdf.SetLineWidth(0.2)
		pdf.Line(marginMM, pdf.GetY(), render.PageWidthMM-marginMM, pdf.GetY())
	}
	pdf.Ln(6)
}

func (e *Exporter) drawSummary(pdf *gofpdf.Fpdf, tr func(string) string, doc *render.Document, ar, ag, ab int) {
	labelW := bodyWidth * 0.55
	valueW := bodyWidth * 0.20

	for _, row := range doc.Summary {
		pdf.CellFormat(bodyWidth*0.25, 7, "", "", 0, "L", false, 0, "")
		switch {
		case row.Kind == render.SummaryTotal:
			pdf.SetDrawColor(15, 23, 42)
			pdf.SetLineWidth(0.6)
			pdf.Line(marginMM+bodyWidth*0.25, pdf.GetY(), render.PageWidthMM-marginMM, pdf.GetY())
			pdf.SetFont("Helvetica", "B", 13)
			if row.Accent {
				pdf.SetTextColor(ar, ag, ab)
			} else {
				pdf.SetTextColor(15, 23, 42)
			}
		case row.Kind == render.SummaryDiscount:
			pdf.SetFont("Helvetica", "", 10)
			pdf.SetTextColor(244, 63, 94)
		default:
			pdf.SetFont("Helvetica", "", 10)
			pdf.SetTextColor(100, 116, 139)
		}
		pdf.CellFormat(labelW, 8, tr(row.Label), "", 0, "L", false, 0, "")
		pdf.CellFormat(valueW, 8, tr(row.Amount), "", 1, "R", false, 0, "")
	}
	pdf.SetTextColor(15, 23, 42)
	pdf.Ln(8)
}

func (e *Exporter) drawNotes(pdf *gofpdf.Fpdf, tr func(string) string, doc *render.Document) {
	for _, block := range []render.NoteBlock{doc.Notes, doc.Terms} {
		if block.Text == "" {
			continue
		}
		pdf.SetFont("Helvetica", "B", 8)
		pdf.SetTextColor(148, 163, 184)
		pdf.CellFormat(bodyWidth, 6, tr(strings.ToUpper(block.Label)), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(100, 116, 139)
		pdf.MultiCell(bodyWidth, 4.5, tr(block.Text), "", "L", false)
		pdf.Ln(3)
	}
}

// parseHexColor converts "#rrggbb" (or "#rgb") to RGB components. Anything
// unparseable falls back to black, mirroring the default accent.
func parseHexColor(s string) (r, g, b int) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
