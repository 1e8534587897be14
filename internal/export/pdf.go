// Package export renders a project into client-facing documents: a priced
// estimate PDF and an XLSX workbook.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/renoworks/renoquote/internal/engine"
	"github.com/renoworks/renoquote/internal/model"
)

// Page layout constants (A4 portrait in mm).
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 18.0
	marginRight  = 18.0
	marginTop    = 18.0
	marginBottom = 18.0
	contentWidth = pageWidth - marginLeft - marginRight
	rowHeight    = 6.0
	qrSize       = 24.0
)

// qrReference is the data encoded into the estimate's QR code so a printed
// copy can be traced back to the project it came from.
type qrReference struct {
	ProjectID string  `json:"project_id"`
	Name      string  `json:"name"`
	Client    string  `json:"client"`
	Total     float64 `json:"total"`
}

// ExportPDF writes the full estimate document for a project: per-workflow
// labor and material tables, the pricing summary, and a QR project
// reference.
func ExportPDF(path string, p *model.Project, settings model.Settings) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, marginBottom)
	pdf.AddPage()

	renderHeader(pdf, p, settings)

	perWorkflow, grand := engine.ProjectTotals(p)
	cur := settings.Currency

	for _, w := range model.AllWorkflows {
		set := p.Items[w]
		if set == nil || (len(set.Labor) == 0 && len(set.Materials) == 0 && len(set.FlatFees) == 0) {
			continue
		}
		renderWorkflowSection(pdf, w, set, perWorkflow[w], cur)
	}

	breakdown := engine.FinalPrice(grand.Grand, settings.MarkupPercent, settings.DiscountPercent, settings.TaxRate)
	renderPricingSummary(pdf, breakdown, settings)

	if err := renderQRReference(pdf, p, breakdown.Total); err != nil {
		return err
	}

	// Footer
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom+6)
	pdf.CellFormat(contentWidth, 4, "Generated by RenoQuote", "", 0, "C", false, 0, "")

	return pdf.OutputFileAndClose(path)
}

// renderHeader draws the contractor identity block and project title.
func renderHeader(pdf *fpdf.Fpdf, p *model.Project, settings model.Settings) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	company := settings.CompanyName
	if company == "" {
		company = "Renovation Estimate"
	}
	pdf.CellFormat(contentWidth, 8, company, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(90, 90, 90)
	contact := settings.Phone
	if settings.Email != "" {
		if contact != "" {
			contact += "  |  "
		}
		contact += settings.Email
	}
	if contact != "" {
		pdf.SetX(marginLeft)
		pdf.CellFormat(contentWidth, 4.5, contact, "", 1, "L", false, 0, "")
	}

	pdf.Ln(3)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetX(marginLeft)
	pdf.CellFormat(contentWidth, 6, fmt.Sprintf("Project: %s", p.Name), "", 1, "L", false, 0, "")
	if p.Client != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetX(marginLeft)
		pdf.CellFormat(contentWidth, 5, fmt.Sprintf("Client: %s", p.Client), "", 1, "L", false, 0, "")
	}

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.4)
	y := pdf.GetY() + 2
	pdf.Line(marginLeft, y, pageWidth-marginRight, y)
	pdf.SetY(y + 4)
}

// renderWorkflowSection draws one workflow's labor and material tables and
// its subtotal line.
func renderWorkflowSection(pdf *fpdf.Fpdf, w model.Workflow, set *model.ItemSet, totals engine.Totals, cur string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetX(marginLeft)
	pdf.CellFormat(contentWidth, 7, w.Title(), "", 1, "L", false, 0, "")

	if set.FlatFeeMode {
		for _, fi := range set.FlatFees {
			drawRow(pdf, []string{fi.Name, "", "", money(cur, fi.Total())}, laborCols())
		}
	} else if len(set.Labor) > 0 {
		drawTableHeader(pdf, []string{"Labor", "Hours", "Rate", "Total"}, laborCols())
		for _, li := range set.Labor {
			drawRow(pdf, []string{li.Name, li.Hours, money(cur, model.Num(li.Rate)), money(cur, li.Total())}, laborCols())
		}
	}

	if len(set.Materials) > 0 {
		drawTableHeader(pdf, []string{"Material", "Qty", "Unit", "Price", "Total"}, materialCols())
		for _, mi := range set.Materials {
			drawRow(pdf, []string{mi.Name, mi.Quantity, mi.Unit, money(cur, model.Num(mi.Price)), money(cur, mi.Total())}, materialCols())
		}
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetX(marginLeft)
	pdf.CellFormat(contentWidth, rowHeight,
		fmt.Sprintf("Subtotal: %s  (labor %s, materials %s)",
			money(cur, totals.Grand), money(cur, totals.Labor), money(cur, totals.Materials)),
		"", 1, "R", false, 0, "")
	pdf.Ln(2)
}

// renderPricingSummary draws the markup/discount/tax block.
func renderPricingSummary(pdf *fpdf.Fpdf, b engine.PriceBreakdown, settings model.Settings) {
	cur := settings.Currency
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetX(marginLeft)
	pdf.CellFormat(contentWidth, 7, "Pricing Summary", "", 1, "L", false, 0, "")

	rows := []struct {
		label string
		value string
	}{
		{"Subtotal", money(cur, b.Subtotal)},
		{fmt.Sprintf("Markup (%.1f%%)", settings.MarkupPercent), money(cur, b.Markup)},
		{fmt.Sprintf("Discount (%.1f%%)", settings.DiscountPercent), "-" + money(cur, b.Discount)},
		{fmt.Sprintf("Tax (%.2f)", settings.TaxRate), money(cur, b.Tax)},
	}
	pdf.SetFont("Helvetica", "", 10)
	for _, r := range rows {
		pdf.SetX(marginLeft)
		pdf.CellFormat(contentWidth*0.7, rowHeight, r.label, "", 0, "L", false, 0, "")
		pdf.CellFormat(contentWidth*0.3, rowHeight, r.value, "", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetX(marginLeft)
	pdf.CellFormat(contentWidth*0.7, 8, "Total", "T", 0, "L", false, 0, "")
	pdf.CellFormat(contentWidth*0.3, 8, money(cur, b.Total), "T", 1, "R", false, 0, "")
}

// renderQRReference places a QR code encoding the project reference so the
// printed estimate links back to its source record.
func renderQRReference(pdf *fpdf.Fpdf, p *model.Project, total float64) error {
	ref := qrReference{ProjectID: p.ID, Name: p.Name, Client: p.Client, Total: total}
	data, err := json.Marshal(ref)
	if err != nil {
		return fmt.Errorf("failed to marshal project reference: %w", err)
	}
	qrPNG, err := qrcode.Encode(string(data), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := "qr_" + p.ID
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))
	pdf.ImageOptions(imgName, pageWidth-marginRight-qrSize, pageHeight-marginBottom-qrSize,
		qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(pageWidth-marginRight-qrSize, pageHeight-marginBottom-qrSize-4)
	pdf.CellFormat(qrSize, 3.5, "Ref "+p.ID, "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	return nil
}

func laborCols() []float64 {
	return []float64{contentWidth * 0.52, contentWidth * 0.14, contentWidth * 0.16, contentWidth * 0.18}
}

func materialCols() []float64 {
	return []float64{contentWidth * 0.40, contentWidth * 0.12, contentWidth * 0.14, contentWidth * 0.16, contentWidth * 0.18}
}

func drawTableHeader(pdf *fpdf.Fpdf, headers []string, cols []float64) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	pdf.SetX(marginLeft)
	for i, h := range headers {
		pdf.CellFormat(cols[i], rowHeight, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(rowHeight)
}

func drawRow(pdf *fpdf.Fpdf, cells []string, cols []float64) {
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetX(marginLeft)
	for i, c := range cells {
		align := "L"
		if i > 0 {
			align = "R"
		}
		pdf.CellFormat(cols[i], rowHeight, c, "1", 0, align, false, 0, "")
	}
	pdf.Ln(rowHeight)
}

func money(cur string, v float64) string {
	return fmt.Sprintf("%s%.2f", cur, v)
}
