package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/renoworks/renoquote/internal/engine"
	"github.com/renoworks/renoquote/internal/model"
)

// ExportXLSX writes the project's item lists and totals to a workbook with
// one summary sheet plus one sheet per non-empty workflow.
func ExportXLSX(path string, p *model.Project, settings model.Settings) error {
	f := excelize.NewFile()
	defer f.Close()

	perWorkflow, grand := engine.ProjectTotals(p)

	const summary = "Summary"
	f.SetSheetName("Sheet1", summary)
	setRow(f, summary, 1, []interface{}{"Project", p.Name})
	setRow(f, summary, 2, []interface{}{"Client", p.Client})
	setRow(f, summary, 4, []interface{}{"Section", "Labor", "Materials", "Total"})

	row := 5
	for _, w := range model.AllWorkflows {
		t := perWorkflow[w]
		if t.Grand == 0 {
			continue
		}
		setRow(f, summary, row, []interface{}{w.Title(), t.Labor, t.Materials, t.Grand})
		row++
	}

	b := engine.FinalPrice(grand.Grand, settings.MarkupPercent, settings.DiscountPercent, settings.TaxRate)
	row++
	setRow(f, summary, row, []interface{}{"Subtotal", "", "", b.Subtotal})
	setRow(f, summary, row+1, []interface{}{fmt.Sprintf("Markup (%.1f%%)", settings.MarkupPercent), "", "", b.Markup})
	setRow(f, summary, row+2, []interface{}{fmt.Sprintf("Discount (%.1f%%)", settings.DiscountPercent), "", "", -b.Discount})
	setRow(f, summary, row+3, []interface{}{fmt.Sprintf("Tax (%.2f)", settings.TaxRate), "", "", b.Tax})
	setRow(f, summary, row+4, []interface{}{"Total", "", "", b.Total})

	for _, w := range model.AllWorkflows {
		set := p.Items[w]
		if set == nil || (len(set.Labor) == 0 && len(set.Materials) == 0 && len(set.FlatFees) == 0) {
			continue
		}
		if err := writeWorkflowSheet(f, w, set); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

// writeWorkflowSheet writes one workflow's labor and material rows.
func writeWorkflowSheet(f *excelize.File, w model.Workflow, set *model.ItemSet) error {
	name := w.Title()
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("create sheet %q: %w", name, err)
	}

	row := 1
	if set.FlatFeeMode {
		setRow(f, name, row, []interface{}{"Flat Fee", "Amount"})
		row++
		for _, fi := range set.FlatFees {
			setRow(f, name, row, []interface{}{fi.Name, fi.Total()})
			row++
		}
	} else if len(set.Labor) > 0 {
		setRow(f, name, row, []interface{}{"Labor", "Hours", "Rate", "Total"})
		row++
		for _, li := range set.Labor {
			setRow(f, name, row, []interface{}{li.Name, model.Num(li.Hours), model.Num(li.Rate), li.Total()})
			row++
		}
	}

	if len(set.Materials) > 0 {
		row++
		setRow(f, name, row, []interface{}{"Material", "Quantity", "Unit", "Price", "Total"})
		row++
		for _, mi := range set.Materials {
			setRow(f, name, row, []interface{}{mi.Name, model.Num(mi.Quantity), mi.Unit, model.Num(mi.Price), mi.Total()})
			row++
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return
	}
	_ = f.SetSheetRow(sheet, cell, &values)
}
