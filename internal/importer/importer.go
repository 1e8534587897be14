// Package importer reads custom line items from CSV and Excel files so a
// contractor can pull their own extras list into a workflow. It supports
// automatic delimiter detection, flexible column mapping, and
// case-insensitive header recognition. Imported items always land in the
// custom id namespace, so recomputation never touches them.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/renoworks/renoquote/internal/model"
)

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Labor     []model.LaborItem
	Materials []model.MaterialItem
	Errors    []string
	Warnings  []string
}

// columnMapping maps semantic column roles to their indices in the data.
// A value of -1 means the column is absent.
type columnMapping struct {
	Name     int
	Hours    int
	Rate     int
	Quantity int
	Unit     int
	Price    int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"name":     {"name", "item", "description", "desc", "task", "label"},
	"hours":    {"hours", "hrs", "labor hours", "time"},
	"rate":     {"rate", "hourly rate", "rate/hr", "labor rate"},
	"quantity": {"quantity", "qty", "count", "amount"},
	"unit":     {"unit", "units", "uom"},
	"price":    {"price", "unit price", "cost", "unit cost"},
}

// DetectCSVDelimiter reads the file content and determines the most likely
// CSV delimiter. It tries comma, semicolon, tab, and pipe; the delimiter
// producing the most consistent multi-column row shape wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}
	return bestDelimiter
}

// ImportCSV parses custom line items from CSV bytes for the given workflow.
// Rows with hours or rate columns become labor items; rows with quantity or
// price columns become materials. A row carrying both becomes both a warning
// and a labor item.
func ImportCSV(data []byte, workflow model.Workflow) ImportResult {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = DetectCSVDelimiter(data)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("failed to parse CSV: %v", err)}}
	}
	return importRecords(records, workflow)
}

// ImportXLSX parses custom line items from the first sheet of an Excel file.
func ImportXLSX(path string, workflow model.Workflow) ImportResult {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("failed to open Excel file: %v", err)}}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return ImportResult{Errors: []string{"workbook has no sheets"}}
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("failed to read sheet %q: %v", sheets[0], err)}}
	}
	return importRecords(rows, workflow)
}

// ImportFile dispatches on file extension: .xlsx goes through excelize,
// anything else is treated as CSV.
func ImportFile(path string, workflow model.Workflow) ImportResult {
	if strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		return ImportXLSX(path, workflow)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("failed to read file: %v", err)}}
	}
	return ImportCSV(data, workflow)
}

func importRecords(records [][]string, workflow model.Workflow) ImportResult {
	var result ImportResult
	if len(records) == 0 {
		result.Errors = append(result.Errors, "file is empty")
		return result
	}

	mapping, ok := mapHeaders(records[0])
	if !ok {
		result.Errors = append(result.Errors, "no recognizable header row (need at least a name column)")
		return result
	}
	if mapping.Hours < 0 && mapping.Quantity < 0 && mapping.Price < 0 {
		result.Errors = append(result.Errors, "header row has neither labor (hours/rate) nor material (quantity/price) columns")
		return result
	}

	scope := string(workflow)
	for i, row := range records[1:] {
		name := cell(row, mapping.Name)
		if strings.TrimSpace(name) == "" {
			result.Warnings = append(result.Warnings, fmt.Sprintf("row %d: empty name, skipped", i+2))
			continue
		}

		isLabor := cell(row, mapping.Hours) != "" || (mapping.Rate >= 0 && cell(row, mapping.Rate) != "" && mapping.Quantity < 0)
		if isLabor {
			result.Labor = append(result.Labor, model.NewCustomLaborItem(scope, name,
				cell(row, mapping.Hours), cell(row, mapping.Rate)))
			continue
		}

		qty := cell(row, mapping.Quantity)
		price := cell(row, mapping.Price)
		if qty == "" && price == "" {
			result.Warnings = append(result.Warnings, fmt.Sprintf("row %d: no hours, quantity, or price; skipped", i+2))
			continue
		}
		if qty == "" {
			qty = "1"
		}
		result.Materials = append(result.Materials, model.NewCustomMaterialItem(scope, name,
			qty, cell(row, mapping.Unit), price))
	}
	return result
}

// mapHeaders resolves the header row into column indices via the alias
// table. Returns ok=false when no name column is present.
func mapHeaders(header []string) (columnMapping, bool) {
	m := columnMapping{Name: -1, Hours: -1, Rate: -1, Quantity: -1, Unit: -1, Price: -1}
	for i, h := range header {
		canonical := canonicalHeader(strings.ToLower(strings.TrimSpace(h)))
		switch canonical {
		case "name":
			m.Name = i
		case "hours":
			m.Hours = i
		case "rate":
			m.Rate = i
		case "quantity":
			m.Quantity = i
		case "unit":
			m.Unit = i
		case "price":
			m.Price = i
		}
	}
	return m, m.Name >= 0
}

func canonicalHeader(h string) string {
	for canonical, aliases := range headerAliases {
		for _, a := range aliases {
			if h == a {
				return canonical
			}
		}
	}
	return ""
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
