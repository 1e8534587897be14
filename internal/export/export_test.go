package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/renoworks/renoquote/internal/engine"
	"github.com/renoworks/renoquote/internal/model"
)

func estimateProject(t *testing.T) (*model.Project, model.Settings) {
	t.Helper()
	p := model.NewProject("Main Bath", "Jordan")
	p.Demolition = model.DemolitionDesign{RemoveTub: true, RemoveShower: true}
	p.Floors = model.FloorsDesign{
		MainWidthIn:  "60",
		MainLengthIn: "96",
		TileSize:     model.TileSize12x24,
		SupplyTile:   true,
	}
	s := model.DefaultSettings()
	s.CompanyName = "Apex Renovations"
	s.HourlyRate = 80
	engine.Recompute(p, s)
	return p, s
}

func TestExportPDF(t *testing.T) {
	p, s := estimateProject(t)
	path := filepath.Join(t.TempDir(), "estimate.pdf")

	require.NoError(t, ExportPDF(path, p, s))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(1000), "PDF should have real content")

	head := make([]byte, 5)
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	_, err = f.Read(head)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-", string(head))
}

func TestExportXLSX(t *testing.T) {
	p, s := estimateProject(t)
	path := filepath.Join(t.TempDir(), "estimate.xlsx")

	require.NoError(t, ExportXLSX(path, p, s))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "Summary")
	assert.Contains(t, sheets, "Demolition")
	assert.Contains(t, sheets, "Floors")
	assert.NotContains(t, sheets, "Structural", "empty workflows get no sheet")

	name, err := f.GetCellValue("Summary", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Main Bath", name)
}

func TestExportXLSXEmptyProject(t *testing.T) {
	p := model.NewProject("Empty", "")
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, ExportXLSX(path, p, model.DefaultSettings()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Summary"}, f.GetSheetList())
}
