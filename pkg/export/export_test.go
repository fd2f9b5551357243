package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleDataset() Dataset {
	return Dataset{
		Headers: []string{"Nombre", "Semanas", "Plan Comida"},
		Rows: []map[string]string{
			{"Nombre": "Ana", "Semanas": "1 al 5 de Enero, 8 al 12 de Enero", "Plan Comida": "Sí"},
			{"Nombre": "Bruno", "Semanas": "5 al 9 de Febrero", "Plan Comida": "No"},
		},
		Widths: map[string]float64{"Semanas": 30},
	}
}

func TestCSVExporterRender(t *testing.T) {
	out, err := NewCSVExporter().Render(sampleDataset())
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(out, []byte("\uFEFF")))

	records, err := csv.NewReader(strings.NewReader(strings.TrimPrefix(string(out), "\uFEFF"))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"Nombre", "Semanas", "Plan Comida"}, records[0])
	assert.Equal(t, []string{"Ana", "1 al 5 de Enero, 8 al 12 de Enero", "Sí"}, records[1])
}

func TestCSVExporterEscapesFormulas(t *testing.T) {
	data := Dataset{
		Headers: []string{"Nombre", "Teléfono", "Notas"},
		Rows: []map[string]string{
			{"Nombre": "=HYPERLINK(\"http://x\")", "Teléfono": "+5411", "Notas": "@SUM(A1)"},
			{"Nombre": "-1+1", "Teléfono": "1155", "Notas": "a=b"},
		},
	}
	out, err := NewCSVExporter().Render(data)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(strings.TrimPrefix(string(out), "\uFEFF"))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"Nombre", "Teléfono", "Notas"}, records[0])
	assert.Equal(t, []string{"'=HYPERLINK(\"http://x\")", "'+5411", "'@SUM(A1)"}, records[1])
	assert.Equal(t, []string{"'-1+1", "1155", "a=b"}, records[2])
}

func TestExportersRequireHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	assert.Error(t, err)
	_, err = NewXLSXExporter("x").Render(Dataset{})
	assert.Error(t, err)
	_, err = NewPDFExporter().Render(Dataset{}, "")
	assert.Error(t, err)
}

func TestXLSXExporterRender(t *testing.T) {
	out, err := NewXLSXExporter("Registros Colonia 2025").Render(sampleDataset())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Registros Colonia 2025"}, f.GetSheetList())

	rows, err := f.GetRows("Registros Colonia 2025")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Nombre", "Semanas", "Plan Comida"}, rows[0])
	assert.Equal(t, []string{"Bruno", "5 al 9 de Febrero", "No"}, rows[2])

	width, err := f.GetColWidth("Registros Colonia 2025", "B")
	require.NoError(t, err)
	assert.Equal(t, 30.0, width)

	headerStyle, err := f.GetCellStyle("Registros Colonia 2025", "A1")
	require.NoError(t, err)
	bodyStyle, err := f.GetCellStyle("Registros Colonia 2025", "A2")
	require.NoError(t, err)
	assert.NotEqual(t, bodyStyle, headerStyle)
}

func TestPDFExporterRender(t *testing.T) {
	out, err := NewPDFExporter().Render(sampleDataset(), "Registros")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestColumnWidthsFillPage(t *testing.T) {
	widths := columnWidths(sampleDataset(), 100)
	require.Len(t, widths, 3)
	total := 0.0
	for _, w := range widths {
		total += w
	}
	assert.InDelta(t, 100, total, 0.0001)
	assert.Greater(t, widths[1], widths[0])
}
