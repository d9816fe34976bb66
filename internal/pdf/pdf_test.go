package pdf

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"easeinvo/internal/invoice"
	"easeinvo/internal/render"
	"easeinvo/pkg/models"
)

func sampleDocument(t *testing.T, template models.Template) *render.Document {
	t.Helper()
	inv := invoice.NewSample()
	inv.Template = template
	totals := invoice.ComputeTotals(inv.Items, inv.TaxRate, inv.DiscountRate)
	return render.Render(inv, totals)
}

func TestExportWritesPDF(t *testing.T) {
	for _, template := range []models.Template{models.TemplateModern, models.TemplateClassic, models.TemplateMinimal} {
		t.Run(string(template), func(t *testing.T) {
			var buf bytes.Buffer
			err := NewExporter().Export(sampleDocument(t, template), &buf)

			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")), "output starts with a PDF header")
			assert.Greater(t, buf.Len(), 1000)
		})
	}
}

func TestExportFileUsesInvoiceNumberName(t *testing.T) {
	dir := t.TempDir()

	path, err := NewExporter().ExportFile(sampleDocument(t, models.TemplateModern), dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "invoice-INV-SAMPLE-2025.pdf"), path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExportFileFailsOnMissingDirectory(t *testing.T) {
	_, err := NewExporter().ExportFile(sampleDocument(t, models.TemplateModern), filepath.Join(t.TempDir(), "missing", "nested"))
	assert.Error(t, err)
}

func TestParseHexColor(t *testing.T) {
	testCases := []struct {
		in      string
		r, g, b int
	}{
		{"#000000", 0, 0, 0},
		{"#ffffff", 255, 255, 255},
		{"#1f2937", 31, 41, 55},
		{"#abc", 170, 187, 204},
		{"not-a-color", 0, 0, 0},
		{"", 0, 0, 0},
	}

	for _, tc := range testCases {
		r, g, b := parseHexColor(tc.in)
		assert.Equal(t, [3]int{tc.r, tc.g, tc.b}, [3]int{r, g, b}, "input %q", tc.in)
	}
}
