package app

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// writeTopicsPDF renders the ranked topics as a small tabular PDF report
// with the source URL and scoring parameters in the header.
func writeTopicsPDF(cfg Config, rows []reportRow) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "Webpage topics", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, cfg.URL, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("approach=%s  n=%d  number=%d", cfg.Approach, cfg.N, cfg.Number), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(15, 7, "#", "1", 0, "C", false, 0, "")
	pdf.CellFormat(130, 7, "Topic", "1", 0, "L", false, 0, "")
	pdf.CellFormat(35, 7, "Score", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	if len(rows) == 0 {
		pdf.CellFormat(180, 7, "no qualifying topics", "1", 1, "L", false, 0, "")
	}
	for _, r := range rows {
		pdf.CellFormat(15, 7, fmt.Sprintf("%d", r.Rank), "1", 0, "C", false, 0, "")
		pdf.CellFormat(130, 7, r.Topic, "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 7, r.Score, "1", 1, "R", false, 0, "")
	}

	return pdf.OutputFileAndClose(cfg.OutputPDF)
}
