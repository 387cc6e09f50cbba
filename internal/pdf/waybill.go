package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"saferide/internal/models"
)

// WaybillGenerator renders a printable waybill for a delivery order.
type WaybillGenerator struct {
	companyName string
}

func NewWaybillGenerator(companyName string) *WaybillGenerator {
	if companyName == "" {
		companyName = "SafeRide"
	}
	return &WaybillGenerator{companyName: companyName}
}

func (g *WaybillGenerator) Generate(order *models.Order) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetTitle(fmt.Sprintf("Waybill #%d", order.ID), false)
	doc.SetAuthor(g.companyName, false)
	doc.SetMargins(20, 20, 20)
	doc.SetAutoPageBreak(true, 20)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 18)
	doc.CellFormat(0, 10, "WAYBILL", "", 1, "C", false, 0, "")

	doc.SetFont("Helvetica", "", 12)
	sub := fmt.Sprintf("No. SR-%06d  of  %s", order.ID, order.CreatedAt.Format("02.01.2006"))
	doc.CellFormat(0, 7, sub, "", 1, "C", false, 0, "")
	g.hr(doc)

	rows := [][2]string{
		{"Sender", order.SenderName},
		{"Receiver", order.ReceiverName},
		{"Origin", order.Origin},
		{"Destination", order.Destination},
		{"Status", statusLabel(order.IsComplete)},
	}
	for _, row := range rows {
		doc.SetFont("Helvetica", "B", 11)
		doc.CellFormat(45, 8, row[0], "", 0, "L", false, 0, "")
		doc.SetFont("Helvetica", "", 11)
		doc.CellFormat(0, 8, row[1], "", 1, "L", false, 0, "")
	}

	g.hr(doc)
	doc.SetFont("Helvetica", "I", 9)
	doc.CellFormat(0, 6, fmt.Sprintf("Generated by %s", g.companyName), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("waybill output: %w", err)
	}
	return buf.Bytes(), nil
}

func (g *WaybillGenerator) hr(doc *gofpdf.Fpdf) {
	doc.Ln(3)
	x, y := doc.GetXY()
	doc.Line(x, y, 190, y)
	doc.Ln(5)
}

func statusLabel(isComplete bool) string {
	if isComplete {
		return "Completed"
	}
	return "In progress"
}
