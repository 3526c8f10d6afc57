package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"stock-backend/internal/models"
	"stock-backend/internal/repositories"
	"stock-backend/internal/timeutil"
	"stock-backend/internal/valuation"

	"github.com/jung-kurt/gofpdf/v2"
	"github.com/shopspring/decimal"
)

// ArrivalRegisterRow is one valued arrival in the register
type ArrivalRegisterRow struct {
	Arrival    *models.Arrival `json:"arrival"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}

// ArrivalRegister is the arrivals report: every matching arrival valued at
// current cost prices, plus the sum over the whole range.
type ArrivalRegister struct {
	Rows       []ArrivalRegisterRow `json:"rows"`
	RangeTotal decimal.Decimal      `json:"range_total"`
}

// ReportService builds the arrivals register and renders it as JSON, CSV,
// or PDF.
type ReportService struct {
	Arrivals *repositories.ArrivalRepository
	Items    *repositories.ItemRepository
}

func NewReportService(arrivals *repositories.ArrivalRepository, items *repositories.ItemRepository) *ReportService {
	return &ReportService{Arrivals: arrivals, Items: items}
}

// BuildArrivalRegister loads arrivals matching the filter, loads every
// referenced item once, and values each document. An item without a cost
// price fails the whole report with ErrMissingPrice rather than producing
// a register with silent gaps.
func (s *ReportService) BuildArrivalRegister(ctx context.Context, filter *models.ArrivalFilter) (*ArrivalRegister, error) {
	arrivals, err := s.Arrivals.ListFiltered(ctx, filter)
	if err != nil {
		return nil, err
	}

	seen := make(map[int]bool)
	var ids []int
	for _, a := range arrivals {
		lines, err := s.Arrivals.GetLines(ctx, a.ID)
		if err != nil {
			return nil, err
		}
		a.Lines = lines
		for _, line := range lines {
			if !seen[line.ItemID] {
				seen[line.ItemID] = true
				ids = append(ids, line.ItemID)
			}
		}
	}

	var costs valuation.CostIndex
	if len(ids) > 0 {
		items, err := s.Items.GetByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		costs = valuation.CostsOf(items)
	}

	register := &ArrivalRegister{
		Rows:       make([]ArrivalRegisterRow, 0, len(arrivals)),
		RangeTotal: decimal.Zero,
	}
	for _, a := range arrivals {
		total, err := valuation.ArrivalGrandTotal(a.Lines, costs)
		if err != nil {
			return nil, err
		}
		register.Rows = append(register.Rows, ArrivalRegisterRow{Arrival: a, GrandTotal: total})
		register.RangeTotal = register.RangeTotal.Add(total)
	}
	return register, nil
}

// ExportCSV renders the register as CSV, one row per arrival line plus a
// grand-total row per document.
func (s *ReportService) ExportCSV(register *ArrivalRegister) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"arrival_id", "date", "supplier", "payment_type", "receipt_no", "item", "quantity", "price", "grand_total"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, row := range register.Rows {
		a := row.Arrival
		date := a.CreatedAt.In(timeutil.Local).Format(timeutil.DateLayout)
		for _, line := range a.Lines {
			record := []string{
				fmt.Sprintf("%d", a.ID),
				date,
				a.SupplierName,
				string(a.PaymentType),
				fmt.Sprintf("%d", a.ReceiptNo),
				line.ItemName,
				line.Quantity.StringFixed(valuation.Scale),
				line.Price.StringFixed(valuation.Scale),
				"",
			}
			if err := w.Write(record); err != nil {
				return nil, err
			}
		}
		totalRow := []string{
			fmt.Sprintf("%d", a.ID), date, a.SupplierName, string(a.PaymentType),
			fmt.Sprintf("%d", a.ReceiptNo), "", "", "", row.GrandTotal.StringFixed(valuation.Scale),
		}
		if err := w.Write(totalRow); err != nil {
			return nil, err
		}
	}

	rangeRow := []string{"", "", "", "", "", "", "", "TOTAL", register.RangeTotal.StringFixed(valuation.Scale)}
	if err := w.Write(rangeRow); err != nil {
		return nil, err
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportPDF renders the register as a printable PDF
func (s *ReportService) ExportPDF(register *ArrivalRegister) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, "Arrivals Register", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Generated: %s", timeutil.Now().Format(timeutil.DisplayLayout)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFillColor(230, 230, 230)

	for _, row := range register.Rows {
		a := row.Arrival

		pdf.SetFont("Arial", "B", 11)
		header := fmt.Sprintf("Arrival #%d  %s  %s  receipt %d  (%s)",
			a.ID, a.CreatedAt.In(timeutil.Local).Format(timeutil.DateLayout),
			a.SupplierName, a.ReceiptNo, a.PaymentType)
		pdf.CellFormat(190, 8, header, "1", 1, "L", true, 0, "")

		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(90, 7, "Item", "1", 0, "C", true, 0, "")
		pdf.CellFormat(50, 7, "Quantity", "1", 0, "C", true, 0, "")
		pdf.CellFormat(50, 7, "Price", "1", 1, "C", true, 0, "")

		pdf.SetFont("Arial", "", 10)
		for _, line := range a.Lines {
			pdf.CellFormat(90, 6, line.ItemName, "1", 0, "L", false, 0, "")
			pdf.CellFormat(50, 6, line.Quantity.StringFixed(valuation.Scale), "1", 0, "R", false, 0, "")
			pdf.CellFormat(50, 6, line.Price.StringFixed(valuation.Scale), "1", 1, "R", false, 0, "")
		}

		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(140, 7, "Grand total", "1", 0, "R", false, 0, "")
		pdf.CellFormat(50, 7, row.GrandTotal.StringFixed(valuation.Scale), "1", 1, "R", false, 0, "")
		pdf.Ln(3)
	}

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(140, 9, "Range total", "1", 0, "R", true, 0, "")
	pdf.CellFormat(50, 9, register.RangeTotal.StringFixed(valuation.Scale), "1", 1, "R", true, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
