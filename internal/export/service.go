package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Alan-K-Biju-7/waresys-mvp/constants"
	"github.com/Alan-K-Biju-7/waresys-mvp/internal/entity"
	"github.com/Alan-K-Biju-7/waresys-mvp/internal/repository"
)

// Service is a tiny façade over the bill repository that produces XLSX bytes
// for exports.
type Service struct {
	bills  repository.BillRepository
	logger *slog.Logger
}

func NewService(bills repository.BillRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{bills: bills, logger: logger}
}

// ExportBillsXLSX returns an XLSX workbook (as bytes), one row per line item.
// With a nil status filter only PROCESSED and CONFIRMED bills are included;
// half-finished extractions have nothing useful to export.
func (s *Service) ExportBillsXLSX(ctx context.Context, status *constants.BillStatus) ([]byte, error) {
	start := time.Now()

	bills, err := s.bills.List(ctx, status, 0)
	if err != nil {
		return nil, fmt.Errorf("query bills: %w", err)
	}
	if status == nil {
		bills = exportable(bills)
	}

	f := excelize.NewFile()
	const sheet = "Bills"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Bill Date",
		"Invoice No",
		"Vendor",
		"Item",
		"HSN",
		"Qty",
		"Rate",
		"Amount",
		"Grand Total",
		"Status",
		"Needs Review",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, b := range bills {
		billDate := ""
		if b.BillDate != nil {
			billDate = b.BillDate.Format("2006-01-02")
		}
		grand := ""
		if b.GrandTotal != nil {
			grand = b.GrandTotal.StringFixed(2)
		}

		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		lines := b.Lines
		if len(lines) == 0 {
			// Bills without parsed rows still get a summary line.
			lines = []*entity.BillLine{{Description: "(no line items)"}}
		}
		for _, ln := range lines {
			write(1, billDate)
			write(2, b.InvoiceNo)
			write(3, b.VendorName)
			write(4, truncate(ln.Description, 140))
			write(5, ln.HSN)
			write(6, ln.Qty.String())
			write(7, ln.Rate.StringFixed(2))
			write(8, ln.Amount.StringFixed(2))
			write(9, grand)
			write(10, string(b.Status))
			write(11, b.NeedsReview)
			row++
		}
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 12) // date
	_ = f.SetColWidth(sheet, "B", "B", 16) // invoice no
	_ = f.SetColWidth(sheet, "C", "C", 28) // vendor
	_ = f.SetColWidth(sheet, "D", "D", 48) // item
	_ = f.SetColWidth(sheet, "F", "I", 12) // numbers

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"bills", len(bills),
		"rows", row-2,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func exportable(bills []*entity.Bill) []*entity.Bill {
	out := bills[:0]
	for _, b := range bills {
		if b.Status == constants.BillStatusProcessed || b.Status == constants.BillStatusConfirmed {
			out = append(out, b)
		}
	}
	return out
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
