package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Alan-K-Biju-7/waresys-mvp/constants"
	"github.com/Alan-K-Biju-7/waresys-mvp/internal/entity"
	"github.com/Alan-K-Biju-7/waresys-mvp/internal/repository"
)

type stubBills struct {
	bills []*entity.Bill
}

func (s *stubBills) List(_ context.Context, status *constants.BillStatus, _ int) ([]*entity.Bill, error) {
	if status == nil {
		return s.bills, nil
	}
	var out []*entity.Bill
	for _, b := range s.bills {
		if b.Status == *status {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *stubBills) Create(context.Context, *repository.CreateBillRequest) (*entity.Bill, error) {
	return nil, nil
}
func (s *stubBills) MarkProcessing(context.Context, uuid.UUID) error     { return nil }
func (s *stubBills) MarkFailed(context.Context, uuid.UUID, string) error { return nil }
func (s *stubBills) SaveExtraction(context.Context, *repository.SaveExtractionRequest) (*entity.Bill, error) {
	return nil, nil
}
func (s *stubBills) GetByID(context.Context, uuid.UUID) (*entity.Bill, error) { return nil, nil }
func (s *stubBills) ListReviewQueue(context.Context) ([]*entity.Bill, error)  { return nil, nil }
func (s *stubBills) Confirm(context.Context, uuid.UUID) (*entity.Bill, error) { return nil, nil }

func TestExportBillsXLSX(t *testing.T) {
	d := time.Date(2025, 4, 12, 0, 0, 0, 0, time.UTC)
	grand := decimal.NewFromFloat(2950)
	repo := &stubBills{bills: []*entity.Bill{
		{
			ID:         uuid.New(),
			VendorName: "ACME TRADERS PVT LTD",
			InvoiceNo:  "INV-1001",
			BillDate:   &d,
			Status:     constants.BillStatusProcessed,
			GrandTotal: &grand,
			Lines: []*entity.BillLine{
				{
					LineNo:      1,
					HSN:         "8544",
					Description: "Copper Wire",
					Qty:         decimal.NewFromInt(10),
					Rate:        decimal.NewFromFloat(150),
					Amount:      decimal.NewFromFloat(1500),
				},
			},
		},
		{
			ID:     uuid.New(),
			Status: constants.BillStatusUploaded, // must be filtered out
		},
	}}

	svc := NewService(repo, nil)
	data, err := svc.ExportBillsXLSX(context.Background(), nil)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Bills")
	require.NoError(t, err)
	require.Len(t, rows, 2, "header plus one line item")

	assert.Equal(t, "2025-04-12", rows[1][0])
	assert.Equal(t, "INV-1001", rows[1][1])
	assert.Equal(t, "ACME TRADERS PVT LTD", rows[1][2])
	assert.Equal(t, "Copper Wire", rows[1][3])
	assert.Equal(t, "2950.00", rows[1][8])
}
