package client

import (
	"context"

	"go.uber.org/zap"
)

// ReceiptViewer shows a stored receipt image (the modal in a browser host).
type ReceiptViewer interface {
	ShowReceipt(fileURL string)
}

// Bills drives the bills table: it fetches the list from the gateway and
// prepares each record for display.
type Bills struct {
	Store      Store
	OnNavigate NavigateFunc
	Viewer     ReceiptViewer
	Logger     *zap.Logger
}

// FormattedBill is a bill together with its display-ready date and status.
type FormattedBill struct {
	Bill
	FormattedDate   string
	FormattedStatus string
}

// GetBills fetches the bill list and formats dates and statuses for display.
// A bill whose date cannot be formatted is still listed, carrying its raw
// date. Returns nil when no gateway is configured.
func (b *Bills) GetBills(ctx context.Context) ([]FormattedBill, error) {
	if b.Store == nil {
		return nil, nil
	}

	bills, err := b.Store.Bills().List(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]FormattedBill, 0, len(bills))
	for _, bill := range bills {
		row := FormattedBill{
			Bill:            bill,
			FormattedDate:   bill.Date,
			FormattedStatus: FormatStatus(bill.Status),
		}
		if formatted, err := FormatDate(bill.Date); err != nil {
			b.log().Warn("bill date left unformatted",
				zap.String("id", bill.ID),
				zap.Error(err),
			)
		} else {
			row.FormattedDate = formatted
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// HandleClickIconEye opens the receipt viewer on the bill's stored file.
func (b *Bills) HandleClickIconEye(bill *Bill) {
	if b.Viewer != nil {
		b.Viewer.ShowReceipt(bill.FileURL)
	}
}

// HandleClickNewBill navigates to the new-bill form.
func (b *Bills) HandleClickNewBill() {
	if b.OnNavigate != nil {
		b.OnNavigate(RouteNewBill)
	}
}

func (b *Bills) log() *zap.Logger {
	if b.Logger != nil {
		return b.Logger
	}
	return zap.NewNop()
}
