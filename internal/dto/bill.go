package dto

// Bill payloads keep the gateway's historical camelCase field names; the
// browser and CLI clients both depend on them.

// CreateBillResponse answers a receipt upload with the stored file URL and
// the key addressing the bill in later update calls.
type CreateBillResponse struct {
	FileURL string `json:"fileUrl"`
	Key     string `json:"key"`
}

type UpdateBillRequest struct {
	Email        string `json:"email" validate:"required,email"`
	Type         string `json:"type" validate:"required"`
	Name         string `json:"name" validate:"required"`
	Date         string `json:"date" validate:"required,datetime=2006-01-02"`
	Amount       int    `json:"amount" validate:"min=0"`
	VAT          string `json:"vat"`
	Pct          int    `json:"pct" validate:"min=0"`
	Commentary   string `json:"commentary"`
	FileURL      string `json:"fileUrl"`
	FileName     string `json:"fileName"`
	Status       string `json:"status" validate:"omitempty,oneof=pending accepted refused"`
	CommentAdmin string `json:"commentAdmin"`
}

type BillResponse struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Type         string `json:"type"`
	Name         string `json:"name"`
	Date         string `json:"date"`
	Amount       int    `json:"amount"`
	VAT          string `json:"vat"`
	Pct          int    `json:"pct"`
	Commentary   string `json:"commentary"`
	FileURL      string `json:"fileUrl"`
	FileName     string `json:"fileName"`
	Status       string `json:"status"`
	CommentAdmin string `json:"commentAdmin,omitempty"`
}
