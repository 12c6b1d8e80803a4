package models

import (
	"time"

	"github.com/google/uuid"
)

type BillStatus string

const (
	BillStatusPending  BillStatus = "pending"
	BillStatusAccepted BillStatus = "accepted"
	BillStatusRefused  BillStatus = "refused"
)

// Bill is a persisted expense record. The date stays in its wire form
// (YYYY-MM-DD); the vat amount is kept as a string by convention.
type Bill struct {
	ID           uuid.UUID  `db:"id"`
	Email        string     `db:"email"`
	Type         string     `db:"type"`
	Name         string     `db:"name"`
	Date         string     `db:"date"`
	Amount       int        `db:"amount"`
	VAT          string     `db:"vat"`
	Pct          int        `db:"pct"`
	Commentary   string     `db:"commentary"`
	FileURL      string     `db:"file_url"`
	FileName     string     `db:"file_name"`
	Status       BillStatus `db:"status"`
	CommentAdmin string     `db:"comment_admin"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}
