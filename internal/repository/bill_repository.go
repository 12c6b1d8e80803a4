package repository

import (
	"context"

	"billed/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var billColumns = []string{
	"id", "email", "type", "name", "date", "amount", "vat", "pct",
	"commentary", "file_url", "file_name", "status", "comment_admin",
	"created_at", "updated_at",
}

type BillRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewBillRepository(db *pgxpool.Pool, logger *zap.Logger) *BillRepository {
	return &BillRepository{
		db:     db,
		logger: logger,
	}
}

func (r *BillRepository) Create(ctx context.Context, bill *models.Bill) error {
	query := squirrel.Insert("bills").
		Columns(billColumns...).
		Values(
			bill.ID, bill.Email, bill.Type, bill.Name, bill.Date, bill.Amount,
			bill.VAT, bill.Pct, bill.Commentary, bill.FileURL, bill.FileName,
			bill.Status, bill.CommentAdmin, bill.CreatedAt, bill.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *BillRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Bill, error) {
	query := squirrel.Select(billColumns...).
		From("bills").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var bill models.Bill
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&bill.ID, &bill.Email, &bill.Type, &bill.Name, &bill.Date, &bill.Amount,
		&bill.VAT, &bill.Pct, &bill.Commentary, &bill.FileURL, &bill.FileName,
		&bill.Status, &bill.CommentAdmin, &bill.CreatedAt, &bill.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &bill, nil
}

func (r *BillRepository) Update(ctx context.Context, bill *models.Bill) error {
	query := squirrel.Update("bills").
		Set("email", bill.Email).
		Set("type", bill.Type).
		Set("name", bill.Name).
		Set("date", bill.Date).
		Set("amount", bill.Amount).
		Set("vat", bill.VAT).
		Set("pct", bill.Pct).
		Set("commentary", bill.Commentary).
		Set("file_url", bill.FileURL).
		Set("file_name", bill.FileName).
		Set("status", bill.Status).
		Set("comment_admin", bill.CommentAdmin).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": bill.ID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *BillRepository) ListByEmail(ctx context.Context, email string) ([]*models.Bill, error) {
	query := squirrel.Select(billColumns...).
		From("bills").
		Where(squirrel.Eq{"email": email}).
		OrderBy("date DESC").
		PlaceholderFormat(squirrel.Dollar)

	return r.list(ctx, query)
}

func (r *BillRepository) ListAll(ctx context.Context) ([]*models.Bill, error) {
	query := squirrel.Select(billColumns...).
		From("bills").
		OrderBy("date DESC").
		PlaceholderFormat(squirrel.Dollar)

	return r.list(ctx, query)
}

func (r *BillRepository) list(ctx context.Context, query squirrel.SelectBuilder) ([]*models.Bill, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bills []*models.Bill
	for rows.Next() {
		var bill models.Bill
		if err := rows.Scan(
			&bill.ID, &bill.Email, &bill.Type, &bill.Name, &bill.Date, &bill.Amount,
			&bill.VAT, &bill.Pct, &bill.Commentary, &bill.FileURL, &bill.FileName,
			&bill.Status, &bill.CommentAdmin, &bill.CreatedAt, &bill.UpdatedAt,
		); err != nil {
			return nil, err
		}
		bills = append(bills, &bill)
	}

	return bills, rows.Err()
}
