package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"billed/internal/dto"
	"billed/internal/models"
	"billed/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrBillNotFound = errors.New("bill not found")
	ErrNotBillOwner = errors.New("not the bill owner")
)

type BillService struct {
	billRepo  *repository.BillRepository
	uploadDir string
	logger    *zap.Logger
}

func NewBillService(billRepo *repository.BillRepository, uploadDir string, logger *zap.Logger) *BillService {
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		logger.Warn("Failed to create upload directory", zap.Error(err))
	}

	return &BillService{
		billRepo:  billRepo,
		uploadDir: uploadDir,
		logger:    logger,
	}
}

// CreateBill stores the receipt file and opens a draft bill for it. The
// answer carries the stored file URL and the bill's key; the remaining
// fields arrive later through UpdateBill.
func (s *BillService) CreateBill(ctx context.Context, email string, file io.Reader, fileName string) (*dto.CreateBillResponse, error) {
	billID := uuid.New()
	storedName := billID.String() + filepath.Ext(fileName)
	filePath := filepath.Join(s.uploadDir, storedName)

	dst, err := os.Create(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(filePath)
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	now := time.Now()
	bill := &models.Bill{
		ID:        billID,
		Email:     email,
		FileURL:   "/uploads/" + storedName,
		FileName:  fileName,
		Status:    models.BillStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.billRepo.Create(ctx, bill); err != nil {
		os.Remove(filePath)
		return nil, fmt.Errorf("failed to create bill record: %w", err)
	}

	return &dto.CreateBillResponse{
		FileURL: bill.FileURL,
		Key:     bill.ID.String(),
	}, nil
}

// UpdateBill persists the bill's final fields. Employees may only touch
// their own bills and cannot change status or the admin comment; admins may
// review any bill (set status, leave a comment) but the record stays owned
// by its employee.
func (s *BillService) UpdateBill(ctx context.Context, caller *Caller, billID uuid.UUID, req *dto.UpdateBillRequest) (*dto.BillResponse, error) {
	bill, err := s.billRepo.GetByID(ctx, billID)
	if err != nil {
		return nil, ErrBillNotFound
	}

	admin := caller.Type == models.UserTypeAdmin
	if !admin && bill.Email != caller.Email {
		return nil, ErrNotBillOwner
	}

	bill.Type = req.Type
	bill.Name = req.Name
	bill.Date = req.Date
	bill.Amount = req.Amount
	bill.VAT = req.VAT
	bill.Pct = req.Pct
	bill.Commentary = sanitizeUTF8(req.Commentary)
	if admin {
		if req.Status != "" {
			bill.Status = models.BillStatus(req.Status)
		}
		bill.CommentAdmin = sanitizeUTF8(req.CommentAdmin)
	}

	if err := s.billRepo.Update(ctx, bill); err != nil {
		return nil, err
	}

	s.logger.Info("bill updated",
		zap.String("id", bill.ID.String()),
		zap.String("status", string(bill.Status)),
	)

	return billResponse(bill), nil
}

// ListBills returns the caller's bills; admins see every bill.
func (s *BillService) ListBills(ctx context.Context, caller *Caller) ([]*dto.BillResponse, error) {
	var (
		bills []*models.Bill
		err   error
	)
	if caller.Type == models.UserTypeAdmin {
		bills, err = s.billRepo.ListAll(ctx)
	} else {
		bills, err = s.billRepo.ListByEmail(ctx, caller.Email)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.BillResponse, len(bills))
	for i, bill := range bills {
		responses[i] = billResponse(bill)
	}
	return responses, nil
}

// Caller identifies the authenticated user of a bill operation.
type Caller struct {
	Email string
	Type  models.UserType
}

func billResponse(bill *models.Bill) *dto.BillResponse {
	return &dto.BillResponse{
		ID:           bill.ID.String(),
		Email:        bill.Email,
		Type:         bill.Type,
		Name:         bill.Name,
		Date:         bill.Date,
		Amount:       bill.Amount,
		VAT:          bill.VAT,
		Pct:          bill.Pct,
		Commentary:   bill.Commentary,
		FileURL:      bill.FileURL,
		FileName:     bill.FileName,
		Status:       string(bill.Status),
		CommentAdmin: bill.CommentAdmin,
	}
}
