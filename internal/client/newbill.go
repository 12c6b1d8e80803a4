package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"
)

const defaultPct = 20

var (
	// ErrFileTypeNotAllowed is returned when the selected receipt is not a
	// jpg, jpeg or png file.
	ErrFileTypeNotAllowed = errors.New("file type not allowed")
	// ErrNoFileSelected is returned when the form is submitted before any
	// receipt upload has completed.
	ErrNoFileSelected = errors.New("no file selected")
	// ErrFieldRequired is wrapped with the name of the missing form field.
	ErrFieldRequired = errors.New("required field is empty")
	// ErrInvalidAmount is returned when the amount field does not parse as a
	// whole number.
	ErrInvalidAmount = errors.New("amount is not a whole number")
)

// Alerter surfaces user-visible warnings (the alert box in a browser host).
type Alerter interface {
	Alert(message string)
}

// AlertFunc adapts a function to the Alerter interface.
type AlertFunc func(message string)

func (f AlertFunc) Alert(message string) { f(message) }

// ReceiptFile is the file selected in the form's file picker.
type ReceiptFile struct {
	Name        string
	ContentType string
	Content     io.Reader
}

// FileInput mirrors the state of the form's file input between change events.
type FileInput struct {
	// Value is the raw input value. Browser hosts report a Windows-style
	// path such as C:\fakepath\ticket.png; the display filename is the last
	// backslash-separated segment.
	Value string
	File  *ReceiptFile
	// Invalid mirrors the validity class toggled on the input. Cosmetic.
	Invalid bool
}

func (f *FileInput) clear() {
	f.Value = ""
	f.File = nil
}

// BillForm holds the raw values of the new-bill form, keyed off the form's
// stable field identifiers.
type BillForm struct {
	Type       string // expense-type
	Name       string // expense-name
	Date       string // datepicker
	Amount     string // amount
	VAT        string // vat
	Pct        string // pct
	Commentary string // commentary
}

// NewBill orchestrates the submission of a new expense bill: it uploads the
// receipt as soon as a valid file is selected, then finalizes the bill with
// the form's field values on submit. The upload result (bill key, file URL,
// file name) is kept on the controller between the two events; a fresh
// controller starts with an empty upload session.
//
// Splitting upload from submission lets the receipt transfer while the user
// fills out the rest of the form. Methods are safe for concurrent use; when
// uploads overlap, completions of superseded attempts are discarded.
type NewBill struct {
	Store      Store
	Session    SessionStore
	OnNavigate NavigateFunc
	Alerter    Alerter
	Logger     *zap.Logger

	mu       sync.Mutex
	seq      uint64
	billID   string
	fileURL  string
	fileName string
}

// UploadSession returns the current upload state: the bill key assigned by
// the gateway, the stored file URL, and the display filename. All three are
// empty until a first upload completes.
func (n *NewBill) UploadSession() (billID, fileURL, fileName string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.billID, n.fileURL, n.fileName
}

// HandleChangeFile validates the selected receipt and uploads it to the
// gateway. On rejection the input is cleared, the user is alerted and no
// upload is attempted. On upload failure the input value is reset and the
// upload session keeps its previous state.
func (n *NewBill) HandleChangeFile(ctx context.Context, input *FileInput) error {
	fileName := displayFileName(input.Value)

	if !IsAllowedReceiptName(fileName) {
		input.Invalid = true
		input.clear()
		n.alert(FileTypeAlertMessage)
		n.log().Error("receipt file type not allowed", zap.String("fileName", fileName))
		return ErrFileTypeNotAllowed
	}
	input.Invalid = false

	user, err := CurrentUser(n.Session)
	if err != nil {
		n.log().Error("cannot upload receipt without a session user", zap.Error(err))
		return err
	}

	if n.Store == nil {
		// No gateway configured: remember the filename so the form can
		// still be exercised, but nothing is uploaded.
		n.mu.Lock()
		n.fileName = fileName
		n.mu.Unlock()
		return nil
	}

	payload := &CreateBillPayload{
		FileName:    fileName,
		ContentType: input.File.ContentType,
		File:        input.File.Content,
		Email:       user.Email,
	}

	n.mu.Lock()
	n.seq++
	seq := n.seq
	n.mu.Unlock()

	resp, err := n.Store.Bills().Create(ctx, payload)
	if err != nil {
		n.log().Error("receipt upload failed", zap.String("fileName", fileName), zap.Error(err))
		input.Value = ""
		return err
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	if seq != n.seq {
		// A newer file was selected while this upload was in flight.
		n.log().Info("discarding stale upload result", zap.String("fileName", fileName))
		return nil
	}
	n.billID = resp.Key
	n.fileURL = resp.FileURL
	n.fileName = fileName
	n.log().Info("receipt uploaded",
		zap.String("fileUrl", resp.FileURL),
		zap.String("key", resp.Key),
	)
	return nil
}

// HandleSubmit assembles the bill from the form values and the upload session
// and sends it to the gateway. It refuses to submit before a receipt upload
// has completed. On success it navigates to the bills route; on failure the
// upload session is retained so the user can resubmit without re-uploading.
func (n *NewBill) HandleSubmit(ctx context.Context, form *BillForm) error {
	billID, fileURL, fileName := n.UploadSession()
	if fileName == "" {
		n.log().Error("bill submitted before any receipt upload")
		return ErrNoFileSelected
	}

	user, err := CurrentUser(n.Session)
	if err != nil {
		n.log().Error("cannot submit bill without a session user", zap.Error(err))
		return err
	}

	bill, err := buildBill(form, user.Email, fileURL, fileName)
	if err != nil {
		n.log().Error("bill form rejected", zap.Error(err))
		return err
	}

	if n.Store == nil {
		// Nothing to persist to; skipped without error.
		return nil
	}

	if _, err := n.Store.Bills().Update(ctx, &UpdateBillPayload{Data: bill, Selector: billID}); err != nil {
		n.log().Error("bill update failed", zap.String("billId", billID), zap.Error(err))
		return err
	}

	n.navigate(RouteBills)
	return nil
}

// buildBill maps raw form values to a bill record: required-field checks,
// integer coercions and the fixed pending status all live here so they stay
// testable without any form plumbing. A missing pct is not an error; it
// defaults to 20, as does a pct that fails to parse or is negative. A
// non-numeric amount rejects the submission.
func buildBill(form *BillForm, email, fileURL, fileName string) (*Bill, error) {
	required := []struct {
		id    string
		value string
	}{
		{"expense-type", form.Type},
		{"expense-name", form.Name},
		{"datepicker", form.Date},
		{"amount", form.Amount},
		{"vat", form.VAT},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return nil, fmt.Errorf("%w: %s", ErrFieldRequired, field.id)
		}
	}

	amount, err := strconv.Atoi(strings.TrimSpace(form.Amount))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, form.Amount)
	}

	pct, err := strconv.Atoi(strings.TrimSpace(form.Pct))
	if err != nil || pct < 0 {
		pct = defaultPct
	}

	return &Bill{
		Email:      email,
		Type:       form.Type,
		Name:       form.Name,
		Date:       form.Date,
		Amount:     amount,
		VAT:        form.VAT,
		Pct:        pct,
		Commentary: form.Commentary,
		FileURL:    fileURL,
		FileName:   fileName,
		Status:     BillStatusPending,
	}, nil
}

// displayFileName takes the last backslash-separated segment of the raw input
// value, stripping the C:\fakepath\ prefix browsers report.
func displayFileName(value string) string {
	parts := strings.Split(value, `\`)
	return parts[len(parts)-1]
}

func (n *NewBill) alert(message string) {
	if n.Alerter != nil {
		n.Alerter.Alert(message)
	}
}

func (n *NewBill) navigate(path string) {
	if n.OnNavigate != nil {
		n.OnNavigate(path)
	}
}

func (n *NewBill) log() *zap.Logger {
	if n.Logger != nil {
		return n.Logger
	}
	return zap.NewNop()
}
