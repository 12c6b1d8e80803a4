// Package client implements the employee-facing expense-report client: the
// bill submission, bill listing and login controllers, the session store holding
// the logged-in user, and the HTTP client for the remote bill gateway.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Bill statuses as carried on the wire.
const (
	BillStatusPending  = "pending"
	BillStatusAccepted = "accepted"
	BillStatusRefused  = "refused"
)

// Bill is an expense record as exchanged with the gateway. Field names on the
// wire follow the gateway's camelCase contract.
type Bill struct {
	ID           string `json:"id,omitempty"`
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

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the auth token issued by the gateway.
type LoginResponse struct {
	JWT string `json:"jwt"`
}

// CreateUserPayload is the users().create payload.
type CreateUserPayload struct {
	Type     string `json:"type"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateBillPayload is the multipart payload of bills().create: the receipt
// file plus the owner's email.
type CreateBillPayload struct {
	FileName    string
	ContentType string
	File        io.Reader
	Email       string
}

// CreateBillResponse is the gateway's answer to a receipt upload: the URL of
// the stored file and the key addressing the bill for later updates.
type CreateBillResponse struct {
	FileURL string `json:"fileUrl"`
	Key     string `json:"key"`
}

// UpdateBillPayload is the bills().update payload: the serialized bill plus
// the selector key obtained at create time.
type UpdateBillPayload struct {
	Data     *Bill
	Selector string
}

// Store is the remote persistence gateway consumed by the controllers.
type Store interface {
	Bills() BillsClient
	Users() UsersClient
	Login(ctx context.Context, creds Credentials) (*LoginResponse, error)
}

// BillsClient exposes the gateway's bills collection.
type BillsClient interface {
	Create(ctx context.Context, payload *CreateBillPayload) (*CreateBillResponse, error)
	Update(ctx context.Context, payload *UpdateBillPayload) (*Bill, error)
	List(ctx context.Context) ([]Bill, error)
}

// UsersClient exposes the gateway's users collection.
type UsersClient interface {
	Create(ctx context.Context, payload *CreateUserPayload) error
}

// APIError is a non-2xx gateway answer.
type APIError struct {
	Code int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Erreur %d", e.Code)
}

// RestStore is the HTTP implementation of Store. Requests carry the session's
// auth token as a Bearer header when one is present.
type RestStore struct {
	baseURL    string
	session    SessionStore
	httpClient *http.Client
	logger     *zap.Logger
}

func NewRestStore(baseURL string, session SessionStore, logger *zap.Logger) *RestStore {
	return &RestStore{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		session:    session,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

func (s *RestStore) Bills() BillsClient { return &restBills{store: s} }
func (s *RestStore) Users() UsersClient { return &restUsers{store: s} }

func (s *RestStore) Login(ctx context.Context, creds Credentials) (*LoginResponse, error) {
	var resp LoginResponse
	if err := s.doJSON(ctx, http.MethodPost, "/auth/login", creds, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *RestStore) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return s.do(req, out)
}

func (s *RestStore) do(req *http.Request, out any) error {
	if jwt := s.session.GetItem(SessionKeyJWT); jwt != "" {
		req.Header.Set("Authorization", "Bearer "+jwt)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		io.Copy(io.Discard, resp.Body)
		return &APIError{Code: resp.StatusCode}
	}
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

type restBills struct {
	store *RestStore
}

func (b *restBills) Create(ctx context.Context, payload *CreateBillPayload) (*CreateBillResponse, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", payload.FileName)
	if err != nil {
		return nil, fmt.Errorf("failed to build multipart payload: %w", err)
	}
	if _, err := io.Copy(part, payload.File); err != nil {
		return nil, fmt.Errorf("failed to read receipt file: %w", err)
	}
	if err := w.WriteField("email", payload.Email); err != nil {
		return nil, fmt.Errorf("failed to build multipart payload: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to build multipart payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.store.baseURL+"/bills", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var resp CreateBillResponse
	if err := b.store.do(req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (b *restBills) Update(ctx context.Context, payload *UpdateBillPayload) (*Bill, error) {
	var resp Bill
	path := "/bills/" + payload.Selector
	if err := b.store.doJSON(ctx, http.MethodPut, path, payload.Data, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (b *restBills) List(ctx context.Context) ([]Bill, error) {
	var bills []Bill
	if err := b.store.doJSON(ctx, http.MethodGet, "/bills", nil, &bills); err != nil {
		return nil, err
	}
	return bills, nil
}

type restUsers struct {
	store *RestStore
}

func (u *restUsers) Create(ctx context.Context, payload *CreateUserPayload) error {
	return u.store.doJSON(ctx, http.MethodPost, "/users", payload, nil)
}
