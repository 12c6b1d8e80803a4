package client

import (
	"context"
	"encoding/json"
	"testing"
)

// mockStore is a scripted gateway double. Each operation runs its fn when
// set and records its calls; default answers mirror the demo dataset.
type mockStore struct {
	bills mockBills
	users mockUsers

	loginFn    func(ctx context.Context, creds Credentials) (*LoginResponse, error)
	loginCalls []Credentials
}

func (s *mockStore) Bills() BillsClient { return &s.bills }
func (s *mockStore) Users() UsersClient { return &s.users }

func (s *mockStore) Login(ctx context.Context, creds Credentials) (*LoginResponse, error) {
	s.loginCalls = append(s.loginCalls, creds)
	if s.loginFn != nil {
		return s.loginFn(ctx, creds)
	}
	return &LoginResponse{JWT: "token-1234"}, nil
}

type mockBills struct {
	createFn func(ctx context.Context, payload *CreateBillPayload) (*CreateBillResponse, error)
	updateFn func(ctx context.Context, payload *UpdateBillPayload) (*Bill, error)
	listFn   func(ctx context.Context) ([]Bill, error)

	createCalls []*CreateBillPayload
	updateCalls []*UpdateBillPayload
}

func (b *mockBills) Create(ctx context.Context, payload *CreateBillPayload) (*CreateBillResponse, error) {
	b.createCalls = append(b.createCalls, payload)
	if b.createFn != nil {
		return b.createFn(ctx, payload)
	}
	return &CreateBillResponse{
		FileURL: "https://localhost:3456/images/test.jpg",
		Key:     "1234",
	}, nil
}

func (b *mockBills) Update(ctx context.Context, payload *UpdateBillPayload) (*Bill, error) {
	b.updateCalls = append(b.updateCalls, payload)
	if b.updateFn != nil {
		return b.updateFn(ctx, payload)
	}
	bill := *payload.Data
	bill.ID = payload.Selector
	return &bill, nil
}

func (b *mockBills) List(ctx context.Context) ([]Bill, error) {
	if b.listFn != nil {
		return b.listFn(ctx)
	}
	return demoBills(), nil
}

type mockUsers struct {
	createFn    func(ctx context.Context, payload *CreateUserPayload) error
	createCalls []*CreateUserPayload
}

func (u *mockUsers) Create(ctx context.Context, payload *CreateUserPayload) error {
	u.createCalls = append(u.createCalls, payload)
	if u.createFn != nil {
		return u.createFn(ctx, payload)
	}
	return nil
}

// demoBills is the canonical four-bill dataset, one bill per review state
// plus one refused twice over.
func demoBills() []Bill {
	return []Bill{
		{
			ID: "47qAXb6fIm2zOKkLzMro", Email: "a@a", Type: "Hôtel et logement",
			Name: "encore", Date: "2004-04-04", Amount: 400, VAT: "80", Pct: 20,
			Commentary: "séminaire billed", FileName: "preview-facture-free-201801-pdf-1.jpg",
			Status: "pending", CommentAdmin: "ok",
		},
		{
			ID: "BeKy5Mo4jkmdfPGYpTxZ", Email: "a@a", Type: "Transports",
			Name: "test1", Date: "2001-01-01", Amount: 100, VAT: "", Pct: 20,
			Commentary: "plop", FileName: "1592770761.jpeg",
			Status: "refused", CommentAdmin: "en fait non",
		},
		{
			ID: "UIUZtnPQvnbFnB0ozvJh", Email: "a@a", Type: "Services en ligne",
			Name: "test3", Date: "2003-03-03", Amount: 300, VAT: "60", Pct: 20,
			Commentary: "", FileName: "facture-client-php-exportee-dans-document-pdf.png",
			Status: "accepted", CommentAdmin: "bon bah d'accord",
		},
		{
			ID: "qcCK3SzECmaZAGRrHjaC", Email: "a@a", Type: "Restaurants et bars",
			Name: "test2", Date: "2002-02-02", Amount: 200, VAT: "40", Pct: 20,
			Commentary: "test2", FileName: "preview-facture-free-201801-pdf-1.jpg",
			Status: "refused", CommentAdmin: "pas la bonne facture",
		},
	}
}

// employeeSession returns a session already holding the connected employee.
func employeeSession(t *testing.T) *MemorySession {
	t.Helper()
	session := NewMemorySession()
	raw, err := json.Marshal(&SessionUser{Type: UserTypeEmployee, Email: "a@a", Status: "connected"})
	if err != nil {
		t.Fatal(err)
	}
	session.SetItem(SessionKeyUser, string(raw))
	return session
}

// navRecorder records navigation calls.
type navRecorder struct {
	paths []string
}

func (n *navRecorder) Go(path string) { n.paths = append(n.paths, path) }

// alertRecorder records user-visible alerts.
type alertRecorder struct {
	messages []string
}

func (a *alertRecorder) Alert(message string) { a.messages = append(a.messages, message) }
