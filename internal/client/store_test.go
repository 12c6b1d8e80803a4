package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, handler http.HandlerFunc) (*RestStore, *MemorySession) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	session := NewMemorySession()
	return NewRestStore(server.URL, session, nil), session
}

func TestRestStoreLogin(t *testing.T) {
	store, _ := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)

		var creds Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "employee@test.tld", creds.Email)
		assert.Equal(t, "employee", creds.Password)

		json.NewEncoder(w).Encode(LoginResponse{JWT: "issued-token"})
	})

	resp, err := store.Login(context.Background(), Credentials{Email: "employee@test.tld", Password: "employee"})
	require.NoError(t, err)
	assert.Equal(t, "issued-token", resp.JWT)
}

func TestRestStoreCreateBillSendsMultipart(t *testing.T) {
	store, session := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/bills", r.URL.Path)
		assert.Equal(t, "Bearer stored-token", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "a@a", r.FormValue("email"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "ticket.png", header.Filename)
		content, _ := io.ReadAll(file)
		assert.Equal(t, "png-bytes", string(content))

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateBillResponse{FileURL: "/uploads/abc.png", Key: "abc"})
	})
	session.SetItem(SessionKeyJWT, "stored-token")

	resp, err := store.Bills().Create(context.Background(), &CreateBillPayload{
		FileName:    "ticket.png",
		ContentType: "image/png",
		File:        strings.NewReader("png-bytes"),
		Email:       "a@a",
	})
	require.NoError(t, err)
	assert.Equal(t, "/uploads/abc.png", resp.FileURL)
	assert.Equal(t, "abc", resp.Key)
}

func TestRestStoreUpdateBill(t *testing.T) {
	store, _ := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/bills/abc", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var bill Bill
		require.NoError(t, json.NewDecoder(r.Body).Decode(&bill))
		assert.Equal(t, 250, bill.Amount)
		assert.Equal(t, "pending", bill.Status)

		bill.ID = "abc"
		json.NewEncoder(w).Encode(bill)
	})

	bill := &Bill{Amount: 250, Status: BillStatusPending}
	updated, err := store.Bills().Update(context.Background(), &UpdateBillPayload{Data: bill, Selector: "abc"})
	require.NoError(t, err)
	assert.Equal(t, "abc", updated.ID)
}

func TestRestStoreListBills(t *testing.T) {
	store, _ := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/bills", r.URL.Path)
		json.NewEncoder(w).Encode(demoBills())
	})

	bills, err := store.Bills().List(context.Background())
	require.NoError(t, err)
	require.Len(t, bills, 4)
	assert.Equal(t, "Hôtel et logement", bills[0].Type)
}

func TestRestStoreCreateUser(t *testing.T) {
	store, _ := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/users", r.URL.Path)

		var payload CreateUserPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Employee", payload.Type)
		w.WriteHeader(http.StatusCreated)
	})

	err := store.Users().Create(context.Background(), &CreateUserPayload{
		Type: "Employee", Name: "new", Email: "new@test.tld", Password: "secret",
	})
	assert.NoError(t, err)
}

func TestRestStoreMapsHTTPErrors(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{http.StatusNotFound, "Erreur 404"},
		{http.StatusInternalServerError, "Erreur 500"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			store, _ := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})

			_, err := store.Bills().List(context.Background())
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.Code)
		})
	}
}
