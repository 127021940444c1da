package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/arslanameen227/Malik-MoneyFlow/internal/errs"
	"github.com/arslanameen227/Malik-MoneyFlow/internal/models"
)

func TestSelectBuildsEqualityFilters(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		if r.URL.Path != "/rest/v1/accounts" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("apikey") != "key-1" {
			t.Errorf("missing apikey header")
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]models.Account{{ID: models.RemoteID("a1"), Name: "Till"}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "key-1")

	var accounts []models.Account
	filters := map[string]string{"user_id": "uid-1", "is_active": "true"}
	if err := c.Select(context.Background(), CollAccounts, filters, "created_at", true, &accounts); err != nil {
		t.Fatalf("Select returned error: %v", err)
	}

	if gotQuery.Get("user_id") != "eq.uid-1" || gotQuery.Get("is_active") != "eq.true" {
		t.Fatalf("unexpected filters: %v", gotQuery)
	}
	if gotQuery.Get("order") != "created_at.desc" {
		t.Fatalf("unexpected order param: %v", gotQuery.Get("order"))
	}
	if len(accounts) != 1 || accounts[0].Name != "Till" {
		t.Fatalf("unexpected decode: %#v", accounts)
	}
}

func TestInsertCarriesBearerTokenAndDecodesRow(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-1" {
			t.Errorf("missing bearer token, got %q", r.Header.Get("Authorization"))
		}
		if r.Header.Get("Prefer") != "return=representation" {
			t.Errorf("missing Prefer header")
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode([]models.Customer{{ID: models.RemoteID("srv-9"), Name: "Ali"}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "key-1")
	c.SetToken("tok-1")

	var rows []models.Customer
	err := c.Insert(context.Background(), CollCustomers, map[string]string{"name": "Ali"}, &rows)
	if err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}
	if len(rows) != 1 || rows[0].ID != models.RemoteID("srv-9") {
		t.Fatalf("unexpected rows: %#v", rows)
	}
}

func TestStatusMapping(t *testing.T) {
	status := http.StatusOK
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "key-1")
	ctx := context.Background()

	status = http.StatusConflict
	err := c.Delete(ctx, CollTransactions, "t1")
	if _, ok := err.(*errs.RemoteRejectedError); !ok {
		t.Fatalf("409: expected RemoteRejectedError, got %T", err)
	}

	status = http.StatusUnauthorized
	err = c.Delete(ctx, CollTransactions, "t1")
	if _, ok := err.(*errs.UnauthorizedError); !ok {
		t.Fatalf("401: expected UnauthorizedError, got %T", err)
	}

	status = http.StatusBadGateway
	err = c.Delete(ctx, CollTransactions, "t1")
	if _, ok := err.(*errs.RemoteUnavailableError); !ok {
		t.Fatalf("502: expected RemoteUnavailableError, got %T", err)
	}
}

func TestNetworkFailureIsRemoteUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	c := NewClient(srv.URL, "key-1")
	err := c.Health(context.Background())
	if _, ok := err.(*errs.RemoteUnavailableError); !ok {
		t.Fatalf("expected RemoteUnavailableError, got %T: %v", err, err)
	}
}

func TestSignInParsesSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/token" || r.URL.Query().Get("grant_type") != "password" {
			t.Errorf("unexpected request %s %s", r.URL.Path, r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "at-1",
			"refresh_token": "rt-1",
			"expires_in":    3600,
			"user":          map[string]string{"id": "uid-1", "email": "op@shop.pk"},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "key-1")
	sess, err := c.SignIn(context.Background(), "op@shop.pk", "secret")
	if err != nil {
		t.Fatalf("SignIn returned error: %v", err)
	}
	if sess.UID != "uid-1" || sess.AccessToken != "at-1" || sess.RefreshToken != "rt-1" {
		t.Fatalf("unexpected session: %#v", sess)
	}
	if sess.ExpiresAt.IsZero() {
		t.Fatal("expected expiry to be set")
	}
}
