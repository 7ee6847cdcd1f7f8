package client

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "ordersvc/internal/errors"
)

func TestUserClient_FetchUser_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/users/7" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"success":true,"data":{"id":7,"name":"John Doe","email":"john@example.com"}}`)
	}))
	defer srv.Close()

	c := NewUserClient(srv.URL, time.Second)

	details, err := c.FetchUser(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `{"id":7,"name":"John Doe","email":"john@example.com"}`
	if string(details) != want {
		t.Errorf("expected %s, got %s", want, string(details))
	}
}

func TestUserClient_FetchUser_UpstreamNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"success":false,"message":"User not found"}`)
	}))
	defer srv.Close()

	c := NewUserClient(srv.URL, time.Second)

	_, err := c.FetchUser(context.Background(), 99)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if _, ok := apperrors.IsUpstreamNotFoundError(err); !ok {
		t.Errorf("expected UpstreamNotFoundError, got %T: %v", err, err)
	}
}

func TestUserClient_FetchUser_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewUserClient(srv.URL, time.Second)

	_, err := c.FetchUser(context.Background(), 1)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if _, ok := apperrors.IsDependencyError(err); !ok {
		t.Errorf("expected DependencyError, got %T: %v", err, err)
	}
}

func TestUserClient_FetchUser_MalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `not json at all`)
	}))
	defer srv.Close()

	c := NewUserClient(srv.URL, time.Second)

	_, err := c.FetchUser(context.Background(), 1)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if _, ok := apperrors.IsDependencyError(err); !ok {
		t.Errorf("expected DependencyError, got %T: %v", err, err)
	}
}

func TestUserClient_FetchUser_MissingData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"success":true}`)
	}))
	defer srv.Close()

	c := NewUserClient(srv.URL, time.Second)

	_, err := c.FetchUser(context.Background(), 1)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if _, ok := apperrors.IsDependencyError(err); !ok {
		t.Errorf("expected DependencyError, got %T: %v", err, err)
	}
}

func TestUserClient_FetchUser_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		fmt.Fprint(w, `{"success":true,"data":{}}`)
	}))
	defer srv.Close()

	c := NewUserClient(srv.URL, 20*time.Millisecond)

	_, err := c.FetchUser(context.Background(), 1)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if _, ok := apperrors.IsDependencyError(err); !ok {
		t.Errorf("expected DependencyError, got %T: %v", err, err)
	}
}

func TestUserClient_FetchUser_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		fmt.Fprint(w, `{"success":true,"data":{}}`)
	}))
	defer srv.Close()

	c := NewUserClient(srv.URL, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.FetchUser(ctx, 1)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if _, ok := apperrors.IsDependencyError(err); !ok {
		t.Errorf("expected DependencyError, got %T: %v", err, err)
	}
}

func TestProductClient_FetchProduct_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/products/3" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		fmt.Fprint(w, `{"success":true,"data":{"id":3,"name":"Laptop","price":1299.99}}`)
	}))
	defer srv.Close()

	c := NewProductClient(srv.URL, time.Second)

	details, err := c.FetchProduct(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `{"id":3,"name":"Laptop","price":1299.99}`
	if string(details) != want {
		t.Errorf("expected %s, got %s", want, string(details))
	}
}

func TestProductClient_FetchProduct_UpstreamNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewProductClient(srv.URL, time.Second)

	_, err := c.FetchProduct(context.Background(), 404)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if _, ok := apperrors.IsUpstreamNotFoundError(err); !ok {
		t.Errorf("expected UpstreamNotFoundError, got %T: %v", err, err)
	}
}

func TestProductClient_FetchProduct_ConnectionRefused(t *testing.T) {
	// Point at a server that is already closed.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewProductClient(srv.URL, time.Second)

	_, err := c.FetchProduct(context.Background(), 1)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if _, ok := apperrors.IsDependencyError(err); !ok {
		t.Errorf("expected DependencyError, got %T: %v", err, err)
	}
}
