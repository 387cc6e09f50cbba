package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestTranslateSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		if got := r.Form.Get("target"); got != "fr" {
			t.Fatalf("unexpected target: %q", got)
		}
		if got := r.Form.Get("q"); got != "Hello" {
			t.Fatalf("unexpected text: %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"translations":[{"translatedText":"Bonjour"}]}}`))
	}))
	defer srv.Close()

	c := NewTranslateClient("test-key", srv.URL, false)
	got, err := c.Translate("Hello", "fr")
	if err != nil {
		t.Fatalf("Translate err: %v", err)
	}
	if got != "Bonjour" {
		t.Fatalf("unexpected translation: %q", got)
	}
}

func TestTranslateProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"quota exceeded"}}`))
	}))
	defer srv.Close()

	c := NewTranslateClient("test-key", srv.URL, false)
	if _, err := c.Translate("Hello", "fr"); err == nil {
		t.Fatal("expected error for provider failure")
	}
}

func TestTranslateMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	c := NewTranslateClient("test-key", srv.URL, false)
	if _, err := c.Translate("Hello", "fr"); err == nil {
		t.Fatal("expected error for malformed response")
	}
}

func TestTranslateEmptyTranslations(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"translations":[]}}`))
	}))
	defer srv.Close()

	c := NewTranslateClient("test-key", srv.URL, false)
	if _, err := c.Translate("Hello", "fr"); err == nil {
		t.Fatal("expected error for empty translations")
	}
}

func TestTranslateDryRunEchoesInput(t *testing.T) {
	c := NewTranslateClient("test-key", "http://localhost:1", true)
	got, err := c.Translate("Hello", "fr")
	if err != nil {
		t.Fatalf("dry-run must not fail: %v", err)
	}
	if got != "Hello" {
		t.Fatalf("dry-run must echo input, got %q", got)
	}
}

func TestTranslateTransportError(t *testing.T) {
	// nothing listens here
	c := NewTranslateClient("test-key", "http://127.0.0.1:1", false)
	if _, err := c.Translate("Hello", "fr"); err == nil {
		t.Fatal("expected transport error")
	}
}
