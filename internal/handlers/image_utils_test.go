package handlers

import (
	"crypto/tls"
	"net/http/httptest"
	"testing"
)

func TestResolvePhotoURLsMixedInput(t *testing.T) {
	req := httptest.NewRequest("GET", "http://krisha.local:5000/ads", nil)
	photos := []string{
		"a.jpg",
		"http://old-host/static/photos/b.jpg",
		`"c.jpg"`,
		`https://cdn.example.com/static/photos/d.jpg"`,
		"",
	}

	got := resolvePhotoURLs(req, photos)
	want := []string{
		"http://krisha.local:5000/static/photos/a.jpg",
		"http://krisha.local:5000/static/photos/b.jpg",
		"http://krisha.local:5000/static/photos/c.jpg",
		"http://krisha.local:5000/static/photos/d.jpg",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d urls, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("url %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestRequestBaseURLScheme(t *testing.T) {
	req := httptest.NewRequest("GET", "http://api.krisha.kz/ads", nil)
	req.Header.Set("X-Forwarded-Proto", "https, http")
	if got := requestBaseURL(req); got != "https://api.krisha.kz" {
		t.Fatalf("unexpected base url %q", got)
	}

	req = httptest.NewRequest("GET", "http://api.krisha.kz/ads", nil)
	req.TLS = &tls.ConnectionState{}
	if got := requestBaseURL(req); got != "https://api.krisha.kz" {
		t.Fatalf("unexpected base url with TLS %q", got)
	}
}

func TestResolvePhotoURLsEmpty(t *testing.T) {
	req := httptest.NewRequest("GET", "/ads", nil)
	got := resolvePhotoURLs(req, nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}
