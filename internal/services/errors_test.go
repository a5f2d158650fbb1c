package services

import (
	"errors"
	"strings"
	"testing"
)

func TestWrapTagsMarker(t *testing.T) {
	base := errors.New("connection refused")
	err := Wrap(ErrTransport, "resolver", "search", "query failed", base)

	if !errors.Is(err, ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped base error, got %v", err)
	}
	if !strings.Contains(err.Error(), "resolver: search: query failed") {
		t.Errorf("missing detail in %q", err.Error())
	}
}

func TestWrapDefaultsMarker(t *testing.T) {
	err := Wrap(nil, "resolver", "", "", nil)
	if !errors.Is(err, ErrTransport) {
		t.Fatalf("nil marker should default to ErrTransport, got %v", err)
	}
}

func TestWrapEmptyDetail(t *testing.T) {
	err := Wrap(ErrNotFound, "", "", "", nil)
	if !strings.Contains(err.Error(), "service failure") {
		t.Errorf("expected placeholder detail, got %q", err.Error())
	}
}

func TestRoutesToReview(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"not found", Wrap(ErrNotFound, "resolver", "search", "no candidates", nil), true},
		{"transport", Wrap(ErrTransport, "resolver", "search", "status 503", nil), true},
		{"configuration", Wrap(ErrConfiguration, "config", "load", "bad value", nil), false},
		{"plain", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RoutesToReview(tt.err); got != tt.want {
				t.Errorf("RoutesToReview() = %v, want %v", got, tt.want)
			}
		})
	}
}
