package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestNotFoundDefaults(t *testing.T) {
	e := NotFound("store.locations", "")
	if e.Status != http.StatusNotFound {
		t.Errorf("Status = %d, want 404", e.Status)
	}
	if e.Message != "not found" {
		t.Errorf("Message = %q, want %q", e.Message, "not found")
	}
	if e.Captured {
		t.Error("not-found errors should not be captured")
	}
}

func TestInternalIsCaptured(t *testing.T) {
	cause := errors.New("disk full")
	e := Internal("store.images", cause)
	if !e.Captured {
		t.Error("internal errors must be flagged for capture")
	}
	if !errors.Is(e, cause) {
		t.Error("Unwrap should expose the cause to errors.Is")
	}
	if e.Message == cause.Error() {
		t.Error("user-facing message must not leak the cause")
	}
}

func TestFrom(t *testing.T) {
	domain := Conflict("store.locations", "name already taken", nil)

	tests := []struct {
		name       string
		in         error
		wantStatus int
		wantNil    bool
	}{
		{"nil", nil, 0, true},
		{"passthrough", domain, http.StatusConflict, false},
		{"wrapped domain", fmt.Errorf("listing: %w", domain), http.StatusConflict, false},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := From("server", tt.in)
			if tt.wantNil {
				if got != nil {
					t.Fatalf("From(nil) = %v, want nil", got)
				}
				return
			}
			if got.Status != tt.wantStatus {
				t.Errorf("Status = %d, want %d", got.Status, tt.wantStatus)
			}
		})
	}
}

func TestStatusAndMessageOf(t *testing.T) {
	e := BadRequest("server.locations", "page must be positive")
	wrapped := fmt.Errorf("parse query: %w", e)
	if got := StatusOf(wrapped); got != http.StatusBadRequest {
		t.Errorf("StatusOf = %d, want 400", got)
	}
	if got := MessageOf(wrapped); got != "page must be positive" {
		t.Errorf("MessageOf = %q", got)
	}
	if got := StatusOf(errors.New("raw")); got != http.StatusInternalServerError {
		t.Errorf("StatusOf(raw) = %d, want 500", got)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	if !IsUniqueViolation(errors.New("UNIQUE constraint failed: locations.name")) {
		t.Error("sqlite unique violation not recognized")
	}
	if IsUniqueViolation(errors.New("FOREIGN KEY constraint failed")) {
		t.Error("foreign key violation misclassified as unique")
	}
	if IsUniqueViolation(nil) {
		t.Error("nil misclassified")
	}
}
