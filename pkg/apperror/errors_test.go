package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestMapErrorToStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", fmt.Errorf("menu: %w", ErrNotFound), http.StatusNotFound},
		{"bad request", ErrBadRequest, http.StatusBadRequest},
		{"invalid input wrapped", InvalidInput("date must be yyyy-MM-dd"), http.StatusBadRequest},
		{"app error code wins", New(http.StatusConflict, "conflict", ErrBadRequest), http.StatusConflict},
		{"unknown", errors.New("connection refused"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MapErrorToStatus(tc.err); got != tc.want {
				t.Errorf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestAppError_Message(t *testing.T) {
	err := InvalidInput("category must be one of TAXI, BOOK, TEAM")
	if err.Error() != "category must be one of TAXI, BOOK, TEAM" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Error("expected errors.Is(err, ErrInvalidInput)")
	}
	if New(http.StatusTeapot, "", nil).Error() != http.StatusText(http.StatusTeapot) {
		t.Error("expected status text fallback")
	}
}
