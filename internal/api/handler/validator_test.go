package handler

import (
	"errors"
	"strings"
	"testing"

	"github.com/nyayasetu/portal-api/internal/core/domain"
)

func TestValidator(t *testing.T) {
	v := NewValidator()

	cases := []struct {
		name    string
		req     signupRequest
		wantErr string
	}{
		{"valid", signupRequest{Email: "a@x.com", Password: "pw"}, ""},
		{"advocate any case", signupRequest{Email: "a@x.com", Password: "pw", Role: "ADVOCATE"}, ""},
		{"missing email", signupRequest{Password: "pw"}, "email is required"},
		{"bad email", signupRequest{Email: "nope", Password: "pw"}, "email must be a valid email"},
		{"missing password", signupRequest{Email: "a@x.com"}, "password is required"},
		{"unknown role", signupRequest{Email: "a@x.com", Password: "pw", Role: "Judge"}, "role must be one of: User, Advocate"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(&tc.req)
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected %q in %q", tc.wantErr, err.Error())
			}
		})
	}
}
