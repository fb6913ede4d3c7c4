package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusCodeMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		errType ErrorType
		want    int
	}{
		{AuthError, http.StatusUnauthorized},
		{ForbiddenError, http.StatusForbidden},
		{NotFoundError, http.StatusNotFound},
		{ValidationError, http.StatusBadRequest},
		{BadRequestError, http.StatusBadRequest},
		{ConflictError, http.StatusConflict},
		{DatabaseError, http.StatusInternalServerError},
		{ConfigError, http.StatusInternalServerError},
		{InternalError, http.StatusInternalServerError},
		{UnknownError, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := NewAppError(tc.errType, "msg", nil).StatusCode(); got != tc.want {
			t.Errorf("type %d: status = %d, want %d", tc.errType, got, tc.want)
		}
	}
}

func TestUnwrapChain(t *testing.T) {
	t.Parallel()

	cause := errors.New("root cause")
	err := NewDatabaseError("query failed", cause)

	if !errors.Is(err, cause) {
		t.Fatal("errors.Is must see through AppError")
	}
	wrapped := fmt.Errorf("handler: %w", err)
	appErr, ok := FromError(wrapped)
	if !ok {
		t.Fatal("FromError must find an AppError anywhere in the chain")
	}
	if appErr.Message != "query failed" {
		t.Errorf("Message = %q, want %q", appErr.Message, "query failed")
	}
}

// TestToResponseHidesCause pins down that the wrapped cause never reaches a
// client payload.
func TestToResponseHidesCause(t *testing.T) {
	t.Parallel()

	err := NewDatabaseError("failed to create user", errors.New(`pq: relation "users" does not exist`))
	resp := err.ToResponse()
	if resp.Error != "failed to create user" {
		t.Errorf("response = %q, want the client-safe message only", resp.Error)
	}
}

func TestFromError_NonAppError(t *testing.T) {
	t.Parallel()

	if _, ok := FromError(errors.New("plain")); ok {
		t.Fatal("plain errors must not convert")
	}
	if _, ok := FromError(nil); ok {
		t.Fatal("nil must not convert")
	}
}

func TestPredicates(t *testing.T) {
	t.Parallel()

	if !IsNotFound(NewNotFoundError("x", nil)) || IsNotFound(NewAuthError("x", nil)) {
		t.Error("IsNotFound misclassifies")
	}
	if !IsAuthError(NewAuthError("x", nil)) || IsAuthError(nil) {
		t.Error("IsAuthError misclassifies")
	}
	if !IsForbidden(NewForbiddenError("x", nil)) || IsForbidden(NewNotFoundError("x", nil)) {
		t.Error("IsForbidden misclassifies")
	}
	if !IsConflict(NewConflictError("x", nil)) || IsConflict(NewForbiddenError("x", nil)) {
		t.Error("IsConflict misclassifies")
	}
	if !IsValidationError(NewValidationError("x", nil)) || IsValidationError(NewBadRequestError("x", nil)) {
		t.Error("IsValidationError misclassifies")
	}
}
