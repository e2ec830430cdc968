package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func decode(t *testing.T, w *httptest.ResponseRecorder) HTTPError {
	t.Helper()
	var out HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON body %q: %v", w.Body.String(), err)
	}
	return out
}

func TestWrite(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	NotFound(c, "booking_not_found", "booking not found")

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
	out := decode(t, w)
	if out.Code != "booking_not_found" || out.Message != "booking not found" {
		t.Errorf("body = %+v", out)
	}
	if out.Details != "" {
		t.Errorf("Details = %q, want empty", out.Details)
	}
}

func TestWriteErrDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cause := errors.New("pq: connection refused")

	IncludeDetails(true)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	WriteErr(c, http.StatusInternalServerError, "internal_error", "something broke", cause)

	if out := decode(t, w); out.Details != cause.Error() {
		t.Errorf("Details = %q, want %q", out.Details, cause.Error())
	}

	// Production mode must redact the cause.
	IncludeDetails(false)
	defer IncludeDetails(true)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	WriteErr(c, http.StatusInternalServerError, "internal_error", "something broke", cause)

	out := decode(t, w)
	if out.Details != "" {
		t.Errorf("Details leaked in production mode: %q", out.Details)
	}
	if out.Code != "internal_error" || out.Message != "something broke" {
		t.Errorf("body = %+v", out)
	}
}

func TestConflictIsBadRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Conflict(c, "user_already_exists", "email already registered")

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestBusinessError(t *testing.T) {
	err := ErrBusiness("invalid_state")

	if !IsBusiness(err, "invalid_state") {
		t.Error("IsBusiness missed its own code")
	}
	if IsBusiness(err, "other_code") {
		t.Error("IsBusiness matched a different code")
	}
	if IsBusiness(errors.New("plain"), "invalid_state") {
		t.Error("IsBusiness matched a plain error")
	}

	if got := BusinessCode(err); got != "invalid_state" {
		t.Errorf("BusinessCode = %q, want invalid_state", got)
	}
	if got := BusinessCode(errors.New("plain")); got != "" {
		t.Errorf("BusinessCode(plain) = %q, want empty", got)
	}

	wrapped := fmt.Errorf("update booking: %w", err)
	if !IsBusiness(wrapped, "invalid_state") {
		t.Error("IsBusiness missed a wrapped business error")
	}
	if got := BusinessCode(wrapped); got != "invalid_state" {
		t.Errorf("BusinessCode(wrapped) = %q, want invalid_state", got)
	}
}
