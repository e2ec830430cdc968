package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/uvcaspaces/booking-portal/internal/auth"
)

const testSecret = "middleware-test-secret"

func newAuthRouter(t *testing.T) (*gin.Engine, *auth.TokenService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := auth.NewTokenService(testSecret)
	denylist := auth.NewDenylist(nil)

	r := gin.New()
	r.GET("/secured", AuthMiddleware(tokens, denylist), func(c *gin.Context) {
		userID, role := Identity(c)
		c.JSON(http.StatusOK, gin.H{"userID": userID, "role": role})
	})
	return r, tokens
}

func errorCode(t *testing.T, body []byte) string {
	t.Helper()
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("invalid JSON body %q: %v", body, err)
	}
	return payload.Error
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secured", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if code := errorCode(t, w.Body.Bytes()); code != "missing_authorization_header" {
		t.Errorf("error = %q, want missing_authorization_header", code)
	}
}

func TestAuthMiddlewareBadScheme(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secured", nil)
	req.Header.Set("Authorization", "Basic abc123")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if code := errorCode(t, w.Body.Bytes()); code != "invalid_authorization_header" {
		t.Errorf("error = %q, want invalid_authorization_header", code)
	}
}

func TestAuthMiddlewareGarbageToken(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secured", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if code := errorCode(t, w.Body.Bytes()); code != "invalid_token" {
		t.Errorf("error = %q, want invalid_token", code)
	}
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	r, tokens := newAuthRouter(t)

	token, err := tokens.Issue(42, "user")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secured", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}

	var payload struct {
		UserID uint   `json:"userID"`
		Role   string `json:"role"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if payload.UserID != 42 || payload.Role != "user" {
		t.Errorf("identity = (%d, %q), want (42, user)", payload.UserID, payload.Role)
	}
}

func TestAuthorize(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		role     string
		resource string
		action   string
		want     int
	}{
		{"user denied list_all", "user", "booking", "list_all", http.StatusForbidden},
		{"admin allowed list_all", "admin", "booking", "list_all", http.StatusOK},
		{"user allowed create", "user", "booking", "create", http.StatusOK},
		{"user denied service delete", "user", "service", "delete", http.StatusForbidden},
		{"admin allowed user list", "admin", "user", "list", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/x",
				func(c *gin.Context) {
					c.Set(ContextUserID, uint(1))
					c.Set(ContextUserRole, tt.role)
				},
				Authorize(tt.resource, tt.action),
				func(c *gin.Context) { c.Status(http.StatusOK) },
			)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			r.ServeHTTP(w, req)

			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}
