package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Siddaarth-Babu/MOOC/internal/config"
	"github.com/Siddaarth-Babu/MOOC/internal/model"
	"github.com/Siddaarth-Babu/MOOC/internal/response"
	"github.com/Siddaarth-Babu/MOOC/internal/service"
	"github.com/gin-gonic/gin"
)

// stubResolver returns a fixed principal or error per role, standing in for
// the database-backed resolver.
type stubResolver struct {
	principal model.Principal
	err       error
}

func (s *stubResolver) Resolve(_ context.Context, _ string, _ model.Role) (model.Principal, error) {
	return s.principal, s.err
}

func newGateRouter(t *testing.T, auth *service.AuthService, resolver ProfileResolver, role model.Role) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireRole(auth, resolver, role), func(c *gin.Context) {
		principal := GetPrincipal(c)
		claims := GetClaims(c)
		c.JSON(http.StatusOK, gin.H{
			"profile_id": principal.ProfileID(),
			"subject":    claims.Subject,
		})
	})
	return r
}

func doGet(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errCode(t *testing.T, w *httptest.ResponseRecorder) response.ErrCode {
	t.Helper()
	var body struct {
		Error *response.ErrorBody `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Error == nil {
		t.Fatal("expected error body")
	}
	return body.Error.Code
}

func testAuth(ttl time.Duration) *service.AuthService {
	return service.NewAuthService(&config.Config{JWTSecret: "gate-test-secret", TokenTTL: ttl})
}

func TestRequireRoleNoToken(t *testing.T) {
	r := newGateRouter(t, testAuth(time.Minute), &stubResolver{}, model.RoleStudent)

	w := doGet(r, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if code := errCode(t, w); code != response.ErrTokenRequired {
		t.Errorf("error code = %q, want TOKEN_REQUIRED", code)
	}
}

func TestRequireRoleForgedToken(t *testing.T) {
	r := newGateRouter(t, testAuth(time.Minute), &stubResolver{}, model.RoleStudent)

	// Signed with a different secret.
	forger := service.NewAuthService(&config.Config{JWTSecret: "attacker", TokenTTL: time.Minute})
	token, err := forger.IssueToken("mallory@example.com", model.RoleStudent, 1)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	w := doGet(r, token)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if code := errCode(t, w); code != response.ErrTokenInvalid {
		t.Errorf("error code = %q, want TOKEN_INVALID", code)
	}
}

func TestRequireRoleExpiredToken(t *testing.T) {
	auth := testAuth(time.Minute)
	r := newGateRouter(t, auth, &stubResolver{}, model.RoleStudent)

	expired := testAuth(-time.Minute)
	token, err := expired.IssueToken("late@example.com", model.RoleStudent, 1)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	w := doGet(r, token)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if code := errCode(t, w); code != response.ErrTokenExpired {
		t.Errorf("error code = %q, want TOKEN_EXPIRED", code)
	}
}

func TestRequireRoleWrongRole(t *testing.T) {
	auth := testAuth(time.Minute)
	r := newGateRouter(t, auth, &stubResolver{err: service.ErrRoleMismatch}, model.RoleAdmin)

	token, err := auth.IssueToken("student@example.com", model.RoleStudent, 1)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	w := doGet(r, token)
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
	if code := errCode(t, w); code != response.ErrForbiddenRole {
		t.Errorf("error code = %q, want FORBIDDEN_ROLE", code)
	}
}

func TestRequireRoleProfileMissing(t *testing.T) {
	auth := testAuth(time.Minute)
	r := newGateRouter(t, auth, &stubResolver{err: service.ErrProfileMissing}, model.RoleStudent)

	token, err := auth.IssueToken("orphan@example.com", model.RoleStudent, 1)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	// A valid token whose credential has no profile is a server-side
	// integrity failure, not a client auth failure.
	w := doGet(r, token)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if code := errCode(t, w); code != response.ErrProfileMissing {
		t.Errorf("error code = %q, want PROFILE_MISSING", code)
	}
}

func TestRequireRoleHappyPath(t *testing.T) {
	auth := testAuth(time.Minute)
	student := &model.Student{ID: 9, Name: "Dana", Email: "dana@example.com"}
	r := newGateRouter(t, auth, &stubResolver{principal: student}, model.RoleStudent)

	token, err := auth.IssueToken("dana@example.com", model.RoleStudent, 9)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	w := doGet(r, token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var body struct {
		ProfileID int    `json:"profile_id"`
		Subject   string `json:"subject"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.ProfileID != 9 {
		t.Errorf("profile_id = %d, want 9", body.ProfileID)
	}
	if body.Subject != "dana@example.com" {
		t.Errorf("subject = %q, want dana@example.com", body.Subject)
	}
}

func TestExtractBearerMalformedHeader(t *testing.T) {
	r := newGateRouter(t, testAuth(time.Minute), &stubResolver{}, model.RoleStudent)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if code := errCode(t, w); code != response.ErrTokenRequired {
		t.Errorf("error code = %q, want TOKEN_REQUIRED", code)
	}
}
