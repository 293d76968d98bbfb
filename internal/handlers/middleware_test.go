package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"newsroom/internal/models"
	"newsroom/internal/service"

	"github.com/gin-gonic/gin"
)

// minimal router wiring only the middleware + a protected endpoint
func newGateOnlyRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(s, nil)
	r.GET("/secure", h.authMiddleware, func(c *gin.Context) {
		p, _ := getPrincipal(c)
		c.JSON(http.StatusOK, gin.H{"ok": true, "userId": p.UserID, "role": p.Role})
	})
	return r
}

func TestAuthGate_Errors(t *testing.T) {
	type want struct {
		code   int
		errMsg string
	}
	cases := []struct {
		name   string
		header string
		want   want
	}{
		{
			name:   "missing header",
			header: "",
			want:   want{code: http.StatusUnauthorized, errMsg: "missing Authorization header"},
		},
		{
			name:   "invalid scheme",
			header: "Token abc",
			want:   want{code: http.StatusUnauthorized, errMsg: "invalid Authorization header format"},
		},
		{
			name:   "bearer without token",
			header: "Bearer",
			want:   want{code: http.StatusUnauthorized, errMsg: "invalid Authorization header format"},
		},
		{
			name:   "expired/invalid token",
			header: "Bearer expired",
			want:   want{code: http.StatusUnauthorized, errMsg: "invalid or expired token"},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			auth := &mockAuth{parseErr: service.ErrInvalidToken}
			r := newGateOnlyRouter(&service.Service{Authorization: auth})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/secure", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			r.ServeHTTP(w, req)

			if w.Code != tc.want.code {
				t.Fatalf("status=%d, want %d", w.Code, tc.want.code)
			}
			var m map[string]any
			_ = json.Unmarshal(w.Body.Bytes(), &m)
			if m["error"] != tc.want.errMsg {
				t.Fatalf("error=%q, want %q", m["error"], tc.want.errMsg)
			}
		})
	}
}

func TestAuthGate_ValidTokenAttachesPrincipal(t *testing.T) {
	auth := &mockAuth{parsePrin: service.Principal{UserID: 3, Role: models.RoleEditor}}
	r := newGateOnlyRouter(&service.Service{Authorization: auth})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header = authHeader("valid-token")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	var m map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if int(m["userId"].(float64)) != 3 || m["role"] != models.RoleEditor {
		t.Fatalf("unexpected principal payload: %v", m)
	}
	if auth.lastParseToken != "valid-token" {
		t.Fatalf("expected raw token forwarded, got %q", auth.lastParseToken)
	}
}

func TestRoleGate(t *testing.T) {
	cases := []struct {
		name     string
		role     string
		method   string
		path     string
		wantCode int
	}{
		// users management is Admin-only
		{"writer cannot list users", models.RoleWriter, http.MethodGet, "/api/admin/users", http.StatusForbidden},
		{"editor cannot delete users", models.RoleEditor, http.MethodDelete, "/api/admin/users/1", http.StatusForbidden},
		{"admin lists users", models.RoleAdmin, http.MethodGet, "/api/admin/users", http.StatusOK},
		// content deletion is Admin-only
		{"writer cannot delete posts", models.RoleWriter, http.MethodDelete, "/api/admin/news/1", http.StatusForbidden},
		{"admin deletes posts", models.RoleAdmin, http.MethodDelete, "/api/admin/news/1", http.StatusOK},
		// moderation admits editors
		{"editor lists comments", models.RoleEditor, http.MethodGet, "/api/admin/comments", http.StatusOK},
		{"contributor cannot list comments", models.RoleContributor, http.MethodGet, "/api/admin/comments", http.StatusForbidden},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			auth := &mockAuth{parsePrin: service.Principal{UserID: 3, Role: tc.role}}
			s := &service.Service{
				Authorization: auth,
				Posts:         &mockPosts{},
				Comments:      &mockComments{},
				Users:         &mockUsers{},
			}
			r := newTestRouter(s)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(tc.method, tc.path, nil)
			req.Header = authHeader("valid-token")
			r.ServeHTTP(w, req)

			if w.Code != tc.wantCode {
				t.Fatalf("status=%d, want %d, body=%s", w.Code, tc.wantCode, w.Body.String())
			}
		})
	}
}

func TestAdminRoutes_RequireToken(t *testing.T) {
	s := &service.Service{
		Authorization: &mockAuth{parseErr: service.ErrInvalidToken},
		Posts:         &mockPosts{},
	}
	r := newTestRouter(s)

	// no header at all
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/admin/news/1", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}

	// expired/invalid token
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/api/admin/news/1", nil)
	req.Header = authHeader("stale")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with invalid token, got %d", w.Code)
	}
}

func TestLoginLimiter_BurstThenThrottled(t *testing.T) {
	l := newLoginLimiter()
	now := time.Now()

	for i := 0; i < loginBurst; i++ {
		if !l.allow("203.0.113.1", now) {
			t.Fatalf("attempt %d within burst should be allowed", i+1)
		}
	}
	if l.allow("203.0.113.1", now) {
		t.Fatal("attempt beyond burst should be throttled")
	}
	// Other clients get their own bucket.
	if !l.allow("203.0.113.2", now) {
		t.Fatal("a different client must not share the exhausted bucket")
	}
}

func TestLoginLimiter_SweepDropsIdleBuckets(t *testing.T) {
	l := newLoginLimiter()
	now := time.Now()

	l.allow("203.0.113.1", now)
	l.allow("203.0.113.2", now)

	l.mu.Lock()
	l.buckets["203.0.113.1"].ts = now.Add(-loginBucketTTL - time.Minute)
	l.lastSweep = now.Add(-loginSweepEvery - time.Second)
	l.mu.Unlock()

	// Any later attempt triggers the sweep inline.
	l.allow("203.0.113.3", now)

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.buckets["203.0.113.1"]; ok {
		t.Fatal("idle bucket should have been swept")
	}
	if _, ok := l.buckets["203.0.113.2"]; !ok {
		t.Fatal("recently used bucket must survive the sweep")
	}
}
