package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"fittrack/backend/internal/config"
	"fittrack/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

func setupAuthTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}

	router := gin.New()
	router.GET("/me", AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userID":    c.MustGet("userID"),
			"userEmail": c.MustGet("userEmail"),
		})
	})
	router.GET("/public", OptionalAuthMiddleware(), func(c *gin.Context) {
		email, _ := c.Get("userEmail")
		c.JSON(http.StatusOK, gin.H{"userEmail": email})
	})
	return router
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	router := setupAuthTest(t)

	token, err := jwt.GenerateToken(7, "juan@test.com")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", w.Code, w.Body.String())
	}
}

func TestAuthMiddlewareRejections(t *testing.T) {
	router := setupAuthTest(t)

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc123"},
		{"garbage token", "Bearer not-a-token"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			router.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401 got %d", w.Code)
			}
		})
	}
}

func TestAuthMiddlewareRejectsWrongSecret(t *testing.T) {
	router := setupAuthTest(t)

	config.AppConfig = &config.Config{JWTSecret: "other-secret"}
	token, err := jwt.GenerateToken(7, "juan@test.com")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", w.Code)
	}
}

func TestOptionalAuthMiddleware(t *testing.T) {
	router := setupAuthTest(t)

	// Without a token the route still serves.
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/public", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 without token got %d", w.Code)
	}

	// With a valid token the identity is attached.
	token, err := jwt.GenerateToken(7, "juan@test.com")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/public", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with token got %d", w.Code)
	}
	if body := w.Body.String(); body == `{"userEmail":null}` {
		t.Fatalf("expected identity attached, got %s", body)
	}

	// A garbage token is ignored rather than rejected.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/public", nil)
	req.Header.Set("Authorization", "Bearer junk")
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with bad token got %d", w.Code)
	}
}
