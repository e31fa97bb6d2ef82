// README: Handler tests for account request validation.
package handlers_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"wanderplan/internal/http/handlers"
	"wanderplan/internal/modules/user"
)

// buildAuthRouter wires the auth handler over user.NewService(nil);
// these tests exercise only paths that fail validation before the
// store is touched.
func buildAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handlers.NewAuthHandler(user.NewService(nil))
	r.POST("/api/auth/register", h.Register)
	r.PUT("/api/users/avatar", h.UpdateAvatar)
	return r
}

func TestRegister_MissingFields(t *testing.T) {
	r := buildAuthRouter()
	w := doRequest(r, http.MethodPost, "/api/auth/register", map[string]any{
		"name":  "Adeola",
		"email": "adeola@example.com",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRegister_BadJSON(t *testing.T) {
	r := buildAuthRouter()
	w := doRawRequest(r, http.MethodPost, "/api/auth/register", "{broken")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestUpdateAvatar_TooLarge(t *testing.T) {
	r := buildAuthRouter()
	w := doRequest(r, http.MethodPut, "/api/users/avatar", map[string]any{
		"email":  "adeola@example.com",
		"avatar": strings.Repeat("A", user.MaxAvatarSize+1),
	})
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("expected 413, got %d: %s", w.Code, w.Body.String())
	}
}

func TestUpdateAvatar_MissingEmail(t *testing.T) {
	r := buildAuthRouter()
	w := doRequest(r, http.MethodPut, "/api/users/avatar", map[string]any{
		"avatar": "aGVsbG8=",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
