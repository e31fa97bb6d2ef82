// README: Account handlers (register/login/avatar/profile).
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"wanderplan/internal/modules/user"
)

type AuthHandler struct {
	users *user.Service
}

func NewAuthHandler(users *user.Service) *AuthHandler {
	return &AuthHandler{users: users}
}

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type avatarReq struct {
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

type profileResponse struct {
	*user.Profile
	Rank user.Rank `json:"rank"`
}

func toProfileResponse(p *user.Profile) profileResponse {
	return profileResponse{Profile: p, Rank: user.RankFor(p.TripsCount)}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	p, err := h.users.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeUserError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, toProfileResponse(p))
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	p, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeUserError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, toProfileResponse(p))
}

// Profile handles GET /api/users/:email.
func (h *AuthHandler) Profile(c *gin.Context) {
	email := strings.TrimSpace(c.Param("email"))
	if email == "" {
		writeError(c, http.StatusBadRequest, "missing email")
		return
	}
	p, err := h.users.Get(c.Request.Context(), email)
	if err != nil {
		writeUserError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, toProfileResponse(p))
}

// UpdateAvatar handles PUT /api/users/avatar.
func (h *AuthHandler) UpdateAvatar(c *gin.Context) {
	var req avatarReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Avatar == "" {
		writeError(c, http.StatusBadRequest, "missing email or avatar")
		return
	}
	p, err := h.users.UpdateAvatar(c.Request.Context(), req.Email, req.Avatar)
	if err != nil {
		writeUserError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, toProfileResponse(p))
}
