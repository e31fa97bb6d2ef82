// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"wanderplan/internal/ai"
	"wanderplan/internal/modules/trip"
	"wanderplan/internal/modules/user"
	"wanderplan/internal/types"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// isValidID guards path parameters before they reach a store lookup.
func isValidID(v string) bool {
	return types.ID(v).Valid()
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writeUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, user.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, user.ErrExists):
		writeError(c, http.StatusConflict, err.Error())
	case errors.Is(err, user.ErrInvalidCredentials):
		writeError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, user.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, user.ErrAvatarTooLarge):
		writeError(c, http.StatusRequestEntityTooLarge, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func writeTripError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, trip.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, trip.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

// writeGenerationError maps the AI error taxonomy onto HTTP statuses the
// wizard can act on: transient quota/overload conditions render a
// "high traffic" message, everything else carries its own message.
func writeGenerationError(c *gin.Context, err error) {
	var apiErr *ai.APIError
	if !errors.As(err, &apiErr) {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	switch apiErr.Code {
	case ai.CodeQuotaExceeded, ai.CodeServerOverloaded:
		writeJSON(c, http.StatusServiceUnavailable, errorResponse{
			Error: "The planning service is experiencing high traffic. Please try again shortly.",
			Code:  apiErr.Code,
		})
	case ai.CodeTimeout:
		writeJSON(c, http.StatusGatewayTimeout, errorResponse{Error: apiErr.Message, Code: apiErr.Code})
	case ai.CodeInvalidResponse, ai.CodeMissingItinerary, ai.CodeNoResponse:
		writeJSON(c, http.StatusBadGateway, errorResponse{Error: apiErr.Message, Code: apiErr.Code})
	default:
		writeJSON(c, http.StatusInternalServerError, errorResponse{Error: apiErr.Message, Code: apiErr.Code})
	}
}
