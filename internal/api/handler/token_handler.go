package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eminentestates/residence-api/internal/api/metrics"
	"github.com/eminentestates/residence-api/internal/core/ports"
)

// TokenHandler issues signed credentials.
type TokenHandler struct {
	tokens ports.TokenService
}

func NewTokenHandler(tokens ports.TokenService) *TokenHandler {
	return &TokenHandler{tokens: tokens}
}

// Issue handles POST /jwt.
//
// The claim set is whatever the caller posts (typically {"email": …});
// exp and iat are stamped by the service with a fixed one-hour expiry.
//
// @Summary      Issue a signed credential
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      map[string]any  true  "Claim set, typically an email"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  messageResponse
// @Failure      429   {object}  messageResponse
// @Router       /jwt [post]
func (h *TokenHandler) Issue(c echo.Context) error {
	claims := map[string]any{}
	if err := c.Bind(&claims); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	token, err := h.tokens.Issue(claims)
	if err != nil {
		return err
	}

	metrics.TokensIssuedTotal.Inc()
	return c.JSON(http.StatusOK, tokenResponse{Token: token})
}
