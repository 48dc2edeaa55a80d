package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eminentestates/residence-api/internal/core/domain"
	"github.com/eminentestates/residence-api/internal/core/ports"
)

// AgreementHandler handles rental agreement submission and review.
type AgreementHandler struct {
	agreements ports.AgreementService
}

func NewAgreementHandler(agreements ports.AgreementService) *AgreementHandler {
	return &AgreementHandler{agreements: agreements}
}

// Submit handles POST /agreement.
//
// @Summary      Submit a rental agreement request
// @Tags         agreements
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      map[string]any  true  "Agreement document"
// @Success      200   {object}  ports.InsertResult
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /agreement [post]
func (h *AgreementHandler) Submit(c echo.Context) error {
	doc := domain.Document{}
	if err := c.Bind(&doc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	res, err := h.agreements.Submit(c.Request().Context(), doc)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// List handles GET /getAgreement — all agreements, admin only.
//
// @Summary      List all agreement requests
// @Tags         agreements
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Document
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Failure      500  {object}  messageResponse
// @Router       /getAgreement [get]
func (h *AgreementHandler) List(c echo.Context) error {
	docs, err := h.agreements.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, docs)
}

// GetByEmail handles GET /getAgreement/:email — the single agreement
// submitted under the given user email. An absent agreement responds
// with a null body, not a 404.
//
// @Summary      Get the agreement submitted by a user
// @Tags         agreements
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string  true  "Submitter's email"
// @Success      200    {object}  domain.Document
// @Failure      401    {object}  messageResponse
// @Failure      500    {object}  messageResponse
// @Router       /getAgreement/{email} [get]
func (h *AgreementHandler) GetByEmail(c echo.Context) error {
	doc, err := h.agreements.FindByUserEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, doc)
}

// Decide handles PATCH /updateAgreement/:id — sets status and the
// role the tenant receives on acceptance.
//
// @Summary      Decide an agreement request
// @Tags         agreements
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                  true  "Agreement document id"
// @Param        body  body      updateAgreementRequest  true  "Decision"
// @Success      200   {object}  ports.UpdateResult
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /updateAgreement/{id} [patch]
func (h *AgreementHandler) Decide(c echo.Context) error {
	var req updateAgreementRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res, err := h.agreements.Decide(
		c.Request().Context(),
		c.Param("id"),
		domain.AgreementStatus(req.Status),
		domain.ParseRole(req.UserRole),
	)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}
