package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eminentestates/residence-api/internal/core/domain"
	"github.com/eminentestates/residence-api/internal/core/ports"
)

// ResidenceHandler serves the pass-through resources: apartments,
// bookings, announcements and coupons. Each method is one store
// operation serialized as-is.
type ResidenceHandler struct {
	residence ports.ResidenceService
}

func NewResidenceHandler(residence ports.ResidenceService) *ResidenceHandler {
	return &ResidenceHandler{residence: residence}
}

// Apartments handles GET /apartments — public listing.
//
// @Summary      List all apartments
// @Tags         residence
// @Produce      json
// @Success      200  {array}   domain.Document
// @Failure      500  {object}  messageResponse
// @Router       /apartments [get]
func (h *ResidenceHandler) Apartments(c echo.Context) error {
	docs, err := h.residence.Apartments(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, docs)
}

// Bookings handles GET /getBooked.
//
// @Summary      List all booking records
// @Tags         residence
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Document
// @Failure      401  {object}  messageResponse
// @Failure      500  {object}  messageResponse
// @Router       /getBooked [get]
func (h *ResidenceHandler) Bookings(c echo.Context) error {
	docs, err := h.residence.Bookings(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, docs)
}

// AddBooking handles POST /booked.
//
// @Summary      Record a booking
// @Tags         residence
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      map[string]any  true  "Booking document"
// @Success      200   {object}  ports.InsertResult
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /booked [post]
func (h *ResidenceHandler) AddBooking(c echo.Context) error {
	return h.insert(c, h.residence.AddBooking)
}

// Announcements handles GET /getAnnouncement — members only.
//
// @Summary      List all announcements
// @Tags         residence
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Document
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Failure      500  {object}  messageResponse
// @Router       /getAnnouncement [get]
func (h *ResidenceHandler) Announcements(c echo.Context) error {
	docs, err := h.residence.Announcements(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, docs)
}

// AddAnnouncement handles POST /announcement — admin only.
//
// @Summary      Publish an announcement
// @Tags         residence
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      map[string]any  true  "Announcement document"
// @Success      200   {object}  ports.InsertResult
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /announcement [post]
func (h *ResidenceHandler) AddAnnouncement(c echo.Context) error {
	return h.insert(c, h.residence.AddAnnouncement)
}

// Coupons handles GET /allCoupon — admin only.
//
// @Summary      List all coupons
// @Tags         residence
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Document
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Failure      500  {object}  messageResponse
// @Router       /allCoupon [get]
func (h *ResidenceHandler) Coupons(c echo.Context) error {
	docs, err := h.residence.Coupons(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, docs)
}

// AddCoupon handles POST /postCoupon — admin only.
//
// @Summary      Create a discount coupon
// @Tags         residence
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      map[string]any  true  "Coupon document"
// @Success      200   {object}  ports.InsertResult
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /postCoupon [post]
func (h *ResidenceHandler) AddCoupon(c echo.Context) error {
	return h.insert(c, h.residence.AddCoupon)
}

func (h *ResidenceHandler) insert(c echo.Context, op func(ctx context.Context, doc domain.Document) (*ports.InsertResult, error)) error {
	doc := domain.Document{}
	if err := c.Bind(&doc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	res, err := op(c.Request().Context(), doc)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}
