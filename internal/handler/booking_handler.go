package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/debaren/debaren-backend/internal/dto"
	"github.com/debaren/debaren-backend/internal/models"
	"github.com/debaren/debaren-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) RegisterRoutes(g *echo.Group) {
	bookings := g.Group("/bookings")
	bookings.GET("", h.ListBookings)
	bookings.POST("", h.CreateBooking)
	bookings.GET("/:id", h.GetBooking)
	bookings.PUT("/:id", h.UpdateBooking)
	bookings.DELETE("/:id", h.DeleteBooking)
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	booking, err := h.svc.CreateBooking(c.Request().Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrVenueNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrMissingStartDate):
			return echo.NewHTTPError(http.StatusBadRequest, dto.FieldErrors{"start_date": err.Error()})
		case errors.Is(err, service.ErrInvalidDateRange):
			return echo.NewHTTPError(http.StatusBadRequest, dto.FieldErrors{"end_date": err.Error()})
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) GetBooking(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid booking id")
	}

	booking, err := h.svc.GetBooking(c.Request().Context(), uint(id))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "booking not found")
	}

	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) ListBookings(c echo.Context) error {
	if v := c.QueryParam("venue"); v != "" {
		venueID, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid venue id")
		}
		bookings, err := h.svc.ListVenueBookings(c.Request().Context(), uint(venueID))
		if err != nil {
			if errors.Is(err, service.ErrVenueNotFound) {
				return echo.NewHTTPError(http.StatusNotFound, err.Error())
			}
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		resp := make([]dto.BookingResponse, len(bookings))
		for i, b := range bookings {
			resp[i] = dto.ToBookingResponse(&b)
		}
		return c.JSON(http.StatusOK, resp)
	}

	var status *models.BookingStatus
	if s := c.QueryParam("status"); s != "" {
		bs := models.BookingStatus(s)
		if !models.ValidBookingStatus(bs) {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid status")
		}
		status = &bs
	}

	bookings, err := h.svc.ListBookings(c.Request().Context(), status)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.BookingResponse, len(bookings))
	for i, b := range bookings {
		resp[i] = dto.ToBookingResponse(&b)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) UpdateBooking(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid booking id")
	}

	var req dto.UpdateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	booking, err := h.svc.UpdateBooking(c.Request().Context(), uint(id), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookingNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidStatus):
			return echo.NewHTTPError(http.StatusBadRequest, dto.FieldErrors{"status": err.Error()})
		case errors.Is(err, service.ErrInvalidDateRange):
			return echo.NewHTTPError(http.StatusBadRequest, dto.FieldErrors{"end_date": err.Error()})
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) DeleteBooking(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid booking id")
	}

	if err := h.svc.DeleteBooking(c.Request().Context(), uint(id)); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "booking not found")
	}

	return c.NoContent(http.StatusNoContent)
}
