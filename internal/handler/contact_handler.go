package handler

import (
	"net/http"
	"strconv"

	"github.com/debaren/debaren-backend/internal/dto"
	"github.com/debaren/debaren-backend/internal/models"
	"github.com/debaren/debaren-backend/internal/repository"
	"github.com/debaren/debaren-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type ContactHandler struct {
	svc         service.ContactService
	contactRepo repository.ContactMessageRepository
}

func NewContactHandler(svc service.ContactService, contactRepo repository.ContactMessageRepository) *ContactHandler {
	return &ContactHandler{svc: svc, contactRepo: contactRepo}
}

func (h *ContactHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/contact", h.SubmitContactForm)

	// Operator surface for reviewing submissions.
	msgs := g.Group("/contact-messages")
	msgs.GET("", h.ListMessages)
	msgs.POST("", h.CreateMessage)
	msgs.GET("/:id", h.GetMessage)
	msgs.PUT("/:id", h.UpdateMessage)
	msgs.DELETE("/:id", h.DeleteMessage)
}

func (h *ContactHandler) SubmitContactForm(c echo.Context) error {
	var req dto.ContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if _, err := h.svc.SubmitMessage(c.Request().Context(), &req); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.ContactResponse{Success: true, Detail: "Message sent!"})
}

func (h *ContactHandler) ListMessages(c echo.Context) error {
	msgs, err := h.contactRepo.FindAll(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, msgs)
}

// CreateMessage records a message directly, without the notification
// mails the public contact form triggers.
func (h *ContactHandler) CreateMessage(c echo.Context) error {
	var req dto.ContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	msg := models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}
	if err := h.contactRepo.Create(c.Request().Context(), &msg); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, msg)
}

func (h *ContactHandler) GetMessage(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid message id")
	}

	msg, err := h.contactRepo.FindByID(c.Request().Context(), uint(id))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "message not found")
	}
	return c.JSON(http.StatusOK, msg)
}

func (h *ContactHandler) UpdateMessage(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid message id")
	}

	msg, err := h.contactRepo.FindByID(c.Request().Context(), uint(id))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "message not found")
	}

	var req dto.ContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	msg.Name = req.Name
	msg.Email = req.Email
	msg.Message = req.Message
	if err := h.contactRepo.Save(c.Request().Context(), msg); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, msg)
}

func (h *ContactHandler) DeleteMessage(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid message id")
	}

	if err := h.contactRepo.Delete(c.Request().Context(), uint(id)); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "message not found")
	}
	return c.NoContent(http.StatusNoContent)
}
