package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/debaren/debaren-backend/internal/dto"
	"github.com/debaren/debaren-backend/internal/models"
	"github.com/debaren/debaren-backend/internal/repository"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// ContentHandler serves the marketing surfaces: about page, hero
// section and footer social links. These are thin enough that the
// handler talks to the repository directly.
type ContentHandler struct {
	contentRepo repository.ContentRepository
}

func NewContentHandler(contentRepo repository.ContentRepository) *ContentHandler {
	return &ContentHandler{contentRepo: contentRepo}
}

func (h *ContentHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/about", h.GetAbout)
	g.POST("/about", h.SaveAbout)
	g.PUT("/about", h.SaveAbout)
	g.GET("/hero", h.GetHero)
	g.POST("/hero", h.SaveHero)
	g.PUT("/hero", h.SaveHero)

	links := g.Group("/footer-social-links")
	links.GET("", h.ListFooterLinks)
	links.POST("", h.CreateFooterLink)
	links.PUT("/:id", h.UpdateFooterLink)
	links.DELETE("/:id", h.DeleteFooterLink)
}

// GetAbout returns the most recently updated About record.
func (h *ContentHandler) GetAbout(c echo.Context) error {
	about, err := h.contentRepo.LatestAbout(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "about content not found")
	}
	return c.JSON(http.StatusOK, about)
}

func (h *ContentHandler) SaveAbout(c echo.Context) error {
	var about models.About
	if err := c.Bind(&about); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if about.Title == "" || about.Description == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title and description are required")
	}

	if err := h.contentRepo.SaveAbout(c.Request().Context(), &about); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, about)
}

// GetHero returns the most recently updated hero section, or the fixed
// fallback copy when none exists. The empty case is a 200, never an
// error: the landing page must always render.
func (h *ContentHandler) GetHero(c echo.Context) error {
	hero, err := h.contentRepo.LatestHero(c.Request().Context())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusOK, dto.FallbackHero())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, dto.ToHeroResponse(hero))
}

func (h *ContentHandler) SaveHero(c echo.Context) error {
	var hero models.HeroSection
	if err := c.Bind(&hero); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if hero.Title == "" || hero.Subtitle == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title and subtitle are required")
	}
	if hero.CtaText == "" {
		hero.CtaText = dto.FallbackHeroCtaText
	}
	if hero.CtaURL == "" {
		hero.CtaURL = dto.FallbackHeroCtaURL
	}

	if err := h.contentRepo.SaveHero(c.Request().Context(), &hero); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, hero)
}

// ListFooterLinks returns links sorted by their display order.
func (h *ContentHandler) ListFooterLinks(c echo.Context) error {
	links, err := h.contentRepo.ListFooterLinks(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, links)
}

func (h *ContentHandler) CreateFooterLink(c echo.Context) error {
	var link models.FooterSocialLink
	if err := c.Bind(&link); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	link.ID = 0
	if !models.ValidSocialPlatform(link.Platform) {
		return echo.NewHTTPError(http.StatusBadRequest, dto.FieldErrors{"platform": "unknown platform"})
	}
	if link.URL == "" {
		return echo.NewHTTPError(http.StatusBadRequest, dto.FieldErrors{"url": "this field is required"})
	}

	if err := h.contentRepo.SaveFooterLink(c.Request().Context(), &link); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, link)
}

func (h *ContentHandler) UpdateFooterLink(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid link id")
	}

	existing, err := h.contentRepo.FindFooterLink(c.Request().Context(), uint(id))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "link not found")
	}

	var link models.FooterSocialLink
	if err := c.Bind(&link); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	link.ID = existing.ID
	if !models.ValidSocialPlatform(link.Platform) {
		return echo.NewHTTPError(http.StatusBadRequest, dto.FieldErrors{"platform": "unknown platform"})
	}

	if err := h.contentRepo.SaveFooterLink(c.Request().Context(), &link); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, link)
}

func (h *ContentHandler) DeleteFooterLink(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid link id")
	}

	if err := h.contentRepo.DeleteFooterLink(c.Request().Context(), uint(id)); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "link not found")
	}
	return c.NoContent(http.StatusNoContent)
}
