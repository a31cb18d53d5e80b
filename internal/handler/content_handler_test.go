package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/debaren/debaren-backend/internal/dto"
	"github.com/debaren/debaren-backend/internal/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// --- Mock ContentRepository ---

type mockContentRepo struct {
	latestAboutFn      func(ctx context.Context) (*models.About, error)
	latestHeroFn       func(ctx context.Context) (*models.HeroSection, error)
	saveHeroFn         func(ctx context.Context, hero *models.HeroSection) error
	listFooterLinksFn  func(ctx context.Context) ([]models.FooterSocialLink, error)
	saveFooterLinkFn   func(ctx context.Context, link *models.FooterSocialLink) error
	deleteFooterLinkFn func(ctx context.Context, id uint) error
}

func (m *mockContentRepo) LatestAbout(ctx context.Context) (*models.About, error) {
	if m.latestAboutFn != nil {
		return m.latestAboutFn(ctx)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockContentRepo) SaveAbout(ctx context.Context, about *models.About) error { return nil }
func (m *mockContentRepo) LatestHero(ctx context.Context) (*models.HeroSection, error) {
	if m.latestHeroFn != nil {
		return m.latestHeroFn(ctx)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockContentRepo) SaveHero(ctx context.Context, hero *models.HeroSection) error {
	if m.saveHeroFn != nil {
		return m.saveHeroFn(ctx, hero)
	}
	return nil
}
func (m *mockContentRepo) ListFooterLinks(ctx context.Context) ([]models.FooterSocialLink, error) {
	if m.listFooterLinksFn != nil {
		return m.listFooterLinksFn(ctx)
	}
	return nil, nil
}
func (m *mockContentRepo) FindFooterLink(ctx context.Context, id uint) (*models.FooterSocialLink, error) {
	return nil, gorm.ErrRecordNotFound
}
func (m *mockContentRepo) SaveFooterLink(ctx context.Context, link *models.FooterSocialLink) error {
	if m.saveFooterLinkFn != nil {
		return m.saveFooterLinkFn(ctx, link)
	}
	return nil
}
func (m *mockContentRepo) DeleteFooterLink(ctx context.Context, id uint) error {
	if m.deleteFooterLinkFn != nil {
		return m.deleteFooterLinkFn(ctx, id)
	}
	return nil
}

// --- Tests ---

func TestGetHero_ReturnsStoredHero(t *testing.T) {
	repo := &mockContentRepo{
		latestHeroFn: func(ctx context.Context) (*models.HeroSection, error) {
			return &models.HeroSection{
				Title:    "Spring Venues",
				Subtitle: "Book now",
				CtaText:  "Browse",
				CtaURL:   "/venues?season=spring",
			}, nil
		},
	}

	c, rec := newTestContext(http.MethodGet, "/api/v1/hero", "")
	h := NewContentHandler(repo)

	assert.NoError(t, h.GetHero(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.HeroResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Spring Venues", resp.Title)
}

func TestGetHero_FallbackWhenEmpty(t *testing.T) {
	c, rec := newTestContext(http.MethodGet, "/api/v1/hero", "")
	h := NewContentHandler(&mockContentRepo{})

	assert.NoError(t, h.GetHero(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.HeroResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, dto.FallbackHeroTitle, resp.Title)
	assert.Equal(t, dto.FallbackHeroCtaText, resp.CtaText)
	assert.Equal(t, dto.FallbackHeroCtaURL, resp.CtaURL)
}

func TestSaveHero_DefaultsCtaFields(t *testing.T) {
	var saved *models.HeroSection
	repo := &mockContentRepo{
		saveHeroFn: func(ctx context.Context, hero *models.HeroSection) error {
			saved = hero
			return nil
		},
	}

	body := `{"title":"Spring Venues","subtitle":"Book now"}`
	c, rec := newTestContext(http.MethodPost, "/api/v1/hero", body)
	h := NewContentHandler(repo)

	assert.NoError(t, h.SaveHero(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, dto.FallbackHeroCtaText, saved.CtaText)
	assert.Equal(t, dto.FallbackHeroCtaURL, saved.CtaURL)
}

func TestSaveHero_MissingTitle(t *testing.T) {
	c, _ := newTestContext(http.MethodPost, "/api/v1/hero", `{"subtitle":"Book now"}`)
	h := NewContentHandler(&mockContentRepo{})

	err := h.SaveHero(c)
	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestGetAbout_NotFound(t *testing.T) {
	c, _ := newTestContext(http.MethodGet, "/api/v1/about", "")
	h := NewContentHandler(&mockContentRepo{})

	err := h.GetAbout(c)
	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestCreateFooterLink_UnknownPlatform(t *testing.T) {
	body := `{"platform":"myspace","url":"https://myspace.com/debaren"}`
	c, _ := newTestContext(http.MethodPost, "/api/v1/footer-social-links", body)
	h := NewContentHandler(&mockContentRepo{})

	err := h.CreateFooterLink(c)
	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)

	fields, ok := he.Message.(dto.FieldErrors)
	assert.True(t, ok)
	assert.Contains(t, fields, "platform")
}

func TestCreateFooterLink_Success(t *testing.T) {
	var saved *models.FooterSocialLink
	repo := &mockContentRepo{
		saveFooterLinkFn: func(ctx context.Context, link *models.FooterSocialLink) error {
			link.ID = 1
			saved = link
			return nil
		},
	}

	body := `{"platform":"instagram","url":"https://instagram.com/debaren"}`
	c, rec := newTestContext(http.MethodPost, "/api/v1/footer-social-links", body)
	h := NewContentHandler(repo)

	assert.NoError(t, h.CreateFooterLink(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, models.PlatformInstagram, saved.Platform)
}

func TestDeleteFooterLink_NotFound(t *testing.T) {
	repo := &mockContentRepo{
		deleteFooterLinkFn: func(ctx context.Context, id uint) error {
			return gorm.ErrRecordNotFound
		},
	}

	c, _ := newTestContext(http.MethodDelete, "/api/v1/footer-social-links/9", "")
	c.SetParamNames("id")
	c.SetParamValues("9")
	h := NewContentHandler(repo)

	err := h.DeleteFooterLink(c)
	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}
