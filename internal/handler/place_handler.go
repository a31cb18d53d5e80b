package handler

import (
	"net/http"
	"strconv"

	"github.com/debaren/debaren-backend/internal/models"
	"github.com/debaren/debaren-backend/internal/repository"
	"github.com/labstack/echo/v4"
)

// PlaceHandler exposes CRUD for the flat discovery entities: wifi
// spots, school programs and popup venues.
type PlaceHandler struct {
	placeRepo repository.PlaceRepository
}

func NewPlaceHandler(placeRepo repository.PlaceRepository) *PlaceHandler {
	return &PlaceHandler{placeRepo: placeRepo}
}

func (h *PlaceHandler) RegisterRoutes(g *echo.Group) {
	wifi := g.Group("/wifi-spots")
	wifi.GET("", h.ListWifiSpots)
	wifi.POST("", h.CreateWifiSpot)
	wifi.GET("/:id", h.GetWifiSpot)
	wifi.PUT("/:id", h.UpdateWifiSpot)
	wifi.DELETE("/:id", h.DeleteWifiSpot)

	school := g.Group("/school-programs")
	school.GET("", h.ListSchoolPrograms)
	school.POST("", h.CreateSchoolProgram)
	school.GET("/:id", h.GetSchoolProgram)
	school.PUT("/:id", h.UpdateSchoolProgram)
	school.DELETE("/:id", h.DeleteSchoolProgram)

	popup := g.Group("/popup-venues")
	popup.GET("", h.ListPopupVenues)
	popup.POST("", h.CreatePopupVenue)
	popup.GET("/:id", h.GetPopupVenue)
	popup.PUT("/:id", h.UpdatePopupVenue)
	popup.DELETE("/:id", h.DeletePopupVenue)
}

func pathID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}

func (h *PlaceHandler) ListWifiSpots(c echo.Context) error {
	spots, err := h.placeRepo.ListWifiSpots(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, spots)
}

func (h *PlaceHandler) CreateWifiSpot(c echo.Context) error {
	var spot models.WifiSpot
	if err := c.Bind(&spot); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	spot.ID = 0
	if spot.Name == "" || spot.Address == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name and address are required")
	}

	if err := h.placeRepo.CreateWifiSpot(c.Request().Context(), &spot); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, spot)
}

func (h *PlaceHandler) GetWifiSpot(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	spot, err := h.placeRepo.FindWifiSpot(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "wifi spot not found")
	}
	return c.JSON(http.StatusOK, spot)
}

func (h *PlaceHandler) UpdateWifiSpot(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	existing, err := h.placeRepo.FindWifiSpot(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "wifi spot not found")
	}

	var spot models.WifiSpot
	if err := c.Bind(&spot); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	spot.ID = existing.ID
	spot.CreatedAt = existing.CreatedAt

	if err := h.placeRepo.SaveWifiSpot(c.Request().Context(), &spot); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, spot)
}

func (h *PlaceHandler) DeleteWifiSpot(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.placeRepo.DeleteWifiSpot(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "wifi spot not found")
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *PlaceHandler) ListSchoolPrograms(c echo.Context) error {
	programs, err := h.placeRepo.ListSchoolPrograms(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, programs)
}

func (h *PlaceHandler) CreateSchoolProgram(c echo.Context) error {
	var program models.SchoolProgram
	if err := c.Bind(&program); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	program.ID = 0
	if program.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}

	if err := h.placeRepo.CreateSchoolProgram(c.Request().Context(), &program); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, program)
}

func (h *PlaceHandler) GetSchoolProgram(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	program, err := h.placeRepo.FindSchoolProgram(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "school program not found")
	}
	return c.JSON(http.StatusOK, program)
}

func (h *PlaceHandler) UpdateSchoolProgram(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	existing, err := h.placeRepo.FindSchoolProgram(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "school program not found")
	}

	var program models.SchoolProgram
	if err := c.Bind(&program); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	program.ID = existing.ID
	program.CreatedAt = existing.CreatedAt

	if err := h.placeRepo.SaveSchoolProgram(c.Request().Context(), &program); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, program)
}

func (h *PlaceHandler) DeleteSchoolProgram(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.placeRepo.DeleteSchoolProgram(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "school program not found")
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *PlaceHandler) ListPopupVenues(c echo.Context) error {
	venues, err := h.placeRepo.ListPopupVenues(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, venues)
}

func (h *PlaceHandler) CreatePopupVenue(c echo.Context) error {
	var venue models.PopupVenue
	if err := c.Bind(&venue); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	venue.ID = 0
	if venue.Name == "" || venue.Location == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name and location are required")
	}

	if err := h.placeRepo.CreatePopupVenue(c.Request().Context(), &venue); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, venue)
}

func (h *PlaceHandler) GetPopupVenue(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	venue, err := h.placeRepo.FindPopupVenue(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "popup venue not found")
	}
	return c.JSON(http.StatusOK, venue)
}

func (h *PlaceHandler) UpdatePopupVenue(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	existing, err := h.placeRepo.FindPopupVenue(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "popup venue not found")
	}

	var venue models.PopupVenue
	if err := c.Bind(&venue); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	venue.ID = existing.ID

	if err := h.placeRepo.SavePopupVenue(c.Request().Context(), &venue); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, venue)
}

func (h *PlaceHandler) DeletePopupVenue(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.placeRepo.DeletePopupVenue(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "popup venue not found")
	}
	return c.NoContent(http.StatusNoContent)
}
