package handler

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/debaren/debaren-backend/internal/dto"
	"github.com/debaren/debaren-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type VenueHandler struct {
	svc service.VenueService
}

func NewVenueHandler(svc service.VenueService) *VenueHandler {
	return &VenueHandler{svc: svc}
}

func (h *VenueHandler) RegisterRoutes(g *echo.Group) {
	venues := g.Group("/venues")
	venues.GET("", h.ListVenues)
	venues.POST("", h.CreateVenue)
	venues.GET("/:id", h.GetVenue)
	venues.PUT("/:id", h.UpdateVenue)
	venues.PATCH("/:id", h.UpdateVenue)
	venues.DELETE("/:id", h.DeleteVenue)
	venues.POST("/:id/gallery", h.UploadGallery)
	venues.DELETE("/:id/remove-gallery-image/:imageID", h.RemoveGalleryImage)
}

func (h *VenueHandler) CreateVenue(c echo.Context) error {
	var req dto.CreateVenueRequest
	var image *service.Upload
	var gallery []service.Upload

	if isMultipart(c) {
		form, err := c.MultipartForm()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid multipart form")
		}
		if err := venueCreateFromForm(form, &req); err != nil {
			return err
		}

		uploads, closer, err := openVenueUploads(form, "gallery_upload")
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "could not read uploaded files")
		}
		defer closer()
		image, gallery = uploads.image, uploads.gallery
	} else {
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
		}
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	venue, err := h.svc.CreateVenue(c.Request().Context(), &req, image, gallery)
	if err != nil {
		if errors.Is(err, service.ErrInvalidVenueType) {
			return echo.NewHTTPError(http.StatusBadRequest, dto.FieldErrors{"venue_type": err.Error()})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, venue)
}

func (h *VenueHandler) GetVenue(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid venue id")
	}

	venue, err := h.svc.GetVenue(c.Request().Context(), uint(id))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "venue not found")
	}

	return c.JSON(http.StatusOK, venue)
}

func (h *VenueHandler) ListVenues(c echo.Context) error {
	venues, err := h.svc.ListVenues(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, venues)
}

func (h *VenueHandler) UpdateVenue(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid venue id")
	}

	var req dto.UpdateVenueRequest
	var image *service.Upload
	var gallery []service.Upload

	if isMultipart(c) {
		form, err := c.MultipartForm()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid multipart form")
		}
		if err := venueUpdateFromForm(form, &req); err != nil {
			return err
		}

		uploads, closer, err := openVenueUploads(form, "gallery_upload")
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "could not read uploaded files")
		}
		defer closer()
		image, gallery = uploads.image, uploads.gallery
	} else {
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
		}
	}

	venue, err := h.svc.UpdateVenue(c.Request().Context(), uint(id), &req, image, gallery)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrVenueNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidVenueType):
			return echo.NewHTTPError(http.StatusBadRequest, dto.FieldErrors{"venue_type": err.Error()})
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, venue)
}

func (h *VenueHandler) DeleteVenue(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid venue id")
	}

	if err := h.svc.DeleteVenue(c.Request().Context(), uint(id)); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "venue not found")
	}

	return c.NoContent(http.StatusNoContent)
}

// UploadGallery bulk-appends images to a venue's gallery. Files arrive
// under the "gallery" form key.
func (h *VenueHandler) UploadGallery(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid venue id")
	}

	form, err := c.MultipartForm()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid multipart form")
	}

	uploads, closer, err := uploadsFromHeaders(form.File["gallery"])
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "could not read uploaded files")
	}
	defer closer()

	images, err := h.svc.AddGalleryImages(c.Request().Context(), uint(id), uploads)
	if err != nil {
		if errors.Is(err, service.ErrVenueNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, images)
}

func (h *VenueHandler) RemoveGalleryImage(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid venue id")
	}
	imageID, err := strconv.ParseUint(c.Param("imageID"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid image id")
	}

	err = h.svc.RemoveGalleryImage(c.Request().Context(), uint(id), uint(imageID))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrVenueNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "venue not found")
		case errors.Is(err, service.ErrGalleryImageNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "image not found")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, map[string]string{"detail": "Image removed"})
}

type venueUploads struct {
	image   *service.Upload
	gallery []service.Upload
}

func openVenueUploads(form *multipart.Form, galleryKey string) (venueUploads, func(), error) {
	var out venueUploads

	headers := form.File[galleryKey]
	if imgs := form.File["image"]; len(imgs) > 0 {
		headers = append([]*multipart.FileHeader{imgs[0]}, headers...)
	}

	uploads, closer, err := uploadsFromHeaders(headers)
	if err != nil {
		return out, nil, err
	}

	if len(form.File["image"]) > 0 && len(uploads) > 0 {
		out.image = &uploads[0]
		out.gallery = uploads[1:]
	} else {
		out.gallery = uploads
	}
	return out, closer, nil
}

func venueCreateFromForm(form *multipart.Form, req *dto.CreateVenueRequest) error {
	req.Name, _ = formValue(form, "name")
	req.VenueType, _ = formValue(form, "venue_type")
	req.Description, _ = formValue(form, "description")
	req.Address, _ = formValue(form, "address")
	req.City, _ = formValue(form, "city")
	req.Region, _ = formValue(form, "region")
	req.Country, _ = formValue(form, "country")
	req.PostalCode, _ = formValue(form, "postal_code")
	req.ContactEmail, _ = formValue(form, "contact_email")
	req.ContactPhone, _ = formValue(form, "contact_phone")
	req.Website, _ = formValue(form, "website")
	req.Tags, _ = formValue(form, "tags")
	if v, ok := formValue(form, "amenities"); ok {
		req.Amenities = v
	}

	var err error
	if req.Latitude, err = formFloat(form, "latitude"); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, dto.FieldErrors{"latitude": "must be a number"})
	}
	if req.Longitude, err = formFloat(form, "longitude"); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, dto.FieldErrors{"longitude": "must be a number"})
	}
	if req.PricePerDay, err = formFloat(form, "price_per_day"); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, dto.FieldErrors{"price_per_day": "must be a number"})
	}
	if req.Rating, err = formFloat(form, "rating"); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, dto.FieldErrors{"rating": "must be a number"})
	}
	capacity, err := formUint(form, "capacity")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, dto.FieldErrors{"capacity": "must be a non-negative integer"})
	}
	if capacity != nil {
		req.Capacity = *capacity
	}
	if req.Available, err = formBool(form, "available"); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, dto.FieldErrors{"available": "must be a boolean"})
	}
	return nil
}

func venueUpdateFromForm(form *multipart.Form, req *dto.UpdateVenueRequest) error {
	strField := func(key string) *string {
		if v, ok := formValue(form, key); ok {
			return &v
		}
		return nil
	}

	req.Name = strField("name")
	req.VenueType = strField("venue_type")
	req.Description = strField("description")
	req.Address = strField("address")
	req.City = strField("city")
	req.Region = strField("region")
	req.Country = strField("country")
	req.PostalCode = strField("postal_code")
	req.ContactEmail = strField("contact_email")
	req.ContactPhone = strField("contact_phone")
	req.Website = strField("website")
	req.Tags = strField("tags")
	if v, ok := formValue(form, "amenities"); ok {
		req.Amenities = v
	}

	var err error
	if req.Latitude, err = formFloat(form, "latitude"); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, dto.FieldErrors{"latitude": "must be a number"})
	}
	if req.Longitude, err = formFloat(form, "longitude"); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, dto.FieldErrors{"longitude": "must be a number"})
	}
	if req.PricePerDay, err = formFloat(form, "price_per_day"); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, dto.FieldErrors{"price_per_day": "must be a number"})
	}
	if req.Rating, err = formFloat(form, "rating"); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, dto.FieldErrors{"rating": "must be a number"})
	}
	if req.Capacity, err = formUint(form, "capacity"); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, dto.FieldErrors{"capacity": "must be a non-negative integer"})
	}
	if req.Available, err = formBool(form, "available"); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, dto.FieldErrors{"available": "must be a boolean"})
	}
	return nil
}
