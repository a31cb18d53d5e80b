package service

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/debaren/debaren-backend/internal/amenity"
	"github.com/debaren/debaren-backend/internal/dto"
	"github.com/debaren/debaren-backend/internal/models"
	"github.com/debaren/debaren-backend/internal/repository"
	"github.com/debaren/debaren-backend/pkg/storage"
)

var (
	ErrGalleryImageNotFound = errors.New("gallery image not found")
	ErrInvalidVenueType     = errors.New("invalid venue type")
)

// Upload is a file received from a multipart form, decoupled from the
// web framework so the service can be tested without it.
type Upload struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

type VenueService interface {
	CreateVenue(ctx context.Context, req *dto.CreateVenueRequest, image *Upload, gallery []Upload) (*models.Venue, error)
	GetVenue(ctx context.Context, id uint) (*models.Venue, error)
	ListVenues(ctx context.Context) ([]models.Venue, error)
	UpdateVenue(ctx context.Context, id uint, req *dto.UpdateVenueRequest, image *Upload, gallery []Upload) (*models.Venue, error)
	DeleteVenue(ctx context.Context, id uint) error
	AddGalleryImages(ctx context.Context, venueID uint, gallery []Upload) ([]models.GalleryImage, error)
	RemoveGalleryImage(ctx context.Context, venueID, imageID uint) error
}

type venueService struct {
	venueRepo repository.VenueRepository
	store     storage.ObjectStore
}

func NewVenueService(venueRepo repository.VenueRepository, store storage.ObjectStore) VenueService {
	return &venueService{venueRepo: venueRepo, store: store}
}

func (s *venueService) CreateVenue(ctx context.Context, req *dto.CreateVenueRequest, image *Upload, gallery []Upload) (*models.Venue, error) {
	if !models.ValidVenueType(models.VenueType(req.VenueType)) {
		return nil, ErrInvalidVenueType
	}

	venue := &models.Venue{
		Name:         req.Name,
		VenueType:    models.VenueType(req.VenueType),
		Description:  req.Description,
		Address:      req.Address,
		City:         req.City,
		Region:       req.Region,
		Country:      req.Country,
		PostalCode:   req.PostalCode,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Capacity:     req.Capacity,
		Amenities:    amenity.Normalize(req.Amenities),
		PricePerDay:  req.PricePerDay,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Website:      req.Website,
		Available:    true,
		Tags:         req.Tags,
	}
	if req.Country == "" {
		venue.Country = "South Africa"
	}
	if req.Available != nil {
		venue.Available = *req.Available
	}
	if req.Rating != nil {
		venue.Rating = *req.Rating
	}

	if image != nil {
		url, err := s.putObject(ctx, "venues", *image)
		if err != nil {
			return nil, err
		}
		venue.ImageURL = url
	}

	if err := s.venueRepo.Create(ctx, venue); err != nil {
		log.Printf("[VenueService] failed to persist venue: %v", err)
		return nil, err
	}

	if len(gallery) > 0 {
		images, err := s.appendGallery(ctx, venue.ID, gallery)
		if err != nil {
			return nil, err
		}
		venue.Gallery = images
	}

	return venue, nil
}

func (s *venueService) GetVenue(ctx context.Context, id uint) (*models.Venue, error) {
	venue, err := s.venueRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrVenueNotFound
	}
	return venue, nil
}

func (s *venueService) ListVenues(ctx context.Context) ([]models.Venue, error) {
	return s.venueRepo.FindAll(ctx)
}

// UpdateVenue applies a partial update; gallery uploads are appended,
// existing gallery images are never replaced here.
func (s *venueService) UpdateVenue(ctx context.Context, id uint, req *dto.UpdateVenueRequest, image *Upload, gallery []Upload) (*models.Venue, error) {
	venue, err := s.venueRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrVenueNotFound
	}

	if req.VenueType != nil {
		if !models.ValidVenueType(models.VenueType(*req.VenueType)) {
			return nil, ErrInvalidVenueType
		}
		venue.VenueType = models.VenueType(*req.VenueType)
	}
	if req.Name != nil {
		venue.Name = *req.Name
	}
	if req.Description != nil {
		venue.Description = *req.Description
	}
	if req.Address != nil {
		venue.Address = *req.Address
	}
	if req.City != nil {
		venue.City = *req.City
	}
	if req.Region != nil {
		venue.Region = *req.Region
	}
	if req.Country != nil {
		venue.Country = *req.Country
	}
	if req.PostalCode != nil {
		venue.PostalCode = *req.PostalCode
	}
	if req.Latitude != nil {
		venue.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		venue.Longitude = req.Longitude
	}
	if req.Capacity != nil {
		venue.Capacity = *req.Capacity
	}
	if req.Amenities != nil {
		venue.Amenities = amenity.Normalize(req.Amenities)
	}
	if req.PricePerDay != nil {
		venue.PricePerDay = req.PricePerDay
	}
	if req.ContactEmail != nil {
		venue.ContactEmail = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		venue.ContactPhone = *req.ContactPhone
	}
	if req.Website != nil {
		venue.Website = *req.Website
	}
	if req.Available != nil {
		venue.Available = *req.Available
	}
	if req.Rating != nil {
		venue.Rating = *req.Rating
	}
	if req.Tags != nil {
		venue.Tags = *req.Tags
	}

	if image != nil {
		url, err := s.putObject(ctx, "venues", *image)
		if err != nil {
			return nil, err
		}
		venue.ImageURL = url
	}

	if err := s.venueRepo.Save(ctx, venue); err != nil {
		log.Printf("[VenueService] failed to update venue %d: %v", id, err)
		return nil, err
	}

	if len(gallery) > 0 {
		if _, err := s.appendGallery(ctx, venue.ID, gallery); err != nil {
			return nil, err
		}
	}

	return s.venueRepo.FindByID(ctx, venue.ID)
}

func (s *venueService) DeleteVenue(ctx context.Context, id uint) error {
	if err := s.venueRepo.Delete(ctx, id); err != nil {
		return ErrVenueNotFound
	}
	return nil
}

func (s *venueService) AddGalleryImages(ctx context.Context, venueID uint, gallery []Upload) ([]models.GalleryImage, error) {
	if _, err := s.venueRepo.FindByID(ctx, venueID); err != nil {
		return nil, ErrVenueNotFound
	}
	return s.appendGallery(ctx, venueID, gallery)
}

func (s *venueService) RemoveGalleryImage(ctx context.Context, venueID, imageID uint) error {
	if _, err := s.venueRepo.FindByID(ctx, venueID); err != nil {
		return ErrVenueNotFound
	}
	img, err := s.venueRepo.FindGalleryImage(ctx, venueID, imageID)
	if err != nil {
		return ErrGalleryImageNotFound
	}
	if err := s.venueRepo.DeleteGalleryImage(ctx, venueID, imageID); err != nil {
		return ErrGalleryImageNotFound
	}

	// Best-effort blob cleanup; the row is already gone.
	if s.store != nil && img.ImageURL != "" {
		if key := storage.KeyFromURL(img.ImageURL); key != "" {
			if err := s.store.Delete(ctx, key); err != nil {
				log.Printf("[VenueService] failed to delete object %s: %v", key, err)
			}
		}
	}
	return nil
}

func (s *venueService) appendGallery(ctx context.Context, venueID uint, gallery []Upload) ([]models.GalleryImage, error) {
	images := make([]models.GalleryImage, 0, len(gallery))
	for _, up := range gallery {
		url, err := s.putObject(ctx, "venues/gallery", up)
		if err != nil {
			return nil, err
		}
		images = append(images, models.GalleryImage{VenueID: venueID, ImageURL: url})
	}
	if err := s.venueRepo.AddGalleryImages(ctx, images); err != nil {
		log.Printf("[VenueService] failed to persist gallery images for venue %d: %v", venueID, err)
		return nil, err
	}
	return images, nil
}

func (s *venueService) putObject(ctx context.Context, prefix string, up Upload) (string, error) {
	if s.store == nil {
		log.Printf("[VenueService] no object store configured, skipping upload of %s", up.Filename)
		return "", nil
	}
	key := storage.ObjectKey(prefix, up.Filename)
	url, err := s.store.Put(ctx, key, up.ContentType, up.Content)
	if err != nil {
		log.Printf("[VenueService] failed to upload %s: %v", up.Filename, err)
		return "", err
	}
	return url, nil
}
