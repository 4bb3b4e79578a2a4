package view

import (
	"strings"

	"github.com/vaberg/holidaze/internal/booking"
	"github.com/vaberg/holidaze/internal/domain"
	"github.com/vaberg/holidaze/internal/holidaze"
)

const maxBioLength = 160

// NormalizeVenueRequest drops media entries without a URL and checks the
// venue constraints before anything is transmitted.
func NormalizeVenueRequest(req holidaze.VenueRequest) (holidaze.VenueRequest, error) {
	media := make([]domain.Media, 0, len(req.Media))
	for _, m := range req.Media {
		if strings.TrimSpace(m.URL) == "" {
			continue
		}
		if m.Alt == "" {
			m.Alt = req.Name
		}
		media = append(media, m)
	}
	req.Media = media

	if strings.TrimSpace(req.Name) == "" {
		return req, &booking.ValidationError{Message: "Venue name is required"}
	}
	if strings.TrimSpace(req.Description) == "" {
		return req, &booking.ValidationError{Message: "Venue description is required"}
	}
	if req.Price < 0 {
		return req, &booking.ValidationError{Message: "Price cannot be negative"}
	}
	if req.MaxGuests < 1 {
		return req, &booking.ValidationError{Message: "Venue must allow at least one guest"}
	}
	if req.Rating < 0 || req.Rating > 5 {
		return req, &booking.ValidationError{Message: "Rating must be between 0 and 5"}
	}
	return req, nil
}

// ValidateProfileUpdate checks the editable profile fields.
func ValidateProfileUpdate(req holidaze.ProfileUpdateRequest) error {
	if len(req.Bio) > maxBioLength {
		return &booking.ValidationError{Message: "Bio cannot exceed 160 characters"}
	}
	if req.Avatar != nil && strings.TrimSpace(req.Avatar.URL) == "" {
		return &booking.ValidationError{Message: "Avatar URL cannot be empty"}
	}
	if req.Banner != nil && strings.TrimSpace(req.Banner.URL) == "" {
		return &booking.ValidationError{Message: "Banner URL cannot be empty"}
	}
	return nil
}
