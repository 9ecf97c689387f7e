package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"assetdeck/internal/apperr"
	"assetdeck/internal/model"
)

const imagesLabel = "store.images"

// Save records metadata for an uploaded image. The bytes themselves live in
// the blob store under img.ID.
func (s *ImageStore) Save(ctx context.Context, img *model.Image) error {
	if img.ID == "" {
		return apperr.BadRequest(imagesLabel, "image id is required")
	}
	if err := s.db.WithContext(ctx).Create(img).Error; err != nil {
		return apperr.Internal(imagesLabel, err)
	}
	return nil
}

// Get fetches image metadata within the organization.
func (s *ImageStore) Get(ctx context.Context, id string, orgID uint) (*model.Image, error) {
	var img model.Image
	err := s.db.WithContext(ctx).
		Where("id = ? AND organization_id = ?", id, orgID).
		First(&img).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound(imagesLabel, "image not found")
	}
	if err != nil {
		return nil, apperr.Internal(imagesLabel, err)
	}
	return &img, nil
}
