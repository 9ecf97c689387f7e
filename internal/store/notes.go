package store

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"assetdeck/internal/apperr"
	"assetdeck/internal/model"
)

const notesLabel = "store.notes"

// Create attaches a note to an asset in the author's organization.
func (s *NoteStore) Create(ctx context.Context, assetID, orgID, authorID uint, body string) (*model.Note, error) {
	if strings.TrimSpace(body) == "" {
		return nil, apperr.BadRequest(notesLabel, "note body is required")
	}
	var asset model.Asset
	err := s.db.WithContext(ctx).
		Where("id = ? AND organization_id = ?", assetID, orgID).
		First(&asset).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound(notesLabel, "asset not found")
	}
	if err != nil {
		return nil, apperr.Internal(notesLabel, err)
	}
	note := &model.Note{
		AssetID:        assetID,
		OrganizationID: orgID,
		AuthorID:       authorID,
		Body:           strings.TrimSpace(body),
	}
	if err := s.db.WithContext(ctx).Create(note).Error; err != nil {
		return nil, apperr.Internal(notesLabel, err)
	}
	return note, nil
}

// Delete removes a note within the organization.
func (s *NoteStore) Delete(ctx context.Context, id, orgID uint) error {
	res := s.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Delete(&model.Note{}, id)
	if res.Error != nil {
		return apperr.Internal(notesLabel, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound(notesLabel, "note not found")
	}
	return nil
}
