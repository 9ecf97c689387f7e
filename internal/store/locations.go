package store

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"assetdeck/internal/apperr"
	"assetdeck/internal/model"
)

const locationsLabel = "store.locations"

// List returns one page of an organization's locations. Search is a
// case-insensitive substring match on the name.
func (s *LocationStore) List(ctx context.Context, orgID uint, page, perPage int, search string) ([]model.Location, Page, error) {
	page, perPage = clampPage(page, perPage)

	q := s.db.WithContext(ctx).Model(&model.Location{}).Where("organization_id = ?", orgID)
	if search != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, Page{}, apperr.Internal(locationsLabel, err)
	}

	var items []model.Location
	err := q.Order("name ASC").
		Offset(offsetFor(page, perPage)).
		Limit(perPage).
		Find(&items).Error
	if err != nil {
		return nil, Page{}, apperr.Internal(locationsLabel, err)
	}
	return items, Page{Number: page, PerPage: perPage, Total: total}, nil
}

// Get fetches one location by id within the organization.
func (s *LocationStore) Get(ctx context.Context, id, orgID uint) (*model.Location, error) {
	var loc model.Location
	err := s.db.WithContext(ctx).
		Where("id = ? AND organization_id = ?", id, orgID).
		First(&loc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound(locationsLabel, "location not found")
	}
	if err != nil {
		return nil, apperr.Internal(locationsLabel, err)
	}
	return &loc, nil
}

// Create inserts a new location. A name already used in the same
// organization fails with a duplicate-name conflict.
func (s *LocationStore) Create(ctx context.Context, loc *model.Location) error {
	ctx, span := s.tracer.Start(ctx, "locations.create")
	defer span.End()

	if strings.TrimSpace(loc.Name) == "" {
		return apperr.BadRequest(locationsLabel, "name is required")
	}
	if err := s.db.WithContext(ctx).Create(loc).Error; err != nil {
		if apperr.IsUniqueViolation(err) {
			return apperr.Conflict(locationsLabel, "a location with that name already exists", err)
		}
		return apperr.Internal(locationsLabel, err)
	}
	s.log.Info("location created", zap.Uint("id", loc.ID), zap.Uint("org", loc.OrganizationID))
	return nil
}

// Update applies name/description/address changes to a location.
func (s *LocationStore) Update(ctx context.Context, id, orgID uint, name string, description, address *string) (*model.Location, error) {
	ctx, span := s.tracer.Start(ctx, "locations.update")
	defer span.End()

	loc, err := s.Get(ctx, id, orgID)
	if err != nil {
		return nil, err
	}
	if name != "" {
		loc.Name = name
	}
	if description != nil {
		loc.Description = description
	}
	if address != nil {
		loc.Address = address
	}
	if err := s.db.WithContext(ctx).Save(loc).Error; err != nil {
		if apperr.IsUniqueViolation(err) {
			return nil, apperr.Conflict(locationsLabel, "a location with that name already exists", err)
		}
		return nil, apperr.Internal(locationsLabel, err)
	}
	return loc, nil
}

// Delete removes a location permanently, so its name frees up for reuse
// under the per-org unique index. Assets pointing at it keep existing with
// a cleared location.
func (s *LocationStore) Delete(ctx context.Context, id, orgID uint) error {
	ctx, span := s.tracer.Start(ctx, "locations.delete")
	defer span.End()

	if _, err := s.Get(ctx, id, orgID); err != nil {
		return err
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Asset{}).
			Where("location_id = ? AND organization_id = ?", id, orgID).
			Update("location_id", nil).Error; err != nil {
			return err
		}
		return tx.Unscoped().Where("organization_id = ?", orgID).Delete(&model.Location{}, id).Error
	})
	if err != nil {
		return apperr.Internal(locationsLabel, err)
	}
	s.log.Info("location deleted", zap.Uint("id", id), zap.Uint("org", orgID))
	return nil
}

// BulkDelete removes the selected locations. The all-selected sentinel
// deletes every location in the organization and overrides any explicit id
// list also supplied. Returns the number of rows deleted.
func (s *LocationStore) BulkDelete(ctx context.Context, orgID uint, sel model.Selection) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "locations.bulk_delete")
	defer span.End()

	if !sel.All && len(sel.IDs) == 0 {
		return 0, apperr.BadRequest(locationsLabel, "nothing selected")
	}

	var deleted int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		clear := tx.Model(&model.Asset{}).Where("organization_id = ?", orgID)
		del := tx.Unscoped().Where("organization_id = ?", orgID)
		if !sel.All {
			clear = clear.Where("location_id IN ?", sel.IDs)
			del = del.Where("id IN ?", sel.IDs)
		} else {
			clear = clear.Where("location_id IS NOT NULL")
		}
		if err := clear.Update("location_id", nil).Error; err != nil {
			return err
		}
		res := del.Delete(&model.Location{})
		deleted = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return 0, apperr.Internal(locationsLabel, err)
	}
	s.log.Info("locations bulk deleted",
		zap.Uint("org", orgID), zap.Bool("all", sel.All), zap.Int64("deleted", deleted))
	return deleted, nil
}

// AttachImage points a location at an uploaded image.
func (s *LocationStore) AttachImage(ctx context.Context, id, orgID uint, imageID string) error {
	loc, err := s.Get(ctx, id, orgID)
	if err != nil {
		return err
	}
	var img model.Image
	err = s.db.WithContext(ctx).
		Where("id = ? AND organization_id = ?", imageID, orgID).
		First(&img).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(locationsLabel, "image not found")
	}
	if err != nil {
		return apperr.Internal(locationsLabel, err)
	}
	loc.ImageID = &img.ID
	if err := s.db.WithContext(ctx).Save(loc).Error; err != nil {
		return apperr.Internal(locationsLabel, err)
	}
	return nil
}
