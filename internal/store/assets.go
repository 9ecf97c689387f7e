package store

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"assetdeck/internal/apperr"
	"assetdeck/internal/model"
)

const assetsLabel = "store.assets"

// List returns one page of an organization's assets. Search matches the
// title, case-insensitively.
func (s *AssetStore) List(ctx context.Context, orgID uint, page, perPage int, search string) ([]model.Asset, Page, error) {
	page, perPage = clampPage(page, perPage)

	q := s.db.WithContext(ctx).Model(&model.Asset{}).Where("organization_id = ?", orgID)
	if search != "" {
		q = q.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, Page{}, apperr.Internal(assetsLabel, err)
	}

	var items []model.Asset
	err := q.Preload("Location").
		Order("title ASC").
		Offset(offsetFor(page, perPage)).
		Limit(perPage).
		Find(&items).Error
	if err != nil {
		return nil, Page{}, apperr.Internal(assetsLabel, err)
	}
	return items, Page{Number: page, PerPage: perPage, Total: total}, nil
}

// Detail fetches the full aggregate for one asset: location, custodian,
// tags, notes (newest first), and custom field values with their schemas.
// Admin-only custom fields are stripped unless forAdmin is set.
func (s *AssetStore) Detail(ctx context.Context, id, orgID uint, forAdmin bool) (*model.Asset, error) {
	var asset model.Asset
	err := s.db.WithContext(ctx).
		Preload("Location").
		Preload("Custodian").
		Preload("Tags").
		Preload("Notes", func(db *gorm.DB) *gorm.DB {
			return db.Order("notes.created_at DESC")
		}).
		Preload("Notes.Author").
		Preload("Fields.CustomField").
		Where("id = ? AND organization_id = ?", id, orgID).
		First(&asset).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound(assetsLabel, "asset not found")
	}
	if err != nil {
		return nil, apperr.Internal(assetsLabel, err)
	}
	if !forAdmin {
		visible := asset.Fields[:0]
		for _, f := range asset.Fields {
			if f.CustomField == nil || !f.CustomField.AdminOnly {
				visible = append(visible, f)
			}
		}
		asset.Fields = visible
	}
	return &asset, nil
}

// Create inserts a new asset.
func (s *AssetStore) Create(ctx context.Context, asset *model.Asset) error {
	if strings.TrimSpace(asset.Title) == "" {
		return apperr.BadRequest(assetsLabel, "title is required")
	}
	if asset.Status == "" {
		asset.Status = model.StatusAvailable
	}
	if err := s.db.WithContext(ctx).Create(asset).Error; err != nil {
		return apperr.Internal(assetsLabel, err)
	}
	return nil
}

// Update applies title/description changes.
func (s *AssetStore) Update(ctx context.Context, id, orgID uint, title string, description *string) (*model.Asset, error) {
	asset, err := s.get(ctx, id, orgID)
	if err != nil {
		return nil, err
	}
	if title != "" {
		asset.Title = title
	}
	if description != nil {
		asset.Description = description
	}
	if err := s.db.WithContext(ctx).Save(asset).Error; err != nil {
		return nil, apperr.Internal(assetsLabel, err)
	}
	return asset, nil
}

// Delete removes an asset and its notes.
func (s *AssetStore) Delete(ctx context.Context, id, orgID uint) error {
	if _, err := s.get(ctx, id, orgID); err != nil {
		return err
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("asset_id = ?", id).Delete(&model.Note{}).Error; err != nil {
			return err
		}
		if err := tx.Where("asset_id = ?", id).Delete(&model.CustomFieldValue{}).Error; err != nil {
			return err
		}
		return tx.Where("organization_id = ?", orgID).Delete(&model.Asset{}, id).Error
	})
	if err != nil {
		return apperr.Internal(assetsLabel, err)
	}
	s.log.Info("asset deleted", zap.Uint("id", id), zap.Uint("org", orgID))
	return nil
}

// Toggle flips an asset between available and archived. Assets in custody
// must be released first.
func (s *AssetStore) Toggle(ctx context.Context, id, orgID uint) (*model.Asset, error) {
	asset, err := s.get(ctx, id, orgID)
	if err != nil {
		return nil, err
	}
	switch asset.Status {
	case model.StatusInCustody:
		return nil, apperr.Conflict(assetsLabel, "release custody before archiving", nil)
	case model.StatusArchived:
		asset.Status = model.StatusAvailable
	default:
		asset.Status = model.StatusArchived
	}
	if err := s.db.WithContext(ctx).Save(asset).Error; err != nil {
		return nil, apperr.Internal(assetsLabel, err)
	}
	return asset, nil
}

// AssignCustody hands an asset to a user in the same organization.
func (s *AssetStore) AssignCustody(ctx context.Context, id, orgID, userID uint) (*model.Asset, error) {
	asset, err := s.get(ctx, id, orgID)
	if err != nil {
		return nil, err
	}
	if asset.Status == model.StatusArchived {
		return nil, apperr.Conflict(assetsLabel, "archived assets cannot be checked out", nil)
	}
	var user model.User
	err = s.db.WithContext(ctx).
		Where("id = ? AND organization_id = ?", userID, orgID).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound(assetsLabel, "user not found")
	}
	if err != nil {
		return nil, apperr.Internal(assetsLabel, err)
	}
	asset.CustodianID = &user.ID
	asset.Status = model.StatusInCustody
	if err := s.db.WithContext(ctx).Save(asset).Error; err != nil {
		return nil, apperr.Internal(assetsLabel, err)
	}
	s.log.Info("custody assigned",
		zap.Uint("asset", id), zap.Uint("user", userID), zap.Uint("org", orgID))
	return asset, nil
}

// ReleaseCustody returns an asset to the available pool.
func (s *AssetStore) ReleaseCustody(ctx context.Context, id, orgID uint) (*model.Asset, error) {
	asset, err := s.get(ctx, id, orgID)
	if err != nil {
		return nil, err
	}
	asset.CustodianID = nil
	asset.Status = model.StatusAvailable
	// Save skips nil-ing the pointer; use explicit updates.
	err = s.db.WithContext(ctx).Model(asset).
		Updates(map[string]any{"custodian_id": nil, "status": model.StatusAvailable}).Error
	if err != nil {
		return nil, apperr.Internal(assetsLabel, err)
	}
	return asset, nil
}

// BulkUpdateLocation moves the selected assets to a location. The
// all-selected sentinel moves every asset in the organization and overrides
// any explicit id list also supplied. Returns rows updated.
func (s *AssetStore) BulkUpdateLocation(ctx context.Context, orgID uint, sel model.Selection, locationID uint) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "assets.bulk_update_location")
	defer span.End()

	if !sel.All && len(sel.IDs) == 0 {
		return 0, apperr.BadRequest(assetsLabel, "nothing selected")
	}
	// The target must exist inside the organization; a foreign location is
	// indistinguishable from a missing one.
	var loc model.Location
	err := s.db.WithContext(ctx).
		Where("id = ? AND organization_id = ?", locationID, orgID).
		First(&loc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, apperr.NotFound(assetsLabel, "location not found")
	}
	if err != nil {
		return 0, apperr.Internal(assetsLabel, err)
	}

	q := s.db.WithContext(ctx).Model(&model.Asset{}).Where("organization_id = ?", orgID)
	if !sel.All {
		q = q.Where("id IN ?", sel.IDs)
	}
	res := q.Update("location_id", loc.ID)
	if res.Error != nil {
		return 0, apperr.Internal(assetsLabel, res.Error)
	}
	s.log.Info("assets bulk moved",
		zap.Uint("org", orgID), zap.Uint("location", locationID),
		zap.Bool("all", sel.All), zap.Int64("updated", res.RowsAffected))
	return res.RowsAffected, nil
}

// SetTags replaces an asset's tag set, creating missing tags in the org.
func (s *AssetStore) SetTags(ctx context.Context, id, orgID uint, names []string) error {
	asset, err := s.get(ctx, id, orgID)
	if err != nil {
		return err
	}
	tags := make([]model.Tag, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		var tag model.Tag
		err := s.db.WithContext(ctx).
			Where(model.Tag{OrganizationID: orgID, Name: name}).
			FirstOrCreate(&tag).Error
		if err != nil {
			return apperr.Internal(assetsLabel, err)
		}
		tags = append(tags, tag)
	}
	if err := s.db.WithContext(ctx).Model(asset).Association("Tags").Replace(tags); err != nil {
		return apperr.Internal(assetsLabel, err)
	}
	return nil
}

// SetFieldValue upserts one custom field value on an asset. The value must
// be valid JSON so every field kind (text, number, date, bool) round-trips.
func (s *AssetStore) SetFieldValue(ctx context.Context, id, orgID, fieldID uint, value []byte) error {
	if !json.Valid(value) {
		return apperr.BadRequest(assetsLabel, "field value must be valid JSON")
	}
	if _, err := s.get(ctx, id, orgID); err != nil {
		return err
	}
	var field model.CustomField
	err := s.db.WithContext(ctx).
		Where("id = ? AND organization_id = ?", fieldID, orgID).
		First(&field).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(assetsLabel, "custom field not found")
	}
	if err != nil {
		return apperr.Internal(assetsLabel, err)
	}
	var cfv model.CustomFieldValue
	err = s.db.WithContext(ctx).
		Where(model.CustomFieldValue{AssetID: id, CustomFieldID: fieldID}).
		FirstOrCreate(&cfv).Error
	if err != nil {
		return apperr.Internal(assetsLabel, err)
	}
	cfv.Value = value
	if err := s.db.WithContext(ctx).Save(&cfv).Error; err != nil {
		return apperr.Internal(assetsLabel, err)
	}
	return nil
}

func (s *AssetStore) get(ctx context.Context, id, orgID uint) (*model.Asset, error) {
	var asset model.Asset
	err := s.db.WithContext(ctx).
		Where("id = ? AND organization_id = ?", id, orgID).
		First(&asset).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound(assetsLabel, "asset not found")
	}
	if err != nil {
		return nil, apperr.Internal(assetsLabel, err)
	}
	return &asset, nil
}
