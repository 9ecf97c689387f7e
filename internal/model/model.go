// Package model defines the persisted entities for assetdeck.
package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Role controls what a user may see and do inside their organization.
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleUser        Role = "user"
	RoleSelfService Role = "self_service"
)

// AssetStatus is the lifecycle state of an asset.
type AssetStatus string

const (
	StatusAvailable AssetStatus = "available"
	StatusInCustody AssetStatus = "in_custody"
	StatusArchived  AssetStatus = "archived"
)

// Organization is the authorization scope. Every record below carries an
// OrganizationID and queries never cross it.
type Organization struct {
	gorm.Model
	Name string `gorm:"not null;uniqueIndex" json:"name"`
}

// User belongs to one organization.
type User struct {
	gorm.Model
	OrganizationID uint   `gorm:"not null;index" json:"organization_id"`
	Name           string `gorm:"not null" json:"name"`
	Email          string `gorm:"not null;uniqueIndex" json:"email"`
	Role           Role   `gorm:"not null;default:user" json:"role"`
}

// Location is a place assets live. Name is unique per organization.
type Location struct {
	gorm.Model
	OrganizationID uint    `gorm:"not null;uniqueIndex:idx_location_org_name,priority:1" json:"organization_id"`
	CreatedByID    uint    `gorm:"not null" json:"created_by_id"`
	Name           string  `gorm:"not null;uniqueIndex:idx_location_org_name,priority:2" json:"name"`
	Description    *string `json:"description,omitempty"`
	Address        *string `json:"address,omitempty"`
	ImageID        *string `gorm:"type:text" json:"image_id,omitempty"`
}

// Asset is a tracked physical item.
type Asset struct {
	gorm.Model
	OrganizationID uint        `gorm:"not null;index" json:"organization_id"`
	LocationID     *uint       `gorm:"index" json:"location_id,omitempty"`
	CustodianID    *uint       `gorm:"index" json:"custodian_id,omitempty"`
	Title          string      `gorm:"not null;index" json:"title"`
	Description    *string     `json:"description,omitempty"`
	Status         AssetStatus `gorm:"not null;default:available" json:"status"`
	ImageID        *string     `gorm:"type:text" json:"image_id,omitempty"`

	Location  *Location          `gorm:"constraint:OnDelete:SET NULL" json:"location,omitempty"`
	Custodian *User              `json:"custodian,omitempty"`
	Tags      []Tag              `gorm:"many2many:asset_tags" json:"tags,omitempty"`
	Notes     []Note             `gorm:"constraint:OnDelete:CASCADE" json:"notes,omitempty"`
	Fields    []CustomFieldValue `json:"fields,omitempty"`
}

// Note is free-form commentary attached to an asset.
type Note struct {
	gorm.Model
	AssetID        uint   `gorm:"not null;index" json:"asset_id"`
	OrganizationID uint   `gorm:"not null;index" json:"organization_id"`
	AuthorID       uint   `gorm:"not null" json:"author_id"`
	Body           string `gorm:"not null" json:"body"`

	Author *User `json:"author,omitempty"`
}

// Tag labels assets within an organization.
type Tag struct {
	gorm.Model
	OrganizationID uint   `gorm:"not null;uniqueIndex:idx_tag_org_name,priority:1" json:"organization_id"`
	Name           string `gorm:"not null;uniqueIndex:idx_tag_org_name,priority:2" json:"name"`
}

// CustomFieldKind constrains custom field values.
type CustomFieldKind string

const (
	FieldText   CustomFieldKind = "text"
	FieldNumber CustomFieldKind = "number"
	FieldDate   CustomFieldKind = "date"
	FieldBool   CustomFieldKind = "bool"
)

// CustomField is an organization-defined attribute schema for assets.
type CustomField struct {
	gorm.Model
	OrganizationID uint            `gorm:"not null;index" json:"organization_id"`
	Name           string          `gorm:"not null" json:"name"`
	Kind           CustomFieldKind `gorm:"not null;default:text" json:"kind"`
	AdminOnly      bool            `gorm:"not null;default:false" json:"admin_only"`
}

// CustomFieldValue stores one asset's value for a custom field.
type CustomFieldValue struct {
	gorm.Model
	AssetID       uint           `gorm:"not null;uniqueIndex:idx_cfv_asset_field,priority:1" json:"asset_id"`
	CustomFieldID uint           `gorm:"not null;uniqueIndex:idx_cfv_asset_field,priority:2" json:"custom_field_id"`
	// Stored as text: sqlite gives a "json" column NUMERIC affinity, which
	// would coerce scalar values like 1299 and break the read path.
	Value datatypes.JSON `gorm:"type:text" json:"value"`

	CustomField *CustomField `json:"custom_field,omitempty"`
}

// Image records uploaded image metadata. ID is the uuid storage key under
// which the bytes live in the blob store; ThumbKey points at the scaled copy.
type Image struct {
	ID             string    `gorm:"primaryKey;type:text" json:"id"`
	OrganizationID uint      `gorm:"not null;index" json:"organization_id"`
	MIME           string    `gorm:"not null" json:"mime"`
	Width          int       `json:"width"`
	Height         int       `json:"height"`
	ThumbKey       string    `json:"thumb_key,omitempty"`
	SizeBytes      int64     `json:"size_bytes"`
	CreatedAt      time.Time `json:"created_at"`
}

// All returns every model for migration, dependencies first.
func All() []any {
	return []any{
		&Organization{},
		&User{},
		&Location{},
		&Tag{},
		&CustomField{},
		&Asset{},
		&Note{},
		&CustomFieldValue{},
		&Image{},
	}
}

// Selection is a bulk-action input: explicit ids or the all-selected
// sentinel. When All is set it overrides any ids also supplied and means
// "every record in the organization matching the current filter".
type Selection struct {
	IDs []uint
	All bool
}

// SentinelAll is the wire value standing in for "all selected".
const SentinelAll = "ALL"
