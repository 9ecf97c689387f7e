// Package store is the persistence layer: GORM over SQLite, scoped to one
// organization per call. Records outside the caller's organization are
// reported as not found.
package store

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"assetdeck/internal/model"
)

// Store bundles the per-entity repositories over one DB handle.
type Store struct {
	DB        *gorm.DB
	Locations *LocationStore
	Assets    *AssetStore
	Notes     *NoteStore
	Images    *ImageStore
}

// Open opens (or creates) the SQLite database at path and migrates the schema.
func Open(path string, log *zap.Logger) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path+"?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(model.All()...); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	tracer := otel.Tracer("assetdeck/store")
	return &Store{
		DB:        db,
		Locations: &LocationStore{db: db, log: log.Named("locations"), tracer: tracer},
		Assets:    &AssetStore{db: db, log: log.Named("assets"), tracer: tracer},
		Notes:     &NoteStore{db: db, log: log.Named("notes")},
		Images:    &ImageStore{db: db, log: log.Named("images")},
	}, nil
}

// Page describes one page of a list result.
type Page struct {
	Number  int   // 1-based page number actually used
	PerPage int   // page size actually used after clamping
	Total   int64 // total rows matching the filter
}

type LocationStore struct {
	db     *gorm.DB
	log    *zap.Logger
	tracer trace.Tracer
}

type AssetStore struct {
	db     *gorm.DB
	log    *zap.Logger
	tracer trace.Tracer
}

type NoteStore struct {
	db  *gorm.DB
	log *zap.Logger
}

type ImageStore struct {
	db  *gorm.DB
	log *zap.Logger
}
