package server

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"assetdeck/internal/apperr"
	"assetdeck/internal/imaging"
	"assetdeck/internal/model"
)

const imagesLabel = "server.images"

// attachLocationImage handles intent=attach-image: a multipart `image` file
// is decoded, thumbnailed, written to the blob store, recorded, and linked
// to the location.
func (s *Server) attachLocationImage(c *gin.Context, locationID uint) {
	if !canMutate(c) {
		s.fail(c, apperr.NotFound(imagesLabel, ""))
		return
	}
	header, err := c.FormFile("image")
	if err != nil {
		s.fail(c, apperr.BadRequest(imagesLabel, "image file is required"))
		return
	}
	if header.Size > imaging.MaxUploadBytes {
		s.fail(c, apperr.BadRequest(imagesLabel, "image too large"))
		return
	}
	// Generic multipart writers declare parts as application/octet-stream;
	// only a concrete non-image declaration is rejected here. The decode
	// below is the real authority on the bytes.
	mime := header.Header.Get("Content-Type")
	if mime != "" && mime != "application/octet-stream" && !imaging.AllowedMIME(mime) {
		s.fail(c, apperr.BadRequest(imagesLabel, "unsupported image type"))
		return
	}

	f, err := header.Open()
	if err != nil {
		s.fail(c, apperr.Internal(imagesLabel, err))
		return
	}
	defer f.Close()
	raw, err := io.ReadAll(io.LimitReader(f, imaging.MaxUploadBytes+1))
	if err != nil {
		s.fail(c, apperr.Internal(imagesLabel, err))
		return
	}

	processed, err := imaging.Process(raw)
	if err != nil {
		s.fail(c, apperr.BadRequest(imagesLabel, "could not decode image"))
		return
	}

	key := uuid.NewString()
	if err := s.blobs.Put(key, raw, processed.Thumb); err != nil {
		s.fail(c, apperr.Internal(imagesLabel, err))
		return
	}
	img := model.Image{
		ID:             key,
		OrganizationID: orgOf(c),
		MIME:           processed.MIME,
		Width:          processed.Width,
		Height:         processed.Height,
		SizeBytes:      int64(len(raw)),
	}
	if processed.Thumb != nil {
		img.ThumbKey = key + ".thumb"
	}
	if err := s.store.Images.Save(c.Request.Context(), &img); err != nil {
		_ = s.blobs.Delete(key)
		s.fail(c, err)
		return
	}
	if err := s.store.Locations.AttachImage(c.Request.Context(), locationID, orgOf(c), key); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"image": img})
}

// serveImage streams image bytes; ?thumb=1 serves the scaled copy.
func (s *Server) serveImage(c *gin.Context) {
	img, err := s.store.Images.Get(c.Request.Context(), c.Param("id"), orgOf(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	var raw []byte
	if c.Query("thumb") == "1" {
		raw, err = s.blobs.GetThumb(img.ID)
	} else {
		raw, err = s.blobs.Get(img.ID)
	}
	if err != nil {
		s.fail(c, apperr.NotFound(imagesLabel, "image not found"))
		return
	}
	mime := img.MIME
	if c.Query("thumb") == "1" && img.ThumbKey != "" {
		mime = "image/png"
	}
	c.Data(http.StatusOK, mime, raw)
}
