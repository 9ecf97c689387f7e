package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"assetdeck/internal/apperr"
	"assetdeck/internal/model"
)

const assetsLabel = "server.assets"

func (s *Server) listAssets(c *gin.Context) {
	page, perPage, search := parsePagination(c)
	items, pg, err := s.store.Assets.List(c.Request.Context(), orgOf(c), page, perPage, search)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, pageEnvelope{
		Items: items, Total: pg.Total, Page: pg.Number, PerPage: pg.PerPage,
	})
}

func (s *Server) getAsset(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		s.fail(c, apperr.BadRequest(assetsLabel, "bad asset id"))
		return
	}
	asset, err := s.store.Assets.Detail(c.Request.Context(), id, orgOf(c), isAdmin(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"asset": asset})
}

func (s *Server) createAsset(c *gin.Context) {
	if !canMutate(c) {
		s.fail(c, apperr.NotFound(assetsLabel, ""))
		return
	}
	asset := model.Asset{
		OrganizationID: orgOf(c),
		Title:          c.PostForm("title"),
		Description:    optional(c.PostForm("description")),
	}
	if raw := c.PostForm("location_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			lid := uint(id)
			asset.LocationID = &lid
		}
	}
	if err := s.store.Assets.Create(c.Request.Context(), &asset); err != nil {
		s.fail(c, err)
		return
	}
	if tags := c.PostForm("tags"); tags != "" {
		if err := s.store.Assets.SetTags(c.Request.Context(), asset.ID, orgOf(c), strings.Split(tags, ",")); err != nil {
			s.fail(c, err)
			return
		}
	}
	c.JSON(http.StatusCreated, gin.H{"asset": asset})
}

// assetIntent routes POST /assets/:id by the `intent` form field.
func (s *Server) assetIntent(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		s.fail(c, apperr.BadRequest(assetsLabel, "bad asset id"))
		return
	}
	ctx := c.Request.Context()
	org := orgOf(c)

	switch intent := c.PostForm("intent"); intent {
	case "update":
		asset, err := s.store.Assets.Update(ctx, id, org, c.PostForm("title"), optional(c.PostForm("description")))
		if err != nil {
			s.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"asset": asset})
	case "delete":
		if !canMutate(c) {
			s.fail(c, apperr.NotFound(assetsLabel, ""))
			return
		}
		if err := s.store.Assets.Delete(ctx, id, org); err != nil {
			s.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": id})
	case "toggle":
		asset, err := s.store.Assets.Toggle(ctx, id, org)
		if err != nil {
			s.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"asset": asset})
	case "assign-custody":
		userID, err := strconv.ParseUint(c.PostForm("user_id"), 10, 32)
		if err != nil || userID == 0 {
			s.fail(c, apperr.BadRequest(assetsLabel, "user_id is required"))
			return
		}
		asset, err2 := s.store.Assets.AssignCustody(ctx, id, org, uint(userID))
		if err2 != nil {
			s.fail(c, err2)
			return
		}
		c.JSON(http.StatusOK, gin.H{"asset": asset})
	case "release-custody":
		asset, err := s.store.Assets.ReleaseCustody(ctx, id, org)
		if err != nil {
			s.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"asset": asset})
	case "add-note":
		note, err := s.store.Notes.Create(ctx, id, org, userOf(c), c.PostForm("body"))
		if err != nil {
			s.fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"note": note})
	case "delete-note":
		if !canMutate(c) {
			s.fail(c, apperr.NotFound(assetsLabel, ""))
			return
		}
		noteID, err := strconv.ParseUint(c.PostForm("note_id"), 10, 32)
		if err != nil || noteID == 0 {
			s.fail(c, apperr.BadRequest(assetsLabel, "note_id is required"))
			return
		}
		if err := s.store.Notes.Delete(ctx, uint(noteID), org); err != nil {
			s.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": noteID})
	case "set-tags":
		if err := s.store.Assets.SetTags(ctx, id, org, strings.Split(c.PostForm("tags"), ",")); err != nil {
			s.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"updated": id})
	default:
		s.fail(c, apperr.BadRequest(assetsLabel, "unknown intent "+intent))
	}
}

// bulkAssets routes POST /assets/bulk by intent.
func (s *Server) bulkAssets(c *gin.Context) {
	if !canMutate(c) {
		s.fail(c, apperr.NotFound(assetsLabel, ""))
		return
	}
	switch intent := c.PostForm("intent"); intent {
	case "bulk-update-location":
		locationID, err := strconv.ParseUint(c.PostForm("location_id"), 10, 32)
		if err != nil || locationID == 0 {
			s.fail(c, apperr.BadRequest(assetsLabel, "location_id is required"))
			return
		}
		updated, err2 := s.store.Assets.BulkUpdateLocation(c.Request.Context(), orgOf(c), parseSelection(c), uint(locationID))
		if err2 != nil {
			s.fail(c, err2)
			return
		}
		c.JSON(http.StatusOK, gin.H{"updated": updated})
	default:
		s.fail(c, apperr.BadRequest(assetsLabel, "unknown intent "+intent))
	}
}
