package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"assetdeck/internal/apperr"
	"assetdeck/internal/model"
)

const locationsLabel = "server.locations"

func (s *Server) listLocations(c *gin.Context) {
	page, perPage, search := parsePagination(c)
	items, pg, err := s.store.Locations.List(c.Request.Context(), orgOf(c), page, perPage, search)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, pageEnvelope{
		Items: items, Total: pg.Total, Page: pg.Number, PerPage: pg.PerPage,
	})
}

func (s *Server) getLocation(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		s.fail(c, apperr.BadRequest(locationsLabel, "bad location id"))
		return
	}
	loc, err := s.store.Locations.Get(c.Request.Context(), id, orgOf(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"location": loc})
}

func (s *Server) createLocation(c *gin.Context) {
	if !canMutate(c) {
		s.fail(c, apperr.NotFound(locationsLabel, ""))
		return
	}
	loc := model.Location{
		OrganizationID: orgOf(c),
		CreatedByID:    userOf(c),
		Name:           c.PostForm("name"),
		Description:    optional(c.PostForm("description")),
		Address:        optional(c.PostForm("address")),
	}
	if err := s.store.Locations.Create(c.Request.Context(), &loc); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"location": loc})
}

// locationIntent routes POST /locations/:id by the `intent` form field.
func (s *Server) locationIntent(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		s.fail(c, apperr.BadRequest(locationsLabel, "bad location id"))
		return
	}
	switch intent := c.PostForm("intent"); intent {
	case "update":
		loc, err := s.store.Locations.Update(c.Request.Context(), id, orgOf(c),
			c.PostForm("name"), optional(c.PostForm("description")), optional(c.PostForm("address")))
		if err != nil {
			s.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"location": loc})
	case "delete":
		if !canMutate(c) {
			s.fail(c, apperr.NotFound(locationsLabel, ""))
			return
		}
		if err := s.store.Locations.Delete(c.Request.Context(), id, orgOf(c)); err != nil {
			s.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": id})
	case "attach-image":
		s.attachLocationImage(c, id)
	default:
		s.fail(c, apperr.BadRequest(locationsLabel, "unknown intent "+intent))
	}
}

// bulkLocations routes POST /locations/bulk by intent.
func (s *Server) bulkLocations(c *gin.Context) {
	if !canMutate(c) {
		s.fail(c, apperr.NotFound(locationsLabel, ""))
		return
	}
	switch intent := c.PostForm("intent"); intent {
	case "bulk-delete":
		deleted, err := s.store.Locations.BulkDelete(c.Request.Context(), orgOf(c), parseSelection(c))
		if err != nil {
			s.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": deleted})
	default:
		s.fail(c, apperr.BadRequest(locationsLabel, "unknown intent "+intent))
	}
}

// optional maps an empty form value to nil so blank submissions do not
// overwrite stored text.
func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
