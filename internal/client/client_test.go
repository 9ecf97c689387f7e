package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assetdeck/internal/apperr"
	"assetdeck/internal/model"
)

func TestClientSendsIdentityHeaders(t *testing.T) {
	var gotOrg, gotUser string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotOrg = r.Header.Get("X-Org-ID")
		gotUser = r.Header.Get("X-User-ID")
		json.NewEncoder(w).Encode(map[string]any{"items": []model.Location{}, "total": 0, "page": 1, "per_page": 8})
	}))
	defer ts.Close()

	c := NewWith(ts.URL, 7, 42)
	_, err := c.ListLocations(context.Background(), 1, 8, "")
	require.NoError(t, err)
	assert.Equal(t, "7", gotOrg)
	assert.Equal(t, "42", gotUser)
}

func TestClientDecodesErrorEnvelope(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"error": "a location with that name already exists"})
	}))
	defer ts.Close()

	c := NewWith(ts.URL, 1, 1)
	_, err := c.CreateLocation(context.Background(), "Warehouse", "", "")
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
	assert.Equal(t, "a location with that name already exists", apperr.MessageOf(err))
}

func TestClientBulkFormsCarrySentinel(t *testing.T) {
	var form map[string][]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		form = r.PostForm
		json.NewEncoder(w).Encode(map[string]any{"updated": 3})
	}))
	defer ts.Close()

	c := NewWith(ts.URL, 1, 1)
	updated, err := c.BulkUpdateLocation(context.Background(), model.Selection{IDs: []uint{4, 5}, All: true}, 9)
	require.NoError(t, err)
	assert.EqualValues(t, 3, updated)
	assert.Equal(t, []string{model.SentinelAll}, form["all"])
	assert.Equal(t, []string{"4", "5"}, form["ids"])
	assert.Equal(t, []string{"bulk-update-location"}, form["intent"])
	assert.Equal(t, []string{"9"}, form["location_id"])
}

func TestClientUnreachableServer(t *testing.T) {
	c := NewWith("http://127.0.0.1:1", 1, 1)
	_, err := c.ListLocations(context.Background(), 1, 8, "")
	require.Error(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, apperr.StatusOf(err))
	assert.Equal(t, "server unreachable", apperr.MessageOf(err))
}
