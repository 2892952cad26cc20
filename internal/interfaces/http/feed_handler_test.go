package http_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tweakwise-api/internal/application/dto"
	"github.com/jhoicas/tweakwise-api/internal/domain/entity"
)

func TestFeeds_CrearYObtener(t *testing.T) {
	env := newTestEnv(t)
	id := env.createFeed(t, "abc123", domNL)

	status, body := env.call(t, http.MethodGet, "/api/feeds/"+id, tokenForRole(t, entity.RoleViewer), nil)
	require.Equal(t, http.StatusOK, status)

	var out dto.FeedResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, entity.DefaultFeedName, out.Name)
	assert.Equal(t, "abc123", out.Token)
	assert.Equal(t, []string{domNL}, out.DomainIDs)
}

func TestFeeds_DominioYaAsignadoRetorna409(t *testing.T) {
	env := newTestEnv(t)
	env.createFeed(t, "abc123", domNL)

	status, body := env.call(t, http.MethodPost, "/api/feeds", tokenForRole(t, entity.RoleEditor), map[string]any{
		"token": "otro", "integration": entity.IntegrationJavaScript, "wayOfSearch": entity.WayOfSearchSuggestions,
		"domainIds": []string{domNL},
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.Contains(t, string(body), "DOMAIN_TAKEN")
}

func TestFeeds_ValidacionDeEntrada(t *testing.T) {
	env := newTestEnv(t)
	status, body := env.call(t, http.MethodPost, "/api/feeds", tokenForRole(t, entity.RoleAdmin), map[string]any{
		"token": "abc", "integration": "navigation", "wayOfSearch": entity.WayOfSearchInstant,
		"domainIds": []string{"no-es-uuid"},
	})
	require.Equal(t, http.StatusBadRequest, status)

	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "VALIDATION", out.Code)
	fields := make([]string, 0, len(out.Details))
	for _, d := range out.Details {
		fields = append(fields, d.Field)
	}
	assert.Contains(t, fields, "integration")
	assert.Contains(t, fields, "domainIds[0]")
}

func TestFeeds_DominioDesconocidoRetorna400(t *testing.T) {
	env := newTestEnv(t)
	status, _ := env.call(t, http.MethodPost, "/api/feeds", tokenForRole(t, entity.RoleAdmin), map[string]any{
		"token": "abc", "integration": entity.IntegrationJavaScript, "wayOfSearch": entity.WayOfSearchInstant,
		"domainIds": []string{"9f9f9f9f-0000-4000-8000-000000000000"},
	})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestFeeds_ActualizarReemplazaDominios(t *testing.T) {
	env := newTestEnv(t)
	id := env.createFeed(t, "abc123", domNL)

	name := "Feed EN"
	status, body := env.call(t, http.MethodPut, "/api/feeds/"+id, tokenForRole(t, entity.RoleEditor), dto.UpdateFeedRequest{
		Name: &name, DomainIDs: []string{domEN},
	})
	require.Equal(t, http.StatusOK, status, string(body))

	var out dto.FeedResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "Feed EN", out.Name)
	assert.Equal(t, []string{domEN}, out.DomainIDs)
	assert.Equal(t, []string{domEN}, env.feeds.feeds[id].DomainIDs)
}

const feedMissing = "3b7c1d2e-0000-4000-8000-0000000000ff"

func TestFeeds_InexistenteRetorna404(t *testing.T) {
	env := newTestEnv(t)
	admin := tokenForRole(t, entity.RoleAdmin)
	status, _ := env.call(t, http.MethodGet, "/api/feeds/"+feedMissing, admin, nil)
	assert.Equal(t, http.StatusNotFound, status)

	name := "x"
	status, _ = env.call(t, http.MethodPut, "/api/feeds/"+feedMissing, admin, dto.UpdateFeedRequest{Name: &name})
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = env.call(t, http.MethodDelete, "/api/feeds/"+feedMissing, admin, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestFeeds_IdNoUUIDRetorna400(t *testing.T) {
	env := newTestEnv(t)
	admin := tokenForRole(t, entity.RoleAdmin)
	name := "x"
	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		var body any
		if method == http.MethodPut {
			body = dto.UpdateFeedRequest{Name: &name}
		}
		status, raw := env.call(t, method, "/api/feeds/nope", admin, body)
		assert.Equal(t, http.StatusBadRequest, status, method)
		assert.Contains(t, string(raw), "INVALID_ID", method)
	}
}

func TestFeeds_PermisosPorRol(t *testing.T) {
	env := newTestEnv(t)
	id := env.createFeed(t, "abc123", domNL)

	status, _ := env.call(t, http.MethodGet, "/api/feeds", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status, "sin token")

	status, _ = env.call(t, http.MethodGet, "/api/feeds", tokenForRole(t, ""), nil)
	assert.Equal(t, http.StatusUnauthorized, status, "token sin rol")

	status, _ = env.call(t, http.MethodGet, "/api/feeds/"+id, tokenForRole(t, entity.RoleViewer), nil)
	assert.Equal(t, http.StatusOK, status, "viewer lee")

	status, _ = env.call(t, http.MethodPut, "/api/feeds/"+id, tokenForRole(t, entity.RoleViewer), map[string]any{"name": "x"})
	assert.Equal(t, http.StatusForbidden, status, "viewer no actualiza")

	status, _ = env.call(t, http.MethodPost, "/api/feeds", tokenForRole(t, entity.RoleViewer), map[string]any{
		"token": "x", "integration": entity.IntegrationJavaScript, "wayOfSearch": entity.WayOfSearchInstant,
	})
	assert.Equal(t, http.StatusForbidden, status, "viewer no escribe")

	status, _ = env.call(t, http.MethodDelete, "/api/feeds/"+id, tokenForRole(t, entity.RoleEditor), nil)
	assert.Equal(t, http.StatusForbidden, status, "solo admin elimina")

	status, _ = env.call(t, http.MethodDelete, "/api/feeds/"+id, tokenForRole(t, entity.RoleAdmin), nil)
	assert.Equal(t, http.StatusNoContent, status)
	assert.Empty(t, env.feeds.feeds)
}

func TestFeeds_Listar(t *testing.T) {
	env := newTestEnv(t)
	env.createFeed(t, "abc123", domNL)
	env.createFeed(t, "def456", domEN)

	status, body := env.call(t, http.MethodGet, "/api/feeds?limit=500", tokenForRole(t, entity.RoleViewer), nil)
	require.Equal(t, http.StatusOK, status)

	var out dto.FeedListResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Len(t, out.Items, 2)
	assert.Equal(t, 100, out.Page.Limit, "el límite se acota a 100")
}
