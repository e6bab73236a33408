package mapserver

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"treasurehunt/pkg/engine/world"
	"treasurehunt/pkg/game/generator"
	"treasurehunt/pkg/game/mapfile"
)

func newTestServer(t *testing.T, maxMaps int) (*Server, *mapfile.Store) {
	t.Helper()
	store := mapfile.NewStore(t.TempDir(), maxMaps)
	gen := generator.New(generator.DefaultConfig(), rand.New(rand.NewSource(5)))
	return New(store, gen), store
}

// corridor is a 4x4 map: player at 0,0, a wall column at x=1 with a gap at
// the bottom, and treasures at 3,0 and 0,3.
func corridor() *world.Grid {
	g := world.NewGrid(4)
	g.Set(world.Origin, world.Player)
	g.Set(world.Pos(1, 0), world.Wall)
	g.Set(world.Pos(1, 1), world.Wall)
	g.Set(world.Pos(1, 2), world.Wall)
	g.Set(world.Pos(3, 0), world.Treasure)
	g.Set(world.Pos(0, 3), world.Treasure)
	return g
}

func do(t *testing.T, s *Server, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func TestList(t *testing.T) {
	s, store := newTestServer(t, 10)

	w := do(t, s, http.MethodGet, "/maps")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"maps":[]}`, w.Body.String())

	_, err := store.Save(corridor())
	require.NoError(t, err)
	_, err = store.Save(corridor())
	require.NoError(t, err)

	w = do(t, s, http.MethodGet, "/maps")
	assert.JSONEq(t, `{"maps":["map1.json","map2.json"]}`, w.Body.String())
}

func TestCreate(t *testing.T) {
	s, store := newTestServer(t, 2)

	for _, want := range []string{"map1.json", "map2.json"} {
		w := do(t, s, http.MethodPost, "/maps")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var resp createResponse
		decode(t, w, &resp)
		assert.Equal(t, want, resp.Name)
	}

	w := do(t, s, http.MethodPost, "/maps")
	assert.Equal(t, http.StatusInsufficientStorage, w.Code)

	names, err := store.List()
	require.NoError(t, err)
	assert.Len(t, names, 2)
}

func TestGet(t *testing.T) {
	s, store := newTestServer(t, 10)
	_, err := store.Save(corridor())
	require.NoError(t, err)

	w := do(t, s, http.MethodGet, "/maps/map1.json")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"grid":["3102","0100","0100","2000"],"size":4,"treasures":2}`, w.Body.String())

	w = do(t, s, http.MethodGet, "/maps/map1")
	assert.Equal(t, http.StatusOK, w.Code, "extension is optional")

	w = do(t, s, http.MethodGet, "/maps/map7.json")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, s, http.MethodGet, "/maps/readme.txt")
	assert.Equal(t, http.StatusNotFound, w.Code)

	require.NoError(t, os.WriteFile(filepath.Join(store.Dir, "map3.json"), []byte(`{"grid":["0"],"size":1,"treasures":0}`), 0o644))
	w = do(t, s, http.MethodGet, "/maps/map3.json")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var resp errorResponse
	decode(t, w, &resp)
	assert.True(t, strings.HasPrefix(resp.Error, "map3.json"), resp.Error)
}

func TestPath_DefaultsToNearestTreasure(t *testing.T) {
	s, store := newTestServer(t, 10)
	_, err := store.Save(corridor())
	require.NoError(t, err)

	w := do(t, s, http.MethodGet, "/maps/map1.json/path")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp pathResponse
	decode(t, w, &resp)

	assert.Equal(t, "bfs", string(resp.Algo))
	assert.Equal(t, point{0, 0}, resp.From)
	require.NotNil(t, resp.To)
	assert.Equal(t, point{0, 3}, *resp.To)
	assert.Equal(t, 3, resp.Steps)
	assert.Equal(t, []point{{0, 0}, {0, 1}, {0, 2}, {0, 3}}, resp.Path)
}

func TestPath_ExplicitEndpoints(t *testing.T) {
	s, store := newTestServer(t, 10)
	_, err := store.Save(corridor())
	require.NoError(t, err)

	for _, algo := range []string{"bfs", "astar"} {
		w := do(t, s, http.MethodGet, "/maps/map1.json/path?algo="+algo+"&from=0,0&to=3,0")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var resp pathResponse
		decode(t, w, &resp)
		assert.Equal(t, algo, string(resp.Algo))
		assert.Equal(t, 9, resp.Steps, algo)
		require.Len(t, resp.Path, 10)
		assert.Equal(t, point{3, 0}, resp.Path[len(resp.Path)-1])
	}
}

func TestPath_Unreachable(t *testing.T) {
	s, store := newTestServer(t, 10)
	g := corridor()
	g.Set(world.Pos(1, 3), world.Wall)
	_, err := store.Save(g)
	require.NoError(t, err)

	w := do(t, s, http.MethodGet, "/maps/map1.json/path?to=3,0")
	require.Equal(t, http.StatusOK, w.Code)
	var resp pathResponse
	decode(t, w, &resp)
	assert.Equal(t, -1, resp.Steps)
	assert.Nil(t, resp.Path)
	assert.Contains(t, w.Body.String(), `"path":null`)
}

func TestPath_BadQuery(t *testing.T) {
	s, store := newTestServer(t, 10)
	_, err := store.Save(corridor())
	require.NoError(t, err)

	for _, q := range []string{"algo=dijkstra", "from=a,b", "to=9,9", "from=-1,0"} {
		w := do(t, s, http.MethodGet, "/maps/map1.json/path?"+q)
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
	}

	w := do(t, s, http.MethodGet, "/maps/map2.json/path")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRequestID(t *testing.T) {
	s, _ := newTestServer(t, 10)

	w := do(t, s, http.MethodGet, "/maps")
	_, err := uuid.Parse(w.Header().Get(RequestIDHeader))
	assert.NoError(t, err, "a fresh id is assigned")

	id := uuid.New().String()
	req := httptest.NewRequest(http.MethodGet, "/maps", nil)
	req.Header.Set(RequestIDHeader, id)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	assert.Equal(t, id, rec.Header().Get(RequestIDHeader))
}
