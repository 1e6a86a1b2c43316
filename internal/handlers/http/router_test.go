package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafabene/starwars-api/internal/infrastructure/config"
	"github.com/rafabene/starwars-api/internal/infrastructure/i18n"
	"github.com/rafabene/starwars-api/internal/infrastructure/logging"
	"github.com/rafabene/starwars-api/internal/infrastructure/persistence/gormstore"
	"github.com/rafabene/starwars-api/internal/services"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := logging.NewSlogLoggerWithWriter("error", io.Discard)

	cfg := &config.DatabaseConfig{URL: "sqlite://" + filepath.Join(t.TempDir(), "api.db")}
	db, err := gormstore.NewDatabaseConnection(cfg, "error", logger)
	require.NoError(t, err)
	require.NoError(t, gormstore.AutoMigrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	i18nService, err := i18n.NewEmbeddedService("en")
	require.NoError(t, err)

	userRepo := gormstore.NewUserRepository(db)
	planetRepo := gormstore.NewPlanetRepository(db)
	vehicleRepo := gormstore.NewVehicleRepository(db)
	characterRepo := gormstore.NewCharacterRepository(db)
	favoriteRepo := gormstore.NewFavoriteRepository(db)
	uow := gormstore.NewUnitOfWork(db)

	return NewRouter(RouterConfig{
		Env:            "test",
		BaseURL:        "http://api.test",
		AllowedOrigins: "*",
		I18n:           i18nService,
		Logger:         logger,
	}, Handlers{
		Users:      NewUserHandler(services.NewUserService(userRepo, favoriteRepo, planetRepo, vehicleRepo, characterRepo, uow, logger)),
		Planets:    NewPlanetHandler(services.NewPlanetService(planetRepo, favoriteRepo, uow, logger)),
		Vehicles:   NewVehicleHandler(services.NewVehicleService(vehicleRepo, favoriteRepo, uow, logger)),
		Characters: NewCharacterHandler(services.NewCharacterService(characterRepo, uow, logger)),
		Favorites:  NewFavoriteHandler(services.NewFavoriteService(userRepo, favoriteRepo, planetRepo, vehicleRepo, characterRepo, uow, logger)),
	})
}

type apiResponse struct {
	Msg   string          `json:"msg"`
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

func do(t *testing.T, h http.Handler, method, target, body string, headers ...string) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var resp apiResponse
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	}
	return w, resp
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}

const tatooineJSON = `{"name":"Tatooine","diameter":10465,"population":200000,"duration_day":23,"terrain":"desert"}`

func TestPlanetEndpoints(t *testing.T) {
	h := newTestServer(t)

	w, resp := do(t, h, http.MethodPost, "/planet", tatooineJSON)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "New planet created!", resp.Msg)

	created := decode[map[string]any](t, resp.Data)
	assert.EqualValues(t, 1, created["planet_id"])

	w, resp = do(t, h, http.MethodGet, "/planet/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, created, decode[map[string]any](t, resp.Data))

	t.Run("duplicate name conflicts", func(t *testing.T) {
		w, resp := do(t, h, http.MethodPost, "/planet", tatooineJSON)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "A planet with this name already exists", resp.Msg)
	})

	t.Run("missing fields", func(t *testing.T) {
		w, resp := do(t, h, http.MethodPost, "/planet", `{"name":"Hoth"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, `Fields "name", "diameter", "population", "duration_day", "terrain" are mandatory`, resp.Msg)
	})

	t.Run("malformed body counts as no fields", func(t *testing.T) {
		w, _ := do(t, h, http.MethodPost, "/planet", `not json`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("null counts as missing", func(t *testing.T) {
		w, _ := do(t, h, http.MethodPost, "/planet",
			`{"name":"Hoth","diameter":null,"population":0,"duration_day":23,"terrain":"ice"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("update replaces every field", func(t *testing.T) {
		body := `{"name":"Tatooine II","diameter":1,"population":2,"duration_day":3,"terrain":"rock"}`
		w, resp := do(t, h, http.MethodPut, "/planet/1", body)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Planet with id: 1 modified!", resp.Msg)

		_, resp = do(t, h, http.MethodGet, "/planet/1", "")
		assert.JSONEq(t,
			`{"planet_id":1,"name":"Tatooine II","diameter":1,"population":2,"duration_day":3,"terrain":"rock"}`,
			string(resp.Data))
	})

	t.Run("list and plural alias", func(t *testing.T) {
		for _, path := range []string{"/planet", "/planets", "/planets/"} {
			w, resp := do(t, h, http.MethodGet, path, "")
			require.Equal(t, http.StatusOK, w.Code, path)
			assert.Len(t, decode[[]map[string]any](t, resp.Data), 1, path)
		}
	})

	t.Run("unknown and non numeric ids are 404", func(t *testing.T) {
		w, resp := do(t, h, http.MethodGet, "/planet/99", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Planet with id: 99 doesn't exist", resp.Msg)

		w, _ = do(t, h, http.MethodGet, "/planet/abc", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete", func(t *testing.T) {
		w, resp := do(t, h, http.MethodDelete, "/planet/1/", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Planet with id: 1 erased", resp.Msg)

		w, _ = do(t, h, http.MethodDelete, "/planet/1", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUserEndpoints(t *testing.T) {
	h := newTestServer(t)
	body := `{"user_name":"luke","email":"luke@rebels.org","password":"x"}`

	w, resp := do(t, h, http.MethodPost, "/user", body)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "User successfully created", resp.Msg)
	user := decode[map[string]any](t, resp.Data)
	assert.NotContains(t, user, "password")
	assert.Equal(t, true, user["is_active"])

	w, resp = do(t, h, http.MethodPost, "/user", body)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "This email is already in use by an active user", resp.Msg)

	w, resp = do(t, h, http.MethodDelete, "/user/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "User with id: 1 deactivated", resp.Msg)

	w, _ = do(t, h, http.MethodDelete, "/user/1", "")
	assert.Equal(t, http.StatusConflict, w.Code)

	w, _ = do(t, h, http.MethodPut, "/user/1", body)
	assert.Equal(t, http.StatusConflict, w.Code)

	w, resp = do(t, h, http.MethodPost, "/user", `{"user_name":"other","email":"luke@rebels.org","password":"y"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "User successfully reactivated", resp.Msg)
	assert.JSONEq(t, `{"id":1,"user_name":"luke","email":"luke@rebels.org","is_active":true}`, string(resp.Data))

	w, resp = do(t, h, http.MethodPut, "/user/1", `{"user_name":"leia","email":"leia@rebels.org","password":"z"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "User with id 1 successfully updated", resp.Msg)

	w, resp = do(t, h, http.MethodGet, "/users", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"user_name":"leia","email":"leia@rebels.org","is_active":true}]`, string(resp.Data))

	w, resp = do(t, h, http.MethodPost, "/user", `{"user_name":"han"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, `Fields "user_name", "email", "password" are mandatory`, resp.Msg)
}

func TestFavoriteEndpoints(t *testing.T) {
	h := newTestServer(t)

	do(t, h, http.MethodPost, "/user", `{"user_name":"luke","email":"luke@rebels.org","password":"x"}`)
	do(t, h, http.MethodPost, "/planet", tatooineJSON)
	do(t, h, http.MethodPost, "/vehicle", `{"name":"Speeder","crew":1,"model":"X-34","length":3,"cargo_capacity":5}`)
	do(t, h, http.MethodPost, "/character", `{"name":"Luke","skin_color":"fair","birth_year":"19BBY","gender":"male","height":172}`)

	w, resp := do(t, h, http.MethodPost, "/favorite/planet/1/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Planet with id: 1 added as favorite for user with id: 1", resp.Msg)
	assert.JSONEq(t, `{"id":1,"user_id":1,"planet_id":1}`, string(resp.Data))

	w, resp = do(t, h, http.MethodPost, "/favorite/planet/1/1", "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Planet with id: 1 is already a favorite for user with id: 1", resp.Msg)

	w, _ = do(t, h, http.MethodPost, "/favorite/vehicle/1/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	w, _ = do(t, h, http.MethodPost, "/favorite/character/1/1", "")
	require.Equal(t, http.StatusOK, w.Code)

	w, resp = do(t, h, http.MethodGet, "/user/1/favorites", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "All the favorites from user id: 1 are those:", resp.Msg)
	favorites := decode[map[string][]map[string]any](t, resp.Data)
	assert.Equal(t, "Tatooine", favorites["favorite_planets"][0]["name"])
	assert.Equal(t, "Speeder", favorites["favorite_vehicles"][0]["name"])
	assert.Equal(t, "Luke", favorites["favorite_characters"][0]["name"])

	w, resp = do(t, h, http.MethodDelete, "/planet/1", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Please delete the favorite relationships for planet with id: 1 before deleting the planet", resp.Msg)

	w, _ = do(t, h, http.MethodDelete, "/character/1", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w, resp = do(t, h, http.MethodDelete, "/favorite/planet/1/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Planet with id: 1 deleted from favorites for user with id: 1", resp.Msg)

	w, resp = do(t, h, http.MethodDelete, "/favorite/planet/1/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Favorite relationship between user id: 1 and planet id: 1 doesn't exist", resp.Msg)

	w, _ = do(t, h, http.MethodDelete, "/planet/1", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w, resp = do(t, h, http.MethodPost, "/favorite/planet/1/7", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User with id: 7 doesn't exist", resp.Msg)

	do(t, h, http.MethodDelete, "/user/1", "")
	w, resp = do(t, h, http.MethodPost, "/favorite/planet/42/1", "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "User with id: 1 is deactivated", resp.Msg)
}

func TestProblemDetails(t *testing.T) {
	h := newTestServer(t)

	w, _ := do(t, h, http.MethodGet, "/vehicle/5", "", "Accept", "application/problem+json")

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "application/problem+json", w.Header().Get("Content-Type"))

	var problem map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &problem))
	assert.Equal(t, "http://api.test/problems/not-found", problem["type"])
	assert.Equal(t, "Vehicle with id: 5 doesn't exist", problem["detail"])
	assert.EqualValues(t, http.StatusNotFound, problem["status"])
	assert.Equal(t, "/vehicle/5", problem["instance"])
}

func TestLocalizedMessages(t *testing.T) {
	h := newTestServer(t)

	w, resp := do(t, h, http.MethodPost, "/planet?lang=es", tatooineJSON)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "¡Nuevo planeta creado!", resp.Msg)

	_, resp = do(t, h, http.MethodGet, "/planet/1", "", "Accept-Language", "es")
	assert.Equal(t, "Hola, esta es tu respuesta GET /planet para ver un planeta", resp.Msg)
}

func TestSitemapAndHealth(t *testing.T) {
	h := newTestServer(t)

	w, resp := do(t, h, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)
	endpoints := decode[[]string](t, resp.Data)
	assert.Contains(t, endpoints, "POST /favorite/planet/:target_id/:user_id")
	assert.Contains(t, endpoints, "GET /user/:id/favorites")

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","env":"test"}`, w.Body.String())

	w, resp = do(t, h, http.MethodGet, "/nowhere", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Not found", resp.Msg)
}

func TestMistypedFields(t *testing.T) {
	h := newTestServer(t)

	t.Run("mistyped field does not hide the email of a deactivated user", func(t *testing.T) {
		do(t, h, http.MethodPost, "/user", `{"user_name":"luke","email":"luke@rebels.org","password":"x"}`)
		do(t, h, http.MethodDelete, "/user/1", "")

		w, resp := do(t, h, http.MethodPost, "/user", `{"user_name":"luke","email":"luke@rebels.org","password":123}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "User successfully reactivated", resp.Msg)
	})

	t.Run("uniqueness is checked before the mistyped field", func(t *testing.T) {
		do(t, h, http.MethodPost, "/planet", tatooineJSON)

		w, resp := do(t, h, http.MethodPost, "/planet",
			`{"name":"Tatooine","diameter":10465.5,"population":1,"duration_day":1,"terrain":"sand"}`)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "A planet with this name already exists", resp.Msg)
	})

	t.Run("mistyped field counts as missing and is never stored as zero", func(t *testing.T) {
		w, _ := do(t, h, http.MethodPost, "/planet",
			`{"name":"Hoth","diameter":10465.5,"population":1,"duration_day":1,"terrain":"ice"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		_, resp := do(t, h, http.MethodGet, "/planets", "")
		assert.Len(t, decode[[]map[string]any](t, resp.Data), 1)
	})
}

// fire dispara n requisições idênticas em paralelo e conta os status
func fire(h http.Handler, n int, method, target, body string) map[int]int {
	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		counts = map[int]int{}
	)

	start := make(chan struct{})
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start

			var reader io.Reader
			if body != "" {
				reader = strings.NewReader(body)
			}
			req := httptest.NewRequest(method, target, reader)
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			mu.Lock()
			counts[w.Code]++
			mu.Unlock()
		}()
	}
	close(start)
	wg.Wait()
	return counts
}

func TestConcurrentWritesAreSerialized(t *testing.T) {
	const n = 20
	h := newTestServer(t)

	t.Run("same planet name", func(t *testing.T) {
		counts := fire(h, n, http.MethodPost, "/planet", tatooineJSON)
		assert.Equal(t, map[int]int{http.StatusCreated: 1, http.StatusConflict: n - 1}, counts)

		_, resp := do(t, h, http.MethodGet, "/planets", "")
		assert.Len(t, decode[[]map[string]any](t, resp.Data), 1)
	})

	t.Run("same user email", func(t *testing.T) {
		counts := fire(h, n, http.MethodPost, "/user", `{"user_name":"luke","email":"luke@rebels.org","password":"x"}`)
		assert.Equal(t, map[int]int{http.StatusCreated: 1, http.StatusConflict: n - 1}, counts)

		_, resp := do(t, h, http.MethodGet, "/users", "")
		assert.Len(t, decode[[]map[string]any](t, resp.Data), 1)
	})

	t.Run("same favorite pair", func(t *testing.T) {
		counts := fire(h, n, http.MethodPost, "/favorite/planet/1/1", "")
		assert.Equal(t, map[int]int{http.StatusOK: 1, http.StatusConflict: n - 1}, counts)

		_, resp := do(t, h, http.MethodGet, "/user/1/favorites", "")
		favorites := decode[map[string][]map[string]any](t, resp.Data)
		assert.Len(t, favorites["favorite_planets"], 1)
	})

	t.Run("deactivating the same user", func(t *testing.T) {
		counts := fire(h, n, http.MethodDelete, "/user/1", "")
		assert.Equal(t, map[int]int{http.StatusOK: 1, http.StatusConflict: n - 1}, counts)
	})
}
