package http

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/rafabene/starwars-api/docs"
	"github.com/rafabene/starwars-api/internal/domain/entities"
	"github.com/rafabene/starwars-api/internal/domain/ports"
	"github.com/rafabene/starwars-api/internal/handlers/dto"
	"github.com/rafabene/starwars-api/internal/handlers/middleware"
	"github.com/rafabene/starwars-api/internal/infrastructure/i18n"
)

// Handlers agrupa os handlers registrados no router
type Handlers struct {
	Users      *UserHandler
	Planets    *PlanetHandler
	Vehicles   *VehicleHandler
	Characters *CharacterHandler
	Favorites  *FavoriteHandler
}

// RouterConfig reúne as dependências transversais do router
type RouterConfig struct {
	Env            string
	BaseURL        string
	AllowedOrigins string
	I18n           *i18n.Service
	Logger         ports.Logger
	// Cache é opcional; nil desliga o cache de respostas
	Cache middleware.ResponseStore
}

// NewRouter monta todas as rotas. O handler devolvido aceita barra final
// opcional em qualquer rota.
func NewRouter(cfg RouterConfig, h Handlers) http.Handler {
	router := gin.New()
	router.RedirectTrailingSlash = false

	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(cfg.Logger))
	router.Use(func(c *gin.Context) {
		c.Set(dto.BaseURLContextKey, cfg.BaseURL)
		c.Next()
	})
	router.Use(middleware.NewI18nMiddleware(cfg.I18n).DetectLanguage())
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Msg: dto.T(c, "error.route_not_found")})
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("")
	if cfg.Cache != nil {
		api.Use(middleware.ResponseCache(cfg.Cache, cfg.Logger))
	}

	api.GET("/", sitemap(router))

	// Users
	api.GET("/user", h.Users.ListUsers)
	api.GET("/users", h.Users.ListUsers)
	api.POST("/user", h.Users.CreateUser)
	api.GET("/user/:id", h.Users.GetUser)
	api.PUT("/user/:id", h.Users.UpdateUser)
	api.DELETE("/user/:id", h.Users.DeactivateUser)
	api.GET("/user/:id/favorites", h.Users.ListFavorites)

	// Planets
	api.GET("/planet", h.Planets.ListPlanets)
	api.GET("/planets", h.Planets.ListPlanets)
	api.POST("/planet", h.Planets.CreatePlanet)
	api.GET("/planet/:id", h.Planets.GetPlanet)
	api.PUT("/planet/:id", h.Planets.UpdatePlanet)
	api.DELETE("/planet/:id", h.Planets.DeletePlanet)

	// Vehicles
	api.GET("/vehicle", h.Vehicles.ListVehicles)
	api.GET("/vehicles", h.Vehicles.ListVehicles)
	api.POST("/vehicle", h.Vehicles.CreateVehicle)
	api.GET("/vehicle/:id", h.Vehicles.GetVehicle)
	api.PUT("/vehicle/:id", h.Vehicles.UpdateVehicle)
	api.DELETE("/vehicle/:id", h.Vehicles.DeleteVehicle)

	// Characters
	api.GET("/character", h.Characters.ListCharacters)
	api.GET("/characters", h.Characters.ListCharacters)
	api.POST("/character", h.Characters.CreateCharacter)
	api.GET("/character/:id", h.Characters.GetCharacter)
	api.PUT("/character/:id", h.Characters.UpdateCharacter)
	api.DELETE("/character/:id", h.Characters.DeleteCharacter)

	// Favorites
	favorites := api.Group("/favorite")
	for _, kind := range entities.Kinds() {
		path := "/" + string(kind) + "/:target_id/:user_id"
		favorites.POST(path, h.Favorites.AddFavorite(kind))
		favorites.DELETE(path, h.Favorites.RemoveFavorite(kind))
	}

	return middleware.StripTrailingSlash(router)
}

// sitemap lista "MÉTODO caminho" de todas as rotas registradas
func sitemap(router *gin.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		routes := router.Routes()
		endpoints := make([]string, 0, len(routes))
		for _, route := range routes {
			endpoints = append(endpoints, route.Method+" "+route.Path)
		}
		sort.Strings(endpoints)

		dto.Respond(c, http.StatusOK, "sitemap", endpoints)
	}
}
