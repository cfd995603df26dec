// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/your-org/shopping-assistant/internal/config"
	"github.com/your-org/shopping-assistant/internal/domain/catalog"
	"github.com/your-org/shopping-assistant/internal/domain/delivery"
	"github.com/your-org/shopping-assistant/internal/domain/intent"
	"github.com/your-org/shopping-assistant/internal/domain/optimizer"
	"github.com/your-org/shopping-assistant/internal/domain/search"
	"github.com/your-org/shopping-assistant/internal/infrastructure/repository"
	"github.com/your-org/shopping-assistant/internal/interfaces/http/handlers"
)

// SetupRoutes wires the four pipeline endpoints with their services
func SetupRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log *logrus.Logger) {
	sources := []catalog.Source{
		repository.NewPostgresCatalogSource(db),
	}
	cache := repository.NewRedisSearchCache(redisClient, cfg.Search.CacheTTL, log)

	intentService := intent.NewService(log)
	searchService := search.NewService(sources, cache, cfg.Search, log)
	deliveryService := delivery.NewService(repository.NewPostgresWarehouseStore(db), cfg.Delivery, log)
	cartService := optimizer.NewService(repository.NewPostgresOfferStore(db), log)

	intentHandler := handlers.NewIntentHandler(intentService, log)
	searchHandler := handlers.NewSearchHandler(searchService, log)
	deliveryHandler := handlers.NewDeliveryHandler(deliveryService, log)
	cartHandler := handlers.NewCartHandler(cartService, log)

	rg.POST("/intent", intentHandler.Classify)
	rg.POST("/search", searchHandler.Search)

	deliveryGroup := rg.Group("/delivery")
	{
		deliveryGroup.POST("/optimize", deliveryHandler.Optimize)
		deliveryGroup.GET("/options", deliveryHandler.Options)
	}

	cartGroup := rg.Group("/cart")
	{
		cartGroup.POST("/optimize", cartHandler.Optimize)
	}
}
