package config

import (
	"fmt"
	"os"
	"time"

	"Maltio-Backend/internal/api/handlers"
	"Maltio-Backend/internal/api/routes"
	"Maltio-Backend/internal/middleware"
	"Maltio-Backend/internal/utils"
	"Maltio-Backend/pkg/brew"
	"Maltio-Backend/pkg/recipe"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		AppName:   "maltio",
		Immutable: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up access log and limiter
	if err := os.MkdirAll("./logs", os.ModePerm); err != nil {
		return nil, fmt.Errorf("error creating logs directory: %w", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		return nil, fmt.Errorf("error opening access log: %w", err)
	}
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   utils.GetConfigOrDefault("DB_TIMEZONE", "UTC"),
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// Repository
	recipeRepository := recipe.NewRecipeRepository(db)
	brewRepository := brew.NewBrewRepository(db)

	// Service
	recipeService := recipe.NewRecipeService(
		recipeRepository,
		brewRepository,
		utils.GetConfigInt("HISTORY_LIMIT", recipe.DefaultHistoryLimit),
	)
	brewService := brew.NewBrewService(brewRepository, recipeService)

	// Handler
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	brewHandler := handlers.NewBrewHandler(brewService, validator)
	formulaHandler := handlers.NewFormulaHandler(recipeService, validator)

	// routes
	routesConfig := routes.Config{
		App:            app,
		RecipeHandler:  recipeHandler,
		BrewHandler:    brewHandler,
		FormulaHandler: formulaHandler,
		Middleware:     middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
