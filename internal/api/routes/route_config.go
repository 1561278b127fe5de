package routes

import (
	"Maltio-Backend/internal/api/handlers"
	"Maltio-Backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App            *fiber.App
	RecipeHandler  handlers.RecipeHandler
	BrewHandler    handlers.BrewHandler
	FormulaHandler handlers.FormulaHandler
	Middleware     middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.Formulas()
	c.Recipes()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) Formulas() {
	formulas := c.App.Group("/api/v1/formulas")
	formulas.Post("/metrics", c.FormulaHandler.CalculateMetrics)
	formulas.Post("/diff", c.FormulaHandler.DiffRecipes)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")
	identity := c.Middleware.IdentityMiddleware()

	// Reading is open to everyone
	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
	recipes.Get("/:id/history", c.RecipeHandler.GetRecipeHistory)
	recipes.Get("/:id/versions/:version", c.RecipeHandler.GetRecipeVersion)
	recipes.Get("/:id/brews", c.BrewHandler.GetBrews)

	recipes.Post("", identity, c.RecipeHandler.CreateRecipe)
	recipes.Put("/:id", identity, c.RecipeHandler.UpdateRecipe)
	recipes.Delete("/:id", identity, c.RecipeHandler.DeleteRecipe)
	recipes.Post("/:id/clone", identity, c.RecipeHandler.CloneRecipe)
	recipes.Post("/:id/brews", identity, c.BrewHandler.CreateBrew)
	recipes.Put("/:id/brews/:brewId", identity, c.BrewHandler.UpdateBrew)
}
