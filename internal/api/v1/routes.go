package v1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tamagotcho/tamagotcho-be/internal/api/v1/handlers"
	"github.com/tamagotcho/tamagotcho-be/internal/middleware"
)

// SetupRoutes registers all API v1 routes on the Fiber application.
func SetupRoutes(
	app *fiber.App,
	authHandler *handlers.AuthHandler,
	monsterHandler *handlers.MonsterHandler,
	questHandler *handlers.QuestHandler,
	walletHandler *handlers.WalletHandler,
	shopHandler *handlers.ShopHandler,
	paymentHandler *handlers.PaymentHandler,
	galleryHandler *handlers.GalleryHandler,
) {
	api := app.Group("/api/v1")

	// Public authentication routes.
	auth := api.Group("/auth")
	{
		auth.Post("/register", authHandler.Register)
		auth.Post("/login", authHandler.Login)
	}

	// Monster management and interactions.
	monsters := api.Group("/monsters", middleware.Protected())
	{
		monsters.Post("/", monsterHandler.CreateMonster)
		monsters.Get("/", monsterHandler.GetMonsters)
		monsters.Get("/:monsterId", monsterHandler.GetMonster)
		monsters.Post("/:monsterId/actions", monsterHandler.PerformAction)
		monsters.Patch("/:monsterId/visibility", monsterHandler.SetVisibility)
	}

	// Daily quests.
	quests := api.Group("/quests", middleware.Protected())
	{
		quests.Get("/", questHandler.GetDailyQuests)
		quests.Post("/:questId/claim", questHandler.ClaimQuestReward)
	}

	// Wallet reads.
	wallet := api.Group("/wallet", middleware.Protected())
	{
		wallet.Get("/", walletHandler.GetWallet)
		wallet.Get("/packages", walletHandler.GetKoinPackages)
	}

	// Shop catalog and purchases.
	shop := api.Group("/shop", middleware.Protected())
	{
		shop.Get("/catalog", shopHandler.GetCatalog)
		shop.Get("/owned", shopHandler.GetOwnedItems)
		shop.Post("/accessories/:itemId/purchase", shopHandler.PurchaseAccessory)
		shop.Post("/backgrounds/:itemId/purchase", shopHandler.PurchaseBackground)
		shop.Post("/boosts/:boostId/purchase", shopHandler.PurchaseBoost)
	}

	// Payments. The webhook is public (signature-verified), verification is
	// called by the authenticated success page.
	payments := api.Group("/payments")
	{
		payments.Post("/webhook", paymentHandler.HandleWebhook)
		payments.Post("/verify", middleware.Protected(), paymentHandler.VerifyPayment)
	}

	// Public monster gallery. Browsing requires a logged-in user but shows
	// other users' public monsters.
	gallery := api.Group("/gallery", middleware.Protected())
	{
		gallery.Get("/", galleryHandler.ListPublicMonsters)
		gallery.Get("/levels", galleryHandler.GetAvailableLevels)
	}

	// GET /api/v1/health - public health check
	api.Get("/health", HealthCheck)
}

// HealthCheck godoc
// @Summary Check API Health Status
// @Description Public endpoint to verify that the API is running and responsive.
// @Tags Public, Health
// @ID health-check-v1
// @Produce json
// @Success 200 {object} map[string]string "{"status":"UP"}"
// @Router /health [get]
func HealthCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "UP"})
}
