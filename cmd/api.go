package cmd

import (
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tharun634/JavaBot/api/application"
	"github.com/tharun634/JavaBot/api/rest"
	"github.com/tharun634/JavaBot/api/rest/middleware"
	"github.com/tharun634/JavaBot/core/config"
	"github.com/tharun634/JavaBot/infrastructure/discord"
	"github.com/tharun634/JavaBot/pkg/utils"
)

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Serve the read-only statistics API over http",
	Run:   apiServer,
}

func init() {
	rootCmd.AddCommand(apiCmd)
}

func apiServer(_ *cobra.Command, _ []string) {
	cfg := config.Global

	if cfg.Discord.Token == "" {
		logrus.Fatalln("DISCORD_TOKEN is required; the API validates guild and user ids against Discord.")
	}

	initStorage()

	gateway, err := discord.NewGateway(cfg.Discord.Token)
	if err != nil {
		logrus.Fatalln("Failed to create discord gateway: ", err.Error())
	}
	if err := gateway.Open(); err != nil {
		// REST lookups still work without the websocket; state is just cold.
		logrus.WithError(err).Warn("[DISCORD] websocket connection failed, continuing with REST lookups only")
	}

	stores := buildCacheStores(cfg)

	profileService := application.NewProfileService(
		gateway, stores.profile,
		qotwRepo, experienceRepo, preferencesRepo, warnRepo, settingsRepo,
	)
	leaderboardService := application.NewLeaderboardService(
		gateway, experienceRepo, qotwRepo,
		stores.experience, stores.qotw,
	)
	healthService := application.NewHealthService(cfg.App.Version, stores.backend, stores.entryCount)

	app := fiber.New(fiber.Config{
		AppName:               "JavaBot Stats API",
		Network:               "tcp",
		DisableStartupMessage: false,
	})

	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.App.CorsAllowedOrigins, ", "),
		AllowMethods: "GET,OPTIONS",
	}))
	app.Use(middleware.Recovery())
	if cfg.App.Debug {
		app.Use(logger.New())
	}

	apiGroup := app.Group(cfg.App.BasePath)
	rest.InitRestAPI(apiGroup, profileService, leaderboardService)
	rest.InitRestHealth(apiGroup, healthService)

	apiGroup.All("/*", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(utils.ResponseData{
			Status:  404,
			Code:    "NOT_FOUND_ERROR",
			Message: "API endpoint not found",
		})
	})

	// Graceful shutdown handler
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logrus.Info("[API] Received termination signal, shutting down gracefully...")
		if err := app.Shutdown(); err != nil {
			logrus.Errorf("[API] Error during Fiber shutdown: %v", err)
		}
		if err := gateway.Close(); err != nil {
			logrus.Errorf("[API] Error closing discord gateway: %v", err)
		}
		if stores.valkeyConn != nil {
			stores.valkeyConn.Close()
		}
	}()

	if err := app.Listen(":" + cfg.App.Port); err != nil {
		logrus.Fatalln("Failed to start: ", err.Error())
	}
}
