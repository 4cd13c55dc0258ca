package main

import (
	"context"
	"log"

	"github.com/Syed-Bipul-Rahman/call-server/config"
	"github.com/Syed-Bipul-Rahman/call-server/controllers"
	"github.com/Syed-Bipul-Rahman/call-server/models"
	"github.com/Syed-Bipul-Rahman/call-server/routes"
	"github.com/Syed-Bipul-Rahman/call-server/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := config.InitDB(); err != nil {
		log.Fatalf("database: %v", err)
	}

	ctx := context.Background()
	var dispatcher services.Dispatcher
	switch cfg.PushBackend {
	case "sns":
		dispatcher, err = services.NewSNSDispatcher(ctx)
	default:
		dispatcher, err = config.InitFCM(ctx)
	}
	if err != nil {
		log.Fatalf("push backend %q: %v", cfg.PushBackend, err)
	}

	store := models.NewGormUserStore(config.DB)
	authService := services.NewAuthService(store, cfg.JWTSecret)
	pushService := services.NewPushService(dispatcher)

	r := routes.SetupRouter(
		controllers.NewAuthController(authService),
		controllers.NewCallController(pushService),
		controllers.NewUserController(store),
		cfg.JWTSecret,
	)

	log.Printf("Server is running on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
