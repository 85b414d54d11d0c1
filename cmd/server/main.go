package main

import (
	"context"
	"log/slog"
	"os"

	"batulens/config"
	"batulens/internal/delivery"
	"batulens/internal/delivery/http"
	"batulens/internal/delivery/http/middleware"
	"batulens/internal/delivery/http/router/handler"
	"batulens/internal/domain/service"
	"batulens/internal/infra/analytics"
	"batulens/internal/infra/auth"
	logs "batulens/internal/infra/log"
	"batulens/internal/infra/persistence/postgres"
	"batulens/internal/infra/pubsub"
	"batulens/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewVisitRepository,
			postgres.NewUserRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			analytics.NewClient,
			newEventPublisher,
		),
	)
}

// newEventPublisher creates a dataset event publisher with dependency injection
func newEventPublisher(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg.PubSub == nil {
		return nil, nil // event publishing is optional
	}

	switch cfg.PubSub.Provider {
	case "google":
		return pubsub.NewGooglePubSubPublisher(ctx, cfg.PubSub.ProjectID, cfg.PubSub.TopicID, logger)
	case "local":
		return pubsub.NewLocalHTTPPublisher(cfg.PubSub.LocalEndpoint, logger), nil
	default:
		return nil, nil
	}
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAnalysisService,
			impl.NewDashboardService,
			impl.NewVisitService,
			impl.NewAuthService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAnalysisHandler,
			handler.NewDashboardHandler,
			handler.NewAdminHandler,
			handler.NewAuthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
