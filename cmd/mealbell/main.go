package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"mealbell/config"
	"mealbell/internal/delivery"
	"mealbell/internal/delivery/http"
	"mealbell/internal/delivery/http/middleware"
	"mealbell/internal/delivery/http/router/handler"
	"mealbell/internal/delivery/scheduler"
	"mealbell/internal/domain/service"
	"mealbell/internal/infra/appfiles"
	"mealbell/internal/infra/auth"
	logs "mealbell/internal/infra/log"
	"mealbell/internal/infra/mail"
	"mealbell/internal/infra/menu"
	"mealbell/internal/infra/persistence/postgres"
	"mealbell/internal/infra/pubsub"
	"mealbell/internal/infra/push"
	"mealbell/internal/infra/qrcode"
	"mealbell/internal/infra/redis"
	"mealbell/internal/usecase/impl"

	"github.com/pkg/errors"
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
		pubsub.Module,
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
			postgres.NewUserRepository,
			postgres.NewDeviceRepository,
			postgres.NewCampaignRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			mail.NewLogMailer,
			newFirebaseService,
			newMenuSource,
			newCampaignLocker,
			newQRCodeService,
			newNotifyConfig,
			appfiles.NewBlobStore,
			fx.Annotate(
				newAppFilesBucketURL,
				fx.ResultTags(`name:"appFilesBucketURL"`),
			),
		),
	)
}

// newFirebaseService creates a Firebase service with dependency injection
func newFirebaseService(ctx context.Context, cfg *config.Config) (service.PushService, error) {
	if cfg.Firebase == nil {
		return nil, errors.New("firebase configuration is required")
	}

	svc, err := push.NewFirebaseService(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase service: %w", err)
	}

	return svc, nil
}

// newMenuSource creates the school-meals API client
func newMenuSource(cfg *config.Config) (service.MenuSource, error) {
	if cfg.Menu == nil {
		return nil, errors.New("menu configuration is required")
	}

	return menu.NewNEISSource(cfg.Menu), nil
}

// newCampaignLocker connects Redis and wraps it as the dedup gate
func newCampaignLocker(lc fx.Lifecycle, cfg *config.Config) (service.CampaignLocker, error) {
	if cfg.Redis == nil {
		return nil, errors.New("redis configuration is required")
	}

	client, err := redis.NewClient(cfg.Redis.URL)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return redis.NewLockService(client, cfg.Notify.DedupTTL), nil
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M", "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.InstallURL)
}

func newNotifyConfig(cfg *config.Config) config.NotifyConfig {
	return cfg.Notify
}

func newAppFilesBucketURL(cfg *config.Config) (string, error) {
	if cfg.AppFiles == nil || cfg.AppFiles.BucketURL == "" {
		return "", errors.New("appFiles bucket URL is required")
	}

	return cfg.AppFiles.BucketURL, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCampaignService,
			impl.NewDeviceService,
			impl.NewPreferenceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCampaignHandler,
			handler.NewDeviceHandler,
			handler.NewPreferenceHandler,
			handler.NewAppHandler,
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
			fx.Annotate(
				scheduler.NewScheduler,
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
