package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsdevblog/groph-store/internal/config"
	"github.com/fsdevblog/groph-store/internal/notify"
	"github.com/fsdevblog/groph-store/internal/repository/pgrepo"
	"github.com/fsdevblog/groph-store/internal/repository/redisrepo"
	"github.com/fsdevblog/groph-store/internal/repository/repoargs"
	"github.com/fsdevblog/groph-store/internal/service"
	"github.com/fsdevblog/groph-store/internal/tasks"
	"github.com/fsdevblog/groph-store/internal/transport/api"
	"github.com/fsdevblog/groph-store/internal/transport/payment"
	"github.com/fsdevblog/groph-store/internal/transport/shipstation"
	"github.com/fsdevblog/groph-store/pkg/uow"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
)

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if a.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	a.Logger.WithFields(logrus.Fields{
		"address": a.Config.RunAddress,
		"env":     a.Config.AppEnv,
	}).Info("starting storefront")

	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	deduper, closeRedis, redisErr := a.initDeduper(notifyCtx)
	if redisErr != nil {
		return fmt.Errorf("app run: %s", redisErr.Error())
	}
	defer closeRedis()

	queue := tasks.NewWithSize(a.Config.TaskQueueSize, a.Logger).
		SetWorkers(a.Config.TaskWorkers)

	services, sErr := service.Factory(service.FactoryArgs{
		UOW: unitOfWork,
		Payment: payment.NewStripe(payment.StripeConfig{
			SecretKey:        a.Config.StripeSecretKey,
			SuccessURL:       a.Config.CheckoutSuccessURL,
			CancelURL:        a.Config.CheckoutCancelURL,
			AllowedCountries: a.Config.ShippingCountries,
		}, nil, a.Logger),
		Verifier: payment.NewWebhookVerifier(a.Config.StripeWebhookSecret),
		Deduper:  deduper,
		Shipping: shipstation.
			New(a.Config.ShipstationBaseURL, a.Config.ShipstationAPIKey, a.Config.ShipstationAPISecret).
			SetTimeout(a.Config.ProviderTimeout),
		Notifier: notify.NewNotifier(a.initMailer(), queue, a.Config.MailFrom, a.Logger),
		Tasks:    queue,
		Currency: a.Config.StripeCurrency,
		Fulfillment: service.FulfillmentConfig{
			CarrierCode:         a.Config.ShipstationCarrier,
			FromPostalCode:      a.Config.ShipFromPostalCode,
			DefaultItemWeightOz: a.Config.DefaultItemWeightOz,
			FlatRate:            a.Config.FlatShippingRate,
		},
		Logger: a.Logger,
	})
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	router, routerErr := api.New(api.RouterArgs{
		Logger:             a.Logger,
		Production:         a.Config.IsProduction(),
		JWTSecretKey:       []byte(a.Config.JWTSecret),
		CheckoutService:    services.Checkout,
		WebhookService:     services.Webhooks,
		CreditService:      services.Ledger,
		OrderService:       services.Orders,
		FulfillmentService: services.Fulfillment,
		RefundService:      services.Refund,
	})
	if routerErr != nil {
		return fmt.Errorf("app run: %s", routerErr.Error())
	}

	// очередь живет дольше http сервера, чтобы успеть разобрать задачи, поставленные последними запросами.
	queueCtx, stopQueue := context.WithCancel(context.Background())
	queueDone := make(chan struct{})
	go func() {
		defer close(queueDone)
		queue.Run(queueCtx)
	}()
	defer func() {
		stopQueue()
		<-queueDone
	}()

	srv := &http.Server{
		Addr:              a.Config.RunAddress,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		if runErr := srv.ListenAndServe(); runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
			errChan <- runErr
		}
	}()

	select {
	case <-notifyCtx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil {
			a.Logger.WithError(shutdownErr).Error("http server shutdown")
		}
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

// initDeduper без REDIS_ADDR повторные доставки вебхуков отсекаются только базой.
func (a *App) initDeduper(ctx context.Context) (service.EventDeduper, func(), error) {
	if a.Config.RedisAddr == "" {
		a.Logger.Warn("REDIS_ADDR is not set, webhook dedupe relies on database only")
		return nil, func() {}, nil
	}

	client, connErr := redisrepo.Connect(ctx, a.Config.RedisAddr, a.Config.RedisPassword)
	if connErr != nil {
		return nil, nil, connErr //nolint:wrapcheck
	}

	closeFn := func() {
		if closeErr := client.Close(); closeErr != nil {
			a.Logger.WithError(closeErr).Warn("redis close")
		}
	}
	return redisrepo.NewEventStore(client, redisrepo.DefaultEventTTL), closeFn, nil
}

func (a *App) initMailer() notify.Mailer {
	if a.Config.MailerBaseURL == "" {
		return notify.NewLogMailer(a.Logger)
	}
	return notify.NewHTTPMailer(a.Config.MailerBaseURL, a.Config.MailerAPIKey)
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	factories := map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.UserRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewUserRepository(dbtx)
		},
		repoargs.ProductRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewProductRepository(dbtx)
		},
		repoargs.CheckoutSessionRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewCheckoutSessionRepository(dbtx)
		},
		repoargs.OrderRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewOrderRepository(dbtx)
		},
		repoargs.CommissionRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewCommissionRepository(dbtx)
		},
	}
	for name, factory := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(name), factory); regErr != nil {
			return nil, fmt.Errorf("init UOW: %s", regErr.Error())
		}
	}

	return unitOfWork, nil
}
