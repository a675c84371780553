package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"portfolio/internal/cart"
	"portfolio/internal/catalog"
	"portfolio/internal/checkout"
	"portfolio/internal/checkout/repository"
	"portfolio/internal/checkout/usecase"
	"portfolio/internal/commons"
	"portfolio/internal/config"
	"portfolio/internal/contact"
	"portfolio/internal/dispatch"
	"portfolio/internal/domain"
	"portfolio/internal/infrastructure/logger"
	"portfolio/internal/infrastructure/mysql"
	"portfolio/internal/pricing"
	"portfolio/internal/server"
	"portfolio/internal/session"
)

func main() {
	envFile := &cli.StringFlag{
		Name:  "env-file",
		Value: ".env",
		Usage: "dotenv file loaded before reading the environment",
	}

	app := &cli.App{
		Name:   "portfolio",
		Usage:  "portfolio site cart and checkout API",
		Flags:  []cli.Flag{envFile},
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP API (default)",
				Action: serve,
			},
			{
				Name:   "prices",
				Usage:  "print the catalog with promotional prices",
				Action: prices,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	if err := godotenv.Load(c.String("env-file")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading env file: %w", err)
	}
	return config.Load()
}

func serve(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer zapLogger.Sync()

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	file, err := commons.LoadCatalog(cfg.Catalog.Path)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	zapLogger.Info("catalog loaded", zap.String("path", cfg.Catalog.Path), zap.Int("services", len(file.Services)))

	ledger, closeLedger, err := newLedger(ctx, cfg.Database, zapLogger)
	if err != nil {
		return err
	}
	defer closeLedger()

	calc := pricing.NewCalculator(domain.Money(cfg.Catalog.DefaultDiscountCap))
	dispatcher := dispatch.NewDispatcher(newSender(cfg.EmailJS, zapLogger), calc, dispatch.Options{
		SurfaceFailures: cfg.Dispatch.SurfaceFailures,
		ToEmail:         cfg.Dispatch.ToEmail,
	}, zapLogger)

	sessions := session.NewStore(cfg.Session.TTL, zapLogger)
	go sessions.Run(ctx, cfg.Session.SweepInterval)

	catalogCtrl, offerings := catalog.NewModule(file, calc, zapLogger)
	checkoutCtrl := checkout.NewModule(ledger, dispatcher, calc, zapLogger, usecase.Options{
		SuccessDelay: cfg.Checkout.SuccessDelay,
		FailureDelay: cfg.Checkout.FailureDelay,
	})

	router := server.NewRouter(server.Controllers{
		Catalog:  catalogCtrl,
		Cart:     cart.NewModule(offerings, calc, zapLogger),
		Checkout: checkoutCtrl,
		Contact:  contact.NewController(dispatcher, zapLogger),
	}, server.SessionOptions{
		Store:      sessions,
		CookieName: cfg.Session.CookieName,
	}, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		zapLogger.Info("received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	zapLogger.Info("server stopped gracefully")
	return nil
}

// newLedger returns the MySQL order ledger when a database is enabled and
// an in-memory one otherwise.
func newLedger(ctx context.Context, cfg config.DatabaseConfig, zapLogger *zap.Logger) (usecase.OrderRequestRepository, func(), error) {
	if !cfg.Enabled {
		zapLogger.Warn("database disabled, order requests are kept in memory", zap.Int("limit", cfg.MemoryLimit))
		return repository.NewMemoryOrderRequestRepository(cfg.MemoryLimit), func() {}, nil
	}

	db, err := mysql.NewConnection(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to database: %w", err)
	}
	zapLogger.Info("database connected", zap.String("host", cfg.Host), zap.String("name", cfg.Name))

	if cfg.MigrateOnStart {
		if err := mysql.Migrate(db); err != nil {
			db.Close()
			return nil, nil, err
		}
		zapLogger.Info("database migrations applied")
	}

	return repository.NewMySQLOrderRequestRepository(db), func() { db.Close() }, nil
}

// newSender returns nil when EmailJS is not configured, which makes the
// dispatcher fall back to its simulated send.
func newSender(cfg config.EmailJSConfig, zapLogger *zap.Logger) dispatch.Sender {
	if !cfg.Configured() {
		zapLogger.Warn("EmailJS not configured, emails will be logged locally")
		return nil
	}

	return dispatch.NewEmailJSSender(dispatch.EmailJSConfig{
		Endpoint:          cfg.Endpoint,
		ServiceID:         cfg.ServiceID,
		OrderTemplateID:   cfg.OrderTemplateID,
		ContactTemplateID: cfg.ContactTemplateID,
		PublicKey:         cfg.PublicKey,
		PrivateKey:        cfg.PrivateKey,
		Timeout:           cfg.RequestTimeout,
	})
}
