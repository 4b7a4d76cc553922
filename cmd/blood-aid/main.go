package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/sheponsu/blood-aid-server/internal/auth"
	"github.com/sheponsu/blood-aid-server/internal/config"
	"github.com/sheponsu/blood-aid-server/internal/repository/postgres"
	"github.com/sheponsu/blood-aid-server/internal/service"
	myhttp "github.com/sheponsu/blood-aid-server/internal/transport/http"

	"github.com/sheponsu/blood-aid-server/pkg/logger/sl"
	"github.com/sheponsu/blood-aid-server/pkg/logger/slogpretty"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg := config.MustLoad()
	log := slogpretty.SetupLogger(cfg.Env)

	log.Info("starting blood-aid-server", slog.String("env", cfg.Env))

	errChan := make(chan error, 1)

	db, err := postgres.NewDB(cfg.Postgres, log)
	if err != nil {
		return fmt.Errorf("failed to init db: %v", err)
	}
	// errChan is closed once the listener goroutine exits, so a failed close
	// is logged rather than sent.
	defer func() {
		if err := db.DB().Close(); err != nil {
			log.Error("failed to close db", sl.Err(err))
		}
	}()

	requestRepo := postgres.NewRequestRepository(db.DB(), log)
	userRepo := postgres.NewUserRepository(db.DB(), log)
	paymentRepo := postgres.NewPaymentRepository(db.DB(), log)
	blogRepo := postgres.NewBlogRepository(db.DB(), log)

	tokens := auth.NewTokenManager(cfg.Auth.AccessTokenSecret, cfg.Auth.TokenTTL)

	donationService := service.NewDonationService(requestRepo, log)
	authService := service.NewAuthService(userRepo, tokens, log)
	userService := service.NewUserService(userRepo)
	// The card processor is an external collaborator; none is wired in this
	// deployment, so intent creation reports itself unconfigured.
	paymentService := service.NewPaymentService(paymentRepo, nil, log)
	blogService := service.NewBlogService(blogRepo, log)
	adminService := service.NewAdminService(userRepo, requestRepo, paymentRepo)

	srv := myhttp.NewServer(
		log,
		tokens,
		userRepo,
		donationService,
		authService,
		userService,
		paymentService,
		blogService,
		adminService,
	)

	httpServer := &http.Server{
		Addr:    net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler: srv.Routes(),
	}

	go startServer(log, httpServer, errChan)

	select {
	case err := <-errChan:
		return fmt.Errorf("http server error: %v", err)

	case <-ctx.Done():
		log.Info("stopping server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error shuting down http server: %v", err)
	}

	return nil
}

func startServer(log *slog.Logger, httpServer *http.Server, errChan chan error) {
	defer close(errChan)

	log.Info("service started", slog.String("addr", httpServer.Addr))

	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		errChan <- fmt.Errorf("error listening and serving: %v", err)
	}
}
