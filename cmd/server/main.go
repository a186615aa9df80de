package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	restctx "spendtrack/internal/api/rest/context"
	"spendtrack/internal/api/rest/router"
	"spendtrack/internal/config"
	"spendtrack/internal/logger"
	"spendtrack/internal/model"
	"spendtrack/internal/password"
	"spendtrack/internal/repository/jsonfile"
	"spendtrack/internal/server"
	"spendtrack/internal/service"
	"spendtrack/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	store := jsonfile.NewStore(cfg.Storage.DataDir, logger)
	userRepo := jsonfile.NewUserRepository(store)
	expenseRepo := jsonfile.NewExpenseRepository(store)

	tokenManager := token.NewJWT(cfg.JWT.Secret)
	hasher := password.NewBcrypt()
	ctxMgr := restctx.NewManager()

	authService := service.NewAuth(userRepo, hasher, tokenManager, logger)
	expenseService := service.NewExpense(expenseRepo, logger)

	r := router.New(authService, expenseService, tokenManager, ctxMgr, cfg.CORS.AllowedOrigins, logger)
	httpServer := server.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(httpServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
