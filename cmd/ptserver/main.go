package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pt/internal/mockgen"
	"pt/internal/models"
	"pt/internal/server"
	"pt/internal/storage/memory"
	"pt/internal/util"
)

func main() {
	addrFlag := flag.String("addr", util.EnvOrDefault("PT_ADDR", ":8080"), "HTTP listen address")
	staticFlag := flag.String("static", util.EnvOrDefault("PT_STATIC_DIR", "app"), "Directory with the demo frontend and avatar images")
	errorsFlag := flag.String("errors", util.EnvOrDefault("PT_ERRORS_DIR", "errors"), "Directory for client error reports")
	seedFlag := flag.Uint64("seed", uint64(util.EnvOrDefaultInt("PT_SEED", 0)), "Dataset seed (0 picks a random one)")
	usersFlag := flag.Int("users", util.EnvOrDefaultInt("PT_USERS", mockgen.DefaultUserCount), "Number of generated users")
	itemsFlag := flag.Int("items", util.EnvOrDefaultInt("PT_ITEMS", mockgen.DefaultItemCount), "Number of generated items")
	delayFlag := flag.Duration("welcome-delay", 5*time.Second, "Cosmetic delay on the API root route")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Info("generating dataset",
		slog.Uint64("seed", seed),
		slog.Int("users", *usersFlag),
		slog.Int("items", *itemsFlag))

	gen := mockgen.New(seed)
	usersWithAuth := gen.Users(*usersFlag)
	items := gen.Items(*itemsFlag, models.StripAuth(usersWithAuth))

	store := memory.NewStore(usersWithAuth, items, logger)

	srv := server.New(store, logger, server.Config{
		StaticDir:    *staticFlag,
		ErrorsDir:    *errorsFlag,
		WelcomeDelay: *delayFlag,
	})

	httpServer := &http.Server{
		Addr:    *addrFlag,
		Handler: srv.Engine(),
	}

	go func() {
		logger.Info("starting server", slog.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped unexpectedly", slog.String("error", err.Error()))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("failed to shutdown server", slog.String("error", err.Error()))
	}

	logger.Info("server stopped")
}
