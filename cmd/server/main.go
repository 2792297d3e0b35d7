package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/mashtab-ss/okna-backend/internal/business/notify"
	"github.com/mashtab-ss/okna-backend/internal/platform/config"
	firestoreclient "github.com/mashtab-ss/okna-backend/internal/platform/firestore"
	apirouter "github.com/mashtab-ss/okna-backend/internal/platform/http"
	"github.com/mashtab-ss/okna-backend/internal/platform/mailer"
	"github.com/mashtab-ss/okna-backend/internal/repository"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load(".env.local", ".env")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load: %v", err)
	}

	gin.SetMode(cfg.GinMode)

	firestoreClient, credsSource, err := firestoreclient.New(ctx, cfg)
	if err != nil {
		log.Fatalf("firestore init: %v", err)
	}
	defer firestoreClient.Close()

	if err := firestoreclient.Ping(ctx, firestoreClient); err != nil {
		log.Fatalf("firestore ping: %v", err)
	}
	log.Printf("connected to Firestore project %s using %s credentials", cfg.FirebaseProjectID, credsSource)

	productRepo := repository.NewProductRepository(firestoreClient)
	requestRepo := repository.NewRequestRepository(firestoreClient)

	sender := mailer.New(mailer.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		User:     cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		Mock:     cfg.SMTPMock,
	})
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	notifier := notify.New(sender, cfg.NotifyTo, 64, logger)
	go notifier.Run(ctx)

	router := apirouter.NewRouter(productRepo, requestRepo, notifier, cfg.AllowedOrigins)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Printf("server listening on :%s", cfg.Port)

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}
	log.Println("server exited")
}
