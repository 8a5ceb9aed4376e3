package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"precharting-service/internal/app/config"
	"precharting-service/internal/app/delivery/http/middlewares"
	"precharting-service/internal/app/delivery/http/routers"
	"precharting-service/internal/app/drivers/database"
	"precharting-service/internal/app/drivers/logger"
	"precharting-service/internal/app/services/core/notes"
	"precharting-service/internal/app/services/shared/groq"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	if err := driverConfig.Validate(); err != nil {
		log.Fatalf("Invalid driver configuration: %v", err)
	}
	if err := internalConfig.Validate(); err != nil {
		log.Fatalf("Invalid application configuration: %v", err)
	}

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	mongoClient := database.NewMongoDB(driverConfig)

	bootstrap := config.Bootstrap{
		Router:         chi.NewRouter(),
		MongoClient:    mongoClient,
		Logger:         zapLogger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	bootstrapTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that were already received by the server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Error while shutting down application dependencies: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Provider
	groqProvider := groq.NewGroqService(bootstrap.InternalConfig, bootstrap.Logger)

	// Clinical notes
	noteRepository := notes.NewClinicalNoteMongoRepository(
		bootstrap.MongoClient,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	noteUsecase := notes.NewClinicalNoteUsecase(noteRepository, groqProvider, bootstrap.Logger)
	noteController := notes.NewClinicalNoteController(bootstrap.Logger, noteUsecase)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, noteController)
}
