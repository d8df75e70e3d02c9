package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"polling-service/config"
	"polling-service/internal/api"
	"polling-service/internal/repository"
	"polling-service/internal/service"
	"polling-service/internal/socket"
	"polling-service/pkg/consul"
	"polling-service/pkg/zap"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

func main() {
	cfg := config.Load()
	logger := zap.NewLogger()
	defer func() { _ = logger.Sync() }()

	connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		cancel()
		logger.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		cancel()
		logger.Fatalf("Failed to ping MongoDB: %v", err)
	}
	cancel()
	logger.Info("Connected to MongoDB")

	db := client.Database(cfg.Mongo.Database)

	indexCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	err = repository.EnsureIndexes(indexCtx, db)
	cancel()
	if err != nil {
		logger.Fatalf("Failed to create indexes: %v", err)
	}

	userRepository := repository.NewUserRepository(db.Collection("users"))
	pollRepository := repository.NewPollRepository(db.Collection("polls"))
	optionRepository := repository.NewOptionRepository(db.Collection("poll_options"))
	voteRepository := repository.NewVoteRepository(db.Collection("votes"))

	resultService := service.NewResultService(optionRepository, voteRepository)
	userService := service.NewUserService(userRepository)
	pollService := service.NewPollService(pollRepository, optionRepository, userRepository, resultService)

	// The hub is built once here and handed to the vote service by reference.
	hub := socket.NewHub(resultService)
	go hub.Run()

	voteService := service.NewVoteService(voteRepository, optionRepository, hub)

	r := gin.Default()
	api.RegisterHealthRouters(r, db)
	api.RegisterUserRouters(r, userService)
	api.RegisterPollRouters(r, pollService)
	api.RegisterVoteRouters(r, voteService)
	api.RegisterSocketRouters(r, hub)

	var consulClient consul.Client
	if cfg.Consul.Host != "" {
		consulClient = consul.NewConsulConn(logger, cfg)
		consulClient.Connect()
	} else {
		logger.Warn("CONSUL_HOST not set, skipping service registration")
	}

	srv := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: r,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Server error: %v", err)
		}
	}()
	logger.Infof("Server listening on :%s", cfg.App.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if consulClient != nil {
		consulClient.Deregister()
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Server shutdown error: %v", err)
	}
	hub.Shutdown()
	if err := client.Disconnect(shutdownCtx); err != nil {
		logger.Errorf("MongoDB disconnect error: %v", err)
	}
}
