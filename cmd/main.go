package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"atleti-backend/config"
	"atleti-backend/events"
	"atleti-backend/handler"
	"atleti-backend/repository"
	"atleti-backend/router"
	"atleti-backend/service"
	"atleti-backend/storage"
)

func main() {
	cfg := config.Load()

	// Connect to MongoDB
	mongoClient, err := mongo.Connect(context.Background(), options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(context.Background())

	if err := mongoClient.Ping(context.Background(), nil); err != nil {
		log.Fatal("MongoDB ping error:", err)
	}
	log.Println("Connected to MongoDB successfully")

	db := mongoClient.Database(cfg.MongoDB)

	// Connect to object storage
	store, err := storage.NewMinioStorage(cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey)
	if err != nil {
		log.Fatal("Failed to connect to object storage:", err)
	}
	log.Printf("Object storage ready, covers bucket: %s, images bucket: %s", cfg.BucketCovers, cfg.BucketImages)

	// Event publishing is optional; the API works without a broker.
	var pub *events.Publisher
	if cfg.NATSURL != "" {
		pub, err = events.NewPublisher(cfg.NATSURL)
		if err != nil {
			log.Printf("[ERROR] NATS connection failed, events disabled: %v", err)
			pub = nil
		} else {
			defer pub.Close()
			log.Printf("NATS event publishing enabled at %s", cfg.NATSURL)
		}
	}

	articleSvc := service.NewArticleService(repository.NewArticleRepository(db), pub)
	playerSvc := service.NewPlayerService(repository.NewPlayerRepository(db))
	uploadSvc := service.NewUploadService(store, cfg.BucketCovers, cfg.URLCovers, cfg.BucketImages, cfg.URLImages)

	r := router.Setup(
		handler.NewArticleHandler(articleSvc),
		handler.NewPlayerHandler(playerSvc),
		handler.NewUploadHandler(uploadSvc),
	)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Printf("Atleti backend starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server:", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down atleti backend...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Atleti backend stopped")
}
