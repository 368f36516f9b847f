package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/divinedekor/decor-service/internal/config"
	"github.com/divinedekor/decor-service/internal/handlers"
	"github.com/divinedekor/decor-service/internal/repository"
	service "github.com/divinedekor/decor-service/internal/services"
	"github.com/divinedekor/decor-service/internal/storage"
	"github.com/divinedekor/decor-service/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	// load config
	cfg, err := config.Load("config/config.yaml")
	if err != nil {
		panic(err)
	}
	dev := cfg.App.Env == "development"

	// logger
	logger, _ := utils.NewLogger(dev)
	defer func() { _ = logger.Sync() }()

	// Mongo
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	mc, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		logger.Fatalf("mongo connect: %v", err)
	}
	col := mc.Database(cfg.Mongo.Database).Collection(cfg.Mongo.Collection)
	galleryRepo := repository.NewGalleryRepo(col)

	// testimonial file store
	reviews := repository.NewTestimonialStore(cfg.Testimonials.File, logger)

	// services
	gallerySvc := service.NewGalleryService(galleryRepo, logger)
	testimonialSvc := service.NewTestimonialService(reviews)

	// fiber app & routes
	app := fiber.New(fiber.Config{
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		UnescapePath: true,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	gh := handlers.NewGalleryHandler(gallerySvc, logger)
	th := handlers.NewTestimonialHandler(testimonialSvc, logger)

	api := app.Group("/api")
	api.Get("/testimonials", th.List)
	api.Post("/testimonials", th.Submit)
	api.Post("/fileUpload", gh.Upload)
	api.Get("/gallery", gh.ListAll)
	api.Get("/gallery/type/:fileType", gh.ListByType)
	api.Post("/gallery/like/:id", gh.Like)

	// media host adapter, only when a bucket is configured
	if cfg.AWS.Bucket != "" {
		store, err := storage.NewS3Store(context.Background(), cfg.AWS.Region, cfg.AWS.Bucket, cfg.AWS.Endpoint, cfg.S3.PublicRead)
		if err != nil {
			logger.Fatalf("s3 init: %v", err)
		}
		mh := handlers.NewMediaHandler(service.NewMediaService(store), logger)
		api.Post("/media", mh.Upload)
	}

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	// start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.App.Port)
		logger.Infof("starting decor service on %s", addr)
		if err := app.Listen(addr); err != nil {
			logger.Fatalf("listen failed: %v", err)
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, os.Kill)
	<-quit
	logger.Info("shutdown requested")
	timeoutCtx, cancel2 := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel2()

	_ = app.Shutdown()
	_ = mc.Disconnect(timeoutCtx)
	logger.Info("shutdown completed")
}
