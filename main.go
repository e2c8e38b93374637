// File: inkwell/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"inkwell/config"
	"inkwell/database"
	postRepoPkg "inkwell/database/repository/post"
	reachabilityRepoPkg "inkwell/database/repository/reachability"
	reactionRepoPkg "inkwell/database/repository/reaction"
	userRepoPkg "inkwell/database/repository/user"
	"inkwell/handlers"
	"inkwell/middleware"
	"inkwell/routes"
	"inkwell/services/notification"
	postSvc "inkwell/services/post"
	"inkwell/services/push"
	reactionSvc "inkwell/services/reaction"
	userSvc "inkwell/services/user"
	"inkwell/utils"
	"inkwell/workers"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	postRepo := postRepoPkg.NewMongoPostRepo()
	reactionRepo := reactionRepoPkg.NewMongoReactionRepo()
	reachabilityRepo := reachabilityRepoPkg.NewMongoReachabilityRepo()

	// push gateway.
	credentials, err := push.NewServiceAccountProvider(config.AppConfig.ServiceAccountFile)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize push credentials: %v", err)
	}
	pushClient := push.NewGatewayClient(config.FCMSendURL(), credentials)

	// dispatch queue.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer asynqClient.Close()
	dispatcher := notification.NewAsynqDispatcher(asynqClient)

	// services.
	userService := &userSvc.DefaultUserService{Repo: userRepo}
	postService := &postSvc.DefaultPostService{Repo: postRepo}
	registry := &notification.DefaultRegistry{
		Repo:       reachabilityRepo,
		Dispatcher: dispatcher,
	}
	flusher := &notification.Flusher{
		Reactions:  reactionRepo,
		Dispatcher: dispatcher,
		BatchSize:  notification.DefaultFlushBatchSize,
	}
	reactionService := &reactionSvc.DefaultReactionService{
		Posts:      postRepo,
		Reactions:  reactionRepo,
		Registry:   registry,
		Dispatcher: dispatcher,
	}

	// handlers.
	userHandler := handlers.NewUserHandler(userService)
	postHandler := handlers.NewPostHandler(postService)
	reactionHandler := handlers.NewReactionHandler(reactionService)
	deviceHandler := handlers.NewDeviceHandler(registry)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		// User endpoints.
		RegisterUserHandler:     userHandler.RegisterUserHandler,
		AuthenticateUserHandler: userHandler.AuthenticateUserHandler,
		GetCurrentUserHandler:   userHandler.GetCurrentUserHandler,

		// Post endpoints.
		ListPostsHandler:  postHandler.ListPostsHandler,
		GetPostHandler:    postHandler.GetPostHandler,
		CreatePostHandler: postHandler.CreatePostHandler,
		UpdatePostHandler: postHandler.UpdatePostHandler,
		DeletePostHandler: postHandler.DeletePostHandler,

		// Reaction endpoint.
		SubmitReactionHandler: reactionHandler.SubmitReactionHandler,

		// Device registration endpoints.
		RegisterDeviceHandler:   deviceHandler.RegisterDeviceHandler,
		DeregisterDeviceHandler: deviceHandler.DeregisterDeviceHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the background push worker.
	workers.InitDispatchWorker(pushClient, flusher)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown. In-flight push dispatches
	// may be abandoned here; their sent flags were already recorded.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
