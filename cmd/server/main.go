package main

import (
	"log"
	"time"

	_ "mesa-game-backend/docs"
	"mesa-game-backend/internal/config"
	"mesa-game-backend/internal/database"
	"mesa-game-backend/internal/game"
	"mesa-game-backend/internal/handlers"
	"mesa-game-backend/internal/middleware"
	"mesa-game-backend/internal/services"
	"mesa-game-backend/internal/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Mesa Game API
// @version         1.0
// @description     API for the mesa party game: cards, AI challenges, peer voting and rewards
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	hub := ws.NewHub()

	authService := services.NewAuthService(db, cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)
	mesaService := services.NewMesaService(db)
	cardService := services.NewCardService(db)
	challengeService := services.NewChallengeService(cfg.OpenAIKey, cfg.OpenAIURL, cfg.OpenAIModel)
	analysisService := services.NewAnalysisService(challengeService)
	rewardService := services.NewRewardService(db, services.NewGormRewardCatalog(db))
	persona := services.NewCardPersona()

	if err := cardService.SeedDefaults(); err != nil {
		log.Printf("failed to seed default cards: %v", err)
	}
	rewardService.SeedCategories()

	router := services.NewEventRouter(db, hub, mesaService, rewardService)
	manager := game.NewManager(challengeService, analysisService, rewardService, persona, router, game.Options{
		VotingWindow: time.Duration(cfg.VotingWindowSec) * time.Second,
		ChatTurns:    cfg.ChatTurns,
	})

	authHandler := handlers.NewAuthHandler(authService)
	mesaHandler := handlers.NewMesaHandler(mesaService, hub)
	cardHandler := handlers.NewCardHandler(cardService)
	playHandler := handlers.NewPlayHandler(manager, mesaService, cardService, cfg.UploadDir)
	rewardHandler := handlers.NewRewardHandler(rewardService, mesaService)
	wsHandler := handlers.NewWSHandler(hub, mesaService)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Web-Token"},
		AllowCredentials: true,
	}))

	r.Static("/uploads", cfg.UploadDir)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws/mesa/:code", wsHandler.HandleWebSocket)

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		cards := api.Group("/cards")
		{
			cards.GET("", cardHandler.ListCards)
			cards.GET("/random", cardHandler.RandomCard)
			cards.GET("/:id", cardHandler.GetCard)

			cards.POST("", middleware.JWTAuth(authService), cardHandler.CreateCard)
			cards.PUT("/:id", middleware.JWTAuth(authService), cardHandler.UpdateCard)
			cards.DELETE("/:id", middleware.JWTAuth(authService), cardHandler.DeleteCard)
		}

		rewards := api.Group("/rewards")
		rewards.Use(middleware.JWTAuth(authService))
		{
			rewards.GET("", rewardHandler.ListCatalog)
			rewards.POST("", rewardHandler.CreateCatalogEntry)
			rewards.DELETE("/:id", rewardHandler.DeleteCatalogEntry)
		}

		mesas := api.Group("/mesas")
		{
			mesas.POST("", middleware.JWTAuth(authService), mesaHandler.CreateMesa)
			mesas.DELETE("/:code", middleware.JWTAuth(authService), mesaHandler.CloseMesa)

			mesas.GET("/:code", mesaHandler.GetMesa)
			mesas.POST("/:code/join", mesaHandler.JoinMesa)
			mesas.POST("/:code/reconnect", mesaHandler.Reconnect)
			mesas.GET("/:code/members", mesaHandler.ListMembers)
			mesas.GET("/:code/leaderboard", mesaHandler.Leaderboard)
			mesas.GET("/:code/round", playHandler.GetRound)

			member := mesas.Group("/:code")
			member.Use(middleware.MemberAuth())
			{
				member.POST("/leave", mesaHandler.LeaveMesa)
				member.POST("/round", playHandler.StartRound)
				member.DELETE("/round", playHandler.EndRound)
				member.POST("/round/chat", playHandler.EnterChat)
				member.POST("/round/chat/message", playHandler.SendChatMessage)
				member.POST("/round/chat/skip", playHandler.SkipChat)
				member.POST("/round/partner", playHandler.ChoosePartner)
				member.POST("/round/response", playHandler.Respond)
				member.POST("/round/audio", playHandler.UploadAudio)
				member.POST("/round/vote", playHandler.Vote)
				member.POST("/round/resolve", playHandler.ResolveRound)
				member.GET("/rewards", rewardHandler.MyRewards)
			}
		}
	}

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
