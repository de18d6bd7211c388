package main

import (
	"log"
	"os"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"

	api "padelbot/api/strapi"
	"padelbot/api/telegram"
	"padelbot/domain/auth"
	"padelbot/domain/club"
	"padelbot/domain/feedback"
	"padelbot/domain/pairing"
	"padelbot/domain/player"
	"padelbot/domain/tournament"
	"padelbot/internal/logger"
	"padelbot/internal/session"
	"padelbot/internal/store"
	"padelbot/repositories/strapi"
	"padelbot/storage/adapters/redis"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, falling back to environment variables")
	}

	slogger := logger.Init()

	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN is not set")
	}
	apiURL := os.Getenv("PADEL_API_URL")
	if apiURL == "" {
		log.Fatal("PADEL_API_URL is not set")
	}

	tgBot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		log.Fatal(err)
	}
	slogger.Info("bot started", "username", tgBot.Self.UserName)

	// Remote data gateway and REST-backed repositories.
	gateway := api.NewClient(apiURL)
	clubRepo := strapi.NewClubRepository(gateway)
	playerRepo := strapi.NewPlayerRepository(gateway)
	tournamentRepo := strapi.NewTournamentRepository(gateway)
	rankingRepo := strapi.NewRankingRepository(gateway)
	authRepo := strapi.NewAuthRepository(gateway)
	pairingRepo := strapi.NewPairingRepository(gateway)
	feedbackRepo := strapi.NewFeedbackRepository(gateway)

	// Durable session storage (auth token + profile only).
	redisClient := redis.NewClient()
	defer redisClient.Close()
	sessionRepo := redis.NewSessionRepository(redisClient)

	// Domain services.
	clubService := club.NewService(clubRepo)
	playerService := player.NewService(playerRepo)
	tournamentService := tournament.NewService(tournamentRepo)
	pairingService := pairing.NewService(pairingRepo)
	authService := auth.NewService(authRepo, sessionRepo)
	feedbackService := feedback.NewService(feedbackRepo)

	// Per-chat stores plus the shared global ranking aggregator.
	sessions := session.NewManager(session.Deps{
		Clubs:         clubService,
		Players:       playerService,
		Tournaments:   tournamentService,
		Ranking:       rankingRepo,
		GlobalRanking: store.NewGlobalRanking(rankingRepo),
	})

	tgClient := telegram.NewClient(tgBot)
	handlers := telegram.NewHandlers(
		clubService,
		playerService,
		tournamentService,
		pairingService,
		authService,
		feedbackService,
		sessions,
		tgClient,
	)

	for update := range tgClient.GetUpdatesChan() {
		handlers.HandleUpdate(update)
	}
}
