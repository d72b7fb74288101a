package server

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"

	"elanbot/app/agent"
	"elanbot/app/api"
	"elanbot/app/middleware"
	"elanbot/model"
	"elanbot/store"
	"elanbot/types"

	"github.com/gofiber/fiber/v2"
)

var config = fiber.Config{
	ErrorHandler: api.ErrorHandler,
}

type Server struct {
	listenAddr string
	logger     *slog.Logger
	store      *store.PostgresStore
}

func NewServer(addr string) *Server {
	return &Server{
		listenAddr: addr,
		logger:     slog.Default(),
	}
}

func (s *Server) Stop() {
	if s.store != nil {
		s.store.Close()
	}
	s.logger.Info("server stopped")
}

// Run builds every external client exactly once and injects them into the
// handlers. Requests only ever read the shared collection, so the handles
// are safe to reuse without locking.
func (s *Server) Run() {
	ctx := context.Background()
	cfg := configFromEnv()

	port, _ := strconv.Atoi(os.Getenv("PG_PORT"))
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable", os.Getenv("PG_HOST"), port, os.Getenv("PG_USER"), os.Getenv("PG_PASS"), os.Getenv("PG_DB_NAME"))
	pool, err := store.NewPostgresStore(ctx, connStr, cfg.Collection)
	if err != nil {
		log.Fatal("error to connect to Postgres database", err)
		return
	}
	s.store = pool

	var (
		embedder  = model.NewEmbedder()
		llm       = model.NewLlamaClient()
		assistant = agent.NewAssistant(embedder, pool, llm, cfg.TopK)

		app          = fiber.New(config)
		checkHandler = api.NewCheckHandler()
		chatHandler  = api.NewChatHandler(assistant)
		fileHandler  = api.NewFileHandler(assistant)

		check = app.Group("/check")
		apiv1 = app.Group("/api/v1")
	)

	app.Use(middleware.PlugStatic("/"))
	app.Static("/", cfg.StaticDir)

	check.Get("/healthy", checkHandler.HandleHealthy)
	apiv1.Post("/chat", chatHandler.HandleChat)
	apiv1.Post("/eaf", fileHandler.HandleEafFile)

	err = app.Listen(s.listenAddr)
	if err != nil {
		s.logger.Error("error to start server", "error", err.Error())
		return
	}
}

func configFromEnv() types.Config {
	cfg := types.Config{
		Collection: os.Getenv("COLLECTION_NAME"),
		StaticDir:  os.Getenv("STATIC_DIR"),
	}
	if cfg.Collection == "" {
		cfg.Collection = "ELAN_docs_pages"
	}
	if cfg.StaticDir == "" {
		cfg.StaticDir = "./static"
	}
	if topK, err := strconv.Atoi(os.Getenv("TOP_K")); err == nil && topK > 0 {
		cfg.TopK = topK
	} else {
		cfg.TopK = 3
	}
	return cfg
}
