package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"hopa-consensus/config"
	"hopa-consensus/internal/api"
	"hopa-consensus/internal/api/v1/consensus"
	"hopa-consensus/internal/database"
	"hopa-consensus/internal/llm"
	"hopa-consensus/internal/services"
	"hopa-consensus/internal/utils"
	"hopa-consensus/pkg/logger"

	"go.uber.org/zap"
)

// @title hopa-consensus API
// @version 1.0
// @description Matches free text consensus requirements to questionnaire templates.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

func main() {
	loadFile := flag.String("load", "", "ingest templates from a JSON file and exit")
	adminToken := flag.String("admin-token", "", "print an admin token for the given subject and exit")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := logger.InitLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	}); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	if *adminToken != "" {
		token, err := utils.GenerateToken(*adminToken, utils.RoleAdmin, cfg.JWTSecret, 72*time.Hour)
		if err != nil {
			log.Fatalf("failed to sign admin token: %v", err)
		}
		fmt.Println(token)
		return
	}

	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("invalid APP_TIMEZONE %q: %v", cfg.Timezone, err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}
	if err := database.ConnectRedis(cfg); err != nil {
		log.Fatalf("failed to connect redis: %v", err)
	}

	store := services.NewTemplateStore(db)
	templates := services.NewTemplateService(
		store,
		services.NewTemplateSerializer(services.NewUnitCodec(loc)),
		services.NewTemplateCache(database.RedisClient, services.TemplateCacheDuration),
	)

	if *loadFile != "" {
		if err := loadTemplates(templates, *loadFile); err != nil {
			log.Fatalf("failed to load %s: %v", *loadFile, err)
		}
		return
	}

	completer := llm.NewClient(llm.Config{
		BaseURL: cfg.LLMBaseURL,
		APIKey:  cfg.LLMAPIKey,
		Model:   cfg.LLMModel,
		Timeout: cfg.LLMTimeout,
	})
	if cfg.LLMAPIKey == "" {
		logger.Log.Warn("LLM_API_KEY is not set; matching requests will fail")
	}

	matches := services.NewMatchService(
		services.NewKeywordExtractor(completer),
		services.NewMatcher(store),
		templates,
	)

	router := api.NewRouter(cfg, consensus.NewHandler(matches, templates))

	logger.Log.Info("server starting", zap.String("port", cfg.HTTPPort))
	if err := router.Run(":" + cfg.HTTPPort); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}

func loadTemplates(templates *services.TemplateService, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	docs, err := services.DecodeDocuments(f)
	if err != nil {
		return err
	}

	ids, err := templates.Ingest(context.Background(), docs)
	for _, id := range ids {
		fmt.Printf("保存成功，模板ID：%d\n", id)
	}
	return err
}
