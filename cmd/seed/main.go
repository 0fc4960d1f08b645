package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"question-service/internal/config"
	"question-service/internal/database"
	"question-service/internal/domain"
	"question-service/internal/logger"
	"question-service/internal/repository"

	"go.uber.org/zap"
)

const defaultSeedFilePath = "config/seed_data/questions.json"

// seedQuestion mirrors the JSON shape of the seed file
type seedQuestion struct {
	Category      string `json:"category"`
	Difficulty    string `json:"difficulty"`
	Option1       string `json:"option1"`
	Option2       string `json:"option2"`
	Option3       string `json:"option3"`
	Option4       string `json:"option4"`
	QuestionTitle string `json:"questionTitle"`
	CorrectAnswer string `json:"correctAnswer"`
}

func main() {
	seedFilePath := flag.String("file", defaultSeedFilePath, "path to the seed data file")
	flag.Parse()

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	log.Info("Starting question seeding process...")
	db, err := database.NewSQLXPostgresDB(cfg.GetDSN())
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	log.Info("Loading seed data from file", zap.String("path", *seedFilePath))
	byteValue, err := os.ReadFile(*seedFilePath)
	if err != nil {
		log.Fatal("Failed to read seed file", zap.String("path", *seedFilePath), zap.Error(err))
	}

	var seedQuestions []seedQuestion
	if err := json.Unmarshal(byteValue, &seedQuestions); err != nil {
		log.Fatal("Failed to unmarshal seed data", zap.Error(err))
	}
	log.Info("Successfully unmarshalled seed data", zap.Int("questions_loaded", len(seedQuestions)))

	repo := repository.NewQuestionDatabaseAdapter(db)
	seeded := 0
	for _, sq := range seedQuestions {
		question := &domain.Question{
			Category:      sq.Category,
			Difficulty:    sq.Difficulty,
			Option1:       sq.Option1,
			Option2:       sq.Option2,
			Option3:       sq.Option3,
			Option4:       sq.Option4,
			QuestionTitle: sq.QuestionTitle,
			CorrectAnswer: sq.CorrectAnswer,
		}
		if err := question.Validate(); err != nil {
			log.Error("Skipping invalid seed question", zap.String("title", sq.QuestionTitle), zap.Error(err))
			continue
		}
		if err := repo.SaveQuestion(ctx, question); err != nil {
			log.Error("Failed to seed question", zap.String("title", sq.QuestionTitle), zap.Error(err))
			continue
		}
		seeded++
	}

	log.Info("Question seeding process completed.",
		zap.Int("seeded", seeded),
		zap.Int("total", len(seedQuestions)),
	)
}
