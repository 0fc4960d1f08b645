package service

import (
	"context"

	"question-service/internal/config"
	"question-service/internal/domain"
	"question-service/internal/logger"

	"go.uber.org/zap"
)

// questionService implements domain.QuestionService
type questionService struct {
	repo domain.QuestionRepository
	cfg  *config.Config
}

// NewQuestionService creates a new instance of questionService
func NewQuestionService(repo domain.QuestionRepository, cfg *config.Config) domain.QuestionService {
	return &questionService{
		repo: repo,
		cfg:  cfg,
	}
}

// GetAllQuestions implements domain.QuestionService
func (s *questionService) GetAllQuestions(ctx context.Context) ([]*domain.Question, error) {
	questions, err := s.repo.GetAllQuestions(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get all questions", err)
	}
	return questions, nil
}

// GetQuestionsByCategory implements domain.QuestionService. An empty result
// set, including an unknown category, is a CATEGORY_NOT_FOUND error.
func (s *questionService) GetQuestionsByCategory(ctx context.Context, category string) ([]*domain.Question, error) {
	questions, err := s.repo.GetQuestionsByCategory(ctx, category)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get questions by category", err)
	}
	if len(questions) == 0 {
		return nil, domain.NewCategoryNotFoundError(category)
	}
	return questions, nil
}

// GetQuestionByID implements domain.QuestionService
func (s *questionService) GetQuestionByID(ctx context.Context, id int) (*domain.Question, error) {
	question, err := s.repo.GetQuestionByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get question by id", err)
	}
	if question == nil {
		return nil, domain.NewQuestionNotFoundError(id)
	}
	return question, nil
}

// AddQuestion implements domain.QuestionService. The stored record is
// returned with the store-assigned id populated.
func (s *questionService) AddQuestion(ctx context.Context, question *domain.Question) (*domain.Question, error) {
	if err := s.repo.SaveQuestion(ctx, question); err != nil {
		return nil, domain.NewInternalError("Failed to save question", err)
	}
	return question, nil
}

// DeleteQuestion implements domain.QuestionService. The record is read first
// and returned after deletion; a concurrent delete of the same id surfaces
// here as QUESTION_NOT_FOUND on the read.
func (s *questionService) DeleteQuestion(ctx context.Context, id int) (*domain.Question, error) {
	questionToDelete, err := s.GetQuestionByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.DeleteQuestionByID(ctx, id); err != nil {
		return nil, domain.NewInternalError("Failed to delete question", err)
	}
	return questionToDelete, nil
}

// GenerateQuestions implements domain.QuestionService. Each sampled id is
// resolved through GetQuestionByID, so an id deleted between the sampling
// query and the detail fetch aborts the batch with QUESTION_NOT_FOUND. An
// empty category yields an empty list, not an error.
func (s *questionService) GenerateQuestions(ctx context.Context, category string, numQuestions int) ([]*domain.Question, error) {
	questionIDs, err := s.repo.GetRandomQuestionIDs(ctx, category, numQuestions)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get random question ids", err)
	}

	questions := make([]*domain.Question, 0, len(questionIDs))
	for _, id := range questionIDs {
		question, err := s.GetQuestionByID(ctx, id)
		if err != nil {
			return nil, err
		}
		questions = append(questions, question)
	}
	return questions, nil
}

// GenerateQuestionIDs implements domain.QuestionService
func (s *questionService) GenerateQuestionIDs(ctx context.Context, category string, numQuestions int) ([]int, error) {
	questionIDs, err := s.repo.GetRandomQuestionIDs(ctx, category, numQuestions)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get random question ids", err)
	}
	return questionIDs, nil
}

// GetWrapperQuestions implements domain.QuestionService. Ids are resolved in
// input order, duplicates preserved; any unresolved id aborts the batch.
func (s *questionService) GetWrapperQuestions(ctx context.Context, questionIDs []int) ([]*domain.QuestionWrapper, error) {
	// Trace which instance served the request, for load-balancing visibility
	logger.Get().Info("Serving wrapper questions",
		zap.Int("port", s.cfg.Server.Port),
		zap.Int("question_count", len(questionIDs)),
	)

	wrappedQuestions := make([]*domain.QuestionWrapper, 0, len(questionIDs))
	for _, id := range questionIDs {
		question, err := s.GetQuestionByID(ctx, id)
		if err != nil {
			return nil, err
		}
		wrappedQuestions = append(wrappedQuestions, domain.WrapQuestion(question))
	}
	return wrappedQuestions, nil
}

// GetScore implements domain.QuestionService. Responses are compared to the
// stored correct answer with exact, case-sensitive equality. An absent
// response is a non-match, not an error.
func (s *questionService) GetScore(ctx context.Context, responses []*domain.QuizResponse) (int, error) {
	correctAnswers := 0
	for _, response := range responses {
		question, err := s.GetQuestionByID(ctx, response.QuestionID)
		if err != nil {
			return 0, err
		}
		if response.Response == question.CorrectAnswer {
			correctAnswers++
		}
	}
	return correctAnswers, nil
}
