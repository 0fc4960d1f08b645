package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"question-service/internal/domain"
	"question-service/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

const questionSelectColumns = `id, category, difficulty, option1, option2, option3, option4, question_title, correct_answer`

// QuestionDatabaseAdapter implements domain.QuestionRepository using sqlx.DB
type QuestionDatabaseAdapter struct {
	db *sqlx.DB
}

// NewQuestionDatabaseAdapter creates a new instance of QuestionDatabaseAdapter
func NewQuestionDatabaseAdapter(db *sqlx.DB) domain.QuestionRepository {
	return &QuestionDatabaseAdapter{db: db}
}

// GetAllQuestions implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) GetAllQuestions(ctx context.Context) ([]*domain.Question, error) {
	var modelQuestions []models.Question
	query := `SELECT ` + questionSelectColumns + ` FROM questions`

	err := a.db.SelectContext(ctx, &modelQuestions, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all questions: %w", err)
	}

	return toDomainQuestions(modelQuestions), nil
}

// GetQuestionByID implements domain.QuestionRepository. Returns nil when no
// row matches the id.
func (a *QuestionDatabaseAdapter) GetQuestionByID(ctx context.Context, id int) (*domain.Question, error) {
	var modelQuestion models.Question
	query := `SELECT ` + questionSelectColumns + ` FROM questions WHERE id = $1`

	err := a.db.GetContext(ctx, &modelQuestion, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get question by id %d: %w", id, err)
	}
	return toDomainQuestion(&modelQuestion), nil
}

// GetQuestionsByCategory implements domain.QuestionRepository. Category
// matching is exact and case-sensitive.
func (a *QuestionDatabaseAdapter) GetQuestionsByCategory(ctx context.Context, category string) ([]*domain.Question, error) {
	var modelQuestions []models.Question
	query := `SELECT ` + questionSelectColumns + ` FROM questions WHERE category = $1`

	err := a.db.SelectContext(ctx, &modelQuestions, query, category)
	if err != nil {
		return nil, fmt.Errorf("failed to get questions by category %s: %w", category, err)
	}

	return toDomainQuestions(modelQuestions), nil
}

// SaveQuestion implements domain.QuestionRepository. The store assigns the
// id; any id supplied on the question is ignored.
func (a *QuestionDatabaseAdapter) SaveQuestion(ctx context.Context, question *domain.Question) error {
	if question == nil {
		return fmt.Errorf("cannot save nil question")
	}
	modelQuestion := toModelQuestion(question)

	query := `INSERT INTO questions (
		category, difficulty, option1, option2, option3, option4, question_title, correct_answer
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8
	) RETURNING id`

	var id int
	err := a.db.QueryRowxContext(ctx, query,
		modelQuestion.Category,
		modelQuestion.Difficulty,
		modelQuestion.Option1,
		modelQuestion.Option2,
		modelQuestion.Option3,
		modelQuestion.Option4,
		modelQuestion.QuestionTitle,
		modelQuestion.CorrectAnswer,
	).Scan(&id)
	if err != nil {
		return fmt.Errorf("failed to save question: %w", err)
	}

	question.ID = id
	return nil
}

// DeleteQuestionByID implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) DeleteQuestionByID(ctx context.Context, id int) error {
	query := `DELETE FROM questions WHERE id = $1`

	_, err := a.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete question %d: %w", id, err)
	}
	return nil
}

// GetRandomQuestionIDs implements domain.QuestionRepository. Ids are sampled
// uniformly without replacement; fewer than n are returned when the category
// has fewer matching rows.
func (a *QuestionDatabaseAdapter) GetRandomQuestionIDs(ctx context.Context, category string, n int) ([]int, error) {
	ids := []int{}
	query := `SELECT id FROM questions WHERE category = $1 ORDER BY RANDOM() LIMIT $2`

	err := a.db.SelectContext(ctx, &ids, query, category, n)
	if err != nil {
		return nil, fmt.Errorf("failed to get random question ids for category %s: %w", category, err)
	}
	return ids, nil
}

func toDomainQuestion(m *models.Question) *domain.Question {
	return &domain.Question{
		ID:            m.ID,
		Category:      m.Category,
		Difficulty:    m.Difficulty,
		Option1:       m.Option1,
		Option2:       m.Option2,
		Option3:       m.Option3,
		Option4:       m.Option4,
		QuestionTitle: m.QuestionTitle,
		CorrectAnswer: m.CorrectAnswer,
	}
}

func toDomainQuestions(ms []models.Question) []*domain.Question {
	questions := make([]*domain.Question, len(ms))
	for i := range ms {
		questions[i] = toDomainQuestion(&ms[i])
	}
	return questions
}

func toModelQuestion(q *domain.Question) *models.Question {
	return &models.Question{
		ID:            q.ID,
		Category:      q.Category,
		Difficulty:    q.Difficulty,
		Option1:       q.Option1,
		Option2:       q.Option2,
		Option3:       q.Option3,
		Option4:       q.Option4,
		QuestionTitle: q.QuestionTitle,
		CorrectAnswer: q.CorrectAnswer,
	}
}
