package domain

import "context"

// QuestionService defines the core business operations over questions
type QuestionService interface {
	// GetAllQuestions returns every stored question
	GetAllQuestions(ctx context.Context) ([]*Question, error)

	// GetQuestionsByCategory returns all questions in a category.
	// An empty result set is a CATEGORY_NOT_FOUND error.
	GetQuestionsByCategory(ctx context.Context, category string) ([]*Question, error)

	// GetQuestionByID retrieves a single question by its id
	GetQuestionByID(ctx context.Context, id int) (*Question, error)

	// AddQuestion persists a new question and returns it with the assigned id
	AddQuestion(ctx context.Context, question *Question) (*Question, error)

	// DeleteQuestion removes a question and returns the deleted record
	DeleteQuestion(ctx context.Context, id int) (*Question, error)

	// GenerateQuestions returns up to numQuestions random full questions
	// from a category; an empty category yields an empty list
	GenerateQuestions(ctx context.Context, category string, numQuestions int) ([]*Question, error)

	// GenerateQuestionIDs returns up to numQuestions random question ids
	// from a category; an empty category yields an empty list
	GenerateQuestionIDs(ctx context.Context, category string, numQuestions int) ([]int, error)

	// GetWrapperQuestions resolves ids to answer-redacted question views,
	// preserving input order
	GetWrapperQuestions(ctx context.Context, questionIDs []int) ([]*QuestionWrapper, error)

	// GetScore counts how many responses match the stored correct answers
	GetScore(ctx context.Context, responses []*QuizResponse) (int, error)
}

// QuestionRepository defines the interface for question persistence
type QuestionRepository interface {
	// GetAllQuestions returns every stored question, order unspecified
	GetAllQuestions(ctx context.Context) ([]*Question, error)

	// GetQuestionByID retrieves a question by id, or nil when absent
	GetQuestionByID(ctx context.Context, id int) (*Question, error)

	// GetQuestionsByCategory returns all questions whose category matches exactly
	GetQuestionsByCategory(ctx context.Context, category string) ([]*Question, error)

	// SaveQuestion inserts a new question and populates its assigned id
	SaveQuestion(ctx context.Context, question *Question) error

	// DeleteQuestionByID removes a question row
	DeleteQuestionByID(ctx context.Context, id int) error

	// GetRandomQuestionIDs returns up to n question ids from a category,
	// selected uniformly at random without replacement
	GetRandomQuestionIDs(ctx context.Context, category string, n int) ([]int, error)
}
