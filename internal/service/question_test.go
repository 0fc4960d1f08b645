package service

import (
	"context"
	"errors"
	"os"
	"testing"

	"question-service/internal/config"
	"question-service/internal/domain"
	"question-service/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// TestMain initializes the logger for all tests in this package
func TestMain(m *testing.M) {
	if err := logger.Initialize(config.LoggerConfig{}); err != nil {
		panic("Failed to initialize logger for tests: " + err.Error())
	}
	exitVal := m.Run()
	_ = logger.Sync()
	os.Exit(exitVal)
}

// --- Mocks ---

type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) GetAllQuestions(ctx context.Context) ([]*domain.Question, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Question), args.Error(1)
}

func (m *MockQuestionRepository) GetQuestionByID(ctx context.Context, id int) (*domain.Question, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Question), args.Error(1)
}

func (m *MockQuestionRepository) GetQuestionsByCategory(ctx context.Context, category string) ([]*domain.Question, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Question), args.Error(1)
}

func (m *MockQuestionRepository) SaveQuestion(ctx context.Context, question *domain.Question) error {
	args := m.Called(ctx, question)
	return args.Error(0)
}

func (m *MockQuestionRepository) DeleteQuestionByID(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockQuestionRepository) GetRandomQuestionIDs(ctx context.Context, category string, n int) ([]int, error) {
	args := m.Called(ctx, category, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func newTestService(repo domain.QuestionRepository) domain.QuestionService {
	cfg := &config.Config{}
	cfg.Server.Port = 8080
	return NewQuestionService(repo, cfg)
}

func sampleQuestion(id int) *domain.Question {
	return &domain.Question{
		ID:            id,
		Category:      "Geo",
		Difficulty:    "Easy",
		Option1:       "Paris",
		Option2:       "Lyon",
		Option3:       "Marseille",
		Option4:       "Nice",
		QuestionTitle: "What is the capital of France?",
		CorrectAnswer: "Paris",
	}
}

func assertDomainErrorCode(t *testing.T, err error, code domain.ErrorCode) {
	t.Helper()
	var domainErr *domain.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, code, domainErr.Code)
}

// --- Tests ---

func TestGetAllQuestions(t *testing.T) {
	repo := new(MockQuestionRepository)
	svc := newTestService(repo)

	expected := []*domain.Question{sampleQuestion(1), sampleQuestion(2)}
	repo.On("GetAllQuestions", mock.Anything).Return(expected, nil)

	questions, err := svc.GetAllQuestions(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, expected, questions)
	repo.AssertExpectations(t)
}

func TestGetQuestionsByCategory(t *testing.T) {
	repo := new(MockQuestionRepository)
	svc := newTestService(repo)

	expected := []*domain.Question{sampleQuestion(1)}
	repo.On("GetQuestionsByCategory", mock.Anything, "Geo").Return(expected, nil)

	questions, err := svc.GetQuestionsByCategory(context.Background(), "Geo")

	assert.NoError(t, err)
	assert.Equal(t, expected, questions)
	repo.AssertExpectations(t)
}

func TestGetQuestionsByCategory_Empty(t *testing.T) {
	repo := new(MockQuestionRepository)
	svc := newTestService(repo)

	repo.On("GetQuestionsByCategory", mock.Anything, "Unknown").Return([]*domain.Question{}, nil)

	questions, err := svc.GetQuestionsByCategory(context.Background(), "Unknown")

	assert.Nil(t, questions)
	assertDomainErrorCode(t, err, domain.ErrCategoryNotFound)
	repo.AssertExpectations(t)
}

func TestGetQuestionByID(t *testing.T) {
	repo := new(MockQuestionRepository)
	svc := newTestService(repo)

	repo.On("GetQuestionByID", mock.Anything, 1).Return(sampleQuestion(1), nil)

	question, err := svc.GetQuestionByID(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, 1, question.ID)
	repo.AssertExpectations(t)
}

func TestGetQuestionByID_NotFound(t *testing.T) {
	repo := new(MockQuestionRepository)
	svc := newTestService(repo)

	repo.On("GetQuestionByID", mock.Anything, 99).Return(nil, nil)

	question, err := svc.GetQuestionByID(context.Background(), 99)

	assert.Nil(t, question)
	assertDomainErrorCode(t, err, domain.ErrQuestionNotFound)
	repo.AssertExpectations(t)
}

func TestAddQuestion(t *testing.T) {
	repo := new(MockQuestionRepository)
	svc := newTestService(repo)

	question := sampleQuestion(0)
	repo.On("SaveQuestion", mock.Anything, question).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Question).ID = 42
	}).Return(nil)

	saved, err := svc.AddQuestion(context.Background(), question)

	assert.NoError(t, err)
	assert.Equal(t, 42, saved.ID)
	repo.AssertExpectations(t)
}

func TestAddQuestion_StoreFailure(t *testing.T) {
	repo := new(MockQuestionRepository)
	svc := newTestService(repo)

	repo.On("SaveQuestion", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	saved, err := svc.AddQuestion(context.Background(), sampleQuestion(0))

	assert.Nil(t, saved)
	assertDomainErrorCode(t, err, domain.ErrInternal)
	repo.AssertExpectations(t)
}

func TestDeleteQuestion(t *testing.T) {
	repo := new(MockQuestionRepository)
	svc := newTestService(repo)

	question := sampleQuestion(5)
	repo.On("GetQuestionByID", mock.Anything, 5).Return(question, nil)
	repo.On("DeleteQuestionByID", mock.Anything, 5).Return(nil)

	deleted, err := svc.DeleteQuestion(context.Background(), 5)

	assert.NoError(t, err)
	assert.Equal(t, question, deleted)
	repo.AssertExpectations(t)
}

func TestDeleteQuestion_NotFound(t *testing.T) {
	repo := new(MockQuestionRepository)
	svc := newTestService(repo)

	repo.On("GetQuestionByID", mock.Anything, 99).Return(nil, nil)

	deleted, err := svc.DeleteQuestion(context.Background(), 99)

	assert.Nil(t, deleted)
	assertDomainErrorCode(t, err, domain.ErrQuestionNotFound)
	repo.AssertNotCalled(t, "DeleteQuestionByID", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestGenerateQuestions(t *testing.T) {
	repo := new(MockQuestionRepository)
	svc := newTestService(repo)

	repo.On("GetRandomQuestionIDs", mock.Anything, "Geo", 2).Return([]int{2, 1}, nil)
	repo.On("GetQuestionByID", mock.Anything, 2).Return(sampleQuestion(2), nil)
	repo.On("GetQuestionByID", mock.Anything, 1).Return(sampleQuestion(1), nil)

	questions, err := svc.GenerateQuestions(context.Background(), "Geo", 2)

	assert.NoError(t, err)
	assert.Len(t, questions, 2)
	// Results follow the sampled id order
	assert.Equal(t, 2, questions[0].ID)
	assert.Equal(t, 1, questions[1].ID)
	repo.AssertExpectations(t)
}

func TestGenerateQuestions_EmptyCategory(t *testing.T) {
	repo := new(MockQuestionRepository)
	svc := newTestService(repo)

	repo.On("GetRandomQuestionIDs", mock.Anything, "Unknown", 5).Return([]int{}, nil)

	questions, err := svc.GenerateQuestions(context.Background(), "Unknown", 5)

	assert.NoError(t, err)
	assert.NotNil(t, questions)
	assert.Len(t, questions, 0)
	repo.AssertExpectations(t)
}

func TestGenerateQuestions_IDDeletedBetweenQueries(t *testing.T) {
	repo := new(MockQuestionRepository)
	svc := newTestService(repo)

	repo.On("GetRandomQuestionIDs", mock.Anything, "Geo", 2).Return([]int{1, 2}, nil)
	repo.On("GetQuestionByID", mock.Anything, 1).Return(sampleQuestion(1), nil)
	repo.On("GetQuestionByID", mock.Anything, 2).Return(nil, nil)

	questions, err := svc.GenerateQuestions(context.Background(), "Geo", 2)

	assert.Nil(t, questions)
	assertDomainErrorCode(t, err, domain.ErrQuestionNotFound)
	repo.AssertExpectations(t)
}

func TestGenerateQuestionIDs(t *testing.T) {
	repo := new(MockQuestionRepository)
	svc := newTestService(repo)

	repo.On("GetRandomQuestionIDs", mock.Anything, "Java", 3).Return([]int{3, 1, 2}, nil)

	ids, err := svc.GenerateQuestionIDs(context.Background(), "Java", 3)

	assert.NoError(t, err)
	assert.Equal(t, []int{3, 1, 2}, ids)
	repo.AssertExpectations(t)
}

func TestGenerateQuestionIDs_EmptyCategory(t *testing.T) {
	repo := new(MockQuestionRepository)
	svc := newTestService(repo)

	repo.On("GetRandomQuestionIDs", mock.Anything, "Unknown", 10).Return([]int{}, nil)

	ids, err := svc.GenerateQuestionIDs(context.Background(), "Unknown", 10)

	assert.NoError(t, err)
	assert.Len(t, ids, 0)
	repo.AssertExpectations(t)
}

func TestGetWrapperQuestions(t *testing.T) {
	repo := new(MockQuestionRepository)
	svc := newTestService(repo)

	repo.On("GetQuestionByID", mock.Anything, 1).Return(sampleQuestion(1), nil)

	wrappers, err := svc.GetWrapperQuestions(context.Background(), []int{1})

	assert.NoError(t, err)
	assert.Len(t, wrappers, 1)
	assert.Equal(t, 1, wrappers[0].QuestionID)
	assert.Equal(t, "Paris", wrappers[0].Option1)
	assert.Equal(t, "What is the capital of France?", wrappers[0].QuestionTitle)
	repo.AssertExpectations(t)
}

func TestGetWrapperQuestions_PreservesOrderAndDuplicates(t *testing.T) {
	repo := new(MockQuestionRepository)
	svc := newTestService(repo)

	repo.On("GetQuestionByID", mock.Anything, 2).Return(sampleQuestion(2), nil)
	repo.On("GetQuestionByID", mock.Anything, 1).Return(sampleQuestion(1), nil)

	wrappers, err := svc.GetWrapperQuestions(context.Background(), []int{2, 1, 2})

	assert.NoError(t, err)
	assert.Len(t, wrappers, 3)
	assert.Equal(t, 2, wrappers[0].QuestionID)
	assert.Equal(t, 1, wrappers[1].QuestionID)
	assert.Equal(t, 2, wrappers[2].QuestionID)
	repo.AssertExpectations(t)
}

func TestGetWrapperQuestions_MissingID(t *testing.T) {
	repo := new(MockQuestionRepository)
	svc := newTestService(repo)

	repo.On("GetQuestionByID", mock.Anything, 99).Return(nil, nil)

	wrappers, err := svc.GetWrapperQuestions(context.Background(), []int{99})

	assert.Nil(t, wrappers)
	assertDomainErrorCode(t, err, domain.ErrQuestionNotFound)
	repo.AssertExpectations(t)
}

func TestGetScore(t *testing.T) {
	repo := new(MockQuestionRepository)
	svc := newTestService(repo)

	repo.On("GetQuestionByID", mock.Anything, 1).Return(sampleQuestion(1), nil)
	repo.On("GetQuestionByID", mock.Anything, 2).Return(sampleQuestion(2), nil)

	responses := []*domain.QuizResponse{
		{QuestionID: 1, Response: "Paris"},
		{QuestionID: 2, Response: "Lyon"},
	}

	score, err := svc.GetScore(context.Background(), responses)

	assert.NoError(t, err)
	assert.Equal(t, 1, score)
	repo.AssertExpectations(t)
}

func TestGetScore_CaseSensitive(t *testing.T) {
	repo := new(MockQuestionRepository)
	svc := newTestService(repo)

	repo.On("GetQuestionByID", mock.Anything, 1).Return(sampleQuestion(1), nil)

	responses := []*domain.QuizResponse{{QuestionID: 1, Response: "paris"}}

	score, err := svc.GetScore(context.Background(), responses)

	assert.NoError(t, err)
	assert.Equal(t, 0, score)
	repo.AssertExpectations(t)
}

func TestGetScore_EmptyResponseIsNonMatch(t *testing.T) {
	repo := new(MockQuestionRepository)
	svc := newTestService(repo)

	repo.On("GetQuestionByID", mock.Anything, 1).Return(sampleQuestion(1), nil)

	responses := []*domain.QuizResponse{{QuestionID: 1}}

	score, err := svc.GetScore(context.Background(), responses)

	assert.NoError(t, err)
	assert.Equal(t, 0, score)
	repo.AssertExpectations(t)
}

func TestGetScore_EmptyInput(t *testing.T) {
	repo := new(MockQuestionRepository)
	svc := newTestService(repo)

	score, err := svc.GetScore(context.Background(), nil)

	assert.NoError(t, err)
	assert.Equal(t, 0, score)
}

func TestGetScore_MissingQuestion(t *testing.T) {
	repo := new(MockQuestionRepository)
	svc := newTestService(repo)

	repo.On("GetQuestionByID", mock.Anything, 99).Return(nil, nil)

	responses := []*domain.QuizResponse{{QuestionID: 99, Response: "Paris"}}

	score, err := svc.GetScore(context.Background(), responses)

	assert.Equal(t, 0, score)
	assertDomainErrorCode(t, err, domain.ErrQuestionNotFound)
	repo.AssertExpectations(t)
}
