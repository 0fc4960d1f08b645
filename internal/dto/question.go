package dto

import (
	"time"

	"question-service/internal/domain"
)

// QuestionResponse represents a full question in the API response
// @Description Question information including the correct answer
type QuestionResponse struct {
	ID            int    `json:"id"`
	Category      string `json:"category"`
	Difficulty    string `json:"difficulty"`
	Option1       string `json:"option1"`
	Option2       string `json:"option2"`
	Option3       string `json:"option3"`
	Option4       string `json:"option4"`
	QuestionTitle string `json:"questionTitle"`
	CorrectAnswer string `json:"correctAnswer"`
}

// AddQuestionRequest represents the body for creating a question
// @Description Request body for adding a new question
type AddQuestionRequest struct {
	Category      string `json:"category"`
	Difficulty    string `json:"difficulty"`
	Option1       string `json:"option1"`
	Option2       string `json:"option2"`
	Option3       string `json:"option3"`
	Option4       string `json:"option4"`
	QuestionTitle string `json:"questionTitle"`
	CorrectAnswer string `json:"correctAnswer"`
}

// QuestionWrapperResponse represents a question with the correct answer redacted
// @Description Question view safe to show to a quiz-taker
type QuestionWrapperResponse struct {
	QuestionID    int    `json:"questionId"`
	Option1       string `json:"option1"`
	Option2       string `json:"option2"`
	Option3       string `json:"option3"`
	Option4       string `json:"option4"`
	QuestionTitle string `json:"questionTitle"`
}

// QuizResponseRequest represents one submitted answer in a scoring request
// @Description A user's answer to a single question
type QuizResponseRequest struct {
	QuestionID int    `json:"questionId"`
	Response   string `json:"response"`
}

// APIError represents a structured error response for domain errors
// @Description Error body with message, HTTP status and timestamp
type APIError struct {
	Message   string    `json:"message"`
	Status    int       `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// NewAPIError builds an APIError stamped with the current time
func NewAPIError(message string, status int) APIError {
	return APIError{
		Message:   message,
		Status:    status,
		Timestamp: time.Now(),
	}
}

// ToQuestionResponse converts a domain question to its API shape
func ToQuestionResponse(q *domain.Question) QuestionResponse {
	return QuestionResponse{
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

// ToQuestionResponses converts a slice of domain questions
func ToQuestionResponses(questions []*domain.Question) []QuestionResponse {
	responses := make([]QuestionResponse, len(questions))
	for i, q := range questions {
		responses[i] = ToQuestionResponse(q)
	}
	return responses
}

// ToQuestionWrapperResponse converts a domain wrapper to its API shape
func ToQuestionWrapperResponse(w *domain.QuestionWrapper) QuestionWrapperResponse {
	return QuestionWrapperResponse{
		QuestionID:    w.QuestionID,
		Option1:       w.Option1,
		Option2:       w.Option2,
		Option3:       w.Option3,
		Option4:       w.Option4,
		QuestionTitle: w.QuestionTitle,
	}
}

// ToDomainQuestion converts an add-question request to the domain entity
func (r *AddQuestionRequest) ToDomainQuestion() *domain.Question {
	return &domain.Question{
		Category:      r.Category,
		Difficulty:    r.Difficulty,
		Option1:       r.Option1,
		Option2:       r.Option2,
		Option3:       r.Option3,
		Option4:       r.Option4,
		QuestionTitle: r.QuestionTitle,
		CorrectAnswer: r.CorrectAnswer,
	}
}

// ToDomainQuizResponse converts a submitted answer to the domain shape
func (r *QuizResponseRequest) ToDomainQuizResponse() *domain.QuizResponse {
	return &domain.QuizResponse{
		QuestionID: r.QuestionID,
		Response:   r.Response,
	}
}
