package domain

// Question represents a multiple-choice quiz question
type Question struct {
	ID            int
	Category      string
	Difficulty    string
	Option1       string
	Option2       string
	Option3       string
	Option4       string
	QuestionTitle string
	CorrectAnswer string
}

// Validate validates the question
func (q *Question) Validate() error {
	if q.Category == "" {
		return NewInvalidInputError("category is required")
	}
	if q.QuestionTitle == "" {
		return NewInvalidInputError("question title is required")
	}
	if q.CorrectAnswer == "" {
		return NewInvalidInputError("correct answer is required")
	}
	return nil
}

// QuestionWrapper is an answer-redacted projection of a question, safe to
// hand to a quiz-taking client. Derived, never persisted.
type QuestionWrapper struct {
	QuestionID    int
	Option1       string
	Option2       string
	Option3       string
	Option4       string
	QuestionTitle string
}

// WrapQuestion projects a question to its redacted view
func WrapQuestion(q *Question) *QuestionWrapper {
	return &QuestionWrapper{
		QuestionID:    q.ID,
		Option1:       q.Option1,
		Option2:       q.Option2,
		Option3:       q.Option3,
		Option4:       q.Option4,
		QuestionTitle: q.QuestionTitle,
	}
}

// QuizResponse represents a user's submitted answer to one question.
// It lives only for the duration of a single scoring request.
type QuizResponse struct {
	QuestionID int
	Response   string
}
