package validation

import (
	"strings"

	"question-service/internal/domain"
	"question-service/internal/dto"
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateAddQuestionRequest checks that every required field of a new
// question is present. No business-rule validation happens here; answer
// correctness and option distinctness are not enforced.
func (v *Validator) ValidateAddQuestionRequest(req *dto.AddQuestionRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.Category) == "" {
		errors = append(errors, domain.NewMissingFieldError("category"))
	}
	if strings.TrimSpace(req.Difficulty) == "" {
		errors = append(errors, domain.NewMissingFieldError("difficulty"))
	}
	if strings.TrimSpace(req.Option1) == "" {
		errors = append(errors, domain.NewMissingFieldError("option1"))
	}
	if strings.TrimSpace(req.Option2) == "" {
		errors = append(errors, domain.NewMissingFieldError("option2"))
	}
	if strings.TrimSpace(req.Option3) == "" {
		errors = append(errors, domain.NewMissingFieldError("option3"))
	}
	if strings.TrimSpace(req.Option4) == "" {
		errors = append(errors, domain.NewMissingFieldError("option4"))
	}
	if strings.TrimSpace(req.QuestionTitle) == "" {
		errors = append(errors, domain.NewMissingFieldError("questionTitle"))
	}
	if strings.TrimSpace(req.CorrectAnswer) == "" {
		errors = append(errors, domain.NewMissingFieldError("correctAnswer"))
	}

	return errors
}

// ValidateGenerateParams validates the category and numQuestions query
// parameters shared by the generate endpoints
func (v *Validator) ValidateGenerateParams(category, numQuestions string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(category) == "" {
		errors = append(errors, domain.NewMissingFieldError("category"))
	}
	if strings.TrimSpace(numQuestions) == "" {
		errors = append(errors, domain.NewMissingFieldError("numQuestions"))
	} else if !isNonNegativeNumber(numQuestions) {
		errors = append(errors, domain.NewInvalidFormatError("numQuestions", numQuestions))
	}

	return errors
}

func isNonNegativeNumber(s string) bool {
	for _, char := range s {
		if char < '0' || char > '9' {
			return false
		}
	}
	return len(s) > 0
}
