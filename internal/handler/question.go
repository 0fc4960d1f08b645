package handler

import (
	"fmt"
	"strconv"

	"question-service/internal/domain"
	"question-service/internal/dto"
	"question-service/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// QuestionHandler handles question-related HTTP requests
type QuestionHandler struct {
	service   domain.QuestionService
	validator *validation.Validator
}

// NewQuestionHandler creates a new QuestionHandler instance
func NewQuestionHandler(service domain.QuestionService) *QuestionHandler {
	return &QuestionHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// RegisterRoutes mounts all question routes on the given router
func (h *QuestionHandler) RegisterRoutes(router fiber.Router) {
	question := router.Group("/question")
	question.Get("/", h.GetQuestionByID)
	question.Get("/allQuestions", h.GetAllQuestions)
	question.Get("/category/:category", h.GetQuestionsByCategory)
	question.Post("/add-question", h.AddQuestion)
	question.Delete("/:id", h.DeleteQuestion)
	question.Get("/generate-questions", h.GenerateQuestions)
	question.Get("/generate-question-ids", h.GenerateQuestionIDs)
	question.Post("/retrieve-wrapper-questions", h.RetrieveWrapperQuestions)
	question.Post("/get-score", h.GetScore)
}

// GetQuestionByID godoc
// @Summary Get a question by id, or a liveness greeting
// @Description Returns the question for the given id query parameter. Without an id parameter it answers with a plain-text greeting.
// @Tags question
// @Produce json
// @Param id query int false "Question ID"
// @Success 200 {object} dto.QuestionResponse
// @Failure 404 {object} dto.APIError
// @Router /question/ [get]
func (h *QuestionHandler) GetQuestionByID(c *fiber.Ctx) error {
	idParam := c.Query("id")
	if idParam == "" {
		return c.SendString("Welcome To Question Service Controller")
	}

	id, err := strconv.Atoi(idParam)
	if err != nil {
		return domain.ValidationErrors{domain.NewInvalidFormatError("id", idParam)}
	}

	question, err := h.service.GetQuestionByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.ToQuestionResponse(question))
}

// GetAllQuestions godoc
// @Summary List all questions
// @Tags question
// @Produce json
// @Success 200 {array} dto.QuestionResponse
// @Router /question/allQuestions [get]
func (h *QuestionHandler) GetAllQuestions(c *fiber.Ctx) error {
	questions, err := h.service.GetAllQuestions(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.ToQuestionResponses(questions))
}

// GetQuestionsByCategory godoc
// @Summary List questions in a category
// @Tags question
// @Produce json
// @Param category path string true "Category"
// @Success 200 {array} dto.QuestionResponse
// @Failure 404 {object} dto.APIError
// @Router /question/category/{category} [get]
func (h *QuestionHandler) GetQuestionsByCategory(c *fiber.Ctx) error {
	category := c.Params("category")

	questions, err := h.service.GetQuestionsByCategory(c.Context(), category)
	if err != nil {
		return err
	}
	return c.JSON(dto.ToQuestionResponses(questions))
}

// AddQuestion godoc
// @Summary Create a new question
// @Tags question
// @Accept json
// @Produce plain
// @Param question body dto.AddQuestionRequest true "Question"
// @Success 201 {string} string "Confirmation with the new id"
// @Failure 400 {object} dto.APIError
// @Router /question/add-question [post]
func (h *QuestionHandler) AddQuestion(c *fiber.Ctx) error {
	var req dto.AddQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	if errs := h.validator.ValidateAddQuestionRequest(&req); len(errs) > 0 {
		return errs
	}

	question, err := h.service.AddQuestion(c.Context(), req.ToDomainQuestion())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).
		SendString(fmt.Sprintf("Question successfully added, id: %d", question.ID))
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Tags question
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.QuestionResponse
// @Failure 404 {object} dto.APIError
// @Router /question/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *fiber.Ctx) error {
	idParam := c.Params("id")
	id, err := strconv.Atoi(idParam)
	if err != nil {
		return domain.ValidationErrors{domain.NewInvalidFormatError("id", idParam)}
	}

	deletedQuestion, err := h.service.DeleteQuestion(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.ToQuestionResponse(deletedQuestion))
}

// GenerateQuestions godoc
// @Summary Generate random questions for a category
// @Tags question
// @Produce json
// @Param category query string true "Category"
// @Param numQuestions query int true "Number of questions"
// @Success 200 {array} dto.QuestionResponse
// @Failure 404 {object} dto.APIError
// @Router /question/generate-questions [get]
func (h *QuestionHandler) GenerateQuestions(c *fiber.Ctx) error {
	category := c.Query("category")
	numQuestionsParam := c.Query("numQuestions")

	if errs := h.validator.ValidateGenerateParams(category, numQuestionsParam); len(errs) > 0 {
		return errs
	}
	numQuestions, _ := strconv.Atoi(numQuestionsParam)

	questions, err := h.service.GenerateQuestions(c.Context(), category, numQuestions)
	if err != nil {
		return err
	}
	return c.JSON(dto.ToQuestionResponses(questions))
}

// GenerateQuestionIDs godoc
// @Summary Generate random question ids for a category
// @Tags question
// @Produce json
// @Param category query string true "Category"
// @Param numQuestions query int true "Number of question ids"
// @Success 200 {array} int
// @Router /question/generate-question-ids [get]
func (h *QuestionHandler) GenerateQuestionIDs(c *fiber.Ctx) error {
	category := c.Query("category")
	numQuestionsParam := c.Query("numQuestions")

	if errs := h.validator.ValidateGenerateParams(category, numQuestionsParam); len(errs) > 0 {
		return errs
	}
	numQuestions, _ := strconv.Atoi(numQuestionsParam)

	questionIDs, err := h.service.GenerateQuestionIDs(c.Context(), category, numQuestions)
	if err != nil {
		return err
	}
	return c.JSON(questionIDs)
}

// RetrieveWrapperQuestions godoc
// @Summary Resolve question ids to answer-redacted views
// @Tags question
// @Accept json
// @Produce json
// @Param questionIds body []int true "Question IDs"
// @Success 200 {array} dto.QuestionWrapperResponse
// @Failure 404 {object} dto.APIError
// @Router /question/retrieve-wrapper-questions [post]
func (h *QuestionHandler) RetrieveWrapperQuestions(c *fiber.Ctx) error {
	var questionIDs []int
	if err := c.BodyParser(&questionIDs); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	wrappers, err := h.service.GetWrapperQuestions(c.Context(), questionIDs)
	if err != nil {
		return err
	}

	responses := make([]dto.QuestionWrapperResponse, len(wrappers))
	for i, w := range wrappers {
		responses[i] = dto.ToQuestionWrapperResponse(w)
	}
	return c.JSON(responses)
}

// GetScore godoc
// @Summary Score submitted quiz responses
// @Tags question
// @Accept json
// @Produce json
// @Param responses body []dto.QuizResponseRequest true "Submitted answers"
// @Success 200 {integer} int
// @Failure 404 {object} dto.APIError
// @Router /question/get-score [post]
func (h *QuestionHandler) GetScore(c *fiber.Ctx) error {
	var reqs []dto.QuizResponseRequest
	if err := c.BodyParser(&reqs); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	responses := make([]*domain.QuizResponse, len(reqs))
	for i := range reqs {
		responses[i] = reqs[i].ToDomainQuizResponse()
	}

	score, err := h.service.GetScore(c.Context(), responses)
	if err != nil {
		return err
	}
	return c.JSON(score)
}
