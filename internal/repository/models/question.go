package models

// Question is the database row model for the questions table
type Question struct {
	ID            int    `db:"id"`
	Category      string `db:"category"`
	Difficulty    string `db:"difficulty"`
	Option1       string `db:"option1"`
	Option2       string `db:"option2"`
	Option3       string `db:"option3"`
	Option4       string `db:"option4"`
	QuestionTitle string `db:"question_title"`
	CorrectAnswer string `db:"correct_answer"`
}

func (Question) TableName() string {
	return "questions"
}
