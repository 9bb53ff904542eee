package model

import "strings"

// AddQuestionRequest is the body of the add-question call.
type AddQuestionRequest struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer *int     `json:"correctAnswer"`
	Category      string   `json:"category"`
	Difficulty    string   `json:"difficulty"`
}

// ToQuestion validates the request and builds a question with defaults applied.
func (r AddQuestionRequest) ToQuestion() (*Question, error) {
	text := strings.TrimSpace(r.Question)
	if text == "" || r.Options == nil || r.CorrectAnswer == nil {
		return nil, ErrMissingFields
	}
	if len(r.Options) != OptionCount {
		return nil, ErrInvalidOptions
	}
	options := make([]string, len(r.Options))
	for i, opt := range r.Options {
		options[i] = strings.TrimSpace(opt)
		if options[i] == "" {
			return nil, ErrInvalidOptions
		}
	}
	if *r.CorrectAnswer < 0 || *r.CorrectAnswer >= OptionCount {
		return nil, ErrInvalidCorrectAnswer
	}

	difficulty, err := ParseDifficulty(strings.TrimSpace(r.Difficulty))
	if err != nil {
		return nil, err
	}

	category := strings.TrimSpace(r.Category)
	if category == "" {
		category = DefaultCategory
	}

	return &Question{
		Text:          text,
		Options:       options,
		CorrectAnswer: *r.CorrectAnswer,
		Category:      category,
		Difficulty:    difficulty,
	}, nil
}

// QuestionResponse wraps a single question.
type QuestionResponse struct {
	Message  string   `json:"message,omitempty"`
	Question Question `json:"question"`
}

// QuestionsResponse wraps a random selection of questions.
type QuestionsResponse struct {
	Questions []Question `json:"questions"`
}
