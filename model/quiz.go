package model

type Quiz struct {
	QuizId   int64  `gorm:"column:quiz_id;type:serial;autoIncrement;primaryKey;"`
	QuizName string `gorm:"column:quiz_name;type:text;not null;"`

	Prompts []QuizPrompt `gorm:"foreignKey:QuizId;references:QuizId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

type QuizPrompt struct {
	QuizPromptId   int64  `gorm:"column:quiz_prompt_id;type:serial;autoIncrement;primaryKey;"`
	QuizId         int64  `gorm:"column:quiz_id;type:integer;not null;index;"`
	QuizPromptText string `gorm:"column:quiz_prompt_text;type:text;not null;"`

	Options []QuizPromptOption `gorm:"foreignKey:QuizPromptId;references:QuizPromptId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (QuizPrompt) TableName() string {
	return "quiz_prompts"
}

type QuizPromptOption struct {
	QuizPromptOptionId   int64  `gorm:"column:quiz_prompt_option_id;type:serial;autoIncrement;primaryKey;"`
	QuizPromptId         int64  `gorm:"column:quiz_prompt_id;type:integer;not null;index;"`
	QuizPromptOptionText string `gorm:"column:quiz_prompt_option_text;type:text;not null;"`
}

func (QuizPromptOption) TableName() string {
	return "quiz_prompt_options"
}

type UserQuizResponse struct {
	UserId             int64 `gorm:"column:user_id;type:integer;not null;primaryKey;"`
	QuizId             int64 `gorm:"column:quiz_id;type:integer;not null;primaryKey;"`
	QuizPromptOptionId int64 `gorm:"column:quiz_prompt_option_id;type:integer;not null;primaryKey;"`
}

func (UserQuizResponse) TableName() string {
	return "user_quiz_responses"
}

//---------------------------------------
//---------------------------------------

// QuizPromptOptionRow is one flattened quiz/prompt/option row, ordered by quiz, prompt and option.
type QuizPromptOptionRow struct {
	QuizId               int64  `gorm:"column:quiz_id"`
	QuizPromptId         int64  `gorm:"column:quiz_prompt_id"`
	QuizPromptText       string `gorm:"column:quiz_prompt_text"`
	QuizPromptOptionId   int64  `gorm:"column:quiz_prompt_option_id"`
	QuizPromptOptionText string `gorm:"column:quiz_prompt_option_text"`
}

type QuizRes struct {
	QuizId      int64           `json:"quiz_id"`
	QuizPrompts []QuizPromptRes `json:"quiz_prompts"`
}

type QuizPromptRes struct {
	QuizPromptId      int64                 `json:"quiz_prompt_id"`
	QuizPromptText    string                `json:"quiz_prompt_text"`
	QuizPromptOptions []QuizPromptOptionRes `json:"quiz_prompt_options"`
}

type QuizPromptOptionRes struct {
	QuizPromptOptionId   int64  `json:"quiz_prompt_option_id"`
	QuizPromptOptionText string `json:"quiz_prompt_option_text"`
}

type QuizzesRes struct {
	Quizzes []QuizRes `json:"quizzes"`
}

type QuizResponseItem struct {
	QuizPromptOptionId int64 `json:"quiz_prompt_option_id" validate:"required,gt=0"`
}

type AddQuizResponsesReq struct {
	QuizResponses []QuizResponseItem `json:"quiz_responses" validate:"required,min=1,dive"`
}
