package repository

import (
	"context"
	"errors"
	"fmt"
	"movie_recommender/model"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type IQuizRepository interface {
	GetQuizPromptOptionRows(ctx context.Context) ([]model.QuizPromptOptionRow, error)
	ReplaceUserQuizResponses(ctx context.Context, userId int64, quizId int64, optionIds []int64) (int64, error)
}

type QuizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{db: db}
}

//------------------------------------------
//------------------------------------------

func (r *QuizRepository) GetQuizPromptOptionRows(ctx context.Context) ([]model.QuizPromptOptionRow, error) {
	var rows []model.QuizPromptOptionRow

	queryStr := `
		SELECT
			q.quiz_id,
			p.quiz_prompt_id,
			p.quiz_prompt_text,
			o.quiz_prompt_option_id,
			o.quiz_prompt_option_text
		FROM quizzes q
			JOIN quiz_prompts p ON p.quiz_id = q.quiz_id
			JOIN quiz_prompt_options o ON o.quiz_prompt_id = p.quiz_prompt_id
		ORDER BY q.quiz_id, p.quiz_prompt_id, o.quiz_prompt_option_id;`

	err := r.db.WithContext(ctx).Raw(queryStr).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("query quiz rows: %w", err)
	}
	return rows, nil
}

// ReplaceUserQuizResponses stores the options of optionIds that belong to the quiz,
// replacing earlier answers of the user for it.
func (r *QuizRepository) ReplaceUserQuizResponses(ctx context.Context, userId int64, quizId int64, optionIds []int64) (int64, error) {
	var updateCount int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var quizCount int64
		err := tx.Model(&model.Quiz{}).Where("quiz_id = ?", quizId).Count(&quizCount).Error
		if err != nil {
			return err
		}
		if quizCount == 0 {
			return model.ErrQuizNotFound
		}

		err = tx.
			Where("user_id = ? AND quiz_id = ?", userId, quizId).
			Delete(&model.UserQuizResponse{}).
			Error
		if err != nil {
			return err
		}

		queryStr := `
			INSERT INTO user_quiz_responses (user_id, quiz_id, quiz_prompt_option_id)
			SELECT DISTINCT @uid, p.quiz_id, o.quiz_prompt_option_id
			FROM quiz_prompt_options o
				JOIN quiz_prompts p ON p.quiz_prompt_id = o.quiz_prompt_id
			WHERE p.quiz_id = @qid
				AND o.quiz_prompt_option_id = ANY(CAST(@ids AS bigint[]));`

		res := tx.Exec(queryStr, map[string]interface{}{
			"uid": userId,
			"qid": quizId,
			"ids": pq.Array(optionIds),
		})
		if res.Error != nil {
			return res.Error
		}
		updateCount = res.RowsAffected
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrQuizNotFound) {
			return 0, err
		}
		return 0, fmt.Errorf("replace user quiz responses: %w", err)
	}

	return updateCount, nil
}
