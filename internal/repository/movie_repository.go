package repository

import (
	"context"
	"fmt"
	"movie_recommender/model"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type IMovieRepository interface {
	GetMovieTopFiveForSimilarUsers(ctx context.Context, userId int64) ([]model.PeerTopFiveEntry, error)
	GetUserMovieTopFive(ctx context.Context, userId int64) ([]model.UserMovieTopFive, error)
	ReplaceUserMovieTopFive(ctx context.Context, userId int64, movieNames []string) (int64, error)
}

type MovieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

//------------------------------------------
//------------------------------------------

// GetMovieTopFiveForSimilarUsers reads the top-5 titles of the user and of every user
// the similarity view pairs them with, ordered by title so repeated runs agree.
func (r *MovieRepository) GetMovieTopFiveForSimilarUsers(ctx context.Context, userId int64) ([]model.PeerTopFiveEntry, error) {
	var rows []model.PeerTopFiveRow

	queryStr := `
		SELECT
			movie_name,
			user_top_5_count AS user_top_5
		FROM
			vw_user_similar_vibe_movies
		WHERE
			user_id = @uid
		ORDER BY
			movie_name;`

	err := r.db.WithContext(ctx).
		Raw(queryStr, map[string]interface{}{
			"uid": userId,
		}).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("query similar users top 5: %w", err)
	}

	entries := make([]model.PeerTopFiveEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, row.ToEntry())
	}
	return entries, nil
}

//------------------------------------------
//------------------------------------------

func (r *MovieRepository) GetUserMovieTopFive(ctx context.Context, userId int64) ([]model.UserMovieTopFive, error) {
	var result []model.UserMovieTopFive
	err := r.db.WithContext(ctx).
		Model(&model.UserMovieTopFive{}).
		Where("user_id = ?", userId).
		Order("movie_rank").
		Find(&result).
		Error
	return result, err
}

// ReplaceUserMovieTopFive swaps the stored list for movieNames, ranked by position.
func (r *MovieRepository) ReplaceUserMovieTopFive(ctx context.Context, userId int64, movieNames []string) (int64, error) {
	var updateCount int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.
			Where("user_id = ?", userId).
			Delete(&model.UserMovieTopFive{}).
			Error
		if err != nil {
			return err
		}

		queryStr := `
			INSERT INTO user_movie_top_5 (user_id, movie_rank, movie_name)
			SELECT @uid, t.ord, t.name
			FROM unnest(CAST(@names AS text[])) WITH ORDINALITY AS t(name, ord);`

		res := tx.Exec(queryStr, map[string]interface{}{
			"uid":   userId,
			"names": pq.Array(movieNames),
		})
		if res.Error != nil {
			return res.Error
		}
		updateCount = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("replace user top 5: %w", err)
	}

	return updateCount, nil
}
