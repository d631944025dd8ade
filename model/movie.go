package model

import "time"

// Movie is a canonical catalog record. MovieId is the only identity used for deduplication.
type Movie struct {
	MovieId          int64   `json:"movie_id"`
	MovieName        string  `json:"movie_name"`
	MovieOverview    string  `json:"movie_overview"`
	MoviePopularity  float64 `json:"movie_popularity"`
	MovieReleaseDate string  `json:"movie_release_date"`
}

// ReleaseYear returns the leading four digit year of the release date, or "" when unknown.
func (m Movie) ReleaseYear() string {
	if len(m.MovieReleaseDate) < 4 {
		return ""
	}
	return m.MovieReleaseDate[:4]
}

//---------------------------------------
//---------------------------------------

// PeerTopFiveEntry is one title from the top-5 lists of a user and the users similar to them.
type PeerTopFiveEntry struct {
	MovieName    string `json:"movie_name"`
	IsOwnTopFive bool   `json:"is_own_top_5"`
}

// PeerTopFiveRow is the raw row read from vw_user_similar_vibe_movies.
type PeerTopFiveRow struct {
	MovieName   string `gorm:"column:movie_name"`
	UserTopFive int    `gorm:"column:user_top_5"`
}

func (r PeerTopFiveRow) ToEntry() PeerTopFiveEntry {
	return PeerTopFiveEntry{
		MovieName:    r.MovieName,
		IsOwnTopFive: r.UserTopFive == 1,
	}
}

//---------------------------------------
//---------------------------------------

type UserMovieTopFive struct {
	UserId    int64     `gorm:"column:user_id;type:integer;not null;primaryKey;"`
	MovieRank int       `gorm:"column:movie_rank;type:smallint;not null;primaryKey;"`
	MovieName string    `gorm:"column:movie_name;type:text;not null;"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamp(3);not null;default:CURRENT_TIMESTAMP;"`
}

func (UserMovieTopFive) TableName() string {
	return "user_movie_top_5"
}

//---------------------------------------
//---------------------------------------

type AddMovieTopFiveReq struct {
	MovieNames string `json:"movie_names" validate:"required"`
}

type UpdateCountRes struct {
	UpdateCount int64 `json:"update_count"`
}

type RecommendationsRes struct {
	Movies []Movie `json:"movies"`
}
