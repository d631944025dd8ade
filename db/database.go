package db

import (
	"context"
	_ "embed"
	"errors"
	"movie_recommender/configs"
	"movie_recommender/model"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Database struct {
	db *gorm.DB
}

func NewDatabase() (*Database, error) {
	return Open(configs.GetConfigs().DbUrl)
}

func Open(dsn string) (*Database, error) {
	db, err := gorm.Open(
		postgres.Open(dsn),
		&gorm.Config{
			SkipDefaultTransaction: true,
			PrepareStmt:            true,
			TranslateError:         true,
		},
	)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// SetMaxIdleConns sets the maximum number of connections in the idle connection pool.
	sqlDB.SetMaxIdleConns(10)
	// SetMaxOpenConns sets the maximum number of open connections to the database.
	sqlDB.SetMaxOpenConns(100)

	// postgres answers 57P03 while it is still starting up
	for i := 0; i < 5; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = sqlDB.PingContext(ctx)
		cancel()
		if err == nil || !IsConnectionNotAcceptingError(err) {
			break
		}
		log.Warn().Err(err).Int("attempt", i+1).Msg("postgres is not accepting connections yet")
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, err
	}

	return &Database{db: db}, nil
}

//go:embed views.sql
var viewsSql string

// AutoMigrate creates the tables and the similarity view read by the recommendations.
func (d *Database) AutoMigrate() error {
	err := d.db.AutoMigrate(
		&model.User{},
		&model.UserMovieTopFive{},
		&model.Quiz{},
		&model.QuizPrompt{},
		&model.QuizPromptOption{},
		&model.UserQuizResponse{},
	)
	if err != nil {
		return err
	}
	return d.db.Exec(viewsSql).Error
}

func (d *Database) Close() {
	// try not to use it due to gorm connection pooling
	sqlDB, err := d.db.DB()
	if err != nil {
		log.Error().Err(err).Msg("could not get sql db")
		return
	}
	_ = sqlDB.Close()
}

func (d *Database) GetDB() *gorm.DB {
	return d.db
}

func IsConnectionNotAcceptingError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "57P03"
	}
	return false
}
