package repository

import (
	"context"
	"movie_recommender/configs"

	"go.mongodb.org/mongo-driver/mongo"
)

type IAdminRepository interface {
	FetchDbConfigs(ctx context.Context) error
}

type AdminRepository struct {
	mongodb *mongo.Database
}

func NewAdminRepository(mongodb *mongo.Database) *AdminRepository {
	return &AdminRepository{mongodb: mongodb}
}

//------------------------------------------
//------------------------------------------

// FetchDbConfigs reloads the dynamic server configs from the configs collection.
func (r *AdminRepository) FetchDbConfigs(ctx context.Context) error {
	return configs.FetchDbConfigs(ctx, r.mongodb)
}
