package service

import (
	"context"
	"movie_recommender/internal/repository"
)

type IAdminService interface {
	FetchDbConfigs(ctx context.Context) error
}

type AdminService struct {
	AdminRepo repository.IAdminRepository
}

func NewAdminService(AdminRepo repository.IAdminRepository) *AdminService {
	service := &AdminService{
		AdminRepo: AdminRepo,
	}

	return service
}

//-----------------------------------------
//-----------------------------------------

func (m *AdminService) FetchDbConfigs(ctx context.Context) error {
	return m.AdminRepo.FetchDbConfigs(ctx)
}
