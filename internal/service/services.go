package service

import (
	"github.com/ao-tech/club-manager/internal/config"
	"github.com/ao-tech/club-manager/internal/repository"
)

type Services struct {
	Auth     *AuthService
	Member   *MemberService
	Training *TrainingService
	Admin    *AdminService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:     NewAuthService(repos.User, repos.Session, cfg),
		Member:   NewMemberService(repos.Member),
		Training: NewTrainingService(repos.TrainingSession),
		Admin:    NewAdminService(repos.User, repos.AdminAction),
	}
}
