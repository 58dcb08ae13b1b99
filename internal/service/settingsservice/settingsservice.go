package settingsservice

import (
	"context"

	"github.com/mkorsun/storefront/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	Get(ctx context.Context) (domain.Settings, error)
	Update(ctx context.Context, patch domain.SettingsPatch) (domain.Settings, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) Get(ctx context.Context) (domain.Settings, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		zap.L().Error("failed to get settings", zap.Error(err))
		return domain.Settings{}, err
	}
	return settings, nil
}

func (s *Service) Update(ctx context.Context, patch domain.SettingsPatch) (domain.Settings, error) {
	settings, err := s.repo.Update(ctx, patch)
	if err != nil {
		zap.L().Error("failed to update settings", zap.Error(err))
		return domain.Settings{}, err
	}
	zap.L().Info("settings updated", zap.String("name", settings.Name))
	return settings, nil
}
