package application

import (
	"context"

	"github.com/rudhirsetu/website-backend/internal/domain"
)

const cacheKeySettings = "settings:site"

// SettingsService serves the donation/contact/social settings record, cached
// because every page renders from it.
type SettingsService struct {
	repo  domain.SettingsRepository
	cache *ContentCache
}

func NewSettingsService(repo domain.SettingsRepository, cache *ContentCache) *SettingsService {
	return &SettingsService{repo: repo, cache: cache}
}

func (s *SettingsService) Get(ctx context.Context) (*domain.SiteSettings, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(cacheKeySettings); ok {
			return cached.(*domain.SiteSettings), nil
		}
	}

	settings, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Set(cacheKeySettings, settings)
	}
	return settings, nil
}

// Refresh refetches the settings, bypassing the cache. Used by the content
// scheduler.
func (s *SettingsService) Refresh(ctx context.Context) error {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.Set(cacheKeySettings, settings)
	}
	return nil
}
