package repository

import (
	"context"

	"github.com/rudhirsetu/website-backend/internal/cms"
	"github.com/rudhirsetu/website-backend/internal/domain"
)

// SettingsRepository adapts the CMS client to the settings repository
// interface.
type SettingsRepository struct {
	client *cms.Client
}

func NewSettingsRepository(client *cms.Client) *SettingsRepository {
	return &SettingsRepository{client: client}
}

func (r *SettingsRepository) Get(ctx context.Context) (*domain.SiteSettings, error) {
	return r.client.FetchSiteSettings(ctx)
}
