package repository

import (
	"context"

	"github.com/rudhirsetu/website-backend/internal/cms"
	"github.com/rudhirsetu/website-backend/internal/domain"
)

// ImageRepository adapts the CMS client to the gallery's repository
// interface.
type ImageRepository struct {
	client *cms.Client
}

func NewImageRepository(client *cms.Client) *ImageRepository {
	return &ImageRepository{client: client}
}

func (r *ImageRepository) GetFeatured(ctx context.Context) ([]domain.ImageRecord, error) {
	return r.client.FetchFeaturedImages(ctx)
}

func (r *ImageRepository) GetGeneral(ctx context.Context) ([]domain.ImageRecord, error) {
	return r.client.FetchGeneralImages(ctx)
}

func (r *ImageRepository) GetByCategory(ctx context.Context, category string) ([]domain.ImageRecord, error) {
	return r.client.FetchImagesByCategory(ctx, category)
}
