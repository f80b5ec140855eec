package application

import (
	"context"
	"log"
	"sync"

	"github.com/rudhirsetu/website-backend/internal/domain"
)

const (
	cacheKeyFeatured = "gallery:featured"
	cacheKeyGeneral  = "gallery:general"
)

// GalleryService answers the gallery page's data needs: the featured
// carousel collection, and the filtered/paginated general grid.
type GalleryService struct {
	repo  domain.ImageRepository
	cache *ContentCache
}

func NewGalleryService(repo domain.ImageRepository, cache *ContentCache) *GalleryService {
	return &GalleryService{repo: repo, cache: cache}
}

// GalleryPage is one page of the general grid under a category filter.
type GalleryPage struct {
	Images     []domain.ImageRecord `json:"images"`
	Pagination domain.Pagination    `json:"pagination"`
	Category   string               `json:"category"`
}

// LoadErrors carries the independent outcomes of the two collection loads.
// One failing must not take the other down with it.
type LoadErrors struct {
	Featured error
	General  error
}

// GetFeatured returns the featured collection, served from cache when fresh.
func (s *GalleryService) GetFeatured(ctx context.Context) ([]domain.ImageRecord, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(cacheKeyFeatured); ok {
			return cached.([]domain.ImageRecord), nil
		}
	}

	images, err := s.repo.GetFeatured(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Set(cacheKeyFeatured, images)
	}
	return images, nil
}

// GetGeneral returns the general collection, served from cache when fresh.
func (s *GalleryService) GetGeneral(ctx context.Context) ([]domain.ImageRecord, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(cacheKeyGeneral); ok {
			return cached.([]domain.ImageRecord), nil
		}
	}

	images, err := s.repo.GetGeneral(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Set(cacheKeyGeneral, images)
	}
	return images, nil
}

// GetPage builds the gallery page for a category filter and 1-based page
// number. An unknown category is not an error, it simply has no matches. A
// page outside the valid range falls back to page 1.
func (s *GalleryService) GetPage(ctx context.Context, category string, page int) (*GalleryPage, error) {
	images, err := s.GetGeneral(ctx)
	if err != nil {
		return nil, err
	}

	view := NewGalleryView()
	view.SetGeneral(images)
	view.SetCategory(category)
	view.SetPage(page)

	return &GalleryPage{
		Images:     view.CurrentPageItems(),
		Pagination: domain.NewPagination(view.CurrentPage(), GalleryPageSize, len(view.FilteredImages())),
		Category:   view.SelectedCategory(),
	}, nil
}

// BuildView loads both collections concurrently into a fresh GalleryView.
// The loads are independent: a featured failure leaves the general grid
// intact and vice versa, with the per-collection errors reported so the
// caller can render an inline retry state for just the broken half.
func (s *GalleryService) BuildView(ctx context.Context) (*GalleryView, LoadErrors) {
	var (
		wg       sync.WaitGroup
		featured []domain.ImageRecord
		general  []domain.ImageRecord
		errs     LoadErrors
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		featured, errs.Featured = s.GetFeatured(ctx)
	}()
	go func() {
		defer wg.Done()
		general, errs.General = s.GetGeneral(ctx)
	}()
	wg.Wait()

	view := NewGalleryView()
	if errs.Featured != nil {
		log.Printf("gallery: featured load failed: %v", errs.Featured)
	} else {
		view.SetFeatured(featured)
	}
	if errs.General != nil {
		log.Printf("gallery: general load failed: %v", errs.General)
	} else {
		view.SetGeneral(general)
	}
	return view, errs
}

// RefreshFeatured refetches the featured collection, bypassing the cache.
// Used by the content scheduler to keep the carousel warm.
func (s *GalleryService) RefreshFeatured(ctx context.Context) error {
	images, err := s.repo.GetFeatured(ctx)
	if err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.Set(cacheKeyFeatured, images)
	}
	return nil
}
