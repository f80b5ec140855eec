package domain

import (
	"context"
	"strings"
)

// Gallery category taxonomy. "all" is the filter sentinel, not a real category.
const (
	CategoryAll                = "all"
	CategoryBloodDonation      = "blood-donation"
	CategoryEyeCare            = "eye-care"
	CategoryCancerAwareness    = "cancer-awareness"
	CategoryThalassemiaSupport = "thalassemia-support"
	CategoryOther              = "other"
)

// KnownCategories returns the fixed taxonomy, without the "all" sentinel.
func KnownCategories() []string {
	return []string{
		CategoryBloodDonation,
		CategoryEyeCare,
		CategoryCancerAwareness,
		CategoryThalassemiaSupport,
		CategoryOther,
	}
}

// IsKnownCategory reports whether cat is part of the taxonomy (case-insensitive).
// Unknown categories are not an error anywhere: filtering by one just yields
// an empty result set.
func IsKnownCategory(cat string) bool {
	for _, known := range KnownCategories() {
		if strings.EqualFold(cat, known) {
			return true
		}
	}
	return false
}

type ImageRecord struct {
	ID          string `json:"id"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	IsFeatured  bool   `json:"is_featured"`
	ImageURL    string `json:"image_url"`
}

// MatchesCategory reports whether the record belongs to the given filter.
// The "all" sentinel matches every record.
func (r ImageRecord) MatchesCategory(cat string) bool {
	if strings.EqualFold(cat, CategoryAll) {
		return true
	}
	return strings.EqualFold(r.Category, cat)
}

type ImageRepository interface {
	GetFeatured(ctx context.Context) ([]ImageRecord, error)
	GetGeneral(ctx context.Context) ([]ImageRecord, error)
	GetByCategory(ctx context.Context, category string) ([]ImageRecord, error)
}
