package application

import (
	"strings"

	"github.com/rudhirsetu/website-backend/internal/domain"
)

// GalleryPageSize is the fixed page window of the general image grid.
const GalleryPageSize = 16

type LightboxSource string

const (
	LightboxSourceFeatured LightboxSource = "featured"
	LightboxSourceGeneral  LightboxSource = "general"
)

// Lightbox is the modal viewer state. OpenIndex is always a valid index into
// whichever collection Source designates; featured and filtered images are
// never conflated when navigating.
type Lightbox struct {
	OpenImage domain.ImageRecord
	OpenIndex int
	Source    LightboxSource
}

// GalleryView owns the state of one gallery page view: the two disjoint image
// collections (featured and general), the active category filter, the current
// page window and the lightbox. It is created per view, populated by two
// independent loads in either order, and discarded on navigation away.
//
// All operations are synchronous with respect to their caller; the view is
// not safe for concurrent use from multiple goroutines.
type GalleryView struct {
	featured         []domain.ImageRecord
	allGeneral       []domain.ImageRecord
	selectedCategory string
	filtered         []domain.ImageRecord
	currentPage      int
	pageSize         int
	lightbox         *Lightbox
}

func NewGalleryView() *GalleryView {
	return &GalleryView{
		selectedCategory: domain.CategoryAll,
		currentPage:      1,
		pageSize:         GalleryPageSize,
	}
}

// SetFeatured replaces the featured collection. If the lightbox is open on
// the featured collection its index is recomputed against the new data; the
// lightbox closes when its image is no longer present.
func (v *GalleryView) SetFeatured(images []domain.ImageRecord) {
	v.featured = images
	v.reanchorLightbox(LightboxSourceFeatured)
}

// SetGeneral replaces the general collection and recomputes the filtered set
// under the current category. The current page is clamped into the new valid
// range rather than reset: arriving data must not jump the user back to page
// 1 unless their page no longer exists.
func (v *GalleryView) SetGeneral(images []domain.ImageRecord) {
	v.allGeneral = images
	v.filtered = filterByCategory(v.allGeneral, v.selectedCategory)
	if max := v.PageCount(); v.currentPage > max {
		v.currentPage = max
	}
	v.reanchorLightbox(LightboxSourceGeneral)
}

// SetCategory applies a new filter. The filtered set and the page reset
// happen together: there is no intermediate state where the page points past
// the new result set.
func (v *GalleryView) SetCategory(category string) {
	v.selectedCategory = category
	v.filtered = filterByCategory(v.allGeneral, category)
	v.currentPage = 1
}

func (v *GalleryView) SelectedCategory() string { return v.selectedCategory }

func (v *GalleryView) Featured() []domain.ImageRecord { return v.featured }

func (v *GalleryView) FilteredImages() []domain.ImageRecord { return v.filtered }

func (v *GalleryView) CurrentPage() int { return v.currentPage }

func (v *GalleryView) PageCount() int {
	return domain.PageCount(len(v.filtered), v.pageSize)
}

// SetPage moves to a 1-based page. Out-of-range values are a no-op, which
// keeps 1 <= currentPage <= PageCount() an invariant rather than relying on
// the UI disabling its buttons.
func (v *GalleryView) SetPage(page int) {
	if page < 1 || page > v.PageCount() {
		return
	}
	v.currentPage = page
}

// CurrentPageItems returns the slice of the filtered set visible on the
// current page.
func (v *GalleryView) CurrentPageItems() []domain.ImageRecord {
	start, end := domain.PageWindow(len(v.filtered), v.currentPage, v.pageSize)
	return v.filtered[start:end]
}

// OpenLightbox opens the modal viewer on an image belonging to the given
// source collection. Opening an image that is not in that collection is a
// no-op: an index computed against the wrong array would silently show the
// wrong image.
func (v *GalleryView) OpenLightbox(source LightboxSource, image domain.ImageRecord) {
	list := v.sourceList(source)
	idx := indexOf(list, image.ID)
	if idx < 0 {
		return
	}
	v.lightbox = &Lightbox{
		OpenImage: list[idx],
		OpenIndex: idx,
		Source:    source,
	}
}

func (v *GalleryView) Lightbox() *Lightbox { return v.lightbox }

// LightboxNext advances the viewer within its source collection, wrapping
// past the end. No-op when the lightbox is closed or its collection is empty.
func (v *GalleryView) LightboxNext() {
	v.stepLightbox(1)
}

// LightboxPrev steps the viewer backwards, wrapping before the start.
func (v *GalleryView) LightboxPrev() {
	v.stepLightbox(-1)
}

// CloseLightbox dismisses the viewer, clearing which collection it was
// attributed to. Safe to call when already closed.
func (v *GalleryView) CloseLightbox() {
	v.lightbox = nil
}

func (v *GalleryView) stepLightbox(delta int) {
	if v.lightbox == nil {
		return
	}
	list := v.sourceList(v.lightbox.Source)
	n := len(list)
	if n == 0 {
		return
	}
	idx := ((v.lightbox.OpenIndex+delta)%n + n) % n
	v.lightbox.OpenIndex = idx
	v.lightbox.OpenImage = list[idx]
}

func (v *GalleryView) sourceList(source LightboxSource) []domain.ImageRecord {
	if source == LightboxSourceFeatured {
		return v.featured
	}
	return v.filtered
}

// reanchorLightbox keeps an open lightbox consistent after its source
// collection was replaced by a data load.
func (v *GalleryView) reanchorLightbox(source LightboxSource) {
	if v.lightbox == nil || v.lightbox.Source != source {
		return
	}
	list := v.sourceList(source)
	idx := indexOf(list, v.lightbox.OpenImage.ID)
	if idx < 0 {
		v.lightbox = nil
		return
	}
	v.lightbox.OpenIndex = idx
	v.lightbox.OpenImage = list[idx]
}

func filterByCategory(images []domain.ImageRecord, category string) []domain.ImageRecord {
	if strings.EqualFold(category, domain.CategoryAll) {
		out := make([]domain.ImageRecord, len(images))
		copy(out, images)
		return out
	}
	var out []domain.ImageRecord
	for _, img := range images {
		if img.MatchesCategory(category) {
			out = append(out, img)
		}
	}
	return out
}

func indexOf(images []domain.ImageRecord, id string) int {
	for i, img := range images {
		if img.ID == id {
			return i
		}
	}
	return -1
}
