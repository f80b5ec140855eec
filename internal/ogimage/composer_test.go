package ogimage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rudhirsetu/website-backend/internal/domain"
)

// failingLoader refuses every asset.
type failingLoader struct{}

func (failingLoader) Load(ctx context.Context, name string) ([]byte, error) {
	return nil, fmt.Errorf("asset %s unavailable", name)
}

// garbageLoader returns bytes that decode as neither a font nor an image.
type garbageLoader struct{}

func (garbageLoader) Load(ctx context.Context, name string) ([]byte, error) {
	return []byte("not a real asset"), nil
}

func TestTitleFontSizeTiers(t *testing.T) {
	tests := []struct {
		length int
		want   float64
	}{
		{10, 80},
		{20, 80},
		{21, 72},
		{25, 72},
		{30, 72},
		{31, 64},
		{35, 64},
		{60, 64},
	}

	for _, tt := range tests {
		title := strings.Repeat("x", tt.length)
		if got := titleFontSize(title); got != tt.want {
			t.Errorf("titleFontSize(len=%d) = %v, want %v", tt.length, got, tt.want)
		}
	}
}

func TestTitleTruncation(t *testing.T) {
	long := strings.Repeat("a", 60)
	got := truncateWithEllipsis(long, titleTruncateLimit)

	assert.Len(t, got, 53, "50 chars plus the ellipsis")
	assert.True(t, strings.HasSuffix(got, "..."))

	// A 47-char real-world title is under the truncation limit.
	title := "Annual Blood Donation Mega Camp 2024 at Panvel"
	assert.Equal(t, title, truncateWithEllipsis(title, titleTruncateLimit))
	assert.Equal(t, float64(64), titleFontSize(strings.Repeat("x", 47)))
}

func TestLocationTruncation(t *testing.T) {
	loc45 := strings.Repeat("l", 45)
	got := truncateWithEllipsis(loc45, locationTruncateLimit)
	assert.Len(t, got, 43)
	assert.True(t, strings.HasSuffix(got, "..."))

	loc30 := strings.Repeat("l", 30)
	assert.Equal(t, loc30, truncateWithEllipsis(loc30, locationTruncateLimit))
}

func TestRenderGenericFallsBackOnAssetFailure(t *testing.T) {
	composer := NewComposer(failingLoader{}, "Rudhirsetu Seva Sanstha", "Empowering Lives")

	card, err := composer.RenderGeneric(context.Background(), "Donate Blood", "Join our next camp")
	require.NoError(t, err, "generic variant must degrade, not fail")

	img, err := png.Decode(bytes.NewReader(card))
	require.NoError(t, err)
	assert.Equal(t, CardWidth, img.Bounds().Dx())
	assert.Equal(t, CardHeight, img.Bounds().Dy())
}

func TestRenderGenericFallsBackOnUndecodableAssets(t *testing.T) {
	composer := NewComposer(garbageLoader{}, "Rudhirsetu Seva Sanstha", "Empowering Lives")

	card, err := composer.RenderGeneric(context.Background(), "Donate Blood", "Join our next camp")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(card))
	require.NoError(t, err)
	assert.Equal(t, CardWidth, img.Bounds().Dx())
}

func TestRenderEventFailsHardOnAssetFailure(t *testing.T) {
	composer := NewComposer(failingLoader{}, "Rudhirsetu Seva Sanstha", "Empowering Lives")

	event := &domain.EventRecord{
		ID:       "evt-1",
		Title:    "Blood Donation Camp",
		Date:     time.Date(2026, 9, 15, 9, 0, 0, 0, time.UTC),
		Location: "Panvel",
	}

	card, err := composer.RenderEvent(context.Background(), event)
	assert.Error(t, err, "event variant must not ship a partial card")
	assert.Nil(t, card)
}

func TestRenderEventFailsHardOnUndecodableAssets(t *testing.T) {
	composer := NewComposer(garbageLoader{}, "Rudhirsetu Seva Sanstha", "Empowering Lives")

	event := &domain.EventRecord{
		ID:    "evt-1",
		Title: "Blood Donation Camp",
		Date:  time.Date(2026, 9, 15, 9, 0, 0, 0, time.UTC),
	}

	_, err := composer.RenderEvent(context.Background(), event)
	assert.Error(t, err)
}

func TestFileLoaderRejectsPathEscape(t *testing.T) {
	loader := FileLoader{Dir: t.TempDir()}

	_, err := loader.Load(context.Background(), "../secrets.txt")
	require.Error(t, err)
	assert.False(t, errors.Is(err, context.Canceled))

	_, err = loader.Load(context.Background(), "/etc/passwd")
	require.Error(t, err)
}
