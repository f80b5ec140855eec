package http

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rudhirsetu/website-backend/internal/domain"
	"github.com/rudhirsetu/website-backend/internal/ogimage"
)

type stubEventRepo struct {
	events map[string]*domain.EventRecord
}

func (r *stubEventRepo) GetByID(ctx context.Context, id string) (*domain.EventRecord, error) {
	event, ok := r.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return event, nil
}

func (r *stubEventRepo) ListUpcoming(ctx context.Context, page, pageSize int) ([]domain.EventRecord, domain.Pagination, error) {
	return nil, domain.Pagination{}, nil
}

func (r *stubEventRepo) ListPast(ctx context.Context, page, pageSize int) ([]domain.EventRecord, domain.Pagination, error) {
	return nil, domain.Pagination{}, nil
}

// noAssetLoader refuses every asset, forcing the composer onto its
// fallback path for the generic variant.
type noAssetLoader struct{}

func (noAssetLoader) Load(ctx context.Context, name string) ([]byte, error) {
	return nil, fmt.Errorf("asset %s unavailable", name)
}

func newOGTestApp(events map[string]*domain.EventRecord) *fiber.App {
	composer := ogimage.NewComposer(noAssetLoader{}, "Rudhirsetu Seva Sanstha", "Empowering Lives")
	handler := NewOGHandler(composer, &stubEventRepo{events: events}, "Rudhirsetu Seva Sanstha", "Empowering Lives Through Blood Donation & Healthcare")

	app := fiber.New()
	app.Get("/api/og", handler.Generic)
	app.Get("/api/og/event/:id", handler.Event)
	return app
}

func TestOGGenericServesCachedPNG(t *testing.T) {
	app := newOGTestApp(nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/og?title=Donate+Blood", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "public, max-age=3600, s-maxage=3600", resp.Header.Get(fiber.HeaderCacheControl))
	assert.Equal(t, "image/png", resp.Header.Get(fiber.HeaderContentType))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(body))
	require.NoError(t, err, "generic endpoint must always ship a decodable card")
	assert.Equal(t, ogimage.CardWidth, img.Bounds().Dx())
	assert.Equal(t, ogimage.CardHeight, img.Bounds().Dy())
}

func TestOGGenericDefaultsMissingParams(t *testing.T) {
	app := newOGTestApp(nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/og", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get(fiber.HeaderContentType))
}

func TestOGEventUnknownIDReturnsPlainNotFound(t *testing.T) {
	app := newOGTestApp(nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/og/event/missing", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.NotEqual(t, "image/png", resp.Header.Get(fiber.HeaderContentType))

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "event not found", string(body))
}

func TestOGEventAssetFailureReturnsError(t *testing.T) {
	events := map[string]*domain.EventRecord{
		"evt-1": {
			ID:       "evt-1",
			Title:    "Blood Donation Camp",
			Date:     time.Date(2026, 9, 15, 9, 0, 0, 0, time.UTC),
			Location: "Panvel",
		},
	}
	app := newOGTestApp(events)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/og/event/evt-1", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.NotEqual(t, "image/png", resp.Header.Get(fiber.HeaderContentType))
}
