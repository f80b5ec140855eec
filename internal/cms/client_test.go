package cms

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rudhirsetu/website-backend/internal/domain"
)

func TestFetchFeaturedImagesSkipsMalformedEntries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/gallery-images", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("filters[isFeatured]"))
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"data": [
				{"id": "img-1", "title": "Camp", "category": "Blood-Donation", "isFeatured": true, "imageUrl": "https://media.example.org/1.jpg"},
				{"id": "", "imageUrl": "https://media.example.org/orphan.jpg"},
				{"id": "img-3", "isFeatured": true, "imageUrl": "https://media.example.org/3.jpg"}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret-token")
	images, err := client.FetchFeaturedImages(context.Background())
	require.NoError(t, err)

	require.Len(t, images, 2, "entry without id is dropped at the boundary")
	assert.Equal(t, "img-1", images[0].ID)
	assert.Equal(t, "blood-donation", images[0].Category, "category is normalized to lower case")
}

func TestFetchImagesEmptyResultIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": []}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	images, err := client.FetchGeneralImages(context.Background())
	require.NoError(t, err)
	assert.Empty(t, images)
}

func TestFetchImagesTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	_, err := client.FetchGeneralImages(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

func TestFetchEventByID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/events/evt-42":
			w.Write([]byte(`{"data": {
				"id": "evt-42",
				"title": "Annual Blood Donation Mega Camp",
				"date": "2026-09-15T09:00:00Z",
				"location": "Panvel Community Hall",
				"expectedParticipants": 250
			}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, "")

	event, err := client.FetchEventByID(context.Background(), "evt-42")
	require.NoError(t, err)
	assert.Equal(t, "Annual Blood Donation Mega Camp", event.Title)
	assert.Equal(t, "Panvel Community Hall", event.Location)
	assert.Equal(t, 250, event.ExpectedParticipants)
	assert.Equal(t, 2026, event.Date.Year())

	_, err = client.FetchEventByID(context.Background(), "missing")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestFetchUpcomingEventsPagination(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("pagination[page]"))
		assert.Equal(t, "9", r.URL.Query().Get("pagination[pageSize]"))
		assert.Equal(t, "date:asc", r.URL.Query().Get("sort"))
		assert.NotEmpty(t, r.URL.Query().Get("filters[date][$gte]"))

		w.Write([]byte(`{
			"data": [
				{"id": "evt-1", "title": "Eye Checkup Camp", "date": "2026-10-01"},
				{"id": "evt-2", "title": "Thalassemia Awareness Drive", "date": "2026-10-12"}
			],
			"meta": {"pagination": {"page": 2, "pageSize": 9, "pageCount": 3, "total": 21}}
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	events, pagination, err := client.FetchUpcomingEvents(context.Background(), 2, 9)
	require.NoError(t, err)

	assert.Len(t, events, 2)
	assert.Equal(t, domain.Pagination{Page: 2, PageSize: 9, PageCount: 3, Total: 21}, pagination)
}

func TestFetchSiteSettings(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/site-settings", r.URL.Path)
		w.Write([]byte(`{"data": {
			"orgName": "Rudhirsetu Seva Sanstha",
			"donationUpi": "rudhirsetu@upi",
			"contactEmail": "info@rudhirsetu.org",
			"instagramUrl": "https://instagram.com/rudhirsetu",
			"updatedAt": "2026-08-01T10:30:00.000Z"
		}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	settings, err := client.FetchSiteSettings(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Rudhirsetu Seva Sanstha", settings.OrgName)
	assert.Equal(t, "rudhirsetu@upi", settings.DonationUPI)
	assert.False(t, settings.UpdatedAt.IsZero())
}

func TestParseCMSDate(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
		want    time.Time
	}{
		{"2026-09-15T09:00:00Z", false, time.Date(2026, 9, 15, 9, 0, 0, 0, time.UTC)},
		{"2026-09-15T09:00:00.000Z", false, time.Date(2026, 9, 15, 9, 0, 0, 0, time.UTC)},
		{"2026-09-15", false, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)},
		{"15/09/2026", false, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)},
		{"", true, time.Time{}},
		{"next tuesday", true, time.Time{}},
	}

	for _, tt := range tests {
		got, err := ParseCMSDate(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseCMSDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && !got.Equal(tt.want) {
			t.Errorf("ParseCMSDate(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
