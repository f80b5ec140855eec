package cms

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rudhirsetu/website-backend/internal/domain"
)

// Client talks to the headless CMS REST API that holds the site's content
// (gallery images, events, donation/contact/social settings).
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Wire shapes of the CMS API. Records are validated at this boundary: entries
// missing an id or an image URL are logged and skipped instead of trusted
// downstream.

type imageEntry struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	IsFeatured  bool   `json:"isFeatured"`
	ImageURL    string `json:"imageUrl"`
}

type eventEntry struct {
	ID                   string `json:"id"`
	Title                string `json:"title"`
	Date                 string `json:"date"`
	Location             string `json:"location"`
	ExpectedParticipants int    `json:"expectedParticipants"`
	ShortDesc            string `json:"shortDesc"`
	Desc                 string `json:"desc"`
	ImageURL             string `json:"imageUrl"`
}

type settingsEntry struct {
	OrgName               string `json:"orgName"`
	Tagline               string `json:"tagline"`
	DonationAccountName   string `json:"donationAccountName"`
	DonationAccountNumber string `json:"donationAccountNumber"`
	DonationIFSC          string `json:"donationIfsc"`
	DonationUPI           string `json:"donationUpi"`
	ContactEmail          string `json:"contactEmail"`
	ContactPhone          string `json:"contactPhone"`
	Address               string `json:"address"`
	FacebookURL           string `json:"facebookUrl"`
	InstagramURL          string `json:"instagramUrl"`
	TwitterURL            string `json:"twitterUrl"`
	YouTubeURL            string `json:"youtubeUrl"`
	UpdatedAt             string `json:"updatedAt"`
}

type paginationMeta struct {
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	PageCount int `json:"pageCount"`
	Total     int `json:"total"`
}

type listMeta struct {
	Pagination paginationMeta `json:"pagination"`
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("building CMS request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("CMS request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domain.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("CMS request %s: unexpected status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding CMS response %s: %w", path, err)
	}
	return nil
}

func (c *Client) fetchImages(ctx context.Context, query url.Values) ([]domain.ImageRecord, error) {
	var envelope struct {
		Data []imageEntry `json:"data"`
	}
	if err := c.get(ctx, "/api/gallery-images", query, &envelope); err != nil {
		return nil, err
	}

	images := make([]domain.ImageRecord, 0, len(envelope.Data))
	for _, entry := range envelope.Data {
		if entry.ID == "" || entry.ImageURL == "" {
			log.Printf("CMS: skipping malformed gallery entry (id=%q url=%q)", entry.ID, entry.ImageURL)
			continue
		}
		images = append(images, domain.ImageRecord{
			ID:          entry.ID,
			Title:       entry.Title,
			Description: entry.Description,
			Category:    strings.ToLower(entry.Category),
			IsFeatured:  entry.IsFeatured,
			ImageURL:    entry.ImageURL,
		})
	}
	return images, nil
}

// FetchFeaturedImages returns the featured collection. An empty result is not
// an error; only transport or decode failures are.
func (c *Client) FetchFeaturedImages(ctx context.Context) ([]domain.ImageRecord, error) {
	q := url.Values{}
	q.Set("filters[isFeatured]", "true")
	q.Set("sort", "order:asc")
	return c.fetchImages(ctx, q)
}

// FetchGeneralImages returns the non-featured collection in CMS order.
func (c *Client) FetchGeneralImages(ctx context.Context) ([]domain.ImageRecord, error) {
	q := url.Values{}
	q.Set("filters[isFeatured]", "false")
	q.Set("sort", "order:asc")
	return c.fetchImages(ctx, q)
}

// FetchImagesByCategory returns non-featured images of one category.
func (c *Client) FetchImagesByCategory(ctx context.Context, category string) ([]domain.ImageRecord, error) {
	q := url.Values{}
	q.Set("filters[isFeatured]", "false")
	q.Set("filters[category]", strings.ToLower(category))
	return c.fetchImages(ctx, q)
}

// FetchEventByID returns domain.ErrNotFound when the id is unknown.
func (c *Client) FetchEventByID(ctx context.Context, id string) (*domain.EventRecord, error) {
	var envelope struct {
		Data *eventEntry `json:"data"`
	}
	if err := c.get(ctx, "/api/events/"+url.PathEscape(id), nil, &envelope); err != nil {
		return nil, err
	}
	if envelope.Data == nil || envelope.Data.ID == "" {
		return nil, domain.ErrNotFound
	}
	record, err := envelope.Data.toDomain()
	if err != nil {
		return nil, fmt.Errorf("event %s: %w", id, err)
	}
	return record, nil
}

func (c *Client) fetchEvents(ctx context.Context, query url.Values) ([]domain.EventRecord, domain.Pagination, error) {
	var envelope struct {
		Data []eventEntry `json:"data"`
		Meta listMeta     `json:"meta"`
	}
	if err := c.get(ctx, "/api/events", query, &envelope); err != nil {
		return nil, domain.Pagination{}, err
	}

	events := make([]domain.EventRecord, 0, len(envelope.Data))
	for _, entry := range envelope.Data {
		record, err := entry.toDomain()
		if err != nil {
			log.Printf("CMS: skipping malformed event entry: %v", err)
			continue
		}
		events = append(events, *record)
	}

	meta := envelope.Meta.Pagination
	pagination := domain.Pagination{
		Page:      meta.Page,
		PageSize:  meta.PageSize,
		PageCount: meta.PageCount,
		Total:     meta.Total,
	}
	return events, pagination, nil
}

// FetchUpcomingEvents lists events on or after today, soonest first.
func (c *Client) FetchUpcomingEvents(ctx context.Context, page, pageSize int) ([]domain.EventRecord, domain.Pagination, error) {
	q := url.Values{}
	q.Set("filters[date][$gte]", time.Now().Format("2006-01-02"))
	q.Set("sort", "date:asc")
	q.Set("pagination[page]", strconv.Itoa(page))
	q.Set("pagination[pageSize]", strconv.Itoa(pageSize))
	return c.fetchEvents(ctx, q)
}

// FetchPastEvents lists events before today, most recent first.
func (c *Client) FetchPastEvents(ctx context.Context, page, pageSize int) ([]domain.EventRecord, domain.Pagination, error) {
	q := url.Values{}
	q.Set("filters[date][$lt]", time.Now().Format("2006-01-02"))
	q.Set("sort", "date:desc")
	q.Set("pagination[page]", strconv.Itoa(page))
	q.Set("pagination[pageSize]", strconv.Itoa(pageSize))
	return c.fetchEvents(ctx, q)
}

// FetchSiteSettings returns the singleton settings record.
func (c *Client) FetchSiteSettings(ctx context.Context) (*domain.SiteSettings, error) {
	var envelope struct {
		Data *settingsEntry `json:"data"`
	}
	if err := c.get(ctx, "/api/site-settings", nil, &envelope); err != nil {
		return nil, err
	}
	if envelope.Data == nil {
		return nil, domain.ErrNotFound
	}

	entry := envelope.Data
	settings := &domain.SiteSettings{
		OrgName:               entry.OrgName,
		Tagline:               entry.Tagline,
		DonationAccountName:   entry.DonationAccountName,
		DonationAccountNumber: entry.DonationAccountNumber,
		DonationIFSC:          entry.DonationIFSC,
		DonationUPI:           entry.DonationUPI,
		ContactEmail:          entry.ContactEmail,
		ContactPhone:          entry.ContactPhone,
		Address:               entry.Address,
		FacebookURL:           entry.FacebookURL,
		InstagramURL:          entry.InstagramURL,
		TwitterURL:            entry.TwitterURL,
		YouTubeURL:            entry.YouTubeURL,
	}
	if entry.UpdatedAt != "" {
		if t, err := ParseCMSDate(entry.UpdatedAt); err == nil {
			settings.UpdatedAt = t
		}
	}
	return settings, nil
}

func (e eventEntry) toDomain() (*domain.EventRecord, error) {
	if e.ID == "" || e.Title == "" {
		return nil, fmt.Errorf("missing id or title (id=%q)", e.ID)
	}
	date, err := ParseCMSDate(e.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", e.Date, err)
	}
	return &domain.EventRecord{
		ID:                   e.ID,
		Title:                e.Title,
		Date:                 date,
		Location:             e.Location,
		ExpectedParticipants: e.ExpectedParticipants,
		ShortDesc:            e.ShortDesc,
		Desc:                 e.Desc,
		ImageURL:             e.ImageURL,
	}, nil
}
