package domain

import (
	"context"
	"time"
)

// SiteSettings holds the donation, contact and social content managed in the
// CMS and rendered across the site.
type SiteSettings struct {
	OrgName               string    `json:"org_name"`
	Tagline               string    `json:"tagline,omitempty"`
	DonationAccountName   string    `json:"donation_account_name,omitempty"`
	DonationAccountNumber string    `json:"donation_account_number,omitempty"`
	DonationIFSC          string    `json:"donation_ifsc,omitempty"`
	DonationUPI           string    `json:"donation_upi,omitempty"`
	ContactEmail          string    `json:"contact_email,omitempty"`
	ContactPhone          string    `json:"contact_phone,omitempty"`
	Address               string    `json:"address,omitempty"`
	FacebookURL           string    `json:"facebook_url,omitempty"`
	InstagramURL          string    `json:"instagram_url,omitempty"`
	TwitterURL            string    `json:"twitter_url,omitempty"`
	YouTubeURL            string    `json:"youtube_url,omitempty"`
	UpdatedAt             time.Time `json:"updated_at,omitempty"`
}

type SettingsRepository interface {
	Get(ctx context.Context) (*SiteSettings, error)
}
