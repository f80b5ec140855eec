package ogimage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Asset names the composer loads. Fonts and icons are static files shipped
// with the site; none of them are computed.
const (
	AssetFontBold     = "fonts/Poppins-Bold.ttf"
	AssetFontRegular  = "fonts/Poppins-Regular.ttf"
	AssetLogo         = "logo.png"
	AssetIconCalendar = "icons/calendar.png"
	AssetIconPin      = "icons/pin.png"
	AssetIconPeople   = "icons/people.png"
)

// AssetLoader resolves an asset name to its raw bytes. The composer fetches
// assets per request and keeps no cache of its own.
type AssetLoader interface {
	Load(ctx context.Context, name string) ([]byte, error)
}

// FileLoader serves assets from a local directory.
type FileLoader struct {
	Dir string
}

func (l FileLoader) Load(ctx context.Context, name string) ([]byte, error) {
	cleaned := filepath.Clean(name)
	if strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return nil, fmt.Errorf("asset name %q escapes the asset directory", name)
	}

	data, err := os.ReadFile(filepath.Join(l.Dir, cleaned))
	if err != nil {
		return nil, fmt.Errorf("loading asset %s: %w", name, err)
	}
	return data, nil
}

// HTTPLoader fetches assets from a base URL, e.g. the site's static host.
type HTTPLoader struct {
	BaseURL string
	Client  *http.Client
}

func (l HTTPLoader) Load(ctx context.Context, name string) ([]byte, error) {
	client := l.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	url := strings.TrimRight(l.BaseURL, "/") + "/" + name
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building asset request %s: %w", name, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching asset %s: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching asset %s: unexpected status %d", name, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading asset %s: %w", name, err)
	}
	return data, nil
}
