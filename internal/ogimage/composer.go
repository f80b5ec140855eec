package ogimage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/rudhirsetu/website-backend/internal/application"
	"github.com/rudhirsetu/website-backend/internal/domain"
)

// Cards are always exactly this size regardless of input text: the
// truncation and font-tier rules below keep text inside the frame, there is
// no shrink-to-fit.
const (
	CardWidth  = 1200
	CardHeight = 628
)

const (
	titleTruncateLimit    = 50
	locationTruncateLimit = 40

	gridSpacing   = 100
	frameWidth    = 12
	dividerWidth  = 200
	dividerHeight = 12

	contentX  = 90
	logoWidth = 150
)

var (
	colorBrand    = color.RGBA{R: 0xB9, G: 0x1C, B: 0x1C, A: 0xFF}
	colorInk      = color.RGBA{R: 0x1F, G: 0x29, B: 0x37, A: 0xFF}
	colorMuted    = color.RGBA{R: 0x4B, G: 0x55, B: 0x63, A: 0xFF}
	colorPaper    = color.RGBA{R: 0xFF, G: 0xFB, B: 0xF7, A: 0xFF}
	colorGridLine = color.RGBA{R: 0xB9, G: 0x1C, B: 0x1C, A: 0x14}
)

// Composer renders the 1200x628 social preview cards. It is stateless across
// invocations: each render fetches its own assets and produces one PNG.
type Composer struct {
	assets  AssetLoader
	orgName string
	tagline string
}

func NewComposer(assets AssetLoader, orgName, tagline string) *Composer {
	return &Composer{
		assets:  assets,
		orgName: orgName,
		tagline: tagline,
	}
}

// titleFontSize picks the discrete font tier from the pre-truncation title
// length.
func titleFontSize(title string) float64 {
	n := len([]rune(title))
	switch {
	case n > 30:
		return 64
	case n > 20:
		return 72
	default:
		return 80
	}
}

// truncateWithEllipsis cuts a string at limit runes and appends "...".
// Strings at or under the limit are returned unchanged.
func truncateWithEllipsis(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

// RenderGeneric renders the generic card. It never fails because of assets:
// when the font or logo cannot be fetched it degrades to a minimal fallback
// card, so every page always has a preview image.
func (c *Composer) RenderGeneric(ctx context.Context, title, description string) ([]byte, error) {
	boldFace, regularFace, logo, err := c.loadGenericAssets(ctx)
	if err != nil {
		log.Printf("ogimage: generic card falling back to minimal render: %v", err)
		return c.renderFallback(title, description)
	}

	dc := gg.NewContext(CardWidth, CardHeight)

	dc.SetColor(colorPaper)
	dc.Clear()
	drawGrid(dc)
	drawFrame(dc)

	// Logo top-left of the content block.
	y := 80.0
	if logo != nil {
		dc.DrawImage(logo, contentX, int(y))
		y += float64(logo.Bounds().Dy()) + 60
	}

	dc.SetFontFace(boldFace)
	dc.SetColor(colorInk)
	dc.DrawStringWrapped(title, contentX, y, 0, 0, CardWidth-2*contentX, 1.2, gg.AlignLeft)
	y += measureWrappedHeight(dc, title, CardWidth-2*contentX, 1.2) + 36

	dc.SetColor(colorBrand)
	dc.DrawRectangle(contentX, y, dividerWidth, dividerHeight)
	dc.Fill()
	y += dividerHeight + 36

	dc.SetFontFace(regularFace)
	dc.SetColor(colorMuted)
	dc.DrawStringWrapped(description, contentX, y, 0, 0, CardWidth-2*contentX, 1.4, gg.AlignLeft)

	dc.SetColor(colorBrand)
	dc.DrawString(c.tagline, contentX, CardHeight-56)

	return encodePNG(dc.Image())
}

// RenderEvent renders the event card. Unlike the generic variant any asset
// failure is fatal for the request: an event link must never ship a
// half-composed card.
func (c *Composer) RenderEvent(ctx context.Context, event *domain.EventRecord) ([]byte, error) {
	boldBytes, err := c.assets.Load(ctx, AssetFontBold)
	if err != nil {
		return nil, fmt.Errorf("event card: %w", err)
	}
	regularBytes, err := c.assets.Load(ctx, AssetFontRegular)
	if err != nil {
		return nil, fmt.Errorf("event card: %w", err)
	}
	logo, err := c.loadImageAsset(ctx, AssetLogo, logoWidth)
	if err != nil {
		return nil, fmt.Errorf("event card: %w", err)
	}
	iconCalendar, err := c.loadImageAsset(ctx, AssetIconCalendar, 40)
	if err != nil {
		return nil, fmt.Errorf("event card: %w", err)
	}
	iconPin, err := c.loadImageAsset(ctx, AssetIconPin, 40)
	if err != nil {
		return nil, fmt.Errorf("event card: %w", err)
	}
	iconPeople, err := c.loadImageAsset(ctx, AssetIconPeople, 40)
	if err != nil {
		return nil, fmt.Errorf("event card: %w", err)
	}

	// Font tier comes from the pre-truncation length; truncation only
	// affects the rendered text.
	size := titleFontSize(event.Title)
	displayTitle := truncateWithEllipsis(event.Title, titleTruncateLimit)

	titleFace, err := parseFace(boldBytes, size)
	if err != nil {
		return nil, fmt.Errorf("event card: %w", err)
	}
	rowFace, err := parseFace(regularBytes, 34)
	if err != nil {
		return nil, fmt.Errorf("event card: %w", err)
	}
	smallFace, err := parseFace(regularBytes, 26)
	if err != nil {
		return nil, fmt.Errorf("event card: %w", err)
	}

	dc := gg.NewContext(CardWidth, CardHeight)

	dc.SetColor(colorPaper)
	dc.Clear()
	drawGrid(dc)
	drawFrame(dc)

	// Logo top-right, nudged upward to balance the text block.
	dc.DrawImage(logo, CardWidth-logoWidth-70, 54)

	y := 180.0
	dc.SetFontFace(titleFace)
	dc.SetColor(colorInk)
	dc.DrawStringWrapped(displayTitle, contentX, y, 0, 0, CardWidth-2*contentX-logoWidth, 1.15, gg.AlignLeft)
	y += measureWrappedHeight(dc, displayTitle, CardWidth-2*contentX-logoWidth, 1.15) + 48

	dc.SetFontFace(rowFace)
	dc.SetColor(colorMuted)

	y = drawInfoRow(dc, iconCalendar, application.FormatEventDate(event.Date), y)
	y = drawInfoRow(dc, iconPin, truncateWithEllipsis(event.Location, locationTruncateLimit), y)
	if event.ExpectedParticipants > 0 {
		y = drawInfoRow(dc, iconPeople, fmt.Sprintf("%d expected participants", event.ExpectedParticipants), y)
	}

	dc.SetFontFace(smallFace)
	dc.SetColor(colorBrand)
	dc.DrawString(c.orgName+" — "+c.tagline, contentX, CardHeight-52)

	return encodePNG(dc.Image())
}

// renderFallback draws the minimal generic card: flat background, plain
// title and description, no logo or grid. It has no asset dependencies at
// all.
func (c *Composer) renderFallback(title, description string) ([]byte, error) {
	dc := gg.NewContext(CardWidth, CardHeight)

	dc.SetColor(colorBrand)
	dc.Clear()

	dc.SetFontFace(basicfont.Face7x13)
	dc.SetColor(color.White)
	dc.DrawStringWrapped(title, contentX, 220, 0, 0, CardWidth-2*contentX, 1.5, gg.AlignLeft)
	dc.DrawStringWrapped(description, contentX, 300, 0, 0, CardWidth-2*contentX, 1.5, gg.AlignLeft)
	dc.DrawString(c.orgName, contentX, CardHeight-80)

	return encodePNG(dc.Image())
}

func (c *Composer) loadGenericAssets(ctx context.Context) (font.Face, font.Face, image.Image, error) {
	boldBytes, err := c.assets.Load(ctx, AssetFontBold)
	if err != nil {
		return nil, nil, nil, err
	}
	regularBytes, err := c.assets.Load(ctx, AssetFontRegular)
	if err != nil {
		return nil, nil, nil, err
	}
	logo, err := c.loadImageAsset(ctx, AssetLogo, logoWidth)
	if err != nil {
		return nil, nil, nil, err
	}

	// The generic title is a fixed 72px, no dynamic sizing.
	boldFace, err := parseFace(boldBytes, 72)
	if err != nil {
		return nil, nil, nil, err
	}
	regularFace, err := parseFace(regularBytes, 34)
	if err != nil {
		return nil, nil, nil, err
	}
	return boldFace, regularFace, logo, nil
}

// loadImageAsset fetches and decodes an image asset, resized to the given
// width with the aspect ratio preserved.
func (c *Composer) loadImageAsset(ctx context.Context, name string, width int) (image.Image, error) {
	data, err := c.assets.Load(ctx, name)
	if err != nil {
		return nil, err
	}
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding asset %s: %w", name, err)
	}
	return imaging.Resize(img, width, 0, imaging.Lanczos), nil
}

func parseFace(ttf []byte, size float64) (font.Face, error) {
	parsed, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}
	return truetype.NewFace(parsed, &truetype.Options{Size: size}), nil
}

// drawGrid tiles the diagonal-line pattern under the content.
func drawGrid(dc *gg.Context) {
	dc.SetColor(colorGridLine)
	dc.SetLineWidth(2)
	for x := -CardHeight; x < CardWidth+CardHeight; x += gridSpacing {
		dc.DrawLine(float64(x), 0, float64(x+CardHeight), CardHeight)
		dc.DrawLine(float64(x+CardHeight), 0, float64(x), CardHeight)
	}
	dc.Stroke()
}

// drawFrame draws the solid border around the card.
func drawFrame(dc *gg.Context) {
	dc.SetColor(colorBrand)
	dc.SetLineWidth(frameWidth)
	dc.DrawRectangle(frameWidth/2, frameWidth/2, CardWidth-frameWidth, CardHeight-frameWidth)
	dc.Stroke()
}

// drawInfoRow renders an icon-prefixed text row and returns the y position
// of the next row.
func drawInfoRow(dc *gg.Context, icon image.Image, text string, y float64) float64 {
	dc.DrawImage(icon, contentX, int(y))
	dc.DrawString(text, contentX+58, y+32)
	return y + 62
}

// measureWrappedHeight approximates the vertical space a wrapped string
// occupies with the context's current face.
func measureWrappedHeight(dc *gg.Context, s string, width, lineSpacing float64) float64 {
	lines := dc.WordWrap(s, width)
	if len(lines) == 0 {
		return 0
	}
	return float64(len(lines)) * dc.FontHeight() * lineSpacing
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding card: %w", err)
	}
	return buf.Bytes(), nil
}
