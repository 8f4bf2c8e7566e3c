package imagepkg

import (
	"image"
	"image/color"
	"log"

	"github.com/disintegration/imaging"
	"github.com/hyf4053/MTG-Arena-Tool/internal/cards"
)

const (
	canvasWidth     = 640
	margin          = 24
	separatorHeight = 28
	tileHeight      = 40
	rowGap          = 4
	pipSize         = 8
	maxPips         = 20
	artWidth        = 260
	qrSize          = 200
)

var (
	background = color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	tileColor  = color.NRGBA{R: 0x2b, G: 0x2b, B: 0x33, A: 0xff}
	pipColor   = color.NRGBA{R: 0xf5, G: 0xf5, B: 0xf5, A: 0xff}

	// one band colour per type rank; anything else uses rankColors[0]
	rankColors = map[int]color.NRGBA{
		0:                   {R: 0x88, G: 0x88, B: 0x88, A: 0xff},
		1:                   {R: 0x3b, G: 0x82, B: 0xf6, A: 0xff},
		2:                   {R: 0x93, G: 0x33, B: 0xea, A: 0xff},
		3:                   {R: 0x06, G: 0xb6, B: 0xd4, A: 0xff},
		4:                   {R: 0xef, G: 0x44, B: 0x44, A: 0xff},
		5:                   {R: 0x6b, G: 0x72, B: 0x80, A: 0xff},
		6:                   {R: 0xf5, G: 0x9e, B: 0x0b, A: 0xff},
		7:                   {R: 0x10, G: 0xb9, B: 0x81, A: 0xff},
		cards.SideboardRank: {R: 0x11, G: 0x11, B: 0x11, A: 0xff},
	}
)

// ArtSource returns the art crop for a card.
type ArtSource interface {
	Art(cardID int) (image.Image, error)
}

type row struct {
	separator bool
	rank      int
	count     int
	cardID    int
	quantity  int
}

// Canvas is a TileSink that composes a deck list picture.
type Canvas struct {
	art  ArtSource
	rows []row
}

// NewCanvas returns a canvas; art may be nil to draw plain tiles.
func NewCanvas(art ArtSource) *Canvas {
	return &Canvas{art: art}
}

func (c *Canvas) Reset() {
	c.rows = c.rows[:0]
}

func (c *Canvas) AddSeparator(rank, count int) {
	c.rows = append(c.rows, row{separator: true, rank: rank, count: count})
}

func (c *Canvas) AddTile(cardID int, _ string, quantity int) {
	c.rows = append(c.rows, row{cardID: cardID, quantity: quantity})
}

// Len reports how many rows have been drawn.
func (c *Canvas) Len() int {
	return len(c.rows)
}

// Render paints the recorded rows top to bottom. A non-nil qr is pasted in
// the top right corner.
func (c *Canvas) Render(qr image.Image) image.Image {
	height := margin * 2
	for _, r := range c.rows {
		if r.separator {
			height += separatorHeight + rowGap
		} else {
			height += tileHeight + rowGap
		}
	}
	width := canvasWidth
	if qr != nil {
		width += qrSize + margin
		height = max(height, qrSize+margin*2)
	}
	canvas := imaging.New(width, height, background)

	y := margin
	inner := canvasWidth - margin*2
	for _, r := range c.rows {
		if r.separator {
			canvas = imaging.Paste(canvas, imaging.New(inner, separatorHeight, bandColor(r.rank)), image.Pt(margin, y))
			canvas = drawPips(canvas, r.count, margin+inner-pipSize-6, y+(separatorHeight-pipSize)/2, -1)
			y += separatorHeight + rowGap
			continue
		}
		canvas = imaging.Paste(canvas, imaging.New(inner, tileHeight, tileColor), image.Pt(margin, y))
		canvas = drawPips(canvas, r.quantity, margin+6, y+(tileHeight-pipSize)/2, 1)
		if art := c.fetchArt(r.cardID); art != nil {
			crop := imaging.Fill(art, artWidth, tileHeight, imaging.Center, imaging.Lanczos)
			canvas = imaging.Paste(canvas, crop, image.Pt(margin+inner-artWidth, y))
		}
		y += tileHeight + rowGap
	}

	if qr != nil {
		q := imaging.Resize(qr, qrSize, qrSize, imaging.NearestNeighbor)
		canvas = imaging.Paste(canvas, q, image.Pt(canvasWidth, margin))
	}
	return canvas
}

func (c *Canvas) fetchArt(cardID int) image.Image {
	if c.art == nil {
		return nil
	}
	img, err := c.art.Art(cardID)
	if err != nil {
		log.Println("art fetch error:", cardID, err)
		return nil
	}
	return img
}

func bandColor(rank int) color.NRGBA {
	if col, ok := rankColors[rank]; ok {
		return col
	}
	return rankColors[0]
}

// drawPips draws n small squares starting at x, stepping in dir.
func drawPips(canvas *image.NRGBA, n, x, y, dir int) *image.NRGBA {
	pip := imaging.New(pipSize, pipSize, pipColor)
	for i := 0; i < n && i < maxPips; i++ {
		canvas = imaging.Paste(canvas, pip, image.Pt(x+dir*i*(pipSize+2), y))
	}
	return canvas
}
