package api

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hyf4053/MTG-Arena-Tool/internal/cards"
	"github.com/hyf4053/MTG-Arena-Tool/internal/deck"
	imagepkg "github.com/hyf4053/MTG-Arena-Tool/internal/image"
	"github.com/hyf4053/MTG-Arena-Tool/internal/wildcards"
)

// health
func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "cards": s.cards.Len(), "sets": s.sets.Len()})
}

// errorStatus maps lookup failures to 400 and anything else to 500.
func errorStatus(err error) int {
	if errors.Is(err, cards.ErrUnknownCard) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func fail(c *gin.Context, err error) {
	c.JSON(errorStatus(err), gin.H{"error": err.Error()})
}

func boolQuery(c *gin.Context, key string, def bool) bool {
	v, err := strconv.ParseBool(c.DefaultQuery(key, strconv.FormatBool(def)))
	if err != nil {
		return def
	}
	return v
}

// bindDeck reads a deck record from the request body.
func (s *Server) bindDeck(c *gin.Context) (*deck.Deck, bool) {
	var rec deck.Record
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return deck.New(rec, nil, nil, s.cards), true
}

func (s *Server) filterHandler(c *gin.Context) {
	var opt cards.FilterOptions
	if err := c.ShouldBindJSON(&opt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out := cards.Filter(s.cards.All(), opt)
	c.JSON(http.StatusOK, gin.H{"count": len(out), "cards": out})
}

// exportHandler returns the deck as text; format is "txt" (default) or "arena".
func (s *Server) exportHandler(c *gin.Context) {
	d, ok := s.bindDeck(c)
	if !ok {
		return
	}
	var (
		out string
		err error
	)
	switch format := c.DefaultQuery("format", "txt"); format {
	case "txt":
		out, err = d.ExportTxt()
	case "arena":
		out, err = d.ExportArena(s.sets)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown format " + strconv.Quote(format)})
		return
	}
	if err != nil {
		fail(c, err)
		return
	}
	c.String(http.StatusOK, out)
}

func (s *Server) colorsHandler(c *gin.Context) {
	d, ok := s.bindDeck(c)
	if !ok {
		return
	}
	p, err := d.GetColors(boolQuery(c, "main", true), boolQuery(c, "side", false))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"colors": p.Get()})
}

// wildcardsHandler reports the wildcards needed to build a deck from the
// given collection (card id -> owned copies).
func (s *Server) wildcardsHandler(c *gin.Context) {
	var req struct {
		Deck       deck.Record `json:"deck"`
		Collection map[int]int `json:"collection"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	d := deck.New(req.Deck, nil, nil, s.cards)
	col := wildcards.NewCollection(s.cards, req.Collection)
	missing, err := d.MissingWildcards(col, boolQuery(c, "main", true), boolQuery(c, "side", true))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"missing": missing, "total": missing.Total()})
}

func (s *Server) layoutHandler(c *gin.Context) {
	d, ok := s.bindDeck(c)
	if !ok {
		return
	}
	var l deck.Layout
	if err := d.Draw(&l); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

// qr endpoint returns a PNG of a QR for "text" query param
func (s *Server) qrHandler(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		text = "deck:example"
	}
	size := 400
	if v, err := strconv.Atoi(c.Query("size")); err == nil {
		size = v
	}
	b, err := imagepkg.GenerateQRPNG(text, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

// deckImageHandler draws the deck list as a PNG. With qr=true the Arena
// export is embedded as a QR code.
func (s *Server) deckImageHandler(c *gin.Context) {
	d, ok := s.bindDeck(c)
	if !ok {
		return
	}
	canvas := imagepkg.NewCanvas(s.art)
	if err := d.Draw(canvas); err != nil {
		fail(c, err)
		return
	}

	var qrImg image.Image
	if boolQuery(c, "qr", false) {
		txt, err := d.ExportArena(s.sets)
		if err != nil {
			fail(c, err)
			return
		}
		if q, err := imagepkg.GenerateQRImage(txt, 400); err == nil {
			qrImg = q
		} else {
			log.Println("qr error:", err)
		}
	}

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, canvas.Render(qrImg)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}
