package api

import (
	"github.com/gin-gonic/gin"
	"github.com/hyf4053/MTG-Arena-Tool/internal/cards"
	imagepkg "github.com/hyf4053/MTG-Arena-Tool/internal/image"
	"github.com/hyf4053/MTG-Arena-Tool/internal/sets"
)

// Server holds the lookups every handler shares.
type Server struct {
	cards *cards.MemoryDatabase
	sets  *sets.Registry
	art   imagepkg.ArtSource
}

// NewServer wires the handlers; reg and art may be nil.
func NewServer(db *cards.MemoryDatabase, reg *sets.Registry, art imagepkg.ArtSource) *Server {
	return &Server{cards: db, sets: reg, art: art}
}

func (s *Server) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/health", s.health)
		api.POST("/filter", s.filterHandler)
		api.GET("/qr", s.qrHandler)

		d := api.Group("/deck")
		d.POST("/export", s.exportHandler)
		d.POST("/colors", s.colorsHandler)
		d.POST("/wildcards", s.wildcardsHandler)
		d.POST("/layout", s.layoutHandler)
		d.POST("/image", s.deckImageHandler)
	}
}
