package main

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hyf4053/MTG-Arena-Tool/internal/api"
	"github.com/hyf4053/MTG-Arena-Tool/internal/cards"
	"github.com/hyf4053/MTG-Arena-Tool/internal/config"
	imagepkg "github.com/hyf4053/MTG-Arena-Tool/internal/image"
	"github.com/hyf4053/MTG-Arena-Tool/internal/sets"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Release {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := cards.LoadDatabase(cfg.DataDir)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("loaded %d cards from %s", db.Len(), cfg.DataDir)

	// Sets are best-effort: without them arena codes are derived from names.
	reg, err := sets.LoadRegistry(cfg.SetsFile)
	if err != nil {
		log.Println("Warning: failed to load sets:", err)
	}

	var art imagepkg.ArtSource
	if cfg.ArtURL != "" {
		art = &imagepkg.ArtFetcher{URLTemplate: cfg.ArtURL, CacheDir: cfg.ArtCacheDir}
	}

	r := gin.Default()
	api.NewServer(db, reg, art).RegisterRoutes(r)

	log.Println("starting server on http://localhost:" + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
