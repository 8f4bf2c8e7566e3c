package imagepkg

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/hyf4053/MTG-Arena-Tool/internal/util"
)

// DownloadImage downloads an image from URL and decodes it.
func DownloadImage(url string) (image.Image, error) {
	body, err := util.GetBytes(url)
	if err != nil {
		return nil, err
	}
	img, err := imaging.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", url, err)
	}
	return img, nil
}

// ArtFetcher downloads card art from a URL template where "{id}" is
// replaced with the card id. Downloads are kept in CacheDir when set.
type ArtFetcher struct {
	URLTemplate string
	CacheDir    string
}

func (f *ArtFetcher) Art(cardID int) (image.Image, error) {
	if f.URLTemplate == "" {
		return nil, fmt.Errorf("no art url configured")
	}
	id := strconv.Itoa(cardID)
	if f.CacheDir == "" {
		return DownloadImage(strings.ReplaceAll(f.URLTemplate, "{id}", id))
	}

	path := filepath.Join(f.CacheDir, id+".png")
	if img, err := imaging.Open(path); err == nil {
		return img, nil
	}
	img, err := DownloadImage(strings.ReplaceAll(f.URLTemplate, "{id}", id))
	if err != nil {
		return nil, err
	}
	if err := util.EnsureDir(f.CacheDir); err != nil {
		return img, nil
	}
	if err := imaging.Save(img, path); err != nil {
		os.Remove(path)
	}
	return img, nil
}
