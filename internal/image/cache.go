package imagepkg

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/youruser/gradslides/internal/util"
)

// PhotoCache keeps resized student photos on disk, keyed by the source
// file's base name. Cached files are never invalidated.
type PhotoCache struct {
	Dir    string
	Height int
}

func NewPhotoCache(dir string, height int) *PhotoCache {
	return &PhotoCache{Dir: dir, Height: height}
}

// Load returns the resized photo for src, creating the cache entry on a miss.
func (c *PhotoCache) Load(src string) (image.Image, error) {
	if err := util.EnsureDir(c.Dir); err != nil {
		return nil, fmt.Errorf("photo cache: %w", err)
	}

	cached := filepath.Join(c.Dir, filepath.Base(src))
	if util.FileExists(cached) {
		img, err := imaging.Open(cached)
		if err != nil {
			return nil, fmt.Errorf("open cached photo %s: %w", cached, err)
		}
		return img, nil
	}

	img, err := imaging.Open(src, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("open photo %s: %w", src, err)
	}
	ratio := float64(c.Height) / float64(img.Bounds().Dy())
	w := int(float64(img.Bounds().Dx()) * ratio)
	if w < 1 {
		w = 1
	}
	resized := imaging.Resize(img, w, c.Height, imaging.Lanczos)
	if err := c.store(resized, cached); err != nil {
		return nil, fmt.Errorf("save cached photo %s: %w", cached, err)
	}
	return resized, nil
}

// store writes img to a temporary file in the cache directory and renames
// it into place, so a cache entry is either complete or absent.
func (c *PhotoCache) store(img image.Image, path string) error {
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(c.Dir, ".tmp-*"+filepath.Ext(path))
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := imaging.Encode(tmp, img, format); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
