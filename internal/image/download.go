package imagepkg

import (
	"bytes"
	"context"
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/youruser/gradslides/internal/util"
)

// LoadImage opens src as a local file, or downloads it when src is an
// http(s) URL.
func LoadImage(ctx context.Context, src string) (image.Image, error) {
	if !util.IsURL(src) {
		img, err := imaging.Open(src)
		if err != nil {
			return nil, fmt.Errorf("open image %s: %w", src, err)
		}
		return img, nil
	}
	body, err := util.GetBytes(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("download image: %w", err)
	}
	img, err := imaging.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", src, err)
	}
	return img, nil
}
