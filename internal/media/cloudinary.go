package media

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/noursalon/salon-scheduler/internal/config"
)

const backgroundsFolder = "salon/backgrounds"

// Uploader wraps Cloudinary for background-image storage.
type Uploader struct {
	cld *cloudinary.Cloudinary
}

// New returns nil when no CLOUDINARY_URL is configured; callers treat a nil
// uploader as "media storage unavailable".
func New(cfg *config.Config) (*Uploader, error) {
	if cfg.CloudinaryURL == "" {
		return nil, nil
	}

	cld, err := cloudinary.NewFromURL(cfg.CloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	return &Uploader{cld: cld}, nil
}

func (u *Uploader) UploadBackground(
	ctx context.Context,
	file multipart.File,
) (url string, publicID string, err error) {

	res, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder: backgroundsFolder,
	})
	if err != nil {
		return "", "", fmt.Errorf("cloudinary upload: %w", err)
	}
	return res.SecureURL, res.PublicID, nil
}

func (u *Uploader) Destroy(ctx context.Context, publicID string) error {
	_, err := u.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: publicID,
	})
	return err
}
