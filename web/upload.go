package web

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// PlaceholderImage is attached to products created with an image file when no
// upload backend is configured.
const PlaceholderImage = "https://via.placeholder.com/800x600.png?text=BAKESHOP"

// Uploader stores a product image and returns its public URI.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader) (string, error)
}

// CloudinaryUploader uploads images through the configured Cloudinary
// account.
type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryUploader builds an uploader from a CLOUDINARY_URL-style URL.
func NewCloudinaryUploader(cloudURL string) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromURL(cloudURL)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	return &CloudinaryUploader{cld: cld}, nil
}

// Upload sends the file to Cloudinary and returns the secure URL.
func (u *CloudinaryUploader) Upload(ctx context.Context, file io.Reader) (string, error) {
	res, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{})
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}
	return res.SecureURL, nil
}
