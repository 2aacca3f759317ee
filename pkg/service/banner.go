package service

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/krownhq/krown-cli/pkg/api"
	clierrors "github.com/krownhq/krown-cli/pkg/errors"
	"github.com/krownhq/krown-cli/pkg/formatter"
	"github.com/krownhq/krown-cli/pkg/prompter"
)

// BannerService manages the promotional banner carousel
type BannerService struct{}

// NewBannerService creates a new banner service
func NewBannerService() *BannerService {
	return &BannerService{}
}

var bannerExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// List displays all banners
func (bs *BannerService) List() error {
	if _, err := requireAuth(); err != nil {
		return err
	}

	banners, err := api.ListBanners()
	if err != nil {
		formatter.PrintError("%s", api.Message(err, "Failed to fetch banners"))
		return err
	}

	if len(banners) == 0 {
		fmt.Println("No banners uploaded.")
		return nil
	}

	rows := make([][]string, 0, len(banners))
	for _, b := range banners {
		rows = append(rows, []string{b.ImageID, b.ImageURL, b.CreatedAt})
	}
	formatter.PrintTable([]string{"ID", "URL", "Created"}, rows)
	return nil
}

// Upload validates the image file locally and uploads it
func (bs *BannerService) Upload(imagePath string) error {
	ext := strings.ToLower(filepath.Ext(imagePath))
	if !bannerExtensions[ext] {
		err := clierrors.ValidationError("image", "must be a .jpg, .jpeg, .png or .webp file")
		formatter.PrintError("%s", clierrors.FormatError(err))
		return err
	}

	if _, err := requireAuth(); err != nil {
		return err
	}

	formatter.PrintInfo("Uploading %s...", filepath.Base(imagePath))
	if err := api.UploadBanner(imagePath); err != nil {
		formatter.PrintError("%s", api.Message(err, "Failed to upload banner"))
		return err
	}

	formatter.PrintSuccess("✓ Banner uploaded")
	return nil
}

// Delete removes a banner after confirmation
func (bs *BannerService) Delete(imageID string) error {
	if imageID == "" {
		err := clierrors.ValidationError("image id", "is required")
		formatter.PrintError("%s", clierrors.FormatError(err))
		return err
	}

	if _, err := requireAuth(); err != nil {
		return err
	}

	confirm, err := prompter.PromptConfirm("Delete banner " + imageID + "?")
	if err != nil {
		return err
	}
	if !confirm {
		return nil
	}

	if err := api.DeleteBanner(imageID); err != nil {
		formatter.PrintError("%s", api.Message(err, "Failed to delete banner"))
		return err
	}

	formatter.PrintSuccess("✓ Banner deleted")
	return nil
}
