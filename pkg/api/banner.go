package api

import (
	"fmt"
	"os"
	"path/filepath"

	json "github.com/json-iterator/go"
	"github.com/krownhq/krown-cli/pkg/client"
	"github.com/krownhq/krown-cli/pkg/logger"
)

// ListBanners retrieves all promotional banners
func ListBanners() ([]Banner, error) {
	logger.Debug("Fetching banners")

	resp, err := client.GetClient().
		R().
		Get("/admin/banner/all")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var listResp bannerListResponse
	if err := json.Unmarshal(resp.Body(), &listResp); err != nil {
		return nil, err
	}

	return listResp.Data, nil
}

// UploadBanner uploads a banner image as multipart form data
func UploadBanner(imagePath string) error {
	logger.Debug("Uploading banner", "path", imagePath)

	if _, err := os.Stat(imagePath); err != nil {
		return err
	}

	resp, err := client.GetClient().
		R().
		SetFile("image", imagePath).
		SetFormData(map[string]string{
			"file_name": filepath.Base(imagePath),
		}).
		Post("/admin/banner/upload")

	return CheckResponse(resp, err)
}

// DeleteBanner deletes a banner by image id
func DeleteBanner(imageID string) error {
	logger.Debug("Deleting banner", "image_id", imageID)

	resp, err := client.GetClient().
		R().
		Delete(fmt.Sprintf("/admin/banner/delete/%s", imageID))

	return CheckResponse(resp, err)
}
