package productcontroller

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yusifu-m-barrie/buy-ya/config"
	"github.com/yusifu-m-barrie/buy-ya/models"
)

const maxProductImages = 3

var unsafeFilenameChars = regexp.MustCompile(`[^\w\d\-_\.]`)

// saveProductImages stores up to maxProductImages uploaded files under the
// uploads dir and returns image rows with their public URLs.
func saveProductImages(c *gin.Context, files []*multipart.FileHeader) ([]models.ProductImage, error) {
	uploadDir := config.GetEnv("UPLOAD_DIR", "./uploads/products")
	publicBaseURL := config.GetEnv("PUBLIC_BASE_URL", "")

	if len(files) > maxProductImages {
		files = files[:maxProductImages]
	}
	if err := os.MkdirAll(uploadDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create upload folder: %w", err)
	}

	images := make([]models.ProductImage, 0, len(files))
	for i, file := range files {
		cleanName := unsafeFilenameChars.ReplaceAllString(file.Filename, "_")
		filename := fmt.Sprintf("%d_%s", time.Now().UnixNano(), cleanName)

		savePath := filepath.Join(uploadDir, filename)
		if err := c.SaveUploadedFile(file, savePath); err != nil {
			return nil, fmt.Errorf("failed to save file: %w", err)
		}

		images = append(images, models.ProductImage{
			URL:      fmt.Sprintf("%s/uploads/products/%s", publicBaseURL, filename),
			Position: i,
		})
	}
	return images, nil
}
