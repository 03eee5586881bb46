package handlers

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
	"github.com/rwcarlsen/goexif/exif"
	_ "golang.org/x/image/webp"

	"cropguard-service/metrics"
	"cropguard-service/models"
	"cropguard-service/treatment"
)

const bytesPerMB = 1 << 20

// DetectDisease runs the ingestion pipeline: accept one image upload,
// classify it, look up treatment advice, persist the report and respond.
// A failed insert does not abort the response; the caller gets the
// classification with recorded=false instead.
func (h *CropGuardHandler) DetectDisease(c *gin.Context) {
	maxSize := int64(h.config.MaxUploadSizeMB) * bytesPerMB

	file, err := c.FormFile("image")
	if err != nil {
		metrics.UploadRejectedTotal.WithLabelValues("missing").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image file provided"})
		return
	}
	if file.Size > maxSize {
		metrics.UploadRejectedTotal.WithLabelValues("too_large").Inc()
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("File too large. Maximum size is %dMB.", h.config.MaxUploadSizeMB),
		})
		return
	}

	src, err := file.Open()
	if err != nil {
		log.Errorf("Failed to open uploaded file: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxSize+1))
	if err != nil {
		log.Errorf("Failed to read uploaded file: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if int64(len(data)) > maxSize {
		metrics.UploadRejectedTotal.WithLabelValues("too_large").Inc()
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("File too large. Maximum size is %dMB.", h.config.MaxUploadSizeMB),
		})
		return
	}

	format, err := validateImage(data)
	if err != nil {
		metrics.UploadRejectedTotal.WithLabelValues("not_image").Inc()
		log.Warnf("Rejected non-image upload %q: %v", file.Filename, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only image files are allowed!"})
		return
	}
	if format == "jpeg" {
		logExifCaptureTime(file.Filename, data)
	}

	imagePath, err := h.storeUpload(file.Filename, data)
	if err != nil {
		log.Errorf("Failed to store upload: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	result := h.classifier.Classify()
	advice := treatment.Lookup(result.Disease)
	category := diseaseCategory(result.Disease)

	report := &models.DiseaseReport{
		ImagePath:         imagePath,
		DiseasePrediction: result.Disease,
		Confidence:        float64(result.Confidence),
		Severity:          result.Severity,
		Category:          category,
		UserEmail:         c.PostForm("email"),
		Location:          c.PostForm("location"),
	}

	recorded := true
	if err := h.reports.SaveReport(c.Request.Context(), report); err != nil {
		log.Errorf("Failed to save disease report: %v", err)
		metrics.DetectionsNotRecorded.Inc()
		recorded = false
	}
	metrics.DetectionsTotal.WithLabelValues(result.Disease, result.Severity).Inc()

	resp := gin.H{
		"success":    true,
		"disease":    result.Disease,
		"confidence": result.Confidence,
		"severity":   result.Severity,
		"treatment":  advice,
		"imagePath":  imagePath,
		"category":   category,
		"recorded":   recorded,
	}
	if !recorded {
		resp["warning"] = "Detection completed but the report could not be recorded"
	}
	c.JSON(http.StatusOK, resp)
}

// validateImage decodes the image header, accepting jpeg, png, gif and webp.
func validateImage(data []byte) (string, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decoding image header: %w", err)
	}
	return format, nil
}

// logExifCaptureTime logs the camera capture time of a JPEG upload when EXIF
// data is present. Purely informational.
func logExifCaptureTime(filename string, data []byte) {
	x, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return
	}
	if taken, err := x.DateTime(); err == nil {
		log.Infof("Upload %q was captured at %s", filename, taken.Format(time.RFC3339))
	}
}

func (h *CropGuardHandler) storeUpload(filename string, data []byte) (string, error) {
	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(filename))
	path := filepath.Join(h.config.UploadDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing upload to %s: %w", path, err)
	}
	return path, nil
}

// diseaseCategory extracts the crop family, the first word of the prediction.
func diseaseCategory(disease string) string {
	fields := strings.Fields(disease)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
