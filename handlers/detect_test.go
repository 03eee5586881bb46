package handlers

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropguard-service/config"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{R: 50, G: 180, B: 60, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func multipartBody(t *testing.T, fields map[string]string, fileField, fileName string, fileData []byte) ([]byte, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, fileName)
		require.NoError(t, err)
		_, err = part.Write(fileData)
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	require.NoError(t, writer.Close())
	return buf.Bytes(), writer.FormDataContentType()
}

func TestDetectDiseaseMissingFile(t *testing.T) {
	env := newTestEnv(t, nil, ClassifierResult{})

	body, contentType := multipartBody(t, map[string]string{"email": "a@b.c"}, "", "", nil)
	w, payload := env.request(t, "POST", "/api/detect-disease", body, contentType)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No image file provided", payload["error"])
}

func TestDetectDiseaseRejectsNonImage(t *testing.T) {
	env := newTestEnv(t, nil, ClassifierResult{})

	body, contentType := multipartBody(t, nil, "image", "notes.txt", []byte("just some text"))
	w, payload := env.request(t, "POST", "/api/detect-disease", body, contentType)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Only image files are allowed!", payload["error"])
}

func TestDetectDiseaseRejectsOversizedFile(t *testing.T) {
	cfg := &config.Config{MaxUploadSizeMB: 1, UploadDir: t.TempDir()}
	env := newTestEnv(t, cfg, ClassifierResult{})

	big := bytes.Repeat([]byte{0xab}, 2<<20)
	body, contentType := multipartBody(t, nil, "image", "big.jpg", big)
	w, payload := env.request(t, "POST", "/api/detect-disease", body, contentType)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "File too large. Maximum size is 1MB.", payload["error"])
}

func TestDetectDiseaseHappyPath(t *testing.T) {
	uploadDir := t.TempDir()
	cfg := &config.Config{MaxUploadSizeMB: 5, UploadDir: uploadDir}
	env := newTestEnv(t, cfg, ClassifierResult{
		Disease:    "Tomato Late Blight",
		Confidence: 88,
		Severity:   "high",
	})

	env.mock.ExpectExec("INSERT INTO disease_reports").
		WithArgs(sqlmock.AnyArg(), "Tomato Late Blight", 88.0, "high", "Tomato",
			sql.NullString{String: "farmer@example.com", Valid: true},
			sql.NullString{String: "pune", Valid: true}).
		WillReturnResult(sqlmock.NewResult(1, 1))

	body, contentType := multipartBody(t,
		map[string]string{"email": "farmer@example.com", "location": "pune"},
		"image", "leaf.png", pngBytes(t))
	w, payload := env.request(t, "POST", "/api/detect-disease", body, contentType)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, true, payload["success"])
	assert.Equal(t, "Tomato Late Blight", payload["disease"])
	assert.Equal(t, 88.0, payload["confidence"])
	assert.Equal(t, "high", payload["severity"])
	assert.Equal(t, "Tomato", payload["category"])
	assert.Equal(t, true, payload["recorded"])
	assert.NotContains(t, payload, "warning")

	advice := payload["treatment"].(map[string]interface{})
	assert.Equal(t, "high", advice["severity"])
	assert.Equal(t, "Treat immediately", advice["urgency"])

	// The upload was written to disk under the configured directory.
	imagePath, ok := payload["imagePath"].(string)
	require.True(t, ok)
	assert.Equal(t, uploadDir, filepath.Dir(imagePath))
	_, err := os.Stat(imagePath)
	assert.NoError(t, err)

	assert.NoError(t, env.mock.ExpectationsWereMet())
}

func TestDetectDiseasePartialSuccessWhenStoreFails(t *testing.T) {
	env := newTestEnv(t, nil, ClassifierResult{
		Disease:    "Apple Scab",
		Confidence: 85,
		Severity:   "moderate",
	})

	env.mock.ExpectExec("INSERT INTO disease_reports").
		WillReturnError(fmt.Errorf("connection lost"))

	body, contentType := multipartBody(t, nil, "image", "leaf.png", pngBytes(t))
	w, payload := env.request(t, "POST", "/api/detect-disease", body, contentType)

	// The classification is still returned, but the caller can tell the
	// report was not recorded.
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, payload["success"])
	assert.Equal(t, "Apple Scab", payload["disease"])
	assert.Equal(t, false, payload["recorded"])
	assert.NotEmpty(t, payload["warning"])
}

func TestDetectDiseaseUnknownDiseaseGetsFallbackTreatment(t *testing.T) {
	env := newTestEnv(t, nil, ClassifierResult{
		Disease:    "Tomato Leaf Mold",
		Confidence: 77,
		Severity:   "moderate",
	})

	env.mock.ExpectExec("INSERT INTO disease_reports").
		WillReturnResult(sqlmock.NewResult(2, 1))

	body, contentType := multipartBody(t, nil, "image", "leaf.png", pngBytes(t))
	w, payload := env.request(t, "POST", "/api/detect-disease", body, contentType)

	require.Equal(t, http.StatusOK, w.Code)
	advice := payload["treatment"].(map[string]interface{})
	assert.Equal(t, "unknown", advice["severity"])
	assert.Equal(t, "Monitor closely", advice["urgency"])
}

func TestDetectDiseaseResponseShape(t *testing.T) {
	env := newTestEnv(t, nil, ClassifierResult{
		Disease:    "Grape Healthy",
		Confidence: 91,
		Severity:   "none",
	})

	env.mock.ExpectExec("INSERT INTO disease_reports").
		WillReturnResult(sqlmock.NewResult(3, 1))

	body, contentType := multipartBody(t, nil, "image", "vine.png", pngBytes(t))
	w, _ := env.request(t, "POST", "/api/detect-disease", body, contentType)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Success    bool   `json:"success"`
		Disease    string `json:"disease"`
		Confidence int    `json:"confidence"`
		Severity   string `json:"severity"`
		ImagePath  string `json:"imagePath"`
		Category   string `json:"category"`
		Recorded   bool   `json:"recorded"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Grape", resp.Category)
	assert.Equal(t, 91, resp.Confidence)
	assert.True(t, resp.Recorded)
}
