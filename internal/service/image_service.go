package service

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"image"
	_ "image/gif" // Register GIF decoder
	"image/jpeg"
	_ "image/png" // Register PNG decoder
	"os"
	"path/filepath"
	"strings"

	"tastebook/internal/config"
	"tastebook/internal/models"

	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // Register WebP decoder
)

const (
	DefaultMediaDir             = "/tmp/tastebook/media"
	DefaultImageMaxUploadSizeMB = 10
	ImageMaxSize                = 2048
	JPEGQuality                 = 82
	WebPQuality                 = 70
)

// ImageService stores recipe images submitted as base64 data URIs and
// serves them back as /media URLs. Each image is written twice, JPEG as
// the canonical format and WebP alongside it.
type ImageService struct {
	mediaDir           string
	maxUploadSizeBytes int64
}

func NewImageService(cfg *config.Config) *ImageService {
	mediaDir := DefaultMediaDir
	maxUploadSizeMB := DefaultImageMaxUploadSizeMB

	if cfg != nil {
		if cfg.MediaDir != "" {
			mediaDir = cfg.MediaDir
		}
		if cfg.ImageMaxUploadSizeMB > 0 {
			maxUploadSizeMB = cfg.ImageMaxUploadSizeMB
		}
	}

	return &ImageService{
		mediaDir:           mediaDir,
		maxUploadSizeBytes: int64(maxUploadSizeMB) * 1024 * 1024,
	}
}

// MediaDir exposes the configured media root for static serving.
func (s *ImageService) MediaDir() string {
	return s.mediaDir
}

// SaveDataURI decodes a "data:image/...;base64," payload, normalizes it to
// a bounded JPEG plus a WebP sibling on disk, and returns the public URL of
// the JPEG. Content is hashed so re-submitting the same image is a no-op.
func (s *ImageService) SaveDataURI(dataURI string) (string, error) {
	raw, err := s.decodeDataURI(dataURI)
	if err != nil {
		return "", err
	}

	decoded, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", models.NewValidationError("Invalid image file")
	}
	switch strings.ToLower(format) {
	case "jpeg", "jpg", "png", "gif", "webp":
	default:
		return "", models.NewValidationError("Unsupported image format")
	}

	normalized := resizeToFit(decoded, ImageMaxSize, ImageMaxSize)

	jpegBytes, err := encodeJPEG(normalized, JPEGQuality)
	if err != nil {
		return "", models.NewInternalError(err)
	}
	webpBytes, err := encodeWebP(normalized, WebPQuality)
	if err != nil {
		return "", models.NewInternalError(err)
	}

	hash := contentHash(jpegBytes)
	jpegRel := filepath.ToSlash(filepath.Join("recipes", hash+".jpg"))
	webpRel := filepath.ToSlash(filepath.Join("recipes", hash+".webp"))

	if err := writeBytesToFile(filepath.Join(s.mediaDir, jpegRel), jpegBytes); err != nil {
		return "", models.NewInternalError(err)
	}
	if err := writeBytesToFile(filepath.Join(s.mediaDir, webpRel), webpBytes); err != nil {
		_ = os.Remove(filepath.Join(s.mediaDir, jpegRel))
		return "", models.NewInternalError(err)
	}

	return "/media/" + jpegRel, nil
}

func (s *ImageService) decodeDataURI(dataURI string) ([]byte, error) {
	if strings.TrimSpace(dataURI) == "" {
		return nil, models.NewValidationError("Image is required")
	}

	payload := dataURI
	if strings.HasPrefix(dataURI, "data:") {
		mediaType, rest, found := strings.Cut(dataURI[len("data:"):], ",")
		if !found || !strings.HasSuffix(mediaType, ";base64") {
			return nil, models.NewValidationError("Image must be a base64 data URI")
		}
		mediaType = strings.TrimSuffix(mediaType, ";base64")
		if !strings.HasPrefix(mediaType, "image/") {
			return nil, models.NewValidationError("Image must be a base64 data URI")
		}
		payload = rest
	}

	// Base64 inflates by 4/3, so cap the encoded size before decoding.
	if int64(len(payload)) > s.maxUploadSizeBytes*4/3 {
		return nil, models.NewValidationError(fmt.Sprintf("Image too large (max %dMB)", s.maxUploadSizeBytes/(1024*1024)))
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, models.NewValidationError("Invalid base64 image data")
	}
	if len(raw) == 0 {
		return nil, models.NewValidationError("Image is required")
	}
	if int64(len(raw)) > s.maxUploadSizeBytes {
		return nil, models.NewValidationError(fmt.Sprintf("Image too large (max %dMB)", s.maxUploadSizeBytes/(1024*1024)))
	}
	return raw, nil
}

func resizeToFit(src image.Image, maxWidth, maxHeight int) image.Image {
	bounds := src.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	if w <= 0 || h <= 0 {
		return src
	}
	if w <= maxWidth && h <= maxHeight {
		return src
	}

	scaleW := float64(maxWidth) / float64(w)
	scaleH := float64(maxHeight) / float64(h)
	scale := scaleW
	if scaleH < scale {
		scale = scaleH
	}
	newW := int(float64(w) * scale)
	newH := int(float64(h) * scale)
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, xdraw.Over, nil)
	return dst
}

func encodeJPEG(img image.Image, quality int) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeWebP(img image.Image, quality int) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := webp.Encode(buf, img, &webp.Options{Quality: float32(quality)}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func contentHash(content []byte) string {
	h := sha256.Sum256(content)
	return hex.EncodeToString(h[:])
}

func writeBytesToFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
