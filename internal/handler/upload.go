package handler

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"agroadvisor/internal/advisor"
)

// maxUploadBytes caps a single uploaded document or photo.
const maxUploadBytes = 10 << 20

var (
	errMissingFile  = errors.New(`multipart field "file" is required`)
	errFileTooLarge = fmt.Errorf("file exceeds %d bytes", maxUploadBytes)
)

var imageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
	"image/bmp":  true,
	"image/gif":  true,
}

// readUpload pulls the "file" part out of a multipart request and checks
// its media type against the route's allowlist before any bytes reach the
// pipeline. allowPDF is true for soil reports only; crop photos must be
// images.
func readUpload(c *gin.Context, allowPDF bool) (mediaType string, data []byte, err error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return "", nil, errMissingFile
	}
	if fh.Size > maxUploadBytes {
		return "", nil, errFileTooLarge
	}

	mediaType = strings.ToLower(strings.TrimSpace(fh.Header.Get("Content-Type")))
	if mt, _, perr := mime.ParseMediaType(mediaType); perr == nil {
		mediaType = mt
	}
	if mediaType == "" || mediaType == "application/octet-stream" {
		mediaType = typeFromExtension(fh.Filename)
	}

	switch {
	case imageTypes[mediaType]:
	case allowPDF && mediaType == "application/pdf":
	default:
		return "", nil, &advisor.UnsupportedInputError{MediaType: mediaType}
	}

	f, err := fh.Open()
	if err != nil {
		return "", nil, err
	}
	defer f.Close()

	data, err = io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil {
		return "", nil, err
	}
	if len(data) > maxUploadBytes {
		return "", nil, errFileTooLarge
	}
	return mediaType, data, nil
}

func typeFromExtension(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return "application/pdf"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	case ".bmp":
		return "image/bmp"
	case ".gif":
		return "image/gif"
	}
	return ""
}

// archiveUpload stores the original bytes for later audit. Best effort:
// a storage failure is logged, not surfaced, so the analysis result is
// never lost to an archival hiccup.
func (h *Handler) archiveUpload(c *gin.Context, userID uuid.UUID, kind, mediaType string, data []byte) {
	key := fmt.Sprintf("%s/%s/%s", kind, userID, uuid.NewString())
	if err := h.store.Put(c.Request.Context(), key, mediaType, data); err != nil {
		h.log.Warn("archive upload failed", zap.String("key", key), zap.Error(err))
	}
}
