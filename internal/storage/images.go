// Package storage keeps listing images on local disk and maps them to
// public URLs served from the /storage route.
package storage

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const maxImageSize = 5 * 1024 * 1024

// UploadResult reports the outcome for a single file. Multi-file uploads
// are best-effort: each file succeeds or fails on its own and the caller
// decides what to do with the successful subset.
type UploadResult struct {
	Success  bool   `json:"success"`
	URL      string `json:"url,omitempty"`
	Path     string `json:"path,omitempty"`
	FileName string `json:"file_name"`
	Error    string `json:"error,omitempty"`
}

type ImageStore struct {
	baseDir   string
	publicURL string
	logger    *logrus.Logger
}

func NewImageStore(baseDir, publicURL string, logger *logrus.Logger) *ImageStore {
	return &ImageStore{
		baseDir:   baseDir,
		publicURL: strings.TrimRight(publicURL, "/"),
		logger:    logger,
	}
}

// BaseDir returns the directory images are written under.
func (s *ImageStore) BaseDir() string {
	return s.baseDir
}

// Upload stores one image under a generated name and returns its public
// URL. Non-image content types and files over 5MB are rejected.
func (s *ImageStore) Upload(fileName, contentType string, size int64, content io.Reader) UploadResult {
	if !strings.HasPrefix(contentType, "image/") {
		return UploadResult{FileName: fileName, Error: "arquivo não é uma imagem válida"}
	}
	if size > maxImageSize {
		return UploadResult{FileName: fileName, Error: "imagem muito grande. Máximo 5MB"}
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	storedPath := path.Join("properties", uuid.NewString()+ext)

	fullPath := filepath.Join(s.baseDir, filepath.FromSlash(storedPath))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		s.logger.WithError(err).Error("Failed to create image directory")
		return UploadResult{FileName: fileName, Error: "erro interno no upload"}
	}

	out, err := os.Create(fullPath)
	if err != nil {
		s.logger.WithError(err).Error("Failed to create image file")
		return UploadResult{FileName: fileName, Error: "erro interno no upload"}
	}
	defer out.Close()

	if _, err := io.Copy(out, io.LimitReader(content, maxImageSize)); err != nil {
		s.logger.WithError(err).Error("Failed to write image file")
		os.Remove(fullPath)
		return UploadResult{FileName: fileName, Error: "erro interno no upload"}
	}

	return UploadResult{
		Success:  true,
		URL:      s.PublicURL(storedPath),
		Path:     storedPath,
		FileName: fileName,
	}
}

// PublicURL maps a stored path to the URL it is served from.
func (s *ImageStore) PublicURL(storedPath string) string {
	return s.publicURL + "/storage/" + storedPath
}

// Remove deletes the given stored paths, collecting one error per path
// that could not be removed. Missing files are not errors. Paths that
// resolve outside the base directory are rejected, never deleted.
func (s *ImageStore) Remove(paths []string) []error {
	var errs []error
	for _, p := range paths {
		local := filepath.FromSlash(p)
		if !filepath.IsLocal(local) {
			s.logger.WithField("path", p).Warn("Rejected image path outside storage directory")
			errs = append(errs, fmt.Errorf("invalid path %s", p))
			continue
		}
		fullPath := filepath.Join(s.baseDir, local)
		if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
			s.logger.WithError(err).WithField("path", p).Error("Failed to remove image")
			errs = append(errs, fmt.Errorf("failed to remove %s: %w", p, err))
		}
	}
	return errs
}
