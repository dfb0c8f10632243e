package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/eventcity-api/apperrors"
	"github.com/google/uuid"
)

const downloadTimeout = 30 * time.Second

// Fetcher downloads raw bytes from a URL with a bounded timeout
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// HTTPFetcher fetches bytes with a plain HTTP client
type HTTPFetcher struct {
	client *http.Client
}

// NewHTTPFetcher creates a fetcher whose requests time out after the given duration
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{client: &http.Client{Timeout: timeout}}
}

// Fetch downloads the body at url, following redirects. Any HTTP error
// status is reported as a failure.
func (f *HTTPFetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid image URL %q: %v", rawURL, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download %q: %v", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("download of %q returned status %d", rawURL, resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

// StorageService sideloads event images into the object storage bucket:
// it downloads the source image and re-uploads it under the configured
// bucket, returning the public URL.
type StorageService struct {
	baseURL string
	key     string
	bucket  string
	fetcher Fetcher
	client  *http.Client
}

// NewStorageService creates a new storage service instance
func NewStorageService(baseURL, key, bucket string, fetcher Fetcher) *StorageService {
	return &StorageService{
		baseURL: strings.TrimRight(baseURL, "/"),
		key:     key,
		bucket:  bucket,
		fetcher: fetcher,
		client:  &http.Client{Timeout: downloadTimeout},
	}
}

// Sideload fetches the image at sourceURL and uploads it to the bucket
// with upsert semantics. A duplicate object in storage is reported as a
// conflict, any other failure aborts with an internal error.
func (s *StorageService) Sideload(sourceURL string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), downloadTimeout)
	defer cancel()

	data, err := s.fetcher.Fetch(ctx, sourceURL)
	if err != nil {
		return "", apperrors.Internal("failed to download image", err)
	}
	if len(data) == 0 {
		return "", apperrors.Internal(fmt.Sprintf("image URL returned no content: %s", sourceURL), nil)
	}

	objectName := objectNameFromURL(sourceURL)
	encodedPath := url.PathEscape(objectName)

	uploadURL := fmt.Sprintf("%s/storage/v1/object/%s/%s?upsert=true", s.baseURL, s.bucket, encodedPath)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, bytes.NewReader(data))
	if err != nil {
		return "", apperrors.Internal("failed to build upload request", err)
	}
	req.Header.Set("apikey", s.key)
	req.Header.Set("Authorization", "Bearer "+s.key)
	req.Header.Set("Content-Type", contentTypeFromFilename(objectName))

	resp, err := s.client.Do(req)
	if err != nil {
		return "", apperrors.Internal("failed to upload image to storage", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		if strings.Contains(string(body), `"error":"Duplicate"`) {
			return "", apperrors.Conflict("event", "photo", "this image is already stored")
		}
		return "", apperrors.Internal(fmt.Sprintf("storage upload returned status %d", resp.StatusCode), nil)
	}

	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, encodedPath), nil
}

// objectNameFromURL reuses the source filename when it carries an
// extension, otherwise synthesizes a unique name.
func objectNameFromURL(sourceURL string) string {
	if u, err := url.Parse(sourceURL); err == nil {
		path := u.Path
		last := path[strings.LastIndex(path, "/")+1:]
		if last != "" && strings.Contains(last, ".") {
			return last
		}
	}
	return fmt.Sprintf("file-%d-%s", time.Now().UnixMilli(), uuid.NewString())
}

func contentTypeFromFilename(filename string) string {
	f := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(f, ".png"):
		return "image/png"
	case strings.HasSuffix(f, ".jpg"), strings.HasSuffix(f, ".jpeg"):
		return "image/jpeg"
	default:
		return "application/octet-stream"
	}
}
