package filesystem

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage writes artifacts under Root and serves them from
// BaseURL + "/uploads/". Default backend for development and single-host
// deployments; the web server exposes Root as a static route.
type LocalStorage struct {
	Root    string
	BaseURL string
}

func NewLocalStorage(root string, baseURL string) *LocalStorage {
	return &LocalStorage{
		Root:    root,
		BaseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

func (fs *LocalStorage) Save(ctx context.Context, key string, contentType string, body io.Reader) (string, error) {
	dst := filepath.Join(fs.Root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("failed to create dir for %s: %w", key, err)
	}

	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dst, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, body); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", dst, err)
	}

	return fs.BaseURL + "/uploads/" + key, nil
}

func (fs *LocalStorage) Read(ctx context.Context, key string, out io.Writer) error {
	f, err := os.Open(filepath.Join(fs.Root, filepath.FromSlash(key)))
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", key, err)
	}
	defer f.Close()

	if _, err := io.Copy(out, f); err != nil {
		return fmt.Errorf("failed to read %s: %w", key, err)
	}
	return nil
}
