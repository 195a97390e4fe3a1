package uszipcode

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

const releaseURL = "https://github.com/MacHu-GWU/uszipcode-project/releases/download/1.0.1.db/"

// dbFileName returns the dataset file name of a variant.
func dbFileName(v Variant) string {
	if v == ComprehensiveDataset {
		return "comprehensive_db.sqlite"
	}
	return "simple_db.sqlite"
}

// DefaultDBFilePath returns ~/.uszipcode/<variant>_db.sqlite.
func DefaultDBFilePath(v Variant) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home dir: %w", err)
	}
	return filepath.Join(home, ".uszipcode", dbFileName(v)), nil
}

// DefaultDownloadURL returns the release URL of a variant's dataset file.
func DefaultDownloadURL(v Variant) string {
	return releaseURL + dbFileName(v)
}

// httpClient downloads dataset files. The comprehensive file is several
// hundred megabytes.
var httpClient = &http.Client{
	Timeout: 30 * time.Minute,
}

// ensureDBFile downloads the dataset to path unless a non-empty file is
// already there.
func ensureDBFile(path, url string, logger *slog.Logger) error {
	if fi, err := os.Stat(path); err == nil && fi.Size() > 0 {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	logger.Info("dataset.download", "url", url, "path", path)
	start := time.Now()
	if err := downloadFile(url, path); err != nil {
		return fmt.Errorf("downloading dataset: %w", err)
	}
	logger.Info("dataset.downloaded", "path", path, "elapsed", time.Since(start))
	return nil
}

func downloadFile(url, path string) error {
	resp, err := httpClient.Get(url)
	if err != nil {
		return fmt.Errorf("HTTP GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP GET %s: status %d", url, resp.StatusCode)
	}

	// Write next to the target and rename, so an interrupted download never
	// leaves a truncated database at path.
	tmp := path + ".part"
	out, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("creating file %s: %w", tmp, err)
	}
	success := false
	defer func() {
		out.Close()
		if !success {
			os.Remove(tmp)
		}
	}()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("writing file %s: %w", tmp, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing file %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("moving %s into place: %w", tmp, err)
	}
	success = true
	return nil
}
