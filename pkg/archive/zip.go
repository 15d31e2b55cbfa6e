// Package archive packages a local source tree into a zip for deployment
// uploads.
package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// excludedDirs are skipped wholesale during the walk.
var excludedDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
	".svn":         true,
	".hg":          true,
	"dist":         true,
	"build":        true,
	"out":          true,
	".next":        true,
	".nuxt":        true,
	".cache":       true,
	"coverage":     true,
	"__pycache__":  true,
	".vercel":      true,
	".turbo":       true,
}

// excludedFilePatterns are matched against base names.
var excludedFilePatterns = []string{
	"*.log",
	".DS_Store",
	".env",
	".env.*",
	"npm-debug.log*",
	"yarn-error.log*",
}

// ZipDirectory walks root once and streams every kept file into an in-memory
// zip archive. Entry names are slash-separated paths relative to root. The
// first error encountered aborts the walk.
func ZipDirectory(root string) ([]byte, error) {
	if !filepath.IsAbs(root) {
		return nil, fmt.Errorf("source directory must be an absolute path, got %q", root)
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read source directory %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source path %s is not a directory", root)
	}

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		name := d.Name()
		if d.IsDir() {
			if path != root && excludedDirs[name] {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if excludedFile(name) {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		defer f.Close()

		entry, err := w.Create(filepath.ToSlash(rel))
		if err != nil {
			return err
		}
		_, err = io.Copy(entry, f)
		return err
	})
	if err != nil {
		w.Close()
		return nil, err
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize archive: %w", err)
	}
	return buf.Bytes(), nil
}

func excludedFile(name string) bool {
	for _, pattern := range excludedFilePatterns {
		if ok, _ := filepath.Match(pattern, name); ok {
			return true
		}
	}
	return strings.HasPrefix(name, ".env.")
}
