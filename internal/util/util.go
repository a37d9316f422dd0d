// Package util holds small string helpers shared by the usecases.
package util

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonAlphanumeric   = regexp.MustCompile(`[^a-z0-9]+`)
	unsafeFilenameRun = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)
)

// Slugify converts a title to a URL-safe slug: lower case, diacritics removed,
// every run of non-alphanumeric characters collapsed into a single hyphen and
// no hyphen at either end. Slugify is idempotent.
func Slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		result = s
	}

	result = strings.ToLower(result)
	result = nonAlphanumeric.ReplaceAllString(result, "-")

	return strings.Trim(result, "-")
}

// IsValidSlug reports whether s is already in slug form.
func IsValidSlug(s string) bool {
	return s != "" && Slugify(s) == s
}

// SanitizeFilename keeps the base name of an uploaded file and replaces
// characters that are unsafe in object keys.
func SanitizeFilename(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "." || base == "/" {
		return "file"
	}

	ext := strings.ToLower(filepath.Ext(base))
	stem := Slugify(strings.TrimSuffix(base, filepath.Ext(base)))
	if stem == "" {
		stem = "file"
	}
	ext = unsafeFilenameRun.ReplaceAllString(ext, "")
	if ext == "." {
		ext = ""
	}

	return stem + ext
}

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}
