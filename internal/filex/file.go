// Package filex holds small filesystem helpers for the CLI: turning local
// image files into the inline data URIs the profile record stores.
package filex

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var mimeByExt = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// ImageDataURI reads the file at path and returns it as a base64 data URI
// suitable for the profile's avatar and background fields. The media type is
// derived from the file extension; unknown extensions are rejected.
func ImageDataURI(path string) (string, error) {
	mime, ok := mimeByExt[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return "", fmt.Errorf("unsupported image type: %s", filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
