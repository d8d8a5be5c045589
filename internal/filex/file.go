// Package filex holds filesystem helpers used by the client: preparing the
// directory of the local database and loading image attachments from disk.
package filex

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/farmsync/internal/common"
)

var ErrAttachmentTooLarge = errors.New("attachment too large")

// EnsureParentDir creates the directory that will contain path.
func EnsureParentDir(path string) (string, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return dir, nil
}

// ReadAttachment loads a file and sniffs its content type.
func ReadAttachment(path string) (data []byte, contentType string, err error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, "", fmt.Errorf("stat %s: %w", path, err)
	}
	if fi.IsDir() {
		return nil, "", fmt.Errorf("%s is a directory", path)
	}
	if fi.Size() > common.MaxAttachmentSize {
		return nil, "", fmt.Errorf("%w: %d bytes", ErrAttachmentTooLarge, fi.Size())
	}

	data, err = os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", path, err)
	}
	return data, http.DetectContentType(data), nil
}
