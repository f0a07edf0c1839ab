package services

import "github.com/nexora-labs/website-backend/storage"

// populateFileURL resolves a storage key into the public URL exposed to
// clients, leaving dst nil when there is nothing to resolve.
func populateFileURL(dst **string, key string, uploader storage.FileUploader) {
	if key == "" || uploader == nil {
		return
	}
	if url := uploader.GetPublicURL(key); url != "" {
		*dst = &url
	}
}
