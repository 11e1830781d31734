package service

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/lamsa-decor/backend/internal/imaging"
	"github.com/lamsa-decor/backend/internal/storage"
)

// ImageFile is one image selected for upload, read fully into memory by the
// handler before the service runs.
type ImageFile struct {
	Name string
	Data []byte
}

// UploadReport tells the caller how many images made it to storage. A
// partial result degrades the gallery instead of aborting the create, but
// the degradation is reported, not silent.
type UploadReport struct {
	Uploaded int `json:"uploaded"`
	Failed   int `json:"failed"`
}

// uploadImages compresses and uploads images one at a time in submission
// order, returning the public URLs of the successful uploads. Per-file
// failures are logged and skipped.
func uploadImages(ctx context.Context, store storage.Storage, folder string, images []ImageFile) ([]string, UploadReport) {
	urls := make([]string, 0, len(images))
	var report UploadReport

	for _, img := range images {
		res, err := imaging.Compress(img.Data)
		if err != nil {
			slog.Error("image compression failed", "error", err, "file", img.Name)
			report.Failed++
			continue
		}

		key := folder + "/" + uuid.NewString() + res.Ext
		url, err := store.Save(ctx, key, bytes.NewReader(res.Data), int64(len(res.Data)), res.ContentType)
		if err != nil {
			slog.Error("image upload failed", "error", err, "file", img.Name, "key", key)
			report.Failed++
			continue
		}

		urls = append(urls, url)
		report.Uploaded++
	}

	return urls, report
}
