package handlers

import (
	"context"
	"log"
	"mime/multipart"
	"net/http"

	"github.com/freeauto/freeauto-backend/internal/config"
	"github.com/freeauto/freeauto-backend/internal/services"
)

// imageUploader is what UploadImages needs from the storage backend.
type imageUploader interface {
	UploadImageFromHeader(ctx context.Context, fileHeader *multipart.FileHeader) (string, error)
}

var (
	cloudinaryService imageUploader
	maxListingImages  = 5
)

func InitCloudinaryService(cfg *config.Config) error {
	service, err := services.NewCloudinaryService(
		cfg.CloudinaryName,
		cfg.CloudinaryAPIKey,
		cfg.CloudinaryAPISecret,
	)
	if err != nil {
		return err
	}
	cloudinaryService = service
	maxListingImages = cfg.MaxListingImages
	return nil
}

type uploadFailure struct {
	Filename string `json:"filename"`
	Reason   string `json:"reason"`
}

type UploadResponse struct {
	Success  bool            `json:"success"`
	Message  string          `json:"message,omitempty"`
	URLs     []string        `json:"urls"`
	Failures []uploadFailure `json:"failures,omitempty"`
}

// UploadImages accepts up to the configured maximum listing photos in
// one multipart request and uploads them sequentially, in input order.
// Files beyond the maximum are rejected without an upload call; a
// mid-batch failure keeps the URLs uploaded before it and is reported
// per file rather than rolled back.
func UploadImages(w http.ResponseWriter, r *http.Request) {
	if cloudinaryService == nil {
		http.Error(w, "File upload service not available", http.StatusInternalServerError)
		return
	}

	// 25MB for the whole batch
	if err := r.ParseMultipartForm(25 << 20); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	files := r.MultipartForm.File["images"]
	if len(files) == 0 {
		http.Error(w, "No files provided", http.StatusBadRequest)
		return
	}

	urls := []string{}
	var failures []uploadFailure

	for i, header := range files {
		if i >= maxListingImages {
			failures = append(failures, uploadFailure{
				Filename: header.Filename,
				Reason:   "Nombre maximum d'images atteint",
			})
			continue
		}

		contentType := header.Header.Get("Content-Type")
		if !services.AllowedImageTypes[contentType] {
			failures = append(failures, uploadFailure{
				Filename: header.Filename,
				Reason:   "Type de fichier non supporté",
			})
			continue
		}

		url, err := cloudinaryService.UploadImageFromHeader(r.Context(), header)
		if err != nil {
			log.Printf("ERROR: image upload failed for %s: %v", header.Filename, err)
			failures = append(failures, uploadFailure{
				Filename: header.Filename,
				Reason:   "Échec de l'envoi",
			})
			continue
		}
		urls = append(urls, url)
	}

	writeJSON(w, http.StatusOK, UploadResponse{
		Success:  len(urls) > 0,
		URLs:     urls,
		Failures: failures,
	})
}
