package handler

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/ayonpaul8906/trustbridge-new/internal/service"
	"github.com/ayonpaul8906/trustbridge-new/pkg/response"
)

const maxUploadMemory = 32 << 20 // 32 MiB

type VerificationHandler struct {
	service *service.VerificationService
}

func NewVerificationHandler(service *service.VerificationService) *VerificationHandler {
	return &VerificationHandler{service: service}
}

func readUploads(headers []*multipart.FileHeader) ([]service.UploadedFile, error) {
	files := make([]service.UploadedFile, 0, len(headers))
	for _, header := range headers {
		f, err := header.Open()
		if err != nil {
			return nil, err
		}

		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, err
		}

		files = append(files, service.UploadedFile{
			Name:     header.Filename,
			MimeType: header.Header.Get("Content-Type"),
			Bytes:    data,
		})
	}
	return files, nil
}

func readSingleUpload(r *http.Request, field string) ([]byte, error) {
	f, _, err := r.FormFile(field)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// VerifyIdentity handles POST /vision/first-trustscore
func (h *VerificationHandler) VerifyIdentity(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		response.BadRequest(w, "Invalid multipart form", err)
		return
	}

	uid := r.FormValue("uid")
	if uid == "" {
		response.BadRequest(w, "User ID required", nil)
		return
	}

	phone := r.FormValue("phone")
	if phone == "" {
		response.BadRequest(w, "Phone number required", nil)
		return
	}

	headers := r.MultipartForm.File["document"]
	if len(headers) == 0 {
		response.BadRequest(w, "No file uploaded", nil)
		return
	}

	files, err := readUploads(headers)
	if err != nil {
		response.BadRequest(w, "Failed to read uploaded files", err)
		return
	}

	result, err := h.service.VerifyIdentity(r.Context(), uid, phone, files)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, result)
}

// VerifyFinancial handles POST /vision/financial-trustscore
func (h *VerificationHandler) VerifyFinancial(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		response.BadRequest(w, "Invalid multipart form", err)
		return
	}

	uid := r.FormValue("uid")
	if uid == "" {
		response.BadRequest(w, "User ID required", nil)
		return
	}

	headers := r.MultipartForm.File["document"]
	if len(headers) == 0 {
		response.BadRequest(w, "No file uploaded", nil)
		return
	}

	files, err := readUploads(headers)
	if err != nil {
		response.BadRequest(w, "Failed to read uploaded files", err)
		return
	}

	result, err := h.service.VerifyFinancial(r.Context(), uid, files)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, result)
}

// VerifyFace handles POST /face/verify
func (h *VerificationHandler) VerifyFace(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		response.BadRequest(w, "Invalid multipart form", err)
		return
	}

	uid := r.FormValue("uid")
	if uid == "" {
		response.BadRequest(w, "live_image, doc_image, and uid are required", nil)
		return
	}

	liveImage, err := readSingleUpload(r, "live_image")
	if err != nil {
		response.BadRequest(w, "live_image, doc_image, and uid are required", err)
		return
	}

	docImage, err := readSingleUpload(r, "doc_image")
	if err != nil {
		response.BadRequest(w, "live_image, doc_image, and uid are required", err)
		return
	}

	verdict, err := h.service.VerifyFace(r.Context(), uid, liveImage, docImage)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, verdict)
}
