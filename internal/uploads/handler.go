package uploads

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"becsus/pkg/handlers"
	"becsus/pkg/routes"
)

// Handler provides HTTP endpoints for photo upload operations. All routes
// pass through the admin guard.
type Handler struct {
	sys           System
	logger        *slog.Logger
	guard         func(http.HandlerFunc) http.HandlerFunc
	maxUploadSize int64
}

// NewHandler creates a Handler with the given system, logger, admin guard,
// and per-file upload size limit.
func NewHandler(
	sys System,
	logger *slog.Logger,
	guard func(http.HandlerFunc) http.HandlerFunc,
	maxUploadSize int64,
) *Handler {
	if guard == nil {
		guard = func(next http.HandlerFunc) http.HandlerFunc { return next }
	}
	return &Handler{
		sys:           sys,
		logger:        logger.With("handler", "uploads"),
		guard:         guard,
		maxUploadSize: maxUploadSize,
	}
}

// Routes returns the route group definition for upload endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/uploads",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.guard(h.Upload)},
			{Method: "POST", Pattern: "/delete", Handler: h.guard(h.Delete)},
		},
	}
}

// Upload processes a multipart form with one or more photo files and returns
// their public URLs in submission order.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		handlers.RespondError(w, h.logger, http.StatusRequestEntityTooLarge, ErrFileTooLarge)
		return
	}

	if r.MultipartForm == nil || len(r.MultipartForm.File["files"]) == 0 {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrNoFiles)
		return
	}

	files := make([]File, 0, len(r.MultipartForm.File["files"]))
	for _, header := range r.MultipartForm.File["files"] {
		f, err := header.Open()
		if err != nil {
			handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrNoFiles)
			return
		}

		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrNoFiles)
			return
		}

		files = append(files, File{
			Name:        header.Filename,
			ContentType: detectContentType(header.Header.Get("Content-Type"), data),
			Data:        data,
		})
	}

	urls, err := h.sys.Upload(r.Context(), files)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string][]string{"urls": urls})
}

// Delete removes blobs referenced by a JSON body of public URLs. URLs outside
// managed storage are skipped; the per-URL results report the outcome.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	var body struct {
		URLs []string `json:"urls"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || len(body.URLs) == 0 {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrNoURLs)
		return
	}

	summary := h.sys.Remove(r.Context(), body.URLs)
	handlers.RespondJSON(w, http.StatusOK, summary)
}

func detectContentType(header string, data []byte) string {
	header = strings.TrimSpace(header)
	if header != "" && header != "application/octet-stream" {
		return header
	}
	return http.DetectContentType(data)
}
