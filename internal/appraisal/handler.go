package appraisal

import (
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"

	"becsus/pkg/handlers"
	"becsus/pkg/routes"
)

// Handler provides the HTTP endpoint for appraisal estimation.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "appraisal"),
	}
}

// Routes returns the route group definition for appraisal endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/appraisal",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Estimate},
		},
	}
}

// flexString accepts either a JSON string or a JSON number.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

type estimateRequest struct {
	Weight      flexString `json:"weight"`
	Material    string     `json:"material"`
	Karat       string     `json:"karat"`
	HasHallmark string     `json:"hasHallmark"`
	Length      flexString `json:"length"`
	Width       flexString `json:"width"`
	Thickness   flexString `json:"thickness"`
	Images      []string   `json:"images"`
}

// Estimate handles POST /appraisal. Missing required fields reject with the
// Hungarian missing-fields message; valid requests always answer 200 with an
// estimate from one of the two paths.
func (h *Handler) Estimate(w http.ResponseWriter, r *http.Request) {
	var body estimateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, ErrEstimateFailed)
		return
	}

	req := Request{
		Weight:    string(body.Weight),
		Material:  ParseMaterial(body.Material),
		Karat:     ParseKarat(body.Karat),
		Hallmark:  Hallmark(body.HasHallmark),
		Length:    string(body.Length),
		Width:     string(body.Width),
		Thickness: string(body.Thickness),
		Images:    decodeImages(body.Images),
	}

	est, err := h.sys.Estimate(r.Context(), req)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, est)
}

// decodeImages converts base64 payloads to raw bytes, skipping any that
// fail to decode.
func decodeImages(images []string) [][]byte {
	if len(images) == 0 {
		return nil
	}

	decoded := make([][]byte, 0, len(images))
	for _, img := range images {
		data, err := base64.StdEncoding.DecodeString(img)
		if err != nil {
			continue
		}
		decoded = append(decoded, data)
	}
	return decoded
}
