package appraisal_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"becsus/internal/appraisal"
)

func setupMux(sys appraisal.System) *http.ServeMux {
	mux := http.NewServeMux()
	group := appraisal.NewHandler(sys, discardLogger()).Routes()
	for _, route := range group.Routes {
		pattern := route.Method + " " + group.Prefix + route.Pattern
		mux.HandleFunc(pattern, route.Handler)
	}
	return mux
}

func postAppraisal(t *testing.T, mux *http.ServeMux, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/appraisal", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	mux.ServeHTTP(rec, req)
	return rec
}

func TestHandlerEstimate(t *testing.T) {
	t.Run("missing hallmark returns 400 with field message", func(t *testing.T) {
		valuer := &stubValuer{err: errors.New("should not be called")}
		mux := setupMux(appraisal.New(valuer, discardLogger()))

		rec := postAppraisal(t, mux, `{"weight":"10"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}

		var body map[string]string
		if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["error"] != "Hiányzó kötelező mezők: súly, fémjelzés" {
			t.Errorf("error = %q, want missing-fields message", body["error"])
		}
		if valuer.calls != 0 {
			t.Errorf("valuer calls = %d, want 0", valuer.calls)
		}
	})

	t.Run("missing weight returns 400", func(t *testing.T) {
		mux := setupMux(appraisal.New(nil, discardLogger()))

		rec := postAppraisal(t, mux, `{"hasHallmark":"igen"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("numeric weight is accepted", func(t *testing.T) {
		mux := setupMux(appraisal.New(nil, discardLogger()))

		rec := postAppraisal(t, mux, `{"weight":10,"material":"arany","karat":"18k","hasHallmark":"igen"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}

		var est appraisal.Estimate
		if err := json.NewDecoder(rec.Body).Decode(&est); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if est.MarketValue != 187500 || est.LowerBound != 159375 {
			t.Errorf("estimate = (%v, %v), want (187500, 159375)", est.MarketValue, est.LowerBound)
		}
	})

	t.Run("failing valuer degrades to fallback response", func(t *testing.T) {
		valuer := &stubValuer{err: errors.New("timeout")}
		mux := setupMux(appraisal.New(valuer, discardLogger()))

		rec := postAppraisal(t, mux, `{"weight":"5","hasHallmark":"nemtudom"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}

		var est appraisal.Estimate
		if err := json.NewDecoder(rec.Body).Decode(&est); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if est.MarketValue != 25000 || est.LowerBound != 21250 {
			t.Errorf("estimate = (%v, %v), want (25000, 21250)", est.MarketValue, est.LowerBound)
		}
		if est.Confidence != "low" {
			t.Errorf("Confidence = %q, want low", est.Confidence)
		}
		if est.Notes == "" {
			t.Error("Notes is empty, want disclosure text")
		}
	})

	t.Run("external estimate is returned unchanged", func(t *testing.T) {
		valuer := &stubValuer{
			est: &appraisal.Estimate{
				MarketValue: 300000,
				LowerBound:  255000,
				Confidence:  "high",
				Source:      appraisal.SourceExternal,
			},
		}
		mux := setupMux(appraisal.New(valuer, discardLogger()))

		rec := postAppraisal(t, mux, `{"weight":"12","material":"platina","hasHallmark":"igen"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}

		var est appraisal.Estimate
		if err := json.NewDecoder(rec.Body).Decode(&est); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if est.MarketValue != 300000 || est.Confidence != "high" {
			t.Errorf("estimate = %+v, want external values", est)
		}
	})

	t.Run("malformed body returns generic 500", func(t *testing.T) {
		mux := setupMux(appraisal.New(nil, discardLogger()))

		rec := postAppraisal(t, mux, `{not json`)

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want 500", rec.Code)
		}

		var body map[string]string
		if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["error"] == "" {
			t.Error("error is empty, want generic message")
		}
	})

	t.Run("invalid base64 images are skipped", func(t *testing.T) {
		var seen appraisal.Request
		valuer := &captureValuer{capture: &seen}
		mux := setupMux(appraisal.New(valuer, discardLogger()))

		rec := postAppraisal(t, mux, `{"weight":"1","hasHallmark":"igen","images":["aGVsbG8=","%%%not-base64%%%"]}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if len(seen.Images) != 1 {
			t.Errorf("images = %d, want 1", len(seen.Images))
		}
	})
}

type captureValuer struct {
	capture *appraisal.Request
}

func (c *captureValuer) Estimate(_ context.Context, req appraisal.Request) (*appraisal.Estimate, error) {
	*c.capture = req
	return &appraisal.Estimate{
		MarketValue: 1000,
		LowerBound:  850,
		Source:      appraisal.SourceExternal,
	}, nil
}
