package appraisal_test

import (
	"testing"

	"becsus/internal/appraisal"
)

func TestFallback(t *testing.T) {
	tests := []struct {
		name            string
		req             appraisal.Request
		wantMarketValue float64
		wantLowerBound  float64
	}{
		{
			name: "18k gold",
			req: appraisal.Request{
				Weight:   "10",
				Material: appraisal.MaterialGold,
				Karat:    appraisal.Karat18,
				Hallmark: appraisal.HallmarkYes,
			},
			wantMarketValue: 187500,
			wantLowerBound:  159375,
		},
		{
			name: "material absent uses other bucket",
			req: appraisal.Request{
				Weight:   "5",
				Hallmark: appraisal.HallmarkUnknown,
			},
			wantMarketValue: 25000,
			wantLowerBound:  21250,
		},
		{
			name: "silver ignores karat",
			req: appraisal.Request{
				Weight:   "100",
				Material: appraisal.MaterialSilver,
				Karat:    appraisal.Karat18,
				Hallmark: appraisal.HallmarkNo,
			},
			wantMarketValue: 35000,
			wantLowerBound:  29750,
		},
		{
			name: "white gold 14k",
			req: appraisal.Request{
				Weight:   "2",
				Material: appraisal.MaterialWhiteGold,
				Karat:    appraisal.Karat14,
				Hallmark: appraisal.HallmarkYes,
			},
			wantMarketValue: 27984, // 2 * 24000 * 0.583 = 27984
			wantLowerBound:  23786, // round(27984 * 0.85)
		},
		{
			name: "unknown karat leaves gold price unmodified",
			req: appraisal.Request{
				Weight:   "1",
				Material: appraisal.MaterialGold,
				Karat:    appraisal.KaratUnknown,
				Hallmark: appraisal.HallmarkYes,
			},
			wantMarketValue: 25000,
			wantLowerBound:  21250,
		},
		{
			name: "unparsable weight computes as zero",
			req: appraisal.Request{
				Weight:   "not-a-number",
				Material: appraisal.MaterialPlatinum,
				Hallmark: appraisal.HallmarkYes,
			},
			wantMarketValue: 0,
			wantLowerBound:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			est := appraisal.Fallback(tt.req)

			if est.MarketValue != tt.wantMarketValue {
				t.Errorf("MarketValue = %v, want %v", est.MarketValue, tt.wantMarketValue)
			}
			if est.LowerBound != tt.wantLowerBound {
				t.Errorf("LowerBound = %v, want %v", est.LowerBound, tt.wantLowerBound)
			}
			if est.Confidence != "low" {
				t.Errorf("Confidence = %q, want low", est.Confidence)
			}
			if est.Notes == "" {
				t.Error("Notes is empty, want fixed disclosure text")
			}
			if est.Source != appraisal.SourceFallback {
				t.Errorf("Source = %q, want fallback", est.Source)
			}
		})
	}
}

func TestFallbackKaratMonotonicity(t *testing.T) {
	karats := []appraisal.Karat{appraisal.Karat10, appraisal.Karat14, appraisal.Karat18}

	var prev float64
	for _, k := range karats {
		est := appraisal.Fallback(appraisal.Request{
			Weight:   "10",
			Material: appraisal.MaterialGold,
			Karat:    k,
			Hallmark: appraisal.HallmarkYes,
		})

		if est.MarketValue <= prev {
			t.Errorf("MarketValue for %s = %v, want > %v", k, est.MarketValue, prev)
		}
		prev = est.MarketValue
	}
}

func TestFallbackDeterminism(t *testing.T) {
	req := appraisal.Request{
		Weight:   "3.5",
		Material: appraisal.MaterialGold,
		Karat:    appraisal.Karat14,
		Hallmark: appraisal.HallmarkYes,
	}

	first := appraisal.Fallback(req)
	for range 10 {
		est := appraisal.Fallback(req)
		if est.MarketValue != first.MarketValue || est.LowerBound != first.LowerBound {
			t.Fatalf("repeated call = (%v, %v), want (%v, %v)",
				est.MarketValue, est.LowerBound, first.MarketValue, first.LowerBound)
		}
	}
}

func TestFallbackBounds(t *testing.T) {
	materials := []appraisal.Material{
		appraisal.MaterialGold,
		appraisal.MaterialWhiteGold,
		appraisal.MaterialSilver,
		appraisal.MaterialPlatinum,
		appraisal.MaterialOther,
		appraisal.MaterialUnspecified,
	}

	for _, m := range materials {
		est := appraisal.Fallback(appraisal.Request{
			Weight:   "7.25",
			Material: m,
			Hallmark: appraisal.HallmarkYes,
		})

		if est.MarketValue < 0 || est.LowerBound < 0 {
			t.Errorf("material %q: negative estimate (%v, %v)", m, est.MarketValue, est.LowerBound)
		}
		if est.LowerBound > est.MarketValue {
			t.Errorf("material %q: LowerBound %v > MarketValue %v", m, est.LowerBound, est.MarketValue)
		}
	}
}

func TestParseMaterial(t *testing.T) {
	tests := []struct {
		input string
		want  appraisal.Material
	}{
		{"arany", appraisal.MaterialGold},
		{"feherarany", appraisal.MaterialWhiteGold},
		{"ezust", appraisal.MaterialSilver},
		{"platina", appraisal.MaterialPlatinum},
		{"egyeb", appraisal.MaterialOther},
		{"", appraisal.MaterialUnspecified},
		{"unknown-string-not-in-table", appraisal.MaterialOther},
	}

	for _, tt := range tests {
		if got := appraisal.ParseMaterial(tt.input); got != tt.want {
			t.Errorf("ParseMaterial(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestUnknownMaterialMatchesOtherBucket(t *testing.T) {
	base := appraisal.Request{Weight: "5", Hallmark: appraisal.HallmarkYes}

	unknown := base
	unknown.Material = appraisal.ParseMaterial("vibranium")

	other := base
	other.Material = appraisal.MaterialOther

	if got, want := appraisal.Fallback(unknown).MarketValue, appraisal.Fallback(other).MarketValue; got != want {
		t.Errorf("unknown material MarketValue = %v, want %v (other bucket)", got, want)
	}
}
