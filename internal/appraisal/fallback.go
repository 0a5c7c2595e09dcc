package appraisal

import (
	"math"
	"strconv"
)

// Base prices per gram in HUF, approximating world spot prices. The gold
// entries assume 24k purity; karat adjustment happens separately.
var basePrices = map[Material]float64{
	MaterialGold:      25000,
	MaterialWhiteGold: 24000,
	MaterialSilver:    350,
	MaterialPlatinum:  13000,
	MaterialOther:     5000,
}

// Purity fractions per karat (karat / 24).
var karatMultipliers = map[Karat]float64{
	Karat8:  0.333,
	Karat9:  0.375,
	Karat10: 0.417,
	Karat14: 0.583,
	Karat18: 0.75,
	Karat21: 0.875,
	Karat22: 0.917,
}

const fallbackNotes = "Alapszámítás a világpiaci árak alapján. Pontos becsléshez szakértői vizsgálat szükséges."

// Fallback produces a deterministic estimate from the local pricing table.
// It never fails: unparsable weight computes as zero, unrecognized material
// prices as the other bucket, and unrecognized karat leaves the base price
// unmodified.
func Fallback(req Request) *Estimate {
	weight, err := strconv.ParseFloat(req.Weight, 64)
	if err != nil {
		weight = 0
	}

	price, ok := basePrices[req.Material]
	if !ok {
		price = basePrices[MaterialOther]
	}

	if req.Material == MaterialGold || req.Material == MaterialWhiteGold {
		if mult, ok := karatMultipliers[req.Karat]; ok {
			price *= mult
		}
	}

	raw := weight * price

	return &Estimate{
		MarketValue: math.Round(raw),
		LowerBound:  math.Round(raw * 0.85),
		Confidence:  "low",
		Notes:       fallbackNotes,
		Source:      SourceFallback,
	}
}
