// Package appraisal implements the jewelry valuation estimator: a delegated
// multimodal model call with a deterministic local fallback.
package appraisal

// Material identifies the metal of an appraised item. Values follow the
// Hungarian form labels used on the wire.
type Material string

const (
	MaterialGold        Material = "arany"
	MaterialWhiteGold   Material = "feherarany"
	MaterialSilver      Material = "ezust"
	MaterialPlatinum    Material = "platina"
	MaterialOther       Material = "egyeb"
	MaterialUnspecified Material = ""
)

// ParseMaterial normalizes a raw material string. Empty input stays
// unspecified; unrecognized values collapse to the other bucket.
func ParseMaterial(s string) Material {
	switch Material(s) {
	case MaterialGold, MaterialWhiteGold, MaterialSilver, MaterialPlatinum, MaterialOther, MaterialUnspecified:
		return Material(s)
	default:
		return MaterialOther
	}
}

// Karat expresses gold purity out of 24 parts.
type Karat string

const (
	Karat8           Karat = "8k"
	Karat9           Karat = "9k"
	Karat10          Karat = "10k"
	Karat14          Karat = "14k"
	Karat18          Karat = "18k"
	Karat21          Karat = "21k"
	Karat22          Karat = "22k"
	KaratUnknown     Karat = "ismeretlen"
	KaratUnspecified Karat = ""
)

// ParseKarat normalizes a raw karat string. Empty input stays unspecified;
// unrecognized values collapse to unknown.
func ParseKarat(s string) Karat {
	switch Karat(s) {
	case Karat8, Karat9, Karat10, Karat14, Karat18, Karat21, Karat22, KaratUnknown, KaratUnspecified:
		return Karat(s)
	default:
		return KaratUnknown
	}
}

// Hallmark records whether the item carries a purity stamp.
type Hallmark string

const (
	HallmarkYes     Hallmark = "igen"
	HallmarkNo      Hallmark = "nem"
	HallmarkUnknown Hallmark = "nemtudom"
)

// Request holds the validated attributes of a single appraisal.
// Weight and dimension fields keep their raw string form; the fallback
// calculator parses weight leniently.
type Request struct {
	Weight    string
	Material  Material
	Karat     Karat
	Hallmark  Hallmark
	Length    string
	Width     string
	Thickness string
	Images    [][]byte
}

// Validate enforces the two required fields. No numeric range checking is
// performed beyond presence.
func (r Request) Validate() error {
	if r.Weight == "" || r.Hallmark == "" {
		return ErrMissingFields
	}
	return nil
}

// Source tags which estimation path produced an estimate. The wire response
// does not carry it; logs and tests do.
type Source string

const (
	SourceExternal Source = "external"
	SourceFallback Source = "fallback"
)

// Estimate is the valuation result in Hungarian Forint.
type Estimate struct {
	MarketValue float64 `json:"marketValue"`
	LowerBound  float64 `json:"lowerBound"`
	Confidence  string  `json:"confidence,omitempty"`
	Notes       string  `json:"notes,omitempty"`
	Source      Source  `json:"-"`
}
