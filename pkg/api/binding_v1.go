// pkg/api/binding_v1.go
package api

// BindingV1 is the stable JSON/JSONL schema for one evaluated nuclide.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type BindingV1 struct {
	Nuclide       string   `json:"nuclide"`
	A             int      `json:"a"`
	Z             int      `json:"z"`
	N             int      `json:"n"`
	EnergyMeV     float64  `json:"energy_mev"`
	PerNucleonMeV float64  `json:"per_nucleon_mev"`
	PairingSign   int      `json:"pairing_sign"`
	Preset        string   `json:"preset,omitempty"`
	Terms         *TermsV1 `json:"terms,omitempty"`
	SnMeV         *float64 `json:"sn_mev,omitempty"`
	SpMeV         *float64 `json:"sp_mev,omitempty"`
}

// TermsV1 carries the five SEMF contributions (MeV). Pairing is signed.
type TermsV1 struct {
	Volume    float64 `json:"volume"`
	Surface   float64 `json:"surface"`
	Coulomb   float64 `json:"coulomb"`
	Asymmetry float64 `json:"asymmetry"`
	Pairing   float64 `json:"pairing"`
}

// ConstsV1 is the on-disk/wire shape of a coefficient set.
type ConstsV1 struct {
	Name string  `json:"name,omitempty"`
	Base string  `json:"base,omitempty"`
	AV   float64 `json:"a_v"`
	AS   float64 `json:"a_s"`
	AC   float64 `json:"a_c"`
	AA   float64 `json:"a_a"`
	AP   float64 `json:"a_p"`
	KP   float64 `json:"k_p"`
}

// FitV1 reports a coefficient refit.
type FitV1 struct {
	Consts       ConstsV1 `json:"consts"`
	Observations int      `json:"observations"`
	RMSMeV       float64  `json:"rms_mev"`
	MaxAbsMeV    float64  `json:"max_abs_mev"`
	MeanMeV      float64  `json:"mean_mev"`
}

// ResidualV1 is one observation against a fitted prediction.
type ResidualV1 struct {
	Nuclide      string  `json:"nuclide"`
	A            int     `json:"a"`
	Z            int     `json:"z"`
	ObservedMeV  float64 `json:"observed_mev"`
	PredictedMeV float64 `json:"predicted_mev"`
	ResidualMeV  float64 `json:"residual_mev"`
}
