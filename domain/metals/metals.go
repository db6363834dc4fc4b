// Package metals defines the tracked heavy metals and their fixed reference
// tables. Background concentrations and toxic-response factors are constants
// of the assessment method, not derived from input data.
package metals

// Metal identifies a tracked heavy metal by its chemical symbol, which is also
// the required input column name.
type Metal string

const (
	Fe Metal = "Fe"
	Mn Metal = "Mn"
	Cr Metal = "Cr"
	Cu Metal = "Cu"
	Ni Metal = "Ni"
	Co Metal = "Co"
	Pb Metal = "Pb"
	Zn Metal = "Zn"
)

// String returns the chemical symbol
func (m Metal) String() string {
	return string(m)
}

// Tracked returns the tracked metals in canonical column order.
func Tracked() []Metal {
	return []Metal{Fe, Mn, Cr, Cu, Ni, Co, Pb, Zn}
}

// Reference holds the fixed per-metal background concentrations and
// toxic-response factors used in risk computation. Values are reachable only
// through accessors so the tables stay immutable configuration data.
type Reference struct {
	background map[Metal]float64
	toxicity   map[Metal]float64
}

// DefaultReference returns the reference tables of the assessment method.
// Background values are in the same unit convention as the measured
// concentrations (mg/kg or mg/L depending on dataset convention); all entries
// are non-zero, which the risk division relies on.
func DefaultReference() Reference {
	return Reference{
		background: map[Metal]float64{
			Fe: 35000,
			Mn: 600,
			Cr: 90,
			Cu: 45,
			Ni: 50,
			Co: 19,
			Pb: 20,
			Zn: 95,
		},
		toxicity: map[Metal]float64{
			Fe: 1,
			Mn: 1,
			Cr: 5,
			Cu: 5,
			Ni: 5,
			Co: 5,
			Pb: 10,
			Zn: 1,
		},
	}
}

// Background returns the reference baseline concentration for a metal.
func (r Reference) Background(m Metal) float64 {
	return r.background[m]
}

// Toxicity returns the toxic-response factor for a metal.
func (r Reference) Toxicity(m Metal) float64 {
	return r.toxicity[m]
}

// ToxicitySum returns the sum of all toxic-response factors. A station whose
// concentrations sit exactly at background levels scores this value.
func (r Reference) ToxicitySum() float64 {
	var sum float64
	for _, m := range Tracked() {
		sum += r.toxicity[m]
	}
	return sum
}

// Covers reports whether both tables carry an entry for every tracked metal.
func (r Reference) Covers() bool {
	for _, m := range Tracked() {
		if _, ok := r.background[m]; !ok {
			return false
		}
		if _, ok := r.toxicity[m]; !ok {
			return false
		}
	}
	return true
}
