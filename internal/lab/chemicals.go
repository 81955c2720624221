package lab

import "fmt"

// Chemical identifies a flame-test element. The set is closed: every
// chemical referenced by a beaker zone or a mixture entry has a spec
// in the registry below.
type Chemical uint8

const (
	ChemNone Chemical = iota
	ChemNa
	ChemK
	ChemLi
	ChemCu
	ChemCa
	ChemBa
)

func (c Chemical) Symbol() string {
	switch c {
	case ChemNa:
		return "Na"
	case ChemK:
		return "K"
	case ChemLi:
		return "Li"
	case ChemCu:
		return "Cu"
	case ChemCa:
		return "Ca"
	case ChemBa:
		return "Ba"
	}
	return ""
}

// ChemicalSpec holds the static flame-test data for one element.
type ChemicalSpec struct {
	Name          string
	Formula       string
	Color         RGB // flame base colour
	Description   string
	SafetyWarning string
	Wavelength    int     // nm, informational
	Intensity     float64 // 0..1, scales flame size and brightness
	ParticleColor RGB
}

// Chemicals is the registry, loaded once and immutable.
var Chemicals = map[Chemical]ChemicalSpec{
	ChemNa: {
		Name:          "Sodium",
		Formula:       "NaCl",
		Color:         RGB{R: 255, G: 255, B: 0},
		Description:   "Sodium produces a bright yellow flame due to electron transitions in the D-line",
		SafetyWarning: "Sodium compounds are generally safe but can be irritating. Always wear safety goggles.",
		Wavelength:    589,
		Intensity:     0.9,
		ParticleColor: RGB{R: 255, G: 200, B: 0},
	},
	ChemK: {
		Name:          "Potassium",
		Formula:       "KCl",
		Color:         RGB{R: 128, G: 0, B: 255},
		Description:   "Potassium creates a lilac flame due to multiple electron transitions",
		SafetyWarning: "Potassium compounds can be reactive. Handle with care and use proper ventilation.",
		Wavelength:    766,
		Intensity:     0.7,
		ParticleColor: RGB{R: 255, G: 0, B: 200},
	},
	ChemLi: {
		Name:          "Lithium",
		Formula:       "LiCl",
		Color:         RGB{R: 255, G: 0, B: 0},
		Description:   "Lithium produces a crimson red flame from electron transitions in the metal atom",
		SafetyWarning: "Lithium compounds are generally safe but can cause skin irritation.",
		Wavelength:    670,
		Intensity:     0.8,
		ParticleColor: RGB{R: 255, G: 100, B: 0},
	},
	ChemCu: {
		Name:          "Copper",
		Formula:       "CuSO4",
		Color:         RGB{R: 0, G: 255, B: 128},
		Description:   "Copper produces blue-green flames due to electron transitions in copper ions",
		SafetyWarning: "Copper compounds can be toxic. Avoid inhalation and skin contact.",
		Wavelength:    515,
		Intensity:     0.85,
		ParticleColor: RGB{R: 100, G: 255, B: 200},
	},
	ChemCa: {
		Name:          "Calcium",
		Formula:       "CaCl2",
		Color:         RGB{R: 255, G: 127, B: 0},
		Description:   "Calcium creates an orange-red flame from electron transitions in calcium atoms",
		SafetyWarning: "Calcium compounds are generally safe but can cause eye irritation.",
		Wavelength:    622,
		Intensity:     0.75,
		ParticleColor: RGB{R: 255, G: 150, B: 0},
	},
	ChemBa: {
		Name:          "Barium",
		Formula:       "BaCl2",
		Color:         RGB{R: 128, G: 255, B: 0},
		Description:   "Barium produces a pale green flame due to electron transitions in barium ions",
		SafetyWarning: "CAUTION: Barium compounds are toxic. Avoid inhalation and ingestion.",
		Wavelength:    554,
		Intensity:     0.6,
		ParticleColor: RGB{R: 200, G: 255, B: 100},
	},
}

// MixturePair is the canonical unordered key for a two-chemical mix.
type MixturePair struct {
	Lo, Hi Chemical
}

// CanonicalPair orders two distinct chemicals so that (a,b) and (b,a)
// name the same mixture.
func CanonicalPair(a, b Chemical) MixturePair {
	if a > b {
		a, b = b, a
	}
	return MixturePair{Lo: a, Hi: b}
}

// MixtureSpec describes the visual and educational outcome of mixing
// two flame colours. Mixing never alters finger state.
type MixtureSpec struct {
	ResultColor   RGB
	Description   string
	Explanation   string
	RealisticNote string
}

var Mixtures = map[MixturePair]MixtureSpec{
	CanonicalPair(ChemNa, ChemK): {
		ResultColor:   RGB{R: 255, G: 128, B: 128},
		Description:   "Sodium and Potassium create a mixed yellow-purple flame with alternating colors",
		Explanation:   "Both elements emit simultaneously, creating a flickering effect between yellow and purple",
		RealisticNote: "In reality, the stronger sodium yellow often dominates the weaker potassium purple",
	},
	CanonicalPair(ChemLi, ChemCu): {
		ResultColor:   RGB{R: 255, G: 128, B: 64},
		Description:   "Lithium and Copper create a reddish-blue flame with purple tints",
		Explanation:   "The combination creates intermediate wavelengths between red and blue-green",
		RealisticNote: "Real mixtures often show both colors distinctly rather than blending",
	},
	CanonicalPair(ChemCa, ChemBa): {
		ResultColor:   RGB{R: 191, G: 191, B: 0},
		Description:   "Calcium and Barium create a yellow-green flame with orange highlights",
		Explanation:   "The orange-red of calcium blends with the pale green of barium",
		RealisticNote: "Mixed flames often flicker between the two distinct colors",
	},
	CanonicalPair(ChemNa, ChemCu): {
		ResultColor:   RGB{R: 128, G: 255, B: 64},
		Description:   "Sodium and Copper create a bright green flame with yellow edges",
		Explanation:   "Yellow sodium light combines with blue-green copper to create green",
		RealisticNote: "This is one of the more visually appealing realistic mixtures",
	},
	CanonicalPair(ChemK, ChemCa): {
		ResultColor:   RGB{R: 191, G: 64, B: 128},
		Description:   "Potassium and Calcium create a reddish-purple flame",
		Explanation:   "The lilac of potassium blends with the orange-red of calcium",
		RealisticNote: "Mixed flame often shows distinct regions of each color",
	},
	CanonicalPair(ChemLi, ChemBa): {
		ResultColor:   RGB{R: 255, G: 128, B: 0},
		Description:   "Lithium and Barium create a unique brownish-red flame with green tinges",
		Explanation:   "Red lithium mixed with green barium creates intermediate brown colors",
		RealisticNote: "This mixture often appears muddy in real flame tests",
	},
}

// BeakerLayout lists the bottom-row beakers left to right with their
// fractional x offsets. Barium has no beaker (the row would overlap
// the sidebar) but remains in the registry for mixtures.
var BeakerLayout = []struct {
	Chem   Chemical
	XRatio float64
}{
	{ChemNa, 0.08},
	{ChemK, 0.22},
	{ChemLi, 0.36},
	{ChemCu, 0.50},
	{ChemCa, 0.64},
}

// ChemicalExplanation composes the detailed science blurb shown in the
// sidebar after an ignition.
func ChemicalExplanation(c Chemical) string {
	spec, ok := Chemicals[c]
	if !ok {
		return ""
	}
	return fmt.Sprintf(
		"Chemical: %s (%s)\n\n"+
			"Description: %s\n\n"+
			"Wavelength: %d nm\n\n"+
			"Scientific Background: When %s atoms are heated in a flame, electrons absorb energy "+
			"and jump to higher energy levels. When they return to ground state, they emit light at "+
			"characteristic wavelengths, producing the distinctive %s flame color.\n\n"+
			"Safety: %s",
		spec.Name, spec.Formula, spec.Description, spec.Wavelength,
		spec.Name, spec.Name, spec.SafetyWarning)
}

// FlameTestTheory is the general primer shown on startup.
const FlameTestTheory = `Flame tests work because when metal atoms are heated, their electrons absorb energy and move to higher energy levels.
When these electrons return to their ground state, they emit light at specific wavelengths, creating characteristic colors.
Each element has a unique electron configuration, resulting in unique flame colors.`
