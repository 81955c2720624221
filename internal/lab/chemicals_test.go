package lab

import (
	"strings"
	"testing"
)

func TestRegistryComplete(t *testing.T) {
	for _, b := range BeakerLayout {
		if _, ok := Chemicals[b.Chem]; !ok {
			t.Errorf("beaker chemical %s missing from registry", b.Chem.Symbol())
		}
	}
	for pair := range Mixtures {
		if _, ok := Chemicals[pair.Lo]; !ok {
			t.Errorf("mixture chemical %s missing from registry", pair.Lo.Symbol())
		}
		if _, ok := Chemicals[pair.Hi]; !ok {
			t.Errorf("mixture chemical %s missing from registry", pair.Hi.Symbol())
		}
		if pair.Lo >= pair.Hi {
			t.Errorf("mixture key %v not canonical", pair)
		}
	}
}

func TestRegistryFields(t *testing.T) {
	for chem, spec := range Chemicals {
		if spec.Name == "" || spec.Formula == "" {
			t.Errorf("%s: empty name or formula", chem.Symbol())
		}
		if spec.SafetyWarning == "" {
			t.Errorf("%s: empty safety warning", chem.Symbol())
		}
		if spec.Intensity <= 0 || spec.Intensity > 1 {
			t.Errorf("%s: intensity %v out of (0,1]", chem.Symbol(), spec.Intensity)
		}
		if spec.Wavelength <= 0 {
			t.Errorf("%s: wavelength %d", chem.Symbol(), spec.Wavelength)
		}
	}
}

func TestCanonicalPairSymmetry(t *testing.T) {
	for pair, want := range Mixtures {
		got, ok := Mixtures[CanonicalPair(pair.Hi, pair.Lo)]
		if !ok {
			t.Fatalf("reversed lookup of %v failed", pair)
		}
		if got.Description != want.Description {
			t.Errorf("reversed lookup of %v returned a different mixture", pair)
		}
	}
}

func TestSymbol(t *testing.T) {
	tests := []struct {
		chem Chemical
		want string
	}{
		{ChemNa, "Na"},
		{ChemK, "K"},
		{ChemLi, "Li"},
		{ChemCu, "Cu"},
		{ChemCa, "Ca"},
		{ChemBa, "Ba"},
		{ChemNone, ""},
	}
	for _, tt := range tests {
		if got := tt.chem.Symbol(); got != tt.want {
			t.Errorf("Symbol(%d) = %q, want %q", tt.chem, got, tt.want)
		}
	}
}

func TestChemicalExplanation(t *testing.T) {
	got := ChemicalExplanation(ChemNa)
	for _, want := range []string{"Sodium", "NaCl", "589", "Safety:"} {
		if !strings.Contains(got, want) {
			t.Errorf("explanation missing %q", want)
		}
	}
	if ChemicalExplanation(ChemNone) != "" {
		t.Error("explanation for ChemNone should be empty")
	}
}

func TestMixColorFallback(t *testing.T) {
	// Na+Li has no mixture entry, so the colour is an even blend.
	e := Event{Type: EventMix, Chem: ChemNa, OtherChem: ChemLi}
	got := e.MixColor()
	want := RGB{R: 255, G: 127, B: 0}
	if got != want {
		t.Errorf("MixColor() = %v, want %v", got, want)
	}

	// A known pair resolves through the table.
	e = Event{Type: EventMix, Chem: ChemK, OtherChem: ChemNa}
	if got := e.MixColor(); got != Mixtures[CanonicalPair(ChemNa, ChemK)].ResultColor {
		t.Errorf("MixColor() for Na+K = %v, want table colour", got)
	}
}
