package codec

import (
	"errors"
	"reflect"
	"testing"

	"couchrunner/internal/core/model"
)

func sampleRun(t *testing.T, completed bool) model.Run {
	t.Helper()
	run, err := model.NewRun("W1D1", "desc", completed, []model.Interval{
		model.NewInterval(300, "Warmup"),
		model.NewInterval(60, "Jog"),
	})
	if err != nil {
		t.Fatal(err)
	}
	return run
}

func TestEncodeSingleRun(t *testing.T) {
	got := Encode([]model.Run{sampleRun(t, false)})
	want := "W1D1|desc|false|300|Warmup|60|Jog"
	if got != want {
		t.Errorf("Encode = %q, want %q", got, want)
	}
}

func TestEncodeRunBoundary(t *testing.T) {
	second, err := model.NewRun("W1D2", "more", true, []model.Interval{model.NewInterval(90, "Walk")})
	if err != nil {
		t.Fatal(err)
	}
	got := Encode([]model.Run{sampleRun(t, false), second})
	want := "W1D1|desc|false|300|Warmup|60|Jog||W1D2|more|true|90|Walk"
	if got != want {
		t.Errorf("Encode = %q, want %q", got, want)
	}
}

// TestDecodeAcceptsTrailingBoundary verifies text that kept its final "||" decodes to the same run.
func TestDecodeAcceptsTrailingBoundary(t *testing.T) {
	for _, input := range []string{
		"W1D1|desc|false|300|Warmup|60|Jog",
		"W1D1|desc|false|300|Warmup|60|Jog||",
	} {
		got, err := Decode(input)
		if err != nil {
			t.Fatalf("Decode(%q): %v", input, err)
		}
		want := model.Catalog{sampleRun(t, false)}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Decode(%q) = %+v, want %+v", input, got, want)
		}
	}
}

// TestRoundTripDefaultCatalog verifies decode(encode(x)) == x for the full program with mixed progress.
func TestRoundTripDefaultCatalog(t *testing.T) {
	catalog := model.DefaultCatalog()
	catalog[0].Completed = true
	catalog[13].Completed = true
	catalog[26].Completed = true

	if err := CheckEncodable(catalog); err != nil {
		t.Fatalf("default catalog not encodable: %v", err)
	}

	decoded, err := Decode(Encode(catalog))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !reflect.DeepEqual(decoded, catalog) {
		t.Error("round trip changed the catalog")
	}
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty string", input: ""},
		{name: "only boundary", input: "||"},
		{name: "too few fields", input: "W1D1|desc"},
		{name: "no intervals", input: "W1D1|desc|false"},
		{name: "bad completed flag", input: "W1D1|desc|yes|300|Warmup"},
		{name: "capitalized flag", input: "W1D1|desc|True|300|Warmup"},
		{name: "odd leftover", input: "W1D1|desc|false|300|Warmup|60"},
		{name: "non integer duration", input: "W1D1|desc|false|five|Warmup"},
		{name: "negative duration", input: "W1D1|desc|false|-5|Warmup"},
		{name: "bad second run", input: "W1D1|desc|false|300|Warmup||W1D2|desc|false|x|Jog"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			runs, err := Decode(tc.input)
			if !errors.Is(err, ErrMalformed) {
				t.Fatalf("err = %v, want ErrMalformed", err)
			}
			if runs != nil {
				t.Errorf("runs = %v, want nil", runs)
			}
		})
	}
}

// TestSeparatorInFieldBreaksRoundTrip documents the known fragility of the format.
func TestSeparatorInFieldBreaksRoundTrip(t *testing.T) {
	run, err := model.NewRun("W1|D1", "desc", false, []model.Interval{model.NewInterval(60, "Jog")})
	if err != nil {
		t.Fatal(err)
	}
	catalog := []model.Run{run}

	if err := CheckEncodable(catalog); !errors.Is(err, ErrNotEncodable) {
		t.Fatalf("CheckEncodable err = %v, want ErrNotEncodable", err)
	}
	decoded, err := Decode(Encode(catalog))
	if err == nil && reflect.DeepEqual(decoded, model.Catalog(catalog)) {
		t.Error("separator in name unexpectedly survived a round trip")
	}
}

func TestCheckEncodableRejectsEmptyLabel(t *testing.T) {
	run, err := model.NewRun("W1D1", "desc", false, []model.Interval{model.NewInterval(60, "")})
	if err != nil {
		t.Fatal(err)
	}
	if err := CheckEncodable([]model.Run{run}); !errors.Is(err, ErrNotEncodable) {
		t.Errorf("err = %v, want ErrNotEncodable", err)
	}
}
