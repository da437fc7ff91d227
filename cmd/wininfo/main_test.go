package main

import "testing"

func TestResolveRows(t *testing.T) {
	rows, err := resolveRows([]string{"4", "8.6"}, []float64{60})
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if rows[0].beta != 4 || rows[1].beta != 8.6 {
		t.Fatalf("unexpected betas: %+v", rows)
	}
	if rows[2].beta < 8 || rows[2].beta > 8.3 {
		t.Fatalf("60 dB sidelobe beta=%v, want about 8.16", rows[2].beta)
	}
}

func TestResolveRowsDefaults(t *testing.T) {
	rows, err := resolveRows(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != len(defaultBetas) {
		t.Fatalf("got %d rows, want %d", len(rows), len(defaultBetas))
	}
}

func TestResolveRowsErrors(t *testing.T) {
	if _, err := resolveRows([]string{"eight"}, nil); err == nil {
		t.Fatal("expected error for non-numeric beta")
	}
	if _, err := resolveRows(nil, []float64{-3}); err == nil {
		t.Fatal("expected error for negative sidelobe level")
	}
}

func TestSidelobeTargetsFlag(t *testing.T) {
	var s sidelobeTargets
	if err := s.Set("60"); err != nil {
		t.Fatal(err)
	}
	if err := s.Set("90"); err != nil {
		t.Fatal(err)
	}
	if len(s) != 2 || s[1] != 90 {
		t.Fatalf("got %v", s)
	}
	if err := s.Set("loud"); err == nil {
		t.Fatal("expected parse error")
	}
}
