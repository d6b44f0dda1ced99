package ajson

import "testing"

func TestToIntWholeStringMatch(t *testing.T) {
	if got := ToInt("42", -1); got != 42 {
		t.Errorf("ToInt(42) = %d, want 42", got)
	}
	if got := ToInt("42abc", -1); got != -1 {
		t.Errorf("ToInt(42abc) = %d, want default -1 (partial matches are rejected)", got)
	}
}

func TestToBoolVocabularyAndZero(t *testing.T) {
	cases := []struct {
		s    string
		want bool
	}{
		{"true", true},
		{"false", false},
		{"yes", true},
		{"no", false},
		{"1", true},
		{"0", false},
	}
	for _, c := range cases {
		if got := ToBool(c.s, !c.want); got != c.want {
			t.Errorf("ToBool(%q) = %v, want %v", c.s, got, c.want)
		}
	}
}

func TestToBoolZeroOverridesDefault(t *testing.T) {
	if ToBool("0", true) {
		t.Error(`ToBool("0", true) should still be false`)
	}
}

func TestTryToIntReportsMiss(t *testing.T) {
	if _, ok := TryToInt("abc"); ok {
		t.Error("TryToInt on non-numeric text should report false")
	}
	v, ok := TryToInt("7")
	if !ok || v != 7 {
		t.Errorf("TryToInt(7) = (%d, %v), want (7, true)", v, ok)
	}
}

func TestToDoubleDefault(t *testing.T) {
	if got := ToDouble("not a number", 1.5); got != 1.5 {
		t.Errorf("ToDouble on non-numeric text = %v, want default 1.5", got)
	}
}
