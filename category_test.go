package dualdial

import (
	"math"
	"testing"
)

func TestParseHSL(t *testing.T) {
	tests := []struct {
		token   string
		r, g, b float64
	}{
		{"0 100% 50%", 1, 0, 0},
		{"120 100% 50%", 0, 1, 0},
		{"240 100% 50%", 0, 0, 1},
		{"0 0% 100%", 1, 1, 1},
		{"0 0% 0%", 0, 0, 0},
		{"360 100% 50%", 1, 0, 0},
	}
	for _, tt := range tests {
		c, err := ParseHSL(tt.token)
		if err != nil {
			t.Errorf("ParseHSL(%q): %v", tt.token, err)
			continue
		}
		if math.Abs(c.R-tt.r) > 1e-9 || math.Abs(c.G-tt.g) > 1e-9 || math.Abs(c.B-tt.b) > 1e-9 || c.A != 1 {
			t.Errorf("ParseHSL(%q) = %+v, want (%v, %v, %v)", tt.token, c, tt.r, tt.g, tt.b)
		}
	}
}

func TestParseHSLInvalid(t *testing.T) {
	for _, token := range []string{"", "red", "10 20 30"} {
		if _, err := ParseHSL(token); err == nil {
			t.Errorf("ParseHSL(%q) should fail", token)
		}
	}
}

func TestCategoryColor(t *testing.T) {
	relaxing := OuterCategories[0].Color()
	if relaxing.G <= relaxing.R || relaxing.G <= relaxing.B {
		t.Errorf("relaxing should be green, got %+v", relaxing)
	}
	bad := Category{Name: "x", ColorToken: "nope"}
	if bad.Color() != ColorWhite {
		t.Errorf("malformed token = %+v, want white", bad.Color())
	}
}

func TestCategoriesLayout(t *testing.T) {
	for _, r := range []Ring{RingOuter, RingInner} {
		cats := r.Categories()
		if len(cats) != 4 {
			t.Fatalf("%v ring has %d categories", r, len(cats))
		}
		for i, c := range cats {
			if c.BaseAngle != float64(i)*90 {
				t.Errorf("%v[%d] base angle = %v, want %v", r, i, c.BaseAngle, i*90)
			}
		}
	}
	if RingNone.Categories() != nil {
		t.Error("RingNone should have no categories")
	}
}

func TestCategoriesReturnsCopy(t *testing.T) {
	cats := RingOuter.Categories()
	cats[0].Name = "changed"
	if OuterCategories[0].Name != "relaxing" {
		t.Error("Categories leaked the package array")
	}
}

func TestRingString(t *testing.T) {
	tests := map[Ring]string{RingOuter: "outer", RingInner: "inner", RingNone: "none"}
	for r, want := range tests {
		if r.String() != want {
			t.Errorf("Ring(%d).String() = %q, want %q", r, r.String(), want)
		}
	}
}
