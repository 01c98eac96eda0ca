package core

import "testing"

func TestIconForCategory(t *testing.T) {
	cases := []struct {
		category string
		want     IconKey
	}{
		{"อาหาร", IconUtensils},
		{"Food", IconUtensils},
		{"เดินทาง", IconBus},
		{"เงินเดือน", IconDollarSign},
		{"Salary", IconDollarSign},
		{"อื่นๆ", IconMore},
		{"ค่าเทอม", IconFallback}, // unrecognized
		{"", IconFallback},
	}
	for _, tc := range cases {
		if got := IconForCategory(tc.category); got != tc.want {
			t.Fatalf("%q expected %q, got %q", tc.category, tc.want, got)
		}
	}
}

func TestIconKeyValid(t *testing.T) {
	for _, s := range SuggestedCategories() {
		if !s.Icon.Valid() {
			t.Fatalf("suggestion %q has invalid icon %q", s.Name, s.Icon)
		}
	}
	if IconKey("sparkles").Valid() {
		t.Fatalf("expected unknown key to be invalid")
	}
}
