package version

import "testing"

func TestLess(t *testing.T) {
	cases := []struct {
		name     string
		current  string
		required string
		want     bool
	}{
		{name: "equal", current: "1.2.3", required: "1.2.3", want: false},
		{name: "patch behind", current: "1.2.2", required: "1.2.3", want: true},
		{name: "patch ahead", current: "1.2.4", required: "1.2.3", want: false},
		{name: "major behind", current: "1.9.9", required: "2.0.0", want: true},
		{name: "leading v stripped", current: "v1.0.0", required: "1.0.1", want: true},
		{name: "leading v on required", current: "1.0.2", required: "v1.0.1", want: false},
		{name: "short current zero padded", current: "1.2", required: "1.2.1", want: true},
		{name: "short required zero padded", current: "1.2.1", required: "1.2", want: false},
		{name: "short equal", current: "1.2", required: "1.2.0", want: false},
		{name: "hyphen segments split", current: "1.2.3-1", required: "1.2.3-2", want: true},
		{name: "non-numeric coerces to zero", current: "1.2.3-beta", required: "1.2.3-1", want: true},
		{name: "non-numeric both sides equal", current: "1.2.3-alpha", required: "1.2.3-beta", want: false},
		{name: "empty current", current: "", required: "0.0.1", want: true},
		{name: "both empty", current: "", required: "", want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Less(tc.current, tc.required); got != tc.want {
				t.Fatalf("Less(%q, %q) = %v, want %v", tc.current, tc.required, got, tc.want)
			}
		})
	}
}

func TestLessIrreflexive(t *testing.T) {
	for _, v := range []string{"0", "1.0.0", "v2.3", "10.20.30-4", "dev"} {
		if Less(v, v) {
			t.Fatalf("Less(%q, %q) must be false", v, v)
		}
	}
}

func TestLessAsymmetric(t *testing.T) {
	pairs := [][2]string{
		{"1.0.0", "1.0.1"},
		{"0.9", "1.0"},
		{"2", "10"},
	}
	for _, pair := range pairs {
		if !Less(pair[0], pair[1]) {
			t.Fatalf("Less(%q, %q) = false, want true", pair[0], pair[1])
		}
		if Less(pair[1], pair[0]) {
			t.Fatalf("Less(%q, %q) = true, want false", pair[1], pair[0])
		}
	}
}
