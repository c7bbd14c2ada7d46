package lp

import "testing"

func TestVarNames(t *testing.T) {
	tests := []struct {
		name string
		v    Var
		want string
	}{
		{"precedes", Precedes{I: 4, J: 11}, "x_4_11"},
		{"position", Position{Node: 7, Layer: 2}, "p_7_2"},
		{"crossing", Crossing{I: 0, J: 3, K: 1, L: 4}, "c_0_3_1_4"},
		{"edge mark", EdgeMark{U: 2, V: 5}, "c_2_5_2_5"},
		{"raw stretch", RawStretch{U: 0, V: 3}, "z_0_3"},
		{"stretch", Stretch{U: 0, V: 3}, "s_0_3"},
		{"sign bit", SignBit{U: 0, V: 3}, "b_0_3"},
		{"distance", Distance{U: 1, V: 4, I: 2}, "d_1_4_2"},
		{"nonvert", Nonvert{U: 1, V: 4}, "q_1_4"},
		{"scalar", Scalar("bn_stretch"), "bn_stretch"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Name(); got != tt.want {
				t.Errorf("Name() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestVarsAreComparable(t *testing.T) {
	// Typed variables double as map keys in the constraint builders; two
	// values naming the same variable must compare equal.
	if (Crossing{I: 0, J: 3, K: 1, L: 4}) != (Crossing{I: 0, J: 3, K: 1, L: 4}) {
		t.Error("identical crossings compare unequal")
	}
	if (Distance{U: 1, V: 4, I: 0}) == (Distance{U: 1, V: 4, I: 1}) {
		t.Error("distinct distance indexes compare equal")
	}
}
