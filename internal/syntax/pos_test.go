package syntax

import "testing"

func TestPosString(t *testing.T) {
	tests := []struct {
		name    string
		pos     Pos
		wantStr string
	}{
		{"line 1 col 1", NewPos(1, 1), "1:1"},
		{"later line", NewPos(10, 5), "10:5"},
		{"zero value", Pos{}, "0:0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pos.String(); got != tt.wantStr {
				t.Errorf("Pos.String() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestPosIsValid(t *testing.T) {
	if !NewPos(1, 1).IsValid() {
		t.Error("NewPos(1, 1) should be valid")
	}
	if (Pos{}).IsValid() {
		t.Error("zero Pos should be invalid")
	}
	if NewPos(0, 3).IsValid() {
		t.Error("line 0 should be invalid")
	}
}

func TestPosBefore(t *testing.T) {
	tests := []struct {
		name string
		p, q Pos
		want bool
	}{
		{"earlier line", NewPos(1, 9), NewPos(2, 1), true},
		{"later line", NewPos(3, 1), NewPos(2, 9), false},
		{"same line earlier col", NewPos(2, 3), NewPos(2, 4), true},
		{"equal", NewPos(2, 3), NewPos(2, 3), false},
		{"invalid sorts last", Pos{}, NewPos(5, 5), false},
		{"valid before invalid", NewPos(5, 5), Pos{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Before(tt.q); got != tt.want {
				t.Errorf("%s.Before(%s) = %v, want %v", tt.p, tt.q, got, tt.want)
			}
		})
	}
}
