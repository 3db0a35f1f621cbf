package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"overlapping", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"touching edges", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"separate", NewRect(0, 0, 5, 5), NewRect(20, 20, 5, 5), false},
		{"contained", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
		{"vertical miss", NewRect(0, 0, 10, 5), NewRect(0, 10, 10, 5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			// Intersection is symmetric
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("Intersects(%v, %v) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestRectFIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b RectF
		want bool
	}{
		{"overlapping", NewRectF(0, 0, 10, 10), NewRectF(9.5, 9.5, 10, 10), true},
		{"touching edges", NewRectF(0, 0, 10, 10), NewRectF(10, 0, 10, 10), false},
		{"separate", NewRectF(0, 0, 5, 5), NewRectF(100, 100, 5, 5), false},
		{"thin overlap", NewRectF(0, 0, 100, 1), NewRectF(50, 0.5, 10, 10), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestRectFInset(t *testing.T) {
	r := NewRectF(10, 20, 34, 48)
	in := r.Inset(6, 4)

	if in.X != 16 || in.Y != 24 {
		t.Errorf("Inset origin = (%v, %v), want (16, 24)", in.X, in.Y)
	}
	if in.W != 22 || in.H != 40 {
		t.Errorf("Inset size = (%v, %v), want (22, 40)", in.W, in.H)
	}

	// Degenerate inset collapses instead of inverting
	tiny := NewRectF(0, 0, 4, 4).Inset(10, 10)
	if tiny.W != 0 || tiny.H != 0 {
		t.Errorf("degenerate inset size = (%v, %v), want (0, 0)", tiny.W, tiny.H)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5, 0, 10) = %d, want 5", got)
	}
	if got := Clamp(-5, 0, 10); got != 0 {
		t.Errorf("Clamp(-5, 0, 10) = %d, want 0", got)
	}
	if got := Clamp(15, 0, 10); got != 10 {
		t.Errorf("Clamp(15, 0, 10) = %d, want 10", got)
	}
	if got := ClampF(700.0, 320.0, 650.0); got != 650.0 {
		t.Errorf("ClampF(700, 320, 650) = %v, want 650", got)
	}
}
