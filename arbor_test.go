package arbor

import "testing"

func TestRectContains(t *testing.T) {
	r := Rect{10, 20, 100, 50}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 5, 40, false},
		{"outside right", 115, 40, false},
		{"outside top", 50, 15, false},
		{"outside bottom", 50, 75, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRectIntersects(t *testing.T) {
	r := Rect{0, 0, 10, 10}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlapping", Rect{5, 5, 10, 10}, true},
		{"contained", Rect{2, 2, 4, 4}, true},
		{"sharing an edge", Rect{10, 0, 5, 10}, true},
		{"disjoint", Rect{20, 20, 5, 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects(%+v) = %v, want %v", tt.other, got, tt.want)
			}
			if got := tt.other.Intersects(r); got != tt.want {
				t.Errorf("Intersects is not symmetric for %+v", tt.other)
			}
		})
	}
}

func TestRectUnion(t *testing.T) {
	a := Rect{0, 0, 10, 10}
	b := Rect{20, 5, 10, 10}

	if got := a.Union(b); got != (Rect{0, 0, 30, 15}) {
		t.Errorf("Union = %+v", got)
	}
	// Empty rectangles are the identity on either side.
	if got := (Rect{}).Union(a); got != a {
		t.Errorf("empty.Union(a) = %+v", got)
	}
	if got := a.Union(Rect{}); got != a {
		t.Errorf("a.Union(empty) = %+v", got)
	}
}

func TestRectCenter(t *testing.T) {
	if got := (Rect{10, 20, 30, 40}).Center(); got != (Vec2{25, 40}) {
		t.Errorf("Center = %v, want (25, 40)", got)
	}
}

func TestNormalized(t *testing.T) {
	want := Rect{10, 20, 30, 40}

	corners := [][2]Vec2{
		{{10, 20}, {40, 60}},
		{{40, 60}, {10, 20}},
		{{40, 20}, {10, 60}},
		{{10, 60}, {40, 20}},
	}
	for _, c := range corners {
		if got := Normalized(c[0], c[1]); got != want {
			t.Errorf("Normalized(%v, %v) = %+v, want %+v", c[0], c[1], got, want)
		}
	}
}

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2{3, -4}
	b := Vec2{1, 2}
	if got := a.Add(b); got != (Vec2{4, -2}) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != (Vec2{2, -6}) {
		t.Errorf("Sub = %v", got)
	}
}

func TestObjectKindString(t *testing.T) {
	tests := []struct {
		kind ObjectKind
		want string
	}{
		{KindNone, "none"},
		{KindNode, "node"},
		{KindPin, "pin"},
		{KindLink, "link"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestObjectNarrowing(t *testing.T) {
	n := &Node{ID: 1, live: true}
	o := objectOfNode(n)

	if o.Kind() != KindNode || o.ID() != 1 || !o.IsLive() {
		t.Error("node handle misreports itself")
	}
	if o.Node() != n {
		t.Error("Node() lost the referent")
	}
	if o.Pin() != nil || o.Link() != nil {
		t.Error("narrowing to the wrong kind returned non-nil")
	}

	var zero Object
	if !zero.IsZero() || zero.Kind() != KindNone || zero.ID() != 0 || zero.IsLive() {
		t.Error("zero Object misreports itself")
	}
	if zero.Node() != nil || zero.Pin() != nil || zero.Link() != nil {
		t.Error("zero Object narrowed to something")
	}

	n.live = false
	if o.IsLive() {
		t.Error("handle live after its node died")
	}
}
