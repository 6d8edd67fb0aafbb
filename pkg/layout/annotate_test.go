package layout

import (
	"testing"

	"github.com/sanjibnarzary/svgling/pkg/errors"
	"github.com/sanjibnarzary/svgling/pkg/tree"
)

func TestBoxConstituent(t *testing.T) {
	l := New(sentence(), WithHorizSpacing(HorizEven))

	if err := l.BoxConstituent(tree.Path{0}, DefaultBoxStyle()); err != nil {
		t.Fatalf("BoxConstituent() error = %v", err)
	}

	anns := l.Annotations()
	if len(anns) != 1 {
		t.Fatalf("Annotations() len = %d, want 1", len(anns))
	}
	box, ok := anns[0].(BoxAnnotation)
	if !ok {
		t.Fatalf("annotation type = %T, want BoxAnnotation", anns[0])
	}
	if !almostEqual(box.Bounds.X, 0) || !almostEqual(box.Bounds.Width, 50) {
		t.Errorf("box x span = (%v, %v), want (0, 50)", box.Bounds.X, box.Bounds.Width)
	}
	if box.Style.Fill != "gray" {
		t.Errorf("box fill = %q, want gray", box.Style.Fill)
	}
}

func TestUnderlineConstituent(t *testing.T) {
	l := New(sentence())

	if err := l.UnderlineConstituent(tree.Path{1}, DefaultLineStyle()); err != nil {
		t.Fatalf("UnderlineConstituent() error = %v", err)
	}
	anns := l.Annotations()
	if len(anns) != 1 {
		t.Fatalf("Annotations() len = %d, want 1", len(anns))
	}
	if _, ok := anns[0].(UnderlineAnnotation); !ok {
		t.Fatalf("annotation type = %T, want UnderlineAnnotation", anns[0])
	}
}

func TestAnnotationOrderPreserved(t *testing.T) {
	l := New(sentence())

	_ = l.UnderlineConstituent(tree.Path{0}, DefaultLineStyle())
	_ = l.BoxConstituent(tree.Path{1}, DefaultBoxStyle())

	anns := l.Annotations()
	if len(anns) != 2 {
		t.Fatalf("Annotations() len = %d, want 2", len(anns))
	}
	if _, ok := anns[0].(UnderlineAnnotation); !ok {
		t.Errorf("first annotation = %T, want UnderlineAnnotation", anns[0])
	}
	if _, ok := anns[1].(BoxAnnotation); !ok {
		t.Errorf("second annotation = %T, want BoxAnnotation", anns[1])
	}
}

func TestInvalidPathLeavesStateUntouched(t *testing.T) {
	l := New(sentence())
	heightBefore := l.Height()

	err := l.BoxConstituent(tree.Path{0, 5}, DefaultBoxStyle())
	if !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Fatalf("BoxConstituent() error = %v, want INVALID_PATH", err)
	}
	err = l.MovementArrow(tree.Path{0, 5}, tree.Path{1}, DefaultLineStyle())
	if !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Fatalf("MovementArrow() error = %v, want INVALID_PATH", err)
	}

	if len(l.Annotations()) != 0 {
		t.Errorf("Annotations() len = %d after failed calls, want 0", len(l.Annotations()))
	}
	if l.Height() != heightBefore {
		t.Errorf("Height() changed after failed calls: %v → %v", heightBefore, l.Height())
	}
	if l.ExtraY() != 1.0 {
		t.Errorf("ExtraY() = %v after failed calls, want 1", l.ExtraY())
	}
}

func TestMovementArrowPlacement(t *testing.T) {
	l := New(sentence(), WithHorizSpacing(HorizEven))

	if err := l.MovementArrow(tree.Path{0, 0}, tree.Path{1, 0}, DefaultLineStyle()); err != nil {
		t.Fatalf("MovementArrow() error = %v", err)
	}

	anns := l.Annotations()
	if len(anns) != 1 {
		t.Fatalf("Annotations() len = %d, want 1", len(anns))
	}
	arrow, ok := anns[0].(ArrowAnnotation)
	if !ok {
		t.Fatalf("annotation type = %T, want ArrowAnnotation", anns[0])
	}

	// Default height: below the deepest leaf in the span (depth 2):
	// 6em of rows + 1em row height + 1.2em clearance.
	if !almostEqual(arrow.CrossY, 8.2) {
		t.Errorf("CrossY = %v, want 8.2", arrow.CrossY)
	}
	// Bottom centers of the two leaves.
	if !almostEqual(arrow.X1, 12.5) || !almostEqual(arrow.X2, 75) {
		t.Errorf("arrow x = (%v, %v), want (12.5, 75)", arrow.X1, arrow.X2)
	}
	if !almostEqual(arrow.StartY, 7.5) || !almostEqual(arrow.EndY, 7.5) {
		t.Errorf("arrow y = (%v, %v), want (7.5, 7.5)", arrow.StartY, arrow.EndY)
	}

	// Arrow space is reserved below the tree.
	if l.ExtraY() != 2 {
		t.Errorf("ExtraY() = %v, want 2", l.ExtraY())
	}
	if !almostEqual(l.Height(), 9) {
		t.Errorf("Height() = %v, want 9", l.Height())
	}
}

func TestMovementArrowCollisionAvoidance(t *testing.T) {
	l := New(sentence(), WithHorizSpacing(HorizEven))

	if err := l.MovementArrow(tree.Path{0, 0}, tree.Path{1, 0}, DefaultLineStyle()); err != nil {
		t.Fatal(err)
	}
	if err := l.MovementArrow(tree.Path{0, 1}, tree.Path{1, 0}, DefaultLineStyle()); err != nil {
		t.Fatal(err)
	}

	anns := l.Annotations()
	first := anns[0].(ArrowAnnotation)
	second := anns[1].(ArrowAnnotation)

	// The overlapping span is bumped down the page in half-em steps.
	if second.CrossY <= first.CrossY {
		t.Errorf("second arrow CrossY = %v, not below first %v", second.CrossY, first.CrossY)
	}
	if !almostEqual(second.CrossY, first.CrossY+0.5) {
		t.Errorf("second arrow CrossY = %v, want %v", second.CrossY, first.CrossY+0.5)
	}
}

func TestMovementArrowThirdCollision(t *testing.T) {
	// Placement is greedy and order dependent: each new overlapping
	// arrow lands strictly lower than the ones before it.
	tr := []any{"S", []any{"A", "a"}, []any{"B", "b"}, []any{"C", "c"}, []any{"D", "d"}}
	l := New(tr, WithHorizSpacing(HorizEven))

	pairs := [][2]tree.Path{
		{{0, 0}, {3, 0}},
		{{1, 0}, {3, 0}},
		{{2, 0}, {3, 0}},
	}
	for _, pair := range pairs {
		if err := l.MovementArrow(pair[0], pair[1], DefaultLineStyle()); err != nil {
			t.Fatal(err)
		}
	}

	anns := l.Annotations()
	prev := anns[0].(ArrowAnnotation).CrossY
	for i := 1; i < len(anns); i++ {
		cur := anns[i].(ArrowAnnotation).CrossY
		if cur <= prev {
			t.Errorf("arrow %d CrossY = %v, not below previous %v", i, cur, prev)
		}
		prev = cur
	}
}
