package layout

import "testing"

func TestCalculate_SingleNode_FixedSize(t *testing.T) {
	type tc struct {
		style    Style
		expected Rect
	}

	tests := map[string]tc{
		"fixed size": {
			style:    fixedStyle(50, 30),
			expected: NewRect(0, 0, 50, 30),
		},
		"positioned": {
			style: func() Style {
				s := fixedStyle(50, 30)
				s.X, s.Y = Px(7), Px(9)
				return s
			}(),
			expected: NewRect(7, 9, 50, 30),
		},
		"percent of viewport": {
			style: func() Style {
				s := DefaultStyle()
				s.Width, s.Height = Percent(50), Percent(25)
				return s
			}(),
			expected: NewRect(0, 0, 400, 150),
		},
		"viewport units": {
			style: func() Style {
				s := DefaultStyle()
				s.X, s.Y = Vw(10), Vh(10)
				s.Width, s.Height = Vw(100), Vh(100)
				return s
			}(),
			expected: NewRect(80, 60, 800, 600),
		},
		"nil declarations resolve to zero": {
			style:    Style{},
			expected: Rect{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tree := NewTree()
			id := tree.NewNode(tt.style)
			Calculate(tree, NewContext(800, 600, 16), id)
			assertRect(t, "rect", tree.Rect(id), tt.expected)
		})
	}
}

func TestCalculate_NestedPercent(t *testing.T) {
	tree := NewTree()

	outer := DefaultStyle()
	outer.Width, outer.Height = Px(200), Px(100)
	middle := DefaultStyle()
	middle.Width, middle.Height = Percent(50), Percent(50)
	inner := DefaultStyle()
	inner.X, inner.Y = Percent(10), Percent(10)
	inner.Width, inner.Height = Percent(50), Percent(100)

	o := tree.NewNode(outer)
	m := tree.NewNode(middle)
	i := tree.NewNode(inner)
	if err := tree.AddChild(o, m); err != nil {
		t.Fatal(err)
	}
	if err := tree.AddChild(m, i); err != nil {
		t.Fatal(err)
	}

	Calculate(tree, NewContext(1000, 1000, 16))

	assertRect(t, "middle", tree.Rect(m), NewRect(0, 0, 100, 50))
	// 10% of 100 wide / 50 tall
	assertRect(t, "inner", tree.Rect(i), NewRect(10, 5, 50, 50))
}

func TestCalculate_FontSize(t *testing.T) {
	type tc struct {
		rootFont  Length
		childFont Length
		wantRoot  float64
		wantChild float64
	}

	tests := map[string]tc{
		"inherit root font": {
			wantRoot:  16,
			wantChild: 16,
		},
		"root declares rem": {
			rootFont:  Rem(2),
			wantRoot:  32,
			wantChild: 32,
		},
		"child em of parent": {
			rootFont:  Px(20),
			childFont: Em(1.5),
			wantRoot:  20,
			wantChild: 30,
		},
		"child percent of parent": {
			rootFont:  Px(20),
			childFont: Percent(50),
			wantRoot:  20,
			wantChild: 10,
		},
		"child rem ignores parent": {
			rootFont:  Px(40),
			childFont: Rem(1),
			wantRoot:  40,
			wantChild: 16,
		},
		"root em falls back to root font": {
			rootFont:  Em(2),
			wantRoot:  32,
			wantChild: 32,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			root := fixedStyle(100, 100)
			root.FontSize = tt.rootFont
			child := fixedStyle(10, 10)
			child.FontSize = tt.childFont

			tree, r, kids := newTestTree(root, child)
			Calculate(tree, NewContext(800, 600, 16))

			if got := tree.Layout(r).FontSize; !approx(got, tt.wantRoot) {
				t.Errorf("root FontSize = %v, want %v", got, tt.wantRoot)
			}
			if got := tree.Layout(kids[0]).FontSize; !approx(got, tt.wantChild) {
				t.Errorf("child FontSize = %v, want %v", got, tt.wantChild)
			}
		})
	}
}

func TestCalculate_EmSizesUseResolvedFont(t *testing.T) {
	root := fixedStyle(400, 400)
	root.FontSize = Px(10)
	child := DefaultStyle()
	child.FontSize = Px(20)
	child.Width = Em(5)
	child.Height = Calc(Em(1), Rem(1))

	tree, _, kids := newTestTree(root, child)
	Calculate(tree, NewContext(800, 600, 16))

	assertRect(t, "child", tree.Rect(kids[0]), NewRect(0, 0, 100, 36))
}

func TestCalculate_MinMax(t *testing.T) {
	type tc struct {
		style    func(s *Style)
		expected Rect
	}

	tests := map[string]tc{
		"min width raises": {
			style:    func(s *Style) { s.Width = Px(10); s.MinWidth = Px(40) },
			expected: NewRect(0, 0, 40, 50),
		},
		"max width lowers": {
			style:    func(s *Style) { s.Width = Px(300); s.MaxWidth = Percent(50) },
			expected: NewRect(0, 0, 100, 50),
		},
		"min height raises": {
			style:    func(s *Style) { s.MinHeight = Vh(10) },
			expected: NewRect(0, 0, 60, 60),
		},
		"max height lowers": {
			style:    func(s *Style) { s.MaxHeight = Percent(10) },
			expected: NewRect(0, 0, 60, 10),
		},
		"within bounds untouched": {
			style:    func(s *Style) { s.MinWidth = Px(10); s.MaxWidth = Px(100) },
			expected: NewRect(0, 0, 60, 50),
		},
		"min wins over max": {
			style:    func(s *Style) { s.MinWidth = Px(80); s.MaxWidth = Px(20) },
			expected: NewRect(0, 0, 80, 50),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			child := fixedStyle(60, 50)
			tt.style(&child)
			tree, _, kids := newTestTree(fixedStyle(200, 100), child)
			Calculate(tree, NewContext(800, 600, 16))
			assertRect(t, "child", tree.Rect(kids[0]), tt.expected)
		})
	}
}

func TestCalculate_MinMaxRecorded(t *testing.T) {
	child := fixedStyle(60, 50)
	child.MinWidth = Percent(10)
	child.MaxHeight = Rem(2)

	tree, _, kids := newTestTree(fixedStyle(200, 100), child)
	Calculate(tree, NewContext(800, 600, 16))

	l := tree.Layout(kids[0])
	if !l.MinWidth.Set || !approx(l.MinWidth.Px, 20) {
		t.Errorf("MinWidth = %+v, want 20px", l.MinWidth)
	}
	if !l.MaxHeight.Set || !approx(l.MaxHeight.Px, 32) {
		t.Errorf("MaxHeight = %+v, want 32px", l.MaxHeight)
	}
	if l.MaxWidth.Set || l.MinHeight.Set {
		t.Errorf("undeclared bounds should not be set: %+v", l)
	}
}

func TestCalculate_AspectRatio(t *testing.T) {
	type tc struct {
		style    func(s *Style)
		expected Rect
	}

	tests := map[string]tc{
		"width drives height": {
			style:    func(s *Style) { s.Width = Px(300); s.AspectRatio = 2 },
			expected: NewRect(0, 0, 300, 150),
		},
		"zero ratio ignored": {
			style:    func(s *Style) { s.Width = Px(300); s.Height = Px(7); s.AspectRatio = 0 },
			expected: NewRect(0, 0, 300, 7),
		},
		"negative ratio ignored": {
			style:    func(s *Style) { s.Width = Px(300); s.Height = Px(7); s.AspectRatio = -1 },
			expected: NewRect(0, 0, 300, 7),
		},
		"applied before width clamp": {
			// Height derives from the unclamped 300 and keeps 150.
			style:    func(s *Style) { s.Width = Px(300); s.MaxWidth = Px(100); s.AspectRatio = 2 },
			expected: NewRect(0, 0, 100, 150),
		},
		"height clamp still applies": {
			style:    func(s *Style) { s.Width = Px(300); s.MaxHeight = Px(90); s.AspectRatio = 2 },
			expected: NewRect(0, 0, 300, 90),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := fixedStyle(0, 999)
			tt.style(&s)
			tree := NewTree()
			id := tree.NewNode(s)
			Calculate(tree, NewContext(800, 600, 16), id)
			assertRect(t, "rect", tree.Rect(id), tt.expected)
		})
	}
}

func TestCalculate_ChildrenUseClampedParent(t *testing.T) {
	parent := fixedStyle(500, 100)
	parent.MaxWidth = Px(200)
	child := DefaultStyle()
	child.Width = Percent(50)
	child.Height = Percent(100)

	tree, _, kids := newTestTree(parent, child)
	Calculate(tree, NewContext(800, 600, 16))

	assertRect(t, "child", tree.Rect(kids[0]), NewRect(0, 0, 100, 100))
}

func TestCalculate_Idempotent(t *testing.T) {
	tree := NewTree()
	rootStyle := DefaultStyle()
	rootStyle.Width, rootStyle.Height = Vw(100), Vh(100)
	rootStyle.Container = &Flex{Direction: Row, Justify: JustifySpaceEvenly, Align: AlignCenter}
	root := tree.NewNode(rootStyle)

	for i := 0; i < 4; i++ {
		s := DefaultStyle()
		s.Width = Calc(Percent(20), Px(float64(i)))
		s.Height = Em(float64(i + 1))
		s.MinWidth = Rem(1)
		s.AspectRatio = float64(i)
		if err := tree.AddChild(root, tree.NewNode(s)); err != nil {
			t.Fatal(err)
		}
	}

	ctx := NewContext(1024, 768, 16)
	Calculate(tree, ctx, root)
	first := make(map[NodeID]Layout)
	tree.Walk(root, func(id NodeID) bool {
		first[id] = tree.Layout(id)
		return true
	})

	Calculate(tree, ctx, root)
	tree.Walk(root, func(id NodeID) bool {
		if got := tree.Layout(id); got != first[id] {
			t.Errorf("node %d layout = %+v after second pass, want %+v", id, got, first[id])
		}
		return true
	})
}

func TestCalculate_OverwritesPreviousPass(t *testing.T) {
	s := DefaultStyle()
	s.Width = Vw(50)
	s.MinHeight = Px(10)
	tree := NewTree()
	id := tree.NewNode(s)

	Calculate(tree, NewContext(1000, 600, 16), id)
	if got := tree.Rect(id).Width; !approx(got, 500) {
		t.Fatalf("Width = %v, want 500", got)
	}

	// Dropping the constraint must not leave the old bound behind.
	s.MinHeight = nil
	tree.SetStyle(id, s)
	Calculate(tree, NewContext(400, 600, 16), id)

	l := tree.Layout(id)
	if !approx(l.Rect.Width, 200) {
		t.Errorf("Width = %v, want 200", l.Rect.Width)
	}
	if l.MinHeight.Set || l.Rect.Height != 0 {
		t.Errorf("stale min-height survived: %+v", l)
	}
}

func TestCalculate_MultipleRoots(t *testing.T) {
	tree := NewTree()
	a := DefaultStyle()
	a.Width = Percent(25)
	b := DefaultStyle()
	b.Height = Percent(25)
	idA := tree.NewNode(a)
	idB := tree.NewNode(b)

	Calculate(tree, NewContext(400, 200, 16), idA, idB)

	if got := tree.Rect(idA).Width; !approx(got, 100) {
		t.Errorf("root A width = %v, want 100", got)
	}
	if got := tree.Rect(idB).Height; !approx(got, 50) {
		t.Errorf("root B height = %v, want 50", got)
	}
}

func TestCalculate_DivideByZeroLeavesSiblings(t *testing.T) {
	captureWarnings(t)

	bad := DefaultStyle()
	bad.Width = MustExpression(Px(100), OpDiv, Px(0))
	bad.Height = Px(10)
	good := fixedStyle(30, 40)

	tree, _, kids := newTestTree(fixedStyle(200, 200), bad, good)
	Calculate(tree, NewContext(800, 600, 16))

	assertRect(t, "bad", tree.Rect(kids[0]), NewRect(0, 0, 0, 10))
	assertRect(t, "good", tree.Rect(kids[1]), NewRect(0, 0, 30, 40))
}

func TestCalculate_EmptyTree(t *testing.T) {
	tree := NewTree()
	// Must not panic.
	Calculate(tree, NewContext(800, 600, 16))
	Calculate(tree, NewContext(800, 600, 16), NodeID(3))
}
