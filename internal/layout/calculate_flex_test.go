package layout

import "testing"

// flexTree builds a flex container of the given size with fixed-size children.
func flexTree(width, height float64, flex *Flex, children ...Style) (*Tree, NodeID, []NodeID) {
	root := fixedStyle(width, height)
	root.Container = flex
	return newTestTree(root, children...)
}

func TestCalculate_JustifyModes(t *testing.T) {
	type tc struct {
		justify   Justify
		widths    []float64
		gap       float64
		container float64
		expected  []float64
	}

	tests := map[string]tc{
		"start": {
			justify: JustifyStart, widths: []float64{20, 20}, gap: 5, container: 100,
			expected: []float64{0, 25},
		},
		"end": {
			justify: JustifyEnd, widths: []float64{20, 20}, gap: 5, container: 100,
			expected: []float64{55, 80},
		},
		"center": {
			justify: JustifyCenter, widths: []float64{50, 50}, gap: 10, container: 200,
			expected: []float64{45, 105},
		},
		"space between": {
			justify: JustifySpaceBetween, widths: []float64{100, 100, 100}, gap: 0, container: 500,
			expected: []float64{0, 200, 400},
		},
		"space between ignores gap": {
			justify: JustifySpaceBetween, widths: []float64{100, 100, 100}, gap: 30, container: 500,
			expected: []float64{0, 200, 400},
		},
		"space between single child": {
			justify: JustifySpaceBetween, widths: []float64{100}, gap: 0, container: 500,
			expected: []float64{0},
		},
		"space around": {
			justify: JustifySpaceAround, widths: []float64{20, 20}, gap: 0, container: 100,
			// free 60, 30 per child, 15 at the edges
			expected: []float64{15, 65},
		},
		"space evenly": {
			justify: JustifySpaceEvenly, widths: []float64{20, 20}, gap: 0, container: 100,
			// free 60 split into 3
			expected: []float64{20, 60},
		},
		"overflowing center goes negative": {
			justify: JustifyCenter, widths: []float64{80, 80}, gap: 0, container: 100,
			expected: []float64{-30, 50},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			children := make([]Style, len(tt.widths))
			for i, w := range tt.widths {
				children[i] = fixedStyle(w, 10)
			}
			tree, _, kids := flexTree(tt.container, 50,
				&Flex{Direction: Row, Justify: tt.justify, Gap: Px(tt.gap)}, children...)

			Calculate(tree, NewContext(800, 600, 16))

			for i, want := range tt.expected {
				r := tree.Rect(kids[i])
				if !approx(r.X, want) {
					t.Errorf("child %d X = %v, want %v", i, r.X, want)
				}
				if !approx(r.Width, tt.widths[i]) {
					t.Errorf("child %d Width = %v, want %v", i, r.Width, tt.widths[i])
				}
			}
		})
	}
}

func TestJustifyOffsetAndSpacing(t *testing.T) {
	type tc struct {
		justify         Justify
		mainSize        float64
		childSum        float64
		gap             float64
		count           int
		offset, spacing float64
	}

	tests := map[string]tc{
		"start uses gap":        {JustifyStart, 100, 40, 5, 2, 0, 5},
		"end":                   {JustifyEnd, 100, 40, 5, 2, 55, 5},
		"center":                {JustifyCenter, 200, 100, 10, 2, 45, 10},
		"between":               {JustifySpaceBetween, 500, 300, 0, 3, 0, 100},
		"between one child":     {JustifySpaceBetween, 500, 100, 7, 1, 0, 0},
		"around":                {JustifySpaceAround, 100, 40, 0, 2, 15, 30},
		"evenly":                {JustifySpaceEvenly, 100, 40, 0, 2, 20, 20},
		"no children":           {JustifyCenter, 100, 0, 10, 0, 0, 0},
		"negative free between": {JustifySpaceBetween, 100, 160, 0, 3, 0, -30},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			offset, spacing := justifyOffsetAndSpacing(tt.justify, tt.mainSize, tt.childSum, tt.gap, tt.count)
			if !approx(offset, tt.offset) || !approx(spacing, tt.spacing) {
				t.Errorf("justifyOffsetAndSpacing() = (%v, %v), want (%v, %v)",
					offset, spacing, tt.offset, tt.spacing)
			}
		})
	}
}

func TestCalculate_JustifyModes_Column(t *testing.T) {
	tree, _, kids := flexTree(50, 200,
		&Flex{Direction: Column, Justify: JustifyCenter, Gap: Px(10)},
		fixedStyle(10, 50), fixedStyle(10, 50))

	Calculate(tree, NewContext(800, 600, 16))

	assertRect(t, "first", tree.Rect(kids[0]), NewRect(0, 45, 10, 50))
	assertRect(t, "second", tree.Rect(kids[1]), NewRect(0, 105, 10, 50))
}

func TestCalculate_ReverseDirections(t *testing.T) {
	type tc struct {
		direction Direction
		expected  []Rect
	}

	tests := map[string]tc{
		"row reverse": {
			direction: RowReverse,
			// Visited as c, b, a.
			expected: []Rect{NewRect(50, 0, 10, 5), NewRect(30, 0, 20, 5), NewRect(0, 0, 30, 5)},
		},
		"column reverse": {
			direction: ColumnReverse,
			expected: []Rect{NewRect(0, 50, 10, 5), NewRect(0, 30, 20, 5), NewRect(0, 0, 30, 5)},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			children := []Style{fixedStyle(10, 5), fixedStyle(20, 5), fixedStyle(30, 5)}
			if !tt.direction.IsRow() {
				// Swap so the main-axis sizes stay 10, 20, 30.
				for i := range children {
					children[i].Width, children[i].Height = children[i].Height, children[i].Width
				}
				for i := range tt.expected {
					r := &tt.expected[i]
					r.Width, r.Height = r.Height, r.Width
				}
			}
			tree, _, kids := flexTree(100, 100, &Flex{Direction: tt.direction}, children...)
			Calculate(tree, NewContext(800, 600, 16))

			for i, want := range tt.expected {
				assertRect(t, "child", tree.Rect(kids[i]), want)
			}
		})
	}
}

func TestCalculate_AlignModes(t *testing.T) {
	type tc struct {
		align    Align
		expected Rect
	}

	tests := map[string]tc{
		"start":    {align: AlignStart, expected: NewRect(0, 0, 20, 10)},
		"end":      {align: AlignEnd, expected: NewRect(0, 40, 20, 10)},
		"center":   {align: AlignCenter, expected: NewRect(0, 20, 20, 10)},
		"stretch":  {align: AlignStretch, expected: NewRect(0, 0, 20, 50)},
		"baseline": {align: AlignBaseline, expected: NewRect(0, 0, 20, 10)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tree, _, kids := flexTree(100, 50, &Flex{Direction: Row, Align: tt.align}, fixedStyle(20, 10))
			Calculate(tree, NewContext(800, 600, 16))
			assertRect(t, "child", tree.Rect(kids[0]), tt.expected)
		})
	}
}

func TestCalculate_AlignModes_Column(t *testing.T) {
	type tc struct {
		align    Align
		expected Rect
	}

	tests := map[string]tc{
		"end":     {align: AlignEnd, expected: NewRect(80, 0, 20, 10)},
		"center":  {align: AlignCenter, expected: NewRect(40, 0, 20, 10)},
		"stretch": {align: AlignStretch, expected: NewRect(0, 0, 100, 10)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tree, _, kids := flexTree(100, 50, &Flex{Direction: Column, Align: tt.align}, fixedStyle(20, 10))
			Calculate(tree, NewContext(800, 600, 16))
			assertRect(t, "child", tree.Rect(kids[0]), tt.expected)
		})
	}
}

func TestCalculate_FlexOverridesDeclaredPosition(t *testing.T) {
	child := fixedStyle(10, 10)
	child.X, child.Y = Px(300), Px(300)

	tree, _, kids := flexTree(100, 100, &Flex{Direction: Row, Justify: JustifyEnd}, child)
	Calculate(tree, NewContext(800, 600, 16))

	assertRect(t, "child", tree.Rect(kids[0]), NewRect(90, 0, 10, 10))
}

func TestCalculate_FlexGapUnits(t *testing.T) {
	type tc struct {
		gap      Length
		expected float64
	}

	tests := map[string]tc{
		"nil gap":             {gap: nil, expected: 10},
		"pixels":              {gap: Px(4), expected: 14},
		"percent of main":     {gap: Percent(10), expected: 30},
		"em of container":     {gap: Em(1), expected: 30},
		"rem":                 {gap: Rem(1), expected: 26},
		"expression":          {gap: Calc(Px(1), Percent(1)), expected: 13},
		"divide by zero is 0": {gap: MustExpression(Px(1), OpDiv, Number(0)), expected: 10},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			captureWarnings(t)
			root := fixedStyle(200, 50)
			root.FontSize = Px(20)
			root.Container = &Flex{Direction: Row, Gap: tt.gap}
			tree, _, kids := newTestTree(root, fixedStyle(10, 10), fixedStyle(10, 10))

			Calculate(tree, NewContext(800, 600, 16))

			if got := tree.Rect(kids[1]).X; !approx(got, tt.expected) {
				t.Errorf("second child X = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCalculate_WrapIsSingleLine(t *testing.T) {
	for _, wrap := range []Wrap{NoWrap, WrapLines, WrapReverse} {
		t.Run(wrap.String(), func(t *testing.T) {
			tree, _, kids := flexTree(100, 100, &Flex{Direction: Row, Wrap: wrap},
				fixedStyle(60, 10), fixedStyle(60, 10))
			Calculate(tree, NewContext(800, 600, 16))

			// The second child overflows the line instead of wrapping.
			assertRect(t, "second", tree.Rect(kids[1]), NewRect(60, 0, 60, 10))
		})
	}
}

func TestCalculate_FlexEmptyContainer(t *testing.T) {
	tree := NewTree()
	s := fixedStyle(100, 100)
	s.Container = &Flex{Justify: JustifySpaceBetween}
	id := tree.NewNode(s)

	Calculate(tree, NewContext(800, 600, 16), id)
	assertRect(t, "container", tree.Rect(id), NewRect(0, 0, 100, 100))
}

func TestCalculate_TypedNilContainer(t *testing.T) {
	s := fixedStyle(100, 100)
	s.Container = (*Flex)(nil)
	child := fixedStyle(10, 10)
	child.X = Px(7)
	tree, _, kids := newTestTree(s, child)

	Calculate(tree, NewContext(800, 600, 16))
	assertRect(t, "child", tree.Rect(kids[0]), NewRect(7, 0, 10, 10))
}
