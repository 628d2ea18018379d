package layout

import "testing"

func TestDimension_Constructors(t *testing.T) {
	type tc struct {
		value  Dimension
		unit   Unit
		amount float64
		text   string
	}

	tests := map[string]tc{
		"Px":      {value: Px(12), unit: UnitPixels, amount: 12, text: "12px"},
		"Percent": {value: Percent(50), unit: UnitPercent, amount: 50, text: "50%"},
		"Vw":      {value: Vw(80), unit: UnitViewportWidth, amount: 80, text: "80vw"},
		"Vh":      {value: Vh(10), unit: UnitViewportHeight, amount: 10, text: "10vh"},
		"Rem":     {value: Rem(2), unit: UnitRootFont, amount: 2, text: "2rem"},
		"Em":      {value: Em(1.5), unit: UnitParentFont, amount: 1.5, text: "1.5em"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if tt.value.Unit != tt.unit {
				t.Errorf("Unit = %v, want %v", tt.value.Unit, tt.unit)
			}
			if tt.value.Amount != tt.amount {
				t.Errorf("Amount = %v, want %v", tt.value.Amount, tt.amount)
			}
			if got := tt.value.String(); got != tt.text {
				t.Errorf("String() = %q, want %q", got, tt.text)
			}
		})
	}
}

func TestContext_Resolve(t *testing.T) {
	ctx := NewContext(1000, 500, 16)

	type tc struct {
		length   Length
		ref      Reference
		expected float64
	}

	tests := map[string]tc{
		"nil length is zero": {
			length:   nil,
			ref:      RootReference(AxisX),
			expected: 0,
		},
		"number is pixels": {
			length:   Number(42),
			ref:      ParentReference(AxisX, 300, 20),
			expected: 42,
		},
		"pixels unchanged": {
			length:   Px(33),
			ref:      ParentReference(AxisX, 300, 20),
			expected: 33,
		},
		"percent of parent": {
			length:   Percent(50),
			ref:      ParentReference(AxisX, 200, 16),
			expected: 100,
		},
		"percent of parent height": {
			length:   Percent(25),
			ref:      ParentReference(AxisY, 80, 16),
			expected: 20,
		},
		"root percent falls back to viewport width": {
			length:   Percent(10),
			ref:      RootReference(AxisX),
			expected: 100,
		},
		"root percent falls back to viewport height": {
			length:   Percent(10),
			ref:      RootReference(AxisY),
			expected: 50,
		},
		"vw ignores parent": {
			length:   Vw(80),
			ref:      ParentReference(AxisX, 300, 16),
			expected: 800,
		},
		"vw on vertical axis still uses width": {
			length:   Vw(10),
			ref:      ParentReference(AxisY, 300, 16),
			expected: 100,
		},
		"vh ignores parent": {
			length:   Vh(50),
			ref:      ParentReference(AxisX, 300, 16),
			expected: 250,
		},
		"rem ignores parent font": {
			length:   Rem(2),
			ref:      ParentReference(AxisX, 300, 40),
			expected: 32,
		},
		"em uses parent font": {
			length:   Em(2),
			ref:      ParentReference(AxisX, 300, 20),
			expected: 40,
		},
		"em without font uses root font": {
			length:   Em(2),
			ref:      RootReference(AxisX),
			expected: 32,
		},
		"font percent of parent font": {
			length:   Percent(150),
			ref:      ParentReference(AxisFont, 0, 20),
			expected: 30,
		},
		"font percent without parent uses root font": {
			length:   Percent(50),
			ref:      RootReference(AxisFont),
			expected: 8,
		},
		"nil expression pointer is zero": {
			length:   (*Expression)(nil),
			ref:      RootReference(AxisX),
			expected: 0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := ctx.Resolve(tt.length, tt.ref); !approx(got, tt.expected) {
				t.Errorf("Resolve(%v) = %v, want %v", tt.length, got, tt.expected)
			}
		})
	}
}

func TestContext_Resolve_PercentProperty(t *testing.T) {
	ctx := NewContext(1000, 1000, 16)
	for _, p := range []float64{0, 12.5, 50, 100, 250} {
		for _, r := range []float64{0, 1, 200, 333} {
			got := ctx.Resolve(Percent(p), ParentReference(AxisX, r, 16))
			if want := p / 100 * r; !approx(got, want) {
				t.Errorf("Resolve(%v%% of %v) = %v, want %v", p, r, got, want)
			}
		}
	}
}

func TestContext_Resolve_UnknownUnitWarns(t *testing.T) {
	buf := captureWarnings(t)
	ctx := NewContext(100, 100, 16)

	got := ctx.Resolve(Dimension{Amount: 5, Unit: Unit(99)}, RootReference(AxisX))
	if got != 0 {
		t.Errorf("Resolve(unknown unit) = %v, want 0", got)
	}
	if buf.Len() == 0 {
		t.Error("expected a warning for an unknown unit")
	}
}
