package bigo

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  Complexity
	}{
		{"O(1)", ComplexityConstant},
		{"o(1)", ComplexityConstant},
		{"constant", ComplexityConstant},
		{"O(log n)", ComplexityLogarithmic},
		{"O(log(n))", ComplexityLogarithmic},
		{"O(log2 n)", ComplexityLogarithmic},
		{"logarithmic", ComplexityLogarithmic},
		{"O(n)", ComplexityLinear},
		{"n", ComplexityLinear},
		{"Linear", ComplexityLinear},
		{"O(n log n)", ComplexityLinearithmic},
		{"O(nlogn)", ComplexityLinearithmic},
		{"O(n*log(n))", ComplexityLinearithmic},
		{"O(n^2)", ComplexityQuadratic},
		{"O(n²)", ComplexityQuadratic},
		{"n^2", ComplexityQuadratic},
		{"O(n*n)", ComplexityQuadratic},
		{"quadratic", ComplexityQuadratic},
		{"O(n^3)", ComplexityCubic},
		{"O(n³)", ComplexityCubic},
		{"O(2^n)", ComplexityExponential},
		{"O(2ⁿ)", ComplexityExponential},
		{"exponential", ComplexityExponential},
		{"O(sqrt(n))", ComplexitySquareRoot},
		{"O(√n)", ComplexitySquareRoot},
		{"  O(n)  ", ComplexityLinear},
	}

	for _, tt := range tests {
		if got := Normalize(tt.input); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalize_Fallback(t *testing.T) {
	tests := []string{
		"",
		"O(n!)",
		"fast",
		"O(banana)",
		"{}",
	}

	for _, input := range tests {
		if got := Normalize(input); got != ComplexityUnknown {
			t.Errorf("Normalize(%q) = %q, want %q", input, got, ComplexityUnknown)
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	// Normalizing a canonical display string yields the class itself.
	for _, c := range AllComplexities() {
		if got := Normalize(c.Display()); got != c {
			t.Errorf("Normalize(%q) = %q, want %q", c.Display(), got, c)
		}
	}
	if got := Normalize(ComplexityUnknown.Display()); got != ComplexityUnknown {
		t.Errorf("Normalize(%q) = %q, want unknown", ComplexityUnknown.Display(), got)
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		selected string
		correct  string
		want     bool
	}{
		{"O(n^2)", "O(n²)", true},
		{"quadratic", "O(n^2)", true},
		{"O(n)", "O(n log n)", false},
		{"O(2^n)", "O(2ⁿ)", true},
		{"garbage", "O(n)", false},
		{"O(n)", "garbage", false},
	}

	for _, tt := range tests {
		if got := Evaluate(tt.selected, tt.correct); got != tt.want {
			t.Errorf("Evaluate(%q, %q) = %v, want %v", tt.selected, tt.correct, got, tt.want)
		}
	}
}

func TestEvaluate_SymmetricUnderNormalization(t *testing.T) {
	pairs := [][2]string{
		{"O(n²)", "n^2"},
		{"O(log n)", "O(n)"},
		{"linear", "O(n)"},
	}
	for _, p := range pairs {
		direct := Evaluate(p[0], p[1])
		normed := Evaluate(string(Normalize(p[0])), string(Normalize(p[1])))
		if direct != normed {
			t.Errorf("Evaluate(%q, %q) = %v but normalized comparison = %v", p[0], p[1], direct, normed)
		}
	}
}
