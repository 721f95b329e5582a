package tool

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculator_Arithmetic(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"1+2*3", "7"},
		{"(1+2)*3", "9"},
		{"2**10", "1024"},
		{"2**-1", "0.5"},
		{"-2**2", "-4"},
		{"7//2", "3"},
		{"7%3", "1"},
		{"7/2", "3.5"},
		{"1.5 + 2.5", "4"},
		{"-(3+4)", "-7"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Calculator(tt.expr), "expr %q", tt.expr)
	}
}

func TestCalculator_FunctionsAndConstants(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"sqrt(16)", "4"},
		{"abs(-3)", "3"},
		{"fabs(-2.5)", "2.5"},
		{"min(3, 1, 2)", "1"},
		{"max(3, 1, 2)", "3"},
		{"factorial(5)", "120"},
		{"round(2.5)", "2"},
		{"round(3.14159, 2)", "3.14"},
		{"log(e)", "1"},
		{"log10(1000)", "3"},
		{"exp(0)", "1"},
		{"cos(0)", "1"},
		{"sin(0)", "0"},
		{"tan(0)", "0"},
		{"pi - pi", "0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Calculator(tt.expr), "expr %q", tt.expr)
	}
}

func TestCalculator_RejectsSuspiciousInput(t *testing.T) {
	// Assignment patterns and double underscores come back as error strings,
	// never as an unhandled failure.
	assert.Equal(t, "Error: invalid expression", Calculator("x=1"))
	assert.Equal(t, "Error: invalid expression", Calculator("__import__('os')"))
	assert.Equal(t, "Error: invalid expression", Calculator("foo = bar"))
	assert.Equal(t, "Error: invalid expression", Calculator("a == b"))
}

func TestCalculator_ErrorStrings(t *testing.T) {
	for _, expr := range []string{
		"",
		"1/0",
		"5//0",
		"5%0",
		"sqrt(-1)",
		"log(0)",
		"factorial(-1)",
		"factorial(1.5)",
		"unknownfn(1)",
		"unknownname",
		"1+",
		"(1+2",
		"min()",
		"sqrt(1, 2)",
		"1 $ 2",
		"1..2",
	} {
		got := Calculator(expr)
		assert.Contains(t, got, "Error:", "expr %q should yield an error string, got %q", expr, got)
	}
}

func TestCalculator_NestedCalls(t *testing.T) {
	assert.Equal(t, "5", Calculator("sqrt(max(25, 16))"))
	assert.Equal(t, "10", Calculator("abs(min(-10, 5))"))
}
