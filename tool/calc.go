package tool

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Calculator evaluates a restricted arithmetic expression and returns the
// result (or an "Error: ..." string) as the reply. The grammar covers
// numbers, + - * / ** % //, parentheses, unary signs and a fixed whitelist
// of named functions and constants. It is a dedicated tokenizer plus
// recursive-descent parser over that closed grammar; nothing outside it can
// be expressed, so no escape analysis is needed.
func Calculator(expression string) string {
	if strings.Contains(expression, "__") || assignPattern.MatchString(expression) {
		return "Error: invalid expression"
	}
	value, err := evalExpression(expression)
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}
	return formatNumber(value)
}

// assignPattern matches an identifier followed by "=", the shape of an
// assignment attempt.
var assignPattern = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*\s*=`)

// calcConstants are the whitelisted named constants.
var calcConstants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// calcFunctions are the whitelisted named functions. Each validates its own
// arity and domain.
var calcFunctions = map[string]func(args []float64) (float64, error){
	"sqrt": unaryFn("sqrt", func(x float64) (float64, error) {
		if x < 0 {
			return 0, fmt.Errorf("math domain error")
		}
		return math.Sqrt(x), nil
	}),
	"log": func(args []float64) (float64, error) {
		switch len(args) {
		case 1:
			return checkedLog(args[0], math.E)
		case 2:
			return checkedLog(args[0], args[1])
		default:
			return 0, fmt.Errorf("log expects 1 or 2 arguments")
		}
	},
	"log10": unaryFn("log10", func(x float64) (float64, error) {
		if x <= 0 {
			return 0, fmt.Errorf("math domain error")
		}
		return math.Log10(x), nil
	}),
	"exp":   unaryFn("exp", func(x float64) (float64, error) { return math.Exp(x), nil }),
	"sin":   unaryFn("sin", func(x float64) (float64, error) { return math.Sin(x), nil }),
	"cos":   unaryFn("cos", func(x float64) (float64, error) { return math.Cos(x), nil }),
	"tan":   unaryFn("tan", func(x float64) (float64, error) { return math.Tan(x), nil }),
	"fabs":  unaryFn("fabs", func(x float64) (float64, error) { return math.Abs(x), nil }),
	"abs":   unaryFn("abs", func(x float64) (float64, error) { return math.Abs(x), nil }),
	"round": func(args []float64) (float64, error) {
		switch len(args) {
		case 1:
			return math.RoundToEven(args[0]), nil
		case 2:
			shift := math.Pow(10, args[1])
			return math.RoundToEven(args[0]*shift) / shift, nil
		default:
			return 0, fmt.Errorf("round expects 1 or 2 arguments")
		}
	},
	"min": variadicFn("min", math.Min),
	"max": variadicFn("max", math.Max),
	"factorial": unaryFn("factorial", func(x float64) (float64, error) {
		if x < 0 || x != math.Trunc(x) {
			return 0, fmt.Errorf("factorial expects a non-negative integer")
		}
		result := 1.0
		for i := 2.0; i <= x; i++ {
			result *= i
		}
		if math.IsInf(result, 0) {
			return 0, fmt.Errorf("result too large")
		}
		return result, nil
	}),
}

func unaryFn(name string, fn func(float64) (float64, error)) func([]float64) (float64, error) {
	return func(args []float64) (float64, error) {
		if len(args) != 1 {
			return 0, fmt.Errorf("%s expects 1 argument", name)
		}
		return fn(args[0])
	}
}

func variadicFn(name string, fn func(a, b float64) float64) func([]float64) (float64, error) {
	return func(args []float64) (float64, error) {
		if len(args) == 0 {
			return 0, fmt.Errorf("%s expects at least 1 argument", name)
		}
		acc := args[0]
		for _, v := range args[1:] {
			acc = fn(acc, v)
		}
		return acc, nil
	}
}

func checkedLog(x, base float64) (float64, error) {
	if x <= 0 || base <= 0 || base == 1 {
		return 0, fmt.Errorf("math domain error")
	}
	return math.Log(x) / math.Log(base), nil
}

// formatNumber renders integral values without a decimal point and anything
// else in the shortest float form.
func formatNumber(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "Error: result is not a finite number"
	}
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// ---- tokenizer ----

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokIdent
	tokOp    // + - * / // % ** ( ) ,
	tokEnd
)

type token struct {
	kind tokenKind
	text string
	num  float64
}

func tokenize(input string) ([]token, error) {
	var tokens []token
	i := 0
	for i < len(input) {
		c := input[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c >= '0' && c <= '9' || c == '.':
			start := i
			seenDot := false
			for i < len(input) && (input[i] >= '0' && input[i] <= '9' || input[i] == '.') {
				if input[i] == '.' {
					if seenDot {
						return nil, fmt.Errorf("malformed number")
					}
					seenDot = true
				}
				i++
			}
			text := input[start:i]
			num, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, fmt.Errorf("malformed number %q", text)
			}
			tokens = append(tokens, token{kind: tokNumber, text: text, num: num})
		case c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_':
			start := i
			for i < len(input) && (input[i] >= 'a' && input[i] <= 'z' ||
				input[i] >= 'A' && input[i] <= 'Z' ||
				input[i] >= '0' && input[i] <= '9' || input[i] == '_') {
				i++
			}
			tokens = append(tokens, token{kind: tokIdent, text: input[start:i]})
		case c == '*':
			if i+1 < len(input) && input[i+1] == '*' {
				tokens = append(tokens, token{kind: tokOp, text: "**"})
				i += 2
			} else {
				tokens = append(tokens, token{kind: tokOp, text: "*"})
				i++
			}
		case c == '/':
			if i+1 < len(input) && input[i+1] == '/' {
				tokens = append(tokens, token{kind: tokOp, text: "//"})
				i += 2
			} else {
				tokens = append(tokens, token{kind: tokOp, text: "/"})
				i++
			}
		case c == '+' || c == '-' || c == '%' || c == '(' || c == ')' || c == ',':
			tokens = append(tokens, token{kind: tokOp, text: string(c)})
			i++
		default:
			return nil, fmt.Errorf("unexpected character %q", string(c))
		}
	}
	tokens = append(tokens, token{kind: tokEnd})
	return tokens, nil
}

// ---- recursive-descent parser / evaluator ----

type parser struct {
	tokens []token
	pos    int
}

func evalExpression(input string) (float64, error) {
	if strings.TrimSpace(input) == "" {
		return 0, fmt.Errorf("empty expression")
	}
	tokens, err := tokenize(input)
	if err != nil {
		return 0, err
	}
	p := &parser{tokens: tokens}
	value, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	if p.peek().kind != tokEnd {
		return 0, fmt.Errorf("unexpected token %q", p.peek().text)
	}
	return value, nil
}

func (p *parser) peek() token { return p.tokens[p.pos] }

func (p *parser) next() token {
	t := p.tokens[p.pos]
	if t.kind != tokEnd {
		p.pos++
	}
	return t
}

func (p *parser) acceptOp(ops ...string) (string, bool) {
	t := p.peek()
	if t.kind != tokOp {
		return "", false
	}
	for _, op := range ops {
		if t.text == op {
			p.next()
			return op, true
		}
	}
	return "", false
}

// expr := term (('+'|'-') term)*
func (p *parser) parseExpr() (float64, error) {
	left, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		op, ok := p.acceptOp("+", "-")
		if !ok {
			return left, nil
		}
		right, err := p.parseTerm()
		if err != nil {
			return 0, err
		}
		if op == "+" {
			left += right
		} else {
			left -= right
		}
	}
}

// term := unary (('*'|'/'|'//'|'%') unary)*
func (p *parser) parseTerm() (float64, error) {
	left, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	for {
		op, ok := p.acceptOp("*", "/", "//", "%")
		if !ok {
			return left, nil
		}
		right, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		switch op {
		case "*":
			left *= right
		case "/":
			if right == 0 {
				return 0, fmt.Errorf("division by zero")
			}
			left /= right
		case "//":
			if right == 0 {
				return 0, fmt.Errorf("division by zero")
			}
			left = math.Floor(left / right)
		case "%":
			if right == 0 {
				return 0, fmt.Errorf("division by zero")
			}
			// Floored modulo, matching the sign of the divisor.
			left = left - math.Floor(left/right)*right
		}
	}
}

// unary := ('+'|'-') unary | power
func (p *parser) parseUnary() (float64, error) {
	if op, ok := p.acceptOp("+", "-"); ok {
		value, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		if op == "-" {
			return -value, nil
		}
		return value, nil
	}
	return p.parsePower()
}

// power := primary ('**' unary)?   -- right associative
func (p *parser) parsePower() (float64, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return 0, err
	}
	if _, ok := p.acceptOp("**"); ok {
		exponent, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		result := math.Pow(base, exponent)
		if math.IsNaN(result) {
			return 0, fmt.Errorf("math domain error")
		}
		return result, nil
	}
	return base, nil
}

// primary := NUMBER | IDENT ('(' args ')')? | '(' expr ')'
func (p *parser) parsePrimary() (float64, error) {
	t := p.peek()
	switch t.kind {
	case tokNumber:
		p.next()
		return t.num, nil
	case tokIdent:
		p.next()
		if _, ok := p.acceptOp("("); ok {
			fn, known := calcFunctions[t.text]
			if !known {
				return 0, fmt.Errorf("unknown function %q", t.text)
			}
			args, err := p.parseArgs()
			if err != nil {
				return 0, err
			}
			return fn(args)
		}
		if value, known := calcConstants[t.text]; known {
			return value, nil
		}
		return 0, fmt.Errorf("unknown name %q", t.text)
	case tokOp:
		if t.text == "(" {
			p.next()
			value, err := p.parseExpr()
			if err != nil {
				return 0, err
			}
			if _, ok := p.acceptOp(")"); !ok {
				return 0, fmt.Errorf("missing closing parenthesis")
			}
			return value, nil
		}
	}
	return 0, fmt.Errorf("unexpected token %q", t.text)
}

// args := expr (',' expr)* ')'   -- opening '(' already consumed
func (p *parser) parseArgs() ([]float64, error) {
	if _, ok := p.acceptOp(")"); ok {
		return nil, nil
	}
	var args []float64
	for {
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, value)
		if _, ok := p.acceptOp(","); ok {
			continue
		}
		if _, ok := p.acceptOp(")"); ok {
			return args, nil
		}
		return nil, fmt.Errorf("missing closing parenthesis")
	}
}
