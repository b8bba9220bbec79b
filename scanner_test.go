package polish

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestScanNumbers(t *testing.T) {
	testScan(t, "1", Literal(1))
	testScan(t, "  7   ", Literal(7))
	testScan(t, "-123", Literal(-123))
	testScan(t, "3.25", Literal(3.25))
	testScan(t, "1e3", Literal(1000))
	testScan(t, "-0.5", Literal(-0.5))
}

func TestScanOperators(t *testing.T) {
	testScan(t, "+ - * /", OperatorTok(Add), OperatorTok(Sub), OperatorTok(Mul), OperatorTok(Div))
	testScan(t, "== != < <= > >=",
		OperatorTok(Eq), OperatorTok(NotEq), OperatorTok(Lt),
		OperatorTok(LtEq), OperatorTok(Gt), OperatorTok(GtEq))
}

func TestScanDashes(t *testing.T) {
	testScan(t, "-", OperatorTok(Sub))
	testScan(t, "- 5", OperatorTok(Sub), Literal(5))
	testScan(t, "-5", Literal(-5))
	testScanError(t, "-abc")
	testScanError(t, "--5")
}

func TestScanNames(t *testing.T) {
	testScan(t, "abc", Name("abc"))
	testScan(t, "abc5", Name("abc5"))
	testScan(t, "my-var", Name("my-var"))
	testScan(t, "myVar", Name("myVar"))
	testScan(t, "pi", Name("pi"))
}

func TestScanKeywords(t *testing.T) {
	testScan(t, "set", KeywordTok(Set))
	testScan(t, "def", KeywordTok(Def))
	testScan(t, "setter", Name("setter"))
	testScan(t, "Set", Name("Set"))
}

func TestScanParens(t *testing.T) {
	testScan(t, "()", LPar(), RPar())
	testScan(t, "(+ 2 5)", LPar(), OperatorTok(Add), Literal(2), Literal(5), RPar())
	testScan(t, "  ( +   1   (+   2 3   )   )  ",
		LPar(), OperatorTok(Add), Literal(1),
		LPar(), OperatorTok(Add), Literal(2), Literal(3), RPar(), RPar())
	testScan(t, "(sqrt(pow 2 2))",
		LPar(), Name("sqrt"), LPar(), Name("pow"), Literal(2), Literal(2), RPar(), RPar())
	testScan(t, "(set x 10)", LPar(), KeywordTok(Set), Name("x"), Literal(10), RPar())
}

func TestScanEmpty(t *testing.T) {
	testScan(t, "")
	testScan(t, "   \t ")
}

func TestScanErrors(t *testing.T) {
	testScanError(t, "@")
	testScanError(t, "(+ 1 @)")
	testScanError(t, "1abc")
	testScanError(t, "1.2.3")
	testScanError(t, "+=")
	testScanError(t, "_x")
	testScanError(t, "0x1p4")
	testScanError(t, "-0X1p4")
	testScanError(t, "1_000")
	testScanError(t, "(+ 0x1p4 1_0)")

	_, err := Scan("(+ 1 2x)")
	assert.EqualError(t, err, "Invalid number '2x'")
	_, err = Scan("(+ 1 #)")
	assert.EqualError(t, err, "Unrecognized token '#'")
	kind, ok := KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, LexicalError, kind)

	_, err = Scan("(+ 0x10p0 1)")
	assert.EqualError(t, err, "Invalid number '0x10p0'")
	_, err = Scan("1_0")
	assert.EqualError(t, err, "Invalid number '1_0'")
}

func TestScanNonASCIIDigits(t *testing.T) {
	_, err := Scan("٣")
	assert.EqualError(t, err, "Unrecognized token '٣'")
	_, err = Scan("(+ 1 ５)")
	assert.EqualError(t, err, "Unrecognized token '５'")
	testScan(t, "0123", Literal(123))
}

func testScan(t *testing.T, input string, output ...Token) {
	t.Helper()
	actual, err := Scan(input)
	if !assert.NoError(t, err, "Input: %q", input) {
		return
	}
	if output == nil {
		output = []Token{}
	}
	if diff := cmp.Diff(output, actual); diff != "" {
		t.Errorf("Input: %q\nTokens mismatch (-want +got):\n%s", input, diff)
	}
}

func testScanError(t *testing.T, input string) {
	t.Helper()
	actual, err := Scan(input)
	assert.Error(t, err, "Input: %q\nActual: %s", input, PrintTokens(actual))
}
