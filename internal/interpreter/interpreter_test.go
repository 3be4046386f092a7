package interpreter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kristofer/ember/internal/lexer"
	"github.com/kristofer/ember/internal/parser"
)

// run scans, parses, and interprets src, returning captured stdout.
func run(t *testing.T, src string) (string, error) {
	t.Helper()
	toks, err := lexer.New(src).Scan()
	if err != nil {
		t.Fatalf("scan error: %v", err)
	}
	stmts, err := parser.New(toks).Parse()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	var out bytes.Buffer
	in := New(&out, false)
	runErr := in.Interpret(stmts)
	return out.String(), runErr
}

func TestScenario_Arithmetic(t *testing.T) {
	out, err := run(t, `print 1 + 2;`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "3\n" {
		t.Errorf("expected %q, got %q", "3\n", out)
	}
}

func TestScenario_StringConcat(t *testing.T) {
	out, err := run(t, `print "foo" + "bar";`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "foobar\n" {
		t.Errorf("expected %q, got %q", "foobar\n", out)
	}
}

func TestScenario_BlockScopeShadowing(t *testing.T) {
	out, err := run(t, `var a = 1; { var a = 2; print a; } print a;`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "2\n1\n" {
		t.Errorf("expected %q, got %q", "2\n1\n", out)
	}
}

func TestScenario_Recursion(t *testing.T) {
	out, err := run(t, `fun f(n){ if (n<=1) return n; return f(n-1)+f(n-2); } print f(10);`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "55\n" {
		t.Errorf("expected %q, got %q", "55\n", out)
	}
}

func TestScenario_ClosureCapturesOuterBlockAfterItExits(t *testing.T) {
	out, err := run(t, `fun makeCounter(){ var i=0; fun c(){ i=i+1; return i; } return c; } var c=makeCounter(); print c(); print c();`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "1\n2\n" {
		t.Errorf("expected %q, got %q", "1\n2\n", out)
	}
}

func TestScenario_ForLoop(t *testing.T) {
	out, err := run(t, `for (var i=0; i<3; i=i+1) print i;`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "0\n1\n2\n" {
		t.Errorf("expected %q, got %q", "0\n1\n2\n", out)
	}
}

func TestScenario_EqualityAcrossTypes(t *testing.T) {
	out, err := run(t, `print nil == nil; print nil == false; print 1 == "1";`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "true\nfalse\nfalse\n" {
		t.Errorf("expected %q, got %q", "true\nfalse\nfalse\n", out)
	}
}

func TestScenario_Precedence(t *testing.T) {
	out, err := run(t, `print -1 + 2 * 3;`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "5\n" {
		t.Errorf("expected %q, got %q", "5\n", out)
	}
}

func TestScenario_TypeErrorOnAdd(t *testing.T) {
	_, err := run(t, `print "a" + 1;`)
	if err == nil {
		t.Fatalf("expected runtime error")
	}
	if !strings.Contains(err.Error(), "numbers or two strings") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestScenario_Clock(t *testing.T) {
	out, err := run(t, `print clock() >= 0;`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "true\n" {
		t.Errorf("expected %q, got %q", "true\n", out)
	}
}

func TestOr_ShortCircuitsRightOperand(t *testing.T) {
	out, err := run(t, `var ran = false; fun sideEffect(){ ran = true; return true; } true or sideEffect(); print ran;`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "false\n" {
		t.Errorf("expected right operand of a truthy 'or' to be skipped, got %q", out)
	}
}

func TestAnd_ShortCircuitsRightOperand(t *testing.T) {
	out, err := run(t, `var ran = false; fun sideEffect(){ ran = true; return true; } false and sideEffect(); print ran;`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "false\n" {
		t.Errorf("expected right operand of a falsy 'and' to be skipped, got %q", out)
	}
}

func TestOr_ReturnsUncoercedLeftValue(t *testing.T) {
	out, err := run(t, `print 1 or 2;`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "1\n" {
		t.Errorf("expected the left value itself, got %q", out)
	}
}

func TestUndefinedVariable_IsRuntimeError(t *testing.T) {
	_, err := run(t, `print nosuch;`)
	if err == nil {
		t.Fatalf("expected runtime error for undefined variable")
	}
}

func TestCallOfNonCallable_IsRuntimeError(t *testing.T) {
	_, err := run(t, `var x = 1; x();`)
	if err == nil {
		t.Fatalf("expected runtime error calling a non-callable")
	}
}

func TestArityMismatch_IsRuntimeError(t *testing.T) {
	_, err := run(t, `fun f(a,b){ return a+b; } f(1);`)
	if err == nil {
		t.Fatalf("expected runtime error for arity mismatch")
	}
}

func TestStrayTopLevelReturn_IsRuntimeError(t *testing.T) {
	_, err := run(t, `return 1;`)
	if err == nil {
		t.Fatalf("expected a stray top-level return to be rejected")
	}
}

func TestNumberFormatting_IntegerValuedDoublesPrintWithoutDecimal(t *testing.T) {
	out, err := run(t, `print 10 / 2;`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "5\n" {
		t.Errorf("expected %q, got %q", "5\n", out)
	}
}

func TestDivisionByZero_ProducesIEEEInfinity(t *testing.T) {
	out, err := run(t, `print 1 / 0;`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "+Inf\n" {
		t.Errorf("expected %q, got %q", "+Inf\n", out)
	}
}
