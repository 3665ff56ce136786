package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/reusee/taicalc/calc"
	"github.com/reusee/taicalc/cmds"
)

func TestEvalOnce(t *testing.T) {
	buf := new(bytes.Buffer)
	if err := evalOnce(buf, "2 + 3 * 4", true); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "(2 + (3 * 4))\n14\n" {
		t.Fatalf("got %q", buf.String())
	}

	buf.Reset()
	err := evalOnce(buf, "1 / 0", false)
	if !errors.Is(err, calc.ErrDivisionByZero) {
		t.Fatalf("got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("got %q", buf.String())
	}

	err = evalOnce(buf, "1 2", true)
	if !errors.Is(err, calc.ErrTrailingInput) {
		t.Fatalf("got %v", err)
	}
}

func TestEmptyExpressionFlag(t *testing.T) {
	if err := cmds.Execute([]string{"-e", ""}); err != nil {
		t.Fatal(err)
	}
	if !expr.set || expr.text != "" {
		t.Fatalf("got %+v", expr)
	}
	buf := new(bytes.Buffer)
	err := evalOnce(buf, expr.text, false)
	if !errors.Is(err, calc.ErrUnexpectedToken) {
		t.Fatalf("got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("got %q", buf.String())
	}
}
