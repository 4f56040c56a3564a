// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/arithlab/bignum/bignum"
	"github.com/arithlab/bignum/bignumstr"
)

// equalityOps lists the comparison operators recognised in a check
// expression, in priority order: the first one found anywhere in the
// expression wins, which is why "<=" and ">=" are listed ahead of the
// bare "<"/">" they'd otherwise be mistaken for a prefix of.
var equalityOps = []string{"==", "!=", "<=", ">=", "<", ">"}

// check evaluates one scripted expression "LHS OP RHS": OP is one of
// equalityOps, and LHS/RHS are each either a literal (decimal or
// 0x-prefixed hex) or a function application fn(arg, ...) over the
// public arithmetic API. It reports whether the comparison holds, and
// the two operands' decimal values for the caller to report on failure.
func check(expr string, capWords int) (ok bool, lhsStr, rhsStr string, err error) {
	op, idx := splitEquality(expr)
	if op == "" {
		return false, "", "", fmt.Errorf("expression %q has no equality operator", expr)
	}
	left := strings.TrimSpace(expr[:idx])
	right := strings.TrimSpace(expr[idx+len(op):])

	lhs, err := evalExpr(left, capWords)
	if err != nil {
		return false, "", "", fmt.Errorf("LHS %q: %w", left, err)
	}
	rhs, err := evalExpr(right, capWords)
	if err != nil {
		return false, "", "", fmt.Errorf("RHS %q: %w", right, err)
	}

	lhsStr = bignumstr.FormatDecimal(lhs)
	rhsStr = bignumstr.FormatDecimal(rhs)

	switch op {
	case "==":
		ok = bignum.Eq(lhs, rhs)
	case "!=":
		ok = !bignum.Eq(lhs, rhs)
	case "<=":
		ok = bignum.Lte(lhs, rhs)
	case ">=":
		ok = bignum.Gte(lhs, rhs)
	case "<":
		ok = bignum.Lt(lhs, rhs)
	case ">":
		ok = bignum.Gt(lhs, rhs)
	}
	return ok, lhsStr, rhsStr, nil
}

// splitEquality returns the first-by-priority equality operator present
// in expr and the byte index of its first occurrence.
func splitEquality(expr string) (op string, idx int) {
	for _, candidate := range equalityOps {
		if i := strings.Index(expr, candidate); i >= 0 {
			return candidate, i
		}
	}
	return "", -1
}

// evalExpr evaluates a single operand: either a literal or a fn(args...)
// application.
func evalExpr(s string, capWords int) (*bignum.Int, error) {
	if name, argStr, ok := splitCall(s); ok {
		fn, known := evaluators[name]
		if !known {
			return nil, fmt.Errorf("unknown function %q", name)
		}
		args, err := splitArgs(argStr, capWords)
		if err != nil {
			return nil, err
		}
		return fn(args, capWords)
	}

	z := bignum.New(capWords)
	if err := parseLiteral(z, s); err != nil {
		return nil, err
	}
	return z, nil
}

// splitCall recognises "name(args)", where name is built only from
// lowercase letters, digits, and "-" (so "egcd-v" is a valid function
// name, not a subtraction).
func splitCall(s string) (name, argStr string, ok bool) {
	open := strings.IndexByte(s, '(')
	if open <= 0 || !strings.HasSuffix(s, ")") {
		return "", "", false
	}
	name = s[:open]
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '-':
		default:
			return "", "", false
		}
	}
	return name, s[open+1 : len(s)-1], true
}

// splitArgs parses a comma-separated argument list, splitting only on
// commas outside any nested parentheses so arguments may themselves be
// function applications, each evaluated recursively via evalExpr.
func splitArgs(s string, capWords int) ([]*bignum.Int, error) {
	var args []*bignum.Int
	depth, start := 0, 0
	for i := 0; i <= len(s); i++ {
		if i < len(s) {
			switch s[i] {
			case '(':
				depth++
				continue
			case ')':
				depth--
				continue
			}
			if s[i] != ',' || depth > 0 {
				continue
			}
		}
		arg, err := evalExpr(strings.TrimSpace(s[start:i]), capWords)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		start = i + 1
	}
	if depth != 0 {
		return nil, fmt.Errorf("unbalanced parentheses in %q", s)
	}
	return args, nil
}

func parseLiteral(z *bignum.Int, s string) error {
	body := strings.TrimPrefix(strings.TrimPrefix(s, "-"), "+")
	if strings.HasPrefix(body, "0x") || strings.HasPrefix(body, "0X") {
		return bignumstr.ParseHex(z, s)
	}
	return bignumstr.ParseDecimal(z, s)
}

// evalFunc evaluates one named function application over capWords-word
// scratch storage.
type evalFunc func(args []*bignum.Int, capWords int) (*bignum.Int, error)

// evaluators names every arithmetic operation a script may invoke.
var evaluators = map[string]evalFunc{
	"add":    evalAdd,
	"sub":    evalSub,
	"mul":    evalMul,
	"sqr":    evalSqr,
	"mod":    evalMod,
	"div":    evalDiv,
	"shl":    evalShl,
	"shr":    evalShr,
	"gcd":    evalGcd,
	"modmul": evalModMul,
	"modexp": evalModExp,
	"modinv": evalModInv,
	"egcd-v": evalEgcdV,
	"egcd-a": evalEgcdA,
	"egcd-b": evalEgcdB,
}

func requireArgs(name string, args []*bignum.Int, n int) error {
	if len(args) != n {
		return fmt.Errorf("%s: want %d argument(s), got %d", name, n, len(args))
	}
	return nil
}

// evalAdd evaluates add(a,b) or the three-operand fold
// add(a,b,c) = (a+b)+c.
func evalAdd(args []*bignum.Int, capWords int) (*bignum.Int, error) {
	if len(args) != 2 && len(args) != 3 {
		return nil, fmt.Errorf("add: want 2 or 3 arguments, got %d", len(args))
	}
	z := bignum.New(capWords)
	if err := bignum.Add(z, args[0], args[1]); err != nil {
		return nil, err
	}
	if len(args) == 3 {
		if err := bignum.Add(z, z, args[2]); err != nil {
			return nil, err
		}
	}
	return z, nil
}

// evalSub is evalAdd's dual: sub(a,b) or sub(a,b,c) = (a-b)-c.
func evalSub(args []*bignum.Int, capWords int) (*bignum.Int, error) {
	if len(args) != 2 && len(args) != 3 {
		return nil, fmt.Errorf("sub: want 2 or 3 arguments, got %d", len(args))
	}
	z := bignum.New(capWords)
	if err := bignum.Sub(z, args[0], args[1]); err != nil {
		return nil, err
	}
	if len(args) == 3 {
		if err := bignum.Sub(z, z, args[2]); err != nil {
			return nil, err
		}
	}
	return z, nil
}

func evalMul(args []*bignum.Int, capWords int) (*bignum.Int, error) {
	if err := requireArgs("mul", args, 2); err != nil {
		return nil, err
	}
	z := bignum.New(2*capWords + 2)
	tmp := bignum.New(2*capWords + 2)
	if err := bignum.Mult(tmp, z, args[0], args[1]); err != nil {
		return nil, err
	}
	return z, nil
}

func evalSqr(args []*bignum.Int, capWords int) (*bignum.Int, error) {
	if err := requireArgs("sqr", args, 1); err != nil {
		return nil, err
	}
	z := bignum.New(2*capWords + 2)
	tmp := bignum.New(2*capWords + 2)
	if err := bignum.Sqr(tmp, z, args[0]); err != nil {
		return nil, err
	}
	return z, nil
}

func evalMod(args []*bignum.Int, capWords int) (*bignum.Int, error) {
	if err := requireArgs("mod", args, 2); err != nil {
		return nil, err
	}
	z := bignum.New(capWords + 1)
	if err := bignum.Mod(z, args[0], args[1]); err != nil {
		return nil, err
	}
	return z, nil
}

func evalDiv(args []*bignum.Int, capWords int) (*bignum.Int, error) {
	if err := requireArgs("div", args, 2); err != nil {
		return nil, err
	}
	z := bignum.New(capWords + 1)
	if err := bignum.Div(z, args[0], args[1]); err != nil {
		return nil, err
	}
	return z, nil
}

// shiftCount extracts a single-word, non-negative shift count from a
// parsed operand.
func shiftCount(a *bignum.Int) (int, error) {
	if a.LenWords() != 1 || a.GetSign() < 0 {
		return 0, fmt.Errorf("shift count must be a single non-negative word")
	}
	return int(a.GetBits(0, 32)), nil
}

func evalShl(args []*bignum.Int, capWords int) (*bignum.Int, error) {
	if err := requireArgs("shl", args, 2); err != nil {
		return nil, err
	}
	n, err := shiftCount(args[1])
	if err != nil {
		return nil, err
	}
	z := bignum.New(2*capWords + 2)
	if err := z.Dup(args[0]); err != nil {
		return nil, err
	}
	if err := z.Shl(n); err != nil {
		return nil, err
	}
	return z, nil
}

func evalShr(args []*bignum.Int, capWords int) (*bignum.Int, error) {
	if err := requireArgs("shr", args, 2); err != nil {
		return nil, err
	}
	n, err := shiftCount(args[1])
	if err != nil {
		return nil, err
	}
	z := bignum.New(capWords)
	if err := z.Dup(args[0]); err != nil {
		return nil, err
	}
	if err := z.Shr(n); err != nil {
		return nil, err
	}
	return z, nil
}

func evalGcd(args []*bignum.Int, capWords int) (*bignum.Int, error) {
	if err := requireArgs("gcd", args, 2); err != nil {
		return nil, err
	}
	z := bignum.New(capWords)
	if err := bignum.Gcd(z, args[0], args[1]); err != nil {
		return nil, err
	}
	return z, nil
}

func evalModMul(args []*bignum.Int, capWords int) (*bignum.Int, error) {
	if err := requireArgs("modmul", args, 3); err != nil {
		return nil, err
	}
	z := bignum.New(capWords)
	if err := bignum.ModMul(z, args[0], args[1], args[2]); err != nil {
		return nil, err
	}
	return z, nil
}

func evalModExp(args []*bignum.Int, capWords int) (*bignum.Int, error) {
	if err := requireArgs("modexp", args, 3); err != nil {
		return nil, err
	}
	z := bignum.New(capWords)
	if err := bignum.ModExp(z, args[0], args[1], args[2]); err != nil {
		return nil, err
	}
	return z, nil
}

func evalModInv(args []*bignum.Int, capWords int) (*bignum.Int, error) {
	if err := requireArgs("modinv", args, 2); err != nil {
		return nil, err
	}
	z := bignum.New(capWords)
	if err := bignum.ModInv(z, args[0], args[1]); err != nil {
		return nil, err
	}
	return z, nil
}

// evalEgcdV, evalEgcdA, and evalEgcdB expose the gcd and the two Bezout
// coefficients ExtendedGcd computes together as three separately
// selectable functions, so one extended-GCD call's three outputs are
// each independently checkable in a script.
func evalEgcdV(args []*bignum.Int, capWords int) (*bignum.Int, error) {
	return evalEgcd(args, capWords, 0)
}
func evalEgcdA(args []*bignum.Int, capWords int) (*bignum.Int, error) {
	return evalEgcd(args, capWords, 1)
}
func evalEgcdB(args []*bignum.Int, capWords int) (*bignum.Int, error) {
	return evalEgcd(args, capWords, 2)
}

func evalEgcd(args []*bignum.Int, capWords, which int) (*bignum.Int, error) {
	if err := requireArgs("egcd", args, 2); err != nil {
		return nil, err
	}
	v, a, b := bignum.New(capWords), bignum.New(capWords), bignum.New(capWords)
	if err := bignum.ExtendedGcd(v, a, b, args[0], args[1]); err != nil {
		return nil, err
	}
	switch which {
	case 0:
		return v, nil
	case 1:
		return a, nil
	default:
		return b, nil
	}
}
