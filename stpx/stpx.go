// Package stpx is a shortened version of stp, meant to be used without the
// package name, through a dot import, in grammars dense enough that
// stp.Whatever everywhere would obscure the grammar's shape. Every name
// here is a thin re-export; stpx adds nothing of its own.
package stpx

import (
	"github.com/flowdev/stepparse"
	"github.com/flowdev/stepparse/stp"
)

// Tok re-exports stp.Token.
func Tok[S comparable](want S) stepparse.Term[S, S] { return stp.Token(want) }

// Sat re-exports stp.Satisfy.
func Sat[S any](pred func(S) bool) stepparse.Term[S, S] { return stp.Satisfy(pred) }

// Str re-exports stp.Str.
func Str(want string) stepparse.Term[byte, string] { return stp.Str(want) }

// Dig re-exports stp.Digit.
func Dig() stepparse.Term[rune, rune] { return stp.Digit() }

// Alp re-exports stp.Alpha.
func Alp() stepparse.Term[rune, rune] { return stp.Alpha() }

// Sp re-exports stp.Space.
func Sp() stepparse.Term[rune, rune] { return stp.Space() }

// M0 re-exports stp.Many0.
func M0[S any, R any](m stepparse.Monoid[R], p stepparse.Term[S, R]) stepparse.Term[S, R] {
	return stp.Many0(m, p)
}

// M1 re-exports stp.Many1.
func M1[S any, R any](m stepparse.Monoid[R], p stepparse.Term[S, R]) stepparse.Term[S, R] {
	return stp.Many1(m, p)
}

// Opt re-exports stp.Optional.
func Opt[S any, R any](zero R, p stepparse.Term[S, R]) stepparse.Term[S, R] {
	return stp.Optional(zero, p)
}

// Btw re-exports stp.Between.
func Btw[S any, O any, R any, C any](open stepparse.Term[S, O], inner stepparse.Term[S, R], close stepparse.Term[S, C]) stepparse.Term[S, R] {
	return stp.Between(open, inner, close)
}

// Sb re-exports stp.SepBy.
func Sb[S any, R any, D any](m stepparse.Monoid[R], p stepparse.Term[S, R], sep stepparse.Term[S, D]) stepparse.Term[S, R] {
	return stp.SepBy(m, p, sep)
}

// P re-exports stepparse.Pure.
func P[S any, R any](v R) stepparse.Term[S, R] { return stepparse.Pure[S, R](v) }

// Mp re-exports stepparse.Map.
func Mp[S any, A any, B any](f func(A) B, p stepparse.Term[S, A]) stepparse.Term[S, B] {
	return stepparse.Map(f, p)
}
