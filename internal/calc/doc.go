// Package calc evaluates keypad arithmetic and holds the calculator display state.
//
// The evaluator accepts numeric literals and the operators + - * / ** //
// with unary signs. Integer literals keep arbitrary precision; a literal
// containing a dot is a float. Integer arithmetic stays integral except
// for true division, which always yields a float. Nothing outside this
// grammar is ever executed.
package calc
