// Package scicalc implements a scientific calculator over numbers held in
// normalized scientific notation.
//
// Expressions use + - * / ^ with the usual precedence, where ^ is
// right-associative and a leading - binds tighter than * and /. Adjacent
// terms multiply, so "3(4)" is 12 and "2sqrt(9)" is 6; implicit
// multiplication binds like unary minus, tighter than an explicit *.
// "Ans" stands for the previous answer, and "M(H2O)" is the molar mass of a
// chemical formula in g/mol. Formulas with groups, like Ca(OH)2, are handled
// by package molar directly.
//
// An expression is tokenized, converted to postfix form with the
// shunting-yard algorithm, and evaluated over a value stack. Every failure is
// reported as a *SyntaxError, which matches ErrSyntax with errors.Is and
// unwraps to an error describing the cause and, for malformed input, its
// column.
package scicalc
