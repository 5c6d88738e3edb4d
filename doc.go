// Package arith implements a small floating-point calculator.
//
// Input is ordinary arithmetic notation: the four binary operators
// + - * /, unary minus and plus, decimal numbers, and round brackets
// for grouping. Multiplication and division bind tighter than addition
// and subtraction, and operators of equal precedence group to the left,
// so "10 - 2 - 3" is 5 and "2 + 3 * 4" is 14.
//
// Parsing and evaluation are stateless. Every error resulting from bad
// input carries the position of the offending character or token.
package arith
