package regexlib

import "unicode/utf8"

// Expr is a node of the pattern AST. The set of variants is closed:
// Empty, Range, Concatenate, Alternate and Repeat.
type Expr interface {
	String() string
	expr()
}

// MaxChar is the largest character a Range can cover.
const MaxChar = utf8.MaxRune

// Unbounded is the Repeat.Max value for "no upper bound".
const Unbounded = -1

// RepeatMode selects how a Repeat prefers to backtrack at match time.
type RepeatMode int

const (
	Greedy    RepeatMode = iota // as many repeats as possible
	NonGreedy                   // as few as possible
)

// Empty matches the empty string. It is the identity of concatenation.
type Empty struct{}

// Range matches one character c with Lo <= c <= Hi. Lo > Hi is representable.
type Range struct {
	Lo, Hi rune
}

// Concatenate matches Left immediately followed by Right.
type Concatenate struct {
	Left, Right Expr
}

// Alternate matches Left or Right.
type Alternate struct {
	Left, Right Expr
}

// Repeat matches Child between Min and Max times (Max == Unbounded: no limit).
// The parser never produces it.
type Repeat struct {
	Child    Expr
	Min, Max int
	Mode     RepeatMode
}

func (Empty) expr()       {}
func (Range) expr()       {}
func (Concatenate) expr() {}
func (Alternate) expr()   {}
func (Repeat) expr()      {}

// Lit is the Range for a single literal character.
func Lit(c rune) Range { return Range{Lo: c, Hi: c} }

// AnyChar is the Range produced by '.'.
func AnyChar() Range { return Range{Lo: 0, Hi: MaxChar} }
