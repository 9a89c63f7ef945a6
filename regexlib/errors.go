package regexlib

import (
	"errors"
	"fmt"
)

var (
	ErrTrailingInput         = errors.New("unexpected ) with no matching (")
	ErrUnbalancedParenthesis = errors.New("unclosed group")
	ErrNestingTooDeep        = errors.New("pattern recursion too deep (nested groups or alternation chain)")
)

// ErrorKind classifies a SyntaxError.
type ErrorKind int

const (
	TrailingInput ErrorKind = iota + 1
	UnbalancedParenthesis
	NestingTooDeep
)

func (k ErrorKind) String() string {
	switch k {
	case TrailingInput:
		return "trailing input"
	case UnbalancedParenthesis:
		return "unbalanced parenthesis"
	case NestingTooDeep:
		return "nesting too deep"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// SyntaxError reports why a pattern was rejected. Pos is a byte offset into
// Pattern: the stray ')' for TrailingInput, the unclosed '(' for
// UnbalancedParenthesis, and the '(' or '|' that crossed the limit for
// NestingTooDeep.
type SyntaxError struct {
	Kind    ErrorKind
	Pos     int
	Pattern string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("regexlib: %v at offset %d in %q", e.Unwrap(), e.Pos, e.Pattern)
}

// Unwrap returns the sentinel for e.Kind, so errors.Is works on kinds.
func (e *SyntaxError) Unwrap() error {
	switch e.Kind {
	case TrailingInput:
		return ErrTrailingInput
	case UnbalancedParenthesis:
		return ErrUnbalancedParenthesis
	case NestingTooDeep:
		return ErrNestingTooDeep
	}
	return nil
}
