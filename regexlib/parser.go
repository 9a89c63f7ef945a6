package regexlib

// Parser turns patterns into ASTs. The zero value is ready to use.
//
// The engine recurses once per group and once per '|', so the native stack
// grows with nesting depth plus alternation-chain length. Set MaxDepth when
// parsing untrusted input.
type Parser struct {
	// MaxDepth limits how many scopes may be open at once.
	// Zero means no limit.
	MaxDepth int
}

// Parse parses pattern with the default Parser.
func Parse(pattern string) (Expr, error) {
	var p Parser
	return p.Parse(pattern)
}

// MustParse is like Parse but panics on a syntax error.
func MustParse(pattern string) Expr {
	e, err := Parse(pattern)
	if err != nil {
		panic(err)
	}
	return e
}

// Parse converts pattern into an AST, or returns a *SyntaxError.
func (p *Parser) Parse(pattern string) (Expr, error) {
	st := &parseState{pattern: pattern, maxDepth: p.MaxDepth}
	e, rest, err := st.parseScope(pattern, nil, 0)
	if err != nil {
		return nil, err
	}
	// Only a stray ')' stops the top scope early.
	if rest != "" {
		return nil, st.errorAt(TrailingInput, rest)
	}
	return e, nil
}

type parseState struct {
	pattern  string
	maxDepth int
}

// parseScope consumes s up to the end of input or an unconsumed ')'.
// stack holds the sibling fragments already seen in this scope; nested
// scopes always start with a fresh one.
func (st *parseState) parseScope(s string, stack []Expr, depth int) (Expr, string, error) {
	for {
		c, rest, ok := uncons(s)
		if !ok {
			return coalesce(stack), s, nil
		}
		switch c {
		case '.':
			stack = append(stack, AnyChar())
		case '|':
			if err := st.enter(s, depth); err != nil {
				return nil, "", err
			}
			left := coalesce(stack)
			right, tail, err := st.parseScope(rest, nil, depth+1)
			if err != nil {
				return nil, "", err
			}
			return Alternate{Left: left, Right: right}, tail, nil
		case '(':
			if err := st.enter(s, depth); err != nil {
				return nil, "", err
			}
			before := coalesce(stack)
			inner, tail, err := st.parseScope(rest, nil, depth+1)
			if err != nil {
				return nil, "", err
			}
			closing, after, ok := uncons(tail)
			if !ok || closing != ')' {
				return nil, "", st.errorAt(UnbalancedParenthesis, s)
			}
			stack = append(stack[:0], concatenate(before, inner))
			s = after
			continue
		case ')':
			return coalesce(stack), s, nil
		default:
			stack = append(stack, Lit(c))
		}
		s = rest
	}
}

func (st *parseState) enter(s string, depth int) error {
	if st.maxDepth > 0 && depth >= st.maxDepth {
		return st.errorAt(NestingTooDeep, s)
	}
	return nil
}

// errorAt builds a SyntaxError positioned at the start of rest.
func (st *parseState) errorAt(kind ErrorKind, rest string) error {
	return &SyntaxError{Kind: kind, Pos: len(st.pattern) - len(rest), Pattern: st.pattern}
}

// coalesce folds the fragments of one scope into a single expression,
// combining the last two until one is left. Empty stacks give Empty.
// The backing array of stack is reused.
func coalesce(stack []Expr) Expr {
	for len(stack) > 1 {
		n := len(stack)
		left, right := stack[n-2], stack[n-1]
		stack = append(stack[:n-2], concatenate(left, right))
	}
	if len(stack) == 0 {
		return Empty{}
	}
	return stack[0]
}

// concatenate builds Concatenate{left, right}, dropping Empty operands.
func concatenate(left, right Expr) Expr {
	if _, ok := left.(Empty); ok {
		return right
	}
	if _, ok := right.(Empty); ok {
		return left
	}
	return Concatenate{Left: left, Right: right}
}
