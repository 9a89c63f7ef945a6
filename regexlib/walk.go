package regexlib

// Walk visits e and its descendants in pre-order, left child first.
// Children of a node are skipped when fn returns false for it.
func Walk(e Expr, fn func(Expr) bool) {
	if e == nil || !fn(e) {
		return
	}
	switch n := e.(type) {
	case Concatenate:
		Walk(n.Left, fn)
		Walk(n.Right, fn)
	case Alternate:
		Walk(n.Left, fn)
		Walk(n.Right, fn)
	case Repeat:
		Walk(n.Child, fn)
	case Empty, Range:
	}
}

// Depth returns the height of the tree; a leaf has depth 1.
func Depth(e Expr) int {
	switch n := e.(type) {
	case Concatenate:
		return 1 + max(Depth(n.Left), Depth(n.Right))
	case Alternate:
		return 1 + max(Depth(n.Left), Depth(n.Right))
	case Repeat:
		return 1 + Depth(n.Child)
	case nil:
		return 0
	}
	return 1
}
