// chain.go — forward traversal over cause chains.
//
// Scope (tiny core):
//   - Strictly forward walks: wrapper → cause → cause's cause → …, never
//     backward, never revisiting a node.
//   - Cooperates with both unwrap forms. A node exposing Unwrap() error
//     contributes its cause; a node exposing Unwrap() []error (aggregates,
//     errors.Join) contributes its FIRST child — the chain follows an
//     aggregate's primary cause rather than fanning out.
//   - No policy, no logging — just correct, minimal utilities.
//
// Design notes (Go ≥1.20):
//   - errors.Unwrap only calls Unwrap() error; a chain walk that ignored
//     multi-unwrap nodes would stop dead at every aggregate, so the step
//     function handles BOTH forms itself.
//   - Chains are expected to be finite. A cyclic chain is a malformed
//     structure (a programming error, not a runtime state); traversal is
//     bounded by a generous depth cap instead of a seen-set, so the cost
//     of the well-formed case stays at zero allocations.
package bizerror

// maxChainDepth caps every walk against runaway or cyclic chains.
const maxChainDepth = 1 << 12

// chainNext returns err's immediate cause, or nil at the chain's end.
// Single unwrap wins; multi unwrap contributes its first child.
func chainNext(err error) error {
	switch x := err.(type) {
	case interface{ Unwrap() error }:
		return x.Unwrap()
	case interface{ Unwrap() []error }:
		if kids := x.Unwrap(); len(kids) > 0 {
			return kids[0]
		}
	}
	return nil
}

// ChainDepth returns the number of nodes in err's chain, including err
// itself. A nil err has depth 0.
func ChainDepth(err error) int {
	depth := 0
	for err != nil && depth < maxChainDepth {
		depth++
		err = chainNext(err)
	}
	return depth
}

// RootCause returns the terminal node of err's chain — the deepest error
// reached by repeated cause lookups. If err is nil, RootCause returns nil;
// if err has no cause, err itself is the root.
func RootCause(err error) error {
	if err == nil {
		return nil
	}
	for depth := 0; depth < maxChainDepth; depth++ {
		next := chainNext(err)
		if next == nil {
			return err
		}
		err = next
	}
	return err
}

// RootCauseMessage returns the display string of the chain's terminal
// node, or "" when err is nil. This is typically the original cause of
// the failure.
func RootCauseMessage(err error) string {
	root := RootCause(err)
	if root == nil {
		return ""
	}
	return root.Error()
}

// ChainMessages returns every node's display string in chain order,
// starting with err itself and ending at the terminal node. A nil err
// yields nil.
func ChainMessages(err error) []string {
	if err == nil {
		return nil
	}
	out := make([]string, 0, 4)
	for err != nil && len(out) < maxChainDepth {
		out = append(out, err.Error())
		err = chainNext(err)
	}
	return out
}
