// predicates.go — typed lookups and classification queries over chains.
//
// Scope:
//   • Zero-policy helpers that answer "is this kind of failure in there,
//     and can I have it back typed" for any error chain.
//   • Structural matching only: nodes are interrogated through interface
//     assertions (the same step rule as chain.go), never through
//     knowledge of concrete wrapper types. Hand-written and generated
//     taxonomies answer these queries identically.
//
// Notes:
//   • FindRoot deliberately starts at the FIRST CAUSE, not at err itself:
//     the caller already holds err, so matching the value in hand would
//     make every query trivially true for its own type.
//   • ChainContainsCode and CodeOf start at err itself: contextual
//     wrappers delegate classification, so the topmost node is a
//     legitimate answer to "is code X anywhere in here".
//
// Out of scope (by design):
//   • HTTP/status mapping, retry policy, logging.
package bizerror

// FindRoot walks err's chain starting at the first cause and returns the
// first node of type T, typed. The match may sit anywhere below err, not
// just at the bottom; the node nearest to err wins. The second result is
// false when no node below err has type T.
func FindRoot[T error](err error) (T, bool) {
	for depth := 0; depth < maxChainDepth; depth++ {
		err = chainNext(err)
		if err == nil {
			break
		}
		if t, ok := err.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// HasType reports whether any node below err in the chain has type T.
func HasType[T error](err error) bool {
	_, ok := FindRoot[T](err)
	return ok
}

// ChainContainsCode reports whether any node in err's chain, including
// err itself, classifies under code. Each node is asked structurally
// for a Code() C method, so both bare classifiers and the wrappers that
// delegate to them answer. The walk stops at the first match.
func ChainContainsCode[C Code](err error, code C) bool {
	for depth := 0; err != nil && depth < maxChainDepth; depth++ {
		if bc, ok := err.(interface{ Code() C }); ok && bc.Code() == code {
			return true
		}
		err = chainNext(err)
	}
	return false
}

// CodeOf returns the first code of type C discovered along err's chain,
// starting at err itself, and whether one was found. Use it to classify
// an error without caring which layer carries the classification.
func CodeOf[C Code](err error) (C, bool) {
	for depth := 0; err != nil && depth < maxChainDepth; depth++ {
		if bc, ok := err.(interface{ Code() C }); ok {
			return bc.Code(), true
		}
		err = chainNext(err)
	}
	var zero C
	return zero, false
}

// NameOf returns the first variant name discovered along err's chain,
// starting at err itself, and whether one was found.
func NameOf(err error) (string, bool) {
	for depth := 0; err != nil && depth < maxChainDepth; depth++ {
		if bn, ok := err.(interface{ Name() string }); ok {
			return bn.Name(), true
		}
		err = chainNext(err)
	}
	return "", false
}
