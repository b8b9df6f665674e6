package xoz

import "errors"

// Contract-violation sentinels (§7). These are fatal programming errors,
// not recoverable conditions: calling string_value on a container node,
// mixing nodes from two different Documents, or asking the text arena for
// a non-UTF-8 payload it should never contain by construction.
var (
	// ErrInvalidTarget is returned by StringValue when called on an
	// Attributes or Namespaces container node.
	ErrInvalidTarget = errors.New("xoz: string_value called on a container node")

	// ErrWrongDocument reports a node that does not belong to the
	// receiving Document. Document methods do not check node ownership,
	// so none of them returns it.
	ErrWrongDocument = errors.New("xoz: node belongs to a different document")

	// ErrArenaCorrupt names a text-arena payload that is not valid UTF-8.
	// Payload accessors do not validate UTF-8, so none of them returns it.
	ErrArenaCorrupt = errors.New("xoz: text arena payload is not valid UTF-8")
)

// BuildErrorKind enumerates the build-time failure taxonomy (§6, §7).
type BuildErrorKind int

const (
	// TooManyDistinctLabels is returned when the number of registered
	// labels exceeds the 16-bit label width (§6).
	TooManyDistinctLabels BuildErrorKind = iota
	// MalformedInput covers every adapter-level well-formedness failure:
	// unmatched/mismatched end tags, attributes on end tags, illegal
	// character references, unresolved namespace prefixes, encoding
	// errors (§7). The adapter decorates the message with specifics.
	MalformedInput
)

func (k BuildErrorKind) String() string {
	switch k {
	case TooManyDistinctLabels:
		return "too many distinct labels"
	case MalformedInput:
		return "malformed input"
	default:
		return "unknown build error"
	}
}

// BuildError is the single error type the build call can return; every
// failure mode is tagged so callers can branch on Kind without string
// matching, per §7's "each is reported with a distinct variant" rule.
type BuildError struct {
	Kind    BuildErrorKind
	Message string
}

func (e *BuildError) Error() string {
	if e.Message == "" {
		return "xoz: " + e.Kind.String()
	}
	return "xoz: " + e.Kind.String() + ": " + e.Message
}

func newBuildError(kind BuildErrorKind, message string) *BuildError {
	return &BuildError{Kind: kind, Message: message}
}
