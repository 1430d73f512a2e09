// Package pattern models a regular expression as a tree of typed nodes and
// compiles the tree into a regex pattern string.
//
// # Nodes
//
// Every node is a [Pattern] of one fixed [Kind]:
//
//   - Literal: text escaped with [regexp.QuoteMeta], or emitted verbatim when
//     it begins with a backslash
//   - CharacterClass: a class name from [CharacterClasses] or its token
//   - Anchor: an anchor name from [Anchors] or its token
//   - Group: child nodes wrapped in capturing, non-capturing or named group
//     syntax
//
// A node compiles to its body followed by the suffix computed by its
// [Quantifier]. A nil quantifier matches exactly once.
//
// # Input
//
// Nodes are authored in JSON or YAML using the keys Id, Type, Value,
// Quantifiers, Properties and Message, plus GroupType and Patterns for groups:
//
//	Type: Group
//	GroupType: Named
//	Value: year
//	Patterns:
//	  - Type: CharacterClass
//	    Value: Digit
//	    Quantifiers:
//	      Exactly: 4
//
// compiles to (?<year>\d{4}).
//
// [Detect] classifies raw text the same way for every constructor, so
// [ParseValue], [ParseQuantifier] and [Parse] agree on what is JSON, what is
// YAML, and what is a bare literal.
//
// # Errors
//
// Failures are reported as [*Error] values derived from the sentinels
// [ErrConstraint], [ErrInvalidArgument], [ErrInvalidFormat],
// [ErrUnsupportedOperation] and [ErrMaxDepthExceeded]; test for them with
// [errors.Is]. Each error carries structured attributes for [log/slog].
package pattern
