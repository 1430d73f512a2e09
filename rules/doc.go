// Package rules loads rule documents and compiles them to regex patterns.
//
// A rule document holds one pattern node or a sequence of nodes in JSON or
// YAML:
//
//	- Type: Anchor
//	  Value: StartOfLine
//	- Type: CharacterClass
//	  Value: Word
//	  Quantifiers:
//	    Min: 1
//	- Type: Anchor
//	  Value: EndOfLine
//
// compiles to ^\w+$. Decoded documents are cached by content hash, so
// parsing the same text again returns the cached nodes.
package rules
