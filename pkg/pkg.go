// Package pkg holds project metadata shared by the command and its help text.
package pkg

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var version string

// Version is the semantic version embedded from the VERSION file.
var Version = strings.TrimSpace(version)

const (
	// Name is the command name. It also names the configuration and cache
	// directories.
	Name = "regexrules"
	// Description is the one-line summary shown in help output.
	Description = "Compile YAML and JSON pattern trees into regular expressions"
)

// AuthorInfo is an author's name and contact address.
type AuthorInfo struct {
	Name  string
	Email string
}

// Author lists the project authors.
var Author = []AuthorInfo{
	{"rbleattler", ""},
}
