package pkg

import (
	"regexp"
	"testing"
)

var semver = regexp.MustCompile(`^\d+\.\d+\.\d+(?:-[0-9A-Za-z.-]+)?$`)

func TestVersion(t *testing.T) {
	if !semver.MatchString(Version) {
		t.Errorf("Version = %q, want a semantic version", Version)
	}
}

func TestMetadata(t *testing.T) {
	if Name != "regexrules" {
		t.Errorf("Name = %q", Name)
	}

	if Description == "" {
		t.Error("Description is empty")
	}

	for i, a := range Author {
		if a.Name == "" && a.Email == "" {
			t.Errorf("Author[%d] has neither Name nor Email", i)
		}
	}
}
