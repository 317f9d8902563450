package helpers

import (
	"path/filepath"
	"testing"
)

// TestProjectUserPath makes sure the user path is rooted and ends with the
// lyricount directory.
func TestProjectUserPath(t *testing.T) {
	path, err := ProjectUserPath()
	if err != nil {
		t.Skipf("no user directory in this environment: %s", err)
	}

	if !filepath.IsAbs(path) {
		t.Errorf("user path was not rooted: %s", path)
	}

	if filepath.Base(path) != UserDir {
		t.Errorf("expected user path to end with %s but it was %s", UserDir, path)
	}
}

func TestSafeFileName(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"Radiohead", "Radiohead"},
		{"AC/DC", "AC_DC"},
		{"  Guns N' Roses  ", "Guns_N_Roses"},
		{"Sigur Rós", "Sigur_Rós"},
		{"../../etc/passwd", "etc_passwd"},
		{"???", "unnamed"},
		{"", "unnamed"},
	}

	for _, test := range tests {
		found := SafeFileName(test.name)
		if found != test.expected {
			t.Errorf("SafeFileName(%q): expected %q but got %q",
				test.name, test.expected, found)
		}
	}
}
