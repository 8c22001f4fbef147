package version

import (
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
}

func TestColored(t *testing.T) {
	orig, origNoColor := Version, color.NoColor
	defer func() { Version, color.NoColor = orig, origNoColor }()

	Version = "1.2.3-rc.1"
	color.NoColor = true
	if got := Colored(); got != "1.2.3-rc.1" {
		t.Errorf("plain = %q", got)
	}
	color.NoColor = false
	got := Colored()
	if !strings.Contains(got, "\x1b[") || !strings.HasSuffix(got, "-rc.1") {
		t.Errorf("colored = %q", got)
	}
}

func TestInfo(t *testing.T) {
	origV, origC, origD := Version, GitCommit, BuildDate
	defer func() { Version, GitCommit, BuildDate = origV, origC, origD }()

	Version, GitCommit, BuildDate = "1.0.0", "", ""
	if got := Info(false); got != "xbase 1.0.0\n" {
		t.Errorf("Info = %q", got)
	}
	GitCommit, BuildDate = "abc123", "2024-01-15"
	want := "xbase 1.0.0\ncommit: abc123\nbuilt:  2024-01-15\n"
	if got := Info(false); got != want {
		t.Errorf("Info = %q, want %q", got, want)
	}
}
