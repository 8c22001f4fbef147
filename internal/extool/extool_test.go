package extool

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

func TestRunReportsOutput(t *testing.T) {
	if _, err := exec.LookPath("cat"); err != nil {
		t.Skip("cat not available")
	}
	file := filepath.Join(t.TempDir(), "Doxyfile")
	if err := os.WriteFile(file, []byte("PROJECT_NAME = demo\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	res := Runner{Path: "cat"}.Run(context.Background(), file)
	if res.Err != nil {
		t.Fatal(res.Err)
	}
	if string(res.Output) != "PROJECT_NAME = demo\n" {
		t.Errorf("output = %q", res.Output)
	}
}

func TestStartClosesChannel(t *testing.T) {
	ch := Runner{Path: "definitely-not-a-real-tool-xb"}.Start(context.Background(), os.Args[0])
	res, ok := <-ch
	if !ok {
		t.Fatal("no result")
	}
	if !errors.Is(res.Err, ErrToolMissing) {
		t.Errorf("err = %v", res.Err)
	}
	if _, ok := <-ch; ok {
		t.Error("channel left open")
	}
}

func TestMissingInput(t *testing.T) {
	res := Runner{}.Run(context.Background(), filepath.Join(t.TempDir(), "nope"))
	if !errors.Is(res.Err, os.ErrNotExist) {
		t.Errorf("err = %v", res.Err)
	}
	if res.Tool != DefaultHelpCompiler {
		t.Errorf("tool = %q", res.Tool)
	}
}
