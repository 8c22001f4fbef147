package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	app := &cli{}
	cmd := newRootCmd(app)
	defer app.close()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDbaseFlagPrintsListing(t *testing.T) {
	path := writeFile(t, "hello.prg", "PARAMETER who\n? \"hi\", who\n")
	out, _, err := execute(t, "--color", "off", "--dbase", path)
	if err != nil {
		t.Fatal(err)
	}
	want := "proc main(who)\n    println(\"hi\", who)\nend\n"
	if out != want {
		t.Errorf("listing = %q, want %q", out, want)
	}
}

func TestDbaseReportsDiagnostics(t *testing.T) {
	path := writeFile(t, "bad.prg", "ENDIF\n")
	out, errOut, err := execute(t, "--color", "off", "--dbase", path)
	if !errors.Is(err, errReported) {
		t.Fatalf("err = %v", err)
	}
	if out != "" {
		t.Errorf("partial listing printed: %q", out)
	}
	if !strings.Contains(errOut, "bad.prg:1:1") || !strings.Contains(errOut, "BLK") {
		t.Errorf("stderr = %q", errOut)
	}
}

func TestExecRunsAndCaches(t *testing.T) {
	cacheDir := filepath.Join(t.TempDir(), "cache")
	path := writeFile(t, "count.prg", "FOR i = 1 TO 3\n?? i\nNEXT\n")
	for range 2 {
		out, _, err := execute(t, "--color", "off", "--cache-dir", cacheDir, "--exec", path)
		if err != nil {
			t.Fatal(err)
		}
		if out != "123" {
			t.Errorf("output = %q", out)
		}
	}
	if _, err := os.Stat(filepath.Join(cacheDir, "count.bin")); err != nil {
		t.Errorf("artifact missing: %v", err)
	}

	out, _, err := execute(t, "--cache-dir", cacheDir, "clean")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "removed ") {
		t.Errorf("clean output = %q", out)
	}
	if _, err := os.Stat(cacheDir); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("cache dir still present: %v", err)
	}
}

func TestRunWithArgs(t *testing.T) {
	path := writeFile(t, "args.prg", "PARAMETER a, b\n?? a + 1, b\n")
	out, _, err := execute(t, "--color", "off", "--cache-dir", t.TempDir(), "run", path, "41", "x")
	if err != nil {
		t.Fatal(err)
	}
	if out != "42 x" {
		t.Errorf("output = %q", out)
	}
}

func TestPositionalScriptsRun(t *testing.T) {
	cacheDir := t.TempDir()
	hello := writeFile(t, "hello.prg", "? \"hi\"\n")
	bye := writeFile(t, "bye.prg", "?? \"bye\"\n")
	out, _, err := execute(t, "--color", "off", "--cache-dir", cacheDir, hello, bye)
	if err != nil {
		t.Fatal(err)
	}
	if out != "hi\nbye" {
		t.Errorf("output = %q, want %q", out, "hi\nbye")
	}
}

func TestRunExecutionError(t *testing.T) {
	path := writeFile(t, "boom.prg", "? 1 / 0\n")
	_, errOut, err := execute(t, "--color", "off", "--cache-dir", t.TempDir(), path)
	if !errors.Is(err, errReported) {
		t.Fatalf("err = %v", err)
	}
	if !strings.Contains(errOut, "ExecutionError") {
		t.Errorf("stderr = %q", errOut)
	}
}

func TestPascalFlagTokenizes(t *testing.T) {
	path := writeFile(t, "p.pas", "x := 1 (* note *)\n")
	out, _, err := execute(t, "--pascal", path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "EOF") || strings.Contains(out, "note") {
		t.Errorf("tokens:\n%s", out)
	}
}

func TestTokenizeJSON(t *testing.T) {
	path := writeFile(t, "a.prg", "? 1\n")
	out, _, err := execute(t, "tokenize", "--format", "json", path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(strings.TrimSpace(out), "[") || !strings.Contains(out, `"kind": "EOF"`) {
		t.Errorf("json = %s", out)
	}
}

func TestCheck(t *testing.T) {
	good := writeFile(t, "good.prg", "? 1\n")
	bad := writeFile(t, "bad.prg", "IF .T.\n")
	_, errOut, err := execute(t, "--color", "off", "check", "-j", "2", good, bad)
	if !errors.Is(err, errReported) {
		t.Fatalf("err = %v", err)
	}
	if !strings.Contains(errOut, "checked 2 script(s), 1 failed") {
		t.Errorf("stderr = %q", errOut)
	}
}

func TestFlagErrors(t *testing.T) {
	tests := [][]string{
		{"--dbase"},
		{"--no-such-flag"},
		{"--dbase", "a.prg", "--exec", "b.prg"},
		{"--gui"},
		{"--color", "sometimes", "version"},
		{"run"},
		{"--dbase", ""},
		{"--pascal", ""},
		{"--doxygen", ""},
		{"--exec", ""},
	}
	for _, args := range tests {
		if _, _, err := execute(t, args...); err == nil {
			t.Errorf("%v: expected an error", args)
		}
	}
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "--color", "off", "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "xbase ") {
		t.Errorf("version = %q", out)
	}
	out, _, err = execute(t, "version", "--format", "json")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `"tool": "xbase"`) {
		t.Errorf("json = %q", out)
	}
}

func TestParseArgs(t *testing.T) {
	got := parseArgs([]string{"1.5", ".t.", "abc"})
	if got[0].Num != 1.5 || !got[1].Bool || got[2].Str != "abc" {
		t.Errorf("parseArgs = %+v", got)
	}
}

func TestProfileFlagsWriteFiles(t *testing.T) {
	dir := t.TempDir()
	cpu := filepath.Join(dir, "cpu.pprof")
	mem := filepath.Join(dir, "mem.pprof")
	path := writeFile(t, "p.prg", "?? 1\n")
	out, _, err := execute(t, "--color", "off", "--cache-dir", t.TempDir(),
		"--cpuprofile", cpu, "--memprofile", mem, "--exec", path)
	if err != nil {
		t.Fatal(err)
	}
	if out != "1" {
		t.Errorf("output = %q", out)
	}
	for _, p := range []string{cpu, mem} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("profile not written: %v", err)
		}
	}
}
