package cache_test

import (
	"crypto/sha256"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-test/deep"

	"xbase/internal/cache"
	"xbase/internal/codegen"
	"xbase/internal/program"
)

func sampleProgram(t *testing.T) *codegen.Program {
	t.Helper()
	g := codegen.New("hello")
	if err := g.SetParams([]string{"who"}); err != nil {
		t.Fatal(err)
	}
	if err := g.BeginFor("i", program.Number(1), program.Number(3), nil, 2); err != nil {
		t.Fatal(err)
	}
	if err := g.Print([]program.Expr{program.String("hi"), program.Ident("who")}, true, 3); err != nil {
		t.Fatal(err)
	}
	if err := g.EndFor(); err != nil {
		t.Fatal(err)
	}
	if err := g.BeginClass("Btn", program.WidgetPushButton, 5); err != nil {
		t.Fatal(err)
	}
	if err := g.ClassProp("text", program.String("OK"), 6); err != nil {
		t.Fatal(err)
	}
	if err := g.EndClass(); err != nil {
		t.Fatal(err)
	}
	prog, err := g.Finish()
	if err != nil {
		t.Fatal(err)
	}
	return prog
}

func openTemp(t *testing.T, opts cache.Options) *cache.Cache {
	t.Helper()
	c, err := cache.Open(filepath.Join(t.TempDir(), "cache"), opts)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return c
}

func TestCompileAndCacheThenLookup(t *testing.T) {
	c := openTemp(t, cache.Options{})
	prog := sampleProgram(t)
	hash := sha256.Sum256([]byte("source"))

	art, err := c.CompileAndCache("scripts/hello.prg", hash, prog)
	if err != nil {
		t.Fatalf("CompileAndCache: %v", err)
	}
	if !prog.Sealed() {
		t.Error("program must be sealed after caching")
	}
	if art.Key != "hello" {
		t.Errorf("key = %q", art.Key)
	}
	if _, err := os.Stat(filepath.Join(c.Dir(), "hello.bin")); err != nil {
		t.Fatalf("artifact file: %v", err)
	}

	got, ok, err := c.Lookup("other/dir/hello.prg", hash)
	if err != nil || !ok {
		t.Fatalf("Lookup = %v %v", ok, err)
	}
	if diff := deep.Equal(got.Unit, *prog.Unit()); diff != nil {
		t.Error(diff)
	}
	if got.Listing != prog.Listing() || got.Dialect != "dbase" || got.Schema != cache.SchemaVersion {
		t.Errorf("artifact = %+v", got)
	}
}

func TestLookupMissing(t *testing.T) {
	c := openTemp(t, cache.Options{})
	_, ok, err := c.Lookup("nothing.prg", [32]byte{})
	if ok || err != nil {
		t.Fatalf("got %v %v, want clean miss", ok, err)
	}
}

func TestHashMismatchIsMiss(t *testing.T) {
	c := openTemp(t, cache.Options{})
	if _, err := c.CompileAndCache("a.prg", sha256.Sum256([]byte("v1")), sampleProgram(t)); err != nil {
		t.Fatal(err)
	}
	_, ok, err := c.Lookup("a.prg", sha256.Sum256([]byte("v2")))
	if ok || err != nil {
		t.Fatalf("got %v %v, want miss on changed source", ok, err)
	}
}

func TestTrustNameIgnoresHash(t *testing.T) {
	c := openTemp(t, cache.Options{TrustName: true})
	if _, err := c.CompileAndCache("a.prg", sha256.Sum256([]byte("v1")), sampleProgram(t)); err != nil {
		t.Fatal(err)
	}
	_, ok, err := c.Lookup("a.prg", sha256.Sum256([]byte("v2")))
	if !ok || err != nil {
		t.Fatalf("got %v %v, want hit by name", ok, err)
	}
}

func TestCorruptArtifact(t *testing.T) {
	c := openTemp(t, cache.Options{})
	if err := os.WriteFile(c.PathFor("bad.prg"), []byte{0xc1, 0x00, 0xff}, 0o644); err != nil {
		t.Fatal(err)
	}
	_, ok, err := c.Lookup("bad.prg", [32]byte{})
	if ok || !errors.Is(err, cache.ErrCorrupt) {
		t.Fatalf("got %v %v, want ErrCorrupt", ok, err)
	}
}

func TestCleanRemovesArtifacts(t *testing.T) {
	c := openTemp(t, cache.Options{})
	if _, err := c.CompileAndCache("a.prg", [32]byte{}, sampleProgram(t)); err != nil {
		t.Fatal(err)
	}
	if err := c.Clean(); err != nil {
		t.Fatalf("Clean: %v", err)
	}
	if _, err := os.Stat(c.Dir()); !os.IsNotExist(err) {
		t.Fatalf("cache dir still exists: %v", err)
	}
	if err := c.Clean(); err != nil {
		t.Fatalf("second Clean: %v", err)
	}
	// после очистки запись снова создаёт каталог
	if _, err := c.CompileAndCache("a.prg", [32]byte{}, sampleProgram(t)); err != nil {
		t.Fatalf("write after Clean: %v", err)
	}
}

func TestKey(t *testing.T) {
	for in, want := range map[string]string{
		"hello.prg":             "hello",
		"/tmp/x/report.PRG":     "report",
		"noext":                 "noext",
		"dir.with.dots/a.b.prg": "a.b",
	} {
		if got := cache.Key(in); got != want {
			t.Errorf("Key(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDefaultDirUsesXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/x/cache")
	d, err := cache.DefaultDir("xbase")
	if err != nil || d != filepath.Join("/x/cache", "xbase") {
		t.Fatalf("DefaultDir = %q %v", d, err)
	}
}
