package cliutil

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestSplitFlagsAndPositionals(t *testing.T) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	var b bool
	fs.BoolVar(&b, "list", false, "")
	flagArgs, posArgs := SplitFlagsAndPositionals(fs, []string{"--list", "ref.fa", "--", "other.fa"})
	if len(flagArgs) != 1 || len(posArgs) != 2 || posArgs[0] != "ref.fa" || posArgs[1] != "other.fa" {
		t.Fatalf("unexpected split: %v / %v", flagArgs, posArgs)
	}
}

func TestSplitKeepsFlagValues(t *testing.T) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	var s string
	fs.StringVar(&s, "seq", "", "")
	flagArgs, posArgs := SplitFlagsAndPositionals(fs, []string{"--seq", "chr1:1-10", "ref.fa"})
	if len(flagArgs) != 2 || len(posArgs) != 1 || posArgs[0] != "ref.fa" {
		t.Fatalf("unexpected split: %v / %v", flagArgs, posArgs)
	}
}

func TestSplitKeepsStdinMarker(t *testing.T) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	var b bool
	fs.BoolVar(&b, "list", false, "")
	flagArgs, posArgs := SplitFlagsAndPositionals(fs, []string{"--list", "-"})
	if len(flagArgs) != 1 || len(posArgs) != 1 || posArgs[0] != "-" {
		t.Fatalf("unexpected split: %v / %v", flagArgs, posArgs)
	}
}

func TestExpandPositionals(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.fa")
	b := filepath.Join(dir, "b.fa")
	_ = os.WriteFile(a, []byte(">a\nA\n"), 0o644)
	_ = os.WriteFile(b, []byte(">b\nA\n"), 0o644)
	got, err := ExpandPositionals([]string{filepath.Join(dir, "*.fa")})
	if err != nil || len(got) != 2 {
		t.Fatalf("expand: err=%v got=%v", err, got)
	}
}

func TestExpandPositionalsNoMatch(t *testing.T) {
	if _, err := ExpandPositionals([]string{filepath.Join(t.TempDir(), "*.fa")}); err == nil {
		t.Fatal("expected error for unmatched glob")
	}
}
