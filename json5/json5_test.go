package json5

import (
	"testing"

	"github.com/Ed94/zpl-sub000/adt"
)

func TestRoundTripS1(t *testing.T) {
	input := `{ a: 1, b: [true, 'x', 0x10], c: .5e-1 }`
	root, err := Parse(nil, []byte(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	got := adt.Query(root, "b/2")
	if got == nil || got.Integer() != 16 {
		t.Fatalf("query b/2 = %v, want integer 16", got)
	}

	out := WriteString(root)
	if out != input {
		t.Fatalf("round trip mismatch:\n got: %q\nwant: %q", out, input)
	}
}

func TestQueryByFieldValueS2(t *testing.T) {
	input := `{ xs: [{ id: 'a', n: 1 }, { id: 'b', n: 2 }] }`
	root, err := Parse(nil, []byte(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	got := adt.Query(root, "xs/[id=b]/n")
	if got == nil || got.Integer() != 2 {
		t.Fatalf("query xs/[id=b]/n = %v, want integer 2", got)
	}
}

func TestCfgModeTopLevel(t *testing.T) {
	input := "a: 1\nb: 2\n"
	root, err := Parse(nil, []byte(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !root.CfgMode {
		t.Fatal("expected CfgMode root")
	}
	if got := adt.Query(root, "b"); got == nil || got.Integer() != 2 {
		t.Fatalf("query b = %v, want integer 2", got)
	}
}

// TestCfgModeTrailingNewline exercises the resolved Open Question
// (SPEC_FULL.md §9): a top-level cfg_mode document always prints with a
// trailing newline, while braced (inline) output never does.
func TestCfgModeTrailingNewline(t *testing.T) {
	input := "a: 1\nb: 2\n"
	root, err := Parse(nil, []byte(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	out := WriteString(root)
	if out != input {
		t.Fatalf("cfg_mode round trip mismatch:\n got: %q\nwant: %q", out, input)
	}

	braced, err := Parse(nil, []byte(`{ a: 1 }`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := WriteString(braced); got == "" || got[len(got)-1] == '\n' {
		t.Fatalf("braced output should not end in a newline, got %q", got)
	}
}

// TestEscapeSequenceRoundTrip exercises a reviewer-flagged gap: a decoded
// escape sequence (parser.go's escapeChars) must come back out through the
// printer as an escape, not as the raw control byte it decoded to.
func TestEscapeSequenceRoundTrip(t *testing.T) {
	input := `{ a: "x\ny", b: 'tab\there', c: "quote\"in\\side" }`
	root, err := Parse(nil, []byte(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if got := adt.Query(root, "a"); got == nil || got.String() != "x\ny" {
		t.Fatalf("a = %q, want %q", got.String(), "x\ny")
	}

	out := WriteString(root)
	if out != input {
		t.Fatalf("escape round trip mismatch:\n got: %q\nwant: %q", out, input)
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse(nil, []byte(`{ a: 1,`)); err == nil {
		t.Fatal("expected error for truncated object")
	}
	if _, err := Parse(nil, []byte(`{ a: [1, 2`)); err == nil {
		t.Fatal("expected error for array left open")
	}
}
