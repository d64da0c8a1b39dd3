package pg

import "testing"

func TestCompactCollapsesWhitespace(t *testing.T) {
	in := "SELECT *\n\tFROM   posts\r\n WHERE id = $1"
	want := "SELECT * FROM posts WHERE id = $1"
	if got := compact(in); got != want {
		t.Fatalf("compact = %q", got)
	}
}

func TestCompactIdentity(t *testing.T) {
	in := "SELECT 1"
	if got := compact(in); got != in {
		t.Fatalf("compact = %q", got)
	}
}
