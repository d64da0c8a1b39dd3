package ch

import "testing"

func TestBuildClientInfo(t *testing.T) {
	ci := BuildClientInfo("polyglot", "detect")
	if len(ci.Products) < 2 {
		t.Fatalf("products = %v", ci.Products)
	}
	if ci.Products[0].Name != "polyglot" {
		t.Fatalf("app = %q", ci.Products[0].Name)
	}
	if ci.Products[1].Name != "role" || ci.Products[1].Version != "detect" {
		t.Fatalf("role = %+v", ci.Products[1])
	}
}

func TestBuildClientInfoDefaultApp(t *testing.T) {
	ci := BuildClientInfo("", "api")
	if ci.Products[0].Name != "polyglot" {
		t.Fatalf("app = %q", ci.Products[0].Name)
	}
}
