package ctext_test

import (
	"strings"
	"testing"

	. "github.com/onsi/gomega"
	"pgregory.net/rapid"

	ctext "github.com/toejough/mockify/mockify/run/0_util"
)

func TestChopTerminator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		decl string
		want string
	}{
		{name: "plain", decl: "int f(void);", want: "int f(void)"},
		{name: "trailing whitespace", decl: "int f(void);  \r\n", want: "int f(void)"},
		{name: "no terminator", decl: "int f(void)", want: "int f(void)"},
		{name: "empty", decl: "", want: ""},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := ctext.ChopTerminator(testCase.decl)
			if got != testCase.want {
				t.Errorf("ChopTerminator(%q) = %q, want %q", testCase.decl, got, testCase.want)
			}
		})
	}
}

func TestCountPointers(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(ctext.CountPointers("int")).To(Equal(0))
	g.Expect(ctext.CountPointers("const char *")).To(Equal(1))
	g.Expect(ctext.CountPointers("char **")).To(Equal(2))
	g.Expect(ctext.HasPointer("void*")).To(BeTrue())
	g.Expect(ctext.HasPointer("size_t")).To(BeFalse())
}

func TestNormalizeSpace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "already normal", in: "int add(int a,int b)", want: "int add(int a,int b)"},
		{name: "padding around parens", in: "int add( int a , int b )", want: "int add(int a,int b)"},
		{name: "pointer spacing", in: "char * yolo(int somarg)", want: "char*yolo(int somarg)"},
		{name: "tabs and newlines", in: "unsigned\tlong\n x", want: "unsigned long x"},
		{name: "empty", in: "   ", want: ""},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := ctext.NormalizeSpace(testCase.in)
			if got != testCase.want {
				t.Errorf("NormalizeSpace(%q) = %q, want %q", testCase.in, got, testCase.want)
			}
		})
	}
}

// TestNormalizeSpace_Idempotent_Property proves normalising twice changes nothing.
func TestNormalizeSpace_Idempotent_Property(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		in := rapid.StringMatching(`[ \t\na-z*(),]{0,40}`).Draw(rt, "in")

		once := ctext.NormalizeSpace(in)
		if twice := ctext.NormalizeSpace(once); twice != once {
			rt.Fatalf("NormalizeSpace not idempotent: %q -> %q -> %q", in, once, twice)
		}
	})
}

func TestStripCR(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		in := rapid.String().Draw(rt, "in")

		if strings.Contains(ctext.StripCR(in), "\r") {
			rt.Fatalf("StripCR(%q) left a carriage return", in)
		}
	})
}
