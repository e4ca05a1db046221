package dsl_test

import (
	"testing"

	duet "github.com/duet-json/duet"
	"github.com/duet-json/duet/dsl"
	"github.com/duet-json/duet/tree"
)

func TestString_RoundTrip(t *testing.T) {
	conv := dsl.String()
	text := duet.Encode(conv, 0, "héllo \"quoted\"")
	got, err := duet.DecodeString(conv, text)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if got != "héllo \"quoted\"" {
		t.Fatalf("round trip = %q", got)
	}
}

func TestBool_RoundTrip(t *testing.T) {
	conv := dsl.Bool()
	for _, b := range []bool{true, false} {
		got, err := duet.DecodeString(conv, duet.Encode(conv, 0, b))
		if err != nil {
			t.Fatalf("decode error: %v", err)
		}
		if got != b {
			t.Fatalf("round trip = %v, want %v", got, b)
		}
	}
}

func TestFloat_RoundTrip(t *testing.T) {
	conv := dsl.Float()
	for _, f := range []float64{0, 1.5, -2.25, 1e9} {
		got, err := duet.DecodeString(conv, duet.Encode(conv, 0, f))
		if err != nil {
			t.Fatalf("decode error for %v: %v", f, err)
		}
		if got != f {
			t.Fatalf("round trip = %v, want %v", got, f)
		}
	}
}

func TestInt_RejectsFractionalNumbers(t *testing.T) {
	_, err := duet.DecodeString(dsl.Int(), "4.5")
	iss, ok := duet.AsIssues(err)
	if !ok || iss[0].Code != duet.CodeInvalidType {
		t.Fatalf("expected invalid_type for fractional number, got %v", err)
	}
}

func TestInt_AcceptsIntegralFloatSyntax(t *testing.T) {
	got, err := duet.DecodeString(dsl.Int(), "4.0")
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if got != 4 {
		t.Fatalf("decode = %d", got)
	}
}

func TestInt_RejectsOutOfRange(t *testing.T) {
	_, err := duet.DecodeString(dsl.Int(), "1e300")
	if _, ok := duet.AsIssues(err); !ok {
		t.Fatalf("expected issues for out-of-range number, got %v", err)
	}
}

func TestNull_FixedValue(t *testing.T) {
	conv := dsl.Null("fallback")
	if got := duet.Encode(conv, 0, "anything"); got != "null" {
		t.Fatalf("encode = %q", got)
	}
	got, err := duet.DecodeString(conv, "null")
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if got != "fallback" {
		t.Fatalf("decode = %q", got)
	}
}

func TestNull_RejectsNonNull(t *testing.T) {
	_, err := duet.DecodeString(dsl.Null(0), "7")
	iss, ok := duet.AsIssues(err)
	if !ok || iss[0].Code != duet.CodeInvalidNull {
		t.Fatalf("expected invalid_null, got %v", err)
	}
}

func TestScalars_NullInputReportsInvalidNull(t *testing.T) {
	_, err := duet.DecodeString(dsl.String(), "null")
	iss, ok := duet.AsIssues(err)
	if !ok || iss[0].Code != duet.CodeInvalidNull {
		t.Fatalf("expected invalid_null for null where string expected, got %v", err)
	}
}

func TestValue_IdentityPassthrough(t *testing.T) {
	conv := dsl.Value()
	in := tree.Object(
		tree.Entry("a", tree.Number(1)),
		tree.Entry("b", tree.Array(tree.String("x"), tree.Null())),
	)
	out, err := duet.DecodeValue(conv, in)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if !out.Equal(in) {
		t.Fatalf("identity decode changed the tree: %s", out)
	}
	if !conv.EncodeValue(in).Equal(in) {
		t.Fatalf("identity encode changed the tree")
	}
}
