package notebook

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestParse_PreservesMemberOrder(t *testing.T) {
	v, err := Parse([]byte(`{"zeta": 1, "alpha": 2, "mid": 3}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	obj, ok := v.AsObject()
	if !ok {
		t.Fatalf("expected object, got %s", v.Kind())
	}
	got := strings.Join(obj.Keys(), ",")
	if got != "zeta,alpha,mid" {
		t.Errorf("Keys() = %q, want %q", got, "zeta,alpha,mid")
	}
}

func TestParse_Scalars(t *testing.T) {
	v, err := Parse([]byte(`{"s": "xé\n", "n": 1.50, "big": 12345678901234567890, "t": true, "f": false, "z": null}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	obj, _ := v.AsObject()

	s, _ := obj.Get("s")
	if got, ok := s.AsString(); !ok || got != "xé\n" {
		t.Errorf("s = %q, want %q", got, "xé\n")
	}

	n, _ := obj.Get("n")
	if got, ok := n.NumberLiteral(); !ok || got != "1.50" {
		t.Errorf("n = %q, want %q", got, "1.50")
	}

	big, _ := obj.Get("big")
	if got, _ := big.NumberLiteral(); got != "12345678901234567890" {
		t.Errorf("big = %q, want literal preserved", got)
	}

	tv, _ := obj.Get("t")
	if got, ok := tv.AsBool(); !ok || !got {
		t.Errorf("t = %v, want true", got)
	}

	fv, _ := obj.Get("f")
	if got, ok := fv.AsBool(); !ok || got {
		t.Errorf("f = %v, want false", got)
	}

	z, _ := obj.Get("z")
	if !z.IsNull() {
		t.Errorf("z kind = %s, want null", z.Kind())
	}
}

func TestParse_DuplicateNamesLastWins(t *testing.T) {
	v, err := Parse([]byte(`{"a": 1, "b": 2, "a": 3}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	obj, _ := v.AsObject()

	if got := strings.Join(obj.Keys(), ","); got != "a,b" {
		t.Errorf("Keys() = %q, want %q", got, "a,b")
	}
	a, _ := obj.Get("a")
	if got, _ := a.NumberLiteral(); got != "3" {
		t.Errorf("a = %q, want %q", got, "3")
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace_only", "   \n"},
		{"truncated_object", `{"cells": [`},
		{"missing_value", `{"a": }`},
		{"trailing_comma", `{"a": 1,}`},
		{"trailing_data", `{"a": 1} {"b": 2}`},
		{"single_quotes", `{'a': 1}`},
		{"invalid_utf8", "{\"a\": \"\xff\"}"},
		{"nan", `{"loss": NaN}`},
		{"infinity", `{"loss": Infinity}`},
		{"negative_infinity_in_array", `[1, -Infinity]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			if err == nil {
				t.Fatal("expected error")
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected *ParseError, got %T: %v", err, err)
			}
			if !strings.HasPrefix(err.Error(), "invalid JSON: ") {
				t.Errorf("Error() = %q, want prefix %q", err.Error(), "invalid JSON: ")
			}
		})
	}
}

func TestParse_EmptyInputIsUnexpectedEOF(t *testing.T) {
	_, err := Parse(nil)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected io.ErrUnexpectedEOF, got %v", err)
	}
}

func TestMarshal_Format(t *testing.T) {
	v, err := Parse([]byte(`{"b":1,"a":[],"c":{"x":"é <tag> & more"},"d":[true,null],"e":{}}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	got, err := Marshal(v)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := `{
 "b": 1,
 "a": [],
 "c": {
  "x": "é <tag> & more"
 },
 "d": [
  true,
  null
 ],
 "e": {}
}`
	if string(got) != want {
		t.Errorf("Marshal() =\n%s\nwant\n%s", got, want)
	}
}

func TestMarshal_EscapesControlCharacters(t *testing.T) {
	got, err := Marshal(String("line\n\"quoted\"\t"))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(got) != `"line\n\"quoted\"\t"` {
		t.Errorf("Marshal() = %s", got)
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	input := `{
 "cells": [
  {
   "cell_type": "code",
   "execution_count": 1,
   "metadata": {},
   "outputs": [],
   "source": [
    "print('héllo')"
   ]
  }
 ],
 "metadata": {
  "kernelspec": {
   "name": "python3"
  }
 },
 "nbformat": 4,
 "nbformat_minor": 0
}`
	v, err := Parse([]byte(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	got, err := Marshal(v)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(got) != input {
		t.Errorf("round trip changed document:\n%s", got)
	}
}

func TestMarshal_NilValueIsNull(t *testing.T) {
	got, err := Marshal(nil)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(got) != "null" {
		t.Errorf("Marshal(nil) = %s, want null", got)
	}
}
