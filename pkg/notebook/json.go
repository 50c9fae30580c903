package notebook

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/go-json-experiment/json/jsontext"
)

// Indent is the indentation used when writing notebooks. It matches what
// Jupyter itself writes.
const Indent = " "

// ParseError reports that a document is not valid JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return "invalid JSON: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse decodes a single JSON document.
// Duplicate object names are accepted; the last value wins.
func Parse(data []byte) (*Value, error) {
	dec := jsontext.NewDecoder(bytes.NewReader(data), jsontext.AllowDuplicateNames(true))

	v, err := decodeValue(dec)
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, &ParseError{Err: err}
	}

	if _, err := dec.ReadToken(); err != io.EOF {
		if err == nil {
			err = fmt.Errorf("unexpected data after top-level value at byte offset %d", dec.InputOffset())
		}
		return nil, &ParseError{Err: err}
	}
	return v, nil
}

func decodeValue(dec *jsontext.Decoder) (*Value, error) {
	switch dec.PeekKind() {
	case '{':
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		obj := NewObject()
		for dec.PeekKind() != '}' {
			name, err := dec.ReadToken()
			if err != nil {
				return nil, err
			}
			key := name.String()
			v, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			obj.Set(key, v)
		}
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		return ObjectValue(obj), nil

	case '[':
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		arr := NewArray()
		for dec.PeekKind() != ']' {
			v, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			arr.Append(v)
		}
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		return ArrayValue(arr), nil

	case '0':
		// Keep the literal so 1.0 stays 1.0 and large integers keep precision.
		raw, err := dec.ReadValue()
		if err != nil {
			return nil, err
		}
		return Number(string(raw)), nil
	}

	tok, err := dec.ReadToken()
	if err != nil {
		return nil, err
	}
	switch tok.Kind() {
	case 'n':
		return Null(), nil
	case 't', 'f':
		return Bool(tok.Bool()), nil
	case '"':
		return String(tok.String()), nil
	}
	return nil, fmt.Errorf("unexpected token %s at byte offset %d", tok.Kind(), dec.InputOffset())
}

// Marshal encodes v with one-space indentation. Non-ASCII characters are
// written as-is and no trailing newline is added.
func Marshal(v *Value) ([]byte, error) {
	var compact bytes.Buffer
	enc := jsontext.NewEncoder(&compact)
	if err := encodeValue(enc, v); err != nil {
		return nil, err
	}

	var out bytes.Buffer
	out.Grow(compact.Len() * 2)
	if err := json.Indent(&out, bytes.TrimRight(compact.Bytes(), "\n"), "", Indent); err != nil {
		return nil, fmt.Errorf("indenting output: %w", err)
	}
	return out.Bytes(), nil
}

func encodeValue(enc *jsontext.Encoder, v *Value) error {
	switch v.Kind() {
	case KindNull:
		return enc.WriteToken(jsontext.Null)
	case KindBool:
		return enc.WriteToken(jsontext.Bool(v.b))
	case KindNumber:
		return enc.WriteValue(jsontext.Value(v.s))
	case KindString:
		return enc.WriteToken(jsontext.String(v.s))
	case KindArray:
		if err := enc.WriteToken(jsontext.ArrayStart); err != nil {
			return err
		}
		for _, el := range v.arr.elems {
			if err := encodeValue(enc, el); err != nil {
				return err
			}
		}
		return enc.WriteToken(jsontext.ArrayEnd)
	case KindObject:
		if err := enc.WriteToken(jsontext.ObjectStart); err != nil {
			return err
		}
		for _, m := range v.obj.members {
			if err := enc.WriteToken(jsontext.String(m.Name)); err != nil {
				return err
			}
			if err := encodeValue(enc, m.Value); err != nil {
				return err
			}
		}
		return enc.WriteToken(jsontext.ObjectEnd)
	}
	return fmt.Errorf("cannot encode value of kind %s", v.Kind())
}
