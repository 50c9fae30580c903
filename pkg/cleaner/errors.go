package cleaner

import (
	"fmt"
	"strconv"

	"github.com/jmylchreest/nbclean/pkg/notebook"
)

// ProcessingError reports a document whose shape does not match what a
// rule expects at the point it touches the tree.
type ProcessingError struct {
	// Path locates the offending node, e.g. "cells[2].outputs".
	Path    string
	Message string
}

func (e *ProcessingError) Error() string {
	if e.Path == "" {
		return "document: " + e.Message
	}
	return e.Path + ": " + e.Message
}

func kindMismatch(path string, want notebook.Kind, got *notebook.Value) *ProcessingError {
	return &ProcessingError{
		Path:    path,
		Message: fmt.Sprintf("expected %s, got %s", want, got.Kind()),
	}
}

func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}

func indexPath(parent string, i int) string {
	return parent + "[" + strconv.Itoa(i) + "]"
}

// objectMember returns parent[name] as an object. A missing member is not an
// error; a member of any other type is.
func objectMember(parent *notebook.Object, name, parentPath string) (*notebook.Object, bool, error) {
	v, ok := parent.Get(name)
	if !ok {
		return nil, false, nil
	}
	obj, ok := v.AsObject()
	if !ok {
		return nil, false, kindMismatch(joinPath(parentPath, name), notebook.KindObject, v)
	}
	return obj, true, nil
}

// arrayMember returns parent[name] as an array with the same rules as objectMember.
func arrayMember(parent *notebook.Object, name, parentPath string) (*notebook.Array, bool, error) {
	v, ok := parent.Get(name)
	if !ok {
		return nil, false, nil
	}
	arr, ok := v.AsArray()
	if !ok {
		return nil, false, kindMismatch(joinPath(parentPath, name), notebook.KindArray, v)
	}
	return arr, true, nil
}
