package core

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	pkgerrors "github.com/pkg/errors"
)

func TestLoadErrorMatchesItsKind(t *testing.T) {
	tests := []struct {
		kind     LoadErrorKind
		sentinel error
	}{
		{FileNotFound, ErrFileNotFound},
		{FileReadFailure, ErrFileReadFailure},
		{ParsingError, ErrParsing},
		{CompileError, ErrCompile},
	}
	for _, tc := range tests {
		err := NewLoadError(tc.kind, ResourceShader, "a.glsl", nil)
		if !errors.Is(err, tc.sentinel) {
			t.Errorf("%s does not match its sentinel", tc.kind)
		}
		for _, other := range tests {
			if other.kind != tc.kind && errors.Is(err, other.sentinel) {
				t.Errorf("%s matches %v", tc.kind, other.sentinel)
			}
		}
	}
}

func TestLoadErrorUnwrap(t *testing.T) {
	cause := fs.ErrNotExist
	err := NewLoadError(FileNotFound, ResourceText, "missing.txt", pkgerrors.Wrap(cause, "open"))

	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("cause is not reachable through Unwrap")
	}
	if pkgerrors.Cause(err) != cause {
		t.Errorf("Cause = %v", pkgerrors.Cause(err))
	}

	wrapped := pkgerrors.Wrap(err, "mesh")
	var le *LoadError
	if !errors.As(wrapped, &le) || le.Path != "missing.txt" {
		t.Errorf("errors.As lost the LoadError")
	}

	msg := err.Error()
	for _, part := range []string{"FileNotFound", "text", "missing.txt", "open"} {
		if !strings.Contains(msg, part) {
			t.Errorf("message %q misses %q", msg, part)
		}
	}
}
