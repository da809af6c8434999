package core

import (
	"errors"
	"fmt"
)

var (
	ErrFileNotFound     = errors.New("file not found")
	ErrFileReadFailure  = errors.New("file read failure")
	ErrParsing          = errors.New("parsing error")
	ErrCompile          = errors.New("compile error")
	ErrDegenerateCamera = errors.New("camera up vector is parallel to its direction")
	ErrUnknown          = errors.New("unknown")
)

// LoadErrorKind classifies the failures reported by resource loading.
type LoadErrorKind uint8

const (
	FileNotFound LoadErrorKind = iota
	FileReadFailure
	ParsingError
	CompileError
)

func (k LoadErrorKind) String() string {
	switch k {
	case FileNotFound:
		return "FileNotFound"
	case FileReadFailure:
		return "FileReadFailure"
	case ParsingError:
		return "ParsingError"
	case CompileError:
		return "CompileError"
	default:
		return "Unknown"
	}
}

func (k LoadErrorKind) sentinel() error {
	switch k {
	case FileNotFound:
		return ErrFileNotFound
	case FileReadFailure:
		return ErrFileReadFailure
	case ParsingError:
		return ErrParsing
	case CompileError:
		return ErrCompile
	default:
		return ErrUnknown
	}
}

// ResourceKind names what was being loaded when a LoadError happened.
type ResourceKind string

const (
	ResourceText     ResourceKind = "text"
	ResourceShader   ResourceKind = "shader"
	ResourceImage    ResourceKind = "image"
	ResourceGeometry ResourceKind = "geometry"
)

// LoadError is returned by every loader and by mesh construction.
// errors.Is matches it against the sentinel of its Kind.
type LoadError struct {
	Kind     LoadErrorKind
	Resource ResourceKind
	Path     string
	Err      error
}

func NewLoadError(kind LoadErrorKind, resource ResourceKind, path string, cause error) *LoadError {
	return &LoadError{
		Kind:     kind,
		Resource: resource,
		Path:     path,
		Err:      cause,
	}
}

func (e *LoadError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Kind, e.Resource)
	if e.Path != "" {
		msg = fmt.Sprintf("%s %q", msg, e.Path)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Cause lets github.com/pkg/errors walk through a LoadError.
func (e *LoadError) Cause() error {
	return e.Err
}

func (e *LoadError) Is(target error) bool {
	return target == e.Kind.sentinel()
}
