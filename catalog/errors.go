// SPDX-License-Identifier: MIT
// Package: fractal/catalog
//
// errors.go — sentinel errors for the catalog package.
// Callers branch with errors.Is; context is attached via catalogErrorf.

package catalog

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indicates a name that is not a string, or is empty
// after whitespace removal, or a nil definition passed to Register.
var ErrInvalidArgument = errors.New("catalog: invalid argument")

// ErrNotFound indicates no entry matches the requested name.
var ErrNotFound = errors.New("catalog: no such IFS")

// ErrDuplicate indicates a name or alias that is already registered.
var ErrDuplicate = errors.New("catalog: name already registered")

// ErrMalformed indicates a YAML document that cannot be decoded or whose
// maps do not form a valid definition.
var ErrMalformed = errors.New("catalog: malformed definition document")

// catalogErrorf returns "<method>: <detail>: <sentinel>".
func catalogErrorf(method, detail string, err error) error {
	return fmt.Errorf("%s: %s: %w", method, detail, err)
}

// Method tags used as error prefixes.
const (
	methodGet      = "Get"
	methodLookup   = "Lookup"
	methodRegister = "Register"
	methodLoadYAML = "LoadYAML"
	methodMarshal  = "MarshalDefinition"
)
