package typesystem

import "fmt"

// UnresolvedTypeError indicates a type name could not be resolved by any
// provider.
type UnresolvedTypeError struct {
	Name string
}

func (e *UnresolvedTypeError) Error() string {
	return fmt.Sprintf("type not resolved: %s", e.Name)
}

func NewUnresolvedTypeError(name string) *UnresolvedTypeError {
	return &UnresolvedTypeError{Name: name}
}

// UnresolvedSymbolError indicates a symbol name could not be resolved.
type UnresolvedSymbolError struct {
	Name string
}

func (e *UnresolvedSymbolError) Error() string {
	return fmt.Sprintf("symbol not resolved: %s", e.Name)
}

func NewUnresolvedSymbolError(name string) *UnresolvedSymbolError {
	return &UnresolvedSymbolError{Name: name}
}
