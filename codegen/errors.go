package codegen

import "fmt"

// ValidationError reports a codegen block missing a required field.
type ValidationError struct {
	// Project is the project whose codegen block is invalid.
	Project string

	// Field is the first required field found missing.
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("graphql: codegen for project %q is missing required field %q", e.Project, e.Field)
}

// GeneratorError reports a generator executable that could not be run
// or exited with a failure.
type GeneratorError struct {
	// Project is the project being generated.
	Project string

	// Generator is the executable that failed.
	Generator string

	// Err is the underlying process error.
	Err error
}

func (e *GeneratorError) Error() string {
	return fmt.Sprintf("graphql: generator %s failed for project %q: %s", e.Generator, e.Project, e.Err)
}

func (e *GeneratorError) Unwrap() error { return e.Err }
