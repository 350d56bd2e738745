// Package shared holds the error constructors used across the catalog,
// reconciliation and ingestion code paths.
package shared

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// Message prefixes identifying the fatal error kinds. The CLI keys exit codes
// off the errbuilder code and these prefixes.
const (
	PrefixSchemaViolation   = "schema violation: "
	PrefixNamingConflict    = "naming conflict: "
	PrefixIngestionMismatch = "ingestion mismatch: "
)

// SchemaViolation reports a document whose shape does not match the
// expected per-type structure.
func SchemaViolation(format string, args ...any) *errbuilder.ErrBuilder {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(PrefixSchemaViolation + fmt.Sprintf(format, args...))
}

// DuplicateName reports a full name extracted twice without id suffixing.
func DuplicateName(fullName string) *errbuilder.ErrBuilder {
	return errbuilder.New().
		WithCode(errbuilder.CodeAlreadyExists).
		WithMsg(fmt.Sprintf("%s%s already exists", PrefixNamingConflict, fullName))
}

// InvalidNameCharacter reports a display name containing a character the
// external workflow tool cannot accept.
func InvalidNameCharacter(name string, char string) *errbuilder.ErrBuilder {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("%s%q contains an invalid character %q", PrefixNamingConflict, name, char))
}

// IngestionMismatch reports a selected computed variable with no value in
// the results being ingested.
func IngestionMismatch(fullName string) *errbuilder.ErrBuilder {
	return errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(fmt.Sprintf("%scould not find %s in results", PrefixIngestionMismatch, fullName))
}
