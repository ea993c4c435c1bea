// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Configuration
	OpResolveConfig   Op = "resolve configuration"
	OpValidatePattern Op = "validate rename pattern"

	// File collection
	OpCollectFiles Op = "collect music files"

	// Per-file processing
	OpProcessFile Op = "process file"
	OpDetectKind  Op = "detect container format"
	OpResolveTags Op = "resolve tags"
	OpWriteTags   Op = "write tags"
	OpReadTags    Op = "read file tags"

	// Cover art
	OpSearchCover Op = "find cover art"
	OpLoadCover   Op = "load cover art"
	OpResizeCover Op = "resize cover art"

	// Renaming
	OpRenameFile Op = "rename file"

	// Directory inference
	OpInferDisc  Op = "infer disc numbering"
	OpInferTrack Op = "infer track numbering"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
