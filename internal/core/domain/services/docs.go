// Package services provides domain services for the order management core.
//
// The package includes:
//   - SubmissionValidator: the submission-time check of a complete order draft
//
// Domain services hold the rules that span the whole aggregate and only apply
// at a specific moment, such as submission, rather than on every field edit.
package services
