// Package kernel provides the shared value objects of the order management
// domain: identifiers, money amounts, and validated customer contact values.
//
// All types here are immutable value objects created through constructor
// functions. Zero values are invalid and fail Validate, which keeps every
// instance that circulates in the domain within its invariants.
package kernel
