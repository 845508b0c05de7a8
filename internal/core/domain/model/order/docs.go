// Package order provides the domain model of a furniture sales order: the
// Order aggregate root, its lines with per-line tax treatment, the pricing
// engine that derives totals and outstanding balance, the field constraint
// engine, and the four lifecycle status axes.
//
// The package includes:
//   - Order: the aggregate root owning customer identity, addresses, lines,
//     payment settings, and lifecycle state
//   - Line: one product entry with quantity, unit price, and tax treatment
//   - ComputeTotals: the pure pricing engine (line amounts, gated
//     surcharges, whole-unit total, two-decimal payment due)
//   - DeriveConstraints: the pure field constraint engine driven by
//     category, payment settings, and billing modes
//   - ApprovalStatus, ProductionStatus, BillingStatus, DispatchStatus: the
//     four lifecycle axes
//
// Key business rules:
//   - A line's taxed amount adds the numeric rate on top of qty*unitPrice,
//     or adds nothing for the tax-inclusive treatment
//   - Freight and installation only count toward the total when their
//     billing mode applies the surcharge on this order
//   - The total is a whole-currency figure; payment due keeps two decimals
//     and may be negative on overpayment
//   - Goods may only be marked Dispatched or Delivered once billing is
//     complete, and Delivered requires a receipt stamp; this is the only
//     cross-axis lifecycle constraint
//   - Dispatch changes are two-phase: requested, then explicitly confirmed
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
