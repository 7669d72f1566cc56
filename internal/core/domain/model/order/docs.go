// Package order provides the domain entities and business logic of the order
// lifecycle: the Order aggregate root, the Item value object, and the Status
// state machine.
//
// Key business rules:
//   - Orders are created in PENDING status with at least one item
//   - The total amount always equals the sum of item subtotals
//   - Items and notes may change only while the order is PENDING
//   - Status follows the workflow PENDING -> CONFIRMED -> PROCESSING ->
//     SHIPPED -> DELIVERED, with cancellation allowed from PENDING and
//     CONFIRMED only
//   - DELIVERED and CANCELLED are terminal
//
// The package follows Domain-Driven Design conventions: private fields,
// factory constructors, and typed domain errors that unwrap to sentinel
// values for classification with errors.Is.
package order
