// Package order provides the Order aggregate and its lifecycle state machine.
//
// The package includes:
//   - Order: the aggregate root managing identity, ownership, assignment and
//     report attachment
//   - Status: the state machine enforcing the fixed transition table
//
// Key business rules:
//   - Lifecycle: CREATED -> PAID -> APPRAISOR_SEARCH -> ASSIGNED -> IN_PROGRESS
//     -> DONE or COMPLETION_FAILURE (both final)
//   - Only the owning client can pay or drive client-side transitions
//   - An appraiser claims an unassigned order by requesting ASSIGNED; afterwards
//     only the assigned appraiser may act on it
//   - DONE requires an attached report; the report path sets it atomically
//
// Orders are created through NewOrder, rehydrated through RestoreOrder, and
// mutated only through validated methods.
package order
