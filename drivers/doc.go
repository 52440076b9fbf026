// Package drivers implements the keyed registry of driver records used
// by the dispatch engine.
//
// What:
//
//   - Registry stores Driver records keyed by unique string id, with
//     in-place mutation of location and availability state.
//   - Every mutating call is fail-soft: an unknown or duplicate id logs a
//     human-readable line and reports false instead of raising an error.
//   - Accessors return snapshots (copies) sorted by ascending driver id,
//     so callers can never mutate registry state accidentally and
//     iteration order is reproducible.
//
// Why:
//
//   - Greedy matching enumerates available drivers; registry misuse
//     (double-add, update of a removed driver) is an expected runtime
//     condition for a dispatch host, not a programming error.
//
// Complexity:
//
//   - Add / Remove / Get / UpdateLocation / UpdateAvailability: O(1) average.
//   - Available / All: O(D log D) for the sorted snapshot.
//
// Operation logs are diagnostic only, retained until ClearLogs, and never
// participate in control flow.
package drivers
