// Package minheap provides an indexed binary min-heap over
// (vertex, tentative distance) pairs, purpose-built for Dijkstra's
// relaxation loop.
//
// What:
//
//   - Heap keeps a slice-backed binary min-heap ordered by distance and a
//     position index mapping each present vertex to its current array slot.
//   - Insert, ExtractMin and DecreaseKey run in O(log n); Contains, Size
//     and IsEmpty are O(1) thanks to the position index.
//   - DecreaseKey on an absent vertex degrades to a fresh Insert, so the
//     relaxation loop never has to branch on membership.
//
// Why:
//
//   - Lazy decrease-key (pushing duplicates) trades heap size for code
//     simplicity; an indexed heap keeps exactly one entry per vertex and
//     makes the position/contents invariant a directly testable property.
//
// Tie behavior (canonical, for reproducibility):
//
//   - The comparator is strict less-than on distance. Entries with equal
//     distances keep their existing relative order; there is no secondary
//     tie-break key. Sift operations only move an entry past another when
//     its distance is strictly smaller.
//
// Invariant:
//
//   - After every mutating operation the array is a valid min-heap and the
//     position index exactly mirrors which slot holds each present vertex;
//     a vertex appears at most once. This is the component's only
//     invariant and the primary target of its property tests.
//
// Complexity:
//
//   - Insert / ExtractMin / DecreaseKey: O(log n)
//   - Contains / Size / IsEmpty:         O(1)
//   - Space:                             O(n)
//
// ExtractMin on an empty heap returns the sentinel Entry (vertex −1,
// distance +Inf) rather than failing; callers loop on IsEmpty.
package minheap
