// Package clip clips line geometry to an axis-aligned rectangle with the
// Cohen–Sutherland algorithm.
//
// What:
//
//   - Line clips one segment and reports whether any part is visible.
//   - Polyline clips a connected path into its visible pieces.
//
// How:
//
//	Each endpoint gets a 4-bit outcode (left, right, bottom, top) telling
//	which half-planes of the rectangle it lies beyond. Both codes zero means
//	the segment is inside; a non-zero AND means both endpoints are beyond the
//	same side and nothing is visible. Otherwise an outside endpoint is moved
//	to the edge it crosses and its code recomputed. Each endpoint can be
//	moved at most twice, so the loop is bounded.
//
// Degenerate input (a zero-length segment, a rectangle of zero width or
// height) terminates the same way and yields either a point or nothing.
//
// Complexity: O(1) per segment, O(n) per polyline of n points.
package clip
