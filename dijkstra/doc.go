// Package dijkstra answers point-to-point route queries over a core.Network
// with Dijkstra's algorithm and post-processes the resolved path into a
// PathResult (stations, lines touched, distance, fare, transfers).
//
// Overview:
//
//   - A min-heap frontier keyed by tentative distance expands the closest
//     unfinished station first. All distances start at +Inf except the
//     source (0).
//   - Lazy decrease-key: improved distances push a new heap entry; stale
//     entries are skipped when popped.
//   - The search stops as soon as the destination is popped (finalized), not
//     when it is first relaxed.
//   - The path is rebuilt by walking the predecessor map backwards from the
//     destination and reversing.
//
// Post-processing:
//
//   - Lines: the distinct line labels of every station on the path (sorted).
//   - Transfers: +1 every time two consecutive stations carry different line
//     labels (the station's own Line attribute, not edge metadata).
//   - MaxZone: the highest zone on the path, fed with the distance into the
//     FareFunc (EstimateFare unless WithFare is given).
//
// Sentinels:
//
// Unknown endpoints or an unreachable destination yield a PathResult with
// Distance == NoPath, an empty Path and zero fare. Check Found() before use.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) (distance/predecessor maps plus lazy heap entries)
package dijkstra
