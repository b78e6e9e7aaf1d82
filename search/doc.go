// Package search answers read-only lookups over a station collection:
// name substring, line, zone, prefix (autocomplete) and nearest station.
//
// An Engine never copies stations. It reads them from its Source on every
// call, so results always reflect the live state of the underlying
// *core.Network, including stations added or removed after New.
//
// Matching rules:
//
//   - ByName:       case-insensitive substring of the station name.
//   - ByLine:       case-insensitive exact match of the line label.
//   - ByZone:       exact zone number.
//   - Autocomplete: case-insensitive prefix of the station name.
//   - Nearest:      smallest Euclidean distance in (latitude, longitude)
//     space; ties go to the station seen first in Source order.
//
// Every list result is sorted by name ascending and is never nil.
// Each call is O(V) (plus O(k log k) to sort k matches).
package search
