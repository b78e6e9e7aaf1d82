// SPDX-License-Identifier: MIT

// Package fare prices a resolved journey from its distance and the highest
// zone it touches.
//
// The tariff is linear:
//
//	fare = round(Base + PerKm·distance + ZoneSurcharge·maxZone)
//
// with halves rounded up. The defaults (Base 5, PerKm 0.8, ZoneSurcharge 3)
// are the operator's published tariff. A return journey is discounted by a
// fixed 5 on twice the single fare, and every fare falls into one of four
// bands (see Category).
//
// Calculator.Fare has the dijkstra.FareFunc signature, so a tariff can be
// plugged straight into shortest-path queries:
//
//	res := dijkstra.ShortestPath(n, "A", "B", dijkstra.WithFare(fare.Default().Fare))
package fare
