// Package projection implements the stereographic projection engine behind
// every astrolabe plate.
//
// # Overview
//
// An astrolabe maps the celestial sphere onto a flat disc by stereographic
// projection from the celestial pole hidden below the observer's horizon.
// The projection has one property this package leans on everywhere: every
// circle on the sphere that does not pass through the projection point maps
// to an exact circle on the plane. Declination parallels, almucantars
// (circles of constant altitude) and azimuth circles are therefore emitted
// as closed-form [Circle] values rather than sampled arcs, which keeps the
// output small and the curves perfectly smooth at any print resolution.
//
// The one curve that is deliberately not treated as a circle is the
// ecliptic: the composer draws it from densely sampled projected points so
// the zodiac ribs land exactly on the curve (see [Projector.Ecliptic]).
//
// # Coordinate conventions
//
// All angles cross the package boundary in degrees. Returned geometry lives
// in "plate space": the pivot of the instrument at the origin, x growing to
// the right, y growing DOWN the page, matching the SVG and raster sinks so
// no sign flipping happens downstream. Arc angles follow the same
// convention: a point on an arc is centre + r*(cos a, sin a).
//
// A [Projector] is a pure value: construction validates the observing
// latitude once, and every method afterwards is deterministic with no
// hidden state. Southern latitudes are handled by mirroring declinations
// and right ascensions, which is the classic construction for a southern
// astrolabe.
//
// The closed forms derive from the standard treatment of astrolabe
// projection in spherical astronomy; the almucantar and azimuth circle
// constructions follow J.B.A.A. 86, 125 (1976).
package projection
