// Package restyle rewrites arbitrary input vector markup into
// house-style geometry.
//
// The engine is deterministic: identical input markup always yields an
// identical NormalizedIcon. Steps, in order:
//
//  1. Strip every disallowed construct (text, raster, defs, filters,
//     styles, gradients, masks, clip paths) - stripped, not rejected.
//  2. Reduce the remaining geometry to the house primitive maximum,
//     preserving the most significant shapes.
//  3. Rescale and translate uniformly so content fits the canvas with
//     the house margin, centred.
//  4. Force the house stroke spec (applied at the root on render).
//  5. Compute the canonical path hash over sorted, rounded geometry.
package restyle
