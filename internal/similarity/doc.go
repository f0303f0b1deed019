// Oraclia - Consultation Marketplace Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oraclia

// Package similarity maintains the pairwise provider-similarity matrix
// used by the recommendation engine.
//
// Similarity between two providers is a weighted 0-100 blend:
//
//	sim(a, b) = 40 * category_overlap(a, b) +
//	            20 * price_proximity(a, b) +
//	            20 * rating_proximity(a, b) +
//	            20 * specialty_overlap(a, b)
//
// Every term is symmetric under swapping a and b, so sim(a,b) == sim(b,a)
// holds for the whole matrix by construction.
//
// The matrix is derived state: registry mutations mark it dirty and the
// next read rebuilds it lazily over a fresh snapshot. A supervised
// refresher can additionally rebuild on an interval so an idle matrix
// does not pay the rebuild cost inside a client-facing request.
package similarity
