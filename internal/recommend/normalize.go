// Amazon Reviews - Product Catalog Analytics and Recommendations
// Copyright 2026 Soniya S. (ssharm10)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ssharm10/amazon-reviews

package recommend

// degenerateNorm is the neutral value substituted when a feature column
// is constant (max == min) and plain min-max would divide by zero.
const degenerateNorm = 0.5

// minMaxNormalize rescales values into [0,1] with the polarity encoded
// by the sign of weight: positive means higher raw values map toward 1,
// negative inverts so lower raw values map toward 1. Returns a fresh
// slice; the input is never modified.
func minMaxNormalize(values []float64, weight float64) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	if hi == lo {
		for i := range out {
			out[i] = degenerateNorm
		}
		return out
	}

	span := hi - lo
	for i, v := range values {
		n := (v - lo) / span
		if weight < 0 {
			n = 1 - n
		}
		out[i] = n
	}
	return out
}
