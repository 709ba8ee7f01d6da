// Amazon Reviews - Product Catalog Analytics and Recommendations
// Copyright 2026 Soniya S. (ssharm10)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ssharm10/amazon-reviews

package recommend

import "sort"

// sortCandidates applies the canonical ordering: combined score
// descending, rating count descending, stable under full ties. Every
// re-sort in the pipeline reuses this exact two-key ordering.
func sortCandidates(cands []candidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].combined != cands[j].combined {
			return cands[i].combined > cands[j].combined
		}
		return cands[i].ratingCount > cands[j].ratingCount
	})
}

// selectTop runs the ranking stages over scored candidates:
// canonical sort, self-exclusion by title, strict rating-count
// eligibility, the new-item carve-out, fill, merge and truncate to n.
// An empty return means the filters eliminated everything; that is a
// valid outcome, not an error.
//
// Self-exclusion matches by title, not id: if several catalog rows
// share the query item's title, all are excluded.
func selectTop(cands []candidate, queryTitle string, minRatings int64, newAgeDays float64, n int) []candidate {
	if n <= 0 {
		return nil
	}

	sortCandidates(cands)

	eligible := make([]candidate, 0, len(cands))
	for _, c := range cands {
		if c.title == queryTitle {
			continue
		}
		if c.ratingCount > minRatings {
			eligible = append(eligible, c)
		}
	}
	if len(eligible) == 0 {
		return nil
	}

	// Guarantee one slot to the highest-ranked new row, when one
	// exists. Other new rows still compete on merit in the fill step.
	guaranteed := -1
	for i, c := range eligible {
		if c.ageDays <= newAgeDays {
			guaranteed = i
			break
		}
	}

	fill := n
	if guaranteed >= 0 {
		fill = n - 1
	}

	selected := make([]candidate, 0, n)
	if guaranteed >= 0 {
		selected = append(selected, eligible[guaranteed])
	}
	filled := 0
	for i, c := range eligible {
		if filled == fill {
			break
		}
		if i == guaranteed {
			continue
		}
		selected = append(selected, c)
		filled++
	}

	sortCandidates(selected)
	if len(selected) > n {
		selected = selected[:n]
	}
	return selected
}
