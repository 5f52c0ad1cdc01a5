package infer

// levenshtein computes the classic edit-distance DP between a and b.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	m, n := len(ra), len(rb)
	prev := make([]int, n+1)
	cur := make([]int, n+1)
	for j := 0; j <= n; j++ {
		prev[j] = j
	}
	for i := 1; i <= m; i++ {
		cur[0] = i
		for j := 1; j <= n; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := cur[j-1] + 1
			sub := prev[j-1] + cost
			best := del
			if ins < best {
				best = ins
			}
			if sub < best {
				best = sub
			}
			cur[j] = best
		}
		prev, cur = cur, prev
	}
	return prev[n]
}

// maxEditDistance implements spec §7's suggestion threshold:
// max(3, ceil(0.3 * len(name))).
func maxEditDistance(name string) int {
	threshold := (3*len(name) + 9) / 10 // ceil(0.3*len) via integer math
	if threshold < 3 {
		return 3
	}
	return threshold
}

// suggest searches candidates for the closest match to name within the
// spec's edit-distance budget, returning "" if none qualifies.
func suggest(name string, candidates []string) string {
	limit := maxEditDistance(name)
	best := ""
	bestDist := limit + 1
	for _, cand := range candidates {
		if cand == name {
			continue
		}
		d := levenshtein(name, cand)
		if d <= limit && d < bestDist {
			best, bestDist = cand, d
		}
	}
	return best
}
