package quizgen

import "math/rand"

// SelectWrong picks k distinct wrong answers for a question.
//
// The real pool is deduplicated, stripped of empties and of the correct
// value, then shuffled. When it cannot supply k values on its own, the
// fallback vocabulary is shuffled and appended (again excluding the correct
// value and anything already chosen) until k are available or the fallback
// is exhausted.
//
// The result may be shorter than k when even pool+fallback cannot supply
// enough distinct values; callers treat a short result as "skip this
// question". Insufficiency is never an error.
func SelectWrong(rng *rand.Rand, correct string, pool, fallback []string, k int) []string {
	chosen := make([]string, 0, k)
	seen := map[string]bool{correct: true, "": true}

	for _, v := range shuffled(rng, pool) {
		if seen[v] {
			continue
		}
		seen[v] = true
		chosen = append(chosen, v)
		if len(chosen) == k {
			return chosen
		}
	}

	for _, v := range shuffled(rng, fallback) {
		if seen[v] {
			continue
		}
		seen[v] = true
		chosen = append(chosen, v)
		if len(chosen) == k {
			return chosen
		}
	}

	return chosen
}
