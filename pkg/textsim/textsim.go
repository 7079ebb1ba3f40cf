// Package textsim provides the string similarity ratio used for typo
// correction and near-duplicate title detection. The measure is 2*M/T, where
// M is the total size of matching blocks found by recursively locating the
// longest common substring, and T is the combined length of both inputs.
// Rune-based, so Hangul and ASCII compare the same way.
package textsim

// Ratio returns the similarity of two strings in [0, 1].
func Ratio(a, b string) float64 {
	ar := []rune(a)
	br := []rune(b)
	total := len(ar) + len(br)
	if total == 0 {
		return 1.0
	}
	matched := matchingSize(ar, br, 0, len(ar), 0, len(br))
	return 2.0 * float64(matched) / float64(total)
}

// matchingSize sums the lengths of all matching blocks between
// a[alo:ahi] and b[blo:bhi].
func matchingSize(a, b []rune, alo, ahi, blo, bhi int) int {
	i, j, k := longestMatch(a, b, alo, ahi, blo, bhi)
	if k == 0 {
		return 0
	}
	return k +
		matchingSize(a, b, alo, i, blo, j) +
		matchingSize(a, b, i+k, ahi, j+k, bhi)
}

// longestMatch finds the longest matching block in a[alo:ahi] and b[blo:bhi].
// Ties resolve to the earliest start in a, then the earliest start in b.
func longestMatch(a, b []rune, alo, ahi, blo, bhi int) (besti, bestj, bestk int) {
	besti, bestj = alo, blo

	// lengths[j] holds the length of the match ending at a[i-1], b[j-1]
	lengths := make(map[int]int)
	for i := alo; i < ahi; i++ {
		next := make(map[int]int)
		for j := blo; j < bhi; j++ {
			if a[i] != b[j] {
				continue
			}
			k := lengths[j-1] + 1
			next[j] = k
			if k > bestk {
				besti, bestj, bestk = i-k+1, j-k+1, k
			}
		}
		lengths = next
	}
	return besti, bestj, bestk
}
