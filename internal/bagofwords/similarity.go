package bagofwords

import "math"

// Weighting selects how row counts are scaled before comparison.
type Weighting int

const (
	// RawCounts compares the term counts directly.
	RawCounts Weighting = iota
	// TFIDF multiplies each count by log((N+1)/(1+df)).
	TFIDF
)

// IDF returns the inverse document frequency of each column of m, where df
// is the number of rows with a non-zero count.
func IDF(m Matrix) []float64 {
	idf := make([]float64, len(m.Terms))
	n := float64(len(m.Rows))
	for col := range m.Terms {
		df := 0
		for _, row := range m.Rows {
			if row.Counts[col] > 0 {
				df++
			}
		}
		idf[col] = math.Log((n + 1) / (1 + float64(df)))
	}
	return idf
}

// Similarity returns the pairwise cosine similarity of the rows of m. The
// result is symmetric; a row with no counted terms has similarity 0 to
// every row, itself included.
func Similarity(m Matrix, weighting Weighting) [][]float64 {
	var idf []float64
	if weighting == TFIDF {
		idf = IDF(m)
	}

	vectors := make([][]float64, len(m.Rows))
	norms := make([]float64, len(m.Rows))
	for i, row := range m.Rows {
		v := make([]float64, len(row.Counts))
		var sq float64
		for col, c := range row.Counts {
			w := float64(c)
			if idf != nil {
				w *= idf[col]
			}
			v[col] = w
			sq += w * w
		}
		vectors[i] = v
		norms[i] = math.Sqrt(sq)
	}

	out := make([][]float64, len(m.Rows))
	for i := range out {
		out[i] = make([]float64, len(m.Rows))
	}
	for i := range vectors {
		for j := i; j < len(vectors); j++ {
			s := cosine(vectors[i], vectors[j], norms[i], norms[j])
			out[i][j] = s
			out[j][i] = s
		}
	}
	return out
}

func cosine(a, b []float64, normA, normB float64) float64 {
	if normA == 0 || normB == 0 {
		return 0
	}
	var dot float64
	for i := range a {
		dot += a[i] * b[i]
	}
	if dot == 0 {
		return 0
	}
	return dot / (normA * normB)
}
