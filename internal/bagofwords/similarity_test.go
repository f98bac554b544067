package bagofwords_test

import (
	"math"
	"testing"

	"wordbag/internal/bagofwords"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestSimilarityRawCounts(t *testing.T) {
	m := bagofwords.Matrix{
		Terms: []string{"cat", "dog", "fish"},
		Rows: []bagofwords.Row{
			{Title: "a", Counts: []int{1, 1, 0}},
			{Title: "b", Counts: []int{2, 2, 0}},
			{Title: "c", Counts: []int{0, 0, 3}},
			{Title: "empty", Counts: []int{0, 0, 0}},
		},
	}
	sim := bagofwords.Similarity(m, bagofwords.RawCounts)

	if !approx(sim[0][1], 1) {
		t.Fatalf("parallel rows should be 1, got %f", sim[0][1])
	}
	if sim[0][2] != 0 {
		t.Fatalf("disjoint rows should be 0, got %f", sim[0][2])
	}
	if sim[3][3] != 0 {
		t.Fatalf("empty row should be 0, got %f", sim[3][3])
	}
	for i := range sim {
		for j := range sim {
			if sim[i][j] != sim[j][i] {
				t.Fatalf("matrix not symmetric at %d,%d", i, j)
			}
		}
	}
}

func TestSimilarityTFIDFDownweightsSharedTerms(t *testing.T) {
	m := bagofwords.Matrix{
		Terms: []string{"the", "whale", "ship"},
		Rows: []bagofwords.Row{
			{Title: "a", Counts: []int{10, 1, 0}},
			{Title: "b", Counts: []int{10, 0, 1}},
		},
	}
	raw := bagofwords.Similarity(m, bagofwords.RawCounts)[0][1]
	weighted := bagofwords.Similarity(m, bagofwords.TFIDF)[0][1]
	if weighted >= raw {
		t.Fatalf("tf-idf similarity %f should be below raw %f", weighted, raw)
	}

	idf := bagofwords.IDF(m)
	if !approx(idf[0], math.Log(3.0/3.0)) || !approx(idf[1], math.Log(3.0/2.0)) {
		t.Fatalf("unexpected idf: %v", idf)
	}
}
