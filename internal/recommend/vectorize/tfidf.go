// Reelmatch - Content-Based Movie and TV Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package vectorize turns item text blobs into L2-normalized TF-IDF rows.
//
// The vocabulary is fit once over the whole corpus and never changes:
//
//	idf(t) = ln((1 + N) / (1 + df(t))) + 1
//	w(d,t) = tf(d,t) * idf(t)
//
// Each row is then scaled to unit Euclidean norm so cosine similarity between
// two rows is their dot product. A row with no vocabulary terms stays empty.
package vectorize

import (
	"errors"
	"math"
	"sort"
	"strings"
	"unicode"
)

// DefaultMaxFeatures caps the vocabulary when no explicit limit is given.
const DefaultMaxFeatures = 10000

// ErrEmptyCorpus is returned when there is nothing to index: either no
// documents at all or no document contains a single usable term.
var ErrEmptyCorpus = errors.New("empty corpus: no terms to index")

// Vocabulary maps terms to fixed column indices. It is immutable after fit.
type Vocabulary struct {
	index map[string]int
	terms []string
	idf   []float64
}

// Len returns the number of columns.
func (v *Vocabulary) Len() int {
	return len(v.terms)
}

// Index returns the column for term.
func (v *Vocabulary) Index(term string) (int, bool) {
	i, ok := v.index[term]
	return i, ok
}

// Term returns the term at column i.
func (v *Vocabulary) Term(i int) string {
	return v.terms[i]
}

// IDF returns the smoothed inverse document frequency of column i.
func (v *Vocabulary) IDF(i int) float64 {
	return v.idf[i]
}

// Entry is one non-zero cell of a TermVector.
type Entry struct {
	Col    int
	Weight float64
}

// TermVector is a sparse row sorted by ascending column.
type TermVector []Entry

// Norm returns the Euclidean norm.
func (tv TermVector) Norm() float64 {
	var sum float64
	for _, e := range tv {
		sum += e.Weight * e.Weight
	}
	return math.Sqrt(sum)
}

// Dot computes the inner product with a merge-join over both sorted rows.
func (tv TermVector) Dot(other TermVector) float64 {
	var dot float64
	i, j := 0, 0
	for i < len(tv) && j < len(other) {
		switch {
		case tv[i].Col == other[j].Col:
			dot += tv[i].Weight * other[j].Weight
			i++
			j++
		case tv[i].Col < other[j].Col:
			i++
		default:
			j++
		}
	}
	return dot
}

// Vectorizer fits a TF-IDF model. The zero value is not usable; call New.
type Vectorizer struct {
	maxFeatures int
	stopWords   wordSet
}

// New returns a Vectorizer with the English stopword list. A non-positive
// maxFeatures falls back to DefaultMaxFeatures.
func New(maxFeatures int) *Vectorizer {
	if maxFeatures <= 0 {
		maxFeatures = DefaultMaxFeatures
	}
	return &Vectorizer{
		maxFeatures: maxFeatures,
		stopWords:   englishStopWords,
	}
}

// FitTransform is shorthand for New(maxFeatures).FitTransform(corpus).
func FitTransform(corpus []string, maxFeatures int) (*Vocabulary, []TermVector, error) {
	return New(maxFeatures).FitTransform(corpus)
}

// termStats accumulates corpus-wide counts for one term.
type termStats struct {
	freq      int // total occurrences across the corpus
	df        int // documents containing the term
	firstSeen int // order of first appearance, for stable tie-breaks
}

// FitTransform builds the vocabulary from corpus and returns one row per
// document, in corpus order.
func (v *Vectorizer) FitTransform(corpus []string) (*Vocabulary, []TermVector, error) {
	if len(corpus) == 0 {
		return nil, nil, ErrEmptyCorpus
	}

	counts := make([]map[string]int, len(corpus))
	stats := make(map[string]*termStats)
	for d, doc := range corpus {
		tf := make(map[string]int)
		for _, tok := range Tokenize(doc) {
			if v.stopWords.has(tok) {
				continue
			}
			tf[tok]++
			st, ok := stats[tok]
			if !ok {
				st = &termStats{firstSeen: len(stats)}
				stats[tok] = st
			}
			st.freq++
		}
		for tok := range tf {
			stats[tok].df++
		}
		counts[d] = tf
	}
	if len(stats) == 0 {
		return nil, nil, ErrEmptyCorpus
	}

	vocab := v.buildVocabulary(stats, len(corpus))

	rows := make([]TermVector, len(corpus))
	for d, tf := range counts {
		rows[d] = vocab.transform(tf)
	}
	return vocab, rows, nil
}

// buildVocabulary keeps the maxFeatures most frequent terms, then assigns
// columns in lexicographic order.
func (v *Vectorizer) buildVocabulary(stats map[string]*termStats, n int) *Vocabulary {
	terms := make([]string, 0, len(stats))
	for t := range stats {
		terms = append(terms, t)
	}

	if len(terms) > v.maxFeatures {
		sort.Slice(terms, func(i, j int) bool {
			a, b := stats[terms[i]], stats[terms[j]]
			if a.freq != b.freq {
				return a.freq > b.freq
			}
			return a.firstSeen < b.firstSeen
		})
		terms = terms[:v.maxFeatures]
	}
	sort.Strings(terms)

	vocab := &Vocabulary{
		index: make(map[string]int, len(terms)),
		terms: terms,
		idf:   make([]float64, len(terms)),
	}
	for col, t := range terms {
		vocab.index[t] = col
		vocab.idf[col] = math.Log(float64(1+n)/float64(1+stats[t].df)) + 1
	}
	return vocab
}

func (v *Vocabulary) transform(tf map[string]int) TermVector {
	row := make(TermVector, 0, len(tf))
	for tok, c := range tf {
		col, ok := v.index[tok]
		if !ok {
			continue
		}
		row = append(row, Entry{Col: col, Weight: float64(c) * v.idf[col]})
	}
	sort.Slice(row, func(i, j int) bool { return row[i].Col < row[j].Col })

	if norm := row.Norm(); norm > 0 {
		for i := range row {
			row[i].Weight /= norm
		}
	}
	return row
}

// Tokenize lower-cases text and returns runs of two or more word characters
// (letters, digits, underscore).
func Tokenize(text string) []string {
	text = strings.ToLower(text)

	var tokens []string
	start := -1
	runes := 0
	flush := func(end int) {
		if start >= 0 && runes >= 2 {
			tokens = append(tokens, text[start:end])
		}
		start, runes = -1, 0
	}
	for i, r := range text {
		if isWordRune(r) {
			if start < 0 {
				start = i
			}
			runes++
			continue
		}
		flush(i)
	}
	flush(len(text))
	return tokens
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r)
}
