// Package synonym resolves equivalent terms (numbers, units, abbreviations,
// chemical formulas and similar) so answer evaluation can accept "USA" for
// "United States" or "H2O" for "water".
//
// A Resolver is immutable once built and safe for concurrent use without
// locking. Default returns the process-wide resolver over the built-in table.
package synonym

import (
	"sort"
	"strings"
	"sync"
)

// PhraseMatchScore is the similarity reported for full phrase equivalence.
const PhraseMatchScore = 0.95

// Resolver answers synonym queries against a reverse index built from a
// Table. A term listed under several canonicals resolves to all of them.
type Resolver struct {
	index map[string][]string // normalized term -> canonical forms
}

// New builds a Resolver from table. Keys and synonyms are normalized; empty
// entries are skipped.
func New(table Table) *Resolver {
	r := &Resolver{index: make(map[string][]string, len(table)*4)}
	for canonical, synonyms := range table {
		c := Normalize(canonical)
		if c == "" {
			continue
		}
		r.add(c, c)
		for _, syn := range synonyms {
			if s := Normalize(syn); s != "" {
				r.add(s, c)
			}
		}
	}
	for term := range r.index {
		sort.Strings(r.index[term])
	}
	return r
}

func (r *Resolver) add(term, canonical string) {
	for _, existing := range r.index[term] {
		if existing == canonical {
			return
		}
	}
	r.index[term] = append(r.index[term], canonical)
}

var defaultResolver = sync.OnceValue(func() *Resolver {
	return New(builtinTable)
})

// Default returns the shared Resolver over the built-in table. It is built
// on first use and never modified afterwards.
func Default() *Resolver {
	return defaultResolver()
}

// Canonical returns the canonical forms of term, or nil when term is unknown.
// Terms not found verbatim are retried without periods, so "U.S.A" and
// "usa" resolve alike.
func (r *Resolver) Canonical(term string) []string {
	n := Normalize(term)
	if n == "" {
		return nil
	}
	return r.lookup(n)
}

func (r *Resolver) lookup(normalized string) []string {
	if c, ok := r.index[normalized]; ok {
		return c
	}
	if bare := stripPeriods(normalized); bare != normalized {
		if c, ok := r.index[bare]; ok {
			return c
		}
	}
	return nil
}

// AreSynonyms reports whether a and b are the same term after normalization
// or share a canonical form.
func (r *Resolver) AreSynonyms(a, b string) bool {
	return r.synonymous(Normalize(a), Normalize(b))
}

func (r *Resolver) synonymous(na, nb string) bool {
	if na == "" || nb == "" {
		return false
	}
	if na == nb || stripPeriods(na) == stripPeriods(nb) {
		return true
	}
	ca, cb := r.lookup(na), r.lookup(nb)
	for _, x := range ca {
		for _, y := range cb {
			if x == y {
				return true
			}
		}
	}
	return false
}

// ArePhraseSynonyms reports whether two phrases are equivalent: either the
// same term (see AreTermSynonyms) or, for multi-word input, the same words in
// any order (see MatchUnordered).
func (r *Resolver) ArePhraseSynonyms(a, b string) bool {
	na, nb := Normalize(a), Normalize(b)
	if r.equivalentTerms(na, nb) {
		return true
	}
	if !strings.Contains(na, " ") && !strings.Contains(nb, " ") {
		return false
	}
	return r.matchUnordered(na, nb)
}

// AreTermSynonyms reports whether a and b name the same term, either
// directly or once stop words are dropped ("the United States" and "USA").
func (r *Resolver) AreTermSynonyms(a, b string) bool {
	return r.equivalentTerms(Normalize(a), Normalize(b))
}

func (r *Resolver) equivalentTerms(na, nb string) bool {
	if r.synonymous(na, nb) {
		return true
	}
	return r.synonymous(strings.Join(ContentWords(na), " "), strings.Join(ContentWords(nb), " "))
}

// MatchUnordered reports whether a and b, with stop words removed and the
// remaining words sorted by canonical form, have the same length and every
// position is literally equal or synonymous.
func (r *Resolver) MatchUnordered(a, b string) bool {
	return r.matchUnordered(Normalize(a), Normalize(b))
}

func (r *Resolver) matchUnordered(na, nb string) bool {
	wa, wb := ContentWords(na), ContentWords(nb)
	if len(wa) == 0 || len(wa) != len(wb) {
		return false
	}
	r.sortByCanonical(wa)
	r.sortByCanonical(wb)
	for i := range wa {
		if !r.synonymous(wa[i], wb[i]) {
			return false
		}
	}
	return true
}

// sortByCanonical orders words by their canonical form so that synonyms in
// different positions line up ("two cats" and "cats 2" both sort to 2, cats).
func (r *Resolver) sortByCanonical(words []string) {
	key := func(w string) string {
		if c := r.lookup(w); len(c) > 0 {
			return c[0]
		}
		return stripPeriods(w)
	}
	sort.SliceStable(words, func(i, j int) bool {
		return key(words[i]) < key(words[j])
	})
}

// Similarity scores how much of two phrases match word for word.
// Equivalent phrases score PhraseMatchScore. Otherwise each word of a is
// greedily paired with an unused equal or synonymous word of b and the
// result is matched / max(len(a), len(b)). Empty input scores 0.
func (r *Resolver) Similarity(a, b string) float64 {
	na, nb := Normalize(a), Normalize(b)
	if na == "" || nb == "" {
		return 0
	}
	if r.ArePhraseSynonyms(na, nb) {
		return PhraseMatchScore
	}

	wa, wb := strings.Fields(na), strings.Fields(nb)
	used := make([]bool, len(wb))
	matched := 0
	for _, w := range wa {
		for j, candidate := range wb {
			if used[j] {
				continue
			}
			if r.synonymous(w, candidate) {
				used[j] = true
				matched++
				break
			}
		}
	}

	return float64(matched) / float64(max(len(wa), len(wb)))
}

// AreSynonyms checks a and b against the default resolver.
func AreSynonyms(a, b string) bool {
	return Default().AreSynonyms(a, b)
}

// ArePhraseSynonyms checks a and b against the default resolver.
func ArePhraseSynonyms(a, b string) bool {
	return Default().ArePhraseSynonyms(a, b)
}

// Similarity scores a and b against the default resolver.
func Similarity(a, b string) float64 {
	return Default().Similarity(a, b)
}
