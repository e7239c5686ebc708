// Package refdata holds the business reference data the calculation core
// depends on: the packaging synonym table, the locally produced article set
// and the depot allow-list. Everything here is injected configuration with
// shipped defaults, never literals inside the algorithms.
package refdata

import (
	"strconv"
	"strings"
)

// Canonical packaging values.
const (
	PackagingVerre   = "verre"
	PackagingPET     = "pet"
	PackagingCanette = "canette"
	PackagingBIB     = "bib"
)

// PackagingNormalizer maps raw packaging labels to canonical values.
// Lookups are case-insensitive; unrecognized labels pass through unchanged.
type PackagingNormalizer map[string]string

// Normalize returns the canonical packaging value for raw.
func (n PackagingNormalizer) Normalize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if canonical, ok := n[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	return trimmed
}

// DefaultPackagingSynonyms is the shipped synonym table. Keys are lowercase.
func DefaultPackagingSynonyms() PackagingNormalizer {
	return PackagingNormalizer{
		"verre":      PackagingVerre,
		"vr":         PackagingVerre,
		"bouteille":  PackagingVerre,
		"glass":      PackagingVerre,
		"pet":        PackagingPET,
		"plastique":  PackagingPET,
		"plastic":    PackagingPET,
		"canette":    PackagingCanette,
		"can":        PackagingCanette,
		"boite":      PackagingCanette,
		"boîte":      PackagingCanette,
		"bib":        PackagingBIB,
		"bag-in-box": PackagingBIB,
		"bag in box": PackagingBIB,
	}
}

// ArticleSet is a membership set of article codes.
type ArticleSet map[string]struct{}

// NewArticleSet builds a set from codes, trimming each entry.
func NewArticleSet(codes []string) ArticleSet {
	s := make(ArticleSet, len(codes))
	for _, c := range codes {
		if c = strings.TrimSpace(c); c != "" {
			s[c] = struct{}{}
		}
	}
	return s
}

// Contains reports whether the article code is in the set.
func (s ArticleSet) Contains(article string) bool {
	_, ok := s[strings.TrimSpace(article)]
	return ok
}

// DefaultLocalArticles is the shipped set of locally produced article codes.
// Articles in this set are sourced from on-site production rather than
// external suppliers.
func DefaultLocalArticles() []string {
	return []string{
		"10105", "10106", "10112", "10118", "10121", "10127", "10133", "10139",
		"10204", "10211", "10218", "10225", "10232", "10239", "10246", "10253",
		"10301", "10308", "10315", "10322", "10329", "10336", "10343", "10350",
		"10407", "10414", "10421", "10428", "10435", "10442", "10449", "10456",
		"10503", "10510", "10517", "10524", "10531", "10538", "10545", "10552",
		"10609", "10616", "10623", "10630", "10637", "10644", "10651", "10658",
		"10705", "10712", "10719", "10726", "10733", "10740", "10747", "10754",
		"10801", "10808",
	}
}

// DepotFilter decides which depot codes are eligible destinations. A depot is
// allowed when it is explicitly listed or when its code falls inside the
// numeric range (prefix + number).
type DepotFilter struct {
	Allowed   ArticleSet
	Prefix    string
	RangeLow  int
	RangeHigh int
}

// Allows reports whether the depot code is an eligible destination.
func (f DepotFilter) Allows(depot string) bool {
	depot = strings.TrimSpace(depot)
	if depot == "" {
		return false
	}
	if f.Allowed.Contains(depot) {
		return true
	}
	if f.Prefix == "" || !strings.HasPrefix(depot, f.Prefix) {
		return false
	}
	n, err := strconv.Atoi(depot[len(f.Prefix):])
	if err != nil {
		return false
	}
	return n >= f.RangeLow && n <= f.RangeHigh
}

// DefaultDepotFilter covers the satellite depot range M100 to M209. The
// central warehouse M210 is deliberately outside the range.
func DefaultDepotFilter() DepotFilter {
	return DepotFilter{
		Allowed:   NewArticleSet([]string{"M85", "M90", "M95"}),
		Prefix:    "M",
		RangeLow:  100,
		RangeHigh: 209,
	}
}

// RefData bundles the reference data handed to the ingestion layer and the
// calculation services.
type RefData struct {
	Packaging     PackagingNormalizer
	LocalArticles ArticleSet
	Depots        DepotFilter
}

// Default returns the shipped reference data.
func Default() RefData {
	return RefData{
		Packaging:     DefaultPackagingSynonyms(),
		LocalArticles: NewArticleSet(DefaultLocalArticles()),
		Depots:        DefaultDepotFilter(),
	}
}
