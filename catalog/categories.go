package catalog

import (
	"fmt"
	"strings"

	"github.com/hashscope/hashscope/types"
)

// Category names used by the static catalog.
const (
	CategoryCryptographic    = "Cryptographic Hash Functions"
	CategoryChecksums        = "Checksums"
	CategoryNonCryptographic = "Non-Cryptographic Hash Functions"
	CategoryPasswordHashing  = "Password Hashing"
	CategoryMAC              = "Message Authentication"
	CategorySimilarity       = "Similarity Hashing"
)

// categoryDetails is the curated category-detail table. Categories not
// listed here get a synthesized generic entry.
var categoryDetails = map[string]types.CategoryDetails{
	CategoryCryptographic: {
		Name: CategoryCryptographic,
		Description: "One-way digest functions designed for collision and " +
			"preimage resistance, used for integrity checking and content addressing.",
	},
	CategoryChecksums: {
		Name: CategoryChecksums,
		Description: "Lightweight error-detection codes for catching accidental " +
			"corruption in storage and transmission. Not collision resistant.",
	},
	CategoryNonCryptographic: {
		Name: CategoryNonCryptographic,
		Description: "Fast hash functions optimized for hash tables, sharding, " +
			"and fingerprinting where adversarial inputs are not a concern.",
	},
	CategoryPasswordHashing: {
		Name: CategoryPasswordHashing,
		Description: "Deliberately expensive key-derivation functions that slow " +
			"down brute-force attacks on stored credentials.",
	},
	CategoryMAC: {
		Name: CategoryMAC,
		Description: "Keyed hash functions that authenticate both the integrity " +
			"and the origin of a message.",
	},
	CategorySimilarity: {
		Name: CategorySimilarity,
		Description: "Locality-sensitive hashes whose outputs stay close for " +
			"similar inputs, enabling near-duplicate detection and approximate " +
			"similarity search.",
	},
}

// Details returns the curated details for a category, or a synthesized
// generic entry for categories outside the curated table.
func Details(name string) types.CategoryDetails {
	if d, ok := categoryDetails[name]; ok {
		return d
	}
	return UnknownCategoryDetails(name)
}

// UnknownCategoryDetails deterministically synthesizes details for a
// category title that has no curated entry. It never fails.
func UnknownCategoryDetails(title string) types.CategoryDetails {
	return types.CategoryDetails{
		Name: title,
		Description: fmt.Sprintf("%s algorithms. Select an algorithm below to "+
			"see its parameters and compute hashes.", title),
	}
}

// CategorySlug turns a category name into a URL-safe slug: lowercase,
// characters outside [a-z0-9 -] stripped, whitespace and hyphen runs
// collapsed to single hyphens.
func CategorySlug(name string) string {
	lower := strings.ToLower(name)

	var kept strings.Builder
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == ' ', r == '-':
			kept.WriteRune(r)
		}
	}

	parts := strings.FieldsFunc(kept.String(), func(r rune) bool {
		return r == ' ' || r == '-'
	})
	return strings.Join(parts, "-")
}
