// Package menu holds the pure menu-text algorithms: normalizing raw dish
// payloads from the meal API and matching them against user preference terms.
package menu

import (
	"regexp"
	"strings"
)

// lineBreak separates dishes inside a raw menu payload.
const lineBreak = "<br/>"

// allergenCode matches trailing allergen markers such as "(5.6.13)".
var allergenCode = regexp.MustCompile(`\([0-9.]+\)`)

// Clean strips allergen codes and surrounding whitespace from one dish name.
// Applying Clean to an already clean dish returns it unchanged.
func Clean(dish string) string {
	cleaned := strings.ReplaceAll(dish, lineBreak, " ")
	cleaned = allergenCode.ReplaceAllString(cleaned, "")

	return strings.TrimSpace(cleaned)
}

// Normalize splits a raw menu payload into clean dish names.
// Empty fragments are dropped; an empty or markup-only payload yields nil.
func Normalize(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var dishes []string
	for _, fragment := range strings.Split(raw, lineBreak) {
		dish := Clean(fragment)
		if dish == "" {
			continue
		}
		dishes = append(dishes, dish)
	}

	return dishes
}

// Match returns the preference terms that appear in at least one dish,
// in their original order and without duplicates. Containment is plain
// substring matching after trimming, so "돈까스" matches "치즈돈까스".
func Match(terms []string, dishes []string) []string {
	if len(terms) == 0 || len(dishes) == 0 {
		return nil
	}

	var matched []string
	seen := make(map[string]struct{}, len(terms))
	for _, term := range terms {
		needle := strings.TrimSpace(term)
		if needle == "" {
			continue
		}
		if _, dup := seen[needle]; dup {
			continue
		}
		for _, dish := range dishes {
			if strings.Contains(dish, needle) {
				matched = append(matched, needle)
				seen[needle] = struct{}{}

				break
			}
		}
	}

	return matched
}
