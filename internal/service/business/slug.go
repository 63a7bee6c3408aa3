package business

import (
	"regexp"
	"strings"
)

// fallbackSlug используется, когда из имени не остаётся ни одного допустимого символа
const fallbackSlug = "dukkan"

var (
	slugStripRe    = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpacesRe   = regexp.MustCompile(`\s+`)
	slugCollapseRe = regexp.MustCompile(`-+`)
)

// slugify строит URL-безопасный slug из имени бизнеса
// Символы вне [a-z0-9 -] отбрасываются, пробелы заменяются дефисами
func slugify(name string) string {
	slug := strings.ToLower(name)
	slug = slugStripRe.ReplaceAllString(slug, "")
	slug = slugSpacesRe.ReplaceAllString(slug, "-")
	slug = slugCollapseRe.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")

	if slug == "" {
		return fallbackSlug
	}
	return slug
}
