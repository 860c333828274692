package bgg

import "strings"

// entityReplacer covers the entities BGG double-escapes inside names,
// descriptions and link values.
var entityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#10;", "\n",
	"&mdash;", "—",
	"&ndash;", "–",
	"&lsquo;", "‘",
	"&rsquo;", "’",
	"&ldquo;", "“",
	"&rdquo;", "”",
)

// DecodeEntities replaces a fixed set of HTML entities in one pass.
// Unknown entities are left as they are. Decoding twice is not safe
// ("&amp;lt;" becomes "&lt;" then "<"), so decode once, right after
// extraction.
func DecodeEntities(s string) string {
	return entityReplacer.Replace(s)
}
