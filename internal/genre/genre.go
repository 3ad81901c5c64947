package genre

import "strings"

// Genre is one entry of the fixed catalog taxonomy.
type Genre struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Other is the catch-all genre assigned when no mapping applies.
const Other = "other"

var taxonomy = []Genre{
	{ID: "fiction", Name: "小説・文学"},
	{ID: "business", Name: "ビジネス・経済"},
	{ID: "tech", Name: "IT・技術書"},
	{ID: "essay", Name: "エッセイ・随筆"},
	{ID: "history", Name: "歴史・伝記"},
	{ID: "science", Name: "科学・医学"},
	{ID: "philosophy", Name: "哲学・思想"},
	{ID: "hobby", Name: "趣味・実用"},
	{ID: Other, Name: "その他"},
}

// List returns the taxonomy in display order. The returned slice is a copy.
func List() []Genre {
	out := make([]Genre, len(taxonomy))
	copy(out, taxonomy)
	return out
}

// Valid reports whether id is one of the taxonomy ids.
func Valid(id string) bool {
	for _, g := range taxonomy {
		if g.ID == id {
			return true
		}
	}
	return false
}

// keywordMapping is ordered: the first keyword contained in the label wins,
// so iteration order is part of the contract.
var keywordMapping = []struct {
	keyword string
	genreID string
}{
	{"fiction", "fiction"},
	{"literature", "fiction"},
	{"literary fiction", "fiction"},
	{"romance", "fiction"},
	{"mystery", "fiction"},
	{"thriller", "fiction"},
	{"fantasy", "fiction"},
	{"science fiction", "fiction"},
	{"horror", "fiction"},
	{"adventure", "fiction"},

	{"business", "business"},
	{"economics", "business"},
	{"finance", "business"},
	{"management", "business"},
	{"entrepreneurship", "business"},
	{"marketing", "business"},
	{"investing", "business"},

	{"computers", "tech"},
	{"technology", "tech"},
	{"programming", "tech"},
	{"software", "tech"},
	{"engineering", "tech"},
	{"science", "tech"},
	{"mathematics", "tech"},

	{"biography", "essay"},
	{"memoir", "essay"},
	{"autobiography", "essay"},
	{"essays", "essay"},
	{"personal narratives", "essay"},

	{"history", "history"},
	{"biography & autobiography", "history"},
	{"historical", "history"},
	{"war", "history"},
	{"politics", "history"},

	{"medical", "science"},
	{"health", "science"},
	{"psychology", "science"},
	{"nature", "science"},
	{"physics", "science"},
	{"chemistry", "science"},
	{"biology", "science"},

	{"philosophy", "philosophy"},
	{"religion", "philosophy"},
	{"spirituality", "philosophy"},
	{"self-help", "philosophy"},

	{"cooking", "hobby"},
	{"crafts", "hobby"},
	{"gardening", "hobby"},
	{"sports", "hobby"},
	{"travel", "hobby"},
	{"art", "hobby"},
	{"music", "hobby"},
	{"photography", "hobby"},
	{"games", "hobby"},
	{"hobbies", "hobby"},
}

// FromCategories maps free-text category labels (as returned by the books
// search API) to a taxonomy id. Only the first label is considered; matching
// is case-insensitive substring containment against the keyword table.
func FromCategories(categories []string) string {
	if len(categories) == 0 {
		return Other
	}
	primary := strings.ToLower(categories[0])
	for _, m := range keywordMapping {
		if strings.Contains(primary, m.keyword) {
			return m.genreID
		}
	}
	return Other
}
