package recommender

import (
	"strings"

	"learning-buddy-be/internal/entity"
)

// KeywordIndex is an immutable snapshot of the skill keyword table.
// Entries keep load order; a repeated id overwrites the keyword in place.
type KeywordIndex struct {
	ids      []string
	keywords map[string]string
}

func NewKeywordIndex(keywords []*entity.SkillKeyword) *KeywordIndex {
	idx := &KeywordIndex{
		ids:      make([]string, 0, len(keywords)),
		keywords: make(map[string]string, len(keywords)),
	}
	for _, kw := range keywords {
		if kw == nil {
			continue
		}
		if _, seen := idx.keywords[kw.Id]; !seen {
			idx.ids = append(idx.ids, kw.Id)
		}
		idx.keywords[kw.Id] = strings.ToLower(kw.Keyword)
	}
	return idx
}

func (idx *KeywordIndex) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.ids)
}

// keyword returns the lowercase keyword stored under id.
func (idx *KeywordIndex) keyword(id string) (string, bool) {
	if idx == nil {
		return "", false
	}
	kw, ok := idx.keywords[id]
	return kw, ok
}

// Matches yields every keyword contained in text, once per keyword id.
// Two ids sharing a keyword both match.
func (idx *KeywordIndex) Matches(text string) []string {
	if idx == nil {
		return nil
	}
	lower := strings.ToLower(text)
	var out []string
	for _, id := range idx.ids {
		kw := idx.keywords[id]
		if strings.Contains(lower, kw) {
			out = append(out, kw)
		}
	}
	return out
}
