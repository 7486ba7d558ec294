package recommender

import "sort"

// SkillMapping counts skills and remembers the order in which each skill
// was first counted.
type SkillMapping struct {
	order  []string
	counts map[string]int
}

type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

func NewSkillMapping() *SkillMapping {
	return &SkillMapping{counts: make(map[string]int)}
}

func (m *SkillMapping) Add(skill string, n int) {
	if _, ok := m.counts[skill]; !ok {
		m.order = append(m.order, skill)
	}
	m.counts[skill] += n
}

func (m *SkillMapping) Count(skill string) int {
	if m == nil {
		return 0
	}
	return m.counts[skill]
}

func (m *SkillMapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.order)
}

func (m *SkillMapping) IsEmpty() bool {
	return m.Len() == 0
}

// Skills returns skill names in insertion order.
func (m *SkillMapping) Skills() []string {
	if m == nil {
		return []string{}
	}
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Head returns at most n skill names in insertion order.
func (m *SkillMapping) Head(n int) []string {
	skills := m.Skills()
	if n >= 0 && len(skills) > n {
		skills = skills[:n]
	}
	return skills
}

// Top returns at most n skills by count descending; equal counts keep
// insertion order.
func (m *SkillMapping) Top(n int) []SkillCount {
	if m == nil {
		return []SkillCount{}
	}
	out := make([]SkillCount, 0, len(m.order))
	for _, s := range m.order {
		out = append(out, SkillCount{Skill: s, Count: m.counts[s]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
