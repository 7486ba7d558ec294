package recommender

import "learning-buddy-be/internal/entity"

// WeakCompletionThreshold: a non-graduated course below this completion rate
// marks its skills as weak. This is a heuristic, not a measured deficiency.
const WeakCompletionThreshold = 0.5

// ExtractCompletedSkills counts keyword hits over the names of graduated courses.
func ExtractCompletedSkills(progress []*entity.StudentProgress, index *KeywordIndex) *SkillMapping {
	skills := NewSkillMapping()
	for _, p := range progress {
		if p == nil || p.IsGraduated != 1 {
			continue
		}
		for _, kw := range index.Matches(p.CourseName) {
			skills.Add(kw, 1)
		}
	}
	return skills
}

// IdentifyWeakSkills counts keyword hits over non-graduated courses whose
// completion rate is under WeakCompletionThreshold.
func IdentifyWeakSkills(progress []*entity.StudentProgress, index *KeywordIndex) *SkillMapping {
	skills := NewSkillMapping()
	for _, p := range progress {
		if p == nil || p.IsGraduated != 0 {
			continue
		}
		if p.CompletionRate() >= WeakCompletionThreshold {
			continue
		}
		for _, kw := range index.Matches(p.CourseName) {
			skills.Add(kw, 1)
		}
	}
	return skills
}
