package recommender

import (
	"fmt"
	"math"
	"strings"

	"learning-buddy-be/internal/entity"
)

const (
	weakSkillWeight     = 10
	progressionBonus    = 5
	coldStartBonus      = 15
	preferredPathBonus  = 10
	defaultReason       = "Kursus yang sesuai dengan level Anda"
	weakReasonFormat    = "Mengatasi kelemahan di bidang %s"
	advanceReasonFormat = "Mengembangkan skill %s ke level lebih tinggi"
)

var (
	advancedLevels = map[string]bool{
		entity.CourseLevelMenengah:    true,
		entity.CourseLevelMahir:       true,
		entity.CourseLevelProfesional: true,
	}
	beginnerLevels = map[string]bool{
		entity.CourseLevelDasar:  true,
		entity.CourseLevelPemula: true,
	}
)

// Preferences holds the learner preferences the scorer understands.
type Preferences struct {
	PreferredLearningPathID *int
}

// ParsePreferences reads a free-form preference document. A
// preferred_learning_path_id that is not a non-zero integral number within
// int32 range is ignored.
func ParsePreferences(raw map[string]interface{}) Preferences {
	var prefs Preferences
	if raw == nil {
		return prefs
	}
	switch v := raw["preferred_learning_path_id"].(type) {
	case float64:
		if v != 0 && v == math.Trunc(v) && math.Abs(v) <= math.MaxInt32 {
			id := int(v)
			prefs.PreferredLearningPathID = &id
		}
	case int:
		if v != 0 {
			id := v
			prefs.PreferredLearningPathID = &id
		}
	}
	return prefs
}

// ScoreCourse is additive over four rules: weak-skill hits weighted by count,
// a flat bonus per completed-skill hit on non-beginner courses, a cold-start
// bonus for beginner courses, and the preferred learning path bonus.
func ScoreCourse(course *entity.Course, completed, weak *SkillMapping, prefs Preferences) int {
	score := 0
	name := strings.ToLower(course.CourseName)

	for _, skill := range weak.Skills() {
		if strings.Contains(name, skill) {
			score += weakSkillWeight * weak.Count(skill)
		}
	}

	if advancedLevels[course.CourseLevelStr] {
		for _, skill := range completed.Skills() {
			if strings.Contains(name, skill) {
				score += progressionBonus
			}
		}
	}

	if completed.IsEmpty() && beginnerLevels[course.CourseLevelStr] {
		score += coldStartBonus
	}

	if prefs.PreferredLearningPathID != nil && *prefs.PreferredLearningPathID == course.LearningPathId {
		score += preferredPathBonus
	}

	return score
}

// RecommendationReason returns a single reason; the first weak-skill hit wins,
// then the first completed-skill hit.
func RecommendationReason(course *entity.Course, completed, weak *SkillMapping) string {
	name := strings.ToLower(course.CourseName)

	for _, skill := range weak.Skills() {
		if strings.Contains(name, skill) {
			return fmt.Sprintf(weakReasonFormat, skill)
		}
	}
	for _, skill := range completed.Skills() {
		if strings.Contains(name, skill) {
			return fmt.Sprintf(advanceReasonFormat, skill)
		}
	}
	return defaultReason
}
