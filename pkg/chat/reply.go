package chat

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"learning-buddy-be/internal/dto"
	"learning-buddy-be/pkg/recommender"
)

const (
	OnboardingRequiredReply = "Silakan lakukan onboarding terlebih dahulu untuk menggunakan fitur chat."
	noProgressReply         = "Anda belum memulai belajar kursus apapun. Silakan pilih kursus dari katalog untuk memulai!"
	noRecommendationReply   = "Silakan pilih kursus dari katalog untuk memulai belajar!"
	noSkillReply            = "Anda belum memiliki progress belajar. Silakan mulai belajar dari katalog!"

	maxOtherCourses = 3
	maxSkillLines   = 3
)

func RenderProgress(stats dto.ProgressStatsResponse) string {
	if stats.TotalCourses == 0 {
		return noProgressReply
	}
	rate := float64(stats.CompletedCourses) / float64(stats.TotalCourses) * 100

	var b strings.Builder
	b.WriteString("Progress belajar Anda:\n")
	fmt.Fprintf(&b, "• Total kursus: %d\n", stats.TotalCourses)
	fmt.Fprintf(&b, "• Kursus selesai: %d\n", stats.CompletedCourses)
	fmt.Fprintf(&b, "• Kursus sedang belajar: %d\n", stats.TotalCourses-stats.CompletedCourses)
	fmt.Fprintf(&b, "• Tutorial selesai: %d dari %d\n", stats.CompletedTutorials, stats.TotalTutorials)
	fmt.Fprintf(&b, "• Tingkat penyelesaian: %.1f%%", rate)
	return b.String()
}

func RenderRecommendation(courses []dto.RecommendedCourse) string {
	if len(courses) == 0 {
		return noRecommendationReply
	}
	top := courses[0]

	var b strings.Builder
	b.WriteString("Berdasarkan progress Anda, saya merekomendasikan:\n\n")
	fmt.Fprintf(&b, "📚 %s\n", top.CourseName)
	fmt.Fprintf(&b, "Level: %s\n", top.Level)
	fmt.Fprintf(&b, "Durasi: %s jam\n", strconv.FormatFloat(top.Hours, 'f', -1, 64))
	fmt.Fprintf(&b, "Alasan: %s", top.Reason)

	if len(courses) > 1 {
		b.WriteString("\n\nKursus lain yang direkomendasikan:")
		others := courses[1:]
		if len(others) > maxOtherCourses {
			others = others[:maxOtherCourses]
		}
		for _, c := range others {
			fmt.Fprintf(&b, "\n• %s", c.CourseName)
		}
	}
	return b.String()
}

func RenderSkills(completed, weak *recommender.SkillMapping) string {
	if completed.IsEmpty() && weak.IsEmpty() {
		return noSkillReply
	}

	var b strings.Builder
	if !completed.IsEmpty() {
		b.WriteString("Skill yang sudah Anda kuasai:\n")
		writeSkillLines(&b, completed.Top(maxSkillLines))
	}
	if !weak.IsEmpty() {
		b.WriteString("\nSkill yang perlu ditingkatkan:\n")
		writeSkillLines(&b, weak.Top(maxSkillLines))
	}
	return b.String()
}

func writeSkillLines(b *strings.Builder, skills []recommender.SkillCount) {
	for _, s := range skills {
		fmt.Fprintf(b, "• %s (%d kursus)\n", capitalize(s.Skill), s.Count)
	}
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	runes := []rune(strings.ToLower(s))
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
