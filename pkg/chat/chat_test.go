package chat

import (
	"testing"

	"learning-buddy-be/internal/dto"
	"learning-buddy-be/pkg/recommender"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeIntent(t *testing.T) {
	tests := []struct {
		message string
		want    Intent
	}{
		{"Bagaimana PROGRESS saya?", IntentProgress},
		{"Kursus apa yang sudah selesai?", IntentProgress},
		{"Apa yang harus saya pelajari?", IntentRecommendation},
		{"Skill apa yang lemah?", IntentRecommendation},
		{"Skill saya yang lemah", IntentSkill},
		{"Halo", IntentRecommendation},
		{"", IntentRecommendation},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			assert.Equal(t, tt.want, AnalyzeIntent(tt.message))
		})
	}
}

func TestRenderProgress(t *testing.T) {
	assert.Equal(t, noProgressReply, RenderProgress(dto.ProgressStatsResponse{}))

	got := RenderProgress(dto.ProgressStatsResponse{
		TotalCourses:       3,
		CompletedCourses:   1,
		InProgressCourses:  2,
		TotalTutorials:     30,
		CompletedTutorials: 12,
		CompletionRate:     33.33,
	})
	want := "Progress belajar Anda:\n" +
		"• Total kursus: 3\n" +
		"• Kursus selesai: 1\n" +
		"• Kursus sedang belajar: 2\n" +
		"• Tutorial selesai: 12 dari 30\n" +
		"• Tingkat penyelesaian: 33.3%"
	assert.Equal(t, want, got)
}

func TestRenderRecommendation(t *testing.T) {
	assert.Equal(t, noRecommendationReply, RenderRecommendation(nil))

	courses := []dto.RecommendedCourse{
		{CourseName: "Belajar Python", Level: "Menengah", Hours: 45, Reason: "Mengatasi kelemahan di bidang python"},
		{CourseName: "B"}, {CourseName: "C"}, {CourseName: "D"}, {CourseName: "E"},
	}
	want := "Berdasarkan progress Anda, saya merekomendasikan:\n\n" +
		"📚 Belajar Python\n" +
		"Level: Menengah\n" +
		"Durasi: 45 jam\n" +
		"Alasan: Mengatasi kelemahan di bidang python" +
		"\n\nKursus lain yang direkomendasikan:\n• B\n• C\n• D"
	assert.Equal(t, want, RenderRecommendation(courses))
}

func TestRenderSkills(t *testing.T) {
	empty := recommender.NewSkillMapping()
	assert.Equal(t, noSkillReply, RenderSkills(empty, empty))

	completed := recommender.NewSkillMapping()
	completed.Add("web", 1)
	completed.Add("python", 3)
	completed.Add("sql", 1)
	completed.Add("java", 2)

	weak := recommender.NewSkillMapping()
	weak.Add("machine learning", 1)

	want := "Skill yang sudah Anda kuasai:\n" +
		"• Python (3 kursus)\n" +
		"• Java (2 kursus)\n" +
		"• Web (1 kursus)\n" +
		"\nSkill yang perlu ditingkatkan:\n" +
		"• Machine learning (1 kursus)\n"
	assert.Equal(t, want, RenderSkills(completed, weak))
}

func TestRenderSkillsWeakOnly(t *testing.T) {
	weak := recommender.NewSkillMapping()
	weak.Add("go", 2)

	assert.Equal(t, "\nSkill yang perlu ditingkatkan:\n• Go (2 kursus)\n", RenderSkills(recommender.NewSkillMapping(), weak))
}
