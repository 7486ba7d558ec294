package chat

import "strings"

type Intent string

const (
	IntentProgress       Intent = "progress"
	IntentRecommendation Intent = "recommendation"
	IntentSkill          Intent = "skill"
)

// TypeError tags replies for learners the assistant cannot serve yet.
const TypeError = "error"

type intentGroup struct {
	intent   Intent
	keywords []string
}

// Checked in order; the first group with a hit wins.
var intentGroups = []intentGroup{
	{IntentProgress, []string{"progress", "perkembangan", "kemajuan", "sudah selesai", "selesai", "statistik"}},
	{IntentRecommendation, []string{"rekomendasi", "sarankan", "pelajari", "selanjutnya", "apa yang", "harus"}},
	{IntentSkill, []string{"skill", "kemampuan", "keahlian", "kuat", "lemah", "perlu tingkatkan"}},
}

// AnalyzeIntent classifies a message by keyword substring. Messages that hit
// no group are treated as recommendation requests.
func AnalyzeIntent(message string) Intent {
	lower := strings.ToLower(message)
	for _, g := range intentGroups {
		for _, kw := range g.keywords {
			if strings.Contains(lower, kw) {
				return g.intent
			}
		}
	}
	return IntentRecommendation
}
