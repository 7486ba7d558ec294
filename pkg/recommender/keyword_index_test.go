package recommender

import (
	"testing"

	"learning-buddy-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestNewKeywordIndex(t *testing.T) {
	idx := NewKeywordIndex([]*entity.SkillKeyword{
		{Id: "1", Keyword: "Python"},
		{Id: "2", Keyword: "Java"},
		{Id: "1", Keyword: "Go"},
		nil,
	})

	assert.Equal(t, 2, idx.Len())
	kw, ok := idx.keyword("1")
	assert.True(t, ok)
	assert.Equal(t, "go", kw, "later duplicate id overwrites")

	// Overwritten id keeps its original position
	assert.Equal(t, []string{"go", "java"}, idx.Matches("Java and Go Basics"))
}

func TestKeywordIndexMatches(t *testing.T) {
	tests := []struct {
		name  string
		words []string
		text  string
		want  []string
	}{
		{name: "case insensitive", words: []string{"python"}, text: "Belajar PYTHON", want: []string{"python"}},
		{name: "multiple keywords", words: []string{"python", "machine learning", "sql"}, text: "Machine Learning dengan Python", want: []string{"python", "machine learning"}},
		{name: "no match", words: []string{"kotlin"}, text: "Belajar Dasar Web", want: nil},
		{name: "substring false positive kept", words: []string{"go"}, text: "Algorithms", want: []string{"go"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, indexOf(tt.words...).Matches(tt.text))
		})
	}
}

func TestKeywordIndexSameKeywordTwoIds(t *testing.T) {
	idx := NewKeywordIndex([]*entity.SkillKeyword{
		{Id: "1", Keyword: "java"},
		{Id: "2", Keyword: "JAVA"},
	})

	assert.Equal(t, []string{"java", "java"}, idx.Matches("Java Fundamentals"))
}

func TestNilKeywordIndex(t *testing.T) {
	var idx *KeywordIndex
	assert.Equal(t, 0, idx.Len())
	assert.Nil(t, idx.Matches("anything"))
}
