// FILE: internal/entity/question_entity.go
package entity

type InterestQuestion struct {
	Id           uint
	QuestionDesc string
	OptionText   string
	Category     string
}

type TechQuestion struct {
	Id            uint
	TechCategory  string
	Difficulty    string
	QuestionDesc  string
	Option1       string
	Option2       string
	Option3       string
	Option4       string
	CorrectAnswer string
}
