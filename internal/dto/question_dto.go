package dto

type InterestQuestionResponse struct {
	Id           uint   `json:"id"`
	QuestionDesc string `json:"question_desc"`
	OptionText   string `json:"option_text"`
	Category     string `json:"category"`
}

type TechQuestionResponse struct {
	Id            uint   `json:"id"`
	TechCategory  string `json:"tech_category"`
	Difficulty    string `json:"difficulty"`
	QuestionDesc  string `json:"question_desc"`
	Option1       string `json:"option_1"`
	Option2       string `json:"option_2"`
	Option3       string `json:"option_3"`
	Option4       string `json:"option_4"`
	CorrectAnswer string `json:"correct_answer"`
}

type TechQuestionQuery struct {
	Category   string `query:"category"`
	Difficulty string `query:"difficulty"`
}
