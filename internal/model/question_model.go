package model

type InterestQuestion struct {
	Id           uint   `gorm:"primaryKey"`
	QuestionDesc string `gorm:"type:text"`
	OptionText   string `gorm:"type:text"`
	Category     string `gorm:"type:varchar(100);index"`
}

func (InterestQuestion) TableName() string {
	return "current_interest_questions"
}

type TechQuestion struct {
	Id            uint   `gorm:"primaryKey"`
	TechCategory  string `gorm:"type:varchar(100);index"`
	Difficulty    string `gorm:"type:varchar(50);index"`
	QuestionDesc  string `gorm:"type:text"`
	Option1       string `gorm:"column:option_1;type:text"`
	Option2       string `gorm:"column:option_2;type:text"`
	Option3       string `gorm:"column:option_3;type:text"`
	Option4       string `gorm:"column:option_4;type:text"`
	CorrectAnswer string `gorm:"type:text"`
}

func (TechQuestion) TableName() string {
	return "current_tech_questions"
}
