package model

// All lists every persisted model, in migration order.
func All() []interface{} {
	return []interface{}{
		&Learner{},
		&LearningPath{},
		&Course{},
		&Tutorial{},
		&CourseLevel{},
		&SkillKeyword{},
		&StudentProgress{},
		&ProgressActivity{},
		&InterestQuestion{},
		&TechQuestion{},
	}
}
