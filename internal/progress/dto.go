package progress

type SettingsDTO struct {
	ShuffleQuestions *bool `json:"shuffleQuestions" validate:"required"`
}

type SettingsResponse struct {
	ShuffleQuestions bool `json:"shuffleQuestions"`
}
