package model

// History is a text translation recorded after every successful translate.
type History struct {
	Translation
}

func (History) TableName() string {
	return "histories"
}

// VoiceHistory mirrors History for speech-originated translations.
type VoiceHistory struct {
	Translation
}

func (VoiceHistory) TableName() string {
	return "voice_histories"
}
