package handler

// Route configuration for each collection. Status strings are part of the
// wire contract the web client relies on.
var (
	HistoryConfig = CollectionConfig{
		Label:        "History",
		Noun:         "history",
		ResponseKey:  "history",
		AddedMessage: "History Added",
		// The web client sends originalText for the source text.
		UpdateFields: map[string]string{
			"originalText":   "text",
			"translatedText": "translated_text",
		},
		Clearable: true,
	}

	VoiceHistoryConfig = CollectionConfig{
		Label:        "History",
		Noun:         "history",
		ResponseKey:  "history",
		AddedMessage: "History Added",
		UpdateFields: map[string]string{
			"text":           "text",
			"translatedText": "translated_text",
		},
		Clearable: true,
	}

	FavoriteConfig = CollectionConfig{
		Label:        "Favorite",
		Noun:         "favorite",
		ResponseKey:  "favorite",
		AddedMessage: "Favorite Added",
		UpdateFields: map[string]string{
			"text":           "text",
			"translatedText": "translated_text",
		},
	}

	ImageSaveConfig = CollectionConfig{
		Label:        "image",
		Noun:         "image",
		ResponseKey:  "image",
		AddedMessage: "image Added",
		AppendOnly:   true,
	}
)
