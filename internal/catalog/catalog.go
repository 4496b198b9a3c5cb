package catalog

import "strings"

type Category string

const (
	CategoryTech          Category = "tech"
	CategoryVlog          Category = "vlog"
	CategoryShorts        Category = "shorts"
	CategoryGaming        Category = "gaming"
	CategoryTutorial      Category = "tutorial"
	CategoryEntertainment Category = "entertainment"
	CategoryEducation     Category = "education"
	CategoryMusic         Category = "music"
)

const DefaultCategory = CategoryTech

type Language string

const (
	LanguageEnglish    Language = "en"
	LanguageSpanish    Language = "es"
	LanguageFrench     Language = "fr"
	LanguageGerman     Language = "de"
	LanguagePortuguese Language = "pt"
	LanguageItalian    Language = "it"
	LanguageJapanese   Language = "ja"
	LanguageKorean     Language = "ko"
	LanguageChinese    Language = "zh"
	LanguageHindi      Language = "hi"
	LanguageArabic     Language = "ar"
)

const DefaultLanguage = LanguageEnglish

type categoryInfo struct {
	label     string
	keywords  string
	youtubeID string
}

// Ordered the way the UI lists them.
var categories = []Category{
	CategoryTech,
	CategoryVlog,
	CategoryShorts,
	CategoryGaming,
	CategoryTutorial,
	CategoryEntertainment,
	CategoryEducation,
	CategoryMusic,
}

var categoryTable = map[Category]categoryInfo{
	CategoryTech: {
		label:     "Tech",
		keywords:  "technology, software, programming, coding, hardware, innovation, review",
		youtubeID: "28",
	},
	CategoryVlog: {
		label:     "Vlog",
		keywords:  "daily life, lifestyle, personal, behind the scenes, day in the life",
		youtubeID: "22",
	},
	CategoryShorts: {
		label:     "Shorts",
		keywords:  "quick tips, viral, trending, short form, bite-sized",
		youtubeID: "22",
	},
	CategoryGaming: {
		label:     "Gaming",
		keywords:  "gameplay, walkthrough, gaming tips, let's play, game review",
		youtubeID: "20",
	},
	CategoryTutorial: {
		label:     "Tutorial",
		keywords:  "how to, step by step, guide, learn, educational, tips and tricks",
		youtubeID: "26",
	},
	CategoryEntertainment: {
		label:     "Entertainment",
		keywords:  "funny, entertaining, comedy, reaction, interesting",
		youtubeID: "24",
	},
	CategoryEducation: {
		label:     "Education",
		keywords:  "educational, learning, knowledge, informative, academic",
		youtubeID: "27",
	},
	CategoryMusic: {
		label:     "Music",
		keywords:  "music, song, cover, performance, audio, beats",
		youtubeID: "10",
	},
}

var languages = []Language{
	LanguageEnglish,
	LanguageSpanish,
	LanguageFrench,
	LanguageGerman,
	LanguagePortuguese,
	LanguageItalian,
	LanguageJapanese,
	LanguageKorean,
	LanguageChinese,
	LanguageHindi,
	LanguageArabic,
}

var languageNames = map[Language]string{
	LanguageEnglish:    "English",
	LanguageSpanish:    "Spanish",
	LanguageFrench:     "French",
	LanguageGerman:     "German",
	LanguagePortuguese: "Portuguese",
	LanguageItalian:    "Italian",
	LanguageJapanese:   "Japanese",
	LanguageKorean:     "Korean",
	LanguageChinese:    "Chinese",
	LanguageHindi:      "Hindi",
	LanguageArabic:     "Arabic",
}

// ParseCategory maps free-form input onto the closed set. Anything unknown,
// including the empty string, becomes DefaultCategory.
func ParseCategory(s string) Category {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := categoryTable[c]; ok {
		return c
	}
	return DefaultCategory
}

// ParseLanguage maps free-form input onto the closed set, defaulting to English.
func ParseLanguage(s string) Language {
	l := Language(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := languageNames[l]; ok {
		return l
	}
	return DefaultLanguage
}

func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

func Languages() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}

func (c Category) Valid() bool {
	_, ok := categoryTable[c]
	return ok
}

func (c Category) info() categoryInfo {
	if info, ok := categoryTable[c]; ok {
		return info
	}
	return categoryTable[DefaultCategory]
}

func (c Category) Label() string { return c.info().label }

// Keywords is the focus list embedded into the generation prompt.
func (c Category) Keywords() string { return c.info().keywords }

// YouTubeID is the YouTube Data API video category id.
func (c Category) YouTubeID() string { return c.info().youtubeID }

func (l Language) Valid() bool {
	_, ok := languageNames[l]
	return ok
}

func (l Language) DisplayName() string {
	if name, ok := languageNames[l]; ok {
		return name
	}
	return languageNames[DefaultLanguage]
}
