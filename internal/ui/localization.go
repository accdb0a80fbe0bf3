package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeySearch            = "search"
	KeyDownload          = "download"
	KeyOpenFolder        = "open_folder"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyDownloadDirectory = "download_directory"
	KeyAutoReveal        = "auto_reveal"
	KeyBrowse            = "browse"
	KeyEnterQuery        = "enter_query"
	KeyPleaseEnterQuery  = "please_enter_query"
	KeySearching         = "searching"
	KeyNoResults         = "no_results"
	KeySearchFailed      = "search_failed"
	KeyDownloadFailed    = "download_failed"
	KeyDownloadCompleted = "download_completed"
	KeyErrorOpeningPath  = "error_opening_path"
	KeySettingsSaved     = "settings_saved"
	KeyDestination       = "destination"
	KeySave              = "save"
	KeyCancel            = "cancel"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if text, found := l.texts["en"][key]; found {
		return text
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
	}
}

func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "YT Audio",
		KeySearch:            "Search",
		KeyDownload:          "Download MP3",
		KeyOpenFolder:        "Open folder",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyDownloadDirectory: "Download Directory",
		KeyAutoReveal:        "Reveal file when download completes",
		KeyBrowse:            "Browse",
		KeyEnterQuery:        "Artist, song or any search text",
		KeyPleaseEnterQuery:  "Please enter a search query",
		KeySearching:         "Searching...",
		KeyNoResults:         "No results",
		KeySearchFailed:      "Search failed",
		KeyDownloadFailed:    "Download failed",
		KeyDownloadCompleted: "Saved to",
		KeyErrorOpeningPath:  "Error opening folder",
		KeySettingsSaved:     "Settings saved",
		KeyDestination:       "Save to:",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "YT Аудио",
		KeySearch:            "Найти",
		KeyDownload:          "Скачать MP3",
		KeyOpenFolder:        "Открыть папку",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyDownloadDirectory: "Папка загрузки",
		KeyAutoReveal:        "Показать файл после загрузки",
		KeyBrowse:            "Обзор",
		KeyEnterQuery:        "Исполнитель, песня или любой текст",
		KeyPleaseEnterQuery:  "Пожалуйста, введите запрос",
		KeySearching:         "Поиск...",
		KeyNoResults:         "Ничего не найдено",
		KeySearchFailed:      "Ошибка поиска",
		KeyDownloadFailed:    "Ошибка загрузки",
		KeyDownloadCompleted: "Сохранено в",
		KeyErrorOpeningPath:  "Ошибка открытия папки",
		KeySettingsSaved:     "Настройки сохранены",
		KeyDestination:       "Сохранять в:",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
	}
}
