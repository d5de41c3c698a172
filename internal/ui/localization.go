package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeySettings           = "settings"
	KeyFile               = "file"
	KeyLanguage           = "language"
	KeyOpenImage          = "open_image"
	KeyRefreshVoices      = "refresh_voices"
	KeyTopText            = "top_text"
	KeyBottomText         = "bottom_text"
	KeyGenerate           = "generate"
	KeyClear              = "clear"
	KeyReadAloud          = "read_aloud"
	KeyVoice              = "voice"
	KeyVolume             = "volume"
	KeyNoVoices           = "no_voices"
	KeyNoImage            = "no_image"
	KeyImageLoadFailed    = "image_load_failed"
	KeyUnsupportedImage   = "unsupported_image"
	KeyFontSize           = "font_size"
	KeySpeechBinary       = "speech_binary"
	KeySpeechBinaryHint   = "speech_binary_hint"
	KeySpeechLanguage     = "speech_language"
	KeySpeechUnavailable  = "speech_unavailable"
	KeyCaptionSettings    = "caption_settings"
	KeySpeechSettings     = "speech_settings"
	KeyInterfaceSettings  = "interface_settings"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeyBrowse             = "browse"
	KeySettingsSaved      = "settings_saved"
	KeyRestartRequired    = "restart_required"
	KeySelectLanguageHint = "select_language"
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
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
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
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "Meme Generator",
		KeySettings:           "Settings",
		KeyFile:               "File",
		KeyLanguage:           "Language",
		KeyOpenImage:          "Open Image…",
		KeyRefreshVoices:      "Refresh Voices",
		KeyTopText:            "Top text",
		KeyBottomText:         "Bottom text",
		KeyGenerate:           "Generate",
		KeyClear:              "Clear",
		KeyReadAloud:          "Read Aloud",
		KeyVoice:              "Voice",
		KeyVolume:             "Volume",
		KeyNoVoices:           "none",
		KeyNoImage:            "No image loaded",
		KeyImageLoadFailed:    "Could not load image",
		KeyUnsupportedImage:   "Unsupported file type",
		KeyFontSize:           "Caption Font Size",
		KeySpeechBinary:       "Speech Synthesizer",
		KeySpeechBinaryHint:   "espeak-ng (auto-detect when empty)",
		KeySpeechLanguage:     "Default Voice Language",
		KeySpeechUnavailable:  "Speech synthesizer not found, read aloud is silent",
		KeyCaptionSettings:    "Caption Settings",
		KeySpeechSettings:     "Speech Settings",
		KeyInterfaceSettings:  "Interface Settings",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeyBrowse:             "Browse",
		KeySettingsSaved:      "Settings saved successfully!",
		KeyRestartRequired:    "Speech changes apply after restart",
		KeySelectLanguageHint: "Select language",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "Генератор мемов",
		KeySettings:           "Настройки",
		KeyFile:               "Файл",
		KeyLanguage:           "Язык",
		KeyOpenImage:          "Открыть изображение…",
		KeyRefreshVoices:      "Обновить голоса",
		KeyTopText:            "Верхний текст",
		KeyBottomText:         "Нижний текст",
		KeyGenerate:           "Создать",
		KeyClear:              "Очистить",
		KeyReadAloud:          "Прочитать вслух",
		KeyVoice:              "Голос",
		KeyVolume:             "Громкость",
		KeyNoVoices:           "нет",
		KeyNoImage:            "Изображение не загружено",
		KeyImageLoadFailed:    "Не удалось загрузить изображение",
		KeyUnsupportedImage:   "Неподдерживаемый тип файла",
		KeyFontSize:           "Размер шрифта подписи",
		KeySpeechBinary:       "Синтезатор речи",
		KeySpeechBinaryHint:   "espeak-ng (автопоиск, если пусто)",
		KeySpeechLanguage:     "Язык голоса по умолчанию",
		KeySpeechUnavailable:  "Синтезатор речи не найден, чтение вслух отключено",
		KeyCaptionSettings:    "Настройки подписей",
		KeySpeechSettings:     "Настройки речи",
		KeyInterfaceSettings:  "Настройки интерфейса",
		KeySave:               "Сохранить",
		KeyCancel:             "Отмена",
		KeyBrowse:             "Обзор",
		KeySettingsSaved:      "Настройки успешно сохранены!",
		KeyRestartRequired:    "Изменения речи вступят в силу после перезапуска",
		KeySelectLanguageHint: "Выберите язык",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "Gerador de Memes",
		KeySettings:           "Configurações",
		KeyFile:               "Arquivo",
		KeyLanguage:           "Idioma",
		KeyOpenImage:          "Abrir Imagem…",
		KeyRefreshVoices:      "Atualizar Vozes",
		KeyTopText:            "Texto superior",
		KeyBottomText:         "Texto inferior",
		KeyGenerate:           "Gerar",
		KeyClear:              "Limpar",
		KeyReadAloud:          "Ler em Voz Alta",
		KeyVoice:              "Voz",
		KeyVolume:             "Volume",
		KeyNoVoices:           "nenhuma",
		KeyNoImage:            "Nenhuma imagem carregada",
		KeyImageLoadFailed:    "Não foi possível carregar a imagem",
		KeyUnsupportedImage:   "Tipo de arquivo não suportado",
		KeyFontSize:           "Tamanho da Fonte da Legenda",
		KeySpeechBinary:       "Sintetizador de Voz",
		KeySpeechBinaryHint:   "espeak-ng (detecção automática se vazio)",
		KeySpeechLanguage:     "Idioma da Voz Padrão",
		KeySpeechUnavailable:  "Sintetizador de voz não encontrado, leitura desativada",
		KeyCaptionSettings:    "Configurações de Legenda",
		KeySpeechSettings:     "Configurações de Voz",
		KeyInterfaceSettings:  "Configurações de Interface",
		KeySave:               "Salvar",
		KeyCancel:             "Cancelar",
		KeyBrowse:             "Navegar",
		KeySettingsSaved:      "Configurações salvas com sucesso!",
		KeyRestartRequired:    "Alterações de voz aplicam-se após reiniciar",
		KeySelectLanguageHint: "Selecione o idioma",
	}
}
