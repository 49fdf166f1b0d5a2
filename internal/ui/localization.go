package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyEnterURL           = "enter_url"
	KeyDownload           = "download"
	KeyFetchInfo          = "fetch_info"
	KeyCancel             = "cancel"
	KeyDownloadAnother    = "download_another"
	KeyShowInFolder       = "show_in_folder"
	KeyOpen               = "open"
	KeyQuit               = "quit"
	KeySettings           = "settings"
	KeyLoadingInfo        = "loading_info"
	KeyDownloadCompleted  = "download_completed"
	KeyTitle              = "title"
	KeyDuration           = "duration"
	KeySize               = "size"
	KeyResolution         = "resolution"
	KeyLocation           = "location"
	KeyError              = "error"
	KeyInvalidURL         = "invalid_url"
	KeyPleaseEnterURL     = "please_enter_url"
	KeyErrorOpeningFolder = "error_opening_folder"
	KeySave               = "save"
	KeyBrowse             = "browse"
	KeyToolPath           = "tool_path"
	KeyDownloadDirectory  = "download_directory"
	KeyFetchTimeout       = "fetch_timeout"
	KeyAutoDownload       = "auto_download"
	KeyAutoReveal         = "auto_reveal"
	KeyLanguage           = "language"
	KeySettingsSaved      = "settings_saved"
	KeyRestartRequired    = "restart_required"
	KeyStatusFetching     = "status_fetching"
	KeyStatusInfoLoaded   = "status_info_loaded"
	KeyStatusStarting     = "status_starting"
	KeyStatusDownloading  = "status_downloading"
	KeyStatusCompleted    = "status_completed"
	KeyStatusCancelled    = "status_cancelled"
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

func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "YouTube Downloader",
		KeyEnterURL:           "Enter YouTube URL",
		KeyDownload:           "Download",
		KeyFetchInfo:          "Fetch Info",
		KeyCancel:             "Cancel",
		KeyDownloadAnother:    "Download Another",
		KeyShowInFolder:       "Show in Folder",
		KeyOpen:               "Open",
		KeyQuit:               "Quit",
		KeySettings:           "Settings",
		KeyLoadingInfo:        "Loading video information...",
		KeyDownloadCompleted:  "Download Complete!",
		KeyTitle:              "Title",
		KeyDuration:           "Duration",
		KeySize:               "Size",
		KeyResolution:         "Resolution",
		KeyLocation:           "Location",
		KeyError:              "Error",
		KeyInvalidURL:         "Invalid URL",
		KeyPleaseEnterURL:     "Please enter a URL",
		KeyErrorOpeningFolder: "Error opening folder",
		KeySave:               "Save",
		KeyBrowse:             "Browse",
		KeyToolPath:           "yt-dlp Path",
		KeyDownloadDirectory:  "Download Directory",
		KeyFetchTimeout:       "Fetch Timeout (seconds)",
		KeyAutoDownload:       "Download right after fetching info",
		KeyAutoReveal:         "Open folder when download completes",
		KeyLanguage:           "Language",
		KeySettingsSaved:      "Settings saved successfully!",
		KeyRestartRequired:    "Path, folder and timeout changes apply after restart.",
		KeyStatusFetching:     "Fetching video information...",
		KeyStatusInfoLoaded:   "Video information loaded successfully",
		KeyStatusStarting:     "Starting download...",
		KeyStatusDownloading:  "Downloading... %d%%",
		KeyStatusCompleted:    "Download completed successfully!",
		KeyStatusCancelled:    "Download cancelled",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "YouTube Загрузчик",
		KeyEnterURL:           "Введите URL YouTube",
		KeyDownload:           "Скачать",
		KeyFetchInfo:          "Информация",
		KeyCancel:             "Отмена",
		KeyDownloadAnother:    "Скачать ещё",
		KeyShowInFolder:       "Показать в папке",
		KeyOpen:               "Открыть",
		KeyQuit:               "Выход",
		KeySettings:           "Настройки",
		KeyLoadingInfo:        "Загрузка информации о видео...",
		KeyDownloadCompleted:  "Загрузка завершена!",
		KeyTitle:              "Название",
		KeyDuration:           "Длительность",
		KeySize:               "Размер",
		KeyResolution:         "Разрешение",
		KeyLocation:           "Папка",
		KeyError:              "Ошибка",
		KeyInvalidURL:         "Неверный URL",
		KeyPleaseEnterURL:     "Пожалуйста, введите URL",
		KeyErrorOpeningFolder: "Ошибка открытия папки",
		KeySave:               "Сохранить",
		KeyBrowse:             "Обзор",
		KeyToolPath:           "Путь к yt-dlp",
		KeyDownloadDirectory:  "Папка загрузки",
		KeyFetchTimeout:       "Таймаут получения (секунды)",
		KeyAutoDownload:       "Скачивать сразу после получения информации",
		KeyAutoReveal:         "Открывать папку после загрузки",
		KeyLanguage:           "Язык",
		KeySettingsSaved:      "Настройки успешно сохранены!",
		KeyRestartRequired:    "Изменения путей и таймаута применятся после перезапуска.",
		KeyStatusFetching:     "Получение информации о видео...",
		KeyStatusInfoLoaded:   "Информация о видео загружена",
		KeyStatusStarting:     "Начинаем загрузку...",
		KeyStatusDownloading:  "Загрузка... %d%%",
		KeyStatusCompleted:    "Загрузка успешно завершена!",
		KeyStatusCancelled:    "Загрузка отменена",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "YouTube Downloader",
		KeyEnterURL:           "Digite a URL do YouTube",
		KeyDownload:           "Baixar",
		KeyFetchInfo:          "Buscar Info",
		KeyCancel:             "Cancelar",
		KeyDownloadAnother:    "Baixar Outro",
		KeyShowInFolder:       "Mostrar na Pasta",
		KeyOpen:               "Abrir",
		KeyQuit:               "Sair",
		KeySettings:           "Configurações",
		KeyLoadingInfo:        "Carregando informações do vídeo...",
		KeyDownloadCompleted:  "Download Concluído!",
		KeyTitle:              "Título",
		KeyDuration:           "Duração",
		KeySize:               "Tamanho",
		KeyResolution:         "Resolução",
		KeyLocation:           "Local",
		KeyError:              "Erro",
		KeyInvalidURL:         "URL inválida",
		KeyPleaseEnterURL:     "Por favor, digite uma URL",
		KeyErrorOpeningFolder: "Erro ao abrir pasta",
		KeySave:               "Salvar",
		KeyBrowse:             "Navegar",
		KeyToolPath:           "Caminho do yt-dlp",
		KeyDownloadDirectory:  "Diretório de Download",
		KeyFetchTimeout:       "Tempo limite de busca (segundos)",
		KeyAutoDownload:       "Baixar logo após buscar informações",
		KeyAutoReveal:         "Abrir pasta ao concluir o download",
		KeyLanguage:           "Idioma",
		KeySettingsSaved:      "Configurações salvas com sucesso!",
		KeyRestartRequired:    "Mudanças de caminhos e tempo limite valem após reiniciar.",
		KeyStatusFetching:     "Obtendo informações do vídeo...",
		KeyStatusInfoLoaded:   "Informações do vídeo carregadas",
		KeyStatusStarting:     "Iniciando download...",
		KeyStatusDownloading:  "Baixando... %d%%",
		KeyStatusCompleted:    "Download concluído com sucesso!",
		KeyStatusCancelled:    "Download cancelado",
	}
}
