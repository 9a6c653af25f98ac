package dto

type LocaleListResponse struct {
	Locales []string `json:"locales"`
}

type TranslationValueRequest struct {
	Value string `json:"value"`
}

type ImportResponse struct {
	Imported int `json:"imported"`
}
