package display

import (
	"strings"

	domain "github.com/Chiosap01/allcascais/pkg/types"
)

// LanguageOption is a spoken language a provider can advertise.
type LanguageOption struct {
	Code    string
	LabelEN string
	LabelPT string
	Flag    string
}

// LanguageOptions lists the supported spoken languages in display order.
var LanguageOptions = []LanguageOption{
	{Code: "pt", LabelEN: "Portuguese", LabelPT: "Português", Flag: "🇵🇹"},
	{Code: "en", LabelEN: "English", LabelPT: "Inglês", Flag: "🇬🇧"},
	{Code: "es", LabelEN: "Spanish", LabelPT: "Espanhol", Flag: "🇪🇸"},
	{Code: "fr", LabelEN: "French", LabelPT: "Francês", Flag: "🇫🇷"},
	{Code: "de", LabelEN: "German", LabelPT: "Alemão", Flag: "🇩🇪"},
	{Code: "it", LabelEN: "Italian", LabelPT: "Italiano", Flag: "🇮🇹"},
	{Code: "ru", LabelEN: "Russian", LabelPT: "Russo", Flag: "🇷🇺"},
}

// placeholderFlag is shown for codes outside the closed language set.
const placeholderFlag = "🏳️"

// LanguageFlag returns the flag emoji for a language code, matching
// case-insensitively. Unknown codes get a neutral placeholder so a stray
// code never breaks a rendered list.
func LanguageFlag(code string) string {
	c := strings.ToLower(strings.TrimSpace(code))
	for _, opt := range LanguageOptions {
		if opt.Code == c {
			return opt.Flag
		}
	}
	return placeholderFlag
}

// LanguageLabel returns the localized name for a language code, falling back
// to the raw code when unknown.
func LanguageLabel(code string, locale domain.Locale) string {
	c := strings.ToLower(strings.TrimSpace(code))
	for _, opt := range LanguageOptions {
		if opt.Code != c {
			continue
		}
		if locale == domain.LocalePT {
			return opt.LabelPT
		}
		return opt.LabelEN
	}
	return code
}

// Social platforms accepted by SocialURL.
const (
	PlatformInstagram = "instagram"
	PlatformFacebook  = "facebook"
	PlatformTikTok    = "tiktok"
	PlatformLinkedIn  = "linkedin"
)

// SocialURL turns a stored social handle into a clickable profile URL.
// Full http(s) URLs pass through untouched. Bare handles are resolved
// against the platform's profile scheme, with any leading "@" stripped
// where the platform does not use it. Blank values and unknown platforms
// produce no URL.
func SocialURL(platform, value string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		return ""
	}
	if strings.HasPrefix(v, "http://") || strings.HasPrefix(v, "https://") {
		return v
	}
	switch platform {
	case PlatformInstagram:
		return "https://instagram.com/" + strings.TrimPrefix(v, "@")
	case PlatformFacebook:
		return "https://facebook.com/" + v
	case PlatformTikTok:
		return "https://www.tiktok.com/@" + strings.TrimPrefix(v, "@")
	case PlatformLinkedIn:
		return "https://www.linkedin.com/" + v
	default:
		return ""
	}
}
