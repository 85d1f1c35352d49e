package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Chiosap01/allcascais/pkg/display"
)

// MetaHandler serves the static directory vocabulary clients render filters
// and forms from: the category tree and the spoken-language options.
type MetaHandler struct{}

// NewMetaHandler creates a new MetaHandler.
func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

type categoryEntry struct {
	ID            string          `json:"id"`
	Label         string          `json:"label"`
	Icon          string          `json:"icon,omitempty"`
	Subcategories []categoryEntry `json:"subcategories,omitempty"`
}

// Categories handles GET /api/v1/categories, localized by the locale param.
func (*MetaHandler) Categories(c echo.Context) error {
	locale := parseLocale(c.QueryParam("locale"))

	out := make([]categoryEntry, 0, len(display.Categories))
	for _, cat := range display.Categories {
		entry := categoryEntry{
			ID:    string(cat.ID),
			Label: display.CategoryLabel(cat.ID, locale),
			Icon:  cat.Icon,
		}
		subs := display.Subcategories[cat.ID]
		entry.Subcategories = make([]categoryEntry, 0, len(subs))
		for _, sub := range subs {
			entry.Subcategories = append(entry.Subcategories, categoryEntry{
				ID:    sub.ID,
				Label: display.SubcategoryLabel(cat.ID, sub.ID, locale),
				Icon:  sub.Icon,
			})
		}
		out = append(out, entry)
	}

	return c.JSON(http.StatusOK, out)
}

type languageEntry struct {
	Code  string `json:"code"`
	Label string `json:"label"`
	Flag  string `json:"flag"`
}

// Languages handles GET /api/v1/languages, localized by the locale param.
func (*MetaHandler) Languages(c echo.Context) error {
	locale := parseLocale(c.QueryParam("locale"))

	out := make([]languageEntry, 0, len(display.LanguageOptions))
	for _, opt := range display.LanguageOptions {
		out = append(out, languageEntry{
			Code:  opt.Code,
			Label: display.LanguageLabel(opt.Code, locale),
			Flag:  display.LanguageFlag(opt.Code),
		})
	}

	return c.JSON(http.StatusOK, out)
}
