// Package handlers implements HTTP handlers for the allcascais API.
//
// List endpoints share one shape: fetch raw rows through the store's
// equality-predicate reads, run them through the directory pipeline, and
// apply the user's filters in memory. An empty result is a 200 with an
// empty array, never an error.
package handlers

import (
	"github.com/labstack/echo/v4"

	domain "github.com/Chiosap01/allcascais/pkg/types"
)

// userIDHeader carries the opaque id of the calling user. Authentication
// itself happens upstream; the API only needs the id for owner scoping.
const userIDHeader = "X-User-ID"

func currentUserID(c echo.Context) string {
	return c.Request().Header.Get(userIDHeader)
}

func parseLocale(s string) domain.Locale {
	if domain.Locale(s) == domain.LocalePT {
		return domain.LocalePT
	}
	return domain.LocaleEN
}
