package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stockroom/inventory-system/internal/api/middleware"
	"github.com/stockroom/inventory-system/internal/core/domain"
)

// ctxClaims extracts the identity injected by the Auth middleware and
// performs a fast-fail check before any service call: both values must be
// present, their absence proves the middleware did not run on this route.
func ctxClaims(c echo.Context) (subjectID string, role domain.Role, err error) {
	subjectID, _ = c.Get(middleware.CtxSubjectID).(string)
	role, _ = c.Get(middleware.CtxRole).(domain.Role)
	if subjectID == "" || !role.Valid() {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return subjectID, role, nil
}
