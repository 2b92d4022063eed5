package handler

import (
	"errors"
	"net/http"

	"parley-chat/internal/services"
	"parley-chat/internal/transport/httpdto"
	parley_errors "parley-chat/pkg/errors"

	"github.com/gin-gonic/gin"
)

// writeError maps a service error onto the wire. Validation failures become a
// per-field error map; failed logins become a generic non-field rejection that
// does not reveal which half of the credential pair was wrong.
func writeError(c *gin.Context, err error) {
	if ve, ok := parley_errors.AsValidationError(err); ok {
		c.JSON(http.StatusBadRequest, ve.Fields)
		return
	}

	if errors.Is(err, parley_errors.ErrInvalidCredentials) {
		c.JSON(http.StatusBadRequest, httpdto.NonFieldErrors("unable to log in with provided credentials"))
		return
	}

	status := services.HTTPStatus(err)
	if status == http.StatusUnauthorized {
		c.JSON(status, httpdto.NewErrorResponse("authentication required"))
		return
	}
	c.JSON(status, httpdto.NewErrorResponse(err.Error()))
}
