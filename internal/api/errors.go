package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"flowboard/internal/validation"
)

// errorBody is the envelope of every failed response.
type errorBody struct {
	Error   string            `json:"error"`
	Details validation.Errors `json:"details,omitempty"`
}

func fail(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, errorBody{Error: msg})
}

// failWith maps err onto the response. Missing records answer 404 with
// notFound; everything else, validation included, answers 500 with msg. The
// underlying error is logged and never returned.
func (h *Handler) failWith(c *gin.Context, err error, notFound, msg string) {
	if notFound != "" && errors.Is(err, gorm.ErrRecordNotFound) {
		fail(c, http.StatusNotFound, notFound)
		return
	}

	body := errorBody{Error: msg}
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		body.Details = verrs
	}
	h.log.WithFields(logrus.Fields{
		"request_id": requestIDFrom(c),
		"path":       c.FullPath(),
	}).WithError(err).Error(msg)
	c.AbortWithStatusJSON(http.StatusInternalServerError, body)
}
