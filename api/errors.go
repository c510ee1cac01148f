package api

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	errorInternalServer    = errorResponse{1000, "internal server error"}
	errorInvalidParameters = errorResponse{1001, "invalid parameters"}
	errorUnknownBorough    = errorResponse{1002, "unknown borough"}
	errorZoneNotFound      = errorResponse{1003, "zone not found"}
	errorNoValidation      = errorResponse{1004, "no validation report available"}
)

func abortWithEncoding(c *gin.Context, code int, resp errorResponse, errs ...error) {
	for _, err := range errs {
		c.Error(err)
		log.WithFields(logrus.Fields{
			"prefix": "gin",
			"path":   c.Request.URL.Path,
		}).WithError(err).Error(resp.Message)
	}

	c.AbortWithStatusJSON(code, resp)
}
