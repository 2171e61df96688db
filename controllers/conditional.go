package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	utils "github.com/rewear/thrift-donations-go/utils"
)

// notModified handles the conditional-GET handshake for a single resource.
// It answers 304 and reports true when the client's If-None-Match matches;
// otherwise it sets the ETag header for the response about to be written.
func notModified(c *gin.Context, id string, at time.Time) bool {
	etag := utils.GenerateETag(id, at)
	if match := c.GetHeader("If-None-Match"); match != "" && match == etag {
		c.Status(http.StatusNotModified)
		return true
	}
	c.Header("ETag", etag)
	return false
}
