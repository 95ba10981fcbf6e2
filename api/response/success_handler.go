package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func HandleSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, &Response{
		Success:   true,
		Data:      data,
		Code:      http.StatusOK,
		RequestID: getRequestID(c),
	})
}

// HandleCreated answers 201 with a Location header pointing at the new resource.
func HandleCreated(c *gin.Context, location string, data interface{}) {
	if location != "" {
		c.Header("Location", location)
	}
	c.JSON(http.StatusCreated, &Response{
		Success:   true,
		Data:      data,
		Code:      http.StatusCreated,
		RequestID: getRequestID(c),
	})
}

func HandleNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
