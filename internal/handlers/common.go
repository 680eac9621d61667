package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Error bodies use a fixed shape so clients can branch on the success
// flag and numeric code. The key is "error" for 404/405 and "error_code"
// for the rest, which is what the existing frontend expects. The
// transport status always matches the code in the body.

func badRequest(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success":    false,
		"error_code": http.StatusBadRequest,
		"message":    "bad request",
	})
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"success": false,
		"error":   http.StatusNotFound,
		"message": "resource not found",
	})
}

func methodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, gin.H{
		"success": false,
		"error":   http.StatusMethodNotAllowed,
		"message": "no such method",
	})
}

func conflict(c *gin.Context) {
	c.JSON(http.StatusConflict, gin.H{
		"success":    false,
		"error_code": http.StatusConflict,
		"message":    "conflict",
	})
}

func unprocessable(c *gin.Context) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"success":    false,
		"error_code": http.StatusUnprocessableEntity,
		"message":    "unprocessable entity",
	})
}

func internalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"success":    false,
		"error_code": http.StatusInternalServerError,
		"message":    "Internal Server Error",
	})
}

// pageParam reads the 1-based ?page= query parameter, falling back to 1
// when it is absent or not a number.
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		return 1
	}
	return page
}
