package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Action endpoints share one result contract: {"success":true} on success,
// {"error":"..."} on failure, and list payloads whose "data" is always
// array-shaped even when the select failed.

func respondSuccess(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func respondActionError(c *gin.Context, status int, err error) {
	c.JSON(status, gin.H{"error": err.Error()})
}

func respondData(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"data": data})
}

func respondDataError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"data": []interface{}{}, "error": err.Error()})
}
