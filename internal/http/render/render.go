// Package render holds the JSON response envelope the admin console expects.
package render

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK writes a 200 success envelope with the payload under its own key.
func OK(c *gin.Context, key string, payload any) {
	c.JSON(http.StatusOK, gin.H{"success": true, key: payload})
}

// Created writes a 201 success envelope.
func Created(c *gin.Context, key string, payload any) {
	c.JSON(http.StatusCreated, gin.H{"success": true, key: payload})
}

// Message writes a 200 envelope carrying only a human-readable message.
func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": msg})
}
