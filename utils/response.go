package utils

import "github.com/gin-gonic/gin"

// Stable error codes clients can branch on; the message stays the
// human-readable (Portuguese) text.
const (
	CodeValidationError    = "VALIDATION_ERROR"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeNotFound           = "NOT_FOUND"
	CodeUploadRejected     = "UPLOAD_REJECTED"
	CodeStorageFailure     = "STORAGE_FAILURE"
	CodeRateLimited        = "RATE_LIMITED"
)

func JSONError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{"code": code, "message": message})
}
