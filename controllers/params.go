package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/osociohoteleiro/praiabela/utils"
)

// paramID parses the :id route segment. Non-numeric ids behave like
// unknown ids (404) so "abc" never reaches the database.
func paramID(c *gin.Context, message string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, utils.CodeNotFound, message)
		return 0, false
	}
	return uint(id), true
}
