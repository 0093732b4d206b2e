package handlers

import (
	"net/http"

	"ecoscan/taxonomy"

	"github.com/gin-gonic/gin"
)

// ListCategoriesHandler returns the waste-category registry with its display
// metadata. Public: the guide page renders it before any login.
func ListCategoriesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, taxonomy.All())
}
