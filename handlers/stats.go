package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-atollmap/filters"
	"go-atollmap/statistics"
)

// GetStatistics returns the aggregate counts for the currently filtered
// island subset, respecting the active project-type and funding selections.
func GetStatistics(c *gin.Context, engine *filters.Engine) {
	filtered := engine.GetFilteredIslands()
	stats := statistics.Summarize(filtered, engine.Criteria())
	c.JSON(http.StatusOK, stats)
}
