package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-atollmap/filters"
	"go-atollmap/types"
)

// ApplyFilters replaces the session's filter criteria and recomputes marker
// visibility and the filtered island subset.
func ApplyFilters(c *gin.Context, engine *filters.Engine) {
	var criteria types.FilterCriteria
	if err := c.ShouldBindJSON(&criteria); err != nil {
		log.Printf("Invalid filter criteria payload: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid filter criteria",
			"details": err.Error(),
		})
		return
	}

	visibleMarkers := engine.FilterMarkers(criteria)
	filtered := engine.GetFilteredIslands()

	c.JSON(http.StatusOK, gin.H{
		"visibleMarkers":  visibleMarkers,
		"matchingIslands": len(filtered),
		"criteria":        criteria,
	})
}

// ResetFilters restores the unrestricted criteria and shows every marker.
func ResetFilters(c *gin.Context, engine *filters.Engine) {
	engine.ResetFilters()
	c.JSON(http.StatusOK, gin.H{
		"message":        "Filters reset",
		"visibleMarkers": engine.VisibleMarkerCount(),
	})
}
