package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-atollmap/filters"
)

// GetIslands returns the full normalized island set.
func GetIslands(c *gin.Context, engine *filters.Engine) {
	c.JSON(http.StatusOK, engine.Islands())
}

// GetFilteredIslands returns the islands matching the active criteria.
func GetFilteredIslands(c *gin.Context, engine *filters.Engine) {
	c.JSON(http.StatusOK, engine.GetFilteredIslands())
}

// GetMarkers returns every derived marker with its current visibility.
func GetMarkers(c *gin.Context, engine *filters.Engine) {
	c.JSON(http.StatusOK, engine.MarkerViews())
}

// GetSpecialFilterIslands returns the islands whose named special flag is
// yes, independent of funding data.
func GetSpecialFilterIslands(c *gin.Context, engine *filters.Engine) {
	flagName := c.Param("flag")
	islands, ok := engine.GetSpecialFilterIslands(flagName)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unknown special filter: " + flagName,
		})
		return
	}
	c.JSON(http.StatusOK, islands)
}

// SetSpecialFilterOverlay toggles the highlight overlay for one special
// filter and returns the islands it covers.
func SetSpecialFilterOverlay(c *gin.Context, engine *filters.Engine) {
	flagName := c.Param("flag")
	active := c.Query("active") != "false"

	islands, ok := engine.SetSpecialFilterOverlay(flagName, active)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unknown special filter: " + flagName,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"flag":    flagName,
		"active":  active,
		"islands": len(islands),
	})
}

// GetSpecialFilterCounts returns the per-flag island counts shown next to
// the special filter toggles.
func GetSpecialFilterCounts(c *gin.Context, engine *filters.Engine) {
	c.JSON(http.StatusOK, engine.SpecialFilterCounts())
}

// ShowIslandDetail renders an island's detail card, optionally highlighting
// one funding agency, and routes it to the presentation surface.
func ShowIslandDetail(c *gin.Context, engine *filters.Engine) {
	islandID := c.Param("id")
	focusAgency := c.Query("agency")

	content, err := engine.ShowIslandDetail(islandID, focusAgency)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"islandId": islandID,
		"agency":   focusAgency,
		"content":  content,
	})
}
