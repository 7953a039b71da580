package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sashabaranov/go-openai"

	"go-atollmap/atolls"
	"go-atollmap/filters"
	"go-atollmap/summarization"
)

// GetAtolls returns the sorted distinct atoll codes, the order the
// navigation buttons use.
func GetAtolls(c *gin.Context, engine *filters.Engine) {
	c.JSON(http.StatusOK, atolls.Codes(engine.Islands()))
}

// GetAtollSummary builds the detail table for one atoll and focuses the
// surface viewport on it. Selecting an atoll is navigation, so the summary
// reads the full unfiltered island set.
func GetAtollSummary(c *gin.Context, engine *filters.Engine) {
	code := c.Param("code")

	summary := atolls.Summarize(code, engine.Islands())
	if summary.IslandCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "No islands found for atoll: " + code,
		})
		return
	}

	engine.FocusOnAtoll(code)
	c.JSON(http.StatusOK, summary)
}

// GetAtollBriefing returns an AI-written narrative of one atoll's project
// table. Responds 503 when no OpenAI client is configured.
func GetAtollBriefing(c *gin.Context, engine *filters.Engine, openaiClient *openai.Client) {
	if openaiClient == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Briefings are not configured; set OPENAI_API_KEY",
		})
		return
	}

	code := c.Param("code")
	summary := atolls.Summarize(code, engine.Islands())
	if summary.IslandCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "No islands found for atoll: " + code,
		})
		return
	}

	briefing, err := summarization.GenerateAtollBriefing(c.Request.Context(), summary, openaiClient)
	if err != nil {
		log.Printf("Error generating briefing for atoll %s: %v", code, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to generate briefing",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"atoll":    code,
		"briefing": briefing,
	})
}
