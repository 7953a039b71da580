package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sashabaranov/go-openai"

	"go-atollmap/filters"
	"go-atollmap/handlers"
	"go-atollmap/ingest"
)

func SetupRouter(engine *filters.Engine, openaiClient *openai.Client, converter *ingest.Converter) *gin.Engine {
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Hello, welcome to the Atoll Map API!",
		})
	})

	// api routes
	api := r.Group("/api/atlas")
	{
		api.GET("/islands", func(c *gin.Context) { handlers.GetIslands(c, engine) })
		api.GET("/islands/filtered", func(c *gin.Context) { handlers.GetFilteredIslands(c, engine) })
		api.GET("/islands/special/:flag", func(c *gin.Context) { handlers.GetSpecialFilterIslands(c, engine) })
		api.POST("/islands/special/:flag/overlay", func(c *gin.Context) { handlers.SetSpecialFilterOverlay(c, engine) })
		api.GET("/islands/:id/detail", func(c *gin.Context) { handlers.ShowIslandDetail(c, engine) })
		api.GET("/special-counts", func(c *gin.Context) { handlers.GetSpecialFilterCounts(c, engine) })

		api.GET("/markers", func(c *gin.Context) { handlers.GetMarkers(c, engine) })
		api.POST("/filters", func(c *gin.Context) { handlers.ApplyFilters(c, engine) })
		api.POST("/filters/reset", func(c *gin.Context) { handlers.ResetFilters(c, engine) })

		api.GET("/statistics", func(c *gin.Context) { handlers.GetStatistics(c, engine) })
		api.GET("/atolls", func(c *gin.Context) { handlers.GetAtolls(c, engine) })
		api.GET("/atolls/:code/summary", func(c *gin.Context) { handlers.GetAtollSummary(c, engine) })
		api.GET("/atolls/:code/briefing", func(c *gin.Context) { handlers.GetAtollBriefing(c, engine, openaiClient) })

		api.GET("/export", func(c *gin.Context) { handlers.ExportFilteredIslands(c, engine) })
		api.POST("/ingest", func(c *gin.Context) { handlers.IngestCSV(c, converter) })
	}

	return r
}
