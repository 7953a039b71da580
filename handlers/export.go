package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"go-atollmap/filters"
)

// ExportFilteredIslands saves the currently filtered island set to a local
// JSON file and reports the filename and count.
func ExportFilteredIslands(c *gin.Context, engine *filters.Engine) {
	log.Println("Received request to export filtered islands...")

	islands := engine.GetFilteredIslands()
	if len(islands) == 0 {
		log.Println("No islands match the current filters; nothing to export.")
		c.JSON(http.StatusOK, gin.H{
			"message": "No islands match the current filters.",
			"count":   0,
		})
		return
	}

	jsonData, err := json.MarshalIndent(islands, "", "  ")
	if err != nil {
		log.Printf("Error marshaling island data to JSON: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to format island data",
			"details": err.Error(),
		})
		return
	}

	filename := "islands_export.json"
	if err := os.WriteFile(filename, jsonData, 0o644); err != nil {
		log.Printf("Error writing export file '%s': %v", filename, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to write export file",
			"details": err.Error(),
		})
		return
	}

	log.Printf("Successfully exported %d islands to %s", len(islands), filename)
	c.JSON(http.StatusOK, gin.H{
		"message":  fmt.Sprintf("Successfully exported %d islands.", len(islands)),
		"filename": filename,
		"count":    len(islands),
	})
}
