package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"go-atollmap/ingest"
)

// IngestRequest names the CSV to convert and where to write the dataset.
type IngestRequest struct {
	Input  string `json:"input" binding:"required"`
	Output string `json:"output"`
}

// IngestCSV converts a raw project workbook export into the dataset JSON the
// load boundary consumes.
func IngestCSV(c *gin.Context, converter *ingest.Converter) {
	var req IngestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid ingest request",
			"details": err.Error(),
		})
		return
	}
	if req.Output == "" {
		req.Output = "maldives_projects_data.json"
	}

	ds, err := converter.Convert(req.Input)
	if err != nil {
		log.Printf("Ingest failed for %s: %v", req.Input, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to convert CSV",
			"details": err.Error(),
		})
		return
	}

	jsonData, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to format dataset",
			"details": err.Error(),
		})
		return
	}
	if err := os.WriteFile(req.Output, jsonData, 0o644); err != nil {
		log.Printf("Error writing dataset file '%s': %v", req.Output, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to write dataset file",
			"details": err.Error(),
		})
		return
	}

	log.Printf("Successfully ingested %s into %s (%d islands)", req.Input, req.Output, len(ds.Islands))
	c.JSON(http.StatusOK, gin.H{
		"message":  "Ingest complete",
		"filename": req.Output,
		"islands":  len(ds.Islands),
		"metadata": ds.Metadata,
	})
}
