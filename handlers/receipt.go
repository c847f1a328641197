package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travelplanner/services"
)

// ReceiptHandler handles POST /api/receipt. It renders a sample booking
// acknowledgment PDF from the request body alone and stores nothing.
func ReceiptHandler(c *gin.Context) {
	var data services.ReceiptData
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	pdfBytes, err := services.GenerateReceiptBytes(data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF: " + err.Error()})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=booking-receipt.pdf")
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
