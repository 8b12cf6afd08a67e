package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Burgamansi/CarmoPlusUltra/models"
)

func (a *API) GetLiturgy(c *gin.Context) {
	liturgy, ok := a.App.Cache().Liturgy()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No liturgy published yet"})
		return
	}

	c.JSON(http.StatusOK, liturgy)
}

// UpdateLiturgy publishes the day's readings, replacing the current
// ones wholesale. Coordinator only.
func (a *API) UpdateLiturgy(c *gin.Context) {
	var liturgy models.DailyLiturgy
	if err := c.ShouldBindJSON(&liturgy); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	saved, err := a.App.UpdateLiturgy(c.Request.Context(), liturgy)
	if err != nil {
		c.JSON(writeStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, saved)
}
