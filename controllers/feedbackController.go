package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Burgamansi/CarmoPlusUltra/models"
)

func (a *API) GetFeedbacks(c *gin.Context) {
	c.JSON(http.StatusOK, a.App.Cache().Feedbacks())
}

func (a *API) CreateFeedback(c *gin.Context) {
	var feedback models.Feedback
	if err := c.ShouldBindJSON(&feedback); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	saved, err := a.App.AddFeedback(c.Request.Context(), feedback)
	if err != nil {
		c.JSON(writeStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, saved)
}
