package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Refresh re-runs the full bulk load, replacing every cached
// collection with the store's current contents. This is also the only
// way to shed optimistic state whose remote write failed.
func (a *API) Refresh(c *gin.Context) {
	a.App.Initialize(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"message": "Cache reloaded",
		"counts": gin.H{
			"members":   len(a.App.Cache().Members()),
			"meetings":  len(a.App.Cache().Meetings()),
			"songs":     len(a.App.Cache().Songs()),
			"prayers":   len(a.App.Cache().Prayers()),
			"media":     len(a.App.Cache().Media()),
			"feedbacks": len(a.App.Cache().Feedbacks()),
		},
	})
}
