package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Burgamansi/CarmoPlusUltra/models"
)

// The scratchpad endpoints back the home-screen notes field: loaded
// when the view mounts, written on explicit save. Local state only,
// nothing here touches the document store.

func (a *API) GetNote(c *gin.Context) {
	body, found, err := a.Notes.Get(c.Param("note_key"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusOK, models.Note{Key: c.Param("note_key"), Body: ""})
		return
	}

	c.JSON(http.StatusOK, models.Note{Key: c.Param("note_key"), Body: body})
}

func (a *API) SaveNote(c *gin.Context) {
	var note models.Note
	if err := c.ShouldBindJSON(&note); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := a.Notes.Save(c.Param("note_key"), note.Body); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Note saved"})
}

func (a *API) DeleteNote(c *gin.Context) {
	if err := a.Notes.Delete(c.Param("note_key")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Note deleted"})
}
