package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/donatelife/donatelife-api/schema"
)

// contactCreate records an inbound contact message.
func (s *Server) contactCreate(c *gin.Context) {
	var params struct {
		Name    string `json:"name"`
		Email   string `json:"email" binding:"required"`
		Message string `json:"message" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	message, err := s.mongoStore.CreateContactMessage(schema.ContactMessage{
		Name:    params.Name,
		Email:   params.Email,
		Message: params.Message,
	})
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": message})
}
