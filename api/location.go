package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// locationList serves the static district/upazila reference data.
func (s *Server) locationList(c *gin.Context) {
	districts, err := s.mongoStore.ListLocations()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": districts})
}
