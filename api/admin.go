package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// adminStats is the staff dashboard report, computed on demand; any
// staleness under concurrent writes is acceptable.
func (s *Server) adminStats(c *gin.Context) {
	stats, err := s.mongoStore.AdminStats()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, stats)
}
