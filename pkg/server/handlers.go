package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/duynguyendang/docdates/pkg/common/errors"
)

// handleIndex renders the interactive extraction table. With no extracted
// records it shows a "no data" notice instead.
func (s *Server) handleIndex(c *gin.Context) {
	rep, ok := s.manager.Latest()
	if !ok || len(rep.Records) == 0 {
		c.HTML(http.StatusOK, "report", gin.H{"Report": nil})
		return
	}
	c.HTML(http.StatusOK, "report", gin.H{"Report": rep})
}

// handleReport returns the latest run as JSON, or a specific run via ?run=.
func (s *Server) handleReport(c *gin.Context) {
	if runID := c.Query("run"); runID != "" {
		rep, ok := s.manager.Get(runID)
		if !ok {
			handleError(c, errors.NewAppError(http.StatusNotFound, "Run not found", nil))
			return
		}
		c.JSON(http.StatusOK, rep)
		return
	}

	rep, ok := s.manager.Latest()
	if !ok {
		handleError(c, errors.NewAppError(http.StatusNotFound, "No extraction run available", nil))
		return
	}
	c.JSON(http.StatusOK, rep)
}

// handleRecord looks up a single record by (approximate) filename.
func (s *Server) handleRecord(c *gin.Context) {
	name := c.Query("file")
	if name == "" {
		handleError(c, errors.NewAppError(http.StatusBadRequest, "Missing file parameter", nil))
		return
	}

	rec, ok := s.manager.FindRecord(name)
	if !ok {
		handleError(c, errors.NewAppError(http.StatusNotFound, "No matching record", nil))
		return
	}
	c.JSON(http.StatusOK, rec)
}

func handleError(c *gin.Context, err error) {
	appErr := errors.MapError(err)
	c.JSON(appErr.Code, gin.H{"error": appErr.Message})
}
