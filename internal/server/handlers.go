package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/redjax/sysprobe/internal/version"
	"github.com/redjax/sysprobe/pkg/sysprobe/report"
)

// Healthz handles the GET /healthz endpoint.
func (s *Server) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": version.Version})
}

// GetPlatform handles the GET /api/v1/platform endpoint.
func (s *Server) GetPlatform(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"platform": s.si.Platform().String()})
}

// GetReport handles the GET /api/v1/report endpoint. The optional sections
// query parameter is a comma-separated list of section keys, e.g.
// ?sections=platform,hardware.processor; without it the full report is
// rendered.
func (s *Server) GetReport(c *gin.Context) {
	cfg := report.Full()
	if raw := c.Query("sections"); raw != "" {
		var keys []string
		for _, section := range strings.Split(raw, ",") {
			section = strings.TrimSpace(section)
			if section == "" {
				continue
			}
			keys = append(keys, report.Expand(section)...)
		}
		cfg = report.Enable(keys...)
	}

	doc, err := s.si.ToDocument(c.Request.Context(), cfg)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, doc)
}
