package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v5"

	"github.com/samcharles93/gpucheck/internal/cuda/cachepref"
	"github.com/samcharles93/gpucheck/internal/cuda/cudart"
)

// Server answers status-code and cache-preference lookups over HTTP.
type Server struct {
	rt cudart.Runtime
}

func NewServer(rt cudart.Runtime) *Server {
	if rt == nil {
		rt = cudart.Table()
	}
	return &Server{rt: rt}
}

func (s *Server) Register(e *echo.Echo) {
	e.GET("/healthz", s.handleHealth)
	e.GET("/v1/status/:code", s.handleStatus)
	e.GET("/v1/cache-preferences", s.handleCachePreferences)
	e.GET("/v1/cache-preferences/:pref", s.handleCachePreference)
}

type HealthResponse struct {
	Status string `json:"status"`
	CUDA   bool   `json:"cuda"`
}

type StatusResponse struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Code    int    `json:"code"`
	Name    string `json:"name"`
	Message string `json:"message"`
	Known   bool   `json:"known"`
	Success bool   `json:"success"`
}

type CachePreference struct {
	Value       int    `json:"value"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CachePreferenceList struct {
	Object string            `json:"object"`
	Data   []CachePreference `json:"data"`
}

type ErrorBody struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Param   string `json:"param,omitempty"`
}

func (s *Server) handleHealth(c *echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok", CUDA: cudart.Available()})
}

func (s *Server) handleStatus(c *echo.Context) error {
	raw := strings.TrimSpace(c.Param("code"))
	code, err := strconv.Atoi(raw)
	if err != nil {
		return writeError(c, http.StatusBadRequest, "invalid_request_error", "status code must be an integer", "code")
	}
	return c.JSON(http.StatusOK, s.Lookup(cudart.Status(code)))
}

// Lookup describes st using the server's runtime.
func (s *Server) Lookup(st cudart.Status) StatusResponse {
	return StatusResponse{
		ID:      "status_" + uuid.NewString(),
		Object:  "cuda.status",
		Code:    int(st),
		Name:    st.Name(),
		Message: s.rt.ErrorString(st),
		Known:   cudart.Known(st),
		Success: st.OK(),
	}
}

func (s *Server) handleCachePreferences(c *echo.Context) error {
	all := cachepref.All()
	out := CachePreferenceList{Object: "list", Data: make([]CachePreference, 0, len(all))}
	for _, p := range all {
		out.Data = append(out.Data, describePreference(p))
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) handleCachePreference(c *echo.Context) error {
	p, err := cachepref.Parse(c.Param("pref"))
	if err != nil {
		return writeError(c, http.StatusNotFound, "not_found_error", err.Error(), "pref")
	}
	return c.JSON(http.StatusOK, describePreference(p))
}

func describePreference(p cachepref.Preference) CachePreference {
	return CachePreference{
		Value:       int(p),
		Name:        p.String(),
		Description: cachepref.Describe(p),
	}
}

func writeError(c *echo.Context, status int, errType, msg, param string) error {
	return c.JSON(status, map[string]any{
		"error": ErrorBody{
			Message: msg,
			Type:    errType,
			Param:   param,
		},
	})
}
