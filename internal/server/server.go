// internal/server/server.go
package server

import (
	"encoding/json"
	"net/http"

	"launch-assistant/internal/catalog"
	stderrors "launch-assistant/internal/common/errors"
	"launch-assistant/internal/common/logger"
	"launch-assistant/internal/email"
	"launch-assistant/internal/leads"
	"launch-assistant/internal/milestones"
	"launch-assistant/internal/planner"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server is the HTTP delivery boundary. It holds no decision logic of its
// own: validation happens here, everything else is delegated and the
// downstream degradation rules decide what the client sees.
type Server struct {
	sessions    *SessionStore
	assembler   *planner.Assembler
	engine      *milestones.Engine
	email       *email.Service
	crm         *leads.CRMClient
	leadStore   *leads.Store
	competitive *catalog.Competitive
	logger      logger.Logger
}

func NewServer(
	assembler *planner.Assembler,
	engine *milestones.Engine,
	emailService *email.Service,
	crm *leads.CRMClient,
	leadStore *leads.Store,
	competitive *catalog.Competitive,
	log logger.Logger,
) *Server {
	return &Server{
		sessions:    NewSessionStore(),
		assembler:   assembler,
		engine:      engine,
		email:       emailService,
		crm:         crm,
		leadStore:   leadStore,
		competitive: competitive,
		logger:      log,
	}
}

// Routes builds the request mux. Method and path-parameter matching uses the
// stdlib patterns.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/sessions", s.handleCreateSession)
	mux.HandleFunc("PATCH /api/sessions/{id}/answers", s.handlePatchAnswers)
	mux.HandleFunc("POST /api/sessions/{id}/plan", s.handleGeneratePlan)
	mux.HandleFunc("GET /api/sessions/{id}/plan", s.handleGetPlan)
	mux.HandleFunc("POST /api/sessions/{id}/reset", s.handleResetSession)

	mux.HandleFunc("GET /api/milestones", s.handleListMilestones)
	mux.HandleFunc("POST /api/milestones", s.handleAddMilestone)
	mux.HandleFunc("DELETE /api/milestones/{id}", s.handleDeleteMilestone)
	mux.HandleFunc("POST /api/milestones/dedupe", s.handleDedupeMilestones)
	mux.HandleFunc("POST /api/milestones/reset", s.handleResetMilestones)
	mux.HandleFunc("GET /api/milestones/calendar-link", s.handleCalendarLink)
	mux.HandleFunc("GET /api/milestones/suggested", s.handleSuggestedTimeline)

	mux.HandleFunc("POST /api/email", s.handleSendEmail)
	mux.HandleFunc("GET /api/competitive", s.handleCompetitive)

	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /healthz", s.handleHealth)

	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ==========================
// Response Helpers
// ==========================

func (s *Server) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("Failed to encode response", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, code stderrors.ErrorCode, message string) {
	s.writeJSON(w, status, map[string]interface{}{
		"error": map[string]interface{}{
			"code":    code,
			"message": message,
		},
	})
}

// writeDomainError maps StandardError codes onto HTTP statuses. Lookup
// misses are 404, validation 400, everything else is a storage or transport
// fault the client may retry.
func (s *Server) writeDomainError(w http.ResponseWriter, err error) {
	code := stderrors.CodeOf(err)
	status := http.StatusInternalServerError
	switch code {
	case stderrors.ErrCodeMilestoneNotFound:
		status = http.StatusNotFound
	case stderrors.ErrCodeValidationFailed:
		status = http.StatusBadRequest
	case stderrors.ErrCodeEmailSendFailed, stderrors.ErrCodeCRMSyncFailed:
		status = http.StatusBadGateway
	}
	s.writeError(w, status, code, err.Error())
}
