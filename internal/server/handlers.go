// internal/server/handlers.go
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"launch-assistant/internal/catalog"
	stderrors "launch-assistant/internal/common/errors"
	"launch-assistant/internal/common/validation"
	"launch-assistant/internal/models"
)

// ==========================
// 1. Session Handlers
// ==========================

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	session := s.sessions.Create()
	s.writeJSON(w, http.StatusCreated, map[string]interface{}{
		"session_id": session.ID,
		"created_at": session.CreatedAt.Format(time.RFC3339),
	})
}

// answersPatch carries one step's worth of form updates. Pointer fields
// distinguish "not sent" from "sent empty".
type answersPatch struct {
	FirstName          *string `json:"first_name"`
	StartupName        *string `json:"startup_name"`
	Email              *string `json:"email"`
	MessagingTested    *string `json:"messaging_tested"`
	LaunchType         *string `json:"launch_type"`
	FundingStatus      *string `json:"funding_status"`
	PrimaryGoal        *string `json:"primary_goal"`
	AudienceReadiness  *string `json:"audience_readiness"`
	PostLaunchPriority *string `json:"post_launch_priority"`
	Industry           *string `json:"industry"`
}

func (s *Server) handlePatchAnswers(w http.ResponseWriter, r *http.Request) {
	session := s.sessions.Get(r.PathValue("id"))
	if session == nil {
		s.writeError(w, http.StatusNotFound, "SESSION_NOT_FOUND", "unknown session")
		return
	}

	var patch answersPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		s.writeError(w, http.StatusBadRequest, stderrors.ErrCodeValidationFailed, "malformed request body")
		return
	}

	if err := applyPatch(&patch, session); err != nil {
		s.writeError(w, http.StatusBadRequest, stderrors.ErrCodeValidationFailed, err.Error())
		return
	}

	session.mu.Lock()
	answers := session.Answers
	session.mu.Unlock()
	s.writeJSON(w, http.StatusOK, answers)
}

// applyPatch validates each supplied field against its enum and merges it in.
// Validation rejects the whole patch so a step never half-applies.
func applyPatch(patch *answersPatch, session *Session) error {
	if patch.Email != nil && !validation.ValidateEmail(*patch.Email) {
		return fmt.Errorf("invalid email address: %q", *patch.Email)
	}
	if patch.MessagingTested != nil && !validMessagingTested(*patch.MessagingTested) {
		return fmt.Errorf("unknown messaging_tested value: %q", *patch.MessagingTested)
	}
	if patch.LaunchType != nil && !validLaunchType(*patch.LaunchType) {
		return fmt.Errorf("unknown launch_type value: %q", *patch.LaunchType)
	}
	if patch.FundingStatus != nil && !validFundingStatus(*patch.FundingStatus) {
		return fmt.Errorf("unknown funding_status value: %q", *patch.FundingStatus)
	}
	if patch.PrimaryGoal != nil && !validPrimaryGoal(*patch.PrimaryGoal) {
		return fmt.Errorf("unknown primary_goal value: %q", *patch.PrimaryGoal)
	}
	if patch.AudienceReadiness != nil && !validAudienceReadiness(*patch.AudienceReadiness) {
		return fmt.Errorf("unknown audience_readiness value: %q", *patch.AudienceReadiness)
	}
	if patch.PostLaunchPriority != nil && !validPostLaunchPriority(*patch.PostLaunchPriority) {
		return fmt.Errorf("unknown post_launch_priority value: %q", *patch.PostLaunchPriority)
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	if patch.FirstName != nil {
		session.Answers.FirstName = *patch.FirstName
	}
	if patch.StartupName != nil {
		session.Answers.StartupName = *patch.StartupName
	}
	if patch.Email != nil {
		session.Answers.Email = *patch.Email
	}
	if patch.MessagingTested != nil {
		session.Answers.MessagingTested = models.MessagingTested(*patch.MessagingTested)
	}
	if patch.LaunchType != nil {
		session.Answers.LaunchType = models.LaunchType(*patch.LaunchType)
	}
	if patch.FundingStatus != nil {
		session.Answers.FundingStatus = models.FundingStatus(*patch.FundingStatus)
	}
	if patch.PrimaryGoal != nil {
		session.Answers.PrimaryGoal = models.PrimaryGoal(*patch.PrimaryGoal)
	}
	if patch.AudienceReadiness != nil {
		session.Answers.AudienceReadiness = models.AudienceReadiness(*patch.AudienceReadiness)
	}
	if patch.PostLaunchPriority != nil {
		session.Answers.PostLaunchPriority = models.PostLaunchPriority(*patch.PostLaunchPriority)
	}
	if patch.Industry != nil {
		session.Answers.Industry = *patch.Industry
	}
	return nil
}

func (s *Server) handleGeneratePlan(w http.ResponseWriter, r *http.Request) {
	session := s.sessions.Get(r.PathValue("id"))
	if session == nil {
		s.writeError(w, http.StatusNotFound, "SESSION_NOT_FOUND", "unknown session")
		return
	}

	var body struct {
		SendEmail bool `json:"send_email"`
	}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			s.writeError(w, http.StatusBadRequest, stderrors.ErrCodeValidationFailed, "malformed request body")
			return
		}
	}

	session.mu.Lock()
	answers := session.Answers
	session.mu.Unlock()

	plan, err := s.assembler.Generate(r.Context(), &answers)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, stderrors.ErrCodeValidationFailed, err.Error())
		return
	}

	session.mu.Lock()
	session.Plan = plan
	session.mu.Unlock()

	// Lead capture and CRM sync are best effort; a storage or CRM outage
	// never blocks the plan from reaching the user.
	var warnings []string
	if _, err := s.leadStore.Record(r.Context(), &answers, plan); err != nil {
		warnings = append(warnings, "lead record not stored")
		s.logger.Warn("Failed to record lead", map[string]interface{}{
			"email": answers.Email,
			"error": err.Error(),
		})
	}
	if s.crm.Configured() {
		if err := s.crm.SyncContact(r.Context(), answers.FirstName, answers.Email); err != nil {
			warnings = append(warnings, "CRM sync failed")
			s.logger.Warn("Failed to sync contact to CRM", map[string]interface{}{
				"email": answers.Email,
				"error": err.Error(),
			})
		}
	}

	emailSent := false
	if body.SendEmail {
		if err := s.sendPlanEmail(r.Context(), session); err != nil {
			warnings = append(warnings, "plan email not delivered")
		} else {
			emailSent = true
		}
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"plan":       plan,
		"email_sent": emailSent,
		"warnings":   warnings,
	})
}

func (s *Server) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	session := s.sessions.Get(r.PathValue("id"))
	if session == nil {
		s.writeError(w, http.StatusNotFound, "SESSION_NOT_FOUND", "unknown session")
		return
	}

	session.mu.Lock()
	plan := session.Plan
	emailSent := session.EmailSent
	session.mu.Unlock()

	if plan == nil {
		s.writeError(w, http.StatusNotFound, "PLAN_NOT_GENERATED", "plan has not been generated for this session")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"plan":       plan,
		"email_sent": emailSent,
	})
}

func (s *Server) handleResetSession(w http.ResponseWriter, r *http.Request) {
	if !s.sessions.Reset(r.PathValue("id")) {
		s.writeError(w, http.StatusNotFound, "SESSION_NOT_FOUND", "unknown session")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

// ==========================
// 2. Milestone Handlers
// ==========================

func (s *Server) handleListMilestones(w http.ResponseWriter, r *http.Request) {
	owner := r.URL.Query().Get("email")
	if !validation.ValidateEmail(owner) {
		s.writeError(w, http.StatusBadRequest, stderrors.ErrCodeValidationFailed, "a valid email query parameter is required")
		return
	}

	list, err := s.engine.List(r.Context(), owner)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	if list == nil {
		list = []models.Milestone{}
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{"milestones": list})
}

func (s *Server) handleAddMilestone(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email       string `json:"email"`
		Name        string `json:"name"`
		Date        string `json:"date"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, http.StatusBadRequest, stderrors.ErrCodeValidationFailed, "malformed request body")
		return
	}
	if !validation.ValidateEmail(body.Email) {
		s.writeError(w, http.StatusBadRequest, stderrors.ErrCodeValidationFailed, "a valid email is required")
		return
	}
	if body.Name == "" {
		s.writeError(w, http.StatusBadRequest, stderrors.ErrCodeValidationFailed, "name is required")
		return
	}
	if _, err := time.Parse(models.DateLayout, body.Date); err != nil {
		s.writeError(w, http.StatusBadRequest, stderrors.ErrCodeValidationFailed, "date must be in YYYY-MM-DD form")
		return
	}

	mtype := models.MilestoneType(body.Type)
	switch mtype {
	case "":
		mtype = models.MilestonePreLaunch
	case models.MilestonePreLaunch, models.MilestoneLaunch, models.MilestonePostLaunch:
	default:
		s.writeError(w, http.StatusBadRequest, stderrors.ErrCodeValidationFailed, fmt.Sprintf("unknown milestone type: %q", body.Type))
		return
	}

	id, err := s.engine.Add(r.Context(), body.Email, body.Name, body.Date, body.Description, mtype)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (s *Server) handleDeleteMilestone(w http.ResponseWriter, r *http.Request) {
	owner := r.URL.Query().Get("email")
	if !validation.ValidateEmail(owner) {
		s.writeError(w, http.StatusBadRequest, stderrors.ErrCodeValidationFailed, "a valid email query parameter is required")
		return
	}

	if err := s.engine.Delete(r.Context(), owner, r.PathValue("id")); err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleDedupeMilestones(w http.ResponseWriter, r *http.Request) {
	owner, ok := s.ownerFromBody(w, r)
	if !ok {
		return
	}

	removed, err := s.engine.Dedupe(r.Context(), owner)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]int{"removed": removed})
}

func (s *Server) handleResetMilestones(w http.ResponseWriter, r *http.Request) {
	owner, ok := s.ownerFromBody(w, r)
	if !ok {
		return
	}

	if err := s.engine.Reset(r.Context(), owner); err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

func (s *Server) ownerFromBody(w http.ResponseWriter, r *http.Request) (string, bool) {
	var body struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, http.StatusBadRequest, stderrors.ErrCodeValidationFailed, "malformed request body")
		return "", false
	}
	if !validation.ValidateEmail(body.Email) {
		s.writeError(w, http.StatusBadRequest, stderrors.ErrCodeValidationFailed, "a valid email is required")
		return "", false
	}
	return body.Email, true
}

func (s *Server) handleCalendarLink(w http.ResponseWriter, r *http.Request) {
	owner := r.URL.Query().Get("email")
	if !validation.ValidateEmail(owner) {
		s.writeError(w, http.StatusBadRequest, stderrors.ErrCodeValidationFailed, "a valid email query parameter is required")
		return
	}

	link, err := s.engine.CalendarLink(r.Context(), owner, r.URL.Query().Get("id"))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"url": link})
}

// handleSuggestedTimeline returns unsaved milestone drafts. It works from a
// session's generated plan, or directly from launch_type and funding_status
// query parameters when no session is supplied.
func (s *Server) handleSuggestedTimeline(w http.ResponseWriter, r *http.Request) {
	var summary models.LaunchSummary

	if sessionID := r.URL.Query().Get("session_id"); sessionID != "" {
		session := s.sessions.Get(sessionID)
		if session == nil {
			s.writeError(w, http.StatusNotFound, "SESSION_NOT_FOUND", "unknown session")
			return
		}
		session.mu.Lock()
		plan := session.Plan
		session.mu.Unlock()
		if plan == nil {
			s.writeError(w, http.StatusBadRequest, stderrors.ErrCodeValidationFailed, "generate a plan before requesting a timeline")
			return
		}
		summary = plan.Summary
	} else {
		summary.LaunchType = r.URL.Query().Get("launch_type")
		summary.FundingStatus = r.URL.Query().Get("funding_status")
		if summary.LaunchType == "" || summary.FundingStatus == "" {
			s.writeError(w, http.StatusBadRequest, stderrors.ErrCodeValidationFailed, "session_id, or launch_type and funding_status, are required")
			return
		}
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"milestones": s.engine.SuggestTimeline(summary),
	})
}

// ==========================
// 3. Email / Competitive Handlers
// ==========================

func (s *Server) handleSendEmail(w http.ResponseWriter, r *http.Request) {
	var body struct {
		SessionID string `json:"session_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, http.StatusBadRequest, stderrors.ErrCodeValidationFailed, "malformed request body")
		return
	}

	session := s.sessions.Get(body.SessionID)
	if session == nil {
		s.writeError(w, http.StatusNotFound, "SESSION_NOT_FOUND", "unknown session")
		return
	}

	session.mu.Lock()
	plan := session.Plan
	session.mu.Unlock()
	if plan == nil {
		s.writeError(w, http.StatusBadRequest, stderrors.ErrCodeValidationFailed, "generate a plan before sending it")
		return
	}

	if err := s.sendPlanEmail(r.Context(), session); err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "sent"})
}

func (s *Server) sendPlanEmail(ctx context.Context, session *Session) error {
	if s.email == nil {
		return stderrors.NewEmailSendFailedError(fmt.Errorf("email delivery is not configured"))
	}

	session.mu.Lock()
	to := session.Answers.Email
	plan := session.Plan
	session.mu.Unlock()

	if err := s.email.SendPlan(ctx, to, plan.Summary.FirstName, plan); err != nil {
		return err
	}

	session.mu.Lock()
	session.EmailSent = true
	session.mu.Unlock()
	return nil
}

func (s *Server) handleCompetitive(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	launchType := models.LaunchType(query.Get("launch_type"))
	funding := models.FundingStatus(query.Get("funding_status"))

	limit := catalog.DefaultExampleLimit
	if raw := query.Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			s.writeError(w, http.StatusBadRequest, stderrors.ErrCodeValidationFailed, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	companies := s.competitive.SimilarCompanies(launchType, funding, query.Get("industry"), limit)
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"industries": s.competitive.Industries(),
		"companies":  companies,
		"takeaways":  catalog.GenerateTakeaways(companies, launchType, funding),
	})
}

// ==========================
// 4. Enum Guards
// ==========================

func validMessagingTested(v string) bool {
	switch models.MessagingTested(v) {
	case models.MessagingValidated, models.MessagingInformal, models.MessagingUntested:
		return true
	}
	return false
}

func validLaunchType(v string) bool {
	switch models.LaunchType(v) {
	case models.LaunchNewProduct, models.LaunchRepositioning, models.LaunchFunding, models.LaunchPartnership:
		return true
	}
	return false
}

func validFundingStatus(v string) bool {
	switch models.FundingStatus(v) {
	case models.FundingBootstrapped, models.FundingUnder1M, models.Funding1To3M, models.FundingOver3M:
		return true
	}
	return false
}

func validPrimaryGoal(v string) bool {
	switch models.PrimaryGoal(v) {
	case models.GoalUsers, models.GoalInvestors, models.GoalPress, models.GoalInfluence:
		return true
	}
	return false
}

func validAudienceReadiness(v string) bool {
	switch models.AudienceReadiness(v) {
	case models.AudienceEngaged, models.AudienceSmall, models.AudienceScratch:
		return true
	}
	return false
}

func validPostLaunchPriority(v string) bool {
	switch models.PostLaunchPriority(v) {
	case models.PriorityScaling, models.PriorityInvestors, models.PriorityFeedback, models.PriorityPress:
		return true
	}
	return false
}
