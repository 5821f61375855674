package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/Richpong212/Cert-Prep/internal/domain/catalog"
	practicesession "github.com/Richpong212/Cert-Prep/internal/domain/practice_session"
	"github.com/Richpong212/Cert-Prep/internal/tier"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateSessionRequest struct {
	User   *tier.User              `json:"user,omitempty"` // nil = guest
	Type   practicesession.Type    `json:"type,omitempty"`
	ExamID string                  `json:"examId,omitempty"` // preset; overrides Config selection
	Config *practicesession.Config `json:"config,omitempty"`
	Reveal practicesession.Reveal  `json:"reveal,omitempty"` // used with ExamID
}

func (r *CreateSessionRequest) Validate() error {
	if r.ExamID == "" && r.Config == nil {
		return errors.New("either config or examId is required")
	}
	switch r.Type {
	case "", practicesession.TypePractice, practicesession.TypeExam:
	default:
		return errors.New("invalid type: must be practice or exam")
	}
	return nil
}

// QuestionView is a question as presented to the client. Correct choice ids
// and the explanation are included only when the session's reveal policy
// (and the user's plan) allow immediate feedback.
type QuestionView struct {
	ID               string              `json:"id"`
	Domain           string              `json:"domain"`
	Difficulty       catalog.Difficulty  `json:"difficulty"`
	StemMd           string              `json:"stemMd"`
	Choices          []catalog.Choice    `json:"choices"`
	MultiSelect      bool                `json:"multiSelect"`
	CorrectChoiceIDs []string            `json:"correctChoiceIds,omitempty"`
	ExplanationMd    string              `json:"explanationMd,omitempty"`
	References       []catalog.Reference `json:"references,omitempty"`
}

type SessionResponse struct {
	ID            string                            `json:"id"`
	Type          practicesession.Type              `json:"type"`
	Config        practicesession.Config            `json:"config"`
	StartedAt     time.Time                         `json:"startedAt"`
	EndedAt       *time.Time                        `json:"endedAt,omitempty"`
	TimeLimitSec  *int                              `json:"timeLimitSec,omitempty"`
	Questions     []QuestionView                    `json:"questions"`
	Answers       map[string]practicesession.Answer `json:"answers"`
	AnsweredCount int                               `json:"answeredCount"`
	ElapsedSec    int                               `json:"elapsedSec"`
	RemainingSec  int                               `json:"remainingSec"` // -1 = no limit
}

type SubmitAnswerRequest struct {
	QuestionID        string   `json:"questionId"`
	SelectedChoiceIDs []string `json:"selectedChoiceIds"`
}

func (r *SubmitAnswerRequest) Validate() error {
	if r.QuestionID == "" {
		return errors.New("questionId is required")
	}
	return nil
}

type SubmitAnswerResponse struct {
	Status        string   `json:"status"`
	Correct       *bool    `json:"correct,omitempty"` // reveal=after-each only
	CorrectIDs    []string `json:"correctChoiceIds,omitempty"`
	ExplanationMd string   `json:"explanationMd,omitempty"`
}

type ToggleFlagRequest struct {
	QuestionID string `json:"questionId"`
}

func (r *ToggleFlagRequest) Validate() error {
	if r.QuestionID == "" {
		return errors.New("questionId is required")
	}
	return nil
}

type ToggleFlagResponse struct {
	QuestionID string `json:"questionId"`
	Flagged    bool   `json:"flagged"`
}

// QuestionReview is one question of a finished session with the user's
// selection graded against it.
type QuestionReview struct {
	QuestionView
	SelectedChoiceIDs []string `json:"selectedChoiceIds"`
	Correct           bool     `json:"correct"`
	Flagged           bool     `json:"flagged"`
}

type ResultsResponse struct {
	Summary practicesession.ResultSummary `json:"summary"`
	Review  []QuestionReview              `json:"review,omitempty"` // omitted when reveal=off
}

// ── Handlers ────────────────────────────────────────────────────────────────

// @Summary      Start a practice or exam session
// @Description  Selects questions per the config (or a practice-exam preset) and starts the session clock. Tier limits are checked before the session is created.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        body  body      CreateSessionRequest  true  "Session to create"
// @Success      201   {object}  SessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string  "tier limit"
// @Failure      422   {object}  map[string]string  "no matching questions"
// @Router       /sessions [post]
func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	sessionType := req.Type
	if sessionType == "" {
		sessionType = practicesession.TypePractice
	}

	var session *practicesession.Session
	var err error
	if req.ExamID != "" {
		reveal := req.Reveal
		if reveal == "" {
			reveal = practicesession.RevealEnd
		}
		session, err = h.sessions.CreateFromExam(r.Context(), req.User, req.ExamID, reveal)
	} else {
		session, err = h.sessions.Create(r.Context(), req.User, sessionType, *req.Config)
	}
	if h.handleDomainError(w, err) {
		return
	}

	respondJSON(w, http.StatusCreated, h.sessionResponse(session))
}

// @Summary      Start the free quiz
// @Description  Creates the pre-configured untimed ten-question Cloud Practitioner session offered to anonymous users.
// @Tags         Sessions
// @Produce      json
// @Success      201  {object}  SessionResponse
// @Router       /free-quiz [post]
func (h *Handler) createFreeQuiz(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessions.CreateFreeQuiz(r.Context())
	if h.handleDomainError(w, err) {
		return
	}
	respondJSON(w, http.StatusCreated, h.sessionResponse(session))
}

// @Summary      Get a session
// @Description  Returns the session with its questions, answers so far, and derived elapsed/remaining time.
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  SessionResponse
// @Failure      404        {object}  map[string]string
// @Router       /sessions/{sessionID} [get]
func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessions.Get(r.Context(), r.PathValue("sessionID"))
	if h.handleDomainError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, h.sessionResponse(session))
}

// @Summary      Submit an answer
// @Description  Replaces the selection for one question. With reveal=after-each the response grades the answer immediately.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string               true  "Session ID"
// @Param        body       body      SubmitAnswerRequest  true  "Answer"
// @Success      200        {object}  SubmitAnswerResponse
// @Failure      400        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Failure      409        {object}  map[string]string  "session finished"
// @Router       /sessions/{sessionID}/answers [post]
func (h *Handler) submitAnswer(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")

	var req SubmitAnswerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	session, err := h.sessions.RecordAnswer(r.Context(), sessionID, req.QuestionID, req.SelectedChoiceIDs)
	if h.handleDomainError(w, err) {
		return
	}

	response := SubmitAnswerResponse{Status: "recorded"}
	if session.Config.Reveal == practicesession.RevealAfterEach {
		if question, err := h.catalog.Question(req.QuestionID); err == nil {
			correct := practicesession.IsCorrect(req.SelectedChoiceIDs, question.CorrectChoiceIDs)
			response.Correct = &correct
			response.CorrectIDs = question.CorrectChoiceIDs
			response.ExplanationMd = question.ExplanationMd
		}
	}
	respondJSON(w, http.StatusOK, response)
}

// @Summary      Toggle a question flag
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string             true  "Session ID"
// @Param        body       body      ToggleFlagRequest  true  "Question to flag"
// @Success      200        {object}  ToggleFlagResponse
// @Failure      404        {object}  map[string]string
// @Failure      409        {object}  map[string]string  "session finished"
// @Router       /sessions/{sessionID}/flags [post]
func (h *Handler) toggleFlag(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")

	var req ToggleFlagRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	session, err := h.sessions.ToggleFlag(r.Context(), sessionID, req.QuestionID)
	if h.handleDomainError(w, err) {
		return
	}

	respondJSON(w, http.StatusOK, ToggleFlagResponse{
		QuestionID: req.QuestionID,
		Flagged:    session.Answers[req.QuestionID].Flagged,
	})
}

// @Summary      Finish a session
// @Description  Sets the end timestamp, stops the timer, and returns the scored results. Finishing twice is a no-op. Explanation text in the review requires a plan with explanations (X-Subscription header).
// @Tags         Sessions
// @Produce      json
// @Param        sessionID       path      string  true   "Session ID"
// @Param        X-Subscription  header    string  false  "Subscription tier (guest, free, pro, lifetime)"
// @Success      200             {object}  ResultsResponse
// @Failure      404             {object}  map[string]string
// @Router       /sessions/{sessionID}/complete [post]
func (h *Handler) completeSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessions.Finish(r.Context(), r.PathValue("sessionID"))
	if h.handleDomainError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, h.resultsResponse(session, tier.CanViewExplanations(subscriptionUser(r))))
}

// @Summary      Get session results
// @Description  Scores the session on demand. An active session is scored against the current clock. Explanation text in the review requires a plan with explanations (X-Subscription header).
// @Tags         Sessions
// @Produce      json
// @Param        sessionID       path      string  true   "Session ID"
// @Param        X-Subscription  header    string  false  "Subscription tier (guest, free, pro, lifetime)"
// @Success      200             {object}  ResultsResponse
// @Failure      404             {object}  map[string]string
// @Router       /sessions/{sessionID}/results [get]
func (h *Handler) getResults(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessions.Get(r.Context(), r.PathValue("sessionID"))
	if h.handleDomainError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, h.resultsResponse(session, tier.CanViewExplanations(subscriptionUser(r))))
}

// ── View assembly ───────────────────────────────────────────────────────────

func (h *Handler) questionView(questionID string, revealNow bool) (QuestionView, bool) {
	question, err := h.catalog.Question(questionID)
	if err != nil {
		return QuestionView{}, false
	}
	view := QuestionView{
		ID:          question.ID,
		Domain:      question.Domain,
		Difficulty:  question.Difficulty,
		StemMd:      question.StemMd,
		Choices:     question.Choices,
		MultiSelect: question.MultiSelect(),
	}
	if revealNow {
		view.CorrectChoiceIDs = question.CorrectChoiceIDs
		view.ExplanationMd = question.ExplanationMd
		view.References = question.References
	}
	return view, true
}

func (h *Handler) sessionResponse(session *practicesession.Session) SessionResponse {
	revealNow := session.Config.Reveal == practicesession.RevealAfterEach

	questions := make([]QuestionView, 0, len(session.QuestionIDs))
	for _, qid := range session.QuestionIDs {
		if view, ok := h.questionView(qid, revealNow); ok {
			questions = append(questions, view)
		}
	}

	now := time.Now()
	return SessionResponse{
		ID:            session.ID,
		Type:          session.Type,
		Config:        session.Config,
		StartedAt:     session.StartedAt,
		EndedAt:       session.EndedAt,
		TimeLimitSec:  session.TimeLimitSec,
		Questions:     questions,
		Answers:       session.Answers,
		AnsweredCount: session.AnsweredCount(),
		ElapsedSec:    session.ElapsedSec(now),
		RemainingSec:  session.RemainingSec(now),
	}
}

func (h *Handler) resultsResponse(session *practicesession.Session, withExplanations bool) ResultsResponse {
	response := ResultsResponse{
		Summary: practicesession.Score(session, h.catalog, time.Now()),
	}

	// reveal=off means correctness details are withheld even after the end.
	if session.Config.Reveal == practicesession.RevealOff {
		return response
	}

	for _, qid := range session.QuestionIDs {
		view, ok := h.questionView(qid, true)
		if !ok {
			continue
		}
		// Plans without explanation access still see correctness.
		if !withExplanations {
			view.ExplanationMd = ""
			view.References = nil
		}
		answer := session.Answers[qid]
		selected := answer.SelectedChoiceIDs
		if selected == nil {
			selected = []string{}
		}
		response.Review = append(response.Review, QuestionReview{
			QuestionView:      view,
			SelectedChoiceIDs: selected,
			Correct:           practicesession.IsCorrect(selected, view.CorrectChoiceIDs),
			Flagged:           answer.Flagged,
		})
	}
	return response
}
