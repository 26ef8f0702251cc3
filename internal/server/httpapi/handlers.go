package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"qanda-service/internal/common"
	"qanda-service/internal/server/models"
)

type registrationRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", common.ErrParse, err)
	}
	return nil
}

func (s *Server) handleRegistration(w http.ResponseWriter, r *http.Request) {
	var req registrationRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if _, err := s.accounts.Register(r.Context(), req.Email, req.Password); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "account added"})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	token, err := s.accounts.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{Token: token})
}

func queryParams(r *http.Request) map[string]string {
	params := map[string]string{}
	for key, values := range r.URL.Query() {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}
	return params
}

func (s *Server) handleListQuestions(w http.ResponseWriter, r *http.Request) {
	pagination, err := models.ParsePagination(queryParams(r))
	if err != nil {
		writeError(w, err)
		return
	}

	questions, err := s.questions.List(r.Context(), pagination)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, questions)
}

func (s *Server) handleAddQuestion(w http.ResponseWriter, r *http.Request) {
	session, _ := SessionFromContext(r.Context())

	var nq models.NewQuestion
	if err := decodeBody(r, &nq); err != nil {
		writeError(w, err)
		return
	}

	question, err := s.questions.Add(r.Context(), session, nq)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, question)
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", common.ErrParse, err)
	}
	return id, nil
}

func (s *Server) handleUpdateQuestion(w http.ResponseWriter, r *http.Request) {
	session, _ := SessionFromContext(r.Context())

	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var nq models.NewQuestion
	if err := decodeBody(r, &nq); err != nil {
		writeError(w, err)
		return
	}

	question, err := s.questions.Update(r.Context(), session, id, nq)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, question)
}

func (s *Server) handleDeleteQuestion(w http.ResponseWriter, r *http.Request) {
	session, _ := SessionFromContext(r.Context())

	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.questions.Delete(r.Context(), session, id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": fmt.Sprintf("question %d deleted", id)})
}

func (s *Server) handleAddAnswer(w http.ResponseWriter, r *http.Request) {
	session, _ := SessionFromContext(r.Context())

	var na models.NewAnswer
	if err := decodeBody(r, &na); err != nil {
		writeError(w, err)
		return
	}

	answer, err := s.answers.Add(r.Context(), session, na)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, answer)
}

func (s *Server) handleListAnswers(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	pagination, err := models.ParsePagination(queryParams(r))
	if err != nil {
		writeError(w, err)
		return
	}

	answers, err := s.answers.ListByQuestion(r.Context(), id, pagination)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, answers)
}
