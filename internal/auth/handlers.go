package auth

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

type standardAccountRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type codeAccountRequest struct {
	Code    string   `json:"code"`
	Answers []string `json:"answers"`
}

// writeAccountError maps service errors onto the HTTP surface. Login paths
// collapse everything recoverable into 401 so responses don't leak whether an
// identifier exists.
func writeAccountError(w http.ResponseWriter, err error, login bool) {
	switch {
	case errors.Is(err, ErrConflict):
		http.Error(w, "Account already exists", http.StatusConflict)
	case errors.Is(err, ErrUnauthorized):
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
	case errors.Is(err, ErrInvalidInput):
		if login {
			http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		} else {
			http.Error(w, "Invalid account details", http.StatusBadRequest)
		}
	default:
		log.Printf("[auth] account operation failed: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func CreateStandardAccountHandler(w http.ResponseWriter, r *http.Request) {
	var req standardAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid Request Format", http.StatusBadRequest)
		return
	}
	if req.Identifier == "" || req.Password == "" {
		http.Error(w, "Identifier and password are required", http.StatusBadRequest)
		return
	}

	token, err := Service.CreateStandardAccount(r.Context(), req.Identifier, req.Password)
	if err != nil {
		writeAccountError(w, err, false)
		return
	}

	writeJSON(w, token)
}

func LoginStandardAccountHandler(w http.ResponseWriter, r *http.Request) {
	var req standardAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid Request Format", http.StatusBadRequest)
		return
	}

	token, err := Service.LoginStandardAccount(r.Context(), req.Identifier, req.Password)
	if err != nil {
		writeAccountError(w, err, true)
		return
	}

	writeJSON(w, token)
}

func CreateCodeAccountHandler(w http.ResponseWriter, r *http.Request) {
	var req codeAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid Request Format", http.StatusBadRequest)
		return
	}

	token, err := Service.CreateCodeAccount(r.Context(), req.Code, req.Answers)
	if err != nil {
		writeAccountError(w, err, false)
		return
	}

	writeJSON(w, token)
}

func LoginCodeAccountHandler(w http.ResponseWriter, r *http.Request) {
	var req codeAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid Request Format", http.StatusBadRequest)
		return
	}

	token, err := Service.LoginCodeAccount(r.Context(), req.Code, req.Answers)
	if err != nil {
		writeAccountError(w, err, true)
		return
	}

	writeJSON(w, token)
}

// QuestionsHandler returns the three security questions derived from a code
// word. Deterministic, so the client can re-derive them at login time too.
func QuestionsHandler(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		http.Error(w, "Missing code parameter", http.StatusBadRequest)
		return
	}

	questions := QuestionsForCode(code)
	writeJSON(w, questions)
}
