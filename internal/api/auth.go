package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/quayside/account-core/internal/audit"
	"github.com/quayside/account-core/internal/auth"
)

// minPasswordLength is the minimum accepted password length.
const minPasswordLength = 5

// registerRequest is the request body for POST /auth/register.
type registerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Phone     string `json:"phone,omitempty"`
}

// loginRequest is the request body for POST /auth/login.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authData is the data payload for successful register/login responses.
type authData struct {
	AccessToken string     `json:"accessToken"`
	User        *auth.User `json:"user"`
}

// validate checks the registration fields and returns one error per
// failing field, in field order.
func (req *registerRequest) validate() []fieldError {
	var errs []fieldError

	if req.FirstName == "" {
		errs = append(errs, fieldError{Field: "firstName", Message: "First name is required"})
	}
	if req.LastName == "" {
		errs = append(errs, fieldError{Field: "lastName", Message: "Last name is required"})
	}
	if req.Email == "" {
		errs = append(errs, fieldError{Field: "email", Message: "Email is required"})
	} else if !auth.IsValidEmail(req.Email) {
		errs = append(errs, fieldError{Field: "email", Message: "Email is invalid"})
	}
	if len(req.Password) < minPasswordLength {
		errs = append(errs, fieldError{Field: "password", Message: "Password must be at least 5 characters"})
	}

	return errs
}

// handleRegister creates a user account together with a personal
// organisation, and returns a fresh access token.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationErrors(w, []fieldError{{Field: "body", Message: "Invalid JSON body"}})
		return
	}

	if errs := req.validate(); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error("hash password failed", "error", err)
		writeInternalError(w)
		return
	}

	user := &auth.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: hash,
		Phone:        req.Phone,
	}
	org := &auth.Organisation{
		Name: req.FirstName + "'s Organisation",
	}

	if err := s.userRepo.Create(r.Context(), user, org); err != nil {
		if errors.Is(err, auth.ErrEmailExists) {
			writeValidationErrors(w, []fieldError{{Field: "email", Message: "Email already exists"}})
			return
		}
		s.logger.Error("create user failed", "error", err)
		writeInternalError(w)
		return
	}

	token, err := s.tokens.Issue(user.Email)
	if err != nil {
		s.logger.Error("issue token failed", "error", err)
		writeInternalError(w)
		return
	}

	s.logger.Info("user registered", "user_id", user.ID, "org_id", org.ID)
	s.auditEvent(r, audit.ActionRegister, user.ID, user.Email, map[string]any{
		"org_id": org.ID,
	})

	writeSuccess(w, http.StatusCreated, "Registration successful", authData{
		AccessToken: token,
		User:        user,
	})
}

// handleLogin checks credentials and returns an access token.
//
// Unknown email and wrong password produce the identical 401 body, so the
// endpoint cannot be used to probe which addresses are registered.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAuthFailed(w)
		return
	}

	if req.Email == "" || req.Password == "" {
		writeAuthFailed(w)
		return
	}

	user, err := s.userRepo.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			s.auditEvent(r, audit.ActionLoginFailed, "", req.Email, map[string]any{
				"reason": "unknown email",
			})
			writeAuthFailed(w)
			return
		}
		s.logger.Error("login lookup failed", "error", err)
		writeInternalError(w)
		return
	}

	ok, err := auth.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		s.logger.Error("verify password failed", "error", err, "user_id", user.ID)
		writeInternalError(w)
		return
	}
	if !ok {
		s.auditEvent(r, audit.ActionLoginFailed, user.ID, user.Email, map[string]any{
			"reason": "bad password",
		})
		writeAuthFailed(w)
		return
	}

	token, err := s.tokens.Issue(user.Email)
	if err != nil {
		s.logger.Error("issue token failed", "error", err)
		writeInternalError(w)
		return
	}

	s.logger.Info("user logged in", "user_id", user.ID)
	s.auditEvent(r, audit.ActionLogin, user.ID, user.Email, nil)

	writeSuccess(w, http.StatusOK, "Login successful", authData{
		AccessToken: token,
		User:        user,
	})
}

// auditEvent records an authentication event. Failures are logged and
// swallowed so auditing never breaks the request itself.
func (s *Server) auditEvent(r *http.Request, action, userID, email string, details map[string]any) {
	if s.auditRepo == nil {
		return
	}

	event := &audit.Event{
		Action:  action,
		UserID:  userID,
		Email:   email,
		Details: details,
	}
	if err := s.auditRepo.Create(r.Context(), event); err != nil {
		s.logger.Error("audit write failed", "error", err, "action", action)
	}
}
