package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"inmogestor-backend/internal/ctxkeys"
	"inmogestor-backend/internal/logger"
	"inmogestor-backend/internal/models"
	"inmogestor-backend/internal/store"
)

// AuthHandler issues and inspects session tokens. Staff accounts sign in
// with their bcrypt-checked password; any other non-empty credentials sign
// in as operator.
type AuthHandler struct {
	catalog   *store.Catalog
	jwtSecret []byte
	tokenTTL  time.Duration
	now       func() time.Time
}

// NewAuthHandler creates an AuthHandler with the given JWT signing key.
func NewAuthHandler(catalog *store.Catalog, jwtSecret string, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		catalog:   catalog,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
		now:       time.Now,
	}
}

// Login handles POST /api/auth/login
// A username matching a staff email must carry that account's password and
// takes its role; anyone else signs in as operator.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.Username = strings.TrimSpace(req.Username)

	if errs := req.Validate(); len(errs) > 0 {
		validationFailed(w, errs)
		return
	}

	session, status := h.sessionFor(req.Username, req.Password)
	switch status {
	case http.StatusUnauthorized:
		logger.FromContext(r.Context()).Warn("staff sign-in rejected", zap.String("email", req.Username))
		JSONError(w, status, "Invalid email or password")
		return
	case http.StatusForbidden:
		logger.FromContext(r.Context()).Warn("inactive account sign-in", zap.String("email", req.Username))
		JSONError(w, status, "Account is inactive")
		return
	}

	token, err := h.generateToken(session)
	if err != nil {
		logger.FromContext(r.Context()).Error("failed to generate token", zap.Error(err))
		JSONError(w, http.StatusInternalServerError, "Login failed")
		return
	}

	logger.FromContext(r.Context()).Info("user signed in",
		zap.String("user_id", session.UserID),
		zap.String("role", string(session.Role)),
	)
	JSON(w, http.StatusOK, models.AuthResponse{Token: token, User: session})
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	email, _ := ctx.Value(ctxkeys.UserEmail).(string)

	session := models.Session{
		UserID: ctxkeys.Subject(ctx),
		Email:  email,
		Role:   models.UserRole(ctxkeys.Role(ctx)),
	}
	if u, ok := h.catalog.UserByEmail(email); ok {
		session.Name = u.Name
	}

	JSON(w, http.StatusOK, session)
}

// sessionFor resolves the session for a login. The status is 200 on
// success, 401 on a staff password mismatch and 403 for an inactive account.
func (h *AuthHandler) sessionFor(username, password string) (models.Session, int) {
	if u, ok := h.catalog.UserByEmail(username); ok {
		// Accounts without a stored hash cannot sign in.
		if u.PasswordHash == "" || bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
			return models.Session{}, http.StatusUnauthorized
		}
		if u.Status != models.UserActive {
			return models.Session{}, http.StatusForbidden
		}
		role := u.Role
		if !ctxkeys.ValidRoles[string(role)] {
			role = models.RoleOperator
		}
		return models.Session{UserID: strconv.Itoa(u.ID), Name: u.Name, Email: u.Email, Role: role}, http.StatusOK
	}

	s := models.Session{
		// Stable per username so repeated logins share an id.
		UserID: uuid.NewSHA1(uuid.NameSpaceOID, []byte(strings.ToLower(username))).String(),
		Name:   username,
		Role:   models.RoleOperator,
	}
	if strings.Contains(username, "@") {
		s.Email = username
	}
	return s, http.StatusOK
}

// generateToken creates a signed JWT carrying the session identity.
func (h *AuthHandler) generateToken(s models.Session) (string, error) {
	now := h.now()
	claims := jwt.MapClaims{
		"userId": s.UserID,
		"role":   string(s.Role),
		"email":  s.Email,
		"exp":    now.Add(h.tokenTTL).Unix(),
		"iat":    now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(h.jwtSecret)
}
