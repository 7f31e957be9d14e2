package services

import (
	"crypto/subtle"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"busjo/internal/dataset"
	"busjo/internal/domain"
	"busjo/internal/domain/models"
	"busjo/internal/store"
)

// SessionService authenticates against the dataset users and keeps the
// mutable copy of the signed-in user (balance included) in the session store.
// Absence of a session means guest mode.
type SessionService struct {
	Data     *dataset.Store
	Sessions store.SessionStore
	Secret   []byte
	TokenTTL time.Duration
}

func (s SessionService) ttl() time.Duration {
	if s.TokenTTL > 0 {
		return s.TokenTTL
	}
	return 24 * time.Hour
}

// LoginResult carries the issued token and the sanitized user record.
type LoginResult struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Login matches identifier against username or email, verifies the password
// and saves the user record as the active session.
func (s SessionService) Login(identifier, password string) (LoginResult, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return LoginResult{}, domain.ValidationError{Field: "credentials", Msg: "identifier and password are required"}
	}

	col := s.Data.Current()
	var found *models.User
	for i := range col.Users {
		u := col.Users[i]
		if u.Username == identifier || u.Email == identifier {
			found = &u
			break
		}
	}
	if found == nil || !passwordMatches(found.Password, password) {
		return LoginResult{}, domain.UnauthorizedError{Msg: "invalid username/email or password"}
	}

	// Session store wins over the dataset so a persisted balance survives
	// across logins.
	user := *found
	if stored, ok, err := s.Sessions.Load(user.UserID); err == nil && ok {
		user.Balance = stored.Balance
	}
	if err := s.Sessions.Save(user); err != nil {
		return LoginResult{}, domain.InternalError{Msg: "failed to save session", Err: err}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  user.UserID,
		"role": user.Role,
		"exp":  time.Now().Add(s.ttl()).Unix(),
	})
	signed, err := token.SignedString(s.Secret)
	if err != nil {
		return LoginResult{}, domain.InternalError{Msg: "failed to sign token", Err: err}
	}

	user.Password = ""
	return LoginResult{Token: signed, User: user}, nil
}

// Current resolves the bearer token to the active user record. An empty token
// is guest mode (nil user, no error); a bad token is unauthorized.
func (s SessionService) Current(token string) (*models.User, error) {
	if token == "" {
		return nil, nil
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.Secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.UnauthorizedError{Msg: "invalid or expired token", Err: err}
	}
	sub, err := parsed.Claims.GetSubject()
	if err != nil || sub == "" {
		return nil, domain.UnauthorizedError{Msg: "invalid token subject"}
	}

	if user, ok, err := s.Sessions.Load(sub); err != nil {
		return nil, domain.InternalError{Msg: "failed to load session", Err: err}
	} else if ok {
		return &user, nil
	}

	// Token without a stored session (store wiped): fall back to the dataset
	// record and re-seed the session.
	if user, ok := s.Data.Current().UserByID(sub); ok {
		if err := s.Sessions.Save(user); err != nil {
			return nil, domain.InternalError{Msg: "failed to save session", Err: err}
		}
		return &user, nil
	}
	return nil, domain.UnauthorizedError{Msg: "unknown user"}
}

// Logout drops the stored session record.
func (s SessionService) Logout(userID string) error {
	if userID == "" {
		return nil
	}
	return s.Sessions.Clear(userID)
}

// passwordMatches accepts bcrypt hashes and, for the demo datasets that ship
// plaintext passwords, falls back to constant-time equality.
func passwordMatches(stored, given string) bool {
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(given)) == 1
}
