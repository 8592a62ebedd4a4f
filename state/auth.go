package state

import (
	"encoding/json"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/G9140/E-commerce-website/kvstore"
	"github.com/G9140/E-commerce-website/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	tokenKey = "auth_token"
	userKey  = "user_data"
)

// userRecordKey addresses the durable per-identity record, separate
// from the single-session userKey. Handlers resolve token holders
// through it, so a later login does not shadow an earlier session.
func userRecordKey(id string) string { return "user_" + id }

// AuthStore owns the current session identity. There is no real
// identity provider behind it: login and registration synthesize the
// user from the submitted email and always succeed, the way a demo
// backend would. The session token is a signed JWT so the HTTP
// middleware can validate requests statelessly.
type AuthStore struct {
	kv      kvstore.Store
	secret  []byte
	latency time.Duration

	mu        sync.RWMutex
	user      *models.User
	token     string
	listeners []func(*models.User)
}

func NewAuthStore(kv kvstore.Store, secret string, latency time.Duration) *AuthStore {
	return &AuthStore{kv: kv, secret: []byte(secret), latency: latency}
}

// Subscribe registers an observer called with the new identity on every
// login, registration, logout and restore. Register subscribers before
// the first auth operation; the list is not safe to grow concurrently
// with logins.
func (s *AuthStore) Subscribe(fn func(*models.User)) {
	s.listeners = append(s.listeners, fn)
}

// Restore loads a previously persisted session at startup. Any failure
// (missing keys, bad token, corrupt user record) leaves the store
// logged out and wipes the stored session; it never propagates.
func (s *AuthStore) Restore() {
	raw, err := s.kv.Get(tokenKey)
	if err != nil {
		return
	}
	token := string(raw)
	if _, _, err := s.ParseToken(token); err != nil {
		log.Printf("⚠️ Auth restore failed: %v", err)
		s.clearSession()
		return
	}
	data, err := s.kv.Get(userKey)
	if err != nil {
		log.Printf("⚠️ Auth restore failed: %v", err)
		s.clearSession()
		return
	}
	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		log.Printf("⚠️ Auth restore failed: %v", err)
		s.clearSession()
		return
	}
	s.setSession(&user, token)
}

// Login signs the caller in as whoever the email says they are. The
// password is accepted, never checked. Role is admin when the email
// contains "admin". Returns false only on an internal error.
func (s *AuthStore) Login(email, password string) bool {
	s.simulateLatency()

	name := email
	if at := strings.Index(email, "@"); at > 0 {
		name = email[:at]
	}
	role := models.RoleUser
	if strings.Contains(email, "admin") {
		role = models.RoleAdmin
	}
	user := &models.User{
		ID:        UserID(email),
		Email:     email,
		Name:      name,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	return s.establish(user)
}

// Register behaves like Login but keeps the supplied display name and
// never grants the admin role.
func (s *AuthStore) Register(name, email, password string) bool {
	s.simulateLatency()

	user := &models.User{
		ID:        UserID(email),
		Email:     email,
		Name:      name,
		Role:      models.RoleUser,
		CreatedAt: time.Now().UTC(),
	}
	return s.establish(user)
}

// Logout drops the session, persisted and in-memory.
func (s *AuthStore) Logout() {
	s.clearSession()
	s.setSession(nil, "")
}

func (s *AuthStore) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *AuthStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// IssueToken signs a session token for the user, valid for 24 hours.
func (s *AuthStore) IssueToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    string(user.Role),
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ParseToken validates a session token and returns the identity claims.
func (s *AuthStore) ParseToken(tokenString string) (userID, role string, err error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		if err == nil {
			err = jwt.ErrTokenUnverifiable
		}
		return "", "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", jwt.ErrTokenInvalidClaims
	}
	userID, _ = claims["user_id"].(string)
	role, _ = claims["role"].(string)
	return userID, role, nil
}

// UserID derives the stable identifier for an email, so a returning
// login maps onto the same persisted cart.
func UserID(email string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(strings.ToLower(email))).String()
}

func (s *AuthStore) establish(user *models.User) bool {
	token, err := s.IssueToken(user)
	if err != nil {
		log.Printf("❌ Token generation failed: %v", err)
		return false
	}
	data, err := json.Marshal(user)
	if err != nil {
		log.Printf("❌ Failed to encode user: %v", err)
		return false
	}
	if err := s.kv.Set(tokenKey, []byte(token)); err != nil {
		log.Printf("❌ Failed to persist session: %v", err)
		return false
	}
	if err := s.kv.Set(userKey, data); err != nil {
		log.Printf("❌ Failed to persist user: %v", err)
		return false
	}
	if err := s.kv.Set(userRecordKey(user.ID), data); err != nil {
		log.Printf("❌ Failed to persist user record: %v", err)
		return false
	}
	s.setSession(user, token)
	return true
}

// UserByID resolves a persisted identity record. It outlives the
// session: logout clears the session keys, not this record.
func (s *AuthStore) UserByID(id string) (*models.User, bool) {
	data, err := s.kv.Get(userRecordKey(id))
	if err != nil {
		return nil, false
	}
	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, false
	}
	return &user, true
}

func (s *AuthStore) setSession(user *models.User, token string) {
	s.mu.Lock()
	s.user = user
	s.token = token
	listeners := s.listeners
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(user)
	}
}

func (s *AuthStore) clearSession() {
	if err := s.kv.Delete(tokenKey); err != nil {
		log.Printf("⚠️ Failed to clear session token: %v", err)
	}
	if err := s.kv.Delete(userKey); err != nil {
		log.Printf("⚠️ Failed to clear user record: %v", err)
	}
}

func (s *AuthStore) simulateLatency() {
	if s.latency > 0 {
		time.Sleep(s.latency)
	}
}
