package member

import (
	"fmt"
	"strings"
	"time"

	"grandstay/models"
	"grandstay/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const sessionTokenTTL = 72 * time.Hour

// Register creates a member account with the base tier and returns a signed
// session token.
func (s *DefaultMemberService) Register(reg models.MemberRegistration) (*models.Member, string, error) {
	email := strings.ToLower(strings.TrimSpace(reg.Email))

	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		s.Logger.Error("Register: failed to check for existing member", zap.Error(err))
		return nil, "", fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, "", fmt.Errorf("a member with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	member := &models.Member{
		ID:           uuid.New().String(),
		Name:         reg.Name,
		Email:        email,
		Phone:        reg.Phone,
		PasswordHash: string(hash),
		Tier:         TierStandard,
	}
	if err := s.Repo.Create(member); err != nil {
		s.Logger.Error("Register: failed to create member", zap.Error(err))
		return nil, "", fmt.Errorf("registration failed, please try again")
	}

	token, err := utils.GenerateToken(member.ID, member.Email, sessionTokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate session token: %w", err)
	}

	s.Logger.Info("member registered", zap.String("memberId", member.ID))
	return member, token, nil
}

// Authenticate verifies credentials and returns a fresh session token.
func (s *DefaultMemberService) Authenticate(creds models.MemberCredentials) (*models.Member, string, error) {
	email := strings.ToLower(strings.TrimSpace(creds.Email))

	member, err := s.Repo.GetByEmail(email)
	if err != nil {
		s.Logger.Error("Authenticate: lookup failed", zap.Error(err))
		return nil, "", fmt.Errorf("sign in failed, please try again")
	}
	if member == nil {
		return nil, "", fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(creds.Password)); err != nil {
		return nil, "", fmt.Errorf("invalid email or password")
	}

	token, err := utils.GenerateToken(member.ID, member.Email, sessionTokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return member, token, nil
}

// GetProfile returns the member by id.
func (s *DefaultMemberService) GetProfile(id string) (*models.Member, error) {
	member, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch member: %w", err)
	}
	if member == nil {
		return nil, fmt.Errorf("member not found")
	}
	return member, nil
}
