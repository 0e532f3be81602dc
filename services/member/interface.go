package member

import (
	"grandstay/database/repository"
	"grandstay/models"

	"go.uber.org/zap"
)

// MemberService manages Royal Rewards accounts and paid tier upgrades.
type MemberService interface {
	// Register creates a member account and returns it with a session token.
	Register(reg models.MemberRegistration) (*models.Member, string, error)
	// Authenticate checks credentials and returns the member with a session token.
	Authenticate(creds models.MemberCredentials) (*models.Member, string, error)
	// GetProfile returns the member by id.
	GetProfile(id string) (*models.Member, error)
	// PurchaseTier opens a Stripe payment intent for a tier upgrade and
	// records the purchase as pending.
	PurchaseTier(memberID, tier string) (*models.MembershipPurchase, string, error)
	// ConfirmTierPurchase re-checks the intent with Stripe and applies the
	// tier once the payment succeeded.
	ConfirmTierPurchase(memberID, intentID string) (*models.Member, error)
}

// DefaultMemberService implements MemberService.
type DefaultMemberService struct {
	Repo   repository.MemberRepository
	Logger *zap.Logger
}
