package member

import (
	"fmt"

	"grandstay/models"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// Royal Rewards tiers. Standard is free; the paid tiers are bought through a
// Stripe payment intent and applied only after Stripe confirms the charge.
const (
	TierStandard = "Standard"
	TierGold     = "Gold"
	TierPlatinum = "Platinum"
)

// tierPrices maps paid tiers to their price in integer currency units.
var tierPrices = map[string]int64{
	TierGold:     4999,
	TierPlatinum: 14999,
}

const membershipCurrency = "usd"

// PurchaseTier opens a payment intent for the tier and records the purchase
// as pending. The returned client secret drives Stripe's confirmation flow on
// the guest's side.
func (s *DefaultMemberService) PurchaseTier(memberID, tier string) (*models.MembershipPurchase, string, error) {
	price, ok := tierPrices[tier]
	if !ok {
		return nil, "", fmt.Errorf("unknown membership tier: %s", tier)
	}

	member, err := s.Repo.GetByID(memberID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch member: %w", err)
	}
	if member == nil {
		return nil, "", fmt.Errorf("member not found")
	}
	if member.Tier == tier {
		return nil, "", fmt.Errorf("member already holds the %s tier", tier)
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(price),
		Currency: stripe.String(membershipCurrency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("member_id", memberID)
	params.AddMetadata("tier", tier)

	intent, err := paymentintent.New(params)
	if err != nil {
		s.Logger.Error("PurchaseTier: failed to create payment intent",
			zap.String("memberId", memberID), zap.Error(err))
		return nil, "", fmt.Errorf("failed to start membership purchase: %w", err)
	}

	purchase := &models.MembershipPurchase{
		ID:              uuid.New().String(),
		MemberID:        memberID,
		Tier:            tier,
		Amount:          price,
		Currency:        membershipCurrency,
		PaymentIntentID: intent.ID,
		Status:          string(intent.Status),
	}
	if err := s.Repo.CreatePurchase(purchase); err != nil {
		return nil, "", fmt.Errorf("failed to record membership purchase: %w", err)
	}

	s.Logger.Info("membership purchase opened",
		zap.String("memberId", memberID),
		zap.String("tier", tier),
		zap.String("intentId", intent.ID))
	return purchase, intent.ClientSecret, nil
}

// ConfirmTierPurchase re-checks the intent directly with Stripe. The tier is
// applied only on a succeeded intent; the client's word alone never upgrades
// an account.
func (s *DefaultMemberService) ConfirmTierPurchase(memberID, intentID string) (*models.Member, error) {
	intent, err := paymentintent.Get(intentID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payment intent: %w", err)
	}

	if intent.Metadata["member_id"] != memberID {
		return nil, fmt.Errorf("payment intent does not belong to this member")
	}
	tier := intent.Metadata["tier"]
	if _, ok := tierPrices[tier]; !ok {
		return nil, fmt.Errorf("payment intent carries no valid tier")
	}

	if err := s.Repo.UpdatePurchaseStatus(intent.ID, string(intent.Status)); err != nil {
		s.Logger.Warn("ConfirmTierPurchase: failed to update purchase status",
			zap.String("intentId", intent.ID), zap.Error(err))
	}

	if intent.Status != stripe.PaymentIntentStatusSucceeded {
		return nil, fmt.Errorf("membership payment not completed (status %s)", intent.Status)
	}

	if err := s.Repo.UpdateTier(memberID, tier); err != nil {
		return nil, fmt.Errorf("failed to apply membership tier: %w", err)
	}

	member, err := s.Repo.GetByID(memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch member after upgrade: %w", err)
	}

	s.Logger.Info("membership tier applied",
		zap.String("memberId", memberID),
		zap.String("tier", tier))
	return member, nil
}
