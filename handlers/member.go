package handlers

import (
	"net/http"
	"strings"

	"grandstay/models"
	"grandstay/services/member"

	"github.com/gin-gonic/gin"
)

// MemberSvc is wired in main.
var MemberSvc member.MemberService

// RegisterMember creates a Royal Rewards account.
func RegisterMember(c *gin.Context) {
	var reg models.MemberRegistration
	if err := c.ShouldBindJSON(&reg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	m, token, err := MemberSvc.Register(reg)
	if err != nil {
		if strings.Contains(err.Error(), "already exists") {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"member": m, "token": token})
}

// LoginMember signs a member in.
func LoginMember(c *gin.Context) {
	var creds models.MemberCredentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	m, token, err := MemberSvc.Authenticate(creds)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"member": m, "token": token})
}

// GetMemberProfile returns the authenticated member's profile.
func GetMemberProfile(c *gin.Context) {
	memberID := c.GetString("memberID")

	m, err := MemberSvc.GetProfile(memberID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, m)
}

// PurchaseMembership opens a Stripe payment intent for a tier upgrade.
func PurchaseMembership(c *gin.Context) {
	memberID := c.GetString("memberID")

	var input struct {
		Tier string `json:"tier" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	purchase, clientSecret, err := MemberSvc.PurchaseTier(memberID, input.Tier)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"purchase":     purchase,
		"clientSecret": clientSecret,
	})
}

// ConfirmMembership applies the tier after Stripe confirms the payment.
func ConfirmMembership(c *gin.Context) {
	memberID := c.GetString("memberID")

	var input struct {
		PaymentIntentID string `json:"paymentIntentId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	m, err := MemberSvc.ConfirmTierPurchase(memberID, input.PaymentIntentID)
	if err != nil {
		c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, m)
}
