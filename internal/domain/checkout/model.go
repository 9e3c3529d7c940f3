package checkout

import (
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SubscriptionType string

const (
	SubscriptionIndividual SubscriptionType = "individual"
	SubscriptionSMBusiness SubscriptionType = "sm_business"
	SubscriptionEnterprise SubscriptionType = "enterprise"
	SubscriptionCorporate  SubscriptionType = "corporate"
)

func (t SubscriptionType) Valid() bool {
	switch t {
	case SubscriptionIndividual, SubscriptionSMBusiness, SubscriptionEnterprise, SubscriptionCorporate:
		return true
	}
	return false
}

type Platform string

const (
	PlatformLinkedIn  Platform = "linkedin"
	PlatformTwitter   Platform = "twitter"
	PlatformInstagram Platform = "instagram"
	PlatformFacebook  Platform = "facebook"
	PlatformTikTok    Platform = "tiktok"
	PlatformTelegram  Platform = "telegram"
	PlatformWhatsApp  Platform = "whatsapp"
)

// Payment status values. The gateway may write its own free-form statuses;
// these are the local sentinels.
const (
	StatusPending  = "pending"
	StatusTestMode = "test_mode"
	StatusFailed   = "failed"
	StatusSuccess  = "success"
)

type Submission struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FirstName string `gorm:"size:100;not null" json:"first_name"`
	LastName  string `gorm:"size:100;not null" json:"last_name"`
	Title     string `gorm:"size:100;not null" json:"title"`
	Email     string `gorm:"not null" json:"email"`

	// Opaque references to the stored uploads; layout is owned by media.
	ProfilePicture *string `json:"profile_picture,omitempty"`
	CompanyLogo    *string `json:"company_logo,omitempty"`

	SubscriptionType SubscriptionType `gorm:"type:varchar(20);not null" json:"subscription_type"`
	Amount           decimal.Decimal  `gorm:"type:numeric(10,2);not null" json:"amount"`

	// TxRef correlates this submission with the gateway's view of the
	// payment. Assigned once at creation, never updated.
	TxRef         string `gorm:"column:tx_ref;size:100;uniqueIndex:idx_submissions_tx_ref" json:"tx_ref"`
	PaymentStatus string `gorm:"size:50;not null;default:'pending'" json:"payment_status"`
	IsPaid        bool   `gorm:"not null;default:false" json:"is_paid"`

	SocialLinks []SocialLink `gorm:"constraint:OnDelete:CASCADE" json:"social_links,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Submission) BeforeCreate(tx *gorm.DB) error {
	if s.TxRef == "" {
		s.TxRef = NewTxRef()
	}
	if s.PaymentStatus == "" {
		s.PaymentStatus = StatusPending
	}
	return nil
}

type SocialLink struct {
	ID           uint     `gorm:"primaryKey" json:"id"`
	SubmissionID uint     `gorm:"not null;uniqueIndex:idx_social_links_submission_platform" json:"-"`
	Platform     Platform `gorm:"type:varchar(20);not null;uniqueIndex:idx_social_links_submission_platform" json:"platform"`
	URL          string   `gorm:"not null" json:"url"`
}

// NewTxRef generates a gateway transaction reference: "TAP-" followed by the
// first 12 hex characters of a v4 UUID, uppercased.
func NewTxRef() string {
	u := uuid.New()
	return "TAP-" + strings.ToUpper(hex.EncodeToString(u[:])[:12])
}
