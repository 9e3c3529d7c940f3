package checkoutapi

import (
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"checkout-app/internal/domain/checkout"
	"checkout-app/internal/domain/media"
	"checkout-app/internal/domain/payment"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// Shown on the provider's hosted payment page.
const checkoutTitle = "TAP Digital Card"

// Fixed form-field -> platform mapping for social links. Anything outside
// this set is ignored.
var socialFields = map[string]checkout.Platform{
	"social_linkedin":  checkout.PlatformLinkedIn,
	"social_twitter":   checkout.PlatformTwitter,
	"social_instagram": checkout.PlatformInstagram,
	"social_facebook":  checkout.PlatformFacebook,
	"social_tiktok":    checkout.PlatformTikTok,
	"social_telegram":  checkout.PlatformTelegram,
	"social_whatsapp":  checkout.PlatformWhatsApp,
}

type Handler struct {
	Store   checkout.Store
	Gateway payment.Gateway

	// AppURL is the frontend base; APIURL is this service's public base,
	// used for the gateway's callback/return URLs.
	AppURL    string
	APIURL    string
	UploadDir string
}

func NewHandler(store checkout.Store, gateway payment.Gateway, appURL, apiURL, uploadDir string) *Handler {
	return &Handler{
		Store:     store,
		Gateway:   gateway,
		AppURL:    appURL,
		APIURL:    apiURL,
		UploadDir: uploadDir,
	}
}

// Submit handles POST /checkout: validate, persist the submission and its
// social links, then hand the customer off to the payment gateway.
func (h *Handler) Submit(c *gin.Context) {
	var form checkoutForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": bindingErrors(err)})
		return
	}

	errs := map[string]string{}

	if !checkout.SubscriptionType(form.SubscriptionType).Valid() {
		errs["subscription_type"] = "Select a valid subscription type."
	}

	amount, err := decimal.NewFromString(form.Amount)
	if err != nil {
		errs["amount"] = "Enter a valid amount."
	} else if !amount.IsPositive() {
		errs["amount"] = "Amount must be greater than zero."
	}

	profileFile := optionalFile(c, "profile_picture")
	if profileFile != nil {
		if err := media.ValidateUpload(profileFile); err != nil {
			errs["profile_picture"] = err.Error()
		}
	}
	logoFile := optionalFile(c, "company_logo")
	if logoFile != nil {
		if err := media.ValidateUpload(logoFile); err != nil {
			errs["company_logo"] = err.Error()
		}
	}

	if len(errs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
		return
	}

	// Validation passed; only now do uploads touch disk.
	var logoPath *string
	profilePath, err := h.saveOptionalFile(profileFile, "profiles/pictures")
	if err == nil {
		logoPath, err = h.saveOptionalFile(logoFile, "profiles/logos")
	}
	if err != nil {
		log.Println("❌ Failed to store upload:", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "There was an error processing your order. Please try again.",
		})
		return
	}

	sub := checkout.Submission{
		FirstName:        form.FirstName,
		LastName:         form.LastName,
		Title:            form.Title,
		Email:            strings.ToLower(form.Email),
		ProfilePicture:   profilePath,
		CompanyLogo:      logoPath,
		SubscriptionType: checkout.SubscriptionType(form.SubscriptionType),
		Amount:           amount,
		PaymentStatus:    checkout.StatusPending,
	}

	links := extractSocialLinks(c)

	if err := h.Store.CreateSubmission(c.Request.Context(), &sub, links); err != nil {
		log.Println("❌ Failed to create submission:", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "There was an error processing your order. Please try again.",
		})
		return
	}

	// Gateway not configured: skip payment entirely and send the customer
	// straight to the success page, flagged as test mode.
	if !h.Gateway.Configured() {
		if err := h.Store.UpdatePaymentStatus(c.Request.Context(), sub.ID, checkout.StatusTestMode, false); err != nil {
			log.Println("❌ Failed to mark submission test_mode:", err)
		}
		c.JSON(http.StatusOK, gin.H{
			"url":       h.successURL(sub.ID),
			"test_mode": true,
		})
		return
	}

	redirect, err := h.Gateway.Initialize(c.Request.Context(), payment.InitializeRequest{
		Amount:      sub.Amount.String(),
		Currency:    "ETB",
		Email:       sub.Email,
		FirstName:   sub.FirstName,
		LastName:    sub.LastName,
		TxRef:       sub.TxRef,
		CallbackURL: h.APIURL + "/payment/callback",
		ReturnURL:   h.APIURL + "/payment/callback",
		Title:       checkoutTitle,
	})
	if err != nil {
		// The submission stays pending; nothing is rolled back.
		log.Printf("❌ Payment initialize failed for tx_ref=%s: %v", sub.TxRef, err)
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Payment service is currently unavailable. Please try again later.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": redirect})
}

// GetSuccess handles GET /checkout/success/:id, the read-only view of a
// persisted submission.
func (h *Handler) GetSuccess(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	sub, err := h.Store.GetSubmission(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, sub)
}

// optionalFile returns the uploaded file for field, or nil when the form
// carries none. Both uploads are optional.
func optionalFile(c *gin.Context, field string) *multipart.FileHeader {
	file, err := c.FormFile(field)
	if err != nil {
		return nil
	}
	return file
}

func (h *Handler) saveOptionalFile(file *multipart.FileHeader, subdir string) (*string, error) {
	if file == nil {
		return nil, nil
	}
	path, err := media.SaveUpload(file, filepath.Join(h.UploadDir, subdir))
	if err != nil {
		return nil, err
	}
	return &path, nil
}

func (h *Handler) successURL(id uint) string {
	return fmt.Sprintf("%s/checkout/success/%d", h.AppURL, id)
}

func extractSocialLinks(c *gin.Context) []checkout.SocialLink {
	var links []checkout.SocialLink
	for field, platform := range socialFields {
		url := strings.TrimSpace(c.PostForm(field))
		if url == "" {
			continue
		}
		links = append(links, checkout.SocialLink{
			Platform: checkout.Platform(strings.ToLower(string(platform))),
			URL:      url,
		})
	}
	return links
}
