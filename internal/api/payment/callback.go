package paymentapi

import (
	"fmt"
	"log"
	"net/http"

	"checkout-app/internal/domain/checkout"
	"checkout-app/internal/domain/payment"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Store   checkout.Store
	Gateway payment.Gateway
	AppURL  string
}

func NewHandler(store checkout.Store, gateway payment.Gateway, appURL string) *Handler {
	return &Handler{Store: store, Gateway: gateway, AppURL: appURL}
}

// Callback handles the gateway's return request after the customer leaves
// the hosted payment page. The status query parameter is only a claim; a
// claimed success is re-verified with the gateway before anything is marked
// paid.
func (h *Handler) Callback(c *gin.Context) {
	txRef := c.Query("tx_ref")
	status := c.Query("status")

	if txRef == "" {
		c.Redirect(http.StatusFound, h.AppURL+"/checkout?error=invalid_callback")
		return
	}

	sub, err := h.Store.GetSubmissionByTxRef(c.Request.Context(), txRef)
	if err != nil {
		log.Printf("❌ Callback for unknown tx_ref=%s", txRef)
		c.Redirect(http.StatusFound, h.AppURL+"/checkout?error=order_not_found")
		return
	}

	if status == "success" && h.Gateway.Verify(c.Request.Context(), txRef) {
		if err := h.Store.UpdatePaymentStatus(c.Request.Context(), sub.ID, checkout.StatusSuccess, true); err != nil {
			log.Printf("❌ Failed to mark tx_ref=%s paid: %v", txRef, err)
			c.Redirect(http.StatusFound, h.AppURL+"/checkout?error=processing_error")
			return
		}
		log.Printf("✅ Payment confirmed for tx_ref=%s", txRef)
		c.Redirect(http.StatusFound, fmt.Sprintf("%s/checkout/success/%d", h.AppURL, sub.ID))
		return
	}

	if err := h.Store.UpdatePaymentStatus(c.Request.Context(), sub.ID, checkout.StatusFailed, false); err != nil {
		log.Printf("❌ Failed to mark tx_ref=%s failed: %v", txRef, err)
	}
	c.Redirect(http.StatusFound, h.AppURL+"/checkout?error=payment_failed")
}
