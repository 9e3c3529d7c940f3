package admin

import (
	"net/http"
	"strconv"

	"checkout-app/database"
	"checkout-app/internal/domain/checkout"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type AdminSubmission struct {
	ID               uint            `json:"id"`
	FullName         string          `json:"full_name"`
	Email            string          `json:"email"`
	SubscriptionType string          `json:"subscription_type"`
	Amount           decimal.Decimal `json:"amount"`
	TxRef            string          `json:"tx_ref"`
	PaymentStatus    string          `json:"payment_status"`
	IsPaid           bool            `json:"is_paid"`
	CreatedAt        string          `json:"created_at"`
}

const submissionsPerPage = 25

func ListSubmissions(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	store := checkout.NewStore(database.DB)
	subs, total, err := store.ListSubmissions(c.Request.Context(), checkout.ListOptions{
		SubscriptionType: c.Query("subscription_type"),
		Search:           c.Query("search"),
		Page:             page,
		PerPage:          submissionsPerPage,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load submissions"})
		return
	}

	var result []AdminSubmission
	for _, s := range subs {
		result = append(result, AdminSubmission{
			ID:               s.ID,
			FullName:         s.FirstName + " " + s.LastName,
			Email:            s.Email,
			SubscriptionType: string(s.SubscriptionType),
			Amount:           s.Amount,
			TxRef:            s.TxRef,
			PaymentStatus:    s.PaymentStatus,
			IsPaid:           s.IsPaid,
			CreatedAt:        s.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"submissions": result,
		"total":       total,
		"page":        page,
		"per_page":    submissionsPerPage,
	})
}

func GetSubmissionDetails(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid submission id"})
		return
	}

	store := checkout.NewStore(database.DB)
	sub, err := store.GetSubmission(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
		return
	}

	c.JSON(http.StatusOK, sub)
}
