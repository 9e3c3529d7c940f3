package checkout

import (
	"context"

	"gorm.io/gorm"
)

type ListOptions struct {
	SubscriptionType string
	Search           string
	Page             int
	PerPage          int
}

// Store is the persistence boundary for submissions and their social links.
//
// CreateSubmission persists the submission and its links as one atomic unit
// and assigns a transaction reference when the submission carries none. A
// duplicate transaction reference or a duplicate (submission, platform) pair
// fails the whole creation; nothing is silently dropped.
type Store interface {
	CreateSubmission(ctx context.Context, sub *Submission, links []SocialLink) error
	GetSubmission(ctx context.Context, id uint) (*Submission, error)
	GetSubmissionByTxRef(ctx context.Context, txRef string) (*Submission, error)
	UpdatePaymentStatus(ctx context.Context, id uint, status string, paid bool) error
	ListSubmissions(ctx context.Context, opts ListOptions) ([]Submission, int64, error)
}

type GormStore struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) CreateSubmission(ctx context.Context, sub *Submission, links []SocialLink) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(sub).Error; err != nil {
			return err
		}
		for i := range links {
			links[i].SubmissionID = sub.ID
			if err := tx.Create(&links[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *GormStore) GetSubmission(ctx context.Context, id uint) (*Submission, error) {
	var sub Submission
	if err := s.db.WithContext(ctx).
		Preload("SocialLinks").
		First(&sub, id).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *GormStore) GetSubmissionByTxRef(ctx context.Context, txRef string) (*Submission, error) {
	var sub Submission
	if err := s.db.WithContext(ctx).
		Where("tx_ref = ?", txRef).
		First(&sub).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *GormStore) UpdatePaymentStatus(ctx context.Context, id uint, status string, paid bool) error {
	return s.db.WithContext(ctx).
		Model(&Submission{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"payment_status": status,
			"is_paid":        paid,
		}).Error
}

func (s *GormStore) ListSubmissions(ctx context.Context, opts ListOptions) ([]Submission, int64, error) {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.PerPage < 1 {
		opts.PerPage = 25
	}

	q := s.db.WithContext(ctx).Model(&Submission{})
	if opts.SubscriptionType != "" {
		q = q.Where("subscription_type = ?", opts.SubscriptionType)
	}
	if opts.Search != "" {
		like := "%" + opts.Search + "%"
		q = q.Where("first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var subs []Submission
	err := q.Preload("SocialLinks").
		Order("created_at DESC").
		Limit(opts.PerPage).
		Offset((opts.Page - 1) * opts.PerPage).
		Find(&subs).Error
	if err != nil {
		return nil, 0, err
	}
	return subs, total, nil
}
