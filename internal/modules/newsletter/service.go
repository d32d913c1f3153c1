package newsletter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/mailer"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/metrics"
)

var (
	ErrEmptyNewsletter = errors.New("newsletter needs a subject and a body")
	ErrAlreadySent     = errors.New("newsletter already sent")
	ErrNoSubscribers   = errors.New("no active subscribers")
)

type Service struct {
	db       *gorm.DB
	mail     mailer.Service
	from     string
	fromName string
	log      *slog.Logger
}

func NewService(db *gorm.DB, mail mailer.Service, from, fromName string, log *slog.Logger) *Service {
	return &Service{db: db, mail: mail, from: from, fromName: fromName, log: log}
}

// Compose stores a draft; nothing is delivered until Send.
func (s *Service) Compose(ctx context.Context, subject, htmlBody, textBody string) (Newsletter, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" || strings.TrimSpace(htmlBody) == "" {
		return Newsletter{}, ErrEmptyNewsletter
	}

	n := Newsletter{
		ID:        uuid.NewString(),
		Subject:   subject,
		HTMLBody:  htmlBody,
		TextBody:  textBody,
		Status:    StatusDraft,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(&n).Error; err != nil {
		return Newsletter{}, err
	}
	return n, nil
}

func (s *Service) List(ctx context.Context) ([]Newsletter, error) {
	var out []Newsletter
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error
	return out, err
}

type SendResult struct {
	Sent   int
	Failed []string // addresses that errored; logged, not fatal
}

// Send delivers a draft to every active subscriber, one message per address.
// Individual delivery failures are collected and logged; the newsletter is
// marked sent as long as the loop ran.
func (s *Service) Send(ctx context.Context, newsletterID string) (SendResult, error) {
	var n Newsletter
	if err := s.db.WithContext(ctx).First(&n, "id = ?", newsletterID).Error; err != nil {
		return SendResult{}, err
	}
	if n.Status == StatusSent {
		return SendResult{}, ErrAlreadySent
	}

	var subs []Subscriber
	if err := s.db.WithContext(ctx).
		Where("subscribed = ?", true).
		Order("created_at ASC").
		Find(&subs).Error; err != nil {
		return SendResult{}, err
	}
	if len(subs) == 0 {
		return SendResult{}, ErrNoSubscribers
	}

	res := s.deliver(ctx, n, subs)

	now := time.Now()
	if err := s.db.WithContext(ctx).Model(&Newsletter{}).
		Where("id = ?", n.ID).
		Updates(map[string]any{
			"status":       StatusSent,
			"sent_at":      now,
			"sent_count":   res.Sent,
			"failed_count": len(res.Failed),
			"updated_at":   now,
		}).Error; err != nil {
		return res, err
	}

	return res, nil
}

// deliver sends one message per subscriber. Failures are collected per
// address, never aborting the loop.
func (s *Service) deliver(ctx context.Context, n Newsletter, subs []Subscriber) SendResult {
	var res SendResult
	for _, sub := range subs {
		err := s.mail.Send(ctx, mailer.Email{
			FromName: s.fromName,
			From:     s.from,
			To:       []string{sub.Email},
			Subject:  n.Subject,
			HTMLBody: n.HTMLBody,
			TextBody: n.TextBody,
		})
		if err != nil {
			res.Failed = append(res.Failed, sub.Email)
			metrics.NewsletterEmailsTotal.WithLabelValues("failed").Inc()
			s.log.LogAttrs(ctx, slog.LevelWarn, "newsletter_delivery_failed",
				slog.String("newsletter_id", n.ID),
				slog.String("to", sub.Email),
				slog.Any("err", err),
			)
			continue
		}
		res.Sent++
		metrics.NewsletterEmailsTotal.WithLabelValues("sent").Inc()
	}
	return res
}

// Subscribe upserts an address; re-subscribing flips the flag back on.
func (s *Service) Subscribe(ctx context.Context, email string, name string) (Subscriber, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return Subscriber{}, errors.New("email required")
	}

	var existing Subscriber
	err := s.db.WithContext(ctx).First(&existing, "email = ?", email).Error
	switch {
	case err == nil:
		if err := s.db.WithContext(ctx).Model(&Subscriber{}).
			Where("id = ?", existing.ID).
			Updates(map[string]any{"subscribed": true, "updated_at": time.Now()}).Error; err != nil {
			return Subscriber{}, err
		}
		existing.Subscribed = true
		return existing, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		sub := Subscriber{
			ID:         uuid.NewString(),
			Email:      email,
			Subscribed: true,
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
		}
		if n := strings.TrimSpace(name); n != "" {
			sub.Name = &n
		}
		if err := s.db.WithContext(ctx).Create(&sub).Error; err != nil {
			return Subscriber{}, err
		}
		return sub, nil
	default:
		return Subscriber{}, err
	}
}

func (s *Service) Unsubscribe(ctx context.Context, email string) error {
	return s.db.WithContext(ctx).Model(&Subscriber{}).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		Updates(map[string]any{"subscribed": false, "updated_at": time.Now()}).Error
}
