package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/tokentide/tokentide-api/internal/logger"
	"github.com/tokentide/tokentide-api/internal/models"
)

const defaultBrevoBaseURL = "https://api.brevo.com/v3"

// ErrAlreadySubscribed reports that the email is already on the list, either
// locally or at Brevo
var ErrAlreadySubscribed = errors.New("email is already subscribed")

// SubscriptionService records newsletter signups locally and mirrors them to
// a Brevo contact list
type SubscriptionService struct {
	db         *gorm.DB
	httpClient *http.Client
	email      *EmailService
	apiKey     string
	listID     int
	baseURL    string
}

func NewSubscriptionService(db *gorm.DB, email *EmailService, apiKey string, listID int) *SubscriptionService {
	return &SubscriptionService{
		db:         db,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		email:      email,
		apiKey:     apiKey,
		listID:     listID,
		baseURL:    defaultBrevoBaseURL,
	}
}

// WithBaseURL overrides the Brevo endpoint, for tests
func (s *SubscriptionService) WithBaseURL(baseURL string) *SubscriptionService {
	s.baseURL = baseURL
	return s
}

// Subscribe records the signup and pushes the contact to Brevo. The welcome
// email is best effort: a delivery failure does not undo the subscription.
func (s *SubscriptionService) Subscribe(ctx context.Context, email, source string) error {
	var existing models.Subscriber
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return ErrAlreadySubscribed
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("subscriber lookup failed: %w", err)
	}

	if err := s.createBrevoContact(ctx, email); err != nil {
		return err
	}

	subscriber := models.Subscriber{Email: email, Source: source}
	if err := s.db.WithContext(ctx).Create(&subscriber).Error; err != nil {
		return fmt.Errorf("failed to record subscriber: %w", err)
	}

	if s.email != nil {
		if err := s.email.SendWelcomeEmail(email); err != nil {
			logger.Warn("Welcome email delivery failed", logger.Fields{
				"email": email,
				"error": err.Error(),
			})
		}
	}

	return nil
}

type brevoContactRequest struct {
	Email         string `json:"email"`
	ListIDs       []int  `json:"listIds"`
	UpdateEnabled bool   `json:"updateEnabled"`
}

type brevoErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *SubscriptionService) createBrevoContact(ctx context.Context, email string) error {
	if s.apiKey == "" {
		logger.Debug("Brevo API key not configured, recording subscriber locally only", nil)
		return nil
	}

	payload, err := json.Marshal(brevoContactRequest{
		Email:   email,
		ListIDs: []int{s.listID},
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/contacts", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("api-key", s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("brevo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusCreated || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	body, _ := io.ReadAll(resp.Body)
	var brevoErr brevoErrorResponse
	if json.Unmarshal(body, &brevoErr) == nil && brevoErr.Code == "duplicate_parameter" {
		return ErrAlreadySubscribed
	}

	return fmt.Errorf("brevo contact creation failed with status %d: %s", resp.StatusCode, brevoErr.Message)
}
