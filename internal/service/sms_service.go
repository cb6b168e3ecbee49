package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"waterbill-be-svc/internal/config"
	"waterbill-be-svc/pkg/logger"
)

// SMSService defines the interface for outbound SMS dispatch
type SMSService interface {
	SendSMS(phoneNumber, message string) (map[string]interface{}, error)
}

// smsRequest is the JSON payload expected by the SMS gateway
type smsRequest struct {
	APIToken    string `json:"api_token"`
	PhoneNumber string `json:"phone_number"`
	Message     string `json:"message"`
}

// smsService implements SMSService against an HTTP SMS gateway
type smsService struct {
	logger *logger.Logger
	config config.SMSConfig
	client *http.Client
}

// NewSMSService creates a new instance of SMSService
func NewSMSService(cfg config.SMSConfig, logger *logger.Logger) SMSService {
	return &smsService{
		logger: logger,
		config: cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// SendSMS issues one POST to the gateway and interprets its response. There
// is no retry; a non-2xx status or transport error is returned to the caller
// with the gateway's response body as detail.
func (s *smsService) SendSMS(phoneNumber, message string) (map[string]interface{}, error) {
	payload := smsRequest{
		APIToken:    s.config.APIToken,
		PhoneNumber: phoneNumber,
		Message:     message,
	}

	bodyJSON, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, s.config.APIURL, bytes.NewBuffer(bodyJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		s.logger.WithFields(map[string]interface{}{
			"status_code": resp.StatusCode,
			"response":    string(body),
		}).Error("SMS gateway returned non-success status")
		return nil, fmt.Errorf("sms gateway returned status %d: %s", resp.StatusCode, string(body))
	}

	var providerResp map[string]interface{}
	if err := json.Unmarshal(body, &providerResp); err != nil {
		// Gateway answered 2xx with a non-JSON body; keep the raw text
		providerResp = map[string]interface{}{"raw": string(body)}
	}

	s.logger.WithFields(map[string]interface{}{
		"phone_number": phoneNumber,
		"status_code":  resp.StatusCode,
	}).Info("SMS dispatched successfully")

	return providerResp, nil
}
