package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"waterbill-be-svc/internal/config"
	"waterbill-be-svc/pkg/logger"
)

func newTestSMSService(url string, timeout time.Duration) SMSService {
	cfg := config.SMSConfig{
		APIURL:        url,
		APIToken:      "test-token",
		CountryPrefix: "+63",
		Timeout:       timeout,
	}
	return NewSMSService(cfg, logger.NewLogger("error", "text"))
}

func TestSendSMSSuccess(t *testing.T) {
	var received smsRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":200,"message":"Message queued"}`))
	}))
	defer server.Close()

	svc := newTestSMSService(server.URL, 5*time.Second)

	resp, err := svc.SendSMS("+639171234567", "Hi! Your bill is due TODAY.")

	require.NoError(t, err)
	assert.Equal(t, "test-token", received.APIToken)
	assert.Equal(t, "+639171234567", received.PhoneNumber)
	assert.Equal(t, "Hi! Your bill is due TODAY.", received.Message)
	assert.Equal(t, "Message queued", resp["message"])
}

func TestSendSMSGatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error":"invalid phone number"}`))
	}))
	defer server.Close()

	svc := newTestSMSService(server.URL, 5*time.Second)

	resp, err := svc.SendSMS("+63999", "test")

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "422")
	assert.Contains(t, err.Error(), "invalid phone number")
}

func TestSendSMSNonJSONSuccessBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}))
	defer server.Close()

	svc := newTestSMSService(server.URL, 5*time.Second)

	resp, err := svc.SendSMS("+639171234567", "test")

	require.NoError(t, err)
	assert.Equal(t, "OK", resp["raw"])
}

func TestSendSMSTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	svc := newTestSMSService(server.URL, 50*time.Millisecond)

	resp, err := svc.SendSMS("+639171234567", "test")

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "failed to send request")
}

func TestSendSMSUnreachableGateway(t *testing.T) {
	svc := newTestSMSService("http://127.0.0.1:1", 500*time.Millisecond)

	resp, err := svc.SendSMS("+639171234567", "test")

	require.Error(t, err)
	assert.Nil(t, resp)
}
