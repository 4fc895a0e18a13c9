package clients

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	apperrors "onboarding-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSignerServer(t *testing.T, handler http.HandlerFunc) *SignerClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewSignerClient(server.URL, 5*time.Second)
}

func TestSignerClient_CreateDID(t *testing.T) {
	client := newSignerServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/createWebDID", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "acme.example.com", body["domain"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"ok","data":{"did":{"id":"did:web:acme.example.com"}}}`))
	})

	document, err := client.CreateDID(context.Background(), "acme.example.com")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"did:web:acme.example.com"}`, string(document))
}

func TestSignerClient_CreateCredential(t *testing.T) {
	client := newSignerServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/onBoardToGaiaX", r.URL.Path)
		var body createCredentialRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "LegalParticipant", body.TemplateID)
		assert.Equal(t, "https://bucket/key", body.PrivateKeyURL)
		assert.Equal(t, "Acme", body.Data["legalName"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"verifiableCredential":{"type":["VerifiablePresentation"]}}}`))
	})

	credential, err := client.CreateCredential(context.Background(), CredentialRequest{
		TemplateID:    "LegalParticipant",
		Domain:        "acme.example.com",
		PrivateKeyURL: "https://bucket/key",
		Data:          map[string]string{"legalName": "Acme"},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":["VerifiablePresentation"]}`, string(credential))
}

func TestSignerClient_Errors(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		client := newSignerServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"message":"invalid domain"}`))
		})

		_, err := client.CreateDID(context.Background(), "acme.example.com")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 400")
	})

	t.Run("missing document", func(t *testing.T) {
		client := newSignerServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"data":{"did":null}}`))
		})

		_, err := client.CreateDID(context.Background(), "acme.example.com")
		assert.ErrorIs(t, err, apperrors.ErrSignerEmptyResponse)
	})

	t.Run("dropped connection is reported once", func(t *testing.T) {
		var calls atomic.Int32
		client := newSignerServer(t, func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			conn, _, err := w.(http.Hijacker).Hijack()
			require.NoError(t, err)
			_ = conn.Close()
		})

		_, err := client.CreateDID(context.Background(), "acme.example.com")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to call signer /createWebDID")
		assert.Equal(t, int32(1), calls.Load())
	})
}
