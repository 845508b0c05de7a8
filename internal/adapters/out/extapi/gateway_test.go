package extapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderdesk/internal/adapters/out/extapi"
	"orderdesk/internal/core/ports"
)

func testRecord() ports.SubmissionRecord {
	return ports.SubmissionRecord{
		OrderID:        "0d4f7a8e-5c3b-4e2a-9f1d-6b8c0a2e4d61",
		CustomerName:   "Acme Traders",
		Phone:          "9876543210",
		Category:       "B2C",
		DispatchOrigin: "Morinda",
		PaymentMethod:  "UPI",
		Lines: []ports.SubmissionLine{
			{ProductType: "Chair", Size: "Standard", Spec: "Teak", Qty: 2, UnitPrice: 1000, TaxRate: "18", Warranty: "1 year"},
		},
		Total:            2360,
		PaymentCollected: "0.00",
		PaymentDue:       "2360.00",
		ApprovalStatus:   "Pending",
		ProductionStatus: "Pending",
		BillingStatus:    "Pending",
		DispatchStatus:   "Pending",
	}
}

func TestGatewaySubmit(t *testing.T) {
	t.Run("posts record with auth headers", func(t *testing.T) {
		var gotMethod, gotPath, gotAuth, gotRole, gotContentType string
		var gotBody ports.SubmissionRecord

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotPath = r.URL.Path
			gotAuth = r.Header.Get("Authorization")
			gotRole = r.Header.Get("X-Actor-Role")
			gotContentType = r.Header.Get("Content-Type")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		gateway := extapi.NewGateway(server.URL, 5*time.Second)
		err := gateway.Submit(context.Background(), testRecord(), "manager", "secret-token")

		require.NoError(t, err)
		assert.Equal(t, http.MethodPost, gotMethod)
		assert.Equal(t, "/api/v1/orders", gotPath)
		assert.Equal(t, "Bearer secret-token", gotAuth)
		assert.Equal(t, "manager", gotRole)
		assert.Equal(t, "application/json", gotContentType)
		assert.Equal(t, "0d4f7a8e-5c3b-4e2a-9f1d-6b8c0a2e4d61", gotBody.OrderID)
		assert.Equal(t, "2360.00", gotBody.PaymentDue)
		require.Len(t, gotBody.Lines, 1)
		assert.Equal(t, "Chair", gotBody.Lines[0].ProductType)
	})

	t.Run("returns error on non-2xx response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "token expired", http.StatusUnauthorized)
		}))
		defer server.Close()

		gateway := extapi.NewGateway(server.URL, 5*time.Second)
		err := gateway.Submit(context.Background(), testRecord(), "manager", "stale-token")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "401")
		assert.Contains(t, err.Error(), "token expired")
	})

	t.Run("returns error when server is unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		gateway := extapi.NewGateway(server.URL, time.Second)
		err := gateway.Submit(context.Background(), testRecord(), "manager", "secret-token")

		require.Error(t, err)
	})
}
