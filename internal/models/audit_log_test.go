package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditLog_String(t *testing.T) {
	accountID := uuid.MustParse("8c7d6f9e-2b1a-4c3d-9e8f-0a1b2c3d4e5f")
	at := time.Date(2024, 3, 14, 9, 26, 53, 0, time.UTC)

	log := &AuditLog{
		AccountID:  &accountID,
		Action:     AuditActionWalletLogin,
		Resource:   AuditResourceAccount,
		ResourceID: accountID.String(),
		IPAddress:  "192.168.1.1",
		CreatedAt:  at,
	}
	assert.Equal(t,
		"2024-03-14T09:26:53Z wallet_login by 8c7d6f9e-2b1a-4c3d-9e8f-0a1b2c3d4e5f on account/8c7d6f9e-2b1a-4c3d-9e8f-0a1b2c3d4e5f from 192.168.1.1",
		log.String())

	anonymous := &AuditLog{Action: AuditActionNonceIssued, Resource: AuditResourceSession, ResourceID: "session-1", CreatedAt: at}
	assert.Equal(t, "anonymous", anonymous.Actor())
	assert.Contains(t, anonymous.String(), "nonce_issued by anonymous on session/session-1")
}

func TestAuditLog_BeforeCreate(t *testing.T) {
	log := &AuditLog{Action: AuditActionValuationRun, Resource: AuditResourcePortfolioJob}
	require.NoError(t, log.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, log.ID)
	assert.False(t, log.CreatedAt.IsZero())

	id := uuid.New()
	at := time.Now().Add(-time.Hour)
	kept := &AuditLog{ID: id, CreatedAt: at}
	require.NoError(t, kept.BeforeCreate(nil))
	assert.Equal(t, id, kept.ID)
	assert.Equal(t, at, kept.CreatedAt)
}

func TestJSONObject_ValueAndScan(t *testing.T) {
	t.Run("empty object stores null", func(t *testing.T) {
		value, err := JSONObject{}.Value()
		require.NoError(t, err)
		assert.Nil(t, value)
	})

	t.Run("round trip through text", func(t *testing.T) {
		value, err := JSONObject{"reason": "address_mismatch", "attempt": 2}.Value()
		require.NoError(t, err)

		var scanned JSONObject
		require.NoError(t, scanned.Scan(value))
		assert.Equal(t, "address_mismatch", scanned.String("reason"))
		assert.Equal(t, float64(2), scanned["attempt"])
	})

	t.Run("scans bytes", func(t *testing.T) {
		var scanned JSONObject
		require.NoError(t, scanned.Scan([]byte(`{"color":"ocean"}`)))
		assert.Equal(t, JSONObject{"color": "ocean"}, scanned)
	})

	t.Run("nil and empty scan to nil", func(t *testing.T) {
		scanned := JSONObject{"stale": true}
		require.NoError(t, scanned.Scan(nil))
		assert.Nil(t, scanned)

		scanned = JSONObject{"stale": true}
		require.NoError(t, scanned.Scan(""))
		assert.Nil(t, scanned)
	})

	t.Run("rejects other types", func(t *testing.T) {
		var scanned JSONObject
		assert.Error(t, scanned.Scan(42))
	})
}

func TestJSONObject_String(t *testing.T) {
	obj := JSONObject{"color": "forest", "count": 3}
	assert.Equal(t, "forest", obj.String("color"))
	assert.Empty(t, obj.String("count"))
	assert.Empty(t, obj.String("missing"))
	assert.Empty(t, JSONObject(nil).String("color"))
}
