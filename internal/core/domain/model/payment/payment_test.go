package payment_test

import (
	"testing"
	"time"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPayment(t *testing.T) *payment.Payment {
	t.Helper()

	barcode, err := kernel.NewBarcode("TN-2024-000187")
	require.NoError(t, err)
	amount, err := kernel.NewMoneyFromString("12.500")
	require.NoError(t, err)

	p, err := payment.NewPayment(kernel.NewUUID(), barcode, amount, time.Now())
	require.NoError(t, err)
	return p
}

func TestNewPayment(t *testing.T) {
	t.Run("should create pending payment", func(t *testing.T) {
		p := newTestPayment(t)

		assert.Equal(t, payment.StatusPending, p.Status())
		assert.Equal(t, "12.500", p.Amount().String())
	})

	t.Run("should reject invalid barcode", func(t *testing.T) {
		amount, _ := kernel.NewMoneyFromString("1")

		_, err := payment.NewPayment(kernel.NewUUID(), kernel.Barcode{}, amount, time.Now())

		require.Error(t, err)
	})

	t.Run("should reject invalid id", func(t *testing.T) {
		barcode, _ := kernel.NewBarcode("TN-1")
		amount, _ := kernel.NewMoneyFromString("1")

		_, err := payment.NewPayment(kernel.UUID{}, barcode, amount, time.Now())

		require.Error(t, err)
	})
}

func TestPayment_Confirm(t *testing.T) {
	t.Run("should confirm pending payment", func(t *testing.T) {
		p := newTestPayment(t)

		require.NoError(t, p.Confirm())
		assert.Equal(t, payment.StatusPaid, p.Status())
	})

	t.Run("second confirmation fails with AlreadyResolved", func(t *testing.T) {
		p := newTestPayment(t)
		require.NoError(t, p.Confirm())

		err := p.Confirm()

		require.ErrorIs(t, err, payment.ErrAlreadyResolved)

		var resolved *payment.AlreadyResolvedError
		require.ErrorAs(t, err, &resolved)
		assert.Equal(t, payment.StatusPaid, resolved.Status)
	})

	t.Run("confirming a refused payment fails", func(t *testing.T) {
		p := newTestPayment(t)
		require.NoError(t, p.Refuse())

		require.ErrorIs(t, p.Confirm(), payment.ErrAlreadyResolved)
	})
}

func TestPayment_Refuse(t *testing.T) {
	t.Run("should refuse pending payment", func(t *testing.T) {
		p := newTestPayment(t)

		require.NoError(t, p.Refuse())
		assert.Equal(t, payment.StatusRefused, p.Status())
	})

	t.Run("refusing a settled payment fails", func(t *testing.T) {
		p := newTestPayment(t)
		require.NoError(t, p.Confirm())

		require.ErrorIs(t, p.Refuse(), payment.ErrAlreadyResolved)
	})
}

func TestRestorePayment(t *testing.T) {
	t.Run("should rebuild settled payment", func(t *testing.T) {
		barcode, _ := kernel.NewBarcode("TN-1")
		amount, _ := kernel.NewMoneyFromString("8.000")
		createdAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

		p, err := payment.RestorePayment(kernel.NewUUID(), barcode, amount, payment.StatusPaid, createdAt)

		require.NoError(t, err)
		assert.Equal(t, payment.StatusPaid, p.Status())
		assert.Equal(t, createdAt, p.CreatedAt())
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		barcode, _ := kernel.NewBarcode("TN-1")
		amount, _ := kernel.NewMoneyFromString("8.000")

		_, err := payment.RestorePayment(kernel.NewUUID(), barcode, amount, payment.Status(42), time.Now())

		require.Error(t, err)
	})
}

func TestPaymentStatusFromString(t *testing.T) {
	for _, tc := range []struct {
		name   string
		status payment.Status
	}{
		{"EN_ATTENTE", payment.StatusPending},
		{"PAYE", payment.StatusPaid},
		{"REFUSE", payment.StatusRefused},
	} {
		resolved, err := payment.StatusFromString(tc.name)

		require.NoError(t, err)
		assert.Equal(t, tc.status, resolved)
	}

	_, err := payment.StatusFromString("PAID")
	require.Error(t, err)
}
