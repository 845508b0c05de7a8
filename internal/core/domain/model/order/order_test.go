package order_test

import (
	"testing"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLine(t *testing.T, qty int, price string, rate string) order.Line {
	t.Helper()
	line, err := order.NewLine("Chair", "Standard", "Teak", qty, mustMoney(t, price), mustTaxRate(t, rate), "1 year")
	require.NoError(t, err)
	return line
}

func TestNewOrder(t *testing.T) {
	phone, err := kernel.NewPhone("9876543210")
	require.NoError(t, err)

	t.Run("starts with lifecycle defaults", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), "Acme Traders", phone, order.CategoryB2C, "Morinda")
		require.NoError(t, err)

		assert.Equal(t, order.PendingApproval, o.ApprovalStatus())
		assert.Equal(t, order.ProductionPending, o.ProductionStatus())
		assert.Equal(t, order.BillingPending, o.BillingStatus())
		assert.Equal(t, order.NotDispatched, o.DispatchStatus())
		assert.Equal(t, order.BillingToPay, o.FreightMode())
		assert.Equal(t, order.BillingToPay, o.InstallationMode())
		assert.True(t, o.Collected().IsZero())
		assert.Nil(t, o.PendingDispatch())
	})

	t.Run("pre-stocked origins start fulfilled", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), "Acme Traders", phone, order.CategoryB2C, "Delhi Warehouse")
		require.NoError(t, err)

		assert.Equal(t, order.Fulfilled, o.ProductionStatus())
	})

	t.Run("rejects missing required values", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "", phone, order.CategoryB2C, "Morinda")
		assert.Error(t, err)

		_, err = order.NewOrder(kernel.NewUUID(), "Acme Traders", kernel.Phone{}, order.CategoryB2C, "Morinda")
		assert.Error(t, err)

		_, err = order.NewOrder(kernel.NewUUID(), "Acme Traders", phone, order.CategoryUnknown, "Morinda")
		assert.Error(t, err)

		_, err = order.NewOrder(kernel.NewUUID(), "Acme Traders", phone, order.CategoryB2C, "")
		assert.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var o order.Order
		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrderCategoryEffects(t *testing.T) {
	t.Run("leaving B2G blanks the GeM fields and switching back does not restore them", func(t *testing.T) {
		o := newTestOrder(t, order.CategoryB2G)
		require.NoError(t, o.SetGemOrderNumber("GEM-2026-001"))
		require.NoError(t, o.SetDeliveryDate(time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)))

		require.NoError(t, o.SetCategory(order.CategoryB2C))
		assert.Empty(t, o.GemOrderNumber())
		assert.Nil(t, o.DeliveryDate())

		require.NoError(t, o.SetCategory(order.CategoryB2G))
		assert.Empty(t, o.GemOrderNumber(), "cleared values stay cleared")
		assert.Nil(t, o.DeliveryDate())
	})

	t.Run("GeM fields are rejected outside B2G", func(t *testing.T) {
		o := newTestOrder(t, order.CategoryB2C)

		assert.Error(t, o.SetGemOrderNumber("GEM-2026-001"))
		assert.Error(t, o.SetDeliveryDate(time.Now()))
	})

	t.Run("moving to Demo blanks every payment field", func(t *testing.T) {
		o := newTestOrder(t, order.CategoryB2C)
		require.NoError(t, o.SetPaymentTerms(order.PaymentTermsCredit))
		require.NoError(t, o.SetCreditDays(30))
		require.NoError(t, o.SetPaymentMethod(order.PaymentMethodNEFT))
		require.NoError(t, o.SetTransactionID("TXN-42"))
		require.NoError(t, o.SetCollected(mustMoney(t, "500")))

		require.NoError(t, o.SetCategory(order.CategoryDemo))

		assert.Equal(t, order.PaymentTermsUnset, o.PaymentTerms())
		assert.Equal(t, order.PaymentMethodUnset, o.PaymentMethod())
		assert.Empty(t, o.TransactionID())
		assert.Zero(t, o.CreditDays())
		assert.True(t, o.Collected().IsZero())
	})

	t.Run("Demo orders refuse payment values", func(t *testing.T) {
		o := newTestOrder(t, order.CategoryDemo)

		assert.Error(t, o.SetPaymentTerms(order.PaymentTermsFullAdvance))
		assert.Error(t, o.SetPaymentMethod(order.PaymentMethodCash))
		assert.Error(t, o.SetCollected(mustMoney(t, "100")))
		assert.NoError(t, o.SetCollected(kernel.ZeroMoney()))
		assert.NoError(t, o.SetDemoDate(time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("leaving Demo blanks the demo date", func(t *testing.T) {
		o := newTestOrder(t, order.CategoryDemo)
		require.NoError(t, o.SetDemoDate(time.Now()))

		require.NoError(t, o.SetCategory(order.CategoryB2B))
		assert.Nil(t, o.DemoDate())
	})
}

func TestOrderPaymentEffects(t *testing.T) {
	t.Run("every payment method change blanks both ids", func(t *testing.T) {
		o := newTestOrder(t, order.CategoryB2C)
		require.NoError(t, o.SetPaymentMethod(order.PaymentMethodNEFT))
		require.NoError(t, o.SetTransactionID("TXN-42"))

		require.NoError(t, o.SetPaymentMethod(order.PaymentMethodCheque))
		assert.Empty(t, o.TransactionID())

		require.NoError(t, o.SetChequeID("CHQ-7"))
		require.NoError(t, o.SetPaymentMethod(order.PaymentMethodCheque))
		assert.Empty(t, o.ChequeID(), "re-selecting the same method still blanks the ids")
	})

	t.Run("ids are gated by the payment method", func(t *testing.T) {
		o := newTestOrder(t, order.CategoryB2C)

		assert.Error(t, o.SetTransactionID("TXN-42"), "no method selected")
		assert.Error(t, o.SetChequeID("CHQ-7"))

		require.NoError(t, o.SetPaymentMethod(order.PaymentMethodRTGS))
		assert.NoError(t, o.SetTransactionID("TXN-42"))
		assert.Error(t, o.SetChequeID("CHQ-7"))
	})

	t.Run("credit days follow the payment terms", func(t *testing.T) {
		o := newTestOrder(t, order.CategoryB2C)

		assert.Error(t, o.SetCreditDays(30), "terms not set")

		require.NoError(t, o.SetPaymentTerms(order.PaymentTermsCredit))
		assert.Error(t, o.SetCreditDays(0))
		assert.Error(t, o.SetCreditDays(-5))
		require.NoError(t, o.SetCreditDays(45))

		require.NoError(t, o.SetPaymentTerms(order.PaymentTermsFullAdvance))
		assert.Zero(t, o.CreditDays(), "full advance clears the credit period")
	})
}

func TestOrderSurchargeEffects(t *testing.T) {
	o := newTestOrder(t, order.CategoryB2C)

	t.Run("amount is rejected while the mode is not Extra", func(t *testing.T) {
		assert.Error(t, o.SetFreightAmount(mustMoney(t, "200")))
		assert.Error(t, o.SetInstallationAmount(mustMoney(t, "150")))
	})

	t.Run("switching the mode off zeroes the amount", func(t *testing.T) {
		require.NoError(t, o.SetFreightMode(order.BillingExtra))
		require.NoError(t, o.SetFreightAmount(mustMoney(t, "200")))

		require.NoError(t, o.SetFreightMode(order.BillingIncluding))
		assert.True(t, o.FreightAmount().IsZero())
	})
}

func TestOrderAddresses(t *testing.T) {
	o := newTestOrder(t, order.CategoryB2C)

	require.NoError(t, o.SetBillingAddress("12 Mall Road, Ludhiana"))

	o.SetSameAddress(true)
	assert.Equal(t, "12 Mall Road, Ludhiana", o.ShippingAddress(), "enabling the flag copies billing")

	require.NoError(t, o.SetBillingAddress("44 GT Road, Khanna"))
	assert.Equal(t, "44 GT Road, Khanna", o.ShippingAddress(), "shipping tracks billing edits")

	assert.Error(t, o.SetShippingAddress("9 Civil Lines, Patiala"), "shipping is not editable while tracking")

	o.SetSameAddress(false)
	require.NoError(t, o.SetShippingAddress("9 Civil Lines, Patiala"))
	assert.Equal(t, "44 GT Road, Khanna", o.BillingAddress())
}

func TestOrderLines(t *testing.T) {
	o := newTestOrder(t, order.CategoryB2C)

	require.NoError(t, o.AddLine(mustLine(t, 2, "1000", "18")))
	require.NoError(t, o.AddLine(mustLine(t, 1, "5000", "inclusive")))
	require.Len(t, o.Lines(), 2)

	t.Run("totals recompute from the current lines", func(t *testing.T) {
		assert.Equal(t, "7360", o.Totals().Total.String())

		require.NoError(t, o.RemoveLine(1))
		assert.Equal(t, "2360", o.Totals().Total.String())
	})

	t.Run("index out of range is rejected", func(t *testing.T) {
		assert.Error(t, o.RemoveLine(5))
		assert.Error(t, o.UpdateLine(-1, mustLine(t, 1, "100", "5")))
	})

	t.Run("update replaces the line in place", func(t *testing.T) {
		require.NoError(t, o.UpdateLine(0, mustLine(t, 3, "1000", "18")))
		assert.Equal(t, "3540", o.Totals().Total.String())
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		lines := o.Lines()
		lines[0] = order.Line{}
		assert.NoError(t, o.Lines()[0].Validate())
	})
}

func TestOrderDispatchChange(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	t.Run("request leaves the status axes untouched until confirmed", func(t *testing.T) {
		o := newTestOrder(t, order.CategoryB2C)
		require.NoError(t, o.SetBillingStatus(order.BillingComplete))

		require.NoError(t, o.RequestDispatchChange(order.Dispatched, order.StampUnset, now))
		assert.Equal(t, order.NotDispatched, o.DispatchStatus())
		require.NotNil(t, o.PendingDispatch())
		assert.Equal(t, order.Dispatched, o.PendingDispatch().Target)

		require.NoError(t, o.ConfirmDispatchChange())
		assert.Equal(t, order.Dispatched, o.DispatchStatus())
		assert.Nil(t, o.PendingDispatch())
	})

	t.Run("request is rejected while billing is incomplete", func(t *testing.T) {
		o := newTestOrder(t, order.CategoryB2C)

		err := o.RequestDispatchChange(order.Dispatched, order.StampUnset, now)
		assert.ErrorIs(t, err, order.ErrBillingIncomplete)
		assert.Nil(t, o.PendingDispatch())
	})

	t.Run("delivery requires a stamp", func(t *testing.T) {
		o := newTestOrder(t, order.CategoryB2C)
		require.NoError(t, o.SetBillingStatus(order.BillingComplete))

		err := o.RequestDispatchChange(order.Delivered, order.StampUnset, now)
		assert.ErrorIs(t, err, order.ErrStampRequired)

		require.NoError(t, o.RequestDispatchChange(order.Delivered, order.StampNotReceived, now))
		require.NoError(t, o.ConfirmDispatchChange())
		assert.Equal(t, order.Delivered, o.DispatchStatus())
		assert.Equal(t, order.StampNotReceived, o.Stamp())
	})

	t.Run("change that became illegal is rejected and discarded at confirmation", func(t *testing.T) {
		o := newTestOrder(t, order.CategoryB2C)
		require.NoError(t, o.SetBillingStatus(order.BillingComplete))
		require.NoError(t, o.RequestDispatchChange(order.Dispatched, order.StampUnset, now))

		require.NoError(t, o.SetBillingStatus(order.BillingPending))

		err := o.ConfirmDispatchChange()
		assert.ErrorIs(t, err, order.ErrBillingIncomplete)
		assert.Equal(t, order.NotDispatched, o.DispatchStatus())
		assert.Nil(t, o.PendingDispatch(), "the stale request is discarded")
	})

	t.Run("non-terminal changes need no billing", func(t *testing.T) {
		o := newTestOrder(t, order.CategoryB2C)

		require.NoError(t, o.RequestDispatchChange(order.HoldByCustomer, order.StampUnset, now))
		require.NoError(t, o.ConfirmDispatchChange())
		assert.Equal(t, order.HoldByCustomer, o.DispatchStatus())
	})

	t.Run("confirm and cancel without a pending change are rejected", func(t *testing.T) {
		o := newTestOrder(t, order.CategoryB2C)

		assert.ErrorIs(t, o.ConfirmDispatchChange(), order.ErrNoPendingDispatchChange)
		assert.ErrorIs(t, o.CancelDispatchChange(), order.ErrNoPendingDispatchChange)
	})

	t.Run("cancel discards the pending change", func(t *testing.T) {
		o := newTestOrder(t, order.CategoryB2C)
		require.NoError(t, o.RequestDispatchChange(order.HoldBySalesperson, order.StampUnset, now))

		require.NoError(t, o.CancelDispatchChange())
		assert.Nil(t, o.PendingDispatch())
		assert.Equal(t, order.NotDispatched, o.DispatchStatus())
	})
}

func TestOrderDispatchOriginEffects(t *testing.T) {
	o := newTestOrder(t, order.CategoryB2C)
	require.Equal(t, order.ProductionPending, o.ProductionStatus())

	require.NoError(t, o.SetDispatchOrigin("Delhi Warehouse"))
	assert.Equal(t, order.Fulfilled, o.ProductionStatus())

	require.NoError(t, o.SetDispatchOrigin("Morinda"))
	assert.Equal(t, order.ProductionPending, o.ProductionStatus())
}
