package order_test

import (
	"testing"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T, category order.Category) *order.Order {
	t.Helper()
	phone, err := kernel.NewPhone("9876543210")
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), "Acme Traders", phone, category, "Morinda")
	require.NoError(t, err)
	return o
}

func TestDeriveConstraints(t *testing.T) {
	t.Run("B2G requires the GeM order number and allows a delivery date", func(t *testing.T) {
		o := newTestOrder(t, order.CategoryB2G)

		c := o.Constraints()

		assert.True(t, c.Required.Has(order.FieldGemOrderNumber))
		assert.False(t, c.Disabled.Has(order.FieldDeliveryDate))
		assert.False(t, c.Cleared.Has(order.FieldGemOrderNumber))
	})

	t.Run("non-B2G clears and disables the GeM fields", func(t *testing.T) {
		for _, category := range []order.Category{
			order.CategoryB2C, order.CategoryB2B, order.CategoryDemo, order.CategoryReplacement,
		} {
			c := newTestOrder(t, category).Constraints()

			assert.True(t, c.Cleared.Has(order.FieldGemOrderNumber), "category %s", category)
			assert.True(t, c.Cleared.Has(order.FieldDeliveryDate), "category %s", category)
			assert.True(t, c.Disabled.Has(order.FieldGemOrderNumber), "category %s", category)
			assert.False(t, c.Required.Has(order.FieldGemOrderNumber), "category %s", category)
		}
	})

	t.Run("Demo requires a demo date and disables every payment field", func(t *testing.T) {
		c := newTestOrder(t, order.CategoryDemo).Constraints()

		assert.True(t, c.Required.Has(order.FieldDemoDate))
		for _, f := range []order.Field{
			order.FieldPaymentMethod, order.FieldPaymentCollected,
			order.FieldPaymentTerms, order.FieldCreditDays,
		} {
			assert.True(t, c.Disabled.Has(f), "field %s should be disabled", f)
			assert.True(t, c.Cleared.Has(f), "field %s should be cleared", f)
		}
		assert.False(t, c.Required.Has(order.FieldPaymentTerms))
	})

	t.Run("non-Demo requires payment terms", func(t *testing.T) {
		c := newTestOrder(t, order.CategoryB2C).Constraints()

		assert.True(t, c.Required.Has(order.FieldPaymentTerms))
		assert.True(t, c.Cleared.Has(order.FieldDemoDate))
	})

	t.Run("surcharge amounts follow their billing modes", func(t *testing.T) {
		o := newTestOrder(t, order.CategoryB2C)

		c := o.Constraints()
		assert.True(t, c.Disabled.Has(order.FieldFreightAmount), "To Pay mode disables freight amount")
		assert.True(t, c.Disabled.Has(order.FieldInstallationAmount))

		require.NoError(t, o.SetFreightMode(order.BillingExtra))
		c = o.Constraints()
		assert.False(t, c.Disabled.Has(order.FieldFreightAmount), "Extra mode enables freight amount")
		assert.True(t, c.Disabled.Has(order.FieldInstallationAmount), "installation mode unchanged")
	})

	t.Run("payment ids follow the payment method", func(t *testing.T) {
		o := newTestOrder(t, order.CategoryB2C)

		require.NoError(t, o.SetPaymentMethod(order.PaymentMethodNEFT))
		c := o.Constraints()
		assert.False(t, c.Disabled.Has(order.FieldTransactionID))
		assert.True(t, c.Disabled.Has(order.FieldChequeID))
		assert.True(t, c.Cleared.Has(order.FieldChequeID))

		require.NoError(t, o.SetPaymentMethod(order.PaymentMethodCheque))
		c = o.Constraints()
		assert.False(t, c.Disabled.Has(order.FieldChequeID))
		assert.True(t, c.Disabled.Has(order.FieldTransactionID))
		assert.True(t, c.Cleared.Has(order.FieldTransactionID))
	})

	t.Run("credit terms require credit days", func(t *testing.T) {
		o := newTestOrder(t, order.CategoryB2C)

		require.NoError(t, o.SetPaymentTerms(order.PaymentTermsCredit))
		assert.True(t, o.Constraints().Required.Has(order.FieldCreditDays))

		require.NoError(t, o.SetPaymentTerms(order.PaymentTermsPartialAdvance))
		assert.True(t, o.Constraints().Required.Has(order.FieldCreditDays))

		require.NoError(t, o.SetPaymentTerms(order.PaymentTermsFullAdvance))
		c := o.Constraints()
		assert.False(t, c.Required.Has(order.FieldCreditDays))
		assert.True(t, c.Cleared.Has(order.FieldCreditDays))
	})

	t.Run("derivation is idempotent and deterministic", func(t *testing.T) {
		o := newTestOrder(t, order.CategoryB2G)
		require.NoError(t, o.SetPaymentTerms(order.PaymentTermsCredit))

		first := o.Constraints()
		second := o.Constraints()

		assert.Equal(t, first, second)
	})
}
