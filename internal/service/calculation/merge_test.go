package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peopledesk/payroll-backend-go/internal/domain/payment"
)

func item(id, paymentTypeID string, status payment.Status, base, ded, funds, pay string) payment.PaymentPosition {
	doc := payment.Payment{
		ID:            "doc-" + id,
		PaymentTypeID: paymentTypeID,
		Status:        status,
	}
	return payment.PaymentPosition{
		ID:         id,
		PaymentID:  doc.ID,
		PositionID: "pos-1",
		BaseSum:    dec(base),
		Deductions: dec(ded),
		Funds:      dec(funds),
		PaySum:     dec(pay),
		Payment:    &doc,
	}
}

func computed(paymentTypeID, base, ded, funds, pay string) payment.PaymentPosition {
	return item("", paymentTypeID, payment.StatusDraft, base, ded, funds, pay)
}

func TestMergeNoOpOnIdenticalRecompute(t *testing.T) {
	persisted := []payment.PaymentPosition{
		item("pp-1", "pt-1", payment.StatusDraft, "1000", "0", "0", "1000"),
	}
	current := []payment.PaymentPosition{
		computed("pt-1", "1000", "0", "0", "1000"),
	}

	toInsert, toDelete := merge(persisted, current)

	assert.Empty(t, toInsert)
	assert.Empty(t, toDelete)
}

func TestMergeDeltaAgainstAcceptedPayment(t *testing.T) {
	persisted := []payment.PaymentPosition{
		item("pp-1", "pt-1", payment.StatusAccepted, "1000", "0", "0", "1000"),
	}
	current := []payment.PaymentPosition{
		computed("pt-1", "1200", "0", "0", "1200"),
	}

	toInsert, toDelete := merge(persisted, current)

	assert.Empty(t, toDelete, "accepted records are never deleted")
	require.Len(t, toInsert, 1)
	assert.True(t, toInsert[0].PaySum.Equal(dec("200")))
	assert.True(t, toInsert[0].BaseSum.Equal(dec("200")))
}

func TestMergeReplacesChangedDraft(t *testing.T) {
	persisted := []payment.PaymentPosition{
		item("pp-1", "pt-1", payment.StatusDraft, "1000", "0", "0", "1000"),
	}
	current := []payment.PaymentPosition{
		computed("pt-1", "1200", "0", "0", "1200"),
	}

	toInsert, toDelete := merge(persisted, current)

	require.Len(t, toDelete, 1)
	assert.Equal(t, "pp-1", toDelete[0].ID)
	require.Len(t, toInsert, 1)
	assert.True(t, toInsert[0].PaySum.Equal(dec("1200")), "once the stale draft is gone the full amount is owed")
}

func TestMergeDeletesDraftNoLongerProduced(t *testing.T) {
	persisted := []payment.PaymentPosition{
		item("pp-1", "pt-1", payment.StatusDraft, "1000", "0", "0", "1000"),
	}

	toInsert, toDelete := merge(persisted, nil)

	assert.Empty(t, toInsert)
	require.Len(t, toDelete, 1)
	assert.Equal(t, "pp-1", toDelete[0].ID)
}

func TestMergeDropsFullyPaidItems(t *testing.T) {
	persisted := []payment.PaymentPosition{
		item("pp-1", "pt-1", payment.StatusAccepted, "1000", "0", "0", "1000"),
	}
	current := []payment.PaymentPosition{
		computed("pt-1", "900", "0", "0", "900"),
	}

	toInsert, toDelete := merge(persisted, current)

	assert.Empty(t, toInsert, "a non-positive net pay sum means fully paid, not an error")
	assert.Empty(t, toDelete)
}

func TestMergeCollapsesPersistedPerPaymentType(t *testing.T) {
	persisted := []payment.PaymentPosition{
		item("pp-1", "pt-1", payment.StatusAccepted, "600", "0", "0", "600"),
		item("pp-2", "pt-1", payment.StatusAccepted, "400", "0", "0", "400"),
	}
	current := []payment.PaymentPosition{
		computed("pt-1", "1200", "0", "0", "1200"),
	}

	toInsert, toDelete := merge(persisted, current)

	assert.Empty(t, toDelete)
	require.Len(t, toInsert, 1)
	assert.True(t, toInsert[0].PaySum.Equal(dec("200")))
}

func TestMergeKeepsTypesIndependent(t *testing.T) {
	persisted := []payment.PaymentPosition{
		item("pp-1", "pt-advance", payment.StatusAccepted, "1000", "0", "0", "500"),
	}
	current := []payment.PaymentPosition{
		computed("pt-advance", "1000", "0", "0", "500"),
		computed("pt-regular", "1000", "0", "0", "500"),
	}

	toInsert, toDelete := merge(persisted, current)

	assert.Empty(t, toDelete)
	require.Len(t, toInsert, 1)
	assert.Equal(t, "pt-regular", toInsert[0].Payment.PaymentTypeID)
	assert.True(t, toInsert[0].PaySum.Equal(dec("500")))
}
