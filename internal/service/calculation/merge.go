package calculation

import (
	"github.com/peopledesk/payroll-backend-go/internal/domain/payment"
)

// merge reconciles the freshly computed positions of one pass against the
// persisted ones, by amount-tuple equality rather than row id:
//
//   - toDelete: persisted items whose payment is still DRAFT and for which no
//     tuple-equal item was computed this pass.
//   - toInsert: computed items that do not exactly match what is retained,
//     reduced by the amounts already persisted for the same payment type so
//     only the outstanding delta is inserted. Items netting to a non-positive
//     pay sum are fully paid and dropped.
func merge(persisted, current []payment.PaymentPosition) (toInsert, toDelete []payment.PaymentPosition) {
	for _, p := range persisted {
		if p.Payment == nil || p.Payment.Status != payment.StatusDraft {
			continue
		}
		if !containsAmounts(current, p) {
			toDelete = append(toDelete, p)
		}
	}

	retained := make([]payment.PaymentPosition, 0, len(persisted))
	for _, p := range persisted {
		if !containsID(toDelete, p.ID) {
			retained = append(retained, p)
		}
	}
	collapsed := collapse(retained)

	for _, c := range current {
		if containsAmounts(collapsed, c) {
			continue
		}
		if prior, ok := findByType(collapsed, c.Payment.PaymentTypeID); ok {
			c.BaseSum = c.BaseSum.Sub(prior.BaseSum)
			c.Deductions = c.Deductions.Sub(prior.Deductions)
			c.Funds = c.Funds.Sub(prior.Funds)
			c.PaySum = c.PaySum.Sub(prior.PaySum)
		}
		if c.PaySum.IsPositive() {
			toInsert = append(toInsert, c)
		}
	}

	return toInsert, toDelete
}

// collapse folds positions into one record per payment type, summing all four
// amount fields.
func collapse(positions []payment.PaymentPosition) []payment.PaymentPosition {
	var out []payment.PaymentPosition
	for _, p := range positions {
		found := false
		for i := range out {
			if out[i].Payment.PaymentTypeID == p.Payment.PaymentTypeID {
				out[i].BaseSum = out[i].BaseSum.Add(p.BaseSum)
				out[i].Deductions = out[i].Deductions.Add(p.Deductions)
				out[i].Funds = out[i].Funds.Add(p.Funds)
				out[i].PaySum = out[i].PaySum.Add(p.PaySum)
				found = true
				break
			}
		}
		if !found {
			out = append(out, p)
		}
	}
	return out
}

func containsAmounts(list []payment.PaymentPosition, p payment.PaymentPosition) bool {
	for _, o := range list {
		if o.SameAmounts(p) {
			return true
		}
	}
	return false
}

func containsID(list []payment.PaymentPosition, id string) bool {
	for _, o := range list {
		if o.ID == id {
			return true
		}
	}
	return false
}

func findByType(list []payment.PaymentPosition, paymentTypeID string) (payment.PaymentPosition, bool) {
	for _, o := range list {
		if o.Payment.PaymentTypeID == paymentTypeID {
			return o, true
		}
	}
	return payment.PaymentPosition{}, false
}
