package monitoring

import (
	"github.com/rs/zerolog/log"
)

// OverduePaymentAlert logs an alert for a rent payment recorded as unpaid
// past its due date. Wire this to a real alerting channel later.
func OverduePaymentAlert(paymentID int64, labels map[string]string) {
	log.Warn().
		Int64("payment_id", paymentID).
		Fields(labels).
		Msg("ALERT: overdue rent payment")
}
