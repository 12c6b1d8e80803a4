package client

import (
	"fmt"
	"time"
)

const isoDateLayout = "2006-01-02"

var frenchShortMonths = [12]string{
	"Jan.", "Fév.", "Mar.", "Avr.", "Mai", "Juin",
	"Juil.", "Aoû.", "Sep.", "Oct.", "Nov.", "Déc.",
}

// FormatDate renders an ISO date (YYYY-MM-DD) in the short French form shown
// in the bills table, e.g. "2004-04-04" becomes "4 Avr. 04".
func FormatDate(iso string) (string, error) {
	t, err := time.Parse(isoDateLayout, iso)
	if err != nil {
		return "", fmt.Errorf("invalid bill date %q: %w", iso, err)
	}
	return fmt.Sprintf("%d %s %02d", t.Day(), frenchShortMonths[t.Month()-1], t.Year()%100), nil
}

// FormatStatus maps a bill status to its French display label. Unknown
// statuses pass through unchanged.
func FormatStatus(status string) string {
	switch status {
	case BillStatusPending:
		return "En attente"
	case BillStatusAccepted:
		return "Accepté"
	case BillStatusRefused:
		return "Refusé"
	default:
		return status
	}
}
