package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ReportStatusPending   = "pending"
	ReportStatusResolved  = "resolved"
	ReportStatusDismissed = "dismissed"
)

// ReportReasons is the fixed set of accepted report reasons.
var ReportReasons = []string{
	"fraudulent", "inappropriate", "misleading", "duplicate", "spam", "other",
}

// ValidReportReason reports whether reason is one of ReportReasons.
func ValidReportReason(reason string) bool {
	for _, r := range ReportReasons {
		if r == reason {
			return true
		}
	}
	return false
}

// CarReport is an abuse report filed against one listing. Reports are
// never deleted; status only moves pending -> resolved or pending -> dismissed.
type CarReport struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	CarID      uuid.UUID  `db:"car_id" json:"car_id"`
	ReporterID uuid.UUID  `db:"reporter_id" json:"reporter_id"`
	Reason     string     `db:"reason" json:"reason"`
	Details    *string    `db:"details" json:"details,omitempty"`
	Status     string     `db:"status" json:"status"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
	ResolvedAt *time.Time `db:"resolved_at" json:"resolved_at"`
	ResolvedBy *uuid.UUID `db:"resolved_by" json:"resolved_by"`
}
