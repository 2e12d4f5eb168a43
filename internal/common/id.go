package common

import (
	"github.com/google/uuid"
)

// NewReportID generates a unique report run ID with the "rpt_" prefix.
// Format: rpt_<uuid>
func NewReportID() string {
	return "rpt_" + uuid.New().String()
}
