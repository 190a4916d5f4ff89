package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidReportReason(t *testing.T) {
	for _, reason := range ReportReasons {
		assert.True(t, ValidReportReason(reason), reason)
	}

	assert.False(t, ValidReportReason(""))
	assert.False(t, ValidReportReason("FRAUDULENT"))
	assert.False(t, ValidReportReason("whatever"))
}
