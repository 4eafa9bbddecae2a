package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	for _, key := range []string{"pending", "approved", "rejected"} {
		status, err := ParseStatus(key)
		assert.NoError(t, err)
		assert.Equal(t, Status(key), status)
	}
}

func TestParseStatusRejectsUnknownKeys(t *testing.T) {
	for _, key := range []string{"", "Pending", "APPROVED", "deleted", "approved "} {
		_, err := ParseStatus(key)
		assert.ErrorIs(t, err, ErrBadParamInput, "key %q", key)
	}
}

func TestStatusLabels(t *testing.T) {
	assert.Equal(t, "В ожидании", StatusPending.Label())
	assert.Equal(t, "Одобрено", StatusApproved.Label())
	assert.Equal(t, "Отклонено", StatusRejected.Label())
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.False(t, Status("spam").Valid())
}
