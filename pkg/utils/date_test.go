package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadLocation(t *testing.T) {
	assert.Equal(t, GetKstTimeLocation(), LoadLocation(""))
	assert.Equal(t, GetKstTimeLocation(), LoadLocation("Not/AZone"))
	assert.Equal(t, time.UTC, LoadLocation("UTC"))
}

func TestTimeNowKST(t *testing.T) {
	_, offset := TimeNowKST().Zone()
	assert.Equal(t, 9*60*60, offset)
}
