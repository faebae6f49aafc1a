package helpers

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 15*time.Second, ParseDuration("15s", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("soon", time.Minute))
}

func TestNullStringRoundTrip(t *testing.T) {
	assert.False(t, GetNullString(nil).Valid)
	assert.Nil(t, StringPtr(sql.NullString{}))

	name := "cv.pdf"
	ns := GetNullString(&name)
	assert.True(t, ns.Valid)
	if assert.NotNil(t, StringPtr(ns)) {
		assert.Equal(t, "cv.pdf", *StringPtr(ns))
	}
}
