package logging

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestSetLevel(t *testing.T) {
	BootstrapLoggerWithLevel(logrus.DebugLevel)

	SetLevel("warn")
	assert.Equal(t, logrus.WarnLevel, Log.GetLevel())

	SetLevel("")
	assert.Equal(t, logrus.WarnLevel, Log.GetLevel())

	SetLevel("chatty")
	assert.Equal(t, logrus.WarnLevel, Log.GetLevel())
}
