package app

import (
	"testing"

	"github.com/dright-io/dright-core/models"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestInitLogger(t *testing.T) {

	t.Run("Error Level", func(t *testing.T) {
		Config = models.Config{}
		Config.Logger.Level = "error"

		InitLogger()

		assert.Equal(t, log.ErrorLevel, log.GetLevel())
	})

	t.Run("Unknown Level Defaults To Info", func(t *testing.T) {
		Config = models.Config{}
		Config.Logger.Level = "verbose"

		InitLogger()

		assert.Equal(t, log.InfoLevel, log.GetLevel())
	})

	t.Run("Json Format", func(t *testing.T) {
		Config = models.Config{}
		Config.Logger.Level = "info"
		Config.Logger.Format = "json"

		InitLogger()

		assert.IsType(t, &log.JSONFormatter{}, log.StandardLogger().Formatter)
	})

	t.Run("Text Format By Default", func(t *testing.T) {
		Config = models.Config{}
		Config.Logger.Level = "info"

		InitLogger()

		assert.IsType(t, &log.TextFormatter{}, log.StandardLogger().Formatter)
	})
}
