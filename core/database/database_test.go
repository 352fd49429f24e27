package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnect(t *testing.T) {
	t.Run("Invalid Connection", func(t *testing.T) {
		cfg := Config{
			Host:           "localhost",
			Port:           9999, // Unused port
			User:           "root",
			Password:       "wrongpassword",
			Name:           "production",
			TimeoutSeconds: 1,
		}

		// Connect should fail (timeout or refused).
		db, err := Connect(cfg)
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	// A successful connection needs a real server; the error path is what
	// matters for unit coverage here.
}

func TestConfigLabels(t *testing.T) {
	cfg := Config{Host: "db1", Port: 3306, Name: "shop"}
	assert.Equal(t, "db1:3306/shop", cfg.Address())
	assert.Equal(t, "db1:3306/shop", cfg.DisplayLabel())

	cfg.Label = "production"
	assert.Equal(t, "production", cfg.DisplayLabel())
}
