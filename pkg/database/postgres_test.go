package database

import (
	"testing"

	"blog-api/pkg/config"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	cfg := &config.Config{
		DBHost:     "db",
		DBPort:     "5432",
		DBUser:     "blog",
		DBPassword: "secret",
		DBName:     "blog",
		DBSSLMode:  "disable",
	}

	assert.Equal(t, "host=db user=blog password=secret dbname=blog port=5432 sslmode=disable", DSN(cfg))
}

func TestGormConfig_TranslatesErrors(t *testing.T) {
	assert.True(t, GormConfig().TranslateError)
}
