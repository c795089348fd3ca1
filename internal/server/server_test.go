package server

import (
	"testing"

	"github.com/simterview/simterview/internal/config"
	"github.com/simterview/simterview/internal/handler"
	"github.com/simterview/simterview/internal/logger"
	"github.com/simterview/simterview/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer_HTTPAddress(t *testing.T) {
	log := logger.Nop()
	handlers, err := handler.NewHandlers(&service.Services{}, config.Server{HTTPAddress: ":8080"}, log)
	require.NoError(t, err)

	srv, err := NewServer(handlers, config.Server{HTTPAddress: ":8080"}, log)

	require.NoError(t, err)
	assert.NotNil(t, srv)
}

func TestNewServer_NoAddress(t *testing.T) {
	log := logger.Nop()
	handlers := &handler.Handlers{}

	srv, err := NewServer(handlers, config.Server{}, log)

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, srv)
}
