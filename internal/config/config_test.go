package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, ":50051", cfg.UserSvcAddr)
	require.Equal(t, ":50052", cfg.OrderSvcAddr)
	require.Equal(t, "localhost:50051", cfg.UserSvcTarget)
	require.Equal(t, 5*time.Second, cfg.UserCallTimeout)
	require.Equal(t, 5*time.Second, cfg.ShutdownGrace)
	require.Equal(t, 10, cfg.MaxConcurrent)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("USER_SERVICE_TARGET", "user-svc:6000")
	t.Setenv("USER_CALL_TIMEOUT", "250ms")
	t.Setenv("GRPC_MAX_CONCURRENT", "4")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "user-svc:6000", cfg.UserSvcTarget)
	require.Equal(t, 250*time.Millisecond, cfg.UserCallTimeout)
	require.Equal(t, 4, cfg.MaxConcurrent)
}

func TestLoadRejectsNonPositiveWorkerBound(t *testing.T) {
	t.Setenv("GRPC_MAX_CONCURRENT", "0")

	_, err := Load()
	require.Error(t, err)
}
