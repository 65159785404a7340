package grpc

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

func TestLoggingInterceptor_LogsHeaderFailureAtDebug(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	// a plain context carries no server stream, so SetHeader fails
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(requestIDMetadataKey, "req-1"))
	info := &gogrpc.UnaryServerInfo{FullMethod: FullMethod(MethodListCategories)}
	resp, err := LoggingInterceptor(logger)(ctx, nil, info, func(context.Context, interface{}) (interface{}, error) {
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, logrus.DebugLevel, entries[0].Level)
	assert.Contains(t, entries[0].Message, "could not set request id header")
	assert.Equal(t, "gRPC call completed", entries[1].Message)
	assert.Equal(t, "req-1", entries[1].Data["request_id"])
	assert.Equal(t, "OK", entries[1].Data["code"])
}
