package grpc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const requestIDMetadataKey = "x-request-id"

// LoggingInterceptor logs every unary call with its status code, latency and
// request id (taken from x-request-id metadata or generated).
func LoggingInterceptor(logger *logrus.Logger) gogrpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *gogrpc.UnaryServerInfo, handler gogrpc.UnaryHandler) (interface{}, error) {
		requestID := ""
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if values := md.Get(requestIDMetadataKey); len(values) > 0 {
				requestID = values[0]
			}
		}
		if requestID == "" {
			requestID = uuid.New().String()
		}
		if err := gogrpc.SetHeader(ctx, metadata.Pairs(requestIDMetadataKey, requestID)); err != nil {
			logger.Debugf("gRPC Handler: could not set request id header for %s: %v", info.FullMethod, err)
		}

		start := time.Now()
		resp, err := handler(ctx, req)

		logger.WithFields(logrus.Fields{
			"method":     info.FullMethod,
			"code":       status.Code(err).String(),
			"latency":    time.Since(start).String(),
			"request_id": requestID,
		}).Info("gRPC call completed")
		return resp, err
	}
}

// NewServer builds a gRPC server with the catalog service registered.
func NewServer(handler CatalogServiceServer, logger *logrus.Logger) *gogrpc.Server {
	server := gogrpc.NewServer(gogrpc.UnaryInterceptor(LoggingInterceptor(logger)))
	RegisterCatalogServiceServer(server, handler)
	return server
}
