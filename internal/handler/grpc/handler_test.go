package grpc

import (
	"bytes"
	"context"
	"net"
	"testing"

	"github.com/MKhiriev/go-engineer-hub/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func startServer(t *testing.T, h *Handler) healthpb.HealthClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	s := grpc.NewServer(grpc.UnaryInterceptor(h.UnaryLogging))
	h.Register(s)
	go s.Serve(lis)
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return healthpb.NewHealthClient(conn)
}

func TestHealth_ServingThenShutdown(t *testing.T) {
	h := NewHandler(nil, logger.Nop())
	client := startServer(t, h)

	resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())

	h.Shutdown()

	resp, err = client.Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus())
}

func TestHealth_UnknownService(t *testing.T) {
	client := startServer(t, NewHandler(nil, logger.Nop()))

	_, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: "unknown"})

	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestUnaryLogging(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(nil, logger.New(&buf, "test"))

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(traceIDMetadataKey, "trace-42"))
	info := &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}

	_, err := h.UnaryLogging(ctx, nil, info, func(ctx context.Context, _ any) (any, error) {
		logger.FromContext(ctx).Info().Msg("inside")
		return nil, status.Error(codes.Unavailable, "down")
	})

	assert.Equal(t, codes.Unavailable, status.Code(err))
	out := buf.String()
	assert.Contains(t, out, `"trace_id":"trace-42"`)
	assert.Contains(t, out, `"method":"/grpc.health.v1.Health/Check"`)
	assert.Contains(t, out, `"code":"Unavailable"`)
}
