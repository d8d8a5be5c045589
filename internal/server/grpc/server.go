// Package grpc exposes the remote sink over gRPC.
package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dmitrijs2005/farmsync/internal/common"
	"github.com/dmitrijs2005/farmsync/internal/logging"
	pb "github.com/dmitrijs2005/farmsync/internal/proto"
	"github.com/dmitrijs2005/farmsync/internal/server/models"
)

// Operations is the write side used by the handlers.
type Operations interface {
	Insert(ctx context.Context, op *models.Operation) (*models.Operation, error)
	UploadAttachment(ctx context.Context, bucket, key string, data []byte, contentType string) (string, error)
}

type Plots interface {
	List(ctx context.Context) ([]*models.Plot, error)
}

type GRPCServer struct {
	pb.UnimplementedRemoteSinkServer

	address       string
	operations    Operations
	plots         Plots
	defaultBucket string
	logger        logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, ops Operations, plots Plots, defaultBucket string) *GRPCServer {
	return &GRPCServer{
		address:       a,
		logger:        l.With("module", "grpc_server"),
		operations:    ops,
		plots:         plots,
		defaultBucket: defaultBucket,
	}
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis and stops gracefully when ctx is done.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(s.loggingInterceptor),
		grpc.MaxRecvMsgSize(common.MaxMessageSize),
		grpc.MaxSendMsgSize(common.MaxMessageSize),
	)

	pb.RegisterRemoteSinkServer(srv, s)

	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(pb.RemoteSink_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		hs.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
