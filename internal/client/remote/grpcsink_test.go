package remote

import (
	"context"
	"errors"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/dmitrijs2005/farmsync/internal/client/models"
	"github.com/dmitrijs2005/farmsync/internal/common"
	pb "github.com/dmitrijs2005/farmsync/internal/proto"
)

/*************
 * Fake sink server
 *************/

type fakeServer struct {
	pb.UnimplementedRemoteSinkServer

	mu         sync.Mutex
	lastUpload *pb.UploadAttachmentRequest
	lastInsert *pb.InsertOperationRequest

	insertErr error
	uploadErr error
	plots     []*pb.Plot
}

func (f *fakeServer) InsertOperation(ctx context.Context, in *pb.InsertOperationRequest) (*pb.Operation, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	f.mu.Lock()
	f.lastInsert = in
	f.mu.Unlock()

	return &pb.Operation{
		Id:             "srv-" + in.GetIdempotencyKey(),
		IdempotencyKey: in.GetIdempotencyKey(),
		PlotId:         in.GetPlotId(),
		Type:           in.GetType(),
		Notes:          in.GetNotes(),
		OccurredAt:     in.GetOccurredAt(),
		ImageUrl:       in.GetImageUrl(),
		CreatedAt:      timestamppb.New(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
	}, nil
}

func (f *fakeServer) UploadAttachment(ctx context.Context, in *pb.UploadAttachmentRequest) (*pb.UploadAttachmentResponse, error) {
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	f.mu.Lock()
	f.lastUpload = in
	f.mu.Unlock()

	return &pb.UploadAttachmentResponse{Url: "http://objects/" + in.GetBucket() + "/" + in.GetKey()}, nil
}

func (f *fakeServer) ListPlots(ctx context.Context, in *pb.ListPlotsRequest) (*pb.ListPlotsResponse, error) {
	return &pb.ListPlotsResponse{Plots: f.plots}, nil
}

func startServer(t *testing.T, f *fakeServer, serving healthpb.HealthCheckResponse_ServingStatus) *GRPCSink {
	t.Helper()

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := grpc.NewServer(grpc.MaxRecvMsgSize(common.MaxMessageSize))
	pb.RegisterRemoteSinkServer(srv, f)
	hs := health.NewServer()
	hs.SetServingStatus(pb.RemoteSink_ServiceDesc.ServiceName, serving)
	healthpb.RegisterHealthServer(srv, hs)

	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	sink, err := NewGRPCSink(lis.Addr().String())
	require.NoError(t, err)
	t.Cleanup(func() { _ = sink.Close() })
	return sink
}

func ctxTimeout(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

/*************
 * Calls
 *************/

func TestInsertOperation_OK(t *testing.T) {
	f := &fakeServer{}
	sink := startServer(t, f, healthpb.HealthCheckResponse_SERVING)

	occurred := time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)
	op, err := sink.InsertOperation(ctxTimeout(t), &models.OperationRecord{
		IdempotencyKey: "k1",
		PlotID:         "p1",
		Type:           models.OperationPruning,
		Notes:          "row 4",
		OccurredAt:     occurred,
		ImageURL:       "http://objects/b/k1",
	})
	require.NoError(t, err)

	assert.Equal(t, "srv-k1", op.ID)
	assert.Equal(t, models.OperationPruning, op.Type)
	assert.Equal(t, "http://objects/b/k1", op.ImageURL)
	assert.True(t, op.OccurredAt.Equal(occurred))
	assert.Equal(t, "row 4", f.lastInsert.GetNotes())
	assert.Equal(t, "p1", f.lastInsert.GetPlotId())
}

func TestInsertOperation_Rejected(t *testing.T) {
	f := &fakeServer{insertErr: status.Error(codes.InvalidArgument, "unknown plot")}
	sink := startServer(t, f, healthpb.HealthCheckResponse_SERVING)

	_, err := sink.InsertOperation(ctxTimeout(t), &models.OperationRecord{IdempotencyKey: "k", PlotID: "p", Type: models.OperationOther})
	require.ErrorIs(t, err, common.ErrRemoteWriteFailed)
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestUploadAttachment_SendsObjectFields(t *testing.T) {
	f := &fakeServer{}
	sink := startServer(t, f, healthpb.HealthCheckResponse_SERVING)

	data := []byte{0x89, 'P', 'N', 'G', 0x00}
	url, err := sink.UploadAttachment(ctxTimeout(t), "operation-images", "k1", data, "image/png")
	require.NoError(t, err)

	assert.Equal(t, "http://objects/operation-images/k1", url)
	assert.Equal(t, data, f.lastUpload.GetData())
	assert.Equal(t, "image/png", f.lastUpload.GetContentType())
}

func TestUploadAttachment_ServerError(t *testing.T) {
	f := &fakeServer{uploadErr: status.Error(codes.Internal, "bucket missing")}
	sink := startServer(t, f, healthpb.HealthCheckResponse_SERVING)

	_, err := sink.UploadAttachment(ctxTimeout(t), "b", "k", []byte("x"), "image/png")
	require.ErrorIs(t, err, common.ErrRemoteWriteFailed)
}

func TestListPlots(t *testing.T) {
	f := &fakeServer{plots: []*pb.Plot{{Id: "a", Name: "North", AreaHa: 1.5}}}
	sink := startServer(t, f, healthpb.HealthCheckResponse_SERVING)

	plots, err := sink.ListPlots(ctxTimeout(t))
	require.NoError(t, err)
	require.Len(t, plots, 1)
	assert.Equal(t, "North", plots[0].Name)
	assert.InDelta(t, 1.5, plots[0].AreaHa, 1e-9)
}

func TestProbe(t *testing.T) {
	sink := startServer(t, &fakeServer{}, healthpb.HealthCheckResponse_SERVING)
	require.NoError(t, sink.Probe(ctxTimeout(t)))

	down := startServer(t, &fakeServer{}, healthpb.HealthCheckResponse_NOT_SERVING)
	require.ErrorIs(t, down.Probe(ctxTimeout(t)), common.ErrUnavailable)
}

func TestProbe_NoServer(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := lis.Addr().String()
	require.NoError(t, lis.Close())

	sink, err := NewGRPCSink(addr)
	require.NoError(t, err)
	defer sink.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, sink.Probe(ctx), common.ErrUnavailable)
}

/*************
 * mapError
 *************/

func TestMapError(t *testing.T) {
	require.NoError(t, mapError(nil))

	require.ErrorIs(t, mapError(status.Error(codes.Unavailable, "x")), common.ErrUnavailable)
	require.ErrorIs(t, mapError(status.Error(codes.DeadlineExceeded, "x")), common.ErrUnavailable)
	require.ErrorIs(t, mapError(context.DeadlineExceeded), common.ErrUnavailable)

	invalid := mapError(status.Error(codes.InvalidArgument, "x"))
	require.ErrorIs(t, invalid, common.ErrRemoteWriteFailed)
	require.ErrorIs(t, invalid, common.ErrValidation)

	internal := mapError(status.Error(codes.Internal, "boom"))
	require.ErrorIs(t, internal, common.ErrRemoteWriteFailed)
	require.ErrorContains(t, internal, "rpc error:")

	require.ErrorIs(t, mapError(errors.New("plain")), common.ErrRemoteWriteFailed)
}
