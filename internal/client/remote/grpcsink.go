package remote

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/dmitrijs2005/farmsync/internal/client/models"
	"github.com/dmitrijs2005/farmsync/internal/common"
	pb "github.com/dmitrijs2005/farmsync/internal/proto"
)

type GRPCSink struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.RemoteSinkClient
	health      healthpb.HealthClient
}

// NewGRPCSink prepares a lazy connection; nothing is dialed until the first call.
func NewGRPCSink(endpointURL string, opts ...grpc.DialOption) (*GRPCSink, error) {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallSendMsgSize(common.MaxMessageSize),
			grpc.MaxCallRecvMsgSize(common.MaxMessageSize),
		),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, opts...)
	if err != nil {
		return nil, fmt.Errorf("grpc client %s: %w", endpointURL, err)
	}

	return &GRPCSink{
		endpointURL: endpointURL,
		conn:        conn,
		client:      pb.NewRemoteSinkClient(conn),
		health:      healthpb.NewHealthClient(conn),
	}, nil
}

func (s *GRPCSink) UploadAttachment(ctx context.Context, bucket, key string, data []byte, contentType string) (string, error) {
	resp, err := s.client.UploadAttachment(ctx, &pb.UploadAttachmentRequest{
		Bucket:      bucket,
		Key:         key,
		ContentType: contentType,
		Data:        data,
	})
	if err != nil {
		return "", mapError(err)
	}
	return resp.GetUrl(), nil
}

func (s *GRPCSink) InsertOperation(ctx context.Context, rec *models.OperationRecord) (*models.Operation, error) {
	resp, err := s.client.InsertOperation(ctx, &pb.InsertOperationRequest{
		IdempotencyKey: rec.IdempotencyKey,
		PlotId:         rec.PlotID,
		Type:           string(rec.Type),
		Notes:          rec.Notes,
		OccurredAt:     toTimestamp(rec.OccurredAt),
		ImageUrl:       rec.ImageURL,
	})
	if err != nil {
		return nil, mapError(err)
	}
	if resp.GetId() == "" {
		return nil, fmt.Errorf("%w: operation id is missing", common.ErrRemoteWriteFailed)
	}

	return &models.Operation{
		ID:             resp.GetId(),
		PlotID:         resp.GetPlotId(),
		Type:           models.OperationType(resp.GetType()),
		Notes:          resp.GetNotes(),
		OccurredAt:     fromTimestamp(resp.GetOccurredAt()),
		ImageURL:       resp.GetImageUrl(),
		IdempotencyKey: resp.GetIdempotencyKey(),
		CreatedAt:      fromTimestamp(resp.GetCreatedAt()),
	}, nil
}

func (s *GRPCSink) ListPlots(ctx context.Context) ([]*models.Plot, error) {
	resp, err := s.client.ListPlots(ctx, &pb.ListPlotsRequest{})
	if err != nil {
		return nil, mapError(err)
	}

	plots := make([]*models.Plot, 0, len(resp.GetPlots()))
	for _, p := range resp.GetPlots() {
		plots = append(plots, &models.Plot{
			ID:        p.GetId(),
			Name:      p.GetName(),
			Crop:      p.GetCrop(),
			AreaHa:    p.GetAreaHa(),
			UpdatedAt: fromTimestamp(p.GetUpdatedAt()),
		})
	}
	return plots, nil
}

// Probe asks the health service whether the sink is serving.
func (s *GRPCSink) Probe(ctx context.Context) error {
	resp, err := s.health.Check(ctx, &healthpb.HealthCheckRequest{Service: pb.RemoteSink_ServiceDesc.ServiceName})
	if err != nil {
		return mapError(err)
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return fmt.Errorf("%w: %s", common.ErrUnavailable, resp.GetStatus())
	}
	return nil
}

func (s *GRPCSink) Close() error {
	return s.conn.Close()
}

// mapError converts gRPC failures into common sentinels. Anything that is
// not a transport outage counts as a rejected write.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %w", common.ErrUnavailable, err)
	}

	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("%w: %w", common.ErrRemoteWriteFailed, err)
	}

	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded, codes.Canceled:
		return fmt.Errorf("%w: %s", common.ErrUnavailable, st.Message())
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %w: %s", common.ErrRemoteWriteFailed, common.ErrValidation, st.Message())
	default:
		return fmt.Errorf("%w: rpc error: %s: %s", common.ErrRemoteWriteFailed, st.Code(), st.Message())
	}
}

func toTimestamp(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func fromTimestamp(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}
