package grpc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/dmitrijs2005/farmsync/internal/common"
	pb "github.com/dmitrijs2005/farmsync/internal/proto"
	"github.com/dmitrijs2005/farmsync/internal/server/models"
)

func (s *GRPCServer) InsertOperation(ctx context.Context, req *pb.InsertOperationRequest) (*pb.Operation, error) {
	occurredAt, err := fromTimestamp(req.GetOccurredAt())
	if err != nil {
		return nil, toStatus(fmt.Errorf("%w: occurred_at: %w", common.ErrValidation, err))
	}

	op, err := s.operations.Insert(ctx, &models.Operation{
		IdempotencyKey: req.GetIdempotencyKey(),
		PlotID:         req.GetPlotId(),
		Type:           req.GetType(),
		Notes:          req.GetNotes(),
		OccurredAt:     occurredAt,
		ImageURL:       req.GetImageUrl(),
	})
	if err != nil {
		s.logger.Error(ctx, "insert failed", "idempotency_key", req.GetIdempotencyKey(), "error", err)
		return nil, toStatus(err)
	}

	return &pb.Operation{
		Id:             op.ID,
		IdempotencyKey: op.IdempotencyKey,
		PlotId:         op.PlotID,
		Type:           op.Type,
		Notes:          op.Notes,
		OccurredAt:     toTimestamp(op.OccurredAt),
		ImageUrl:       op.ImageURL,
		CreatedAt:      toTimestamp(op.CreatedAt),
	}, nil
}

func (s *GRPCServer) UploadAttachment(ctx context.Context, req *pb.UploadAttachmentRequest) (*pb.UploadAttachmentResponse, error) {
	bucket := req.GetBucket()
	if bucket == "" {
		bucket = s.defaultBucket
	}

	url, err := s.operations.UploadAttachment(ctx, bucket, req.GetKey(), req.GetData(), req.GetContentType())
	if err != nil {
		s.logger.Error(ctx, "upload failed", "bucket", bucket, "key", req.GetKey(), "error", err)
		return nil, toStatus(err)
	}
	return &pb.UploadAttachmentResponse{Url: url}, nil
}

func (s *GRPCServer) ListPlots(ctx context.Context, _ *pb.ListPlotsRequest) (*pb.ListPlotsResponse, error) {
	plots, err := s.plots.List(ctx)
	if err != nil {
		s.logger.Error(ctx, "list plots failed", "error", err)
		return nil, toStatus(err)
	}

	resp := &pb.ListPlotsResponse{Plots: make([]*pb.Plot, 0, len(plots))}
	for _, p := range plots {
		resp.Plots = append(resp.Plots, &pb.Plot{
			Id:        p.ID,
			Name:      p.Name,
			Crop:      p.Crop,
			AreaHa:    p.AreaHa,
			UpdatedAt: toTimestamp(p.UpdatedAt),
		})
	}
	return resp, nil
}

func toTimestamp(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

// fromTimestamp treats an absent timestamp as the zero time.
func fromTimestamp(ts *timestamppb.Timestamp) (time.Time, error) {
	if ts == nil {
		return time.Time{}, nil
	}
	if err := ts.CheckValid(); err != nil {
		return time.Time{}, err
	}
	return ts.AsTime(), nil
}

// toStatus maps validation failures to InvalidArgument and hides everything
// else behind Internal.
func toStatus(err error) error {
	switch {
	case errors.Is(err, common.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "canceled")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
