package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gofrs/uuid/v5"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/and161185/moment-keeper/gen/go/momentkeeper/v1"
	"github.com/and161185/moment-keeper/internal/convert"
	"github.com/and161185/moment-keeper/internal/errs"
	"github.com/and161185/moment-keeper/internal/model"
	"github.com/and161185/moment-keeper/internal/service"
)

// Remote is a Backend served by mk-server.
type Remote struct {
	cc *grpc.ClientConn
	cl pb.MomentKeeperClient
}

var _ Backend = (*Remote)(nil)

// NewRemote wraps an established connection. Close closes cc.
func NewRemote(cc *grpc.ClientConn) *Remote {
	return &Remote{cc: cc, cl: pb.NewMomentKeeperClient(cc)}
}

func (r *Remote) Close() error { return r.cc.Close() }

func (r *Remote) Home(ctx context.Context) (model.Home, error) {
	resp, err := r.cl.Home(ctx, &pb.HomeRequest{})
	if err != nil {
		return model.Home{}, fromStatus(err)
	}
	return convert.FromProtoHome(resp)
}

func (r *Remote) List(ctx context.Context, q string, mode model.SortMode) ([]model.Moment, error) {
	resp, err := r.cl.ListMoments(ctx, &pb.ListMomentsRequest{Query: q, Sort: string(mode)})
	if err != nil {
		return nil, fromStatus(err)
	}
	return convert.FromProtoMoments(resp.GetMoments())
}

func (r *Remote) Get(ctx context.Context, id string) (model.Moment, error) {
	resp, err := r.cl.GetMoment(ctx, &pb.GetMomentRequest{Id: id})
	if err != nil {
		return model.Moment{}, fromStatus(err)
	}
	return convert.FromProtoMoment(resp.GetMoment())
}

func (r *Remote) Create(ctx context.Context, in service.MomentInput) (model.Moment, error) {
	resp, err := r.cl.CreateMoment(ctx, &pb.CreateMomentRequest{Moment: convert.ToProtoMomentInput(in)})
	if err != nil {
		return model.Moment{}, fromStatus(err)
	}
	return convert.FromProtoMoment(resp.GetMoment())
}

func (r *Remote) Update(ctx context.Context, id string, in service.MomentInput) (model.Moment, error) {
	resp, err := r.cl.UpdateMoment(ctx, &pb.UpdateMomentRequest{Id: id, Moment: convert.ToProtoMomentInput(in)})
	if err != nil {
		return model.Moment{}, fromStatus(err)
	}
	return convert.FromProtoMoment(resp.GetMoment())
}

func (r *Remote) Anniversary(ctx context.Context) (model.AnniversaryView, error) {
	resp, err := r.cl.GetAnniversary(ctx, &pb.GetAnniversaryRequest{})
	if err != nil {
		return model.AnniversaryView{}, fromStatus(err)
	}
	return convert.FromProtoAnniversaryView(resp)
}

func (r *Remote) SaveAnniversary(ctx context.Context, in service.AnniversaryInput) (model.AnniversaryView, error) {
	resp, err := r.cl.SaveAnniversary(ctx, convert.ToProtoSaveAnniversary(in))
	if err != nil {
		return model.AnniversaryView{}, fromStatus(err)
	}
	return convert.FromProtoAnniversaryView(resp)
}

func (r *Remote) WhoAmI(ctx context.Context) (model.Identity, error) {
	resp, err := r.cl.WhoAmI(ctx, &pb.WhoAmIRequest{})
	if err != nil {
		return model.Identity{}, fromStatus(err)
	}
	return identityOf(resp)
}

func (r *Remote) WatchCountdown(ctx context.Context, target string, interval time.Duration, fn func(model.Countdown) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stream, err := r.cl.WatchCountdown(ctx, &pb.WatchCountdownRequest{Target: target, IntervalMs: interval.Milliseconds()})
	if err != nil {
		return fromStatus(err)
	}
	for {
		ev, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fromStatus(err)
		}
		if err := fn(convert.FromProtoCountdown(ev.GetCountdown())); err != nil {
			return err
		}
	}
}

// fromStatus turns a gRPC status back into the domain error taxonomy.
func fromStatus(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.NotFound:
		return fmt.Errorf("%w: %s", errs.ErrNotFound, st.Message())
	case codes.InvalidArgument:
		return errs.Validation("%s", st.Message())
	case codes.AlreadyExists:
		return fmt.Errorf("%w: %s", errs.ErrAlreadyExists, st.Message())
	case codes.Unauthenticated:
		return fmt.Errorf("%w: %s", errs.ErrUnauthorized, st.Message())
	case codes.Unavailable:
		return fmt.Errorf("%w: %s", errs.ErrUnavailable, st.Message())
	case codes.FailedPrecondition:
		return fmt.Errorf("%w: %s", errs.ErrVersionConflict, st.Message())
	case codes.DataLoss:
		return &errs.MalformedStoreError{Key: "server", Err: errors.New(st.Message())}
	case codes.Canceled:
		return context.Canceled
	case codes.DeadlineExceeded:
		return context.DeadlineExceeded
	default:
		return err
	}
}

func identityOf(r *pb.WhoAmIResponse) (model.Identity, error) {
	id, err := uuid.FromString(r.GetUserId())
	if err != nil {
		return model.Identity{}, fmt.Errorf("server returned bad user id: %w", err)
	}
	return model.Identity{ID: id, Email: r.GetEmail()}, nil
}
