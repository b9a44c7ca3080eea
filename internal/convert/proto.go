// Package convert maps domain values to protobuf messages and back.
package convert

import (
	"errors"
	"fmt"
	"time"

	pb "github.com/and161185/moment-keeper/gen/go/momentkeeper/v1"
	"github.com/and161185/moment-keeper/internal/model"
	"github.com/and161185/moment-keeper/internal/service"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// --- helpers ---

func ts(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

// fromTS converts an optional timestamp; nil yields the zero time.
func fromTS(p *timestamppb.Timestamp) (time.Time, error) {
	if p == nil {
		return time.Time{}, nil
	}
	if err := p.CheckValid(); err != nil {
		return time.Time{}, err
	}
	return p.AsTime(), nil
}

// requiredTS is fromTS for fields a response always carries.
func requiredTS(field string, p *timestamppb.Timestamp) (time.Time, error) {
	if p == nil {
		return time.Time{}, fmt.Errorf("%s: missing", field)
	}
	t, err := fromTS(p)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", field, err)
	}
	return t, nil
}

func tags(in []string) []string {
	return append([]string{}, in...)
}

// --- moments ---

// ToProtoMoment converts a domain moment to protobuf.
func ToProtoMoment(m model.Moment) *pb.Moment {
	return &pb.Moment{
		Id:          m.ID,
		Title:       m.Title,
		Date:        ts(m.Date),
		Description: m.Description,
		ImageUrl:    m.ImageURL,
		Tags:        tags(m.Tags),
		IsPrivate:   m.IsPrivate,
	}
}

// ToProtoMoments converts a slice; the result is never nil.
func ToProtoMoments(ms []model.Moment) []*pb.Moment {
	out := make([]*pb.Moment, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToProtoMoment(m))
	}
	return out
}

// FromProtoMoment converts a stored moment received from the server.
func FromProtoMoment(in *pb.Moment) (model.Moment, error) {
	if in == nil {
		return model.Moment{}, errors.New("nil moment")
	}
	d, err := requiredTS("date", in.GetDate())
	if err != nil {
		return model.Moment{}, fmt.Errorf("moment %q: %w", in.GetId(), err)
	}
	return model.Moment{
		ID:          in.GetId(),
		Title:       in.GetTitle(),
		Date:        d,
		Description: in.GetDescription(),
		ImageURL:    in.GetImageUrl(),
		Tags:        tags(in.GetTags()),
		IsPrivate:   in.GetIsPrivate(),
	}, nil
}

// FromProtoMoments converts a slice of protobuf moments.
func FromProtoMoments(in []*pb.Moment) ([]model.Moment, error) {
	out := make([]model.Moment, 0, len(in))
	for i, m := range in {
		dm, err := FromProtoMoment(m)
		if err != nil {
			return nil, fmt.Errorf("moment[%d]: %w", i, err)
		}
		out = append(out, dm)
	}
	return out, nil
}

// ToProtoMomentInput converts a form submission. A zero date stays unset so
// the receiving side applies its default.
func ToProtoMomentInput(in service.MomentInput) *pb.Moment {
	return &pb.Moment{
		Id:          in.ID,
		Title:       in.Title,
		Date:        ts(in.Date),
		Description: in.Description,
		ImageUrl:    in.ImageURL,
		Tags:        in.Tags,
		IsPrivate:   in.IsPrivate,
	}
}

// FromProtoMomentInput converts a form submission. An unset date stays zero.
func FromProtoMomentInput(in *pb.Moment) (service.MomentInput, error) {
	if in == nil {
		return service.MomentInput{}, errors.New("nil moment")
	}
	d, err := fromTS(in.GetDate())
	if err != nil {
		return service.MomentInput{}, fmt.Errorf("date: %w", err)
	}
	return service.MomentInput{
		ID:          in.GetId(),
		Title:       in.GetTitle(),
		Date:        d,
		Description: in.GetDescription(),
		ImageURL:    in.GetImageUrl(),
		Tags:        in.GetTags(),
		IsPrivate:   in.GetIsPrivate(),
	}, nil
}

// --- anniversary ---

// ToProtoCountdown converts a countdown.
func ToProtoCountdown(c model.Countdown) *pb.Countdown {
	return &pb.Countdown{Days: c.Days, Hours: c.Hours, Minutes: c.Minutes, Seconds: c.Seconds}
}

// FromProtoCountdown converts a protobuf countdown; nil is the zero countdown.
func FromProtoCountdown(c *pb.Countdown) model.Countdown {
	return model.Countdown{Days: c.GetDays(), Hours: c.GetHours(), Minutes: c.GetMinutes(), Seconds: c.GetSeconds()}
}

// ToProtoAnniversary converts a setting.
func ToProtoAnniversary(a model.AnniversarySetting) *pb.Anniversary {
	return &pb.Anniversary{Date: ts(a.Date), Name: a.Name}
}

// FromProtoAnniversary converts a protobuf setting.
func FromProtoAnniversary(a *pb.Anniversary) (model.AnniversarySetting, error) {
	d, err := requiredTS("anniversary date", a.GetDate())
	if err != nil {
		return model.AnniversarySetting{}, err
	}
	return model.AnniversarySetting{Date: d, Name: a.GetName()}, nil
}

// ToProtoAnniversaryView converts the anniversary view.
func ToProtoAnniversaryView(v model.AnniversaryView) *pb.AnniversaryView {
	return &pb.AnniversaryView{
		Anniversary:    ToProtoAnniversary(v.Setting),
		Saved:          v.Saved,
		NextOccurrence: ts(v.NextOccurrence),
		YearsElapsed:   int32(v.YearsElapsed),
		Countdown:      ToProtoCountdown(v.Countdown),
	}
}

// FromProtoAnniversaryView converts a protobuf anniversary view.
func FromProtoAnniversaryView(v *pb.AnniversaryView) (model.AnniversaryView, error) {
	a, err := FromProtoAnniversary(v.GetAnniversary())
	if err != nil {
		return model.AnniversaryView{}, err
	}
	next, err := requiredTS("next occurrence", v.GetNextOccurrence())
	if err != nil {
		return model.AnniversaryView{}, err
	}
	return model.AnniversaryView{
		Setting:        a,
		Saved:          v.GetSaved(),
		NextOccurrence: next,
		YearsElapsed:   int(v.GetYearsElapsed()),
		Countdown:      FromProtoCountdown(v.GetCountdown()),
	}, nil
}

// ToProtoSaveAnniversary converts the anniversary form.
func ToProtoSaveAnniversary(in service.AnniversaryInput) *pb.SaveAnniversaryRequest {
	return &pb.SaveAnniversaryRequest{Date: ts(in.Date), Name: in.Name}
}

// FromProtoSaveAnniversary converts the anniversary form. An unset date stays zero.
func FromProtoSaveAnniversary(r *pb.SaveAnniversaryRequest) (service.AnniversaryInput, error) {
	d, err := fromTS(r.GetDate())
	if err != nil {
		return service.AnniversaryInput{}, fmt.Errorf("date: %w", err)
	}
	return service.AnniversaryInput{Date: d, Name: r.GetName()}, nil
}

// --- home / identity ---

// ToProtoHome converts the home view.
func ToProtoHome(h model.Home) *pb.HomeResponse {
	return &pb.HomeResponse{
		Recent:      ToProtoMoments(h.Recent),
		Anniversary: ToProtoAnniversary(h.Anniversary),
		Saved:       h.Saved,
		Countdown:   ToProtoCountdown(h.Countdown),
	}
}

// FromProtoHome converts a protobuf home view.
func FromProtoHome(h *pb.HomeResponse) (model.Home, error) {
	recent, err := FromProtoMoments(h.GetRecent())
	if err != nil {
		return model.Home{}, err
	}
	a, err := FromProtoAnniversary(h.GetAnniversary())
	if err != nil {
		return model.Home{}, err
	}
	return model.Home{Recent: recent, Anniversary: a, Saved: h.GetSaved(), Countdown: FromProtoCountdown(h.GetCountdown())}, nil
}

// ToProtoWhoAmI converts an identity.
func ToProtoWhoAmI(id model.Identity) *pb.WhoAmIResponse {
	return &pb.WhoAmIResponse{UserId: id.ID.String(), Email: id.Email}
}
