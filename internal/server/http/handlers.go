package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	pb "github.com/and161185/moment-keeper/gen/go/momentkeeper/v1"
	"github.com/and161185/moment-keeper/internal/auth"
	"github.com/and161185/moment-keeper/internal/convert"
	"github.com/and161185/moment-keeper/internal/errs"
	"github.com/and161185/moment-keeper/internal/model"
	"github.com/and161185/moment-keeper/internal/observability"
	"github.com/and161185/moment-keeper/internal/query"
	"github.com/and161185/moment-keeper/internal/service"
)

// maxBody caps request bodies.
const maxBody = 1 << 20

var (
	marshal   = protojson.MarshalOptions{EmitUnpopulated: true}
	unmarshal = protojson.UnmarshalOptions{DiscardUnknown: true}
)

// errorResponse is the body of every non-2xx reply.
type errorResponse struct {
	Error string `json:"error"`
}

type handlers struct {
	moments service.MomentService
	anniv   service.AnniversaryService
	metrics *observability.Collector
	log     *zap.Logger
}

func (h *handlers) listMoments(w http.ResponseWriter, r *http.Request) {
	id := identity(r.Context())
	sortParam := r.URL.Query().Get("sort")
	mode, ok := query.ParseSortMode(sortParam)
	if !ok {
		respondError(w, http.StatusBadRequest, "unknown sort mode "+sortParam)
		return
	}
	ms, err := h.moments.List(r.Context(), id.ID, r.URL.Query().Get("q"), mode)
	if err != nil {
		h.fail(w, "list moments", err)
		return
	}
	respondProto(w, http.StatusOK, &pb.ListMomentsResponse{Moments: convert.ToProtoMoments(ms)})
}

func (h *handlers) getMoment(w http.ResponseWriter, r *http.Request) {
	id := identity(r.Context())
	m, err := h.moments.Get(r.Context(), id.ID, chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, "get moment", err)
		return
	}
	respondProto(w, http.StatusOK, &pb.MomentResponse{Moment: convert.ToProtoMoment(m)})
}

func (h *handlers) createMoment(w http.ResponseWriter, r *http.Request) {
	id := identity(r.Context())
	body := &pb.Moment{}
	if !decode(w, r, body) {
		return
	}
	in, err := convert.FromProtoMomentInput(body)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	m, err := h.moments.Create(r.Context(), id.ID, in)
	if err != nil {
		h.fail(w, "create moment", err)
		return
	}
	if h.metrics != nil {
		h.metrics.MomentsCreated.Inc()
	}
	respondProto(w, http.StatusCreated, &pb.MomentResponse{Moment: convert.ToProtoMoment(m)})
}

func (h *handlers) updateMoment(w http.ResponseWriter, r *http.Request) {
	id := identity(r.Context())
	body := &pb.Moment{}
	if !decode(w, r, body) {
		return
	}
	in, err := convert.FromProtoMomentInput(body)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	m, err := h.moments.Update(r.Context(), id.ID, chi.URLParam(r, "id"), in)
	if err != nil {
		h.fail(w, "update moment", err)
		return
	}
	respondProto(w, http.StatusOK, &pb.MomentResponse{Moment: convert.ToProtoMoment(m)})
}

func (h *handlers) getAnniversary(w http.ResponseWriter, r *http.Request) {
	id := identity(r.Context())
	v, err := h.anniv.View(r.Context(), id.ID)
	if err != nil {
		h.fail(w, "get anniversary", err)
		return
	}
	respondProto(w, http.StatusOK, convert.ToProtoAnniversaryView(v))
}

func (h *handlers) saveAnniversary(w http.ResponseWriter, r *http.Request) {
	id := identity(r.Context())
	body := &pb.SaveAnniversaryRequest{}
	if !decode(w, r, body) {
		return
	}
	in, err := convert.FromProtoSaveAnniversary(body)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	v, err := h.anniv.Save(r.Context(), id.ID, in)
	if err != nil {
		h.fail(w, "save anniversary", err)
		return
	}
	respondProto(w, http.StatusOK, convert.ToProtoAnniversaryView(v))
}

func (h *handlers) home(w http.ResponseWriter, r *http.Request) {
	id := identity(r.Context())
	hv, err := h.anniv.Home(r.Context(), id.ID)
	if err != nil {
		h.fail(w, "home", err)
		return
	}
	respondProto(w, http.StatusOK, convert.ToProtoHome(hv))
}

func (h *handlers) whoAmI(w http.ResponseWriter, r *http.Request) {
	respondProto(w, http.StatusOK, convert.ToProtoWhoAmI(identity(r.Context())))
}

// identity returns the caller stored by authenticate.
func identity(ctx context.Context) model.Identity {
	id, _ := auth.IdentityFrom(ctx)
	return id
}

// fail maps domain errors to HTTP statuses. Unexpected errors are logged and hidden.
func (h *handlers) fail(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		respondError(w, http.StatusNotFound, "not found")
	case errors.Is(err, errs.ErrValidation):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrAlreadyExists):
		respondError(w, http.StatusConflict, "already exists")
	case errors.Is(err, errs.ErrVersionConflict):
		respondError(w, http.StatusConflict, "version conflict")
	case errors.Is(err, errs.ErrUnauthorized):
		respondError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, errs.ErrMalformedStore):
		if h.metrics != nil {
			h.metrics.MalformedReads.Inc()
		}
		h.log.Error("malformed store", zap.String("op", op), zap.Error(err))
		respondError(w, http.StatusInternalServerError, op+": stored data is malformed")
	default:
		h.log.Error("internal", zap.String("op", op), zap.Error(err))
		respondError(w, http.StatusInternalServerError, op+": internal error")
	}
}

// decode reads a protojson body into m.
func decode(w http.ResponseWriter, r *http.Request, m proto.Message) bool {
	b, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBody))
	if err == nil {
		err = unmarshal.Unmarshal(b, m)
	}
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

func respondProto(w http.ResponseWriter, status int, m proto.Message) {
	b, err := marshal.Marshal(m)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "encode response: internal error")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(b)
}

// respondJSON writes plain envelopes that have no protobuf message.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, errorResponse{Error: msg})
}
