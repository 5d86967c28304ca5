package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/and161185/counters-admin/internal/counters"
	"github.com/and161185/counters-admin/internal/errs"
	"github.com/go-chi/chi/v5"
)

// ListCountersHandler returns a page of counters ranked by value.
//
// Without page and size the whole list is returned. A page without a size
// uses the configured default size. With detailed=true every entry carries
// its value.
func (srv *Server) ListCountersHandler(w http.ResponseWriter, r *http.Request) {
	req, detailed, err := srv.parseListQuery(r)
	if err != nil {
		srv.writeError(w, r, err)
		return
	}

	page, err := srv.Counters.List(r.Context(), req)
	if err != nil {
		srv.writeError(w, r, err)
		return
	}

	if detailed {
		srv.writeJSON(w, counters.AssemblePage(page, counters.ToCounterResource))
		return
	}
	srv.writeJSON(w, counters.AssemblePage(page, counters.ToMetricResource))
}

// DisplayCounterHandler returns one counter with its value.
func (srv *Server) DisplayCounterHandler(w http.ResponseWriter, r *http.Request) {
	name, err := counterName(r)
	if err != nil {
		srv.writeError(w, r, err)
		return
	}

	resource, err := srv.Counters.Display(r.Context(), name)
	if err != nil {
		srv.writeError(w, r, err)
		return
	}
	srv.writeJSON(w, resource)
}

// DeleteCounterHandler resets a counter and answers with an empty body.
func (srv *Server) DeleteCounterHandler(w http.ResponseWriter, r *http.Request) {
	name, err := counterName(r)
	if err != nil {
		srv.writeError(w, r, err)
		return
	}

	if err := srv.Counters.Delete(r.Context(), name); err != nil {
		srv.writeError(w, r, err)
		return
	}
	srv.logger().Infow("counter reset", "name", name)
	w.WriteHeader(http.StatusOK)
}

func (srv *Server) PingHandler(w http.ResponseWriter, r *http.Request) {
	if err := srv.Storage.Ping(r.Context()); err != nil {
		srv.logger().Errorw("storage ping failed", "error", err)
		http.Error(w, "storage unavailable", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (srv *Server) parseListQuery(r *http.Request) (*counters.PageRequest, bool, error) {
	q := r.URL.Query()

	detailed := false
	if v := q.Get("detailed"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, false, fmt.Errorf("%w: detailed %q", errs.ErrInvalidArgument, v)
		}
		detailed = b
	}

	pageStr, sizeStr := q.Get("page"), q.Get("size")
	if pageStr == "" && sizeStr == "" {
		return nil, detailed, nil
	}

	page, size := 0, srv.defaultPageSize()
	if pageStr != "" {
		n, err := strconv.Atoi(pageStr)
		if err != nil {
			return nil, false, fmt.Errorf("%w: page %q", errs.ErrInvalidArgument, pageStr)
		}
		page = n
	}
	if sizeStr != "" {
		n, err := strconv.Atoi(sizeStr)
		if err != nil {
			return nil, false, fmt.Errorf("%w: size %q", errs.ErrInvalidArgument, sizeStr)
		}
		size = n
	}
	if page < 0 {
		return nil, false, fmt.Errorf("%w: page %d is negative", errs.ErrInvalidArgument, page)
	}
	if size > 0 && page > math.MaxInt/size {
		return nil, false, fmt.Errorf("%w: page %d of size %d is out of range", errs.ErrInvalidArgument, page, size)
	}
	return counters.NewPageRequest(page, size), detailed, nil
}

// counterName returns the decoded name path parameter. chi matches on the
// escaped path when the URL has one, so "x%2Fy" must become "x/y".
func counterName(r *http.Request) (string, error) {
	name := chi.URLParam(r, "name")
	if r.URL.RawPath == "" {
		return name, nil
	}
	decoded, err := url.PathUnescape(name)
	if err != nil {
		return "", fmt.Errorf("%w: name %q", errs.ErrInvalidArgument, name)
	}
	return decoded, nil
}

func (srv *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, errs.ErrMetricNotFound):
		http.NotFound(w, r)
	case errors.Is(err, errs.ErrInvalidArgument):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		srv.logger().Errorw("request failed", "method", r.Method, "uri", r.RequestURI, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (srv *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		srv.logger().Errorw("failed to write response JSON", "error", err)
	}
}
