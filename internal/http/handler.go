package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/twitsprout/tools"
	httputils "github.com/twitsprout/tools/http"

	"photo-catalog/internal"
	cl "photo-catalog/pkg/catelog"
)

const (
	msgInternalServerError = "internal server error"
	msgConflict            = "conflicting album/photo association"
)

type Handler struct {
	AppName    string
	Version    string
	router     *mux.Router
	Logger     tools.Logger
	AlbumStore internal.AlbumStore
	PhotoStore internal.PhotoStore
}

// writeStoreError logs a failed store call and writes the matching error
// response. Unexpected errors are reported with a generic message.
func (h *Handler) writeStoreError(w http.ResponseWriter, v url.Values, reqID, op, notFoundMsg string, err error) {
	switch {
	case errors.Is(err, cl.ErrNotFound):
		h.Logger.Info(fmt.Sprintf("[%s] %s", op, notFoundMsg),
			"request_id", reqID,
			"details", err.Error(),
		)
		_ = httputils.WriteJSONError(w, v, notFoundMsg, http.StatusNotFound)
	case errors.Is(err, cl.ErrConflict):
		h.Logger.Warn(fmt.Sprintf("[%s] constraint violation", op),
			"request_id", reqID,
			"details", err.Error(),
		)
		_ = httputils.WriteJSONError(w, v, msgConflict, http.StatusConflict)
	default:
		h.Logger.Error(fmt.Sprintf("[%s] store error", op),
			"request_id", reqID,
			"details", err.Error(),
		)
		_ = httputils.WriteJSONError(w, v, msgInternalServerError, http.StatusInternalServerError)
	}
}

func (h *Handler) writeBadRequest(w http.ResponseWriter, v url.Values, reqID, op string, err error) {
	h.Logger.Error(fmt.Sprintf("[%s] error parsing request", op),
		"request_id", reqID,
		"details", err.Error(),
	)
	_ = httputils.WriteJSONError(w, v, err.Error(), http.StatusBadRequest)
}

// pathID returns the positive integer path variable called name, and whether
// the route defines it at all.
func pathID(r *http.Request, name string) (int64, bool, error) {
	raw, ok := mux.Vars(r)[name]
	if !ok {
		return 0, false, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, true, fmt.Errorf("%s must be a positive integer", name)
	}
	return id, true, nil
}
