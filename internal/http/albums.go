package http

import (
	"errors"
	"fmt"
	"net/http"

	httputils "github.com/twitsprout/tools/http"
	"github.com/twitsprout/tools/requestid"

	cl "photo-catalog/pkg/catelog"
)

const msgAlbumNotFound = "album not found"

// ListAlbums get the list of all the albums
func (h *Handler) ListAlbums(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()
	reqID := requestid.Get(ctx)

	res, err := h.AlbumStore.ListAlbums(ctx)
	if err != nil {
		h.writeStoreError(w, v, reqID, "ListAlbums", msgAlbumNotFound, err)
		return
	}

	_ = httputils.WriteJSON(w, v, res, http.StatusOK)
}

// GetAlbum get the details of a album matching with the path id
func (h *Handler) GetAlbum(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()
	reqID := requestid.Get(ctx)

	req, err := parseGetAlbumRequest(r)
	if err != nil {
		h.writeBadRequest(w, v, reqID, "GetAlbum", err)
		return
	}

	res, err := h.AlbumStore.GetAlbum(ctx, req)
	if err != nil {
		h.writeStoreError(w, v, reqID, "GetAlbum", msgAlbumNotFound, err)
		return
	}

	_ = httputils.WriteJSON(w, v, res.Album, http.StatusOK)
}

func parseGetAlbumRequest(r *http.Request) (cl.GetAlbumReq, error) {
	var req cl.GetAlbumReq

	id, _, err := pathID(r, "id")
	if err != nil {
		return req, fmt.Errorf("[parseGetAlbumRequest] album %s", err.Error())
	}

	req = cl.GetAlbumReq{
		AlbumID: id,
	}
	return req, nil
}

// CreateAlbum creates an album from the title, year and month in the body.
func (h *Handler) CreateAlbum(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()
	reqID := requestid.Get(ctx)

	req, err := parseCreateAlbumRequest(r)
	if err != nil {
		h.writeBadRequest(w, v, reqID, "CreateAlbum", err)
		return
	}

	res, err := h.AlbumStore.CreateAlbum(ctx, req)
	if err != nil {
		h.writeStoreError(w, v, reqID, "CreateAlbum", msgAlbumNotFound, err)
		return
	}

	_ = httputils.WriteJSON(w, v, res.Album, http.StatusCreated)
}

func parseCreateAlbumRequest(r *http.Request) (cl.CreateAlbumRequest, error) {
	var req cl.CreateAlbumRequest

	var in cl.AlbumInput
	if err := httputils.ReadJSON(r.Body, &in); err != nil {
		return req, err
	}
	if err := in.Validate(); err != nil {
		return req, fmt.Errorf("[parseCreateAlbumRequest] %w", err)
	}

	req = cl.CreateAlbumRequest{
		Title: in.Title.String,
		Year:  int(in.Year.Int64),
		Month: int(in.Month.Int64),
	}
	return req, nil
}

// UpdateAlbum replaces the title, year and month of an album.
func (h *Handler) UpdateAlbum(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()
	reqID := requestid.Get(ctx)

	req, err := parseUpdateAlbumRequest(r)
	if err != nil {
		h.writeBadRequest(w, v, reqID, "UpdateAlbum", err)
		return
	}

	res, err := h.AlbumStore.UpdateAlbum(ctx, req)
	if err != nil {
		h.writeStoreError(w, v, reqID, "UpdateAlbum", msgAlbumNotFound, err)
		return
	}

	_ = httputils.WriteJSON(w, v, res.Album, http.StatusOK)
}

// parseUpdateAlbumRequest reads the album id from the path, falling back to
// the body's album_id on routes without one.
func parseUpdateAlbumRequest(r *http.Request) (cl.UpdateAlbumReq, error) {
	var req cl.UpdateAlbumReq

	id, inPath, err := pathID(r, "id")
	if err != nil {
		return req, fmt.Errorf("[parseUpdateAlbumRequest] album %s", err.Error())
	}

	var in cl.AlbumInput
	if err := httputils.ReadJSON(r.Body, &in); err != nil {
		return req, err
	}
	if !inPath {
		if !in.AlbumID.Valid || in.AlbumID.Int64 <= 0 {
			return req, errors.New("[parseUpdateAlbumRequest] album_id must be provided in request body")
		}
		id = in.AlbumID.Int64
	}
	if err := in.Validate(); err != nil {
		return req, fmt.Errorf("[parseUpdateAlbumRequest] %w", err)
	}

	req = cl.UpdateAlbumReq{
		AlbumID: id,
		Title:   in.Title.String,
		Year:    int(in.Year.Int64),
		Month:   int(in.Month.Int64),
	}
	return req, nil
}

// DeleteAlbum deletes an album and its photo associations.
func (h *Handler) DeleteAlbum(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()
	reqID := requestid.Get(ctx)

	id, _, err := pathID(r, "id")
	if err != nil {
		h.writeBadRequest(w, v, reqID, "DeleteAlbum", fmt.Errorf("[DeleteAlbum] album %s", err.Error()))
		return
	}

	err = h.AlbumStore.DeleteAlbum(ctx, cl.DeleteAlbumReq{AlbumID: id})
	if err != nil {
		h.writeStoreError(w, v, reqID, "DeleteAlbum", msgAlbumNotFound, err)
		return
	}

	h.Logger.Info("[DeleteAlbum] album deleted",
		"request_id", reqID,
		"album_id", id,
	)
	_ = httputils.WriteJSON(w, v, cl.MessageRes{Message: "album deleted"}, http.StatusOK)
}

// ListAlbumPhotos lists the photos associated with an album.
func (h *Handler) ListAlbumPhotos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()
	reqID := requestid.Get(ctx)

	id, _, err := pathID(r, "id")
	if err != nil {
		h.writeBadRequest(w, v, reqID, "ListAlbumPhotos", fmt.Errorf("[ListAlbumPhotos] album %s", err.Error()))
		return
	}

	res, err := h.AlbumStore.ListAlbumPhotos(ctx, cl.ListAlbumPhotosReq{AlbumID: id})
	if err != nil {
		h.writeStoreError(w, v, reqID, "ListAlbumPhotos", msgAlbumNotFound, err)
		return
	}

	_ = httputils.WriteJSON(w, v, res, http.StatusOK)
}
