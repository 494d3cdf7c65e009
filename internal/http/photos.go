package http

import (
	"fmt"
	"net/http"

	httputils "github.com/twitsprout/tools/http"
	"github.com/twitsprout/tools/requestid"

	cl "photo-catalog/pkg/catelog"
)

const msgPhotoNotFound = "photo not found"

func (h *Handler) ListPhotos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()
	reqID := requestid.Get(ctx)

	res, err := h.PhotoStore.ListPhotos(ctx)
	if err != nil {
		h.writeStoreError(w, v, reqID, "ListPhotos", msgPhotoNotFound, err)
		return
	}

	_ = httputils.WriteJSON(w, v, res, http.StatusOK)
}

func (h *Handler) GetPhoto(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()
	reqID := requestid.Get(ctx)

	id, _, err := pathID(r, "id")
	if err != nil {
		h.writeBadRequest(w, v, reqID, "GetPhoto", fmt.Errorf("[GetPhoto] photo %s", err.Error()))
		return
	}

	res, err := h.PhotoStore.GetPhoto(ctx, cl.GetPhotoReq{PhotoID: id})
	if err != nil {
		h.writeStoreError(w, v, reqID, "GetPhoto", msgPhotoNotFound, err)
		return
	}

	_ = httputils.WriteJSON(w, v, res.Photo, http.StatusOK)
}

// UploadPhoto stores a photo and associates it with every album matching the
// albumTitle, albumYears and albumMonth of the body.
func (h *Handler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()
	reqID := requestid.Get(ctx)

	req, err := parseUploadPhotoRequest(r)
	if err != nil {
		h.writeBadRequest(w, v, reqID, "UploadPhoto", err)
		return
	}

	res, err := h.PhotoStore.UploadPhoto(ctx, req)
	if err != nil {
		h.writeStoreError(w, v, reqID, "UploadPhoto", msgPhotoNotFound, err)
		return
	}

	h.Logger.Info("[UploadPhoto] photo uploaded",
		"request_id", reqID,
		"photo_id", res.Photo.ID,
		"associations", len(res.Associations),
	)
	_ = httputils.WriteJSON(w, v, res, http.StatusCreated)
}

func parseUploadPhotoRequest(r *http.Request) (cl.UploadPhotoReq, error) {
	var req cl.UploadPhotoReq

	var in cl.PhotoInput
	if err := httputils.ReadJSON(r.Body, &in); err != nil {
		return req, err
	}
	if err := in.ValidateUpload(); err != nil {
		return req, fmt.Errorf("[parseUploadPhotoRequest] %w", err)
	}

	req = cl.UploadPhotoReq{
		URL:      in.URL.String,
		Title:    in.Title,
		People:   in.People,
		Location: in.Location,
		Album:    in.AlbumMatch(),
		IsMain:   in.IsMain,
	}
	return req, nil
}

// UpdatePhoto replaces the title, people and location of a photo.
func (h *Handler) UpdatePhoto(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()
	reqID := requestid.Get(ctx)

	req, err := parseUpdatePhotoRequest(r)
	if err != nil {
		h.writeBadRequest(w, v, reqID, "UpdatePhoto", err)
		return
	}

	res, err := h.PhotoStore.UpdatePhoto(ctx, req)
	if err != nil {
		h.writeStoreError(w, v, reqID, "UpdatePhoto", msgPhotoNotFound, err)
		return
	}

	_ = httputils.WriteJSON(w, v, res.Photo, http.StatusOK)
}

func parseUpdatePhotoRequest(r *http.Request) (cl.UpdatePhotoReq, error) {
	var req cl.UpdatePhotoReq

	id, _, err := pathID(r, "id")
	if err != nil {
		return req, fmt.Errorf("[parseUpdatePhotoRequest] photo %s", err.Error())
	}

	var in cl.PhotoInput
	if err := httputils.ReadJSON(r.Body, &in); err != nil {
		return req, err
	}
	if err := in.ValidateUpdate(); err != nil {
		return req, fmt.Errorf("[parseUpdatePhotoRequest] %w", err)
	}

	req = cl.UpdatePhotoReq{
		PhotoID:  id,
		Title:    in.Title.String,
		People:   in.People,
		Location: in.Location,
	}
	return req, nil
}

func (h *Handler) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()
	reqID := requestid.Get(ctx)

	id, _, err := pathID(r, "id")
	if err != nil {
		h.writeBadRequest(w, v, reqID, "DeletePhoto", fmt.Errorf("[DeletePhoto] photo %s", err.Error()))
		return
	}

	err = h.PhotoStore.DeletePhoto(ctx, cl.DeletePhotoReq{PhotoID: id})
	if err != nil {
		h.writeStoreError(w, v, reqID, "DeletePhoto", msgPhotoNotFound, err)
		return
	}

	h.Logger.Info("[DeletePhoto] photo deleted",
		"request_id", reqID,
		"photo_id", id,
	)
	_ = httputils.WriteJSON(w, v, cl.MessageRes{Message: "photo deleted"}, http.StatusOK)
}
