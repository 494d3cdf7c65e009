package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	httputils "github.com/twitsprout/tools/http"
)

// Handler mounts all the handlers at the appropriate routes and adds any required middleware.
func (h *Handler) Handler() http.Handler {
	r := mux.NewRouter()

	r.Use(httputils.TimeoutMiddleware(1 * time.Minute))
	r.Use(httputils.RequestIDMiddleware)
	r.Use(httputils.RealIPMiddleware)
	r.Use(httputils.LimitReaderMiddleware(1 << 20))
	r.Use(httputils.LoggingMiddleware(h.Logger))
	r.Use(httputils.RecoverMiddleware(h.Logger, httputils.InternalServerErrorHandler(h.Logger)))
	r.Use(httputils.MaxConnectionsMiddleware(5000, httputils.ServiceUnavailableHandler(h.Logger)))
	r.Use(httputils.ConcurrentLimitMiddleware(250, httputils.ServiceUnavailableHandler(h.Logger)))

	r.MethodNotAllowedHandler = httputils.MethodNotAllowedHandler(h.Logger)
	r.NotFoundHandler = httputils.NotFoundHandler(h.Logger)

	versionHandler := httputils.VersionHandler(h.AppName, h.Version, h.Logger)
	r.Methods("GET").Path("/").Name("root").Handler(versionHandler)
	r.Methods("GET").Path("/version").Name("version").Handler(versionHandler)
	if lh := h.Logger.Handler(); lh != nil {
		r.Methods("GET", "PUT").Path("/loglevel").Name("log_level").Handler(lh)
	}

	v1 := r.PathPrefix("/v1").Subrouter()

	v1.Methods("GET").Path("/albums").Name("list_albums").HandlerFunc(h.ListAlbums)
	v1.Methods("GET").Path("/album/{id}").Name("get_album").HandlerFunc(h.GetAlbum)
	v1.Methods("POST").Path("/album").Name("create_album").HandlerFunc(h.CreateAlbum)
	v1.Methods("PUT").Path("/album/{id}").Name("update_album").HandlerFunc(h.UpdateAlbum)
	v1.Methods("DELETE").Path("/album/{id}").Name("delete_album").HandlerFunc(h.DeleteAlbum)
	v1.Methods("GET").Path("/album/{id}/photos").Name("list_album_photos").HandlerFunc(h.ListAlbumPhotos)

	v1.Methods("GET").Path("/photos").Name("list_photos").HandlerFunc(h.ListPhotos)
	v1.Methods("GET").Path("/photo/{id}").Name("get_photo").HandlerFunc(h.GetPhoto)
	v1.Methods("POST").Path("/photo").Name("upload_photo").HandlerFunc(h.UploadPhoto)
	v1.Methods("PUT").Path("/photo/{id}").Name("update_photo").HandlerFunc(h.UpdatePhoto)
	v1.Methods("DELETE").Path("/photo/{id}").Name("delete_photo").HandlerFunc(h.DeletePhoto)

	// Unversioned aliases of the v1 routes. They share the v1 handlers and
	// response bodies.
	r.Methods("GET").Path("/albums_list").Name("legacy_list_albums").HandlerFunc(h.ListAlbums)
	r.Methods("GET").Path("/albums/{id}").Name("legacy_get_album").HandlerFunc(h.GetAlbum)
	r.Methods("POST").Path("/create_albums").Name("legacy_create_album").HandlerFunc(h.CreateAlbum)
	r.Methods("PUT").Path("/update_albums").Name("legacy_update_album").HandlerFunc(h.UpdateAlbum)
	r.Methods("DELETE").Path("/albums/{id}").Name("legacy_delete_album").HandlerFunc(h.DeleteAlbum)
	r.Methods("GET").Path("/get_photos").Name("legacy_list_photos").HandlerFunc(h.ListPhotos)
	r.Methods("GET").Path("/photos/{id}").Name("legacy_get_photo").HandlerFunc(h.GetPhoto)
	r.Methods("POST").Path("/upload_photos").Name("legacy_upload_photo").HandlerFunc(h.UploadPhoto)
	r.Methods("PUT").Path("/photos/{id}").Name("legacy_update_photo").HandlerFunc(h.UpdatePhoto)
	r.Methods("DELETE").Path("/photos/{id}").Name("legacy_delete_photo").HandlerFunc(h.DeletePhoto)

	h.router = r
	return r
}
