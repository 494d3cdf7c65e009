package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	"photo-catalog/internal/mock"
	cl "photo-catalog/pkg/catelog"
)

func TestListAlbums(t *testing.T) {
	albums := []cl.Album{
		{ID: 1, Title: "Mountains", Year: 2023, Month: 7},
		{ID: 2, Title: "Lakes", Year: 2024, Month: 1},
	}

	table := []struct {
		label        string
		url          string
		listAlbumsFn func(ctx context.Context) (cl.ListAlbumsRes, error)
		expCode      int
		expRes       interface{}
	}{
		{
			label: "should fail if listAlbumsFn fails",
			url:   "/v1/albums",
			listAlbumsFn: func(ctx context.Context) (cl.ListAlbumsRes, error) {
				return cl.ListAlbumsRes{}, errors.New("connection refused")
			},
			expCode: http.StatusInternalServerError,
			expRes:  errRes("internal server error"),
		},
		{
			label: "should return an empty list when there are no albums",
			url:   "/v1/albums",
			listAlbumsFn: func(ctx context.Context) (cl.ListAlbumsRes, error) {
				return cl.ListAlbumsRes{Albums: []cl.Album{}}, nil
			},
			expCode: http.StatusOK,
			expRes:  cl.ListAlbumsRes{Albums: []cl.Album{}},
		},
		{
			label: "should pass with albums",
			url:   "/v1/albums",
			listAlbumsFn: func(ctx context.Context) (cl.ListAlbumsRes, error) {
				return cl.ListAlbumsRes{Albums: albums}, nil
			},
			expCode: http.StatusOK,
			expRes:  cl.ListAlbumsRes{Albums: albums},
		},
		{
			label: "should pass on the unversioned alias",
			url:   "/albums_list",
			listAlbumsFn: func(ctx context.Context) (cl.ListAlbumsRes, error) {
				return cl.ListAlbumsRes{Albums: albums}, nil
			},
			expCode: http.StatusOK,
			expRes:  cl.ListAlbumsRes{Albums: albums},
		},
	}
	for i := 0; i < len(table); i++ {
		ts := table[i]
		t.Run(ts.label, func(t *testing.T) {
			h := newTestHandler(&mock.AlbumStore{
				ListAlbumsFn: ts.listAlbumsFn,
			}, nil)

			wr := serve(h, "GET", ts.url, "")
			checkResponse(t, wr, ts.expCode, ts.expRes)
		})
	}
}

func TestGetAlbum(t *testing.T) {
	album := cl.Album{
		ID:    1234,
		Title: "test",
		Year:  2024,
		Month: 5,
	}

	table := []struct {
		label      string
		url        string
		getAlbumFn func(ctx context.Context, req cl.GetAlbumReq) (cl.GetAlbumRes, error)
		expCode    int
		expRes     interface{}
	}{
		{
			label:   "should fail if the album id is not a number",
			url:     "/v1/album/abc",
			expCode: http.StatusBadRequest,
			expRes:  errRes("[parseGetAlbumRequest] album id must be a positive integer"),
		},
		{
			label:   "should fail if the album id is negative",
			url:     "/v1/album/-4",
			expCode: http.StatusBadRequest,
			expRes:  errRes("[parseGetAlbumRequest] album id must be a positive integer"),
		},
		{
			label: "should fail if getAlbumFn fails",
			url:   "/v1/album/1234",
			getAlbumFn: func(ctx context.Context, req cl.GetAlbumReq) (cl.GetAlbumRes, error) {
				return cl.GetAlbumRes{}, errors.New("connection reset by peer")
			},
			expCode: http.StatusInternalServerError,
			expRes:  errRes("internal server error"),
		},
		{
			label: "should fail if getAlbumFn finds no rows",
			url:   "/v1/album/9999",
			getAlbumFn: func(ctx context.Context, req cl.GetAlbumReq) (cl.GetAlbumRes, error) {
				return cl.GetAlbumRes{}, errors.Wrap(cl.ErrNotFound, "execute get album query")
			},
			expCode: http.StatusNotFound,
			expRes:  errRes("album not found"),
		},
		{
			label: "should pass with valid id",
			url:   "/v1/album/1234",
			getAlbumFn: func(ctx context.Context, req cl.GetAlbumReq) (cl.GetAlbumRes, error) {
				if req.AlbumID != 1234 {
					return cl.GetAlbumRes{}, cl.ErrNotFound
				}
				return cl.GetAlbumRes{Album: &album}, nil
			},
			expCode: http.StatusOK,
			expRes:  album,
		},
		{
			label: "should pass on the unversioned alias",
			url:   "/albums/1234",
			getAlbumFn: func(ctx context.Context, req cl.GetAlbumReq) (cl.GetAlbumRes, error) {
				if req.AlbumID != 1234 {
					return cl.GetAlbumRes{}, cl.ErrNotFound
				}
				return cl.GetAlbumRes{Album: &album}, nil
			},
			expCode: http.StatusOK,
			expRes:  album,
		},
	}
	for i := 0; i < len(table); i++ {
		ts := table[i]
		t.Run(ts.label, func(t *testing.T) {
			h := newTestHandler(&mock.AlbumStore{
				GetAlbumFn: ts.getAlbumFn,
			}, nil)

			wr := serve(h, "GET", ts.url, "")
			checkResponse(t, wr, ts.expCode, ts.expRes)
		})
	}
}

func TestCreateAlbum(t *testing.T) {
	album := cl.Album{
		ID:    1234,
		Title: "Mountains",
		Year:  2023,
		Month: 7,
	}
	url := "/v1/album"

	table := []struct {
		label         string
		url           string
		body          string
		createAlbumFn func(ctx context.Context, r cl.CreateAlbumRequest) (cl.CreateAlbumResponse, error)
		expCode       int
		expRes        interface{}
	}{
		{
			label:   "should fail if there's an error decoding json",
			url:     url,
			body:    `{badjson`,
			expCode: http.StatusBadRequest,
			expRes:  errRes("json: invalid character 'b' looking for beginning of object key string: '{badjson'"),
		},
		{
			label: "should fail if album title is missing",
			url:   url,
			body: `{
				"year": 2023,
				"month": 7
			}`,
			expCode: http.StatusBadRequest,
			expRes:  errRes("[parseCreateAlbumRequest] title must be provided in request body"),
		},
		{
			label: "should fail if album year is missing",
			url:   url,
			body: `{
				"title": "Mountains",
				"month": 7
			}`,
			expCode: http.StatusBadRequest,
			expRes:  errRes("[parseCreateAlbumRequest] year must be provided in request body"),
		},
		{
			label: "should fail if album month is null",
			url:   url,
			body: `{
				"title": "Mountains",
				"year": 2023,
				"month": null
			}`,
			expCode: http.StatusBadRequest,
			expRes:  errRes("[parseCreateAlbumRequest] month must be provided in request body"),
		},
		{
			label: "should fail if album year does not fit an integer column",
			url:   url,
			body: `{
				"title": "Mountains",
				"year": 2147483648,
				"month": 7
			}`,
			expCode: http.StatusBadRequest,
			expRes:  errRes("[parseCreateAlbumRequest] year is out of range"),
		},
		{
			label: "should fail if createAlbumFn fails",
			url:   url,
			body: `{
				"title": "Mountains",
				"year": 2023,
				"month": 7
			}`,
			createAlbumFn: func(ctx context.Context, r cl.CreateAlbumRequest) (cl.CreateAlbumResponse, error) {
				return cl.CreateAlbumResponse{}, errors.New("pq: relation \"albums\" does not exist")
			},
			expCode: http.StatusInternalServerError,
			expRes:  errRes("internal server error"),
		},
		{
			label: "should pass with all valid fields",
			url:   url,
			body: `{
				"title": "Mountains",
				"year": 2023,
				"month": 7
			}`,
			createAlbumFn: func(ctx context.Context, r cl.CreateAlbumRequest) (cl.CreateAlbumResponse, error) {
				exp := cl.CreateAlbumRequest{Title: "Mountains", Year: 2023, Month: 7}
				if !cmp.Equal(r, exp) {
					return cl.CreateAlbumResponse{}, errors.Errorf("unexpected request: %s", cmp.Diff(r, exp))
				}
				return cl.CreateAlbumResponse{Album: &album}, nil
			},
			expCode: http.StatusCreated,
			expRes:  album,
		},
		{
			label: "should pass on the unversioned alias",
			url:   "/create_albums",
			body: `{
				"title": "Mountains",
				"year": 2023,
				"month": 7
			}`,
			createAlbumFn: func(ctx context.Context, r cl.CreateAlbumRequest) (cl.CreateAlbumResponse, error) {
				return cl.CreateAlbumResponse{Album: &album}, nil
			},
			expCode: http.StatusCreated,
			expRes:  album,
		},
	}
	for i := 0; i < len(table); i++ {
		ts := table[i]
		t.Run(ts.label, func(t *testing.T) {
			h := newTestHandler(&mock.AlbumStore{
				CreateAlbumFn: ts.createAlbumFn,
			}, nil)

			wr := serve(h, "POST", ts.url, ts.body)
			checkResponse(t, wr, ts.expCode, ts.expRes)
		})
	}
}

func TestUpdateAlbum(t *testing.T) {
	body := `{
		"title": "Winter",
		"year": 2024,
		"month": 12
	}`
	updated := cl.Album{
		ID:    5,
		Title: "Winter",
		Year:  2024,
		Month: 12,
	}
	updateFn := func(ctx context.Context, req cl.UpdateAlbumReq) (cl.UpdateAlbumRes, error) {
		exp := cl.UpdateAlbumReq{AlbumID: 5, Title: "Winter", Year: 2024, Month: 12}
		if !cmp.Equal(req, exp) {
			return cl.UpdateAlbumRes{}, errors.Errorf("unexpected request: %s", cmp.Diff(req, exp))
		}
		return cl.UpdateAlbumRes{Album: &updated}, nil
	}

	table := []struct {
		label         string
		url           string
		body          string
		updateAlbumFn func(ctx context.Context, req cl.UpdateAlbumReq) (cl.UpdateAlbumRes, error)
		expCode       int
		expRes        interface{}
	}{
		{
			label:   "should fail if the album id is invalid",
			url:     "/v1/album/zero",
			body:    body,
			expCode: http.StatusBadRequest,
			expRes:  errRes("[parseUpdateAlbumRequest] album id must be a positive integer"),
		},
		{
			label: "should fail if album month is missing",
			url:   "/v1/album/5",
			body: `{
				"title": "Winter",
				"year": 2024
			}`,
			expCode: http.StatusBadRequest,
			expRes:  errRes("[parseUpdateAlbumRequest] month must be provided in request body"),
		},
		{
			label: "should fail if the album does not exist",
			url:   "/v1/album/5",
			body:  body,
			updateAlbumFn: func(ctx context.Context, req cl.UpdateAlbumReq) (cl.UpdateAlbumRes, error) {
				return cl.UpdateAlbumRes{}, errors.Wrap(cl.ErrNotFound, "execute update album query")
			},
			expCode: http.StatusNotFound,
			expRes:  errRes("album not found"),
		},
		{
			label:         "should pass with all valid fields",
			url:           "/v1/album/5",
			body:          body,
			updateAlbumFn: updateFn,
			expCode:       http.StatusOK,
			expRes:        updated,
		},
		{
			label:   "should fail on the legacy route without album_id",
			url:     "/update_albums",
			body:    body,
			expCode: http.StatusBadRequest,
			expRes:  errRes("[parseUpdateAlbumRequest] album_id must be provided in request body"),
		},
		{
			label: "should pass on the legacy route with album_id",
			url:   "/update_albums",
			body: `{
				"album_id": 5,
				"title": "Winter",
				"year": 2024,
				"month": 12
			}`,
			updateAlbumFn: updateFn,
			expCode:       http.StatusOK,
			expRes:        updated,
		},
	}
	for i := 0; i < len(table); i++ {
		ts := table[i]
		t.Run(ts.label, func(t *testing.T) {
			h := newTestHandler(&mock.AlbumStore{
				UpdateAlbumFn: ts.updateAlbumFn,
			}, nil)

			wr := serve(h, "PUT", ts.url, ts.body)
			checkResponse(t, wr, ts.expCode, ts.expRes)
		})
	}
}

func TestDeleteAlbum(t *testing.T) {
	table := []struct {
		label         string
		url           string
		deleteAlbumFn func(ctx context.Context, req cl.DeleteAlbumReq) error
		expCode       int
		expRes        interface{}
	}{
		{
			label:   "should fail if the album id is invalid",
			url:     "/v1/album/1.5",
			expCode: http.StatusBadRequest,
			expRes:  errRes("[DeleteAlbum] album id must be a positive integer"),
		},
		{
			label: "should fail if the album does not exist",
			url:   "/v1/album/77",
			deleteAlbumFn: func(ctx context.Context, req cl.DeleteAlbumReq) error {
				return cl.ErrNotFound
			},
			expCode: http.StatusNotFound,
			expRes:  errRes("album not found"),
		},
		{
			label: "should fail if deleteAlbumFn fails",
			url:   "/v1/album/77",
			deleteAlbumFn: func(ctx context.Context, req cl.DeleteAlbumReq) error {
				return errors.New("context deadline exceeded")
			},
			expCode: http.StatusInternalServerError,
			expRes:  errRes("internal server error"),
		},
		{
			label: "should pass with a valid id",
			url:   "/v1/album/77",
			deleteAlbumFn: func(ctx context.Context, req cl.DeleteAlbumReq) error {
				if req.AlbumID != 77 {
					return cl.ErrNotFound
				}
				return nil
			},
			expCode: http.StatusOK,
			expRes:  cl.MessageRes{Message: "album deleted"},
		},
		{
			label: "should pass on the unversioned alias",
			url:   "/albums/77",
			deleteAlbumFn: func(ctx context.Context, req cl.DeleteAlbumReq) error {
				if req.AlbumID != 77 {
					return cl.ErrNotFound
				}
				return nil
			},
			expCode: http.StatusOK,
			expRes:  cl.MessageRes{Message: "album deleted"},
		},
	}
	for i := 0; i < len(table); i++ {
		ts := table[i]
		t.Run(ts.label, func(t *testing.T) {
			h := newTestHandler(&mock.AlbumStore{
				DeleteAlbumFn: ts.deleteAlbumFn,
			}, nil)

			wr := serve(h, "DELETE", ts.url, "")
			checkResponse(t, wr, ts.expCode, ts.expRes)
		})
	}
}

func TestListAlbumPhotos(t *testing.T) {
	photo := cl.Photo{
		ID:     9,
		URL:    "https://photos.example.com/9.jpg",
		People: mustPeople(t, `["ann", "bob"]`),
		Location: &cl.Location{
			Latitude:  40.446111,
			Longitude: -79.982222,
		},
	}
	res := cl.ListAlbumPhotosRes{
		Photos: []cl.AlbumPhoto{
			{ID: 1, AlbumID: 3, PhotoID: 9, IsMain: true, Photo: &photo},
		},
	}

	table := []struct {
		label             string
		url               string
		listAlbumPhotosFn func(ctx context.Context, req cl.ListAlbumPhotosReq) (cl.ListAlbumPhotosRes, error)
		expCode           int
		expRes            interface{}
	}{
		{
			label:   "should fail if the album id is invalid",
			url:     "/v1/album/0/photos",
			expCode: http.StatusBadRequest,
			expRes:  errRes("[ListAlbumPhotos] album id must be a positive integer"),
		},
		{
			label: "should return an empty list for an album without photos",
			url:   "/v1/album/3/photos",
			listAlbumPhotosFn: func(ctx context.Context, req cl.ListAlbumPhotosReq) (cl.ListAlbumPhotosRes, error) {
				return cl.ListAlbumPhotosRes{Photos: []cl.AlbumPhoto{}}, nil
			},
			expCode: http.StatusOK,
			expRes:  cl.ListAlbumPhotosRes{Photos: []cl.AlbumPhoto{}},
		},
		{
			label: "should pass with associated photos",
			url:   "/v1/album/3/photos",
			listAlbumPhotosFn: func(ctx context.Context, req cl.ListAlbumPhotosReq) (cl.ListAlbumPhotosRes, error) {
				if req.AlbumID != 3 {
					return cl.ListAlbumPhotosRes{}, errors.Errorf("unexpected album id %d", req.AlbumID)
				}
				return res, nil
			},
			expCode: http.StatusOK,
			expRes:  res,
		},
	}
	for i := 0; i < len(table); i++ {
		ts := table[i]
		t.Run(ts.label, func(t *testing.T) {
			h := newTestHandler(&mock.AlbumStore{
				ListAlbumPhotosFn: ts.listAlbumPhotosFn,
			}, nil)

			wr := serve(h, "GET", ts.url, "")
			checkResponse(t, wr, ts.expCode, ts.expRes)
		})
	}
}
