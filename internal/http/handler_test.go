package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	httputils "github.com/twitsprout/tools/http"
	jsonutils "github.com/twitsprout/tools/json"
	tm "github.com/twitsprout/tools/mock"

	"photo-catalog/internal/mock"
	cl "photo-catalog/pkg/catelog"
)

func newTestHandler(as *mock.AlbumStore, ps *mock.PhotoStore) *Handler {
	h := &Handler{
		AppName:    "photo-catalog",
		Version:    "test",
		Logger:     tm.NopLogger,
		AlbumStore: as,
		PhotoStore: ps,
	}
	h.Handler()
	return h
}

func serve(h *Handler, method, url, body string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	wr := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, rd)
	h.router.ServeHTTP(wr, req)
	return wr
}

// checkResponse decodes the body into a value of the same type as expRes and
// compares the two.
func checkResponse(t *testing.T, wr *httptest.ResponseRecorder, expCode int, expRes interface{}) {
	t.Helper()

	if wr.Code != expCode {
		var res httputils.JSONErrRes
		err := jsonutils.Decode(wr.Body, &res)
		if err != nil {
			t.Fatalf("unexpected error returned from decoding response body: %s", err.Error())
		}

		t.Fatalf("unexpected response code returned: %s %s", cmp.Diff(expCode, wr.Code), res.Error.Message)
	}

	res := reflect.New(reflect.TypeOf(expRes))
	err := jsonutils.Decode(wr.Body, res.Interface())
	if err != nil {
		t.Fatalf("unexpected error returned from decoding response body: %s", err.Error())
	}

	if !cmp.Equal(res.Elem().Interface(), expRes) {
		t.Fatalf("unexpected response returned: %s", cmp.Diff(res.Elem().Interface(), expRes))
	}
}

func mustPeople(t *testing.T, raw string) cl.People {
	t.Helper()
	var p cl.People
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		t.Fatalf("unable to decode people %s: %s", raw, err.Error())
	}
	return p
}

func errRes(msg string) httputils.JSONErrRes {
	return httputils.JSONErrRes{
		Error: httputils.JSONErr{
			Message: msg,
		},
	}
}

func TestRouter(t *testing.T) {
	type versionRes struct {
		Data struct {
			Service string `json:"service"`
			Version string `json:"version"`
		} `json:"data"`
	}
	var expVersion versionRes
	expVersion.Data.Service = "photo-catalog"
	expVersion.Data.Version = "test"

	table := []struct {
		label   string
		method  string
		url     string
		expCode int
		expRes  interface{}
	}{
		{
			label:   "should return the version at the root",
			method:  "GET",
			url:     "/",
			expCode: http.StatusOK,
			expRes:  expVersion,
		},
		{
			label:   "should return the version",
			method:  "GET",
			url:     "/version",
			expCode: http.StatusOK,
			expRes:  expVersion,
		},
		{
			label:   "should fail on an unknown route",
			method:  "GET",
			url:     "/v1/videos",
			expCode: http.StatusNotFound,
			expRes:  errRes("http: not found"),
		},
		{
			label:   "should fail on an unsupported method",
			method:  "PATCH",
			url:     "/albums_list",
			expCode: http.StatusMethodNotAllowed,
			expRes:  errRes("http: method not allowed"),
		},
	}
	for i := 0; i < len(table); i++ {
		ts := table[i]
		t.Run(ts.label, func(t *testing.T) {
			h := newTestHandler(&mock.AlbumStore{}, &mock.PhotoStore{})
			wr := serve(h, ts.method, ts.url, "")
			checkResponse(t, wr, ts.expCode, ts.expRes)
		})
	}
}
