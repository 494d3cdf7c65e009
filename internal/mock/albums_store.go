package mock

import (
	"context"

	"photo-catalog/internal"
	cl "photo-catalog/pkg/catelog"
)

var _ internal.AlbumStore = (*AlbumStore)(nil)

// AlbumStore implements the AlbumStore interface for mocking purposes.
type AlbumStore struct {
	ListAlbumsFn      func(ctx context.Context) (cl.ListAlbumsRes, error)
	GetAlbumFn        func(ctx context.Context, req cl.GetAlbumReq) (cl.GetAlbumRes, error)
	CreateAlbumFn     func(ctx context.Context, req cl.CreateAlbumRequest) (cl.CreateAlbumResponse, error)
	UpdateAlbumFn     func(ctx context.Context, req cl.UpdateAlbumReq) (cl.UpdateAlbumRes, error)
	DeleteAlbumFn     func(ctx context.Context, req cl.DeleteAlbumReq) error
	ListAlbumPhotosFn func(ctx context.Context, req cl.ListAlbumPhotosReq) (cl.ListAlbumPhotosRes, error)
}

// ListAlbums proxies the request to the ListAlbumsFn that's injected when
// the mock store is created.
func (s *AlbumStore) ListAlbums(ctx context.Context) (cl.ListAlbumsRes, error) {
	return s.ListAlbumsFn(ctx)
}

// CreateAlbum proxies the request to the CreateAlbumFn that's injected when
// the mock store is created.
func (s *AlbumStore) CreateAlbum(ctx context.Context, req cl.CreateAlbumRequest) (cl.CreateAlbumResponse, error) {
	return s.CreateAlbumFn(ctx, req)
}

// GetAlbum proxies the request to the GetAlbumFn that's injected when
// the mock store is created.
func (s *AlbumStore) GetAlbum(ctx context.Context, req cl.GetAlbumReq) (cl.GetAlbumRes, error) {
	return s.GetAlbumFn(ctx, req)
}

// UpdateAlbum proxies the request to the UpdateAlbumFn.
func (s *AlbumStore) UpdateAlbum(ctx context.Context, req cl.UpdateAlbumReq) (cl.UpdateAlbumRes, error) {
	return s.UpdateAlbumFn(ctx, req)
}

// DeleteAlbum proxies the request to the DeleteAlbumFn.
func (s *AlbumStore) DeleteAlbum(ctx context.Context, req cl.DeleteAlbumReq) error {
	return s.DeleteAlbumFn(ctx, req)
}

// ListAlbumPhotos proxies the request to the ListAlbumPhotosFn.
func (s *AlbumStore) ListAlbumPhotos(ctx context.Context, req cl.ListAlbumPhotosReq) (cl.ListAlbumPhotosRes, error) {
	return s.ListAlbumPhotosFn(ctx, req)
}
