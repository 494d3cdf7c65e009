package mock

import (
	"context"

	"photo-catalog/internal"
	cl "photo-catalog/pkg/catelog"
)

var _ internal.PhotoStore = (*PhotoStore)(nil)

// PhotoStore implements the PhotoStore interface for mocking purposes.
type PhotoStore struct {
	ListPhotosFn  func(ctx context.Context) (cl.ListPhotosRes, error)
	GetPhotoFn    func(ctx context.Context, req cl.GetPhotoReq) (cl.GetPhotoRes, error)
	UploadPhotoFn func(ctx context.Context, req cl.UploadPhotoReq) (cl.UploadPhotoRes, error)
	UpdatePhotoFn func(ctx context.Context, req cl.UpdatePhotoReq) (cl.UpdatePhotoRes, error)
	DeletePhotoFn func(ctx context.Context, req cl.DeletePhotoReq) error
}

func (s *PhotoStore) ListPhotos(ctx context.Context) (cl.ListPhotosRes, error) {
	return s.ListPhotosFn(ctx)
}

func (s *PhotoStore) GetPhoto(ctx context.Context, req cl.GetPhotoReq) (cl.GetPhotoRes, error) {
	return s.GetPhotoFn(ctx, req)
}

func (s *PhotoStore) UploadPhoto(ctx context.Context, req cl.UploadPhotoReq) (cl.UploadPhotoRes, error) {
	return s.UploadPhotoFn(ctx, req)
}

func (s *PhotoStore) UpdatePhoto(ctx context.Context, req cl.UpdatePhotoReq) (cl.UpdatePhotoRes, error) {
	return s.UpdatePhotoFn(ctx, req)
}

func (s *PhotoStore) DeletePhoto(ctx context.Context, req cl.DeletePhotoReq) error {
	return s.DeletePhotoFn(ctx, req)
}
