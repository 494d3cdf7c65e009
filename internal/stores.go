package internal

import (
	"context"

	cl "photo-catalog/pkg/catelog"
)

type AlbumStore interface {
	ListAlbums(ctx context.Context) (cl.ListAlbumsRes, error)
	GetAlbum(ctx context.Context, req cl.GetAlbumReq) (cl.GetAlbumRes, error)
	CreateAlbum(ctx context.Context, req cl.CreateAlbumRequest) (cl.CreateAlbumResponse, error)
	UpdateAlbum(ctx context.Context, req cl.UpdateAlbumReq) (cl.UpdateAlbumRes, error)
	DeleteAlbum(ctx context.Context, req cl.DeleteAlbumReq) error
	ListAlbumPhotos(ctx context.Context, req cl.ListAlbumPhotosReq) (cl.ListAlbumPhotosRes, error)
}

type PhotoStore interface {
	ListPhotos(ctx context.Context) (cl.ListPhotosRes, error)
	GetPhoto(ctx context.Context, req cl.GetPhotoReq) (cl.GetPhotoRes, error)
	UploadPhoto(ctx context.Context, req cl.UploadPhotoReq) (cl.UploadPhotoRes, error)
	UpdatePhoto(ctx context.Context, req cl.UpdatePhotoReq) (cl.UpdatePhotoRes, error)
	DeletePhoto(ctx context.Context, req cl.DeletePhotoReq) error
}
