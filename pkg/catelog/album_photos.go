package catelog

// AlbumPhoto links a photo to an album. IsMain marks the album's main photo.
type AlbumPhoto struct {
	ID      int64  `json:"id" db:"id"`
	AlbumID int64  `json:"album_id" db:"album_id"`
	PhotoID int64  `json:"photo_id" db:"photo_id"`
	IsMain  bool   `json:"is_main" db:"is_main"`
	Photo   *Photo `json:"photo,omitempty" db:"-"`
}

type ListAlbumPhotosReq struct {
	AlbumID int64
}

type ListAlbumPhotosRes struct {
	Photos []AlbumPhoto `json:"photos"`
}
