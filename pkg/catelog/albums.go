package catelog

import (
	"math"

	"gopkg.in/guregu/null.v3"
)

type Album struct {
	ID    int64  `json:"id" db:"id"`
	Title string `json:"title" db:"title"`
	Year  int    `json:"year" db:"year"`
	Month int    `json:"month" db:"month"`
}

// AlbumInput is the request body accepted when creating or updating an
// album. AlbumID is only read by the legacy update route, which carries the
// id in the body instead of the path.
type AlbumInput struct {
	AlbumID null.Int    `json:"album_id"`
	Title   null.String `json:"title"`
	Year    null.Int    `json:"year"`
	Month   null.Int    `json:"month"`
}

// Validate reports the first required field missing from the input.
func (in AlbumInput) Validate() error {
	if !in.Title.Valid || in.Title.String == "" {
		return ErrMissingTitle
	}
	if !in.Year.Valid {
		return ErrMissingYear
	}
	if !in.Month.Valid {
		return ErrMissingMonth
	}
	if !inIntRange(in.Year.Int64) {
		return ErrYearOutOfRange
	}
	if !inIntRange(in.Month.Int64) {
		return ErrMonthOutOfRange
	}
	return nil
}

// inIntRange reports whether n fits the 32-bit INTEGER columns of the store.
func inIntRange(n int64) bool {
	return n >= math.MinInt32 && n <= math.MaxInt32
}

type ListAlbumsRes struct {
	Albums []Album `json:"albums"`
}

type GetAlbumReq struct {
	AlbumID int64
}

type GetAlbumRes struct {
	Album *Album `json:"album"`
}

type CreateAlbumRequest struct {
	Title string
	Year  int
	Month int
}

type CreateAlbumResponse struct {
	Album *Album `json:"album"`
}

type UpdateAlbumReq struct {
	AlbumID int64
	Title   string
	Year    int
	Month   int
}

type UpdateAlbumRes struct {
	Album *Album `json:"album"`
}

type DeleteAlbumReq struct {
	AlbumID int64
}

// MessageRes is the body returned by operations that have nothing else to
// report, such as deletes.
type MessageRes struct {
	Message string `json:"message"`
}
