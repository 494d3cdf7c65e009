package postgres

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"gopkg.in/guregu/null.v3"

	cl "photo-catalog/pkg/catelog"
)

const tableAlbumPhotos = "album_photos"

const (
	albumPhotosColumnID      = `"id"`
	albumPhotosColumnAlbumID = `"album_id"`
	albumPhotosColumnPhotoID = `"photo_id"`
	albumPhotosColumnIsMain  = `"is_main"`
)

var albumPhotosColumns = []string{
	albumPhotosColumnID,
	albumPhotosColumnAlbumID,
	albumPhotosColumnPhotoID,
	albumPhotosColumnIsMain,
}

type albumPhotoRow struct {
	ID        int64       `db:"id"`
	AlbumID   int64       `db:"album_id"`
	PhotoID   int64       `db:"photo_id"`
	IsMain    bool        `db:"is_main"`
	URL       string      `db:"url"`
	Title     null.String `db:"title"`
	People    cl.People   `db:"people"`
	Latitude  null.Float  `db:"latitude"`
	Longitude null.Float  `db:"longitude"`
}

func (r albumPhotoRow) albumPhoto() cl.AlbumPhoto {
	ph := photoRow{
		ID:        r.PhotoID,
		URL:       r.URL,
		Title:     r.Title,
		People:    r.People,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
	}.photo()
	return cl.AlbumPhoto{
		ID:      r.ID,
		AlbumID: r.AlbumID,
		PhotoID: r.PhotoID,
		IsMain:  r.IsMain,
		Photo:   &ph,
	}
}

// ListAlbumPhotos returns the associations of an album, each with its photo.
// An album without photos, or one that does not exist, yields an empty list.
func (p *Postgres) ListAlbumPhotos(ctx context.Context, req cl.ListAlbumPhotosReq) (cl.ListAlbumPhotosRes, error) {
	var res cl.ListAlbumPhotosRes

	var rows []albumPhotoRow
	qv, err := p.buildListAlbumPhotosQuery(req.AlbumID)
	if err != nil {
		return res, errors.Wrap(err, "build list album photos query")
	}
	err = p.do(ctx, "list_album_photos", func(ctx context.Context) error {
		return p.sqldb.SelectContext(ctx, &rows, qv.query, qv.args...)
	})
	if err != nil {
		return res, errors.Wrap(translateError(err), "execute list album photos query")
	}

	aps := make([]cl.AlbumPhoto, 0, len(rows))
	for _, r := range rows {
		aps = append(aps, r.albumPhoto())
	}
	res = cl.ListAlbumPhotosRes{
		Photos: aps,
	}
	return res, nil
}

func (p *Postgres) buildListAlbumPhotosQuery(albumID int64) (QueryValues, error) {
	columns := append(
		tableColumns(tableAlbumPhotos, albumPhotosColumns),
		tableColumns(tablePhotos, photosColumns[1:])...,
	)
	q, args, err := p.sb.
		Select(columns...).
		From(tableAlbumPhotos).
		Join(tablePhotos + " ON " +
			tableColumn(tablePhotos, photosColumnID) + " = " + tableColumn(tableAlbumPhotos, albumPhotosColumnPhotoID)).
		Where(sq.Eq{tableColumn(tableAlbumPhotos, albumPhotosColumnAlbumID): albumID}).
		OrderBy(tableColumn(tableAlbumPhotos, albumPhotosColumnID)).
		ToSql()

	return QueryValues{q, args}, errors.Wrap(err, "list album photos build query into SQL string")
}

func (p *Postgres) insertAlbumPhoto(ctx context.Context, q sqlx.QueryerContext, albumID, photoID int64, isMain bool) (cl.AlbumPhoto, error) {
	sqlStr, args, err := p.sb.
		Insert(tableAlbumPhotos).
		Columns(albumPhotosColumnAlbumID, albumPhotosColumnPhotoID, albumPhotosColumnIsMain).
		Values(albumID, photoID, isMain).
		Suffix(returning(albumPhotosColumns)).
		ToSql()
	if err != nil {
		return cl.AlbumPhoto{}, errors.Wrap(err, "insert album photo build query into SQL string")
	}

	var ap cl.AlbumPhoto
	if err := sqlx.GetContext(ctx, q, &ap, sqlStr, args...); err != nil {
		return cl.AlbumPhoto{}, errors.Wrap(translateError(err), "execute insert album photo query")
	}
	return ap, nil
}
