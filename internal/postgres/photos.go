package postgres

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"gopkg.in/guregu/null.v3"

	cl "photo-catalog/pkg/catelog"
)

const tablePhotos = "photos"

const (
	photosColumnID        = `"id"`
	photosColumnURL       = `"url"`
	photosColumnTitle     = `"title"`
	photosColumnPeople    = `"people"`
	photosColumnLatitude  = `"latitude"`
	photosColumnLongitude = `"longitude"`
)

var photosColumns = []string{
	photosColumnID,
	photosColumnURL,
	photosColumnTitle,
	photosColumnPeople,
	photosColumnLatitude,
	photosColumnLongitude,
}

// photoRow is the flat shape of a photos row; the location is split over two
// nullable columns.
type photoRow struct {
	ID        int64       `db:"id"`
	URL       string      `db:"url"`
	Title     null.String `db:"title"`
	People    cl.People   `db:"people"`
	Latitude  null.Float  `db:"latitude"`
	Longitude null.Float  `db:"longitude"`
}

func (r photoRow) photo() cl.Photo {
	ph := cl.Photo{
		ID:     r.ID,
		URL:    r.URL,
		Title:  r.Title,
		People: r.People,
	}
	if r.Latitude.Valid && r.Longitude.Valid {
		ph.Location = &cl.Location{
			Latitude:  r.Latitude.Float64,
			Longitude: r.Longitude.Float64,
		}
	}
	return ph
}

func locationValues(loc *cl.Location) (null.Float, null.Float) {
	if loc == nil {
		return null.Float{}, null.Float{}
	}
	return null.FloatFrom(loc.Latitude), null.FloatFrom(loc.Longitude)
}

func (p *Postgres) ListPhotos(ctx context.Context) (cl.ListPhotosRes, error) {
	var res cl.ListPhotosRes

	var rows []photoRow
	qv, err := p.buildListPhotosQuery()
	if err != nil {
		return res, errors.Wrap(err, "build list photos query")
	}
	err = p.do(ctx, "list_photos", func(ctx context.Context) error {
		return p.sqldb.SelectContext(ctx, &rows, qv.query, qv.args...)
	})
	if err != nil {
		return res, errors.Wrap(translateError(err), "execute list photos query")
	}

	photos := make([]cl.Photo, 0, len(rows))
	for _, r := range rows {
		photos = append(photos, r.photo())
	}
	res = cl.ListPhotosRes{
		Photos: photos,
	}
	return res, nil
}

func (p *Postgres) buildListPhotosQuery() (QueryValues, error) {
	q, args, err := p.sb.
		Select(tableColumns(tablePhotos, photosColumns)...).
		From(tablePhotos).
		OrderBy(tableColumn(tablePhotos, photosColumnID)).
		ToSql()

	return QueryValues{q, args}, errors.Wrap(err, "list photos build query into SQL string")
}

func (p *Postgres) GetPhoto(ctx context.Context, req cl.GetPhotoReq) (cl.GetPhotoRes, error) {
	var res cl.GetPhotoRes

	var r photoRow
	qv, err := p.buildGetPhotoQuery(req.PhotoID)
	if err != nil {
		return res, errors.Wrap(err, "build get photo query")
	}
	err = p.do(ctx, "get_photo", func(ctx context.Context) error {
		return p.sqldb.GetContext(ctx, &r, qv.query, qv.args...)
	})
	if err != nil {
		return res, errors.Wrap(translateError(err), "execute get photo query")
	}

	ph := r.photo()
	res = cl.GetPhotoRes{
		Photo: &ph,
	}
	return res, nil
}

func (p *Postgres) buildGetPhotoQuery(id int64) (QueryValues, error) {
	q, args, err := p.sb.
		Select(tableColumns(tablePhotos, photosColumns)...).
		From(tablePhotos).
		Where(sq.Eq{tableColumn(tablePhotos, photosColumnID): id}).
		ToSql()

	return QueryValues{q, args}, errors.Wrap(err, "get photo build query into SQL string")
}

// UploadPhoto inserts a photo and, when req.Album is set, associates it with
// every album whose title, year and month match exactly. No album is created
// when nothing matches. All writes share one transaction.
func (p *Postgres) UploadPhoto(ctx context.Context, req cl.UploadPhotoReq) (cl.UploadPhotoRes, error) {
	var res cl.UploadPhotoRes

	err := p.do(ctx, "upload_photo", func(ctx context.Context) error {
		tx, err := p.sqldb.BeginTxx(ctx, nil)
		if err != nil {
			return errors.Wrap(err, "begin upload photo transaction")
		}
		defer func() { _ = tx.Rollback() }()

		photo, err := p.insertPhoto(ctx, tx, req)
		if err != nil {
			return err
		}

		associations := []cl.AlbumPhoto{}
		if req.Album != nil {
			albumIDs, err := p.matchAlbums(ctx, tx, *req.Album)
			if err != nil {
				return err
			}
			for _, albumID := range albumIDs {
				ap, err := p.insertAlbumPhoto(ctx, tx, albumID, photo.ID, req.IsMain)
				if err != nil {
					return err
				}
				associations = append(associations, ap)
			}
		}

		if err := tx.Commit(); err != nil {
			return errors.Wrap(err, "commit upload photo transaction")
		}
		res = cl.UploadPhotoRes{
			Photo:        &photo,
			Associations: associations,
		}
		return nil
	})
	if err != nil {
		return cl.UploadPhotoRes{}, translateError(err)
	}
	return res, nil
}

func (p *Postgres) insertPhoto(ctx context.Context, q sqlx.QueryerContext, req cl.UploadPhotoReq) (cl.Photo, error) {
	lat, lng := locationValues(req.Location)
	sqlStr, args, err := p.sb.
		Insert(tablePhotos).
		Columns(photosColumnURL, photosColumnTitle, photosColumnPeople, photosColumnLatitude, photosColumnLongitude).
		Values(req.URL, req.Title, req.People, lat, lng).
		Suffix(returning(photosColumns)).
		ToSql()
	if err != nil {
		return cl.Photo{}, errors.Wrap(err, "insert photo build query into SQL string")
	}

	var r photoRow
	if err := sqlx.GetContext(ctx, q, &r, sqlStr, args...); err != nil {
		return cl.Photo{}, errors.Wrap(translateError(err), "execute insert photo query")
	}
	return r.photo(), nil
}

func (p *Postgres) matchAlbums(ctx context.Context, q sqlx.QueryerContext, m cl.AlbumMatch) ([]int64, error) {
	sqlStr, args, err := p.sb.
		Select(tableColumn(tableAlbums, albumsColumnID)).
		From(tableAlbums).
		Where(sq.Eq{
			tableColumn(tableAlbums, albumsColumnTitle): m.Title,
			tableColumn(tableAlbums, albumsColumnYear):  m.Year,
			tableColumn(tableAlbums, albumsColumnMonth): m.Month,
		}).
		OrderBy(tableColumn(tableAlbums, albumsColumnID)).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "match albums build query into SQL string")
	}

	var ids []int64
	if err := sqlx.SelectContext(ctx, q, &ids, sqlStr, args...); err != nil {
		return nil, errors.Wrap(translateError(err), "execute match albums query")
	}
	return ids, nil
}

// UpdatePhoto replaces the title, people and location of an existing photo.
// People and location are cleared when the request leaves them out.
func (p *Postgres) UpdatePhoto(ctx context.Context, req cl.UpdatePhotoReq) (cl.UpdatePhotoRes, error) {
	var res cl.UpdatePhotoRes

	var r photoRow
	qv, err := p.buildUpdatePhotoQuery(req)
	if err != nil {
		return res, errors.Wrap(err, "build update photo query")
	}
	err = p.do(ctx, "update_photo", func(ctx context.Context) error {
		return p.sqldb.GetContext(ctx, &r, qv.query, qv.args...)
	})
	if err != nil {
		return res, errors.Wrap(translateError(err), "execute update photo query")
	}

	ph := r.photo()
	res = cl.UpdatePhotoRes{
		Photo: &ph,
	}
	return res, nil
}

func (p *Postgres) buildUpdatePhotoQuery(req cl.UpdatePhotoReq) (QueryValues, error) {
	lat, lng := locationValues(req.Location)
	q, args, err := p.sb.
		Update(tablePhotos).
		Set(photosColumnTitle, req.Title).
		Set(photosColumnPeople, req.People).
		Set(photosColumnLatitude, lat).
		Set(photosColumnLongitude, lng).
		Where(sq.Eq{photosColumnID: req.PhotoID}).
		Suffix(returning(photosColumns)).
		ToSql()

	return QueryValues{q, args}, errors.Wrap(err, "update photo build query into SQL string")
}

// DeletePhoto removes a photo together with its album_photos rows.
func (p *Postgres) DeletePhoto(ctx context.Context, req cl.DeletePhotoReq) error {
	qv, err := p.buildDeletePhotoQuery(req.PhotoID)
	if err != nil {
		return errors.Wrap(err, "build delete photo query")
	}
	var n int64
	err = p.do(ctx, "delete_photo", func(ctx context.Context) error {
		result, err := p.sqldb.ExecContext(ctx, qv.query, qv.args...)
		if err != nil {
			return err
		}
		n, err = result.RowsAffected()
		return err
	})
	if err != nil {
		return errors.Wrap(translateError(err), "execute delete photo query")
	}
	if n == 0 {
		return cl.ErrNotFound
	}
	return nil
}

func (p *Postgres) buildDeletePhotoQuery(id int64) (QueryValues, error) {
	q, args, err := p.sb.
		Delete(tablePhotos).
		Where(sq.Eq{photosColumnID: id}).
		ToSql()

	return QueryValues{q, args}, errors.Wrap(err, "delete photo build query into SQL string")
}
