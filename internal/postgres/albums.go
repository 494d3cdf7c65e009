package postgres

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	cl "photo-catalog/pkg/catelog"
)

const tableAlbums = "albums"

const (
	albumsColumnID    = `"id"`
	albumsColumnTitle = `"title"`
	albumsColumnYear  = `"year"`
	albumsColumnMonth = `"month"`
)

var albumsColumns = []string{
	albumsColumnID,
	albumsColumnTitle,
	albumsColumnYear,
	albumsColumnMonth,
}

func (p *Postgres) ListAlbums(ctx context.Context) (cl.ListAlbumsRes, error) {
	var res cl.ListAlbumsRes

	r := []cl.Album{}
	qv, err := p.buildListAlbumsQuery()
	if err != nil {
		return res, errors.Wrap(err, "build list albums query")
	}
	err = p.do(ctx, "list_albums", func(ctx context.Context) error {
		return p.sqldb.SelectContext(ctx, &r, qv.query, qv.args...)
	})
	if err != nil {
		return res, errors.Wrap(translateError(err), "execute list albums query")
	}

	res = cl.ListAlbumsRes{
		Albums: r,
	}
	return res, nil
}

func (p *Postgres) buildListAlbumsQuery() (QueryValues, error) {
	q, args, err := p.sb.
		Select(tableColumns(tableAlbums, albumsColumns)...).
		From(tableAlbums).
		OrderBy(tableColumn(tableAlbums, albumsColumnID)).
		ToSql()

	return QueryValues{q, args}, errors.Wrap(err, "list albums build query into SQL string")
}

func (p *Postgres) GetAlbum(ctx context.Context, req cl.GetAlbumReq) (cl.GetAlbumRes, error) {
	var res cl.GetAlbumRes

	var r cl.Album
	qv, err := p.buildGetAlbumQuery(req.AlbumID)
	if err != nil {
		return res, errors.Wrap(err, "build get album query")
	}
	err = p.do(ctx, "get_album", func(ctx context.Context) error {
		return p.sqldb.GetContext(ctx, &r, qv.query, qv.args...)
	})
	if err != nil {
		return res, errors.Wrap(translateError(err), "execute get album query")
	}

	res = cl.GetAlbumRes{
		Album: &r,
	}
	return res, nil
}

func (p *Postgres) buildGetAlbumQuery(id int64) (QueryValues, error) {
	q, args, err := p.sb.
		Select(tableColumns(tableAlbums, albumsColumns)...).
		From(tableAlbums).
		Where(sq.Eq{tableColumn(tableAlbums, albumsColumnID): id}).
		ToSql()

	return QueryValues{q, args}, errors.Wrap(err, "get album build query into SQL string")
}

func (p *Postgres) CreateAlbum(ctx context.Context, req cl.CreateAlbumRequest) (cl.CreateAlbumResponse, error) {
	var res cl.CreateAlbumResponse

	var r cl.Album
	qv, err := p.buildCreateAlbumQuery(req)
	if err != nil {
		return res, errors.Wrap(err, "build create album query")
	}
	err = p.do(ctx, "create_album", func(ctx context.Context) error {
		return p.sqldb.GetContext(ctx, &r, qv.query, qv.args...)
	})
	if err != nil {
		return res, errors.Wrap(translateError(err), "execute create album query")
	}

	res = cl.CreateAlbumResponse{
		Album: &r,
	}
	return res, nil
}

func (p *Postgres) buildCreateAlbumQuery(req cl.CreateAlbumRequest) (QueryValues, error) {
	q, args, err := p.sb.
		Insert(tableAlbums).
		Columns(albumsColumnTitle, albumsColumnYear, albumsColumnMonth).
		Values(req.Title, req.Year, req.Month).
		Suffix(returning(albumsColumns)).
		ToSql()

	return QueryValues{q, args}, errors.Wrap(err, "create album build query into SQL string")
}

// UpdateAlbum replaces the title, year and month of an existing album.
// ErrNotFound is returned, and nothing is written, when the album does not
// exist.
func (p *Postgres) UpdateAlbum(ctx context.Context, req cl.UpdateAlbumReq) (cl.UpdateAlbumRes, error) {
	var res cl.UpdateAlbumRes

	var r cl.Album
	qv, err := p.buildUpdateAlbumQuery(req)
	if err != nil {
		return res, errors.Wrap(err, "build update album query")
	}
	err = p.do(ctx, "update_album", func(ctx context.Context) error {
		return p.sqldb.GetContext(ctx, &r, qv.query, qv.args...)
	})
	if err != nil {
		return res, errors.Wrap(translateError(err), "execute update album query")
	}

	res = cl.UpdateAlbumRes{
		Album: &r,
	}
	return res, nil
}

func (p *Postgres) buildUpdateAlbumQuery(req cl.UpdateAlbumReq) (QueryValues, error) {
	q, args, err := p.sb.
		Update(tableAlbums).
		Set(albumsColumnTitle, req.Title).
		Set(albumsColumnYear, req.Year).
		Set(albumsColumnMonth, req.Month).
		Where(sq.Eq{albumsColumnID: req.AlbumID}).
		Suffix(returning(albumsColumns)).
		ToSql()

	return QueryValues{q, args}, errors.Wrap(err, "update album build query into SQL string")
}

// DeleteAlbum removes an album. Its album_photos rows go with it through the
// ON DELETE CASCADE foreign key.
func (p *Postgres) DeleteAlbum(ctx context.Context, req cl.DeleteAlbumReq) error {
	qv, err := p.buildDeleteAlbumQuery(req.AlbumID)
	if err != nil {
		return errors.Wrap(err, "build delete album query")
	}
	var n int64
	err = p.do(ctx, "delete_album", func(ctx context.Context) error {
		result, err := p.sqldb.ExecContext(ctx, qv.query, qv.args...)
		if err != nil {
			return err
		}
		n, err = result.RowsAffected()
		return err
	})
	if err != nil {
		return errors.Wrap(translateError(err), "execute delete album query")
	}
	if n == 0 {
		return cl.ErrNotFound
	}
	return nil
}

func (p *Postgres) buildDeleteAlbumQuery(id int64) (QueryValues, error) {
	q, args, err := p.sb.
		Delete(tableAlbums).
		Where(sq.Eq{albumsColumnID: id}).
		ToSql()

	return QueryValues{q, args}, errors.Wrap(err, "delete album build query into SQL string")
}
