package catelog

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gopkg.in/guregu/null.v3"
)

// Location is a geographic point in decimal degrees.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// People is the free-form list of people tagged in a photo. Each entry is
// any JSON value, kept in compact form, and the list is stored as a JSON
// document.
type People []json.RawMessage

// UnmarshalJSON implements json.Unmarshaler.
func (p *People) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	people, err := compactPeople(raw)
	if err != nil {
		return err
	}
	*p = people
	return nil
}

// Value implements driver.Valuer. A nil list is stored as NULL.
func (p People) Value() (driver.Value, error) {
	if p == nil {
		return nil, nil
	}
	b, err := json.Marshal([]json.RawMessage(p))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (p *People) Scan(src interface{}) error {
	var b []byte
	switch v := src.(type) {
	case nil:
		*p = nil
		return nil
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("catelog: cannot scan %T into People", src)
	}
	return p.UnmarshalJSON(b)
}

// compactPeople strips insignificant whitespace, so values read back from a
// JSONB column compare equal to the ones written.
func compactPeople(raw []json.RawMessage) (People, error) {
	if raw == nil {
		return nil, nil
	}
	people := make(People, 0, len(raw))
	for _, r := range raw {
		var buf bytes.Buffer
		if err := json.Compact(&buf, r); err != nil {
			return nil, err
		}
		people = append(people, json.RawMessage(buf.Bytes()))
	}
	return people, nil
}

type Photo struct {
	ID       int64       `json:"id"`
	URL      string      `json:"url"`
	Title    null.String `json:"title"`
	People   People      `json:"people"`
	Location *Location   `json:"location"`
}

// PhotoInput is the request body accepted when uploading or updating a
// photo. The album fields select the albums an upload is associated with.
type PhotoInput struct {
	URL        null.String `json:"url"`
	Title      null.String `json:"title"`
	People     People      `json:"people"`
	Location   *Location   `json:"location"`
	AlbumTitle null.String `json:"albumTitle"`
	AlbumYear  null.Int    `json:"albumYears"`
	AlbumMonth null.Int    `json:"albumMonth"`
	IsMain     bool        `json:"isMain"`
}

type ListPhotosRes struct {
	Photos []Photo `json:"photos"`
}

type GetPhotoReq struct {
	PhotoID int64
}

type GetPhotoRes struct {
	Photo *Photo `json:"photo"`
}

// AlbumMatch selects albums by exact title, year and month.
type AlbumMatch struct {
	Title string
	Year  int
	Month int
}

type UploadPhotoReq struct {
	URL      string
	Title    null.String
	People   People
	Location *Location
	// Album is nil when the upload is not associated with any album.
	Album  *AlbumMatch
	IsMain bool
}

type UploadPhotoRes struct {
	Photo        *Photo       `json:"photo"`
	Associations []AlbumPhoto `json:"associations"`
}

type UpdatePhotoReq struct {
	PhotoID  int64
	Title    string
	People   People
	Location *Location
}

type UpdatePhotoRes struct {
	Photo *Photo `json:"photo"`
}

type DeletePhotoReq struct {
	PhotoID int64
}

// ValidateUpload reports whether the input carries what an upload needs.
func (in PhotoInput) ValidateUpload() error {
	if !in.URL.Valid || in.URL.String == "" {
		return ErrMissingURL
	}
	if in.AlbumYear.Valid && !inIntRange(in.AlbumYear.Int64) {
		return ErrAlbumYearOutOfRange
	}
	if in.AlbumMonth.Valid && !inIntRange(in.AlbumMonth.Int64) {
		return ErrAlbumMonthOutOfRange
	}
	return nil
}

// ValidateUpdate reports whether the input carries what an update needs.
func (in PhotoInput) ValidateUpdate() error {
	if !in.Title.Valid || in.Title.String == "" {
		return ErrMissingTitle
	}
	return nil
}

// AlbumMatch returns the album selector of an upload, or nil unless all of
// albumTitle, albumYears and albumMonth were provided.
func (in PhotoInput) AlbumMatch() *AlbumMatch {
	if !in.AlbumTitle.Valid || !in.AlbumYear.Valid || !in.AlbumMonth.Valid {
		return nil
	}
	return &AlbumMatch{
		Title: in.AlbumTitle.String,
		Year:  int(in.AlbumYear.Int64),
		Month: int(in.AlbumMonth.Int64),
	}
}
