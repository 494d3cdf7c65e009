package catelog

import "errors"

var ErrNotFound = errors.New("not found")
var ErrConflict = errors.New("conflict")

var ErrMissingTitle = errors.New("title must be provided in request body")
var ErrMissingYear = errors.New("year must be provided in request body")
var ErrMissingMonth = errors.New("month must be provided in request body")
var ErrMissingURL = errors.New("url must be provided in request body")

var ErrYearOutOfRange = errors.New("year is out of range")
var ErrMonthOutOfRange = errors.New("month is out of range")
var ErrAlbumYearOutOfRange = errors.New("albumYears is out of range")
var ErrAlbumMonthOutOfRange = errors.New("albumMonth is out of range")
