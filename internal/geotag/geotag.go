// Package geotag reads the GPS position recorded in an image's EXIF metadata.
package geotag

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"

	cl "photo-catalog/pkg/catelog"
)

// ErrNoMetadata is returned when no EXIF block can be decoded from the input.
var ErrNoMetadata = errors.New("no EXIF data found")

// Rational is an unsigned EXIF rational, Num/Den.
type Rational struct {
	Num int64
	Den int64
}

// DecimalDegrees converts a degrees, minutes, seconds triple into decimal
// degrees. The result is negative for the "S" and "W" hemispheres.
func DecimalDegrees(dms [3]Rational, ref string) (float64, error) {
	var parts [3]float64
	for i, r := range dms {
		if r.Den == 0 {
			return 0, errors.Errorf("geotag: zero denominator in component %d", i)
		}
		parts[i] = float64(r.Num) / float64(r.Den)
	}
	deg := parts[0] + parts[1]/60 + parts[2]/3600

	switch strings.ToUpper(ref) {
	case "S", "W":
		deg = -deg
	}
	return deg, nil
}

// ReadLocation opens the image at path and decodes its location.
func ReadLocation(path string) (*cl.Location, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open image")
	}
	defer f.Close()

	return Decode(f)
}

// Decode returns the location stored in the EXIF block of r. It returns nil
// and no error when the block has no GPS latitude or longitude.
func Decode(r io.Reader) (*cl.Location, error) {
	x, err := exif.Decode(r)
	if err != nil && (x == nil || exif.IsCriticalError(err)) {
		return nil, errors.Wrap(ErrNoMetadata, err.Error())
	}

	lat, ok, err := coordinate(x, exif.GPSLatitude, exif.GPSLatitudeRef, "N")
	if err != nil || !ok {
		return nil, err
	}
	lng, ok, err := coordinate(x, exif.GPSLongitude, exif.GPSLongitudeRef, "E")
	if err != nil || !ok {
		return nil, err
	}

	return &cl.Location{
		Latitude:  lat,
		Longitude: lng,
	}, nil
}

// coordinate reads one DMS field and its hemisphere reference. A missing
// reference falls back to def.
func coordinate(x *exif.Exif, field, refField exif.FieldName, def string) (float64, bool, error) {
	tag, err := x.Get(field)
	if err != nil {
		if exif.IsTagNotPresentError(err) {
			return 0, false, nil
		}
		return 0, false, errors.Wrapf(err, "read %s", field)
	}

	dms, err := rationals(tag)
	if err != nil {
		return 0, false, errors.Wrapf(err, "read %s", field)
	}

	ref := def
	if refTag, err := x.Get(refField); err == nil {
		if s, err := refTag.StringVal(); err == nil {
			if s = strings.Trim(s, "\x00 "); s != "" {
				ref = s
			}
		}
	}

	deg, err := DecimalDegrees(dms, ref)
	if err != nil {
		return 0, false, errors.Wrapf(err, "convert %s", field)
	}
	return deg, true, nil
}

func rationals(tag *tiff.Tag) ([3]Rational, error) {
	var dms [3]Rational
	if tag.Count < 3 {
		return dms, errors.Errorf("expected 3 rationals, got %d", tag.Count)
	}
	for i := range dms {
		num, den, err := tag.Rat2(i)
		if err != nil {
			return dms, err
		}
		dms[i] = Rational{Num: num, Den: den}
	}
	return dms, nil
}
