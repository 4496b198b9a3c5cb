package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

const gcsScheme = "gs://"

type Source interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

type Location struct {
	Bucket string
	Dir    string
	Name   string
}

func (l Location) IsGCS() bool { return l.Bucket != "" }

func (l Location) String() string {
	if l.IsGCS() {
		return gcsScheme + l.Bucket + "/" + l.Name
	}
	return filepath.Join(l.Dir, l.Name)
}

// ParseLocation splits "gs://bucket/path/to/object" or a filesystem path into
// the parts a Source needs.
func ParseLocation(location string) (Location, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return Location{}, fmt.Errorf("empty location")
	}

	if !strings.HasPrefix(location, gcsScheme) {
		return Location{
			Dir:  filepath.Dir(location),
			Name: filepath.Base(location),
		}, nil
	}

	rest := strings.TrimPrefix(location, gcsScheme)
	bucket, object, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || object == "" {
		return Location{}, fmt.Errorf("invalid GCS location %q, want gs://bucket/object", location)
	}

	return Location{Bucket: bucket, Name: object}, nil
}

// OpenSource returns a Source for the location together with the name to pass
// to Open. The returned close function releases any client that was created.
func OpenSource(ctx context.Context, location string) (Source, string, func() error, error) {
	loc, err := ParseLocation(location)
	if err != nil {
		return nil, "", nil, err
	}

	if !loc.IsGCS() {
		return NewLocalStorage(loc.Dir), loc.Name, func() error { return nil }, nil
	}

	gcs, err := NewGCSStorage(ctx, loc.Bucket)
	if err != nil {
		return nil, "", nil, err
	}
	return gcs, loc.Name, gcs.Close, nil
}
