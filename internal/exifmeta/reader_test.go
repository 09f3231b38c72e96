package exifmeta_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"base36-images/internal/exifmeta"
	"base36-images/internal/exifmeta/exiftest"
	"base36-images/internal/naming"
)

func TestRead_DateTimeAndArtist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.jpg")
	exiftest.Write(t, path,
		exiftest.DateTime("2023:03:05 09:05:03"),
		exiftest.Artist("Jane Quincy Doe"),
	)

	md, err := exifmeta.Read(path)
	require.NoError(t, err)
	require.NotNil(t, md.Moment)
	assert.Equal(t, naming.Moment{Year: 2023, Month: 3, Day: 5, Hour: 9, Minute: 5, Second: 3}, *md.Moment)
	assert.Equal(t, exifmeta.Author{Name: "Jane Quincy Doe", Present: true}, md.Author)
}

func TestRead_WallClockInDSTGap(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skipf("tzdata not available: %v", err)
	}
	saved := time.Local
	time.Local = berlin
	t.Cleanup(func() { time.Local = saved })

	// 02:30 does not exist in Berlin on 2023-03-26; clocks jump to 03:00.
	path := filepath.Join(t.TempDir(), "a.jpg")
	exiftest.Write(t, path, exiftest.DateTime("2023:03:26 02:30:00"))

	md, err := exifmeta.Read(path)
	require.NoError(t, err)
	require.NotNil(t, md.Moment)
	assert.Equal(t, naming.Moment{Year: 2023, Month: 3, Day: 26, Hour: 2, Minute: 30, Second: 0}, *md.Moment)
}

func TestRead_MissingArtist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.jpg")
	exiftest.Write(t, path, exiftest.DateTime("2024:12:31 23:59:59"))

	md, err := exifmeta.Read(path)
	require.NoError(t, err)
	require.NotNil(t, md.Moment)
	assert.False(t, md.Author.Present)
}

func TestRead_NonTextArtist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.jpg")
	exiftest.Write(t, path,
		exiftest.DateTime("2024:12:31 23:59:59"),
		exiftest.Short(exiftest.TagArtist, 7),
	)

	md, err := exifmeta.Read(path)
	require.NoError(t, err)
	assert.False(t, md.Author.Present)
}

func TestRead_MissingDateTime(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.jpg")
	exiftest.Write(t, path, exiftest.Artist("Jane Doe"))

	md, err := exifmeta.Read(path)
	require.NoError(t, err)
	assert.Nil(t, md.Moment)
	assert.True(t, md.Author.Present)
}

func TestRead_MalformedDateTime(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.jpg")
	exiftest.Write(t, path, exiftest.DateTime("not a date at all"))

	md, err := exifmeta.Read(path)
	require.NoError(t, err)
	assert.Nil(t, md.Moment)
}

func TestRead_NoExif(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.jpg")
	require.NoError(t, os.WriteFile(path, []byte("this is not an image"), 0o644))

	_, err := exifmeta.Read(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, exifmeta.ErrUnreadable)
}

func TestRead_MissingFile(t *testing.T) {
	_, err := exifmeta.Reader{}.Read(filepath.Join(t.TempDir(), "missing.jpg"))
	assert.ErrorIs(t, err, exifmeta.ErrUnreadable)
}
