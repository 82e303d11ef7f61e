package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advocates/internal/domain"
)

const envelopeBody = `{"data":[
  {"firstName":"Jane","lastName":"Doe","city":"Austin","degree":"MD","specialties":["Cardiology"],"yearsOfExperience":5,"phoneNumber":5125551234},
  {"firstName":"Bob","lastName":"Roe","city":"Dallas","degree":"PhD","yearsOfExperience":12,"phoneNumber":2145559876}
]}`

func TestDecodeEnvelope(t *testing.T) {
	got, err := Decode(strings.NewReader(envelopeBody))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Jane", got[0].FirstName)
	assert.Equal(t, []string{"Cardiology"}, got[0].Specialties)
	assert.Empty(t, got[1].Specialties, "missing specialties decode as empty")
	assert.Equal(t, int64(2145559876), got[1].PhoneNumber)
}

func TestDecodeMissingDataIsEmpty(t *testing.T) {
	for _, body := range []string{`{}`, `{"data":null}`, `[]`} {
		got, err := Decode(strings.NewReader(body))
		require.NoError(t, err, body)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	}
}

func TestDecodeBareArray(t *testing.T) {
	got, err := Decode(strings.NewReader(`  [{"firstName":"Ann"}]`))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Ann", got[0].FirstName)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := Decode(strings.NewReader(`<html>`))
	assert.Error(t, err)
}

func TestHTTPSourceFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/advocates", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(envelopeBody))
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL+"/api/advocates", time.Second)
	got, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, srv.URL+"/api/advocates", src.Name())
}

func TestHTTPSourceNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "database unavailable", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewHTTPSource(srv.URL, time.Second).Fetch(context.Background())
	require.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Contains(t, err.Error(), "database unavailable")
}

func TestHTTPSourceHonoursContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := NewHTTPSource(srv.URL, 0).Fetch(ctx)
	assert.Error(t, err)
}

func TestHTTPSourceCapsBodySize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(envelopeBody))
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL, time.Second)
	src.maxBody = int64(len(envelopeBody)) - 1
	_, err := src.Fetch(context.Background())
	require.ErrorIs(t, err, ErrBodyTooLarge)

	src.maxBody = int64(len(envelopeBody))
	got, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "advocates.json")
	require.NoError(t, os.WriteFile(path, []byte(envelopeBody), 0644))

	got, err := NewFileSource(path).Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)

	_, err = NewFileSource(filepath.Join(t.TempDir(), "missing.json")).Fetch(context.Background())
	assert.Error(t, err)
}

func TestStaticSourceReturnsCopy(t *testing.T) {
	in := []domain.Advocate{{FirstName: "Jane"}}
	src := NewStaticSource("seed", in)

	got, err := src.Fetch(context.Background())
	require.NoError(t, err)
	got[0].FirstName = "changed"
	assert.Equal(t, "Jane", in[0].FirstName)
	assert.Equal(t, "seed", src.Name())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = src.Fetch(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
