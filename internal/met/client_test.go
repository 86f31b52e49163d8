package met_test

import (
	"context"
	"errors"
	"fmt"
	nethttp "net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gorilla/mux"
	"github.com/handiism/met-downloader/internal/http"
	"github.com/handiism/met-downloader/internal/met"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCollection serves a tiny version of the collection API.
type fakeCollection struct {
	objects      map[int]string
	searches     map[string]string
	objectHits   map[int]int
	listingCalls int
}

func newFakeCollection() *fakeCollection {
	return &fakeCollection{
		objects: map[int]string{
			436535: `{"objectID":436535,"isPublicDomain":true,"primaryImage":"https://images.metmuseum.org/DT1567.jpg","title":"Wheat Field with Cypresses","artistDisplayName":"Vincent van Gogh","objectDate":"1889","medium":"Oil on canvas","department":"European Paintings","objectURL":"https://www.metmuseum.org/art/collection/search/436535"}`,
			1:      `{"objectID":1,"primaryImage":"","title":"One-dollar Liberty Head Coin"}`,
			7:      `{"primaryImage":"https://images.metmuseum.org/7.jpg","title":"No ID in record"}`,
		},
		searches: map[string]string{
			"sunflowers": `{"total":3,"objectIDs":[436535,1,7]}`,
			"nothing":    `{"total":0,"objectIDs":null}`,
		},
		objectHits: map[int]int{},
	}
}

func (f *fakeCollection) router() nethttp.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/search", func(w nethttp.ResponseWriter, req *nethttp.Request) {
		body, ok := f.searches[req.URL.Query().Get("q")]
		if !ok {
			w.WriteHeader(nethttp.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, body)
	})

	r.HandleFunc("/objects", func(w nethttp.ResponseWriter, req *nethttp.Request) {
		f.listingCalls++
		fmt.Fprint(w, `{"total":2,"objectIDs":[1,7]}`)
	})

	r.HandleFunc("/objects/{id}", func(w nethttp.ResponseWriter, req *nethttp.Request) {
		id, err := strconv.Atoi(mux.Vars(req)["id"])
		if err != nil {
			w.WriteHeader(nethttp.StatusBadRequest)
			return
		}
		f.objectHits[id]++

		body, ok := f.objects[id]
		if !ok {
			w.WriteHeader(nethttp.StatusNotFound)
			fmt.Fprint(w, `{"message":"ObjectID not found"}`)
			return
		}
		fmt.Fprint(w, body)
	})

	r.HandleFunc("/broken/objects/{id}", func(w nethttp.ResponseWriter, req *nethttp.Request) {
		fmt.Fprint(w, `{"objectID": "not a number"`)
	})

	r.HandleFunc("/images/{name}", func(w nethttp.ResponseWriter, req *nethttp.Request) {
		fmt.Fprintf(w, "image:%s", mux.Vars(req)["name"])
	})

	return r
}

func newTestClient(t *testing.T) (*met.Client, *fakeCollection, *httptest.Server) {
	t.Helper()
	fake := newFakeCollection()
	srv := httptest.NewServer(fake.router())
	t.Cleanup(srv.Close)

	client := met.NewClient(http.NewClient("met-test", 0), srv.URL+"/")
	return client, fake, srv
}

func TestClient_Search(t *testing.T) {
	client, _, _ := newTestClient(t)

	ids, err := client.Search(context.Background(), "sunflowers")
	require.NoError(t, err)
	assert.Equal(t, []int{436535, 1, 7}, ids)
}

func TestClient_SearchNoResults(t *testing.T) {
	client, _, _ := newTestClient(t)

	ids, err := client.Search(context.Background(), "nothing")
	require.NoError(t, err)
	assert.NotNil(t, ids)
	assert.Empty(t, ids)
}

func TestClient_SearchWithoutQueryListsObjects(t *testing.T) {
	client, fake, _ := newTestClient(t)

	ids, err := client.Search(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 7}, ids)
	assert.Equal(t, 1, fake.listingCalls)
}

func TestClient_SearchFailure(t *testing.T) {
	client, _, _ := newTestClient(t)

	_, err := client.Search(context.Background(), "server error")
	require.Error(t, err)

	var statusErr *http.StatusError
	assert.True(t, errors.As(err, &statusErr))
}

func TestClient_Fetch(t *testing.T) {
	client, _, _ := newTestClient(t)

	art, err := client.Fetch(context.Background(), 436535)
	require.NoError(t, err)

	assert.Equal(t, 436535, art.ID)
	assert.Equal(t, "Wheat Field with Cypresses", art.Title)
	assert.Equal(t, "Vincent van Gogh", art.Artist)
	assert.Equal(t, "1889", art.Date)
	assert.Equal(t, "Oil on canvas", art.Medium)
	assert.Equal(t, "European Paintings", art.Department)
	assert.True(t, art.PublicDomain)
	assert.True(t, art.HasImage())
	assert.Contains(t, string(art.Raw), `"objectURL"`)
}

func TestClient_FetchWithoutImage(t *testing.T) {
	client, _, _ := newTestClient(t)

	art, err := client.Fetch(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, art.HasImage())
}

func TestClient_FetchFallsBackToRequestedID(t *testing.T) {
	client, _, _ := newTestClient(t)

	art, err := client.Fetch(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 7, art.ID)
}

func TestClient_FetchMemoizes(t *testing.T) {
	client, fake, _ := newTestClient(t)

	first, err := client.Fetch(context.Background(), 436535)
	require.NoError(t, err)
	second, err := client.Fetch(context.Background(), 436535)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, fake.objectHits[436535])
}

func TestClient_FetchNotFound(t *testing.T) {
	client, _, _ := newTestClient(t)

	_, err := client.Fetch(context.Background(), 999)
	assert.ErrorIs(t, err, met.ErrNotFound)
}

func TestClient_FetchMalformed(t *testing.T) {
	_, _, srv := newTestClient(t)
	client := met.NewClient(http.NewClient("met-test", 0), srv.URL+"/broken")

	_, err := client.Fetch(context.Background(), 5)
	require.Error(t, err)
	assert.NotErrorIs(t, err, met.ErrNotFound)
}

func TestClient_Image(t *testing.T) {
	client, _, srv := newTestClient(t)

	data, err := client.Image(context.Background(), srv.URL+"/images/DT1567.jpg")
	require.NoError(t, err)
	assert.Equal(t, "image:DT1567.jpg", string(data))

	_, err = client.Image(context.Background(), srv.URL+"/missing/DT1567.jpg")
	assert.Error(t, err)
}
