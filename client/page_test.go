package client_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hemoglobin-nil/hemoglobin-go/client"
)

type item struct {
	Name string `json:"name"`
}

func TestGetPage404IsEmptyResult(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	api := newTestClient(t, handler, client.StaticToken(""))
	page, err := client.GetPage[item](context.Background(), api, "/things", 1, 10, nil)
	require.NoError(t, err)
	require.Empty(t, page.Data)
	require.Equal(t, 1, page.Page)
	require.Equal(t, 10, page.PageSize)
	require.False(t, page.HasMore)
}

func TestGetPage500IsAnError(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"down"}`, http.StatusInternalServerError)
	})

	api := newTestClient(t, handler, client.StaticToken(""))
	_, err := client.GetPage[item](context.Background(), api, "/things", 1, 10, nil)
	require.Error(t, err)
}

func TestGetPageSendsPagingParams(t *testing.T) {
	var gotPageNo, gotPageSize string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPageNo = r.URL.Query().Get("pageNo")
		gotPageSize = r.URL.Query().Get("pageSize")
		w.Write([]byte(`{"data":[{"name":"a"},{"name":"b"}]}`))
	})

	api := newTestClient(t, handler, client.StaticToken(""))
	page, err := client.GetPage[item](context.Background(), api, "/things", 3, 2, nil)
	require.NoError(t, err)
	require.Equal(t, "3", gotPageNo)
	require.Equal(t, "2", gotPageSize)

	// A full page with no totalPages synthesizes hasMore.
	require.True(t, page.HasMore)
}

func TestHasMoreFromTotalPagesWhenPresent(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"name":"a"},{"name":"b"}],"totalPages":2}`))
	})

	api := newTestClient(t, handler, client.StaticToken(""))
	page, err := client.GetPage[item](context.Background(), api, "/things", 2, 2, nil)
	require.NoError(t, err)

	// Full page, but totalPages says this is the last one.
	require.False(t, page.HasMore)
}

func TestPartialPageHasNoMore(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"name":"a"}]}`))
	})

	api := newTestClient(t, handler, client.StaticToken(""))
	page, err := client.GetPage[item](context.Background(), api, "/things", 1, 10, nil)
	require.NoError(t, err)
	require.False(t, page.HasMore)
}

func TestAccumulatorOrdersByPageNotArrival(t *testing.T) {
	acc := client.NewAccumulator[item]()

	// Page 2 resolves before page 1.
	acc.Add(client.Page[item]{
		Data: []item{{Name: "c"}, {Name: "d"}}, Page: 2, PageSize: 2,
	})
	acc.Add(client.Page[item]{
		Data: []item{{Name: "a"}, {Name: "b"}}, Page: 1, PageSize: 2, HasMore: true,
	})

	var names []string
	for _, it := range acc.Items() {
		names = append(names, it.Name)
	}
	require.Equal(t, []string{"a", "b", "c", "d"}, names)
	require.True(t, acc.EndReached())
}

func TestAccumulatorRefreshReplacesPage(t *testing.T) {
	acc := client.NewAccumulator[item]()
	acc.Add(client.Page[item]{Data: []item{{Name: "stale"}}, Page: 1, PageSize: 1, HasMore: true})
	acc.Add(client.Page[item]{Data: []item{{Name: "fresh"}}, Page: 1, PageSize: 1, HasMore: true})

	items := acc.Items()
	require.Len(t, items, 1)
	require.Equal(t, "fresh", items[0].Name)
	require.False(t, acc.EndReached())
}
