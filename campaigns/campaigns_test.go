package campaigns_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hemoglobin-nil/hemoglobin-go/campaigns"
	"github.com/hemoglobin-nil/hemoglobin-go/client"
)

func newTestService(t *testing.T, handler http.Handler) *campaigns.Service {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	api, err := client.New(client.Config{BaseURL: srv.URL}, client.StaticToken("T"))
	require.NoError(t, err)
	return campaigns.NewService(api)
}

func TestAllPagination(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /campaign/getall", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "2", r.URL.Query().Get("pageNo"))
		require.Equal(t, "5", r.URL.Query().Get("pageSize"))
		json.NewEncoder(w).Encode(map[string]any{
			"data":       []campaigns.Campaign{{ID: "c1", Name: "Winter Drive"}},
			"totalPages": 2,
		})
	})

	service := newTestService(t, mux)
	page, err := service.All(context.Background(), 2, 5)
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	require.Equal(t, "Winter Drive", page.Data[0].Name)
	require.False(t, page.HasMore)
}

func TestRunningAndUpcoming404IsEmpty(t *testing.T) {
	service := newTestService(t, http.NotFoundHandler())

	page, err := service.RunningAndUpcoming(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Empty(t, page.Data)
}

func TestByIDNotFoundIsAnError(t *testing.T) {
	service := newTestService(t, http.NotFoundHandler())

	_, err := service.ByID(context.Background(), "missing")
	require.Error(t, err)
	require.True(t, client.IsNotFound(err))
}

func TestDelete(t *testing.T) {
	var gotMethod, gotPath string
	mux := http.NewServeMux()
	mux.HandleFunc("/campaign/delete/c1", func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(client.Status{Success: true})
	})

	service := newTestService(t, mux)
	status, err := service.Delete(context.Background(), "c1")
	require.NoError(t, err)
	require.Equal(t, http.MethodDelete, gotMethod)
	require.Equal(t, "/campaign/delete/c1", gotPath)
	require.True(t, status.Success)
}

func TestCreateIsMultipart(t *testing.T) {
	var gotContentType string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /campaign/create", func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, r.ParseMultipartForm(1<<20))
		require.Equal(t, "Winter Drive", r.FormValue("name"))

		file, header, err := r.FormFile("banner")
		require.NoError(t, err)
		defer file.Close()
		require.Equal(t, "banner.png", header.Filename)

		json.NewEncoder(w).Encode(client.Status{Success: true})
	})

	service := newTestService(t, mux)
	form := client.NewForm().
		Set("name", "Winter Drive").
		SetFile("banner", "banner.png", strings.NewReader("fake-png"))

	status, err := service.Create(context.Background(), form)
	require.NoError(t, err)
	require.True(t, status.Success)
	require.Contains(t, gotContentType, "multipart/form-data")
}
