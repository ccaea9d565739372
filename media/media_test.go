package media_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hemoglobin-nil/hemoglobin-go/client"
	"github.com/hemoglobin-nil/hemoglobin-go/media"
)

func newTestService(t *testing.T, handler http.Handler) *media.Service {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	api, err := client.New(client.Config{BaseURL: srv.URL}, client.StaticToken("T"))
	require.NoError(t, err)
	return media.NewService(api)
}

func TestDeleteSendsTargetInBody(t *testing.T) {
	var gotMethod string
	var gotBody map[string]string
	mux := http.NewServeMux()
	mux.HandleFunc("/media/deletecampaignmedia", func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(client.Status{Success: true})
	})

	service := newTestService(t, mux)
	status, err := service.Delete(context.Background(), "m1", "c1")
	require.NoError(t, err)
	require.True(t, status.Success)
	require.Equal(t, http.MethodDelete, gotMethod)
	require.Equal(t, map[string]string{"mediaId": "m1", "campaignId": "c1"}, gotBody)
}

func TestForCampaign404IsEmptySlice(t *testing.T) {
	service := newTestService(t, http.NotFoundHandler())

	items, err := service.ForCampaign(context.Background(), "c1")
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestForCampaignQuery(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /media/getcampaignmedia", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "c1", r.URL.Query().Get("campaignId"))
		json.NewEncoder(w).Encode(map[string]any{
			"data": []media.Media{{ID: "m1", CampaignID: "c1", MediaType: "photo"}},
		})
	})

	service := newTestService(t, mux)
	items, err := service.ForCampaign(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "photo", items[0].MediaType)
}
