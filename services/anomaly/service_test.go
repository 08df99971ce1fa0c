package anomalyservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/FrumiousOwl/Teses-front-sub000/apiclient"
	"github.com/FrumiousOwl/Teses-front-sub000/listview"
	"github.com/FrumiousOwl/Teses-front-sub000/models"
	"github.com/FrumiousOwl/Teses-front-sub000/providers/credentialstore"
	"github.com/FrumiousOwl/Teses-front-sub000/providers/loggerprovider"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, logs []models.AnomalyLog) AnomalyService {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/anomalyDetector/logs", r.URL.Path)
		data, _ := jsoniter.Marshal(logs)
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
	}))
	t.Cleanup(srv.Close)

	store := credentialstore.NewFileCredentialStore(filepath.Join(t.TempDir(), "cred.json"))
	logger := loggerprovider.NewLogProvider()
	logger.InitLogger()
	api := apiclient.NewClient(srv.URL, srv.Client(), store, logger)
	return NewAnomalyService(api, logger)
}

func TestFlaggedEntriesSortFirstByDefault(t *testing.T) {
	svc := newTestService(t, []models.AnomalyLog{
		{ID: 1, Username: "m.reyes", Action: "login", Flagged: false},
		{ID: 2, Username: "ghost", Action: "bulk delete", Flagged: true},
		{ID: 3, Username: "j.cruz", Action: "login", Flagged: false},
		{ID: 4, Username: "ghost", Action: "role change", Flagged: true},
	})
	require.NoError(t, svc.Load(context.Background()))

	page := svc.Page()
	require.Len(t, page, 4)
	assert.Equal(t, 2, page[0].ID)
	assert.Equal(t, 4, page[1].ID, "stable sort keeps fetch order within flagged entries")

	assert.Equal(t, listview.SortAscending, svc.ToggleFlaggedSort())
	assert.Equal(t, 1, svc.Page()[0].ID)
}

func TestTextFilterSpansUserActionAndAddress(t *testing.T) {
	svc := newTestService(t, []models.AnomalyLog{
		{ID: 1, Username: "m.reyes", Action: "login", IPAddress: "10.0.0.4"},
		{ID: 2, Username: "ghost", Action: "bulk delete", IPAddress: "10.0.0.9"},
		{ID: 3, Username: "j.cruz", Action: "export", IPAddress: "192.168.1.20"},
	})
	require.NoError(t, svc.Load(context.Background()))

	svc.SetTextFilter("ghost")
	assert.Equal(t, 1, svc.FilteredCount())

	svc.SetTextFilter("10.0.0")
	assert.Equal(t, 2, svc.FilteredCount())

	svc.SetTextFilter("export")
	require.Equal(t, 1, svc.FilteredCount())
	assert.Equal(t, 3, svc.Filtered()[0].ID)
}

func TestDateFilterMatchesSubstring(t *testing.T) {
	svc := newTestService(t, []models.AnomalyLog{
		{ID: 1, DetectedAt: "2024-05-01T09:12:00Z"},
		{ID: 2, DetectedAt: "2024-05-14T17:40:00Z"},
		{ID: 3, DetectedAt: "2024-06-02T08:00:00Z"},
	})
	require.NoError(t, svc.Load(context.Background()))

	svc.SetDateFilter("2024-05")
	assert.Equal(t, 2, svc.FilteredCount())
}
