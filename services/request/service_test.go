package requestservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/FrumiousOwl/Teses-front-sub000/apiclient"
	"github.com/FrumiousOwl/Teses-front-sub000/listview"
	"github.com/FrumiousOwl/Teses-front-sub000/models"
	"github.com/FrumiousOwl/Teses-front-sub000/providers/credentialstore"
	"github.com/FrumiousOwl/Teses-front-sub000/providers/loggerprovider"
	"github.com/FrumiousOwl/Teses-front-sub000/services"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRequestAPI struct {
	mu       sync.Mutex
	requests []models.HardwareRequest
	nextID   int
}

func (f *fakeRequestAPI) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/HardwareRequest":
			data, _ := jsoniter.Marshal(f.requests)
			w.Header().Set("Content-Type", "application/json")
			w.Write(data)

		case r.Method == http.MethodPost && r.URL.Path == "/HardwareRequest":
			var req models.HardwareRequest
			if err := jsoniter.NewDecoder(r.Body).Decode(&req); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			f.nextID++
			req.ID = f.nextID
			f.requests = append(f.requests, req)
			w.WriteHeader(http.StatusCreated)

		case r.Method == http.MethodPut && strings.HasPrefix(r.URL.Path, "/HardwareRequest/"):
			id, _ := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/HardwareRequest/"))
			var req models.HardwareRequest
			if err := jsoniter.NewDecoder(r.Body).Decode(&req); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			for i := range f.requests {
				if f.requests[i].ID == id {
					req.ID = id
					f.requests[i] = req
					w.WriteHeader(http.StatusOK)
					return
				}
			}
			w.WriteHeader(http.StatusNotFound)

		case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/HardwareRequest/"):
			id, _ := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/HardwareRequest/"))
			for i := range f.requests {
				if f.requests[i].ID == id {
					f.requests = append(f.requests[:i], f.requests[i+1:]...)
					w.WriteHeader(http.StatusNoContent)
					return
				}
			}
			w.WriteHeader(http.StatusNotFound)

		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

func newTestService(t *testing.T, seed ...models.HardwareRequest) (RequestService, *fakeRequestAPI) {
	t.Helper()
	fake := &fakeRequestAPI{requests: seed}
	for _, r := range seed {
		if r.ID > fake.nextID {
			fake.nextID = r.ID
		}
	}
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)

	store := credentialstore.NewFileCredentialStore(filepath.Join(t.TempDir(), "cred.json"))
	logger := loggerprovider.NewLogProvider()
	logger.InitLogger()
	api := apiclient.NewClient(srv.URL, srv.Client(), store, logger)
	return NewRequestService(api, logger), fake
}

func TestRecencySortDefaultsToNewestFirst(t *testing.T) {
	svc, _ := newTestService(t,
		models.HardwareRequest{ID: 1, NeededBy: "2024-01-10", Requester: "a"},
		models.HardwareRequest{ID: 2, NeededBy: "2024-06-01", Requester: "b"},
		models.HardwareRequest{ID: 3, NeededBy: "2024-03-15", Requester: "c"},
	)
	require.NoError(t, svc.Load(context.Background()))

	page := svc.Page()
	require.Len(t, page, 3)
	assert.Equal(t, 2, page[0].ID)

	assert.Equal(t, listview.SortAscending, svc.ToggleRecencySort())
	assert.Equal(t, 1, svc.Page()[0].ID)
}

func TestDraftValidationRequiresCoreFields(t *testing.T) {
	svc, _ := newTestService(t)
	require.NoError(t, svc.Load(context.Background()))

	svc.OpenCreate()
	svc.SetDraft(RequestDraft{Requester: "j.cruz", Department: "Accounting"})

	err := svc.SaveDraft(context.Background())
	require.ErrorIs(t, err, services.ErrValidation)
	assert.Equal(t, listview.ModalCreating, svc.Modal())
}

func TestCreateAndFulfillRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)
	require.NoError(t, svc.Load(context.Background()))

	hw := 4
	svc.OpenCreate()
	svc.SetDraft(RequestDraft{
		HardwareID:  &hw,
		NeededBy:    "2024-09-01",
		Requester:   "j.cruz",
		Department:  "Accounting",
		Workstation: "ACC-03",
		Problem:     "Monitor flickers",
		SerialNo:    "SN-2210",
	})
	require.NoError(t, svc.SaveDraft(context.Background()))
	require.Equal(t, 1, svc.TotalCount())

	created := svc.Filtered()[0]
	assert.False(t, created.Fulfilled)

	require.NoError(t, svc.SetFulfilled(context.Background(), created.ID, true))
	assert.True(t, svc.Filtered()[0].Fulfilled)
}

func TestDepartmentAndDateFiltersConjoin(t *testing.T) {
	svc, _ := newTestService(t,
		models.HardwareRequest{ID: 1, NeededBy: "2024-01-10", Requester: "a", Department: "IT"},
		models.HardwareRequest{ID: 2, NeededBy: "2024-01-22", Requester: "b", Department: "HR"},
		models.HardwareRequest{ID: 3, NeededBy: "2024-02-02", Requester: "c", Department: "IT"},
	)
	require.NoError(t, svc.Load(context.Background()))

	svc.SetDepartmentFilter("it")
	assert.Equal(t, 2, svc.FilteredCount())

	svc.SetDateFilter("2024-01")
	require.Equal(t, 1, svc.FilteredCount())
	assert.Equal(t, 1, svc.Filtered()[0].ID)
}

func TestDeleteRequest(t *testing.T) {
	svc, fake := newTestService(t,
		models.HardwareRequest{ID: 1, NeededBy: "2024-01-10", Requester: "a"},
		models.HardwareRequest{ID: 2, NeededBy: "2024-02-10", Requester: "b"},
	)
	require.NoError(t, svc.Load(context.Background()))

	require.NoError(t, svc.OpenDelete(2))
	require.NoError(t, svc.ConfirmDelete(context.Background()))

	assert.Equal(t, 1, svc.TotalCount())
	fake.mu.Lock()
	defer fake.mu.Unlock()
	require.Len(t, fake.requests, 1)
	assert.Equal(t, 1, fake.requests[0].ID)
}
