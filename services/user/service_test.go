package userservice

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

type fakeUserAPI struct {
	mu          sync.Mutex
	users       []models.UserAccount
	assignments []models.UserRoleAssignment
	registered  []RegisterDraft
	roleUpdates []RoleUpdateReq
	resets      int
	changes     int
}

func (f *fakeUserAPI) handler() http.Handler {
	writeJSON := func(w http.ResponseWriter, v interface{}) {
		data, _ := jsoniter.Marshal(v)
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/User":
			writeJSON(w, f.users)

		case r.Method == http.MethodGet && r.URL.Path == "/user-role/all":
			writeJSON(w, f.assignments)

		case r.Method == http.MethodPut && strings.HasPrefix(r.URL.Path, "/User/"):
			id, _ := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/User/"))
			var d UserDraft
			if err := jsoniter.NewDecoder(r.Body).Decode(&d); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			for i := range f.users {
				if f.users[i].ID == id {
					f.users[i].Username = d.Username
					f.users[i].Email = d.Email
					f.users[i].Phone = d.Phone
					w.WriteHeader(http.StatusOK)
					return
				}
			}
			w.WriteHeader(http.StatusNotFound)

		case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/User/"):
			id, _ := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/User/"))
			for i := range f.users {
				if f.users[i].ID == id {
					f.users = append(f.users[:i], f.users[i+1:]...)
					w.WriteHeader(http.StatusNoContent)
					return
				}
			}
			w.WriteHeader(http.StatusNotFound)

		case r.Method == http.MethodPost && r.URL.Path == "/user-role/update":
			var req RoleUpdateReq
			if err := jsoniter.NewDecoder(r.Body).Decode(&req); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			f.roleUpdates = append(f.roleUpdates, req)
			for i := range f.assignments {
				if f.assignments[i].UserID == req.UserID {
					f.assignments[i].RoleID = req.RoleID
					w.WriteHeader(http.StatusOK)
					return
				}
			}
			f.assignments = append(f.assignments, models.UserRoleAssignment{UserID: req.UserID, RoleID: req.RoleID})
			w.WriteHeader(http.StatusOK)

		case r.Method == http.MethodPost && r.URL.Path == "/account/Register":
			var d RegisterDraft
			if err := jsoniter.NewDecoder(r.Body).Decode(&d); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			f.registered = append(f.registered, d)
			f.users = append(f.users, models.UserAccount{
				ID: len(f.users) + 100, Username: d.Username, Email: d.Email, Phone: d.Phone,
			})
			w.WriteHeader(http.StatusCreated)

		case r.Method == http.MethodPost && r.URL.Path == "/account/reset-password":
			f.resets++
			w.WriteHeader(http.StatusOK)

		case r.Method == http.MethodPost && r.URL.Path == "/account/change-password":
			f.changes++
			w.WriteHeader(http.StatusOK)

		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

func newTestService(t *testing.T, fake *fakeUserAPI) UserService {
	t.Helper()
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)

	store := credentialstore.NewFileCredentialStore(filepath.Join(t.TempDir(), "cred.json"))
	logger := loggerprovider.NewLogProvider()
	logger.InitLogger()
	api := apiclient.NewClient(srv.URL, srv.Client(), store, logger)
	return NewUserService(api, logger)
}

func TestJoinFillsRolesByUserID(t *testing.T) {
	fake := &fakeUserAPI{
		users: []models.UserAccount{
			{ID: 1, Username: "m.reyes", Email: "m.reyes@teses.local"},
			{ID: 2, Username: "j.cruz", Email: "j.cruz@teses.local"},
			{ID: 3, Username: "orphan", Email: "orphan@teses.local"},
		},
		assignments: []models.UserRoleAssignment{
			{UserID: 2, RoleID: 4, RoleName: "SystemManager"},
			{UserID: 1, RoleID: 2, RoleName: "InventoryManager"},
		},
	}
	svc := newTestService(t, fake)
	require.NoError(t, svc.Load(context.Background()))

	byID := map[int]models.UserAccount{}
	for _, u := range svc.Filtered() {
		byID[u.ID] = u
	}
	assert.Equal(t, "InventoryManager", byID[1].RoleName)
	assert.Equal(t, "SystemManager", byID[2].RoleName)
	assert.Equal(t, "", byID[3].RoleName, "user with no assignment keeps zero values")
	assert.Equal(t, 0, byID[3].RoleID)
}

func TestRegisterNewAccount(t *testing.T) {
	fake := &fakeUserAPI{}
	svc := newTestService(t, fake)
	require.NoError(t, svc.Load(context.Background()))

	svc.OpenCreate()
	svc.SetRegisterDraft(RegisterDraft{Username: "new.hire", Email: "new.hire@teses.local"})
	require.ErrorIs(t, svc.SaveDraft(context.Background()), services.ErrValidation, "password is required")

	svc.SetRegisterDraft(RegisterDraft{Username: "new.hire", Email: "new.hire@teses.local", Password: "changeme"})
	require.NoError(t, svc.SaveDraft(context.Background()))

	assert.Equal(t, listview.ModalNone, svc.Modal())
	require.Len(t, fake.registered, 1)
	assert.Equal(t, 1, svc.TotalCount())
}

func TestEditAndDeleteUser(t *testing.T) {
	fake := &fakeUserAPI{
		users: []models.UserAccount{
			{ID: 1, Username: "m.reyes", Email: "m.reyes@teses.local"},
			{ID: 2, Username: "j.cruz", Email: "j.cruz@teses.local"},
		},
	}
	svc := newTestService(t, fake)
	require.NoError(t, svc.Load(context.Background()))

	require.NoError(t, svc.OpenEdit(1))
	draft := svc.EditDraft()
	draft.Phone = "0917-555-0101"
	svc.SetEditDraft(draft)
	require.NoError(t, svc.SaveDraft(context.Background()))

	byID := map[int]models.UserAccount{}
	for _, u := range svc.Filtered() {
		byID[u.ID] = u
	}
	assert.Equal(t, "0917-555-0101", byID[1].Phone)

	require.NoError(t, svc.OpenDelete(2))
	require.NoError(t, svc.ConfirmDelete(context.Background()))
	assert.Equal(t, 1, svc.TotalCount())
}

func TestUpdateRoleRoundTrips(t *testing.T) {
	fake := &fakeUserAPI{
		users:       []models.UserAccount{{ID: 5, Username: "t.santos"}},
		assignments: []models.UserRoleAssignment{{UserID: 5, RoleID: 1, RoleName: "User"}},
	}
	svc := newTestService(t, fake)
	require.NoError(t, svc.Load(context.Background()))

	require.NoError(t, svc.UpdateRole(context.Background(), 5, 3))
	require.Len(t, fake.roleUpdates, 1)
	assert.Equal(t, RoleUpdateReq{UserID: 5, RoleID: 3}, fake.roleUpdates[0])

	t.Run("unknown user is rejected before the call", func(t *testing.T) {
		require.ErrorIs(t, svc.UpdateRole(context.Background(), 999, 3), services.ErrNotFound)
		assert.Len(t, fake.roleUpdates, 1)
	})
}

func TestPasswordEndpoints(t *testing.T) {
	fake := &fakeUserAPI{}
	svc := newTestService(t, fake)

	require.ErrorIs(t, svc.ResetPassword(context.Background(), ResetPasswordReq{}), services.ErrValidation)
	require.NoError(t, svc.ResetPassword(context.Background(), ResetPasswordReq{Email: "m.reyes@teses.local"}))
	assert.Equal(t, 1, fake.resets)

	require.ErrorIs(t, svc.ChangePassword(context.Background(), ChangePasswordReq{NewPassword: "x"}), services.ErrValidation)
	require.NoError(t, svc.ChangePassword(context.Background(), ChangePasswordReq{CurrentPassword: "a", NewPassword: "b"}))
	assert.Equal(t, 1, fake.changes)
}

func TestUsernameFilter(t *testing.T) {
	fake := &fakeUserAPI{
		users: []models.UserAccount{
			{ID: 1, Username: "m.reyes", Email: "m.reyes@teses.local"},
			{ID: 2, Username: "j.cruz", Email: "j.cruz@teses.local"},
			{ID: 3, Username: "m.cruz", Email: "m.cruz@teses.local"},
		},
	}
	svc := newTestService(t, fake)
	require.NoError(t, svc.Load(context.Background()))

	svc.SetUsernameFilter("cruz")
	assert.Equal(t, 2, svc.FilteredCount())

	svc.SetEmailFilter("m.")
	assert.Equal(t, 1, svc.FilteredCount())
}
