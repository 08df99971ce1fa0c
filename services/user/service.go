package userservice

import (
	"context"
	"strconv"
	"sync"

	"github.com/FrumiousOwl/Teses-front-sub000/apiclient"
	"github.com/FrumiousOwl/Teses-front-sub000/listview"
	"github.com/FrumiousOwl/Teses-front-sub000/models"
	"github.com/FrumiousOwl/Teses-front-sub000/providers"
	"github.com/FrumiousOwl/Teses-front-sub000/services"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// UserDraft is the edit-modal form for an existing account.
type UserDraft struct {
	ID       int    `json:"id"`
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Phone    string `json:"phoneNumber"`
}

// RegisterDraft is the create-modal form, submitted to /account/Register.
type RegisterDraft struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Phone    string `json:"phoneNumber"`
}

type ChangePasswordReq struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
}

type ResetPasswordReq struct {
	Email string `json:"email" validate:"required"`
}

type RoleUpdateReq struct {
	UserID int `json:"userId"`
	RoleID int `json:"roleId"`
}

type UserService interface {
	Load(ctx context.Context) error
	Close()
	State() listview.State
	Page() []models.UserAccount
	PageIndex() int
	PageCount() int
	SetPage(n int)
	TotalCount() int
	FilteredCount() int
	Filtered() []models.UserAccount

	SetUsernameFilter(term string)
	SetEmailFilter(term string)
	ClearFilters()
	FilterTerm(name string) string

	Modal() listview.Modal
	EditDraft() UserDraft
	SetEditDraft(d UserDraft)
	RegisterDraft() RegisterDraft
	SetRegisterDraft(d RegisterDraft)
	OpenCreate()
	OpenEdit(id int) error
	OpenDelete(id int) error
	CloseModal()
	SaveDraft(ctx context.Context) error
	ConfirmDelete(ctx context.Context) error

	UpdateRole(ctx context.Context, userID, roleID int) error
	ResetPassword(ctx context.Context, req ResetPasswordReq) error
	ChangePassword(ctx context.Context, req ChangePasswordReq) error
}

var validate = validator.New()

type userService struct {
	api    *apiclient.Client
	logger providers.ZapLoggerProvider
	ctrl   *listview.Controller[models.UserAccount]

	mu       sync.Mutex
	modal    listview.Modal
	edit     UserDraft
	register RegisterDraft
	deleteID int
}

func NewUserService(api *apiclient.Client, logger providers.ZapLoggerProvider) UserService {
	s := &userService{api: api, logger: logger}
	s.ctrl = listview.NewController(s.fetchJoined, logger.GetLogger().Named("user"))
	s.ctrl.AddFilter("username", func(u models.UserAccount, term string) bool {
		return listview.Contains(u.Username, term)
	})
	s.ctrl.AddFilter("email", func(u models.UserAccount, term string) bool {
		return listview.Contains(u.Email, term)
	})
	return s
}

// fetchJoined pulls /User and /user-role/all separately and joins them in
// memory on the user id. The two calls are not transactional: a role update
// racing them can show a stale pair for one render, which this read-only view
// tolerates.
func (s *userService) fetchJoined(ctx context.Context) ([]models.UserAccount, error) {
	var users []models.UserAccount
	if err := s.api.Read(ctx, "/User", &users); err != nil {
		return nil, err
	}

	var assignments []models.UserRoleAssignment
	if err := s.api.Read(ctx, "/user-role/all", &assignments); err != nil {
		return nil, err
	}

	roleByUser := make(map[int]models.UserRoleAssignment, len(assignments))
	for _, a := range assignments {
		roleByUser[a.UserID] = a
	}
	for i := range users {
		if a, ok := roleByUser[users[i].ID]; ok {
			users[i].RoleID = a.RoleID
			users[i].RoleName = a.RoleName
		}
	}
	return users, nil
}

func (s *userService) Load(ctx context.Context) error { return s.ctrl.Load(ctx) }
func (s *userService) Close()                         { s.ctrl.Close() }
func (s *userService) State() listview.State          { return s.ctrl.State() }
func (s *userService) Page() []models.UserAccount     { return s.ctrl.Page() }
func (s *userService) PageIndex() int                 { return s.ctrl.PageIndex() }
func (s *userService) PageCount() int                 { return s.ctrl.PageCount() }
func (s *userService) SetPage(n int)                  { s.ctrl.SetPage(n) }
func (s *userService) TotalCount() int                { return s.ctrl.TotalCount() }
func (s *userService) FilteredCount() int             { return s.ctrl.FilteredCount() }
func (s *userService) Filtered() []models.UserAccount { return s.ctrl.Filtered() }

func (s *userService) SetUsernameFilter(term string)   { s.ctrl.SetFilter("username", term) }
func (s *userService) SetEmailFilter(term string)      { s.ctrl.SetFilter("email", term) }
func (s *userService) ClearFilters()                   { s.ctrl.ClearFilters() }
func (s *userService) FilterTerm(name string) string   { return s.ctrl.FilterTerm(name) }

func (s *userService) Modal() listview.Modal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.modal
}

func (s *userService) EditDraft() UserDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.edit
}

func (s *userService) SetEditDraft(d UserDraft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d.ID = s.edit.ID
	s.edit = d
}

func (s *userService) RegisterDraft() RegisterDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.register
}

func (s *userService) SetRegisterDraft(d RegisterDraft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.register = d
}

func (s *userService) OpenCreate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modal = listview.ModalCreating
	s.register = RegisterDraft{}
}

func (s *userService) OpenEdit(id int) error {
	user, ok := s.ctrl.Find(func(u models.UserAccount) bool { return u.ID == id })
	if !ok {
		return services.ErrNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modal = listview.ModalEditing
	s.edit = UserDraft{ID: user.ID, Username: user.Username, Email: user.Email, Phone: user.Phone}
	return nil
}

func (s *userService) OpenDelete(id int) error {
	if _, ok := s.ctrl.Find(func(u models.UserAccount) bool { return u.ID == id }); !ok {
		return services.ErrNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modal = listview.ModalConfirmingDelete
	s.deleteID = id
	return nil
}

func (s *userService) CloseModal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modal = listview.ModalNone
	s.edit = UserDraft{}
	s.register = RegisterDraft{}
	s.deleteID = 0
}

func (s *userService) SaveDraft(ctx context.Context) error {
	s.mu.Lock()
	modal := s.modal
	edit := s.edit
	register := s.register
	s.mu.Unlock()

	var err error
	switch modal {
	case listview.ModalEditing:
		if err = validate.Struct(edit); err != nil {
			return errors.Wrap(services.ErrValidation, err.Error())
		}
		err = s.api.Replace(ctx, "/User/"+strconv.Itoa(edit.ID), edit, nil)
	case listview.ModalCreating:
		if err = validate.Struct(register); err != nil {
			return errors.Wrap(services.ErrValidation, err.Error())
		}
		err = s.api.Create(ctx, "/account/Register", register, nil)
	default:
		return services.ErrNoModal
	}

	if err != nil {
		s.logger.GetLogger().Error("failed to save user account", zap.Error(err))
		return err
	}

	s.CloseModal()
	return s.ctrl.Load(ctx)
}

func (s *userService) ConfirmDelete(ctx context.Context) error {
	s.mu.Lock()
	modal := s.modal
	id := s.deleteID
	s.mu.Unlock()

	if modal != listview.ModalConfirmingDelete {
		return services.ErrNoModal
	}
	if err := s.api.Delete(ctx, "/User/"+strconv.Itoa(id)); err != nil {
		s.logger.GetLogger().Error("failed to delete user", zap.Int("id", id), zap.Error(err))
		return err
	}

	s.CloseModal()
	return s.ctrl.Load(ctx)
}

func (s *userService) UpdateRole(ctx context.Context, userID, roleID int) error {
	if _, ok := s.ctrl.Find(func(u models.UserAccount) bool { return u.ID == userID }); !ok {
		return services.ErrNotFound
	}
	req := RoleUpdateReq{UserID: userID, RoleID: roleID}
	if err := s.api.Create(ctx, "/user-role/update", req, nil); err != nil {
		s.logger.GetLogger().Error("failed to update user role", zap.Int("userId", userID), zap.Error(err))
		return err
	}
	return s.ctrl.Load(ctx)
}

func (s *userService) ResetPassword(ctx context.Context, req ResetPasswordReq) error {
	if err := validate.Struct(req); err != nil {
		return errors.Wrap(services.ErrValidation, err.Error())
	}
	return s.api.Create(ctx, "/account/reset-password", req, nil)
}

func (s *userService) ChangePassword(ctx context.Context, req ChangePasswordReq) error {
	if err := validate.Struct(req); err != nil {
		return errors.Wrap(services.ErrValidation, err.Error())
	}
	return s.api.Create(ctx, "/account/change-password", req, nil)
}
