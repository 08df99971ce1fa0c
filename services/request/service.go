package requestservice

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

// RequestDraft is the modal-bound SRRF form.
type RequestDraft struct {
	ID          int    `json:"srrfId"`
	HardwareID  *int   `json:"requestedHardwareId,omitempty"`
	NeededBy    string `json:"neededBy" validate:"required"`
	Requester   string `json:"requester" validate:"required"`
	Department  string `json:"department" validate:"required"`
	Workstation string `json:"workstation" validate:"required"`
	Problem     string `json:"problem" validate:"required"`
	SerialNo    string `json:"serialNo"`
	Fulfilled   bool   `json:"fulfilled"`
}

type RequestService interface {
	Load(ctx context.Context) error
	Close()
	State() listview.State
	Page() []models.HardwareRequest
	PageIndex() int
	PageCount() int
	SetPage(n int)
	TotalCount() int
	FilteredCount() int
	Filtered() []models.HardwareRequest

	SetRequesterFilter(term string)
	SetDepartmentFilter(term string)
	SetDateFilter(term string)
	ClearFilters()
	FilterTerm(name string) string
	ToggleRecencySort() listview.SortOrder
	SetRecencySort(order listview.SortOrder)

	Modal() listview.Modal
	Draft() RequestDraft
	SetDraft(d RequestDraft)
	OpenCreate()
	OpenEdit(id int) error
	OpenDelete(id int) error
	CloseModal()
	SaveDraft(ctx context.Context) error
	ConfirmDelete(ctx context.Context) error

	SetFulfilled(ctx context.Context, id int, fulfilled bool) error
}

var validate = validator.New()

type requestService struct {
	api    *apiclient.Client
	logger providers.ZapLoggerProvider
	ctrl   *listview.Controller[models.HardwareRequest]

	mu       sync.Mutex
	modal    listview.Modal
	draft    RequestDraft
	deleteID int
}

func NewRequestService(api *apiclient.Client, logger providers.ZapLoggerProvider) RequestService {
	s := &requestService{api: api, logger: logger}

	fetch := func(ctx context.Context) ([]models.HardwareRequest, error) {
		var reqs []models.HardwareRequest
		if err := api.Read(ctx, "/HardwareRequest", &reqs); err != nil {
			return nil, err
		}
		return reqs, nil
	}

	s.ctrl = listview.NewController(fetch, logger.GetLogger().Named("request"))
	s.ctrl.AddFilter("requester", func(r models.HardwareRequest, term string) bool {
		return listview.Contains(r.Requester, term)
	})
	s.ctrl.AddFilter("department", func(r models.HardwareRequest, term string) bool {
		return listview.Contains(r.Department, term)
	})
	s.ctrl.AddFilter("date", func(r models.HardwareRequest, term string) bool {
		return listview.Contains(r.NeededBy, term)
	})
	// recency sort on the needed-by date, newest first by default
	s.ctrl.SetSort(func(a, b models.HardwareRequest) bool {
		return a.NeededBy < b.NeededBy
	}, true)
	return s
}

func (s *requestService) Load(ctx context.Context) error   { return s.ctrl.Load(ctx) }
func (s *requestService) Close()                           { s.ctrl.Close() }
func (s *requestService) State() listview.State            { return s.ctrl.State() }
func (s *requestService) Page() []models.HardwareRequest   { return s.ctrl.Page() }
func (s *requestService) PageIndex() int                   { return s.ctrl.PageIndex() }
func (s *requestService) PageCount() int                   { return s.ctrl.PageCount() }
func (s *requestService) SetPage(n int)                    { s.ctrl.SetPage(n) }
func (s *requestService) TotalCount() int                  { return s.ctrl.TotalCount() }
func (s *requestService) FilteredCount() int               { return s.ctrl.FilteredCount() }
func (s *requestService) Filtered() []models.HardwareRequest {
	return s.ctrl.Filtered()
}

func (s *requestService) SetRequesterFilter(term string)  { s.ctrl.SetFilter("requester", term) }
func (s *requestService) SetDepartmentFilter(term string) { s.ctrl.SetFilter("department", term) }
func (s *requestService) SetDateFilter(term string)       { s.ctrl.SetFilter("date", term) }
func (s *requestService) ClearFilters()                   { s.ctrl.ClearFilters() }
func (s *requestService) FilterTerm(name string) string   { return s.ctrl.FilterTerm(name) }

func (s *requestService) ToggleRecencySort() listview.SortOrder {
	return s.ctrl.CycleSort()
}

func (s *requestService) SetRecencySort(order listview.SortOrder) {
	s.ctrl.SetOrder(order)
}

func (s *requestService) Modal() listview.Modal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.modal
}

func (s *requestService) Draft() RequestDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

func (s *requestService) SetDraft(d RequestDraft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d.ID = s.draft.ID
	s.draft = d
}

func (s *requestService) OpenCreate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modal = listview.ModalCreating
	s.draft = RequestDraft{}
}

func (s *requestService) OpenEdit(id int) error {
	req, ok := s.ctrl.Find(func(r models.HardwareRequest) bool { return r.ID == id })
	if !ok {
		return services.ErrNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modal = listview.ModalEditing
	s.draft = RequestDraft{
		ID:          req.ID,
		HardwareID:  req.HardwareID,
		NeededBy:    req.NeededBy,
		Requester:   req.Requester,
		Department:  req.Department,
		Workstation: req.Workstation,
		Problem:     req.Problem,
		SerialNo:    req.SerialNo,
		Fulfilled:   req.Fulfilled,
	}
	return nil
}

func (s *requestService) OpenDelete(id int) error {
	if _, ok := s.ctrl.Find(func(r models.HardwareRequest) bool { return r.ID == id }); !ok {
		return services.ErrNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modal = listview.ModalConfirmingDelete
	s.deleteID = id
	return nil
}

func (s *requestService) CloseModal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modal = listview.ModalNone
	s.draft = RequestDraft{}
	s.deleteID = 0
}

func (s *requestService) SaveDraft(ctx context.Context) error {
	s.mu.Lock()
	modal := s.modal
	draft := s.draft
	s.mu.Unlock()

	if modal != listview.ModalCreating && modal != listview.ModalEditing {
		return services.ErrNoModal
	}
	if err := validate.Struct(draft); err != nil {
		return errors.Wrap(services.ErrValidation, err.Error())
	}

	req := models.HardwareRequest{
		ID:          draft.ID,
		HardwareID:  draft.HardwareID,
		NeededBy:    draft.NeededBy,
		Requester:   draft.Requester,
		Department:  draft.Department,
		Workstation: draft.Workstation,
		Problem:     draft.Problem,
		SerialNo:    draft.SerialNo,
		Fulfilled:   draft.Fulfilled,
	}

	var err error
	if modal == listview.ModalEditing {
		err = s.api.Replace(ctx, "/HardwareRequest/"+strconv.Itoa(req.ID), req, nil)
	} else {
		err = s.api.Create(ctx, "/HardwareRequest", req, nil)
	}
	if err != nil {
		s.logger.GetLogger().Error("failed to save hardware request", zap.Error(err))
		return err
	}

	s.CloseModal()
	return s.ctrl.Load(ctx)
}

func (s *requestService) ConfirmDelete(ctx context.Context) error {
	s.mu.Lock()
	modal := s.modal
	id := s.deleteID
	s.mu.Unlock()

	if modal != listview.ModalConfirmingDelete {
		return services.ErrNoModal
	}
	if err := s.api.Delete(ctx, "/HardwareRequest/"+strconv.Itoa(id)); err != nil {
		s.logger.GetLogger().Error("failed to delete hardware request", zap.Int("srrfId", id), zap.Error(err))
		return err
	}

	s.CloseModal()
	return s.ctrl.Load(ctx)
}

// SetFulfilled flips the fulfilled flag through a full replace, then refetches.
func (s *requestService) SetFulfilled(ctx context.Context, id int, fulfilled bool) error {
	req, ok := s.ctrl.Find(func(r models.HardwareRequest) bool { return r.ID == id })
	if !ok {
		return services.ErrNotFound
	}
	req.Fulfilled = fulfilled

	if err := s.api.Replace(ctx, "/HardwareRequest/"+strconv.Itoa(id), req, nil); err != nil {
		s.logger.GetLogger().Error("failed to update request fulfillment", zap.Int("srrfId", id), zap.Error(err))
		return err
	}
	return s.ctrl.Load(ctx)
}
