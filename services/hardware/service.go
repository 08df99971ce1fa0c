package hardwareservice

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

type HardwareService interface {
	Load(ctx context.Context) error
	Close()
	State() listview.State
	Page() []models.HardwareAsset
	PageIndex() int
	PageCount() int
	SetPage(n int)
	TotalCount() int
	FilteredCount() int
	Filtered() []models.HardwareAsset

	SetNameFilter(term string)
	SetSupplierFilter(term string)
	SetDateFilter(term string)
	ClearFilters()
	FilterTerm(name string) string

	Modal() listview.Modal
	Draft() HardwareDraft
	SetDraft(d HardwareDraft)
	OpenCreate()
	OpenEdit(id int) error
	OpenDelete(id int) error
	CloseModal()
	SaveDraft(ctx context.Context) error
	ConfirmDelete(ctx context.Context) error

	AdjustCounter(ctx context.Context, id int, field CounterField, delta int) error
}

var validate = validator.New()

type hardwareService struct {
	api    *apiclient.Client
	logger providers.ZapLoggerProvider
	ctrl   *listview.Controller[models.HardwareAsset]

	mu       sync.Mutex
	modal    listview.Modal
	draft    HardwareDraft
	deleteID int
}

// NewHardwareService is the main inventory view over the full /Hardware set.
func NewHardwareService(api *apiclient.Client, logger providers.ZapLoggerProvider) HardwareService {
	return newService(api, logger, nil)
}

// NewDefectiveService lists only assets with at least one defective unit. It
// fetches independently of the main inventory view.
func NewDefectiveService(api *apiclient.Client, logger providers.ZapLoggerProvider) HardwareService {
	return newService(api, logger, func(a models.HardwareAsset) bool {
		return a.Defective > 0
	})
}

// NewLowStockService lists only assets at or under the low-stock threshold,
// again with its own independent fetch.
func NewLowStockService(api *apiclient.Client, logger providers.ZapLoggerProvider) HardwareService {
	return newService(api, logger, models.HardwareAsset.IsLowStock)
}

func newService(api *apiclient.Client, logger providers.ZapLoggerProvider, scope func(models.HardwareAsset) bool) *hardwareService {
	s := &hardwareService{api: api, logger: logger}

	fetch := func(ctx context.Context) ([]models.HardwareAsset, error) {
		var assets []models.HardwareAsset
		if err := api.Read(ctx, "/Hardware", &assets); err != nil {
			return nil, err
		}
		if scope == nil {
			return assets, nil
		}
		kept := make([]models.HardwareAsset, 0, len(assets))
		for _, a := range assets {
			if scope(a) {
				kept = append(kept, a)
			}
		}
		return kept, nil
	}

	s.ctrl = listview.NewController(fetch, logger.GetLogger().Named("hardware"))
	s.ctrl.AddFilter("name", func(a models.HardwareAsset, term string) bool {
		return listview.Contains(a.Name, term) || listview.Contains(a.Description, term)
	})
	s.ctrl.AddFilter("supplier", func(a models.HardwareAsset, term string) bool {
		return listview.Contains(a.Supplier, term)
	})
	s.ctrl.AddFilter("date", func(a models.HardwareAsset, term string) bool {
		return listview.Contains(a.PurchaseDate, term)
	})
	return s
}

func (s *hardwareService) Load(ctx context.Context) error { return s.ctrl.Load(ctx) }
func (s *hardwareService) Close()                         { s.ctrl.Close() }
func (s *hardwareService) State() listview.State          { return s.ctrl.State() }
func (s *hardwareService) Page() []models.HardwareAsset   { return s.ctrl.Page() }
func (s *hardwareService) PageIndex() int                 { return s.ctrl.PageIndex() }
func (s *hardwareService) PageCount() int                 { return s.ctrl.PageCount() }
func (s *hardwareService) SetPage(n int)                  { s.ctrl.SetPage(n) }
func (s *hardwareService) TotalCount() int                { return s.ctrl.TotalCount() }
func (s *hardwareService) FilteredCount() int             { return s.ctrl.FilteredCount() }
func (s *hardwareService) Filtered() []models.HardwareAsset {
	return s.ctrl.Filtered()
}

func (s *hardwareService) SetNameFilter(term string)       { s.ctrl.SetFilter("name", term) }
func (s *hardwareService) SetSupplierFilter(term string)   { s.ctrl.SetFilter("supplier", term) }
func (s *hardwareService) SetDateFilter(term string)       { s.ctrl.SetFilter("date", term) }
func (s *hardwareService) ClearFilters()                   { s.ctrl.ClearFilters() }
func (s *hardwareService) FilterTerm(name string) string   { return s.ctrl.FilterTerm(name) }

func (s *hardwareService) Modal() listview.Modal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.modal
}

func (s *hardwareService) Draft() HardwareDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

func (s *hardwareService) SetDraft(d HardwareDraft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d.ID = s.draft.ID // the bound record never changes mid-modal
	s.draft = d
}

func (s *hardwareService) OpenCreate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modal = listview.ModalCreating
	s.draft = HardwareDraft{}
}

func (s *hardwareService) OpenEdit(id int) error {
	asset, ok := s.ctrl.Find(func(a models.HardwareAsset) bool { return a.ID == id })
	if !ok {
		return services.ErrNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modal = listview.ModalEditing
	s.draft = draftFromAsset(asset)
	return nil
}

func (s *hardwareService) OpenDelete(id int) error {
	if _, ok := s.ctrl.Find(func(a models.HardwareAsset) bool { return a.ID == id }); !ok {
		return services.ErrNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modal = listview.ModalConfirmingDelete
	s.deleteID = id
	return nil
}

// CloseModal discards the draft with no side effect, success and cancel alike.
func (s *hardwareService) CloseModal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modal = listview.ModalNone
	s.draft = HardwareDraft{}
	s.deleteID = 0
}

func (s *hardwareService) SaveDraft(ctx context.Context) error {
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

	asset := draft.toAsset()
	if err := checkCounters(asset); err != nil {
		return err
	}

	var err error
	if modal == listview.ModalEditing {
		err = s.api.Replace(ctx, "/Hardware/"+strconv.Itoa(asset.ID), asset, nil)
	} else {
		err = s.api.Create(ctx, "/Hardware", asset, nil)
	}
	if err != nil {
		// modal stays open, the console trace is the only surface in this view
		s.logger.GetLogger().Error("failed to save hardware asset", zap.Error(err))
		return err
	}

	s.CloseModal()
	return s.ctrl.Load(ctx)
}

func (s *hardwareService) ConfirmDelete(ctx context.Context) error {
	s.mu.Lock()
	modal := s.modal
	id := s.deleteID
	s.mu.Unlock()

	if modal != listview.ModalConfirmingDelete {
		return services.ErrNoModal
	}

	if err := s.api.Delete(ctx, "/Hardware/"+strconv.Itoa(id)); err != nil {
		s.logger.GetLogger().Error("failed to delete hardware asset", zap.Int("aid", id), zap.Error(err))
		return err
	}

	s.CloseModal()
	return s.ctrl.Load(ctx)
}

// AdjustCounter bumps one counter by delta. A change that breaks the counter
// invariant is rejected before any API call is made.
func (s *hardwareService) AdjustCounter(ctx context.Context, id int, field CounterField, delta int) error {
	asset, ok := s.ctrl.Find(func(a models.HardwareAsset) bool { return a.ID == id })
	if !ok {
		return services.ErrNotFound
	}

	changed, err := ApplyCounterChange(asset, field, delta)
	if err != nil {
		return err
	}

	if err := s.api.Replace(ctx, "/Hardware/"+strconv.Itoa(id), changed, nil); err != nil {
		s.logger.GetLogger().Error("failed to update hardware counters", zap.Int("aid", id), zap.Error(err))
		return err
	}
	return s.ctrl.Load(ctx)
}
