package anomalyservice

import (
	"context"

	"github.com/FrumiousOwl/Teses-front-sub000/apiclient"
	"github.com/FrumiousOwl/Teses-front-sub000/listview"
	"github.com/FrumiousOwl/Teses-front-sub000/models"
	"github.com/FrumiousOwl/Teses-front-sub000/providers"
)

// AnomalyService is the read-only view over /anomalyDetector/logs. No modals:
// the log is append-only server-side and only filtered and sorted here.
type AnomalyService interface {
	Load(ctx context.Context) error
	Close()
	State() listview.State
	Page() []models.AnomalyLog
	PageIndex() int
	PageCount() int
	SetPage(n int)
	TotalCount() int
	FilteredCount() int
	Filtered() []models.AnomalyLog

	SetTextFilter(term string)
	SetDateFilter(term string)
	ClearFilters()
	FilterTerm(name string) string
	ToggleFlaggedSort() listview.SortOrder
	SetFlaggedSort(order listview.SortOrder)
}

type anomalyService struct {
	ctrl *listview.Controller[models.AnomalyLog]
}

func NewAnomalyService(api *apiclient.Client, logger providers.ZapLoggerProvider) AnomalyService {
	fetch := func(ctx context.Context) ([]models.AnomalyLog, error) {
		var logs []models.AnomalyLog
		if err := api.Read(ctx, "/anomalyDetector/logs", &logs); err != nil {
			return nil, err
		}
		return logs, nil
	}

	ctrl := listview.NewController(fetch, logger.GetLogger().Named("anomaly"))
	ctrl.AddFilter("text", func(l models.AnomalyLog, term string) bool {
		return listview.Contains(l.Username, term) ||
			listview.Contains(l.Action, term) ||
			listview.Contains(l.IPAddress, term)
	})
	ctrl.AddFilter("date", func(l models.AnomalyLog, term string) bool {
		return listview.Contains(l.DetectedAt, term)
	})
	// flagged entries first, ties broken by the fetch order
	ctrl.SetSort(func(a, b models.AnomalyLog) bool {
		return !a.Flagged && b.Flagged
	}, true)

	return &anomalyService{ctrl: ctrl}
}

func (s *anomalyService) Load(ctx context.Context) error { return s.ctrl.Load(ctx) }
func (s *anomalyService) Close()                         { s.ctrl.Close() }
func (s *anomalyService) State() listview.State          { return s.ctrl.State() }
func (s *anomalyService) Page() []models.AnomalyLog      { return s.ctrl.Page() }
func (s *anomalyService) PageIndex() int                 { return s.ctrl.PageIndex() }
func (s *anomalyService) PageCount() int                 { return s.ctrl.PageCount() }
func (s *anomalyService) SetPage(n int)                  { s.ctrl.SetPage(n) }
func (s *anomalyService) TotalCount() int                { return s.ctrl.TotalCount() }
func (s *anomalyService) FilteredCount() int             { return s.ctrl.FilteredCount() }
func (s *anomalyService) Filtered() []models.AnomalyLog  { return s.ctrl.Filtered() }

func (s *anomalyService) SetTextFilter(term string)     { s.ctrl.SetFilter("text", term) }
func (s *anomalyService) SetDateFilter(term string)     { s.ctrl.SetFilter("date", term) }
func (s *anomalyService) ClearFilters()                 { s.ctrl.ClearFilters() }
func (s *anomalyService) FilterTerm(name string) string { return s.ctrl.FilterTerm(name) }

func (s *anomalyService) ToggleFlaggedSort() listview.SortOrder {
	return s.ctrl.CycleSort()
}

func (s *anomalyService) SetFlaggedSort(order listview.SortOrder) {
	s.ctrl.SetOrder(order)
}
