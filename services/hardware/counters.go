package hardwareservice

import (
	"github.com/FrumiousOwl/Teses-front-sub000/models"
	"github.com/FrumiousOwl/Teses-front-sub000/services"
	"github.com/pkg/errors"
)

type CounterField string

const (
	CounterAvailable CounterField = "available"
	CounterDeployed  CounterField = "deployed"
	CounterDefective CounterField = "defective"
)

// ApplyCounterChange applies delta to one counter and rejects the change as a
// no-op if the result breaks 0 <= defective <= deployed <= available. Sitting
// exactly on a bound is legal, crossing it by one is not.
func ApplyCounterChange(a models.HardwareAsset, field CounterField, delta int) (models.HardwareAsset, error) {
	changed := a
	switch field {
	case CounterAvailable:
		changed.Available += delta
	case CounterDeployed:
		changed.Deployed += delta
	case CounterDefective:
		changed.Defective += delta
	default:
		return a, errors.Errorf("unknown counter field %q", field)
	}

	if err := checkCounters(changed); err != nil {
		return a, err
	}
	return changed, nil
}

func checkCounters(a models.HardwareAsset) error {
	if a.Defective < 0 || a.Defective > a.Deployed || a.Deployed > a.Available {
		return services.ErrCounterBound
	}
	return nil
}
