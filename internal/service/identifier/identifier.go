package identifier

import (
	"context"
	"fmt"
	"time"
)

// maxSequence — потолок последовательностей. После него генерация
// завершается ErrSequenceExhausted, а не перетекает на 5 знаков.
const maxSequence = 9999

const (
	suitePrefix            = "VC-"
	packagePrefix          = "PKG"
	trackingPrefix         = "TRK"
	shipmentTrackingPrefix = "SHP"
)

// Generator выдает человекочитаемые идентификаторы по принципу
// "максимум в хранилище + 1" с пробой кандидатов вверх. Скан и вставка
// не атомарны, поэтому вызывающая сторона обязана повторить генерацию
// при нарушении уникальности на вставке (ErrIdentifierTaken от репозитория).
type Generator struct {
	repository Repository
}

func New(repository Repository) *Generator {
	return &Generator{
		repository: repository,
	}
}

func (g *Generator) NextSuiteNumber(ctx context.Context) (string, error) {
	maxSeq, err := g.repository.MaxSuiteSequence(ctx)
	if err != nil {
		return "", fmt.Errorf("max suite sequence: %w", err)
	}

	return g.probe(ctx, maxSeq, func(seq int) (string, error) {
		candidate := fmt.Sprintf("%s%03d", suitePrefix, seq)
		exists, err := g.repository.SuiteNumberExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("suite number exists: %w", err)
		}
		if exists {
			return "", nil
		}
		return candidate, nil
	})
}

func (g *Generator) NextPackageID(ctx context.Context) (string, error) {
	year := currentYearSuffix()

	maxSeq, err := g.repository.MaxPackageSequence(ctx, year)
	if err != nil {
		return "", fmt.Errorf("max package sequence: %w", err)
	}

	return g.probe(ctx, maxSeq, func(seq int) (string, error) {
		candidate := fmt.Sprintf("%s%02d%04d", packagePrefix, year, seq)
		exists, err := g.repository.PackageIDExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("package id exists: %w", err)
		}
		if exists {
			return "", nil
		}
		return candidate, nil
	})
}

func (g *Generator) NextTrackingNumber(ctx context.Context) (string, error) {
	year := currentYearSuffix()

	maxSeq, err := g.repository.MaxTrackingSequence(ctx, year)
	if err != nil {
		return "", fmt.Errorf("max tracking sequence: %w", err)
	}

	return g.probe(ctx, maxSeq, func(seq int) (string, error) {
		candidate := fmt.Sprintf("%s%02d%04d", trackingPrefix, year, seq)
		exists, err := g.repository.TrackingNumberExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("tracking number exists: %w", err)
		}
		if exists {
			return "", nil
		}
		return candidate, nil
	})
}

func (g *Generator) NextShipmentTrackingNumber(ctx context.Context) (string, error) {
	year := currentYearSuffix()

	maxSeq, err := g.repository.MaxShipmentTrackingSequence(ctx, year)
	if err != nil {
		return "", fmt.Errorf("max shipment tracking sequence: %w", err)
	}

	return g.probe(ctx, maxSeq, func(seq int) (string, error) {
		candidate := fmt.Sprintf("%s%02d%04d", shipmentTrackingPrefix, year, seq)
		exists, err := g.repository.ShipmentTrackingNumberExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("shipment tracking number exists: %w", err)
		}
		if exists {
			return "", nil
		}
		return candidate, nil
	})
}

// probe перебирает кандидатов от maxSeq+1 вверх до потолка.
// tryCandidate возвращает пустую строку, если кандидат уже занят.
func (g *Generator) probe(ctx context.Context, maxSeq int, tryCandidate func(seq int) (string, error)) (string, error) {
	for seq := maxSeq + 1; seq <= maxSequence; seq++ {
		candidate, err := tryCandidate(seq)
		if err != nil {
			return "", err
		}
		if candidate == "" {
			ProbeCollisionsTotal.Inc()
			continue
		}
		return candidate, nil
	}

	return "", ErrSequenceExhausted
}

func currentYearSuffix() int {
	return time.Now().UTC().Year() % 100
}
