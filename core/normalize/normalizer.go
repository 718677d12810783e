// Package normalize implements the Normalizer interface.
// It maps loosely-typed records onto core.Animal, tolerating both dataset
// generations (diet under characteristics, or only taxonomy.order).
package normalize

import (
	"io"
	"log/slog"

	"github.com/gaurav-prasanna/animalpage/core"
)

// RecordNormalizer converts raw records to entities, skipping the ones
// that are structurally incompatible.
type RecordNormalizer struct {
	extended bool
	logger   *slog.Logger
}

// Option configures a RecordNormalizer.
type Option func(*RecordNormalizer)

// WithExtended populates the Taxonomy and Characteristics groups.
func WithExtended(extended bool) Option {
	return func(n *RecordNormalizer) {
		n.extended = extended
	}
}

// WithLogger sets the logger used to report skipped records.
func WithLogger(logger *slog.Logger) Option {
	return func(n *RecordNormalizer) {
		if logger != nil {
			n.logger = logger
		}
	}
}

// New creates a RecordNormalizer. Without WithLogger, skipped records are
// not logged anywhere.
func New(opts ...Option) *RecordNormalizer {
	n := &RecordNormalizer{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize maps every record in order. A record that cannot be mapped is
// logged, returned as a core.ErrRecord error and left out; the rest of the
// batch is unaffected.
func (n *RecordNormalizer) Normalize(records []core.RawRecord) ([]core.Animal, []error) {
	animals := make([]core.Animal, 0, len(records))
	var errs []error

	for _, rec := range records {
		animal, err := n.NormalizeRecord(rec)
		if err != nil {
			n.logger.Warn("skipping record", "index", rec.Index, "error", err)
			errs = append(errs, err)
			continue
		}
		animals = append(animals, animal)
	}

	n.logger.Debug("normalized records",
		"total", len(records),
		"kept", len(animals),
		"skipped", len(errs),
	)
	return animals, errs
}

// NormalizeRecord maps a single record.
func (n *RecordNormalizer) NormalizeRecord(rec core.RawRecord) (core.Animal, error) {
	obj, ok := rec.Value.(map[string]any)
	if !ok {
		return core.Animal{}, core.RecordErrorf(rec.Index, "record is %s, want object", core.JSONType(rec.Value))
	}

	locations, err := stringList(obj, "locations")
	if err != nil {
		return core.Animal{}, core.RecordErrorf(rec.Index, "%v", err)
	}

	characteristics := object(obj, "characteristics")
	taxonomy := object(obj, "taxonomy")

	animal := core.Animal{
		Name:      str(obj, "name"),
		Diet:      resolveDiet(characteristics, taxonomy),
		Locations: locations,
		Type:      str(characteristics, "type"),
	}

	if n.extended {
		animal.Taxonomy = extractTaxonomy(taxonomy)
		animal.Characteristics = extractCharacteristics(characteristics)
	}
	return animal, nil
}

// resolveDiet prefers characteristics.diet and falls back to taxonomy.order.
// The probe order is the same for every record.
func resolveDiet(characteristics, taxonomy map[string]any) *string {
	if diet := str(characteristics, "diet"); diet != nil {
		return diet
	}
	return str(taxonomy, "order")
}

func extractTaxonomy(m map[string]any) *core.Taxonomy {
	return &core.Taxonomy{
		Kingdom:        str(m, "kingdom"),
		Phylum:         str(m, "phylum"),
		Class:          str(m, "class"),
		Order:          str(m, "order"),
		Family:         str(m, "family"),
		Genus:          str(m, "genus"),
		ScientificName: str(m, "scientific_name"),
	}
}

func extractCharacteristics(m map[string]any) *core.Characteristics {
	return &core.Characteristics{
		Prey:                    str(m, "prey"),
		NameOfYoung:             str(m, "name_of_young"),
		GroupBehavior:           str(m, "group_behavior"),
		EstimatedPopulationSize: str(m, "estimated_population_size"),
		BiggestThreat:           str(m, "biggest_threat"),
		MostDistinctiveFeature:  str(m, "most_distinctive_feature"),
		GestationPeriod:         str(m, "gestation_period"),
		Habitat:                 str(m, "habitat"),
		Diet:                    str(m, "diet"),
		AverageLitterSize:       str(m, "average_litter_size"),
		Lifestyle:               str(m, "lifestyle"),
		CommonName:              str(m, "common_name"),
		NumberOfSpecies:         str(m, "number_of_species"),
		Location:                str(m, "location"),
		Slogan:                  str(m, "slogan"),
		Group:                   str(m, "group"),
		Color:                   str(m, "color"),
		SkinType:                str(m, "skin_type"),
		TopSpeed:                str(m, "top_speed"),
		Lifespan:                str(m, "lifespan"),
		Weight:                  str(m, "weight"),
		Height:                  str(m, "height"),
		AgeOfSexualMaturity:     str(m, "age_of_sexual_maturity"),
		AgeOfWeaning:            str(m, "age_of_weaning"),
		Temperament:             str(m, "temperament"),
		Type:                    str(m, "type"),
	}
}
