package core

// Animal is the normalized form of one record. Every field is optional:
// a nil pointer means the source did not supply a string for it.
type Animal struct {
	Name *string `json:"name"`
	Diet *string `json:"diet"`
	// Locations is nil when the record had no locations key, and a non-nil
	// (possibly empty) slice when it did.
	Locations []string `json:"locations"`
	Type      *string  `json:"type"`

	// Taxonomy and Characteristics are only set in extended mode.
	Taxonomy        *Taxonomy        `json:"taxonomy,omitempty"`
	Characteristics *Characteristics `json:"characteristics,omitempty"`
}

// HasLocations reports whether the record supplied a locations array.
func (a Animal) HasLocations() bool {
	return a.Locations != nil
}

// Taxonomy is the scientific classification group of a record.
type Taxonomy struct {
	Kingdom        *string `json:"kingdom"`
	Phylum         *string `json:"phylum"`
	Class          *string `json:"class"`
	Order          *string `json:"order"`
	Family         *string `json:"family"`
	Genus          *string `json:"genus"`
	ScientificName *string `json:"scientific_name"`
}

// Characteristics is the descriptive attribute group of a record.
type Characteristics struct {
	Prey                    *string `json:"prey"`
	NameOfYoung             *string `json:"name_of_young"`
	GroupBehavior           *string `json:"group_behavior"`
	EstimatedPopulationSize *string `json:"estimated_population_size"`
	BiggestThreat           *string `json:"biggest_threat"`
	MostDistinctiveFeature  *string `json:"most_distinctive_feature"`
	GestationPeriod         *string `json:"gestation_period"`
	Habitat                 *string `json:"habitat"`
	Diet                    *string `json:"diet"`
	AverageLitterSize       *string `json:"average_litter_size"`
	Lifestyle               *string `json:"lifestyle"`
	CommonName              *string `json:"common_name"`
	NumberOfSpecies         *string `json:"number_of_species"`
	Location                *string `json:"location"`
	Slogan                  *string `json:"slogan"`
	Group                   *string `json:"group"`
	Color                   *string `json:"color"`
	SkinType                *string `json:"skin_type"`
	TopSpeed                *string `json:"top_speed"`
	Lifespan                *string `json:"lifespan"`
	Weight                  *string `json:"weight"`
	Height                  *string `json:"height"`
	AgeOfSexualMaturity     *string `json:"age_of_sexual_maturity"`
	AgeOfWeaning            *string `json:"age_of_weaning"`
	Temperament             *string `json:"temperament"`
	Type                    *string `json:"type"`
}

// Attribute is one labelled optional value of a group, in declared order.
type Attribute struct {
	Key   string
	Label string
	Value *string
}

// Attributes lists the taxonomy fields in declared order.
func (t *Taxonomy) Attributes() []Attribute {
	if t == nil {
		return nil
	}
	return []Attribute{
		{"kingdom", "Kingdom", t.Kingdom},
		{"phylum", "Phylum", t.Phylum},
		{"class", "Class", t.Class},
		{"order", "Order", t.Order},
		{"family", "Family", t.Family},
		{"genus", "Genus", t.Genus},
		{"scientific_name", "Scientific name", t.ScientificName},
	}
}

// Attributes lists the characteristics fields in declared order.
func (c *Characteristics) Attributes() []Attribute {
	if c == nil {
		return nil
	}
	return []Attribute{
		{"prey", "Prey", c.Prey},
		{"name_of_young", "Name of young", c.NameOfYoung},
		{"group_behavior", "Group behavior", c.GroupBehavior},
		{"estimated_population_size", "Estimated population size", c.EstimatedPopulationSize},
		{"biggest_threat", "Biggest threat", c.BiggestThreat},
		{"most_distinctive_feature", "Most distinctive feature", c.MostDistinctiveFeature},
		{"gestation_period", "Gestation period", c.GestationPeriod},
		{"habitat", "Habitat", c.Habitat},
		{"diet", "Diet", c.Diet},
		{"average_litter_size", "Average litter size", c.AverageLitterSize},
		{"lifestyle", "Lifestyle", c.Lifestyle},
		{"common_name", "Common name", c.CommonName},
		{"number_of_species", "Number of species", c.NumberOfSpecies},
		{"location", "Location", c.Location},
		{"slogan", "Slogan", c.Slogan},
		{"group", "Group", c.Group},
		{"color", "Color", c.Color},
		{"skin_type", "Skin type", c.SkinType},
		{"top_speed", "Top speed", c.TopSpeed},
		{"lifespan", "Lifespan", c.Lifespan},
		{"weight", "Weight", c.Weight},
		{"height", "Height", c.Height},
		{"age_of_sexual_maturity", "Age of sexual maturity", c.AgeOfSexualMaturity},
		{"age_of_weaning", "Age of weaning", c.AgeOfWeaning},
		{"temperament", "Temperament", c.Temperament},
		{"type", "Type", c.Type},
	}
}
