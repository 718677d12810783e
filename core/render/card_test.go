package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gaurav-prasanna/animalpage/core"
)

func ptr(s string) *string { return &s }

func TestRenderFragment_FullCard(t *testing.T) {
	got := NewCardRenderer().RenderFragment(core.Animal{
		Name:      ptr("Fox"),
		Diet:      ptr("Omnivore"),
		Locations: []string{"Europe", "Asia"},
		Type:      ptr("Mammal"),
	})

	want := `<li class="cards__item"><div class="card__title">Fox</div><p class="card__text">` +
		`<strong>Diet:</strong> Omnivore<br/>` +
		`<strong>Location(s):</strong> Europe, Asia<br/>` +
		`<strong>Type:</strong> Mammal<br/>` +
		`</p></li>`
	assert.Equal(t, want, got)
}

func TestRenderFragment_Omissions(t *testing.T) {
	tests := []struct {
		name   string
		animal core.Animal
		want   string
	}{
		{
			name:   "all absent",
			animal: core.Animal{},
			want:   `<li class="cards__item"><p class="card__text"></p></li>`,
		},
		{
			name:   "no name keeps surrounding tags",
			animal: core.Animal{Diet: ptr("Carnivora")},
			want:   `<li class="cards__item"><p class="card__text"><strong>Diet:</strong> Carnivora<br/></p></li>`,
		},
		{
			name:   "locations absent",
			animal: core.Animal{Name: ptr("Owl")},
			want:   `<li class="cards__item"><div class="card__title">Owl</div><p class="card__text"></p></li>`,
		},
		{
			name:   "locations supplied empty renders blank line",
			animal: core.Animal{Name: ptr("Owl"), Locations: []string{}},
			want:   `<li class="cards__item"><div class="card__title">Owl</div><p class="card__text"><strong>Location(s):</strong> <br/></p></li>`,
		},
		{
			name:   "empty strings are present",
			animal: core.Animal{Name: ptr(""), Type: ptr("")},
			want:   `<li class="cards__item"><div class="card__title"></div><p class="card__text"><strong>Type:</strong> <br/></p></li>`,
		},
		{
			name:   "type only",
			animal: core.Animal{Type: ptr("Bird")},
			want:   `<li class="cards__item"><p class="card__text"><strong>Type:</strong> Bird<br/></p></li>`,
		},
	}

	r := NewCardRenderer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.RenderFragment(tt.animal))
		})
	}
}

func TestRenderFragment_VerbatimByDefault(t *testing.T) {
	got := NewCardRenderer().RenderFragment(core.Animal{Name: ptr("<b>Bold</b> & co")})
	assert.Equal(t, `<li class="cards__item"><div class="card__title"><b>Bold</b> & co</div><p class="card__text"></p></li>`, got)
}

func TestRenderFragment_Sanitize(t *testing.T) {
	got := NewCardRenderer(WithSanitize(true)).RenderFragment(core.Animal{
		Name:      ptr("<b>Bold</b> & co"),
		Locations: []string{"<script>alert(1)</script>Asia"},
	})
	assert.Equal(t, `<li class="cards__item"><div class="card__title">Bold &amp; co</div>`+
		`<p class="card__text"><strong>Location(s):</strong> Asia<br/></p></li>`, got)
}

func TestRenderFragment_Extended(t *testing.T) {
	a := core.Animal{
		Name: ptr("Red Fox"),
		Diet: ptr("Omnivore"),
		Type: ptr("Mammal"),
		Taxonomy: &core.Taxonomy{
			Genus:          ptr("Vulpes"),
			ScientificName: ptr("Vulpes vulpes"),
		},
		Characteristics: &core.Characteristics{
			Diet:        ptr("Omnivore"),
			Type:        ptr("Mammal"),
			Lifespan:    ptr("2 - 5 years"),
			Temperament: ptr("Shy"),
		},
	}

	want := `<li class="cards__item"><div class="card__title">Red Fox</div><p class="card__text">` +
		`<strong>Diet:</strong> Omnivore<br/>` +
		`<strong>Type:</strong> Mammal<br/>` +
		`<strong>Genus:</strong> Vulpes<br/>` +
		`<strong>Scientific name:</strong> Vulpes vulpes<br/>` +
		`<strong>Lifespan:</strong> 2 - 5 years<br/>` +
		`<strong>Temperament:</strong> Shy<br/>` +
		`</p></li>`
	assert.Equal(t, want, NewCardRenderer(WithExtended(true)).RenderFragment(a))

	// Without the option the groups are ignored.
	assert.NotContains(t, NewCardRenderer().RenderFragment(a), "Genus")
}

func TestRenderFragment_ExtendedWithNilGroups(t *testing.T) {
	got := NewCardRenderer(WithExtended(true)).RenderFragment(core.Animal{Name: ptr("Owl")})
	assert.Equal(t, `<li class="cards__item"><div class="card__title">Owl</div><p class="card__text"></p></li>`, got)
}

func TestRenderAll_KeepsOrder(t *testing.T) {
	fragments := RenderAll(NewCardRenderer(), []core.Animal{{Name: ptr("b")}, {Name: ptr("a")}})

	assert.Len(t, fragments, 2)
	assert.Contains(t, fragments[0], ">b<")
	assert.Contains(t, fragments[1], ">a<")
}
