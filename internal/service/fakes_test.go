package service

import (
	"context"
	"strings"
	"time"

	"github.com/DrOldGuy/model-railroad-scaler/internal/models"
)

// fakeScaleRepo is an in-memory repository.ScaleRepo keyed by upper-cased name.
type fakeScaleRepo struct {
	scales  map[string]models.Scale
	getErr  error
	saveErr error
	saved   []models.Scale
	seeded  []models.Scale
}

func newFakeScaleRepo(scales ...models.Scale) *fakeScaleRepo {
	f := &fakeScaleRepo{scales: map[string]models.Scale{}}
	for _, s := range scales {
		f.scales[strings.ToUpper(s.Name)] = s
	}
	return f
}

func (f *fakeScaleRepo) Get(_ context.Context, name string) (*models.Scale, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	s, ok := f.scales[strings.ToUpper(name)]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (f *fakeScaleRepo) List(context.Context) ([]models.Scale, error) {
	out := make([]models.Scale, 0, len(f.scales))
	for _, s := range f.scales {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeScaleRepo) Save(_ context.Context, s models.Scale) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, s)
	f.scales[strings.ToUpper(s.Name)] = s
	return nil
}

func (f *fakeScaleRepo) Seed(_ context.Context, scales []models.Scale) error {
	f.seeded = append(f.seeded, scales...)
	for _, s := range scales {
		if _, ok := f.scales[strings.ToUpper(s.Name)]; !ok {
			f.scales[strings.ToUpper(s.Name)] = s
		}
	}
	return nil
}

// fakeConversionRepo records what the history service hands to the repository.
type fakeConversionRepo struct {
	gotFrom      time.Time
	gotTo        time.Time
	gotDirection string
	gotLimit     int

	appended    []models.Conversion
	conversions []models.Conversion
	err         error

	calls int
}

func (f *fakeConversionRepo) Append(_ context.Context, c models.Conversion) error {
	if f.err != nil {
		return f.err
	}
	f.appended = append(f.appended, c)
	return nil
}

func (f *fakeConversionRepo) List(_ context.Context, from, to time.Time, direction string) ([]models.Conversion, error) {
	f.calls++
	f.gotFrom = from
	f.gotTo = to
	f.gotDirection = direction
	return f.conversions, f.err
}

func (f *fakeConversionRepo) Recent(_ context.Context, limit int) ([]models.Conversion, error) {
	f.calls++
	f.gotLimit = limit
	return f.conversions, f.err
}
