package query

import (
	"testing"

	"househunt-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filtersWith(mod func(f *domain.SearchFilters)) *domain.SearchFilters {
	f := domain.DefaultSearchFilters()
	if mod != nil {
		mod(&f)
	}
	return &f
}

// findCondition возвращает первое условие, в котором встречается колонка
func findCondition(s Spec, col Column) (Condition, bool) {
	for _, c := range s.Conditions {
		for _, p := range c {
			if p.Column == col {
				return c, true
			}
		}
	}
	return nil, false
}

func TestCompilePropertyFilters_Baseline(t *testing.T) {
	tests := []struct {
		name    string
		filters *domain.SearchFilters
	}{
		{"no filter", nil},
		{"default filter", filtersWith(nil)},
		{"everything set", filtersWith(func(f *domain.SearchFilters) {
			f.Location = "NY"
			f.MinPrice = 100
			f.MaxPrice = 500
			f.Bedrooms = 3
			f.PropertyType = domain.PropertyTypeHouse
			f.Furnished = true
			f.PetFriendly = true
			f.Parking = true
		})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := CompilePropertyFilters(tt.filters)

			assert.Equal(t, CollectionProperties, spec.Collection)
			require.NotEmpty(t, spec.Conditions)
			assert.Equal(t, Condition{Eq(ColumnAvailable, true)}, spec.Conditions[0])
			assert.Equal(t, Order{Column: ColumnCreatedAt, Desc: true}, spec.Order)
		})
	}
}

func TestCompilePropertyFilters_NoFilterIsBaselineOnly(t *testing.T) {
	spec := CompilePropertyFilters(nil)
	assert.Len(t, spec.Conditions, 1)

	spec = CompilePropertyFilters(filtersWith(nil))
	assert.Len(t, spec.Conditions, 1, "defaults must not add constraints")
}

func TestCompilePropertyFilters_ZeroValueBoundsPriceAtZero(t *testing.T) {
	spec := CompilePropertyFilters(&domain.SearchFilters{})

	cond, found := findCondition(spec, ColumnPrice)
	require.True(t, found)
	assert.Equal(t, Condition{Lte(ColumnPrice, 0.0)}, cond)
}

func TestCompilePropertyFilters_Price(t *testing.T) {
	tests := []struct {
		name     string
		min, max float64
		want     []Condition
	}{
		{"defaults mean no bound", 0, domain.MaxPriceSentinel, nil},
		{"above sentinel is unbounded", 0, 25000, nil},
		{"min only", 1500, domain.MaxPriceSentinel, []Condition{{Gte(ColumnPrice, 1500.0)}}},
		{"max only", 0, 3000, []Condition{{Lte(ColumnPrice, 3000.0)}}},
		{"both", 2000, 3000, []Condition{{Gte(ColumnPrice, 2000.0)}, {Lte(ColumnPrice, 3000.0)}}},
		{"negative min ignored", -5, domain.MaxPriceSentinel, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := CompilePropertyFilters(filtersWith(func(f *domain.SearchFilters) {
				f.MinPrice = tt.min
				f.MaxPrice = tt.max
			}))

			var got []Condition
			got = append(got, spec.Conditions[1:]...)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompilePropertyFilters_Bedrooms(t *testing.T) {
	spec := CompilePropertyFilters(filtersWith(func(f *domain.SearchFilters) { f.Bedrooms = 0 }))
	_, found := findCondition(spec, ColumnBedrooms)
	assert.False(t, found)

	spec = CompilePropertyFilters(filtersWith(func(f *domain.SearchFilters) { f.Bedrooms = 2 }))
	cond, found := findCondition(spec, ColumnBedrooms)
	require.True(t, found)
	assert.Equal(t, Condition{Gte(ColumnBedrooms, 2)}, cond)
}

func TestCompilePropertyFilters_LocationMatchesCityOrState(t *testing.T) {
	spec := CompilePropertyFilters(filtersWith(func(f *domain.SearchFilters) { f.Location = "york" }))

	cond, found := findCondition(spec, ColumnCity)
	require.True(t, found)
	assert.Equal(t, Condition{Contains(ColumnCity, "york"), Contains(ColumnState, "york")}, cond)

	spec = CompilePropertyFilters(filtersWith(func(f *domain.SearchFilters) { f.Location = "" }))
	_, found = findCondition(spec, ColumnCity)
	assert.False(t, found, "empty location adds no constraint")
}

func TestCompilePropertyFilters_FlagsNeverExclude(t *testing.T) {
	spec := CompilePropertyFilters(filtersWith(func(f *domain.SearchFilters) {
		f.Furnished = false
		f.PetFriendly = true
		f.Parking = false
		f.PropertyType = domain.PropertyTypeStudio
	}))

	_, found := findCondition(spec, ColumnFurnished)
	assert.False(t, found)
	_, found = findCondition(spec, ColumnParking)
	assert.False(t, found)

	cond, found := findCondition(spec, ColumnPetFriendly)
	require.True(t, found)
	assert.Equal(t, Condition{Eq(ColumnPetFriendly, true)}, cond)

	cond, found = findCondition(spec, ColumnType)
	require.True(t, found)
	assert.Equal(t, Condition{Eq(ColumnType, "studio")}, cond)
}

func TestOwnedPropertiesSpec(t *testing.T) {
	owner := uuid.New()
	spec := OwnedPropertiesSpec(owner)

	assert.Equal(t, CollectionProperties, spec.Collection)
	assert.Equal(t, []Condition{{Eq(ColumnOwnerID, owner)}}, spec.Conditions)
	_, found := findCondition(spec, ColumnAvailable)
	assert.False(t, found, "owners see their unavailable listings too")
}

func TestCompileInquiryVisibility(t *testing.T) {
	caller := uuid.New()

	t.Run("owns nothing", func(t *testing.T) {
		spec := CompileInquiryVisibility(caller, nil)
		assert.Equal(t, CollectionInquiries, spec.Collection)
		assert.Equal(t, []Condition{{Eq(ColumnRenterID, caller)}}, spec.Conditions)
		assert.Equal(t, Order{Column: ColumnCreatedAt, Desc: true}, spec.Order)
	})

	t.Run("owns properties", func(t *testing.T) {
		owned := []uuid.UUID{uuid.New(), uuid.New()}
		spec := CompileInquiryVisibility(caller, owned)
		require.Len(t, spec.Conditions, 1)
		assert.Equal(t, Condition{Eq(ColumnRenterID, caller), In(ColumnPropertyID, owned)}, spec.Conditions[0])
	})
}
