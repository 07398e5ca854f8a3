package countrycode

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_Known(t *testing.T) {
	r := Default()

	tests := []struct {
		code string
		want string
	}{
		{"US", "United States"},
		{"JP", "Japan"},
		{"GB", "United Kingdom"},
		{"BS", "Bahamas, The"},
		{"CI", "Cote d'Ivoire"},
		{"VI", "Virgin Islands (U.S.)"},
		{"XE", "Heavily indebted poor countries (HIPC)"},
		{"1W", "World"},
		{"XL", "Least developed countries: UN classification"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, err := r.Resolve(tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, r.Has(tt.code))
		})
	}
}

func TestResolve_Unknown(t *testing.T) {
	r := Default()

	for _, code := range []string{"ZZ", "XX", "", "usa", "us", " US", "USA"} {
		t.Run(code, func(t *testing.T) {
			assert.False(t, r.Has(code))

			name, err := r.Resolve(code)
			require.Error(t, err)
			assert.Empty(t, name)
			assert.True(t, errors.Is(err, ErrUnknownCode))

			var uce *UnknownCodeError
			require.True(t, errors.As(err, &uce))
			assert.Equal(t, code, uce.Code)
		})
	}
}

func TestResolve_Idempotent(t *testing.T) {
	r := Default()
	first, err := r.Resolve("DE")
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		got, err := r.Resolve("DE")
		require.NoError(t, err)
		assert.Equal(t, first, got)
	}
}

func TestEntries_MatchResolve(t *testing.T) {
	r := Default()

	seen := make(map[string]bool)
	for code, name := range r.Entries() {
		assert.False(t, seen[code], "code %q yielded twice", code)
		seen[code] = true

		assert.NotEmpty(t, name, "code %q has empty name", code)
		got, err := r.Resolve(code)
		require.NoError(t, err)
		assert.Equal(t, name, got)
	}
	assert.Len(t, seen, r.Len())
	assert.Equal(t, 246, r.Len())
}

func TestEntries_Restartable(t *testing.T) {
	r := Default()

	collect := func() []string {
		var codes []string
		for code := range r.Entries() {
			codes = append(codes, code)
		}
		return codes
	}
	first := collect()
	second := collect()
	assert.Equal(t, first, second)
	require.NotEmpty(t, first)
	// Table order, not alphabetical.
	assert.Equal(t, "BD", first[0])
	assert.Equal(t, "MZ", first[len(first)-1])
}

func TestEntries_EarlyBreak(t *testing.T) {
	n := 0
	for range Default().Entries() {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

func TestAll_ReturnsCopy(t *testing.T) {
	r := Default()
	all := r.All()
	require.Len(t, all, r.Len())

	all[0].Name = "mutated"
	name, err := r.Resolve(all[0].Code)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", name)
}

func TestFilter(t *testing.T) {
	r := Default()

	countries := r.Filter(Country)
	aggregates := r.Filter(Aggregate)
	assert.Len(t, countries, 214)
	assert.Len(t, aggregates, 32)
	assert.Equal(t, r.Len(), len(countries)+len(aggregates))

	for _, e := range aggregates {
		assert.Equal(t, Aggregate, e.Kind)
	}

	eu, ok := r.Lookup("EU")
	require.True(t, ok)
	assert.Equal(t, Aggregate, eu.Kind)

	fr, ok := r.Lookup("FR")
	require.True(t, ok)
	assert.Equal(t, Country, fr.Kind)
	assert.Equal(t, "France", fr.Name)

	_, ok = r.Lookup("ZZ")
	assert.False(t, ok)
}

func TestDisplayName(t *testing.T) {
	r := Default()
	assert.Equal(t, "Japan", r.DisplayName("JP"))
	assert.Equal(t, "ZZ", r.DisplayName("ZZ"))
	assert.Equal(t, "", r.DisplayName(""))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "US", Normalize(" us "))
	assert.Equal(t, "GB", Normalize("Gb"))
	assert.Equal(t, "", Normalize("  "))
	assert.True(t, Default().Has(Normalize("jp\n")))
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("Country")
	require.NoError(t, err)
	assert.Equal(t, Country, k)

	k, err = ParseKind(" aggregate ")
	require.NoError(t, err)
	assert.Equal(t, Aggregate, k)

	_, err = ParseKind("region")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown kind")
}

func TestNew_Subset(t *testing.T) {
	r, err := New([]Entry{
		{Code: "US", Name: "United States", Kind: Country},
		{Code: "JP", Name: "Japan", Kind: Country},
		{Code: "GB", Name: "United Kingdom", Kind: Country},
	})
	require.NoError(t, err)

	name, err := r.Resolve("GB")
	require.NoError(t, err)
	assert.Equal(t, "United Kingdom", name)

	_, err = r.Resolve("XX")
	assert.ErrorIs(t, err, ErrUnknownCode)
	assert.Equal(t, 3, r.Len())
}

func TestNew_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		wantErr string
	}{
		{
			name:    "duplicate",
			entries: []Entry{{Code: "US", Name: "United States"}, {Code: "US", Name: "USA"}},
			wantErr: "duplicate code",
		},
		{
			name:    "empty name",
			entries: []Entry{{Code: "US"}},
			wantErr: "empty name",
		},
		{
			name:    "empty code",
			entries: []Entry{{Name: "Nowhere"}},
			wantErr: "empty code",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.entries)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNew_CopiesInput(t *testing.T) {
	in := []Entry{{Code: "JP", Name: "Japan", Kind: Country}}
	r, err := New(in)
	require.NoError(t, err)

	in[0].Name = "changed"
	name, err := r.Resolve("JP")
	require.NoError(t, err)
	assert.Equal(t, "Japan", name)
}

func TestTable_CodesUppercase(t *testing.T) {
	for code := range Default().Entries() {
		assert.Equal(t, Normalize(code), code)
		assert.Len(t, code, 2)
	}
}

func TestResolve_ConcurrentReaders(t *testing.T) {
	r := Default()
	all := r.All()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, e := range all {
				name, err := r.Resolve(e.Code)
				if err != nil || name != e.Name {
					t.Errorf("resolve %q: got %q, %v", e.Code, name, err)
					return
				}
			}
		}()
	}
	wg.Wait()
}
