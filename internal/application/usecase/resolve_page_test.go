package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/navkit/internal/application/port"
	"github.com/bnema/navkit/internal/domain/entity"
)

func TestPageResolver_Resolve(t *testing.T) {
	source := &staticSource{types: []port.PageType{
		pageType("HomePage", port.FamilyPage),
		pageType("DetailsPage", port.FamilyPage),
		pageType("ConfirmPopup", port.FamilyPopup),
		pageType("Twin", port.FamilyPage),
		pageType("Twin", port.FamilyPage),
	}}
	r := NewPageResolver(source, NameCaseSensitive, pageType(NavigationPageName, port.FamilyPage))

	tests := []struct {
		name    string
		family  port.PageFamily
		segment string
		wantErr error
	}{
		{"page", port.FamilyPage, "HomePage", nil},
		{"well known", port.FamilyPage, NavigationPageName, nil},
		{"popup", port.FamilyPopup, "ConfirmPopup", nil},
		{"popup is not a page", port.FamilyPage, "ConfirmPopup", entity.ErrPageNotFound},
		{"page is not a popup", port.FamilyPopup, "HomePage", entity.ErrPageNotFound},
		{"case sensitive", port.FamilyPage, "homepage", entity.ErrPageNotFound},
		{"ambiguous", port.FamilyPage, "Twin", entity.ErrAmbiguousPage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(tt.family, tt.segment)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.segment, got.Name)
			assert.Equal(t, tt.family, got.Family)
		})
	}
}

func TestPageResolver_BuildsOncePerFamily(t *testing.T) {
	source := &staticSource{types: []port.PageType{pageType("HomePage", port.FamilyPage)}}
	r := NewPageResolver(source, NameCaseSensitive)

	for i := 0; i < 3; i++ {
		_, err := r.Resolve(port.FamilyPage, "HomePage")
		require.NoError(t, err)
	}
	_, _ = r.Resolve(port.FamilyPopup, "HomePopup")

	assert.Equal(t, 2, source.calls)
}

func TestPageResolver_InvalidatePicksUpNewTypes(t *testing.T) {
	source := &staticSource{}
	r := NewPageResolver(source, NameCaseSensitive)

	_, err := r.Resolve(port.FamilyPage, "LatePage")
	assert.ErrorIs(t, err, entity.ErrPageNotFound)

	source.add(pageType("LatePage", port.FamilyPage))
	_, err = r.Resolve(port.FamilyPage, "LatePage")
	assert.ErrorIs(t, err, entity.ErrPageNotFound, "cached table still used")

	r.Invalidate()
	_, err = r.Resolve(port.FamilyPage, "LatePage")
	assert.NoError(t, err)
}

func TestPageResolver_SetNamePolicy(t *testing.T) {
	source := &staticSource{types: []port.PageType{
		pageType("HomePage", port.FamilyPage),
		pageType("homepage", port.FamilyPage),
	}}
	r := NewPageResolver(source, NameCaseSensitive)

	_, err := r.Resolve(port.FamilyPage, "homepage")
	require.NoError(t, err)

	r.SetNamePolicy(NameCaseInsensitive)
	_, err = r.Resolve(port.FamilyPage, "HOMEPAGE")
	assert.ErrorIs(t, err, entity.ErrAmbiguousPage)
	assert.Len(t, r.Matches(port.FamilyPage, "HomePage"), 2)
}

func TestPageResolver_DescribeIsAllOrNothing(t *testing.T) {
	source := &staticSource{types: []port.PageType{
		pageType("HomePage", port.FamilyPage),
		pageType("DetailsPage", port.FamilyPage),
	}}
	r := NewPageResolver(source, NameCaseSensitive)

	path, err := entity.ParsePath("/HomePage/DetailsPage?id=7")
	require.NoError(t, err)
	descriptors, err := r.Describe(port.FamilyPage, path)
	require.NoError(t, err)
	require.Len(t, descriptors, 2)
	assert.Equal(t, "DetailsPage", descriptors[1].Type.Name)
	id, ok := descriptors[1].Parameters.Get("id")
	assert.True(t, ok)
	assert.Equal(t, "7", id)

	path, err = entity.ParsePath("HomePage/MissingPage/DetailsPage")
	require.NoError(t, err)
	descriptors, err = r.Describe(port.FamilyPage, path)
	assert.ErrorIs(t, err, entity.ErrPageNotFound)
	assert.Nil(t, descriptors)
}

func TestParseConcurrencyPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    ConcurrencyPolicy
		wantErr bool
	}{
		{"", ConcurrencyReject, false},
		{"reject", ConcurrencyReject, false},
		{" Queue ", ConcurrencyQueue, false},
		{"drop", ConcurrencyReject, true},
	}
	for _, tt := range tests {
		got, err := ParseConcurrencyPolicy(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.wantErr, err != nil, tt.in)
	}
}
