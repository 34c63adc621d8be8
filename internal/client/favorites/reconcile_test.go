package favorites

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chemexplorer/internal/models"
)

func TestReconcile(t *testing.T) {
	results := []models.Compound{
		{ID: "42", SMILES: "CCO"},
		{ID: "43", SMILES: "c1ccccc1"},
	}
	favs := []models.Favorite{
		{FavoriteID: "7", CompoundID: "42"},
	}

	views := Reconcile(results, favs)

	require.Len(t, views, 2)

	assert.Equal(t, "42", views[0].Compound.ID)
	assert.True(t, views[0].IsFavorite)
	assert.Equal(t, "7", views[0].FavoriteID)

	assert.Equal(t, "43", views[1].Compound.ID)
	assert.False(t, views[1].IsFavorite)
	assert.Empty(t, views[1].FavoriteID)
}

func TestReconcile_PreservesResultOrder(t *testing.T) {
	results := []models.Compound{{ID: "c"}, {ID: "a"}, {ID: "b"}}

	views := Reconcile(results, nil)

	require.Len(t, views, 3)
	assert.Equal(t, "c", views[0].Compound.ID)
	assert.Equal(t, "a", views[1].Compound.ID)
	assert.Equal(t, "b", views[2].Compound.ID)
}

func TestReconcile_EmptyInputs(t *testing.T) {
	assert.Empty(t, Reconcile(nil, nil))
	assert.Empty(t, Reconcile(nil, []models.Favorite{{FavoriteID: "7", CompoundID: "42"}}))

	views := Reconcile([]models.Compound{{ID: "42"}}, nil)
	require.Len(t, views, 1)
	assert.False(t, views[0].IsFavorite)
}

func TestReconcile_DuplicateCompoundFirstMatchWins(t *testing.T) {
	// Two favorites for one compound is a data anomaly, not an error:
	// the first entry encountered decides the favorite id
	results := []models.Compound{{ID: "42"}}
	favs := []models.Favorite{
		{FavoriteID: "7", CompoundID: "42"},
		{FavoriteID: "8", CompoundID: "42"},
	}

	views := Reconcile(results, favs)

	require.Len(t, views, 1)
	assert.True(t, views[0].IsFavorite)
	assert.Equal(t, "7", views[0].FavoriteID)
}

func TestReconcile_MatchesOnCompoundIDNotFavoriteID(t *testing.T) {
	// A favorite id that happens to collide with a compound id is not a match
	results := []models.Compound{{ID: "7"}}
	favs := []models.Favorite{
		{FavoriteID: "7", CompoundID: "42"},
	}

	views := Reconcile(results, favs)

	require.Len(t, views, 1)
	assert.False(t, views[0].IsFavorite)
}

func TestFavoritesView(t *testing.T) {
	favs := []models.Favorite{
		{FavoriteID: "7", CompoundID: "42", Compound: models.Compound{ID: "42", SMILES: "CCO"}},
		{FavoriteID: "8", CompoundID: "43", Compound: models.Compound{ID: "43", SMILES: "c1ccccc1"}},
	}

	views := FavoritesView(favs)

	require.Len(t, views, 2)
	for i, view := range views {
		assert.True(t, view.IsFavorite)
		assert.Equal(t, favs[i].FavoriteID, view.FavoriteID)
		assert.Equal(t, favs[i].Compound, view.Compound)
	}
}

func TestFavoritesView_Empty(t *testing.T) {
	assert.Empty(t, FavoritesView(nil))
}
