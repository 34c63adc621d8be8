package favorites

import "chemexplorer/internal/models"

// ResultView is one renderable item: a compound plus its derived favorite
// status. It is recomputed on every render from the current result set and
// favorites list; nothing here is stored.
type ResultView struct {
	Compound   models.Compound
	FavoriteID string // empty when not favorited
	IsFavorite bool
}

// Reconcile derives the favorite status of every compound in results by
// matching against favorites on compound id. Order of results is preserved.
// Should the favorites list contain several entries for the same compound
// (a data anomaly, not an error), the first match wins.
func Reconcile(results []models.Compound, favs []models.Favorite) []ResultView {
	views := make([]ResultView, 0, len(results))

	for _, compound := range results {
		view := ResultView{Compound: compound}
		for _, fav := range favs {
			if fav.CompoundID == compound.ID {
				view.IsFavorite = true
				view.FavoriteID = fav.FavoriteID
				break
			}
		}
		views = append(views, view)
	}

	return views
}

// FavoritesView renders the favorites list directly: every item is
// definitionally a favorite and the favorite id comes straight from the
// record, no matching involved.
func FavoritesView(favs []models.Favorite) []ResultView {
	views := make([]ResultView, 0, len(favs))

	for _, fav := range favs {
		views = append(views, ResultView{
			Compound:   fav.Compound,
			FavoriteID: fav.FavoriteID,
			IsFavorite: true,
		})
	}

	return views
}
