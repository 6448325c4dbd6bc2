package reconcile

import (
	"context"

	"footygraph/lib/graphstore"
)

// ResolveStored runs the club cascade against the clubs persisted under
// leagueID, or against every club when leagueID is 0.
func ResolveStored(ctx context.Context, store graphstore.Store, query ClubQuery, leagueID int64) (Resolution, bool, error) {
	ctx, span := tracer.Start(ctx, "ResolveStored")
	defer span.End()

	clubs, err := store.Clubs(ctx, leagueID)
	if err != nil {
		return Resolution{}, false, storeErr("clubs", err)
	}
	resolution, ok := ResolveClub(query, clubs)
	return resolution, ok, nil
}
