// Copyright (c) 2026 Wei-Lun Tsai.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session orchestrates the page state.

# Flow

	sess := session.New(store, events, userHash, limit)
	err := sess.Load(ctx)          // fetch + wholesale replace, view event
	sess.SetOrigin(point)          // from the origin selector
	sess.SetBudget(models.Budget15)
	list := sess.Visible()         // filter by ETA ≤ budget, sort
	count, err := sess.Upvote(ctx, venueID)
	url, err := sess.Navigate(venueID)

# Invariants

  - Vote counts are whatever the backend returns; Upvote patches only
    the voted venue and performs no local arithmetic.
  - Visible sorts by ETA ascending, ties broken by reco_count
    descending. Budget 999 (the "15+" sentinel) disables the cutoff.
  - With no origin the list is unfiltered, in backend order.
  - Load replaces the venue slice in one assignment under the lock;
    concurrent readers see either the old list or the new one.
*/
package session
