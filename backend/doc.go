// Copyright (c) 2026 Wei-Lun Tsai.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package backend is the client for the managed venue service.

# Contract

Three operations behind the Store interface:

  - ListVenues: select id,name,veg_type,price_bin,reco_count,lat,lng
    from venues where status = 'published' order by reco_count desc
    limit 100
  - Upvote: fn_upvote(p_user_hash, p_venue_id) → new integer count,
    deduplicated per user server-side
  - InsertEvent: insert one row into events

# Drivers

RESTClient talks PostgREST to a hosted backend:

	store := backend.NewRESTClient("https://xyz.backend.co", apiKey)

PostgresStore talks SQL to a self-hosted one:

	db, _ := sql.Open("postgres", databaseURL)
	store := backend.NewPostgresStore(db)

CreateSchema bootstraps the self-hosted tables and the fn_upvote
function.

Read/vote errors are returned verbatim for the caller to display; no
retry happens at this layer.
*/
package backend
