// Copyright (c) 2026 Wei-Lun Tsai.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package localstore persists the handful of client-local key/value
entries: the two custom origin slots and the fingerprint seed.

	store, err := localstore.Open("vegnear.db")
	...
	err = store.Put("origin.custom1", "22.9976,120.2191")
	v, err := store.Get("origin.custom1")

Get returns ErrNotFound for keys that were never written.
*/
package localstore
