// Copyright (c) 2026 Wei-Lun Tsai.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package identity

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vegnear/vegnear/localstore"
)

// fingerprintKey is where the random seed lives in the local store.
const fingerprintKey = "identity.fingerprint"

// idTokenPrefixLen is how much of the ID token becomes the actor key.
const idTokenPrefixLen = 24

// Resolver derives the opaque user hash used for vote deduplication
// and telemetry attribution. Priority order: platform ID token prefix,
// then platform profile identifier, then salted local fingerprint.
type Resolver struct {
	platform    Platform
	store       *localstore.Store
	salt        string
	redirectURI string
}

func NewResolver(platform Platform, store *localstore.Store, salt, redirectURI string) *Resolver {
	return &Resolver{
		platform:    platform,
		store:       store,
		salt:        salt,
		redirectURI: redirectURI,
	}
}

// Resolve returns the actor key. It never fails: any source that
// errors falls through silently to the next one, terminating at the
// always-available local fingerprint.
func (r *Resolver) Resolve(ctx context.Context) string {
	if r.platform != nil {
		if err := r.platform.Init(ctx); err != nil {
			slog.Debug("platform init failed", "error", err)
		} else {
			if !r.platform.IsLoggedIn() {
				if loginURL, err := r.platform.Login(r.redirectURI); err == nil {
					slog.Info("platform login required", "url", loginURL)
				}
			}

			if token, err := r.platform.IDToken(ctx); err == nil && token != "" {
				return "idt_" + tokenPrefix(token)
			} else if err != nil {
				slog.Debug("id token unavailable", "error", err)
			}

			if prof, err := r.platform.Profile(ctx); err == nil && prof.UserID != "" {
				return "usr_" + prof.UserID
			} else if err != nil {
				slog.Debug("profile unavailable", "error", err)
			}
		}
	}

	return "fp_" + r.fingerprint()
}

func tokenPrefix(token string) string {
	if len(token) > idTokenPrefixLen {
		return token[:idTokenPrefixLen]
	}
	return token
}

// fingerprint loads the persisted seed, creating one on first use, and
// returns its salted hash. The seed survives restarts so the fallback
// identity is stable per installation.
func (r *Resolver) fingerprint() string {
	seed, err := r.store.Get(fingerprintKey)
	if err != nil {
		seed = uuid.NewString()
		if err := r.store.Put(fingerprintKey, seed); err != nil {
			slog.Warn("failed to persist fingerprint seed", "error", err)
		}
	}
	return FingerprintHash(seed, r.salt)
}
