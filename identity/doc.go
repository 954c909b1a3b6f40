// Copyright (c) 2026 Wei-Lun Tsai.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package identity resolves the opaque actor key.

# Priority chain

	userHash := resolver.Resolve(ctx)

 1. Platform ID token: first 24 characters, prefixed "idt_". The token
    is verified against the platform so a stale session falls through.
 2. Platform profile: "usr_" + userId.
 3. Local fingerprint: "fp_" + HMAC-SHA256(seed, salt), where the seed
    is a random UUID persisted in the local store on first run.

No step ever surfaces an error to the user; the fingerprint fallback
always succeeds. The hash is used only as a vote-deduplication and
telemetry attribution key - there is no session or credential state.

# Platform SDK

The Platform interface mirrors the login SDK contract (Init,
IsLoggedIn, Login, IDToken, Profile). HTTPPlatform implements it
against the platform's REST endpoints with credentials injected from
configuration.
*/
package identity
