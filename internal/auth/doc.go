// Package auth provides the credential lifecycle for the account service.
//
// It implements:
//   - Argon2id password hashing in PHC string format (self-describing
//     parameters, fresh salt per hash, constant-time verification)
//   - JWT access token issuance and verification (HS256, email claim)
//   - SQLite-backed user and organisation persistence
//
// Tokens are stateless: validity is determined entirely by signature and
// expiry, with no server-side session record. The token verifier
// distinguishes malformed, tampered, and expired tokens internally (each
// is a separate sentinel) but wraps them all in ErrTokenInvalid so that
// callers outside this package see a single rejection signal and cannot
// leak the sub-reason to clients.
//
// Repositories surface absence (ErrUserNotFound, ErrOrgNotFound) as
// distinct values from infrastructure failure, so callers can map
// "account no longer exists" and "store is down" to different outcomes.
package auth
