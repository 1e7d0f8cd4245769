// Package enums serves enum metadata over HTTP and exposes lookup table
// synchronization to operators.
//
// # Label Language
//
// GetValues resolves labels in the first language available from:
//  1. the explicit language query parameter;
//  2. the caller's language (two-letter prefix of Accept-Language);
//  3. the configured server default language.
//
// # HTTP Endpoints
//
//   - GET /enums/types : Names of all registered enum types.
//   - GET /enums?enumName=X&language=Y : Localized members of X (alias /enums/values).
//   - GET /enums/sync/plan : Dry-run drift report, cached briefly.
//   - POST /enums/sync : Runs a synchronization pass.
//
// Unknown enum names answer 400 with a generic message and no detail.
package enums
