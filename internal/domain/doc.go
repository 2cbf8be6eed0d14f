// Package domain contains the core model for lvlgrid: palette
// classification, wall-run scanning, reconciliation and ranking.
//
// The domain is decoder- and persistence-agnostic: it does not depend on
// image decoding, the filesystem, or JSON encoding. Infra/adapters map
// into/from these types.
package domain
