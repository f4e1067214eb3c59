// Package conflict decides whether a pending local change or the current
// remote document wins. Resolve is a pure function: identical inputs always
// produce the same outcome, which is what makes retried sync passes safe.
package conflict

import (
	"errors"

	"github.com/courtside/statsync/internal/models"
)

// ErrNoResolutionBasis is returned alongside a server-wins outcome when
// neither side carries a usable version or timestamp. The caller logs it as
// an anomaly; it is never fatal.
var ErrNoResolutionBasis = errors.New("no usable version or timestamp on either side")

// Resolve decides the winner for one document, in this order:
//
//  1. An existing memo is returned unchanged so retried passes re-play the
//     settled outcome instead of re-litigating it.
//  2. No remote document means a pure create: local wins, no conflict exists.
//  3. Deletes win unconditionally. A user-initiated delete must never be
//     resurrected by a stale remote read.
//  4. A remote version newer than the captured one means the local edit is
//     stale: server wins.
//  5. Equal or unknown versions fall back to timestamps. Version is trusted
//     ahead of timestamps because clock skew across devices is less
//     trustworthy than a monotonically assigned version.
func Resolve(change *models.PendingChange, remote *models.Game, prior *models.ConflictResolution) (models.Resolution, error) {
	if prior != nil {
		return prior.Resolution, nil
	}

	if remote == nil {
		return models.ResolutionLocal, nil
	}

	if change.Operation == models.OpDelete {
		return models.ResolutionLocal, nil
	}

	if change.CapturedVersion > 0 && change.CapturedVersion < remote.Version {
		return models.ResolutionServer, nil
	}

	if change.Timestamp.IsZero() && remote.LastModified.IsZero() &&
		change.CapturedVersion == 0 && remote.Version == 0 {
		return models.ResolutionServer, ErrNoResolutionBasis
	}

	if change.Timestamp.After(remote.LastModified) {
		return models.ResolutionLocal, nil
	}
	return models.ResolutionServer, nil
}
