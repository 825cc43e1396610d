package audio

// Ducker applies reversible volume attenuation with a single pending-restore
// slot. The first Duck captures the baseline volume; further Duck calls while
// a restore is pending do not overwrite it, so nested ducking (pause during a
// cutscene) cannot lose the true pre-duck volume. Restore puts back the exact
// captured baseline rather than re-deriving it, so repeated duck/restore
// round trips do not drift.
type Ducker struct {
	svc      Service
	pending  bool
	baseline float64
}

// NewDucker creates a ducker over the given service. A nil service is legal;
// every operation becomes a silent no-op.
func NewDucker(svc Service) *Ducker {
	return &Ducker{svc: svc}
}

// Duck attenuates the music volume by factor. If a restore is already
// pending the call is a no-op (first-duck-wins on the stored baseline).
func (d *Ducker) Duck(factor float64) {
	if d == nil || d.svc == nil {
		return
	}
	if d.pending {
		return
	}
	d.baseline = d.svc.MusicVolume()
	d.pending = true
	d.svc.SetMusicVolume(d.baseline * factor)
}

// Restore puts the volume back to the captured baseline and clears the
// pending slot. No-op when nothing is pending.
func (d *Ducker) Restore() {
	if d == nil || d.svc == nil || !d.pending {
		return
	}
	d.svc.SetMusicVolume(d.baseline)
	d.pending = false
}

// Pending reports whether a restore baseline is currently held.
func (d *Ducker) Pending() bool {
	return d != nil && d.pending
}
