package profile

import "time"

// nowFn is a seam for tests that need a fixed clock.
var nowFn = time.Now

// SessionID derives the session identifier for a profile. The format is
// "{profileID}-{YYYYMMDD}" using the UTC calendar date, so two calls for
// the same profile on the same UTC day return the same identifier: the
// adapter reuses one logical session per profile per day.
func SessionID(profileID string) string {
	return profileID + "-" + nowFn().UTC().Format("20060102")
}
