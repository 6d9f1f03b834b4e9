package clock

import "time"

var Now = func() time.Time {
	return time.Now().UTC()
}

// SetNow freezes Now at t until Reset is called.
func SetNow(t time.Time) {
	Now = func() time.Time {
		return t
	}
}

func Reset() {
	Now = func() time.Time {
		return time.Now().UTC()
	}
}
