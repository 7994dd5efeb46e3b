package cache

import (
	"time"
	_ "time/tzdata" // distroless images ship without a zoneinfo database
)

// US equities close at 16:00 New York time; the provider publishes the day's
// movers shortly after.
const (
	moversRefreshHour   = 16
	moversRefreshMinute = 15
)

var newYork = loadLocation("America/New_York", -5*60*60)

func loadLocation(name string, fallbackOffset int) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.FixedZone(name, fallbackOffset)
	}
	return loc
}

// TimeUntilNext は now から次の loc における hour:minute までの期間を返します。
// ちょうどその時刻の場合は翌日までの期間を返します。
func TimeUntilNext(now time.Time, loc *time.Location, hour, minute int) time.Duration {
	local := now.In(loc)
	next := time.Date(local.Year(), local.Month(), local.Day(), hour, minute, 0, 0, loc)
	if !local.Before(next) {
		next = time.Date(local.Year(), local.Month(), local.Day()+1, hour, minute, 0, 0, loc)
	}
	return next.Sub(now)
}

// capTTL は ttl が次の値動きランキング更新時刻を越えないように切り詰めます。
func capTTL(now time.Time, ttl time.Duration) time.Duration {
	if until := TimeUntilNext(now, newYork, moversRefreshHour, moversRefreshMinute); until < ttl {
		return until
	}
	return ttl
}
