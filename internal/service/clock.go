package service

import "time"

// Clock は現在時刻を返します。テストでは固定時刻を返す関数を渡します。
type Clock func() time.Time

// systemClock は UTC の現在時刻を返します。
func systemClock() time.Time {
	return time.Now().UTC()
}

func clockOrDefault(c Clock) Clock {
	if c == nil {
		return systemClock
	}
	return func() time.Time { return c().UTC() }
}
