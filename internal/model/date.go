package model

import "time"

// DateOnly 去掉時間部分，統一成 UTC 午夜。廣告預約以「天」為粒度
func DateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DateKey 以 YYYY-MM-DD 當 map/Redis key
func DateKey(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}
