package store

import (
	"fmt"
	"time"
)

// sqliteTimeLayouts are the textual forms SQLite hands back for DATETIME
// values when the driver does not convert them itself.
var sqliteTimeLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z",
	time.RFC3339Nano,
}

// timeColumn scans a timestamp from either driver into a time.Time.
type timeColumn struct {
	t *time.Time
}

func scanTime(t *time.Time) *timeColumn {
	return &timeColumn{t: t}
}

func (c *timeColumn) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*c.t = v
		return nil
	case nil:
		*c.t = time.Time{}
		return nil
	case []byte:
		return c.parse(string(v))
	case string:
		return c.parse(v)
	default:
		return fmt.Errorf("cannot scan %T into time", src)
	}
}

func (c *timeColumn) parse(s string) error {
	for _, layout := range sqliteTimeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			*c.t = parsed
			return nil
		}
	}
	return fmt.Errorf("unrecognised time format %q", s)
}
