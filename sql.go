package datetime

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// Value implements the driver.Valuer interface, rendering the canonical
// string form described on String. Drivers pass it through to timestamp
// and timestamptz columns alike; the offset appears only for values with
// a zone tag.
func (dt DateTime) Value() (driver.Value, error) {
	return dt.String(), nil
}

// Scan implements the sql.Scanner interface. It accepts a time.Time, a
// string or []byte in a layout accepted by Parse, an int64 count of Unix
// seconds, or NULL, which scans as the zero value.
func (dt *DateTime) Scan(src any) error {
	switch src := src.(type) {
	case nil:
		*dt = DateTime{}
		return nil
	case time.Time:
		*dt = FromTimestamp(src.Unix(), uint32(src.Nanosecond()))
		return nil
	case int64:
		*dt = FromTimestamp(src, 0)
		return nil
	case string:
		return dt.UnmarshalText([]byte(src))
	case []byte:
		return dt.UnmarshalText(src)
	default:
		return fmt.Errorf("%w: cannot scan %T into a DateTime", ErrParse, src)
	}
}
