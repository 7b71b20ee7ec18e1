package datetime

import "fmt"

// jsonSize bounds the marshaled form: quotes, date, time, nanosecond
// fraction, and offset.
const jsonSize = len(`"2006-01-02T15:04:05.999999999+0000"`)

// MarshalJSON implements the json.Marshaler interface. The datetime is a
// quoted string in the canonical form described on String: seconds-
// precision values render without a fraction, and the ±hhmm offset
// appears only for values with a zone tag.
func (dt DateTime) MarshalJSON() ([]byte, error) {
	b := make([]byte, 0, jsonSize)
	b = append(b, '"')
	b = append(b, dt.String()...)
	b = append(b, '"')
	return b, nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. The datetime
// must be a quoted string in one of the layouts accepted by Parse. An
// offset in the input becomes a fixed-offset zone tag; a named zone does
// not survive a round trip, though the instant and its rendering do.
func (dt *DateTime) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("%w: %s is not a JSON string", ErrParse, data)
	}
	return dt.UnmarshalText(data[1 : len(data)-1])
}

// MarshalText implements the encoding.TextMarshaler interface, using the
// same canonical form as MarshalJSON without the quotes.
func (dt DateTime) MarshalText() ([]byte, error) {
	return []byte(dt.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface,
// accepting the layouts accepted by Parse.
func (dt *DateTime) UnmarshalText(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*dt = parsed
	return nil
}
