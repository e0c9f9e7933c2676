package humantime

// anything up to this (in absolute seconds) is "now" under rough accuracy
const nowSeconds int64 = 10

// one row of the rough table. applies to magnitudes (absolute seconds) <= upTo that did not
// fit any earlier row.
type roughBucket struct {
	upTo   int64
	period func(secs int64) TimePeriod
}

// the exact boundaries are the calibration of the rough renderer. edge values belong to the
// lower bucket (45 s => "45 seconds", 45 min => "45 minutes").
var roughBuckets = []roughBucket{
	{nowSeconds, sentinel(Now)},
	{45, func(secs int64) TimePeriod { return TimePeriod{Seconds, secs} }},
	{90, single(Minutes)},
	{45 * minute, atLeastTwo(Minutes, minute)},
	{90 * minute, single(Hours)},
	{22 * hour, atLeastTwo(Hours, hour)},
	{36 * hour, single(Days)},
	{6*day + 12*hour, atLeastTwo(Days, day)},
	{10*day + 12*hour, single(Weeks)},
	{29 * day, atLeastTwo(Weeks, week)},
	{45 * day, single(Months)},
	{345 * day, atLeastTwo(Months, month)},
	{547 * day, single(Years)},
	{maxInt64, atLeastTwo(Years, year)},
}

const maxInt64 = int64(^uint64(0) >> 1)

func sentinel(unit Unit) func(int64) TimePeriod {
	return func(_ int64) TimePeriod { return TimePeriod{Unit: unit} }
}

func single(unit Unit) func(int64) TimePeriod {
	return func(_ int64) TimePeriod { return TimePeriod{unit, 1} }
}

// plural form is never reported below 2, since 1 has dedicated singular wording
func atLeastTwo(unit Unit, unitSeconds int64) func(int64) TimePeriod {
	return func(secs int64) TimePeriod {
		count := secs / unitSeconds
		if count < 2 {
			count = 2
		}

		return TimePeriod{unit, count}
	}
}

// always exactly one period
func roughPeriod(secs int64) TimePeriod {
	for _, bucket := range roughBuckets {
		if secs >= 0 && secs <= bucket.upTo {
			return bucket.period(secs)
		}
	}

	return TimePeriod{Unit: Eternity} // negative magnitude; should be unreachable
}

var preciseUnits = []struct {
	unit    Unit
	seconds int64
}{
	{Years, year},
	{Months, month},
	{Weeks, week},
	{Days, day},
	{Hours, hour},
	{Minutes, minute},
	{Seconds, 1},
}

var preciseSubsecondUnits = []struct {
	unit  Unit
	nanos int64
}{
	{Millis, nanosPerMilli},
	{Micros, nanosPerMicro},
	{Nanos, 1},
}

// mixed-radix decomposition, largest unit first. each count is the remainder after all larger
// units have been subtracted. zero counts are omitted, but the result is never empty.
func precisePeriods(secs int64, nanos int64) []TimePeriod {
	periods := []TimePeriod{}

	for _, u := range preciseUnits {
		if whole := secs / u.seconds; whole > 0 {
			periods = append(periods, TimePeriod{u.unit, whole})
			secs %= u.seconds
		}
	}

	for _, u := range preciseSubsecondUnits {
		if whole := nanos / u.nanos; whole > 0 {
			periods = append(periods, TimePeriod{u.unit, whole})
			nanos %= u.nanos
		}
	}

	if len(periods) == 0 {
		periods = append(periods, TimePeriod{Seconds, 0})
	}

	return periods
}
