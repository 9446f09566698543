package utils

import "time"

// SumDurations returns the total of ds
func SumDurations(ds []time.Duration) time.Duration {
	var total time.Duration
	for _, d := range ds {
		total += d
	}
	return total
}

// MeanDuration returns the arithmetic mean of ds, or 0 for an empty slice
func MeanDuration(ds []time.Duration) time.Duration {
	if len(ds) == 0 {
		return 0
	}
	return SumDurations(ds) / time.Duration(len(ds))
}

// MinDuration returns the smallest element of ds, or 0 for an empty slice
func MinDuration(ds []time.Duration) time.Duration {
	if len(ds) == 0 {
		return 0
	}
	m := ds[0]
	for _, d := range ds[1:] {
		if d < m {
			m = d
		}
	}
	return m
}

// MaxDuration returns the largest element of ds, or 0 for an empty slice
func MaxDuration(ds []time.Duration) time.Duration {
	var m time.Duration
	for _, d := range ds {
		if d > m {
			m = d
		}
	}
	return m
}
