package processors

import "strings"

// CanonicalDPDOrder fixes both the canonical DPD label set and the order the
// dashboard presents buckets in.
var CanonicalDPDOrder = []string{
	"0 days DPD",
	"DPD 1-30",
	"DPD 31-60",
	"DPD 61-90",
	"DPD 91-120",
	"DPD 121-150",
	"DPD 151-180",
	"DPD 181-365",
	"DPD 365+",
	"No DPD",
}

// dpdBucketMapping folds the legacy labels still present in the feed onto the
// canonical set. Canonical labels map to themselves so normalization is
// idempotent.
var dpdBucketMapping = map[string]string{
	"0":           "0 days DPD",
	"0 days DPD":  "0 days DPD",
	"0-30":        "DPD 1-30",
	"DPD 1-30":    "DPD 1-30",
	"31-60":       "DPD 31-60",
	"DPD 31-60":   "DPD 31-60",
	"61-90":       "DPD 61-90",
	"DPD 61-90":   "DPD 61-90",
	"91-120":      "DPD 91-120",
	"DPD 91-120":  "DPD 91-120",
	"121-150":     "DPD 121-150",
	"DPD 121-150": "DPD 121-150",
	"151-180":     "DPD 151-180",
	"DPD 151-180": "DPD 151-180",
	"181-365":     "DPD 181-365",
	"DPD 181-365": "DPD 181-365",
	"365+":        "DPD 365+",
	"DPD 365+":    "DPD 365+",
	"No DPD":      "No DPD",
}

// NormalizeDPDBucket maps a raw bucket label to its canonical form. Unknown
// labels pass through unchanged.
func NormalizeDPDBucket(bucket string) string {
	if canonical, ok := dpdBucketMapping[bucket]; ok {
		return canonical
	}
	return bucket
}

// RawDPDBuckets returns every raw label that normalizes to the given
// canonical bucket, for filtering detail lists that key on raw values. A
// label outside the table matches only itself.
func RawDPDBuckets(canonical string) []string {
	var raw []string
	for label, norm := range dpdBucketMapping {
		if norm == canonical {
			raw = append(raw, label)
		}
	}
	if len(raw) == 0 {
		return []string{canonical}
	}
	return raw
}

// NormalizeCityName groups the satellite districts of the big metros under
// their main city so that e.g. "Mumbai Suburban" and "Navi Mumbai" aggregate
// together. Unmatched names come back trimmed but otherwise unchanged.
func NormalizeCityName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return name
	}
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "delhi"):
		return "Delhi"
	case strings.Contains(lower, "mumbai"):
		return "Mumbai"
	case strings.Contains(lower, "medchal"), strings.Contains(lower, "malkajgiri"):
		return "Hyderabad"
	}
	return name
}
