package ats

// minFilledBuckets is the number of content buckets a document needs before it is scored.
const minFilledBuckets = 3

// filledBuckets counts the content buckets that are non-trivially filled.
func filledBuckets(v *resumeView) int {
	buckets := []bool{
		v.hasNameAndEmail(),
		v.experienceCount() > 0,
		v.educationCount() > 0,
		v.skillCount() >= 3,
		len(v.doc.Projects) > 0,
		len(v.doc.CustomSections) > 0,
		len(v.doc.Certifications) > 0,
		v.summaryLen() > 30,
	}

	n := 0
	for _, filled := range buckets {
		if filled {
			n++
		}
	}
	return n
}

// hasAnyData reports whether there is anything at all to base an auto-fix on.
func hasAnyData(v *resumeView) bool {
	return v.firstName != "" || v.lastName != "" || v.email != "" ||
		v.experienceCount() > 0 || v.educationCount() > 0 || v.skillCount() > 0
}
